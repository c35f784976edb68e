package store

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/acaihub/delivery-catalog/config"
	"github.com/acaihub/delivery-catalog/models"
)

func unconfiguredStore() *ProductStore {
	return NewProductStore(&config.Config{
		StoreURL: "your_store_url_here",
		StoreKey: "",
	})
}

func TestUnconfiguredShortCircuitsEveryCall(t *testing.T) {
	s := unconfiguredStore()
	ctx := context.Background()

	_, err := s.FetchAll(ctx)
	assert.ErrorIs(t, err, models.ErrNotConfigured)

	_, err = s.Create(ctx, models.Product{Name: "Açaí 300ml"})
	assert.ErrorIs(t, err, models.ErrNotConfigured)

	_, err = s.Update(ctx, "a1", map[string]any{"name": "x"})
	assert.ErrorIs(t, err, models.ErrNotConfigured)

	assert.ErrorIs(t, s.SoftDelete(ctx, "a1"), models.ErrNotConfigured)
}

func TestPlaceholderKeyShortCircuits(t *testing.T) {
	s := NewProductStore(&config.Config{
		StoreURL: "postgres://db.example.com:5432/storefront",
		StoreKey: "placeholder-key",
	})

	_, err := s.FetchAll(context.Background())
	assert.ErrorIs(t, err, models.ErrNotConfigured)
}

func TestClassify(t *testing.T) {
	testCases := []struct {
		name  string
		err   error
		check func(t *testing.T, got error)
	}{
		{
			name: "deadline exceeded becomes timeout",
			err:  context.DeadlineExceeded,
			check: func(t *testing.T, got error) {
				assert.ErrorIs(t, got, models.ErrTimeout)
			},
		},
		{
			name: "wrapped deadline becomes timeout",
			err:  errors.Join(errors.New("query failed"), context.DeadlineExceeded),
			check: func(t *testing.T, got error) {
				assert.ErrorIs(t, got, models.ErrTimeout)
			},
		},
		{
			name: "caller cancellation passes through",
			err:  context.Canceled,
			check: func(t *testing.T, got error) {
				assert.ErrorIs(t, got, context.Canceled)
			},
		},
		{
			name: "record not found",
			err:  gorm.ErrRecordNotFound,
			check: func(t *testing.T, got error) {
				assert.ErrorIs(t, got, models.ErrProductNotFound)
			},
		},
		{
			name: "postgres rejection carries the store message",
			err:  &pgconn.PgError{Message: "permission denied for table delivery_products"},
			check: func(t *testing.T, got error) {
				var remoteErr *models.RemoteError
				assert.ErrorAs(t, got, &remoteErr)
				assert.Equal(t, "fetch", remoteErr.Op)
				assert.Contains(t, remoteErr.Message, "permission denied")
			},
		},
		{
			name: "anything else is a remote error",
			err:  errors.New("connection refused"),
			check: func(t *testing.T, got error) {
				var remoteErr *models.RemoteError
				assert.ErrorAs(t, got, &remoteErr)
				assert.Equal(t, "connection refused", remoteErr.Message)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.check(t, classify("fetch", tc.err))
		})
	}
}
