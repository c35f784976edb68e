package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/acaihub/delivery-catalog/config"
	"github.com/acaihub/delivery-catalog/models"
)

// CallTimeout bounds every round trip to the remote store. The deadline is
// propagated into the driver, so a timed-out call is cancelled rather than
// left running.
const CallTimeout = 10 * time.Second

// ProductStore is the adapter in front of the delivery_products table.
// It classifies every failure as one of models.ErrNotConfigured,
// models.ErrTimeout or models.RemoteError and never retries; retry policy
// belongs to the caller.
type ProductStore struct {
	cfg *config.Config

	mu sync.Mutex
	db *gorm.DB
}

func NewProductStore(cfg *config.Config) *ProductStore {
	return &ProductStore{cfg: cfg}
}

// conn opens the connection on first use. The configuration precheck runs
// on every call so an unconfigured environment never attempts I/O.
func (s *ProductStore) conn() (*gorm.DB, error) {
	if !s.cfg.IsConfigured() {
		return nil, models.ErrNotConfigured
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db != nil {
		return s.db, nil
	}
	dsn, err := s.cfg.DSN()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrNotConfigured, err)
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		zap.S().Warnf("delivery store connection failed: %v", err)
		return nil, classify("connect", err)
	}
	s.db = db
	return db, nil
}

// FetchAll returns the active catalog ordered by name.
func (s *ProductStore) FetchAll(ctx context.Context) ([]models.Product, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, CallTimeout)
	defer cancel()

	var products []models.Product
	if err := db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name").
		Find(&products).Error; err != nil {
		return nil, classify("fetch", err)
	}
	return products, nil
}

// Create inserts the draft and returns the authoritative row, including the
// server-assigned id and timestamps. The caller must not assume its draft
// values survived unchanged.
func (s *ProductStore) Create(ctx context.Context, draft models.Product) (*models.Product, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, CallTimeout)
	defer cancel()

	draft.ID = "" // id is assigned by the store
	if err := db.WithContext(ctx).Create(&draft).Error; err != nil {
		return nil, classify("create", err)
	}
	var created models.Product
	if err := db.WithContext(ctx).First(&created, "id = ?", draft.ID).Error; err != nil {
		return nil, classify("create", err)
	}
	return &created, nil
}

// Update applies a partial update by id and returns the stored record.
func (s *ProductStore) Update(ctx context.Context, id string, fields map[string]any) (*models.Product, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, CallTimeout)
	defer cancel()

	tx := db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", id).
		Updates(fields)
	if tx.Error != nil {
		return nil, classify("update", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return nil, models.ErrProductNotFound
	}
	var updated models.Product
	if err := db.WithContext(ctx).First(&updated, "id = ?", id).Error; err != nil {
		return nil, classify("update", err)
	}
	return &updated, nil
}

// SoftDelete marks the product inactive. The row is kept.
func (s *ProductStore) SoftDelete(ctx context.Context, id string) error {
	_, err := s.Update(ctx, id, map[string]any{"is_active": false})
	return err
}

// classify maps driver failures onto the engine's error taxonomy.
func classify(op string, err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return models.ErrTimeout
	case errors.Is(err, context.Canceled):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return models.ErrProductNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return &models.RemoteError{Op: op, Message: pgErr.Message}
	}
	return &models.RemoteError{Op: op, Message: err.Error()}
}
