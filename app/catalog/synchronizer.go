package catalog

import (
	"context"
	"errors"
	"sync"

	"github.com/asaskevich/EventBus"
	"go.uber.org/zap"

	"github.com/acaihub/delivery-catalog/models"
)

// SyncState sources.
const (
	SourceRemote = "remote"
	SourceDemo   = "demo"
)

// TopicCatalogChanged is published on the injected bus after every applied
// catalog change, so the UI collaborator knows to re-render.
const TopicCatalogChanged = "catalog:changed"

// SyncState is the observable synchronization status. LastError is non-fatal
// display state: the engine stays usable in demo mode.
type SyncState struct {
	Source    string
	Loading   bool
	LastError error
}

// Store is what the synchronizer needs from the catalog store adapter.
type Store interface {
	FetchAll(ctx context.Context) ([]models.Product, error)
	Create(ctx context.Context, draft models.Product) (*models.Product, error)
	Update(ctx context.Context, id string, fields map[string]any) (*models.Product, error)
	SoftDelete(ctx context.Context, id string) error
}

// Synchronizer owns the in-memory catalog and is its only mutator. Loads are
// tagged with a sequence number; a completion that is no longer the latest
// issued is dropped, so a stale fetch cannot overwrite a newer one.
type Synchronizer struct {
	store Store
	bus   EventBus.Bus

	mu       sync.Mutex
	products []models.Product
	state    SyncState
	loadSeq  uint64
}

// NewSynchronizer builds a synchronizer. The bus may be nil when no one
// listens for changes.
func NewSynchronizer(store Store, bus EventBus.Bus) *Synchronizer {
	return &Synchronizer{
		store: store,
		bus:   bus,
		state: SyncState{Loading: true},
	}
}

// Load fetches the catalog from the remote store. Any adapter failure is
// recovered locally: the demo catalog is substituted, the source flips to
// demo and the failure is kept as observable state. The previous catalog
// stays visible until the new result is ready.
func (s *Synchronizer) Load(ctx context.Context) {
	s.mu.Lock()
	s.loadSeq++
	seq := s.loadSeq
	s.state.Loading = true
	s.mu.Unlock()

	products, err := s.store.FetchAll(ctx)

	s.mu.Lock()
	if seq != s.loadSeq {
		// A newer load was issued while this one was in flight.
		s.mu.Unlock()
		zap.S().Debugf("discarding stale catalog load %d", seq)
		return
	}
	s.state.Loading = false
	if err != nil {
		if errors.Is(err, models.ErrNotConfigured) {
			zap.S().Warn("delivery store not configured, using demo catalog")
		} else {
			zap.S().Warnf("catalog load failed, using demo catalog: %v", err)
		}
		s.products = models.DemoProducts()
		s.state.Source = SourceDemo
		s.state.LastError = err
	} else {
		zap.S().Infof("loaded %d products from delivery store", len(products))
		s.products = products
		s.state.Source = SourceRemote
		s.state.LastError = nil
	}
	s.mu.Unlock()
	s.notify()
}

// Refresh reloads the catalog. Same contract as Load.
func (s *Synchronizer) Refresh(ctx context.Context) {
	s.Load(ctx)
}

// Create validates the draft, writes it through the adapter and appends the
// store's authoritative record to the catalog. On failure the catalog is
// unchanged and the error is surfaced; there is no demo mutation path.
func (s *Synchronizer) Create(ctx context.Context, draft models.Product) (*models.Product, error) {
	if err := draft.ValidateDraft(); err != nil {
		return nil, err
	}
	created, err := s.store.Create(ctx, draft)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.products = append(s.products, *created)
	s.mu.Unlock()
	s.notify()
	return created, nil
}

// Update applies a partial update and replaces the matching catalog entry
// with the adapter's returned record; the store is authoritative for
// computed and defaulted fields, so this is a full replacement, not a merge.
// An id the catalog does not contain is a caller logic error and is
// reported as models.ErrProductNotFound.
func (s *Synchronizer) Update(ctx context.Context, id string, fields map[string]any) (*models.Product, error) {
	s.mu.Lock()
	known := s.indexOf(id) >= 0
	s.mu.Unlock()
	if !known {
		return nil, models.ErrProductNotFound
	}

	updated, err := s.store.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	if i := s.indexOf(id); i >= 0 {
		s.products[i] = *updated
	}
	s.mu.Unlock()
	s.notify()
	return updated, nil
}

// SoftDelete marks the product inactive in the store and drops it from the
// visible catalog. After success no entry with this id remains active.
func (s *Synchronizer) SoftDelete(ctx context.Context, id string) error {
	if err := s.store.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	if i := s.indexOf(id); i >= 0 {
		s.products = append(s.products[:i], s.products[i+1:]...)
	}
	s.mu.Unlock()
	s.notify()
	return nil
}

// SaveSchedule attaches a weekly window schedule to a product and switches
// it to scheduled availability, through the normal update path.
func (s *Synchronizer) SaveSchedule(ctx context.Context, id string, days models.ScheduledDays) (*models.Product, error) {
	if err := days.Validate(); err != nil {
		return nil, err
	}
	return s.Update(ctx, id, map[string]any{
		"scheduled_days":    days,
		"availability_type": models.AvailabilityScheduled,
	})
}

// Products returns a snapshot copy of the current catalog.
func (s *Synchronizer) Products() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Filter returns the view of the current catalog matching the query.
func (s *Synchronizer) Filter(q Query) []models.Product {
	return Filter(s.Products(), q)
}

// State returns a copy of the current sync state.
func (s *Synchronizer) State() SyncState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Synchronizer) indexOf(id string) int {
	for i, p := range s.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (s *Synchronizer) notify() {
	if s.bus != nil {
		s.bus.Publish(TopicCatalogChanged)
	}
}
