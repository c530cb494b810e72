// Package repository owns the root AppData document: it loads the document
// once at construction, hands out the current in-memory value, and persists
// the whole document back to storage after every mutation.
//
// There are no partial writes and no transactions. Every save rewrites the
// entire document, and a save that fails leaves the in-memory value updated
// anyway; in-memory and persisted state are allowed to diverge after a
// storage failure. That mirrors the documented behavior of the data format
// this package inherits and is acceptable at single-device data volumes.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fitsync/fitsync/internal/metrics"
	"github.com/fitsync/fitsync/internal/models"
	"github.com/fitsync/fitsync/internal/storage"
)

var (
	// ErrDataNotLoaded means the document is not available, i.e. the
	// repository was never constructed successfully.
	ErrDataNotLoaded = errors.New("application data not loaded")

	// ErrInvalidImport means the imported text is not a valid document.
	ErrInvalidImport = errors.New("invalid import data")
)

// DefaultPassword is back-filled onto user records that predate the
// password field. The value is fixed; changing it would lock those users
// out of documents migrated by earlier releases.
const DefaultPassword = "fitsync123"

// Repository is the single owner of the AppData document. All domain
// services share one Repository and mutate the one document through it.
type Repository struct {
	store   storage.Store
	metrics *metrics.Metrics
	logger  *slog.Logger

	mu       sync.RWMutex
	current  *models.AppData
	watchers map[int]func(*models.AppData)
	nextID   int

	// now is swapped out in tests.
	now func() time.Time
}

// New loads the document from storage and returns a ready repository.
// An empty or corrupt stored document is replaced by a fresh skeleton, which
// is persisted immediately. Records lacking a password get the default one
// back-filled (the field was added after initial release).
func New(ctx context.Context, store storage.Store, m *metrics.Metrics, logger *slog.Logger) (*Repository, error) {
	r := &Repository{
		store:    store,
		metrics:  m,
		logger:   logger,
		watchers: make(map[int]func(*models.AppData)),
		now:      time.Now,
	}

	data, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	r.current = data
	return r, nil
}

func (r *Repository) load(ctx context.Context) (*models.AppData, error) {
	raw, err := r.store.Get(ctx, storage.KeyAppData)
	if errors.Is(err, storage.ErrKeyNotFound) {
		r.logger.Info("no stored document, creating skeleton")
		data := models.NewAppData()
		if err := r.persist(ctx, data); err != nil {
			return nil, fmt.Errorf("failed to persist initial document: %w", err)
		}
		return data, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}

	var data models.AppData
	if err := json.Unmarshal(raw, &data); err != nil {
		// Corrupt document: start over rather than refuse to start.
		r.logger.Error("stored document is corrupt, replacing with skeleton", "error", err)
		fresh := models.NewAppData()
		if err := r.persist(ctx, fresh); err != nil {
			return nil, fmt.Errorf("failed to persist replacement document: %w", err)
		}
		return fresh, nil
	}

	if migrated := backfillPasswords(&data); migrated > 0 {
		r.logger.Info("back-filled default password on legacy users", "count", migrated)
		if err := r.persist(ctx, &data); err != nil {
			return nil, fmt.Errorf("failed to persist migrated document: %w", err)
		}
	}

	return &data, nil
}

// backfillPasswords sets the default password on any user record lacking
// one and reports how many records were touched.
func backfillPasswords(data *models.AppData) int {
	migrated := 0
	for i := range data.Users {
		if data.Users[i].Password == "" {
			data.Users[i].Password = DefaultPassword
			migrated++
		}
	}
	return migrated
}

// Current returns the in-memory document. Callers mutate it in place and
// then call Save; the document has a single writer context so this is safe
// under the app's cooperative model.
func (r *Repository) Current() *models.AppData {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// Save stamps lastUpdated, publishes the document to watchers, and persists
// it whole. The in-memory value is updated even when persistence fails; the
// storage error is returned for the caller to surface.
func (r *Repository) Save(ctx context.Context, data *models.AppData) error {
	r.mu.Lock()
	stamp := r.now()
	// lastUpdated must never move backward, even if the wall clock does.
	if r.current != nil && stamp.Before(r.current.LastUpdated) {
		stamp = r.current.LastUpdated
	}
	data.LastUpdated = stamp
	r.current = data
	fns := make([]func(*models.AppData), 0, len(r.watchers))
	for _, fn := range r.watchers {
		fns = append(fns, fn)
	}
	r.mu.Unlock()

	for _, fn := range fns {
		fn(data)
	}

	if err := r.persist(ctx, data); err != nil {
		r.logger.Error("failed to persist document", "error", err)
		return err
	}
	return nil
}

func (r *Repository) persist(ctx context.Context, data *models.AppData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	start := time.Now()
	err = r.store.Set(ctx, storage.KeyAppData, raw)
	if r.metrics != nil {
		r.metrics.DocumentSaves.Inc()
		r.metrics.SaveDuration.Observe(time.Since(start).Seconds())
		if err != nil {
			r.metrics.SaveFailures.Inc()
		}
	}
	if err != nil {
		return fmt.Errorf("failed to persist document: %w", err)
	}
	return nil
}

// Watch registers fn to run after every Save publication. It returns a
// cancel func that unregisters the watcher. Services recompute their views
// when notified instead of maintaining their own drifting copies.
func (r *Repository) Watch(fn func(*models.AppData)) func() {
	r.mu.Lock()
	id := r.nextID
	r.nextID++
	r.watchers[id] = fn
	r.mu.Unlock()

	return func() {
		r.mu.Lock()
		delete(r.watchers, id)
		r.mu.Unlock()
	}
}

// GenerateID produces a probabilistically unique token for a new record:
// the given prefix, the current unix-millisecond timestamp, and a random
// suffix. Collisions are accepted as negligible for single-device data.
func (r *Repository) GenerateID(prefix string) string {
	suffix := uuid.NewString()[:8]
	return fmt.Sprintf("%s_%d_%s", prefix, r.now().UnixMilli(), suffix)
}

// SetNow overrides the repository clock. Test hook.
func (r *Repository) SetNow(now func() time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.now = now
}
