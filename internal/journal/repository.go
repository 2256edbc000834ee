// Package journal implements the repository operations over the
// Lantern store: the public CRUD/query API per collection, the TTL
// query cache in front of reads, compound operations (cascade deletes,
// restore-from-backup, date repair), and derived analytics.
package journal

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/lantern/internal/cache"
	"github.com/mesh-intelligence/lantern/internal/sqlite"
)

// dateLayout is the calendar date format used in entry date fields.
const dateLayout = "2006-01-02"

// Repository is the public API surface over the journal collections.
// Every mutating call clears the query cache on success, and only on
// success: a failed write leaves the cache as-is since nothing changed.
type Repository struct {
	store  *sqlite.Store
	cache  *cache.Cache
	logger *zap.Logger
	now    func() time.Time

	searchTTL    time.Duration
	analyticsTTL time.Duration
}

// Option configures a Repository.
type Option func(*Repository)

// WithLogger sets the repository logger.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Repository) { r.logger = logger }
}

// WithClock overrides the time source. The cache shares the clock so
// TTL expiry is deterministic in tests.
func WithClock(now func() time.Time) Option {
	return func(r *Repository) { r.now = now }
}

// New creates a Repository over an opened store. The query cache is
// owned by the repository and sized by the store's configuration.
func New(store *sqlite.Store, opts ...Option) *Repository {
	r := &Repository{
		store:  store,
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}

	cfg := store.Config()
	r.searchTTL = cfg.SearchTTL()
	r.analyticsTTL = cfg.AnalyticsTTL()
	r.cache = cache.New(cfg.CacheTTL(),
		cache.WithClock(r.now),
		cache.WithLogger(r.logger))
	return r
}

// Cache exposes the query cache for inspection in tests.
func (r *Repository) Cache() *cache.Cache {
	return r.cache
}

// invalidate clears the whole query cache after a successful write.
func (r *Repository) invalidate() {
	r.cache.Clear()
}

// Cache key derivation. Keys embed every query parameter so distinct
// queries never collide.

func listKey(collection string, limit, offset int) string {
	return fmt.Sprintf("%s:list:%d:%d", collection, limit, offset)
}

func searchKey(collection, query string, limit int) string {
	return fmt.Sprintf("%s:search:%d:%s", collection, limit, query)
}

func analyticsKey(windowDays int) string {
	return fmt.Sprintf("analytics:%d", windowDays)
}

const (
	settingsKey    = "settings"
	preferencesKey = "preferences"
)
