// Package sqlite implements the embedded SQLite store for Lantern.
// It owns the collection schemas, the versioned migration history, and
// the write-time hooks that stamp timestamps and enforce record
// invariants.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/lantern/pkg/types"
)

// dbFileName is the SQLite database file inside DataDir.
const dbFileName = "lantern.db"

// Connection pragmas applied on every open.
var openPragmas = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA busy_timeout = 5000",
	"PRAGMA synchronous = NORMAL",
	"PRAGMA foreign_keys = ON",
}

// Store is the durable journal store. All access goes through its
// typed per-collection methods; every write path runs the collection's
// hooks before committing.
type Store struct {
	mu     sync.RWMutex
	open   bool
	config types.Config
	db     *sql.DB
	logger *zap.Logger
	now    func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for store events.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// WithClock overrides the time source used for timestamp stamping.
// Used by tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore creates an unopened Store; call Open with a Config to
// initialize it.
func NewStore(opts ...Option) *Store {
	s := &Store{
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open initializes the store: creates DataDir if needed, opens or
// creates the database file, and runs any pending schema migrations
// between the recorded version and the current one. Open is idempotent;
// opening an already-open store is a no-op.
func (s *Store) Open(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.open {
		return nil
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, dbFileName)
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}

	for _, pragma := range openPragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return fmt.Errorf("applying pragma: %w", err)
		}
	}

	applied, err := migrate(db)
	if err != nil {
		db.Close()
		return fmt.Errorf("migrating schema: %w", err)
	}
	if applied > 0 {
		s.logger.Info("schema migrated",
			zap.Int("steps", applied),
			zap.Int("version", SchemaVersion))
	}

	s.db = db
	s.config = config
	s.open = true
	return nil
}

// Close releases the database connection. Close is idempotent; after
// Close, operations return ErrStoreClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return nil
	}
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("closing database: %w", err)
	}
	s.db = nil
	s.open = false
	return nil
}

// Config returns the configuration the store was opened with.
func (s *Store) Config() types.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

// checkOpen returns ErrStoreClosed if the store is not open. Callers
// must hold s.mu.
func (s *Store) checkOpen() error {
	if !s.open {
		return types.ErrStoreClosed
	}
	return nil
}

// CollectionCounts returns the number of records in every collection.
func (s *Store) CollectionCounts() (map[string]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(types.StandardCollectionNames))
	for _, name := range types.StandardCollectionNames {
		var n int
		if err := s.db.QueryRow("SELECT COUNT(*) FROM " + name).Scan(&n); err != nil {
			return nil, fmt.Errorf("counting %s: %w", name, err)
		}
		counts[name] = n
	}
	return counts, nil
}

// newUUID generates a UUID v7 string for record IDs.
func newUUID() string {
	return uuid.Must(uuid.NewV7()).String()
}
