// Shared helpers for lantern CLI commands.
package main

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/lantern/internal/journal"
	"github.com/mesh-intelligence/lantern/internal/sqlite"
	"github.com/mesh-intelligence/lantern/pkg/types"
)

// openRepository resolves the data directory, opens the store, and
// wraps it in a repository. The caller must defer the returned close
// function.
func openRepository() (*journal.Repository, func(), error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{DataDir: dataDir}
	if loadedConfig != nil {
		cfg.CacheTTLSeconds = loadedConfig.GetInt(cfgKeyCacheTTL)
		cfg.SearchTTLSeconds = loadedConfig.GetInt(cfgKeySearchTTL)
		cfg.AnalyticsTTLSeconds = loadedConfig.GetInt(cfgKeyAnalyticsTTL)
	}

	logger := newLogger()
	store := sqlite.NewStore(sqlite.WithLogger(logger))
	if err := store.Open(cfg); err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	repo := journal.New(store, journal.WithLogger(logger))
	closer := func() {
		store.Close()
		logger.Sync()
	}
	return repo, closer, nil
}

// openStore opens the underlying store without the repository layer,
// for commands that inspect raw state.
func openStore() (*sqlite.Store, func(), error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, nil, fmt.Errorf("resolve data dir: %w", err)
	}

	store := sqlite.NewStore(sqlite.WithLogger(newLogger()))
	if err := store.Open(types.Config{DataDir: dataDir}); err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	return store, func() { store.Close() }, nil
}

// newLogger builds the CLI logger. Quiet by default; --verbose switches
// to a development logger on stderr.
func newLogger() *zap.Logger {
	if !flagVerbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// shortID truncates a UUID to its first 8 characters for table output.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// truncate shortens s to at most n runes for table output.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
