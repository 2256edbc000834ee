// Package integration exercises the store and repository together
// against a real database file.
package integration

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/lantern/internal/journal"
	"github.com/mesh-intelligence/lantern/internal/sqlite"
	"github.com/mesh-intelligence/lantern/pkg/types"
)

// setupJournal opens a store on an isolated temp directory and wraps it
// in a repository. Each test gets its own database for isolation.
func setupJournal(t *testing.T) (*journal.Repository, *sqlite.Store, string) {
	t.Helper()
	dir := t.TempDir()
	store := sqlite.NewStore()
	require.NoError(t, store.Open(types.Config{DataDir: dir}))
	t.Cleanup(func() { store.Close() })
	return journal.New(store), store, dir
}

// reopen closes the store and opens a fresh one on the same directory.
func reopen(t *testing.T, store *sqlite.Store, dir string) (*journal.Repository, *sqlite.Store) {
	t.Helper()
	require.NoError(t, store.Close())
	fresh := sqlite.NewStore()
	require.NoError(t, fresh.Open(types.Config{DataDir: dir}))
	t.Cleanup(func() { fresh.Close() })
	return journal.New(fresh), fresh
}
