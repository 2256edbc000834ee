package journal

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/lantern/pkg/types"
)

// ListEntries returns journal entries newest first, paginated. Results
// are cached under the (limit, offset) pair with the default TTL.
func (r *Repository) ListEntries(limit, offset int) ([]types.JournalEntry, error) {
	key := listKey(types.CollectionEntries, limit, offset)
	if cached, ok := r.cache.Get(key); ok {
		return cached.([]types.JournalEntry), nil
	}

	entries, err := r.store.ListEntries(limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to load journal entries: %w", err)
	}
	r.cache.Set(key, entries)
	return entries, nil
}

// SearchEntries returns entries matching the query, newest first.
// Search results are query-specific and low-reuse, so they carry the
// short search TTL.
func (r *Repository) SearchEntries(query string, limit int) ([]types.JournalEntry, error) {
	key := searchKey(types.CollectionEntries, query, limit)
	if cached, ok := r.cache.Get(key); ok {
		return cached.([]types.JournalEntry), nil
	}

	entries, err := r.store.SearchEntries(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search journal entries: %w", err)
	}
	r.cache.SetTTL(key, entries, r.searchTTL)
	return entries, nil
}

// GetEntry retrieves a single journal entry by ID.
func (r *Repository) GetEntry(id string) (*types.JournalEntry, error) {
	entry, err := r.store.GetEntry(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load journal entry: %w", err)
	}
	return entry, nil
}

// AddEntry persists a new journal entry and returns it with its
// assigned ID and stamped timestamps.
func (r *Repository) AddEntry(entry *types.JournalEntry) (*types.JournalEntry, error) {
	if err := r.store.InsertEntry(entry); err != nil {
		return nil, fmt.Errorf("failed to save journal entry: %w", err)
	}
	r.invalidate()
	r.logger.Debug("journal entry added", zap.String("id", entry.ID))
	return entry, nil
}

// UpdateEntry merges a partial update into the stored entry and
// returns the refreshed record.
func (r *Repository) UpdateEntry(id string, patch types.EntryPatch) (*types.JournalEntry, error) {
	entry, err := r.store.UpdateEntry(id, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update journal entry: %w", err)
	}
	r.invalidate()
	return entry, nil
}

// DeleteEntry removes a journal entry.
func (r *Repository) DeleteEntry(id string) error {
	if err := r.store.DeleteEntry(id); err != nil {
		return fmt.Errorf("failed to delete journal entry: %w", err)
	}
	r.invalidate()
	return nil
}
