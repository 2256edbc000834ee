package journal

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/lantern/pkg/types"
)

// ListBackups returns imported backups newest first, paginated and cached.
func (r *Repository) ListBackups(limit, offset int) ([]types.ImportedBackup, error) {
	key := listKey(types.CollectionBackups, limit, offset)
	if cached, ok := r.cache.Get(key); ok {
		return cached.([]types.ImportedBackup), nil
	}

	backups, err := r.store.ListBackups(limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to load imported backups: %w", err)
	}
	r.cache.Set(key, backups)
	return backups, nil
}

// SearchBackups matches backups whose title starts with the query or
// whose import source matches one of its terms. Results use the short
// search TTL.
func (r *Repository) SearchBackups(query string, limit int) ([]types.ImportedBackup, error) {
	key := searchKey(types.CollectionBackups, query, limit)
	if cached, ok := r.cache.Get(key); ok {
		return cached.([]types.ImportedBackup), nil
	}

	backups, err := r.store.SearchBackups(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search imported backups: %w", err)
	}
	r.cache.SetTTL(key, backups, r.searchTTL)
	return backups, nil
}

// GetBackup retrieves a single imported backup by ID.
func (r *Repository) GetBackup(id string) (*types.ImportedBackup, error) {
	backup, err := r.store.GetBackup(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load imported backup: %w", err)
	}
	return backup, nil
}

// AddBackup persists a new imported backup. The checksum is derived
// from content and date when the caller does not supply one.
func (r *Repository) AddBackup(backup *types.ImportedBackup) (*types.ImportedBackup, error) {
	if err := r.store.InsertBackup(backup); err != nil {
		return nil, fmt.Errorf("failed to save imported backup: %w", err)
	}
	r.invalidate()
	return backup, nil
}

// DeleteBackup removes an imported backup. Backups are never expired
// automatically; deletion is always an explicit user action.
func (r *Repository) DeleteBackup(id string) error {
	if err := r.store.DeleteBackup(id); err != nil {
		return fmt.Errorf("failed to delete imported backup: %w", err)
	}
	r.invalidate()
	return nil
}

// RestoreFromBackup copies a backup into a fresh journal entry. The
// source backup is left untouched; restore is a copy, not a move.
// Missing fields fall back to sensible defaults so a sparse backup
// still restores cleanly.
func (r *Repository) RestoreFromBackup(backupID string) (*types.JournalEntry, error) {
	backup, err := r.store.GetBackup(backupID)
	if err != nil {
		return nil, fmt.Errorf("failed to restore from backup: %w", err)
	}

	entry := &types.JournalEntry{
		Title:      backup.Title,
		Content:    backup.Content,
		Date:       backup.Date,
		Time:       backup.Time,
		Mood:       backup.Mood,
		Tags:       backup.Tags,
		Location:   backup.Location,
		MoonPhase:  backup.MoonPhase,
		Weather:    backup.Weather,
		AIInsights: backup.AIInsights,
	}
	if entry.Title == "" {
		entry.Title = "Imported Entry " + r.now().Format("2006-01-02 15:04")
	}
	if entry.Date == "" {
		entry.Date = r.now().Format(dateLayout)
	}
	if entry.Mood == 0 {
		entry.Mood = 3
	}
	if len(entry.Tags) == 0 {
		entry.Tags = []string{"imported"}
	}

	if err := r.store.InsertEntry(entry); err != nil {
		return nil, fmt.Errorf("failed to restore from backup: %w", err)
	}
	r.invalidate()
	r.logger.Info("backup restored",
		zap.String("backupId", backupID),
		zap.String("entryId", entry.ID))
	return entry, nil
}

// CheckDuplicate reports whether any stored backup carries the checksum
// of the given content and date. A match means "likely duplicate", not
// proof: the checksum is a 32-bit fingerprint and collisions are
// possible.
func (r *Repository) CheckDuplicate(content, date string) (bool, error) {
	dup, err := r.store.HasChecksum(types.Checksum(content, date))
	if err != nil {
		return false, fmt.Errorf("failed to check for duplicate backup: %w", err)
	}
	return dup, nil
}
