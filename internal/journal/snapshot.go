package journal

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/lantern/internal/sqlite"
	"github.com/mesh-intelligence/lantern/pkg/types"
)

// ImportReport counts the outcome of a snapshot import. Records that
// fail validation are skipped and counted rather than aborting the
// whole import.
type ImportReport struct {
	Imported   int `json:"imported"`
	Duplicates int `json:"duplicates"`
	Errors     int `json:"errors"`
}

// Export serializes every collection into a snapshot. The snapshot
// records the schema version it was taken at so a future import can
// detect incompatible dumps.
func (r *Repository) Export() (*types.Snapshot, error) {
	entries, err := r.store.AllEntries()
	if err != nil {
		return nil, fmt.Errorf("failed to export journal entries: %w", err)
	}
	moods, err := r.store.AllMoods()
	if err != nil {
		return nil, fmt.Errorf("failed to export mood entries: %w", err)
	}
	insights, err := r.store.AllInsights()
	if err != nil {
		return nil, fmt.Errorf("failed to export insights: %w", err)
	}
	sessions, err := r.store.ListSessions(0, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to export therapy sessions: %w", err)
	}
	messages, err := r.store.AllMessages()
	if err != nil {
		return nil, fmt.Errorf("failed to export therapy messages: %w", err)
	}
	backups, err := r.store.AllBackups()
	if err != nil {
		return nil, fmt.Errorf("failed to export imported backups: %w", err)
	}
	settings, err := r.store.GetSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to export settings: %w", err)
	}
	prefs, err := r.store.GetPreferences()
	if err != nil {
		return nil, fmt.Errorf("failed to export preferences: %w", err)
	}

	return &types.Snapshot{
		Metadata: types.SnapshotMetadata{
			SchemaVersion: sqlite.SchemaVersion,
			ExportedAt:    r.now(),
			TotalEntries:  len(entries),
		},
		Entries:     entries,
		Moods:       moods,
		Insights:    insights,
		Sessions:    sessions,
		Messages:    messages,
		Backups:     backups,
		Settings:    settings,
		Preferences: prefs,
	}, nil
}

// Import loads a snapshot's records through the same creation hooks as
// live writes. Unless force is set, entries whose checksum already
// appears among stored backups are skipped as likely duplicates.
// Record IDs from the snapshot are preserved so cross-references
// (insight to entry, message to session) survive; entry timestamps are
// restored after insert so analytics over imported history stay
// accurate.
func (r *Repository) Import(snap *types.Snapshot, force bool) (*ImportReport, error) {
	if snap.Metadata.SchemaVersion > sqlite.SchemaVersion {
		return nil, fmt.Errorf("snapshot schema version %d is newer than supported version %d",
			snap.Metadata.SchemaVersion, sqlite.SchemaVersion)
	}

	report := &ImportReport{}

	for i := range snap.Entries {
		entry := snap.Entries[i]
		if !force {
			dup, err := r.store.HasChecksum(types.Checksum(entry.Content, entry.Date))
			if err != nil {
				return nil, fmt.Errorf("failed to check for duplicate backup: %w", err)
			}
			if dup {
				report.Duplicates++
				continue
			}
		}
		createdAt, updatedAt := entry.CreatedAt, entry.UpdatedAt
		if err := r.store.InsertEntry(&entry); err != nil {
			report.Errors++
			r.logger.Warn("skipping invalid entry in snapshot",
				zap.String("id", entry.ID), zap.Error(err))
			continue
		}
		if !createdAt.IsZero() {
			if err := r.store.SetEntryTimestamps(entry.ID, createdAt, updatedAt); err != nil {
				report.Errors++
				continue
			}
		}
		report.Imported++
	}

	for i := range snap.Moods {
		mood := snap.Moods[i]
		if err := r.store.InsertMood(&mood); err != nil {
			report.Errors++
			r.logger.Warn("skipping invalid mood in snapshot",
				zap.String("id", mood.ID), zap.Error(err))
			continue
		}
		report.Imported++
	}

	for i := range snap.Insights {
		insight := snap.Insights[i]
		if err := r.store.InsertInsight(&insight); err != nil {
			report.Errors++
			continue
		}
		report.Imported++
	}

	for i := range snap.Sessions {
		session := snap.Sessions[i]
		if err := r.store.InsertSession(&session); err != nil {
			report.Errors++
			continue
		}
		report.Imported++
	}

	for i := range snap.Messages {
		message := snap.Messages[i]
		if err := r.store.InsertMessage(&message); err != nil {
			report.Errors++
			r.logger.Warn("skipping invalid message in snapshot",
				zap.String("id", message.ID), zap.Error(err))
			continue
		}
		report.Imported++
	}

	for i := range snap.Backups {
		backup := snap.Backups[i]
		if err := r.store.InsertBackup(&backup); err != nil {
			report.Errors++
			r.logger.Warn("skipping invalid backup in snapshot",
				zap.String("id", backup.ID), zap.Error(err))
			continue
		}
		report.Imported++
	}

	if snap.Settings != nil {
		if err := r.store.SaveSettings(snap.Settings); err != nil {
			report.Errors++
		}
	}
	if snap.Preferences != nil {
		if err := r.store.SavePreferences(snap.Preferences); err != nil {
			report.Errors++
		}
	}

	r.invalidate()
	r.logger.Info("snapshot imported",
		zap.Int("imported", report.Imported),
		zap.Int("duplicates", report.Duplicates),
		zap.Int("errors", report.Errors))
	return report, nil
}
