package sqlite

import (
	"database/sql"
	"fmt"
)

// migration is one schema version step: a named, ordered batch of DDL
// applied exactly once. Steps only ever add tables or indexes.
type migration struct {
	version    int
	name       string
	statements []string
}

// migrations is the ordered schema history. Append-only; never reorder
// or edit a released step.
var migrations = []migration{
	{
		version: 1,
		name:    "journal and mood entries",
		statements: []string{
			createJournalEntries,
			createMoodEntries,
			idxEntriesDate,
			idxEntriesCreatedAt,
			idxEntriesMood,
			idxMoodsDate,
			idxMoodsCreatedAt,
			idxMoodsMood,
		},
	},
	{
		version:    2,
		name:       "deep insights",
		statements: []string{createDeepInsights, idxInsightsEntry, idxInsightsCreatedAt, idxInsightsEmotion, idxInsightsIntensity},
	},
	{
		version:    3,
		name:       "therapy sessions and messages",
		statements: []string{createTherapySessions, createTherapyMessages, idxSessionsCreatedAt, idxMessagesSession, idxMessagesTimestamp},
	},
	{
		version:    4,
		name:       "settings and preferences",
		statements: []string{createAppSettings, createUserPreferences},
	},
	{
		version:    5,
		name:       "imported backups",
		statements: []string{createImportedBackups, idxBackupsImportDate, idxBackupsSource, idxBackupsCreatedAt},
	},
	{
		version:    6,
		name:       "duplicate detection and composite indexes",
		statements: []string{idxBackupsChecksum, idxBackupsMethod, idxBackupsDate, idxEntriesDateMood},
	},
}

// SchemaVersion is the current schema version, i.e. the version of the
// last migration step.
var SchemaVersion = migrations[len(migrations)-1].version

// migrate applies every migration step newer than the version recorded
// in PRAGMA user_version, in order, each inside its own transaction.
// The new version is persisted with the step, so re-opening an
// up-to-date store is a no-op. Returns the number of steps applied.
func migrate(db *sql.DB) (int, error) {
	var current int
	if err := db.QueryRow("PRAGMA user_version").Scan(&current); err != nil {
		return 0, fmt.Errorf("reading schema version: %w", err)
	}
	if current > SchemaVersion {
		return 0, fmt.Errorf("store schema version %d is newer than supported version %d", current, SchemaVersion)
	}

	applied := 0
	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		if err := applyMigration(db, m); err != nil {
			return applied, fmt.Errorf("migration %d (%s): %w", m.version, m.name, err)
		}
		applied++
	}
	return applied, nil
}

func applyMigration(db *sql.DB, m migration) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range m.statements {
		if _, err := tx.Exec(stmt); err != nil {
			return err
		}
	}
	// PRAGMA user_version does not accept bind parameters.
	if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", m.version)); err != nil {
		return err
	}
	return tx.Commit()
}
