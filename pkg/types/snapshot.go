package types

import "time"

// SnapshotMetadata describes an exported snapshot.
type SnapshotMetadata struct {
	SchemaVersion int       `json:"schemaVersion"`
	ExportedAt    time.Time `json:"exportedAt"`
	TotalEntries  int       `json:"totalEntries"`
}

// Snapshot is a full serialized dump of every collection. Import routes
// each record through the same creation hooks as live writes.
type Snapshot struct {
	Metadata    SnapshotMetadata `json:"metadata"`
	Entries     []JournalEntry   `json:"journalEntries"`
	Moods       []MoodEntry      `json:"moodEntries"`
	Insights    []DeepInsight    `json:"deepInsights"`
	Sessions    []TherapySession `json:"therapySessions"`
	Messages    []TherapyMessage `json:"therapyMessages"`
	Backups     []ImportedBackup `json:"importedBackups"`
	Settings    *AppSettings     `json:"settings,omitempty"`
	Preferences *UserPreferences `json:"userPreferences,omitempty"`
}
