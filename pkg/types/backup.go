package types

import "time"

// Import method values for ImportedBackup.
const (
	ImportMethodManual = "manual"
	ImportMethodAuto   = "auto"
)

// ImportedBackup is an archival copy of a journal entry captured during
// import. Backups are never auto-expired: restoring one copies it into a
// fresh JournalEntry and leaves the backup untouched.
type ImportedBackup struct {
	ID                 string           `json:"id"`
	Title              string           `json:"title,omitempty"`
	Content            string           `json:"content"`
	Date               string           `json:"date"`
	Time               string           `json:"time,omitempty"`
	Mood               int              `json:"mood,omitempty"`
	Tags               []string         `json:"tags,omitempty"`
	Location           *LocationData    `json:"location,omitempty"`
	MoonPhase          string           `json:"moonPhase,omitempty"`
	Weather            *WeatherSnapshot `json:"weather,omitempty"`
	AIInsights         *DeepInsight     `json:"aiInsights,omitempty"`
	OriginalImportDate time.Time        `json:"originalImportDate"`
	ImportSource       string           `json:"importSource"`
	ImportMethod       string           `json:"importMethod,omitempty"`
	OriginalFileName   string           `json:"originalFileName,omitempty"`
	Checksum           string           `json:"checksum,omitempty"`
	CreatedAt          time.Time        `json:"createdAt"`
	UpdatedAt          time.Time        `json:"updatedAt"`
}
