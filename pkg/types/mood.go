package types

import "time"

// Mood scale bounds for MoodEntry.
const (
	MoodMin = 1
	MoodMax = 5
)

// MoodEntry is a standalone daily mood sample. Unlike JournalEntry.Mood,
// the mood value here is validated against [MoodMin, MoodMax] on both
// create and update.
type MoodEntry struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Mood      int       `json:"mood"`
	Notes     string    `json:"notes,omitempty"`
	Factors   []string  `json:"factors,omitempty"`
	Energy    int       `json:"energy,omitempty"`
	Sleep     float64   `json:"sleep,omitempty"`
	Stress    int       `json:"stress,omitempty"`
	Anxiety   int       `json:"anxiety,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MoodPatch is a partial update for a MoodEntry. Nil fields are left
// unchanged.
type MoodPatch struct {
	Date    *string   `json:"date,omitempty"`
	Mood    *int      `json:"mood,omitempty"`
	Notes   *string   `json:"notes,omitempty"`
	Factors *[]string `json:"factors,omitempty"`
	Energy  *int      `json:"energy,omitempty"`
	Sleep   *float64  `json:"sleep,omitempty"`
	Stress  *int      `json:"stress,omitempty"`
	Anxiety *int      `json:"anxiety,omitempty"`
}

// ValidMood reports whether mood is within the MoodEntry scale.
func ValidMood(mood int) bool {
	return mood >= MoodMin && mood <= MoodMax
}
