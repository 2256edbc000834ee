package types

import "time"

// LocationData describes where an entry was written. Supplied by the
// enrichment layer before the entry reaches the store.
type LocationData struct {
	City      string  `json:"city,omitempty"`
	Country   string  `json:"country,omitempty"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
}

// WeatherSnapshot is an optional weather observation attached to an entry.
type WeatherSnapshot struct {
	Condition   string  `json:"condition,omitempty"`
	Temperature float64 `json:"temperature,omitempty"`
	Humidity    float64 `json:"humidity,omitempty"`
}

// JournalEntry is a user-authored reflection.
//
// Content must be non-empty at creation and update. Mood is advisory on
// journal entries: the 1-5 bound is enforced only on MoodEntry, and
// imported entries may carry out-of-range values.
type JournalEntry struct {
	ID         string           `json:"id"`
	Title      string           `json:"title,omitempty"`
	Content    string           `json:"content"`
	Date       string           `json:"date"` // calendar date, YYYY-MM-DD
	Time       string           `json:"time,omitempty"` // clock time, HH:MM
	Mood       int              `json:"mood,omitempty"`
	Tags       []string         `json:"tags,omitempty"`
	Location   *LocationData    `json:"location,omitempty"`
	MoonPhase  string           `json:"moonPhase,omitempty"`
	Weather    *WeatherSnapshot `json:"weather,omitempty"`
	AIInsights *DeepInsight     `json:"aiInsights,omitempty"`
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`
}

// EntryPatch is a partial update for a JournalEntry. Nil fields are left
// unchanged. UpdatedAt is always stamped by the store; callers cannot
// supply it.
type EntryPatch struct {
	Title      *string          `json:"title,omitempty"`
	Content    *string          `json:"content,omitempty"`
	Date       *string          `json:"date,omitempty"`
	Time       *string          `json:"time,omitempty"`
	Mood       *int             `json:"mood,omitempty"`
	Tags       *[]string        `json:"tags,omitempty"`
	Location   *LocationData    `json:"location,omitempty"`
	MoonPhase  *string          `json:"moonPhase,omitempty"`
	Weather    *WeatherSnapshot `json:"weather,omitempty"`
	AIInsights *DeepInsight     `json:"aiInsights,omitempty"`
}

// WordCount returns the number of whitespace-separated tokens in the
// entry content.
func (e *JournalEntry) WordCount() int {
	return countWords(e.Content)
}
