package sqlite

import (
	"strings"
	"time"

	"github.com/mesh-intelligence/lantern/pkg/types"
)

// Write-time hooks. Each is a pure validate-then-stamp function run by
// the write path before the statement commits; a returned error aborts
// that single write and nothing is persisted. Timestamps are always
// stamped here, never taken from the caller.

// dateLayout is the calendar date format used throughout the store.
const dateLayout = "2006-01-02"

// prepareEntryCreate stamps a new journal entry and rejects empty
// content. Entry mood is deliberately not range-checked; only MoodEntry
// enforces the 1-5 scale.
func prepareEntryCreate(e *types.JournalEntry, now time.Time) error {
	if strings.TrimSpace(e.Content) == "" {
		return types.ErrEmptyContent
	}
	if e.Date == "" {
		e.Date = now.Format(dateLayout)
	}
	if e.Tags == nil {
		e.Tags = []string{}
	}
	e.CreatedAt = now
	e.UpdatedAt = now
	return nil
}

// applyEntryPatch merges a partial update into an existing entry and
// stamps UpdatedAt. Setting content to empty is rejected.
func applyEntryPatch(e *types.JournalEntry, p types.EntryPatch, now time.Time) error {
	if p.Content != nil && strings.TrimSpace(*p.Content) == "" {
		return types.ErrEmptyContent
	}
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Content != nil {
		e.Content = *p.Content
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.Time != nil {
		e.Time = *p.Time
	}
	if p.Mood != nil {
		e.Mood = *p.Mood
	}
	if p.Tags != nil {
		e.Tags = *p.Tags
	}
	if p.Location != nil {
		e.Location = p.Location
	}
	if p.MoonPhase != nil {
		e.MoonPhase = *p.MoonPhase
	}
	if p.Weather != nil {
		e.Weather = p.Weather
	}
	if p.AIInsights != nil {
		e.AIInsights = p.AIInsights
	}
	e.UpdatedAt = now
	return nil
}

// prepareMoodCreate stamps a new mood entry and enforces the mood scale.
func prepareMoodCreate(m *types.MoodEntry, now time.Time) error {
	if !types.ValidMood(m.Mood) {
		return types.ErrInvalidMood
	}
	if m.Date == "" {
		m.Date = now.Format(dateLayout)
	}
	if m.Factors == nil {
		m.Factors = []string{}
	}
	m.CreatedAt = now
	m.UpdatedAt = now
	return nil
}

// applyMoodPatch merges a partial update into an existing mood entry.
// The mood scale is re-checked on update.
func applyMoodPatch(m *types.MoodEntry, p types.MoodPatch, now time.Time) error {
	if p.Mood != nil && !types.ValidMood(*p.Mood) {
		return types.ErrInvalidMood
	}
	if p.Date != nil {
		m.Date = *p.Date
	}
	if p.Mood != nil {
		m.Mood = *p.Mood
	}
	if p.Notes != nil {
		m.Notes = *p.Notes
	}
	if p.Factors != nil {
		m.Factors = *p.Factors
	}
	if p.Energy != nil {
		m.Energy = *p.Energy
	}
	if p.Sleep != nil {
		m.Sleep = *p.Sleep
	}
	if p.Stress != nil {
		m.Stress = *p.Stress
	}
	if p.Anxiety != nil {
		m.Anxiety = *p.Anxiety
	}
	m.UpdatedAt = now
	return nil
}

// prepareInsightCreate stamps a new insight. Insights arrive pre-built
// from the external generator and are stored verbatim.
func prepareInsightCreate(i *types.DeepInsight, now time.Time) error {
	if i.Themes == nil {
		i.Themes = []string{}
	}
	if i.Suggestions == nil {
		i.Suggestions = []string{}
	}
	if i.ReflectionPrompts == nil {
		i.ReflectionPrompts = []string{}
	}
	i.CreatedAt = now
	return nil
}

// prepareSessionCreate stamps a new therapy session and defaults its
// sequence fields to empty.
func prepareSessionCreate(s *types.TherapySession, now time.Time) error {
	if s.Date == "" {
		s.Date = now.Format(dateLayout)
	}
	if s.Exercises == nil {
		s.Exercises = []string{}
	}
	if s.Tags == nil {
		s.Tags = []string{}
	}
	s.CreatedAt = now
	s.UpdatedAt = now
	return nil
}

// prepareMessageCreate validates the sender and stamps the message
// timestamp when absent.
func prepareMessageCreate(m *types.TherapyMessage, now time.Time) error {
	if strings.TrimSpace(m.Content) == "" {
		return types.ErrEmptyContent
	}
	if !types.ValidSender(m.Sender) {
		return types.ErrInvalidSender
	}
	if m.Timestamp.IsZero() {
		m.Timestamp = now
	}
	return nil
}

// prepareBackupCreate stamps a new imported backup, defaults its
// provenance fields, and computes the checksum when absent. Content and
// import source are required.
func prepareBackupCreate(b *types.ImportedBackup, now time.Time) error {
	if strings.TrimSpace(b.Content) == "" {
		return types.ErrEmptyContent
	}
	if strings.TrimSpace(b.ImportSource) == "" {
		return types.ErrMissingImportSource
	}
	if b.Tags == nil {
		b.Tags = []string{}
	}
	if b.ImportMethod == "" {
		b.ImportMethod = types.ImportMethodManual
	}
	if b.OriginalImportDate.IsZero() {
		b.OriginalImportDate = now
	}
	if b.Checksum == "" {
		b.Checksum = types.Checksum(b.Content, b.Date)
	}
	b.CreatedAt = now
	b.UpdatedAt = now
	return nil
}
