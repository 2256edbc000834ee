package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mesh-intelligence/lantern/pkg/types"
)

const entryColumns = `entry_id, title, content, date, time, mood, tags,
	location, moon_phase, weather, ai_insights, created_at, updated_at`

// InsertEntry persists a new journal entry. Creation hooks run first:
// content is validated and timestamps are stamped. An empty ID gets a
// generated UUID v7. The entry is updated in place with its assigned ID
// and timestamps.
func (s *Store) InsertEntry(e *types.JournalEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkOpen(); err != nil {
		return err
	}
	if err := prepareEntryCreate(e, s.now()); err != nil {
		return err
	}
	if e.ID == "" {
		e.ID = newUUID()
	}
	return s.writeEntry(e)
}

// writeEntry upserts an entry row. created_at only applies on insert;
// the conflict clause never moves it.
func (s *Store) writeEntry(e *types.JournalEntry) error {
	tags, err := encodeStrings(e.Tags)
	if err != nil {
		return err
	}
	location, err := encodeNullable(e.Location)
	if err != nil {
		return err
	}
	weather, err := encodeNullable(e.Weather)
	if err != nil {
		return err
	}
	insights, err := encodeNullable(e.AIInsights)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		INSERT INTO journal_entries (`+entryColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(entry_id) DO UPDATE SET
			title = excluded.title,
			content = excluded.content,
			date = excluded.date,
			time = excluded.time,
			mood = excluded.mood,
			tags = excluded.tags,
			location = excluded.location,
			moon_phase = excluded.moon_phase,
			weather = excluded.weather,
			ai_insights = excluded.ai_insights,
			updated_at = excluded.updated_at`,
		e.ID, e.Title, e.Content, e.Date, e.Time, e.Mood, tags,
		location, e.MoonPhase, weather, insights,
		formatTime(e.CreatedAt), formatTime(e.UpdatedAt))
	if err != nil {
		return fmt.Errorf("upserting journal entry: %w", err)
	}
	return nil
}

// GetEntry retrieves a journal entry by ID.
func (s *Store) GetEntry(id string) (*types.JournalEntry, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	row := s.db.QueryRow(
		"SELECT "+entryColumns+" FROM journal_entries WHERE entry_id = ?", id)
	return scanEntry(row)
}

// UpdateEntry merges a partial update into the stored entry. Update
// hooks re-validate content and overwrite UpdatedAt; any caller-supplied
// timestamp is discarded. Returns the refreshed entry, or ErrNotFound.
func (s *Store) UpdateEntry(id string, patch types.EntryPatch) (*types.JournalEntry, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	row := s.db.QueryRow(
		"SELECT "+entryColumns+" FROM journal_entries WHERE entry_id = ?", id)
	e, err := scanEntry(row)
	if err != nil {
		return nil, err
	}
	if err := applyEntryPatch(e, patch, s.now()); err != nil {
		return nil, err
	}
	if err := s.writeEntry(e); err != nil {
		return nil, err
	}
	return e, nil
}

// DeleteEntry removes a journal entry. Entries have no cascade
// dependents; an insight referencing the entry is left in place.
func (s *Store) DeleteEntry(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkOpen(); err != nil {
		return err
	}

	res, err := s.db.Exec("DELETE FROM journal_entries WHERE entry_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting journal entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting journal entry: %w", err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}

// ListEntries returns entries in reverse-chronological creation order.
// A limit of 0 means no limit.
func (s *Store) ListEntries(limit, offset int) ([]types.JournalEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	query := "SELECT " + entryColumns + " FROM journal_entries ORDER BY created_at DESC, entry_id DESC"
	var args []any
	if limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, limit, offset)
	} else if offset > 0 {
		query += " LIMIT -1 OFFSET ?"
		args = append(args, offset)
	}
	return s.queryEntries(query, args...)
}

// SearchEntries returns entries whose title starts with query
// (case-insensitive) or whose tag set intersects the whitespace-split
// terms of query, newest first. A limit of 0 means no limit.
func (s *Store) SearchEntries(query string, limit int) ([]types.JournalEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	all, err := s.queryEntries(
		"SELECT " + entryColumns + " FROM journal_entries ORDER BY created_at DESC, entry_id DESC")
	if err != nil {
		return nil, err
	}

	prefix := strings.ToLower(strings.TrimSpace(query))
	terms := strings.Fields(prefix)

	matched := make([]types.JournalEntry, 0)
	for _, e := range all {
		if matchesEntry(&e, prefix, terms) {
			matched = append(matched, e)
			if limit > 0 && len(matched) >= limit {
				break
			}
		}
	}
	return matched, nil
}

// matchesEntry implements the search predicate: title prefix match or
// tag/term intersection, both case-insensitive.
func matchesEntry(e *types.JournalEntry, prefix string, terms []string) bool {
	if prefix == "" {
		return false
	}
	if strings.HasPrefix(strings.ToLower(e.Title), prefix) {
		return true
	}
	for _, tag := range e.Tags {
		lower := strings.ToLower(tag)
		for _, term := range terms {
			if lower == term {
				return true
			}
		}
	}
	return false
}

// EntriesSince returns entries created at or after cutoff, newest
// first.
func (s *Store) EntriesSince(cutoff time.Time) ([]types.JournalEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkOpen(); err != nil {
		return nil, err
	}
	return s.queryEntries(
		"SELECT "+entryColumns+" FROM journal_entries WHERE created_at >= ? ORDER BY created_at DESC, entry_id DESC",
		formatTime(cutoff))
}

// AllEntries returns every journal entry, newest first.
func (s *Store) AllEntries() ([]types.JournalEntry, error) {
	return s.ListEntries(0, 0)
}

// SetEntryTimestamps overwrites the stored created_at/updated_at of an
// entry. Used by the date-repair maintenance operation, which is the
// only write path allowed to move created_at.
func (s *Store) SetEntryTimestamps(id string, createdAt, updatedAt time.Time) error {
	if id == "" {
		return types.ErrInvalidID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkOpen(); err != nil {
		return err
	}

	res, err := s.db.Exec(
		"UPDATE journal_entries SET created_at = ?, updated_at = ? WHERE entry_id = ?",
		formatTime(createdAt), formatTime(updatedAt), id)
	if err != nil {
		return fmt.Errorf("updating entry timestamps: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating entry timestamps: %w", err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}

func (s *Store) queryEntries(query string, args ...any) ([]types.JournalEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying journal entries: %w", err)
	}
	defer rows.Close()

	entries := make([]types.JournalEntry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (*types.JournalEntry, error) {
	var e types.JournalEntry
	var tags, createdAt, updatedAt string
	var location, weather, insights sql.NullString

	err := row.Scan(&e.ID, &e.Title, &e.Content, &e.Date, &e.Time, &e.Mood,
		&tags, &location, &e.MoonPhase, &weather, &insights, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning journal entry: %w", err)
	}

	if e.Tags, err = decodeStrings(tags); err != nil {
		return nil, err
	}
	if e.Location, err = decodeNullable[types.LocationData](location); err != nil {
		return nil, err
	}
	if e.Weather, err = decodeNullable[types.WeatherSnapshot](weather); err != nil {
		return nil, err
	}
	if e.AIInsights, err = decodeNullable[types.DeepInsight](insights); err != nil {
		return nil, err
	}
	if e.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if e.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}
