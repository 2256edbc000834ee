package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mesh-intelligence/lantern/pkg/types"
)

const moodColumns = `mood_id, date, mood, notes, factors, energy, sleep,
	stress, anxiety, created_at, updated_at`

// InsertMood persists a new mood entry. The creation hook rejects moods
// outside the 1-5 scale and stamps timestamps.
func (s *Store) InsertMood(m *types.MoodEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkOpen(); err != nil {
		return err
	}
	if err := prepareMoodCreate(m, s.now()); err != nil {
		return err
	}
	if m.ID == "" {
		m.ID = newUUID()
	}
	return s.writeMood(m)
}

func (s *Store) writeMood(m *types.MoodEntry) error {
	factors, err := encodeStrings(m.Factors)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		INSERT INTO mood_entries (`+moodColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(mood_id) DO UPDATE SET
			date = excluded.date,
			mood = excluded.mood,
			notes = excluded.notes,
			factors = excluded.factors,
			energy = excluded.energy,
			sleep = excluded.sleep,
			stress = excluded.stress,
			anxiety = excluded.anxiety,
			updated_at = excluded.updated_at`,
		m.ID, m.Date, m.Mood, m.Notes, factors, m.Energy, m.Sleep,
		m.Stress, m.Anxiety, formatTime(m.CreatedAt), formatTime(m.UpdatedAt))
	if err != nil {
		return fmt.Errorf("upserting mood entry: %w", err)
	}
	return nil
}

// GetMood retrieves a mood entry by ID.
func (s *Store) GetMood(id string) (*types.MoodEntry, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	row := s.db.QueryRow(
		"SELECT "+moodColumns+" FROM mood_entries WHERE mood_id = ?", id)
	return scanMood(row)
}

// UpdateMood merges a partial update into the stored mood entry. The
// mood bound is enforced on update as well as create.
func (s *Store) UpdateMood(id string, patch types.MoodPatch) (*types.MoodEntry, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	row := s.db.QueryRow(
		"SELECT "+moodColumns+" FROM mood_entries WHERE mood_id = ?", id)
	m, err := scanMood(row)
	if err != nil {
		return nil, err
	}
	if err := applyMoodPatch(m, patch, s.now()); err != nil {
		return nil, err
	}
	if err := s.writeMood(m); err != nil {
		return nil, err
	}
	return m, nil
}

// DeleteMood removes a mood entry.
func (s *Store) DeleteMood(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkOpen(); err != nil {
		return err
	}

	res, err := s.db.Exec("DELETE FROM mood_entries WHERE mood_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting mood entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting mood entry: %w", err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}

// ListMoods returns mood entries newest first. A limit of 0 means no
// limit.
func (s *Store) ListMoods(limit, offset int) ([]types.MoodEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	query := "SELECT " + moodColumns + " FROM mood_entries ORDER BY created_at DESC, mood_id DESC"
	var args []any
	if limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, limit, offset)
	} else if offset > 0 {
		query += " LIMIT -1 OFFSET ?"
		args = append(args, offset)
	}
	return s.queryMoods(query, args...)
}

// MoodsSince returns mood entries created at or after cutoff, oldest
// first. Chronological order is what the trend computation consumes.
func (s *Store) MoodsSince(cutoff time.Time) ([]types.MoodEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkOpen(); err != nil {
		return nil, err
	}
	return s.queryMoods(
		"SELECT "+moodColumns+" FROM mood_entries WHERE created_at >= ? ORDER BY created_at ASC, mood_id ASC",
		formatTime(cutoff))
}

// AllMoods returns every mood entry, newest first.
func (s *Store) AllMoods() ([]types.MoodEntry, error) {
	return s.ListMoods(0, 0)
}

func (s *Store) queryMoods(query string, args ...any) ([]types.MoodEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying mood entries: %w", err)
	}
	defer rows.Close()

	moods := make([]types.MoodEntry, 0)
	for rows.Next() {
		m, err := scanMood(rows)
		if err != nil {
			return nil, err
		}
		moods = append(moods, *m)
	}
	return moods, rows.Err()
}

func scanMood(row scanner) (*types.MoodEntry, error) {
	var m types.MoodEntry
	var factors, createdAt, updatedAt string

	err := row.Scan(&m.ID, &m.Date, &m.Mood, &m.Notes, &factors, &m.Energy,
		&m.Sleep, &m.Stress, &m.Anxiety, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning mood entry: %w", err)
	}

	if m.Factors, err = decodeStrings(factors); err != nil {
		return nil, err
	}
	if m.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if m.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}
