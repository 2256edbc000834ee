package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mesh-intelligence/lantern/pkg/types"
)

const insightColumns = `insight_id, journal_entry_id, primary_emotion, intensity,
	energy_level, sentiment, themes, suggestions, reflection_prompts,
	compassionate_reflection, spiritual_quote, healing_guidance, shadow_work,
	light_work, confidence, created_at`

// InsertInsight persists a pre-built insight record verbatim, stamping
// only CreatedAt. The journal entry reference is not checked: an
// insight may outlive or predate its entry.
func (s *Store) InsertInsight(i *types.DeepInsight) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkOpen(); err != nil {
		return err
	}
	if err := prepareInsightCreate(i, s.now()); err != nil {
		return err
	}
	if i.ID == "" {
		i.ID = newUUID()
	}

	sentiment, err := encodeNullable(i.Sentiment)
	if err != nil {
		return err
	}
	themes, err := encodeStrings(i.Themes)
	if err != nil {
		return err
	}
	suggestions, err := encodeStrings(i.Suggestions)
	if err != nil {
		return err
	}
	prompts, err := encodeStrings(i.ReflectionPrompts)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		INSERT INTO deep_insights (`+insightColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		i.ID, i.JournalEntryID, i.PrimaryEmotion, i.Intensity,
		i.EnergyLevel, sentiment, themes, suggestions, prompts,
		i.CompassionateReflection, i.SpiritualQuote, i.HealingGuidance,
		i.ShadowWork, i.LightWork, i.Confidence, formatTime(i.CreatedAt))
	if err != nil {
		return fmt.Errorf("inserting insight: %w", err)
	}
	return nil
}

// GetInsight retrieves an insight by ID.
func (s *Store) GetInsight(id string) (*types.DeepInsight, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	row := s.db.QueryRow(
		"SELECT "+insightColumns+" FROM deep_insights WHERE insight_id = ?", id)
	return scanInsight(row)
}

// DeleteInsight removes an insight independently of its entry.
func (s *Store) DeleteInsight(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkOpen(); err != nil {
		return err
	}

	res, err := s.db.Exec("DELETE FROM deep_insights WHERE insight_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting insight: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting insight: %w", err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}

// ListInsights returns insights newest first. A limit of 0 means no
// limit.
func (s *Store) ListInsights(limit, offset int) ([]types.DeepInsight, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	query := "SELECT " + insightColumns + " FROM deep_insights ORDER BY created_at DESC, insight_id DESC"
	var args []any
	if limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, limit, offset)
	} else if offset > 0 {
		query += " LIMIT -1 OFFSET ?"
		args = append(args, offset)
	}
	return s.queryInsights(query, args...)
}

// InsightsByEntry returns the insights referencing a journal entry,
// newest first. The relation is a plain id lookup, not ownership.
func (s *Store) InsightsByEntry(entryID string) ([]types.DeepInsight, error) {
	if entryID == "" {
		return nil, types.ErrInvalidID
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkOpen(); err != nil {
		return nil, err
	}
	return s.queryInsights(
		"SELECT "+insightColumns+" FROM deep_insights WHERE journal_entry_id = ? ORDER BY created_at DESC, insight_id DESC",
		entryID)
}

// AllInsights returns every insight, newest first.
func (s *Store) AllInsights() ([]types.DeepInsight, error) {
	return s.ListInsights(0, 0)
}

func (s *Store) queryInsights(query string, args ...any) ([]types.DeepInsight, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying insights: %w", err)
	}
	defer rows.Close()

	insights := make([]types.DeepInsight, 0)
	for rows.Next() {
		i, err := scanInsight(rows)
		if err != nil {
			return nil, err
		}
		insights = append(insights, *i)
	}
	return insights, rows.Err()
}

func scanInsight(row scanner) (*types.DeepInsight, error) {
	var i types.DeepInsight
	var sentiment sql.NullString
	var themes, suggestions, prompts, createdAt string

	err := row.Scan(&i.ID, &i.JournalEntryID, &i.PrimaryEmotion, &i.Intensity,
		&i.EnergyLevel, &sentiment, &themes, &suggestions, &prompts,
		&i.CompassionateReflection, &i.SpiritualQuote, &i.HealingGuidance,
		&i.ShadowWork, &i.LightWork, &i.Confidence, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning insight: %w", err)
	}

	if i.Sentiment, err = decodeNullable[types.Sentiment](sentiment); err != nil {
		return nil, err
	}
	if i.Themes, err = decodeStrings(themes); err != nil {
		return nil, err
	}
	if i.Suggestions, err = decodeStrings(suggestions); err != nil {
		return nil, err
	}
	if i.ReflectionPrompts, err = decodeStrings(prompts); err != nil {
		return nil, err
	}
	if i.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	return &i, nil
}
