package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mesh-intelligence/lantern/pkg/types"
)

const sessionColumns = `session_id, date, exercises, summary, mood, tags,
	created_at, updated_at`

const messageColumns = `message_id, session_id, content, sender, type, timestamp`

// InsertSession persists a new therapy session. The creation hook
// stamps timestamps and defaults the sequence fields to empty.
func (s *Store) InsertSession(sess *types.TherapySession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkOpen(); err != nil {
		return err
	}
	if err := prepareSessionCreate(sess, s.now()); err != nil {
		return err
	}
	if sess.ID == "" {
		sess.ID = newUUID()
	}

	exercises, err := encodeStrings(sess.Exercises)
	if err != nil {
		return err
	}
	tags, err := encodeStrings(sess.Tags)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		INSERT INTO therapy_sessions (`+sessionColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(session_id) DO UPDATE SET
			date = excluded.date,
			exercises = excluded.exercises,
			summary = excluded.summary,
			mood = excluded.mood,
			tags = excluded.tags,
			updated_at = excluded.updated_at`,
		sess.ID, sess.Date, exercises, sess.Summary, sess.Mood, tags,
		formatTime(sess.CreatedAt), formatTime(sess.UpdatedAt))
	if err != nil {
		return fmt.Errorf("upserting therapy session: %w", err)
	}
	return nil
}

// GetSession retrieves a therapy session by ID.
func (s *Store) GetSession(id string) (*types.TherapySession, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	row := s.db.QueryRow(
		"SELECT "+sessionColumns+" FROM therapy_sessions WHERE session_id = ?", id)
	return scanSession(row)
}

// ListSessions returns sessions newest first. A limit of 0 means no
// limit.
func (s *Store) ListSessions(limit, offset int) ([]types.TherapySession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	query := "SELECT " + sessionColumns + " FROM therapy_sessions ORDER BY created_at DESC, session_id DESC"
	var args []any
	if limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, limit, offset)
	} else if offset > 0 {
		query += " LIMIT -1 OFFSET ?"
		args = append(args, offset)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying therapy sessions: %w", err)
	}
	defer rows.Close()

	sessions := make([]types.TherapySession, 0)
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, *sess)
	}
	return sessions, rows.Err()
}

// DeleteSession removes a session and all of its messages as one
// transaction. Returns ErrNotFound if the session does not exist; its
// messages are untouched in that case.
func (s *Store) DeleteSession(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkOpen(); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("deleting therapy session: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRow("SELECT 1 FROM therapy_sessions WHERE session_id = ?", id).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return types.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("checking therapy session: %w", err)
	}

	if _, err := tx.Exec("DELETE FROM therapy_messages WHERE session_id = ?", id); err != nil {
		return fmt.Errorf("deleting session messages: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM therapy_sessions WHERE session_id = ?", id); err != nil {
		return fmt.Errorf("deleting therapy session: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("deleting therapy session: %w", err)
	}
	return nil
}

// InsertMessage persists a new message in a session. The creation hook
// validates the sender and stamps the timestamp when absent.
func (s *Store) InsertMessage(m *types.TherapyMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkOpen(); err != nil {
		return err
	}
	if err := prepareMessageCreate(m, s.now()); err != nil {
		return err
	}
	if m.ID == "" {
		m.ID = newUUID()
	}

	_, err := s.db.Exec(`
		INSERT INTO therapy_messages (`+messageColumns+`)
		VALUES (?, ?, ?, ?, ?, ?)`,
		m.ID, m.SessionID, m.Content, m.Sender, m.Type, formatTime(m.Timestamp))
	if err != nil {
		return fmt.Errorf("inserting therapy message: %w", err)
	}
	return nil
}

// MessagesBySession returns a session's messages in timestamp order.
func (s *Store) MessagesBySession(sessionID string) ([]types.TherapyMessage, error) {
	if sessionID == "" {
		return nil, types.ErrInvalidID
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkOpen(); err != nil {
		return nil, err
	}
	return s.queryMessages(
		"SELECT "+messageColumns+" FROM therapy_messages WHERE session_id = ? ORDER BY timestamp ASC, message_id ASC",
		sessionID)
}

// AllMessages returns every message across sessions, timestamp order.
func (s *Store) AllMessages() ([]types.TherapyMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkOpen(); err != nil {
		return nil, err
	}
	return s.queryMessages(
		"SELECT " + messageColumns + " FROM therapy_messages ORDER BY timestamp ASC, message_id ASC")
}

func (s *Store) queryMessages(query string, args ...any) ([]types.TherapyMessage, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying therapy messages: %w", err)
	}
	defer rows.Close()

	messages := make([]types.TherapyMessage, 0)
	for rows.Next() {
		var m types.TherapyMessage
		var timestamp string
		if err := rows.Scan(&m.ID, &m.SessionID, &m.Content, &m.Sender, &m.Type, &timestamp); err != nil {
			return nil, fmt.Errorf("scanning therapy message: %w", err)
		}
		if m.Timestamp, err = parseTime(timestamp); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

func scanSession(row scanner) (*types.TherapySession, error) {
	var sess types.TherapySession
	var exercises, tags, createdAt, updatedAt string

	err := row.Scan(&sess.ID, &sess.Date, &exercises, &sess.Summary,
		&sess.Mood, &tags, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning therapy session: %w", err)
	}

	if sess.Exercises, err = decodeStrings(exercises); err != nil {
		return nil, err
	}
	if sess.Tags, err = decodeStrings(tags); err != nil {
		return nil, err
	}
	if sess.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if sess.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &sess, nil
}
