package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mesh-intelligence/lantern/pkg/types"
)

const backupColumns = `backup_id, title, content, date, time, mood, tags,
	location, moon_phase, weather, ai_insights, original_import_date,
	import_source, import_method, original_file_name, checksum,
	created_at, updated_at`

// InsertBackup persists an imported backup. The creation hook validates
// content and import source, defaults the provenance fields, and computes
// the checksum when the importer did not supply one.
func (s *Store) InsertBackup(b *types.ImportedBackup) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkOpen(); err != nil {
		return err
	}
	if err := prepareBackupCreate(b, s.now()); err != nil {
		return err
	}
	if b.ID == "" {
		b.ID = newUUID()
	}

	tags, err := encodeStrings(b.Tags)
	if err != nil {
		return err
	}
	location, err := encodeNullable(b.Location)
	if err != nil {
		return err
	}
	weather, err := encodeNullable(b.Weather)
	if err != nil {
		return err
	}
	insights, err := encodeNullable(b.AIInsights)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		INSERT INTO imported_backups (`+backupColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.Title, b.Content, b.Date, b.Time, b.Mood, tags,
		location, b.MoonPhase, weather, insights,
		formatTime(b.OriginalImportDate), b.ImportSource, b.ImportMethod,
		b.OriginalFileName, b.Checksum,
		formatTime(b.CreatedAt), formatTime(b.UpdatedAt))
	if err != nil {
		return fmt.Errorf("inserting imported backup: %w", err)
	}
	return nil
}

// GetBackup retrieves an imported backup by ID.
func (s *Store) GetBackup(id string) (*types.ImportedBackup, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	row := s.db.QueryRow(
		"SELECT "+backupColumns+" FROM imported_backups WHERE backup_id = ?", id)
	return scanBackup(row)
}

// DeleteBackup removes an imported backup. Backups never expire on
// their own; deletion is always explicit.
func (s *Store) DeleteBackup(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkOpen(); err != nil {
		return err
	}

	res, err := s.db.Exec("DELETE FROM imported_backups WHERE backup_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting imported backup: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting imported backup: %w", err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}

// ListBackups returns backups newest first. A limit of 0 means no
// limit.
func (s *Store) ListBackups(limit, offset int) ([]types.ImportedBackup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	query := "SELECT " + backupColumns + " FROM imported_backups ORDER BY created_at DESC, backup_id DESC"
	var args []any
	if limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, limit, offset)
	} else if offset > 0 {
		query += " LIMIT -1 OFFSET ?"
		args = append(args, offset)
	}
	return s.queryBackups(query, args...)
}

// SearchBackups returns backups whose title starts with query
// (case-insensitive) or whose import source matches one of the
// whitespace-split terms, newest first.
func (s *Store) SearchBackups(query string, limit int) ([]types.ImportedBackup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	all, err := s.queryBackups(
		"SELECT " + backupColumns + " FROM imported_backups ORDER BY created_at DESC, backup_id DESC")
	if err != nil {
		return nil, err
	}

	prefix := strings.ToLower(strings.TrimSpace(query))
	terms := strings.Fields(prefix)

	matched := make([]types.ImportedBackup, 0)
	for _, b := range all {
		if matchesBackup(&b, prefix, terms) {
			matched = append(matched, b)
			if limit > 0 && len(matched) >= limit {
				break
			}
		}
	}
	return matched, nil
}

func matchesBackup(b *types.ImportedBackup, prefix string, terms []string) bool {
	if prefix == "" {
		return false
	}
	if strings.HasPrefix(strings.ToLower(b.Title), prefix) {
		return true
	}
	source := strings.ToLower(b.ImportSource)
	for _, term := range terms {
		if source == term {
			return true
		}
	}
	return false
}

// HasChecksum reports whether any stored backup carries the given
// checksum. Advisory duplicate detection; a match means "likely
// duplicate", not proof.
func (s *Store) HasChecksum(sum string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkOpen(); err != nil {
		return false, err
	}

	var one int
	err := s.db.QueryRow(
		"SELECT 1 FROM imported_backups WHERE checksum = ? LIMIT 1", sum).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking backup checksum: %w", err)
	}
	return true, nil
}

// AllBackups returns every imported backup, newest first.
func (s *Store) AllBackups() ([]types.ImportedBackup, error) {
	return s.ListBackups(0, 0)
}

func (s *Store) queryBackups(query string, args ...any) ([]types.ImportedBackup, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying imported backups: %w", err)
	}
	defer rows.Close()

	backups := make([]types.ImportedBackup, 0)
	for rows.Next() {
		b, err := scanBackup(rows)
		if err != nil {
			return nil, err
		}
		backups = append(backups, *b)
	}
	return backups, rows.Err()
}

func scanBackup(row scanner) (*types.ImportedBackup, error) {
	var b types.ImportedBackup
	var tags, importDate, createdAt, updatedAt string
	var location, weather, insights sql.NullString

	err := row.Scan(&b.ID, &b.Title, &b.Content, &b.Date, &b.Time, &b.Mood,
		&tags, &location, &b.MoonPhase, &weather, &insights,
		&importDate, &b.ImportSource, &b.ImportMethod, &b.OriginalFileName,
		&b.Checksum, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning imported backup: %w", err)
	}

	if b.Tags, err = decodeStrings(tags); err != nil {
		return nil, err
	}
	if b.Location, err = decodeNullable[types.LocationData](location); err != nil {
		return nil, err
	}
	if b.Weather, err = decodeNullable[types.WeatherSnapshot](weather); err != nil {
		return nil, err
	}
	if b.AIInsights, err = decodeNullable[types.DeepInsight](insights); err != nil {
		return nil, err
	}
	if b.OriginalImportDate, err = parseTime(importDate); err != nil {
		return nil, err
	}
	if b.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if b.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &b, nil
}
