package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mesh-intelligence/lantern/pkg/types"
)

// Singleton settings rows: at most one logical row each, created lazily
// with defaults on first read and updated in place.

// GetSettings returns the app settings, creating the default row on
// first access.
func (s *Store) GetSettings() (*types.AppSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	var settings types.AppSettings
	found, err := s.readSingleton("app_settings", &settings)
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}
	if !found {
		settings = types.DefaultAppSettings()
		settings.UpdatedAt = s.now()
		if err := s.writeSingleton("app_settings", &settings, settings.UpdatedAt); err != nil {
			return nil, fmt.Errorf("initializing settings: %w", err)
		}
	}
	return &settings, nil
}

// SaveSettings replaces the app settings, stamping UpdatedAt.
func (s *Store) SaveSettings(settings *types.AppSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkOpen(); err != nil {
		return err
	}
	settings.UpdatedAt = s.now()
	if err := s.writeSingleton("app_settings", settings, settings.UpdatedAt); err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	return nil
}

// GetPreferences returns the user preferences, creating the default row
// on first access.
func (s *Store) GetPreferences() (*types.UserPreferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	var prefs types.UserPreferences
	found, err := s.readSingleton("user_preferences", &prefs)
	if err != nil {
		return nil, fmt.Errorf("loading preferences: %w", err)
	}
	if !found {
		prefs = types.DefaultUserPreferences()
		prefs.UpdatedAt = s.now()
		if err := s.writeSingleton("user_preferences", &prefs, prefs.UpdatedAt); err != nil {
			return nil, fmt.Errorf("initializing preferences: %w", err)
		}
	}
	return &prefs, nil
}

// SavePreferences replaces the user preferences, stamping UpdatedAt.
func (s *Store) SavePreferences(prefs *types.UserPreferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkOpen(); err != nil {
		return err
	}
	prefs.UpdatedAt = s.now()
	if err := s.writeSingleton("user_preferences", prefs, prefs.UpdatedAt); err != nil {
		return fmt.Errorf("saving preferences: %w", err)
	}
	return nil
}

// readSingleton loads the single row of a settings table into v.
// Returns false when the row does not exist yet.
func (s *Store) readSingleton(table string, v any) (bool, error) {
	var raw string
	err := s.db.QueryRow("SELECT value FROM " + table + " WHERE id = 1").Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, err
	}
	return true, nil
}

// writeSingleton upserts the single row of a settings table.
func (s *Store) writeSingleton(table string, v any, updatedAt time.Time) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		INSERT INTO `+table+` (id, value, updated_at) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at`,
		string(raw), formatTime(updatedAt))
	return err
}
