package journal

import (
	"fmt"

	"github.com/mesh-intelligence/lantern/pkg/types"
)

// Settings returns the app settings singleton, creating defaults on
// first access.
func (r *Repository) Settings() (*types.AppSettings, error) {
	if cached, ok := r.cache.Get(settingsKey); ok {
		return cached.(*types.AppSettings), nil
	}

	settings, err := r.store.GetSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	r.cache.Set(settingsKey, settings)
	return settings, nil
}

// SaveSettings replaces the app settings singleton.
func (r *Repository) SaveSettings(settings *types.AppSettings) error {
	if err := r.store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	r.invalidate()
	return nil
}

// Preferences returns the user preferences singleton, creating
// defaults on first access.
func (r *Repository) Preferences() (*types.UserPreferences, error) {
	if cached, ok := r.cache.Get(preferencesKey); ok {
		return cached.(*types.UserPreferences), nil
	}

	prefs, err := r.store.GetPreferences()
	if err != nil {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}
	r.cache.Set(preferencesKey, prefs)
	return prefs, nil
}

// SavePreferences replaces the user preferences singleton.
func (r *Repository) SavePreferences(prefs *types.UserPreferences) error {
	if err := r.store.SavePreferences(prefs); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	r.invalidate()
	return nil
}
