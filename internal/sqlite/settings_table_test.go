package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/lantern/pkg/types"
)

func TestGetSettingsCreatesDefaults(t *testing.T) {
	s := setupStore(t)

	settings, err := s.GetSettings()
	require.NoError(t, err)
	assert.Equal(t, "system", settings.Theme)
	assert.True(t, settings.NotificationsEnabled)

	counts, err := s.CollectionCounts()
	require.NoError(t, err)
	assert.Equal(t, 1, counts[types.CollectionSettings], "lazy default row persisted")
}

func TestSaveSettingsUpdatesInPlace(t *testing.T) {
	s := setupStore(t)

	settings, err := s.GetSettings()
	require.NoError(t, err)

	settings.Theme = "dark"
	settings.AutoBackup = true
	require.NoError(t, s.SaveSettings(settings))

	got, err := s.GetSettings()
	require.NoError(t, err)
	assert.Equal(t, "dark", got.Theme)
	assert.True(t, got.AutoBackup)

	counts, err := s.CollectionCounts()
	require.NoError(t, err)
	assert.Equal(t, 1, counts[types.CollectionSettings], "still a single logical row")
}

func TestGetPreferencesCreatesDefaults(t *testing.T) {
	s := setupStore(t)

	prefs, err := s.GetPreferences()
	require.NoError(t, err)
	assert.Equal(t, 3, prefs.DefaultMood)
	assert.True(t, prefs.ShowMoonPhase)

	prefs.DefaultMood = 4
	prefs.ShowWeather = false
	require.NoError(t, s.SavePreferences(prefs))

	got, err := s.GetPreferences()
	require.NoError(t, err)
	assert.Equal(t, 4, got.DefaultMood)
	assert.False(t, got.ShowWeather)
}
