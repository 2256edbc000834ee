package types

import "time"

// AppSettings is a singleton configuration record, created lazily with
// defaults on first read and updated in place.
type AppSettings struct {
	Theme                string    `json:"theme"`
	NotificationsEnabled bool      `json:"notificationsEnabled"`
	ReminderTime         string    `json:"reminderTime,omitempty"`
	AutoBackup           bool      `json:"autoBackup"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// DefaultAppSettings returns the settings written on first access.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Theme:                "system",
		NotificationsEnabled: true,
		AutoBackup:           false,
	}
}

// UserPreferences is a singleton record of per-user display and capture
// preferences.
type UserPreferences struct {
	DefaultMood     int       `json:"defaultMood"`
	ShowMoonPhase   bool      `json:"showMoonPhase"`
	ShowLocation    bool      `json:"showLocation"`
	ShowWeather     bool      `json:"showWeather"`
	FirstDayOfWeek  string    `json:"firstDayOfWeek"`
	DateFormat      string    `json:"dateFormat"`
	InsightsEnabled bool      `json:"insightsEnabled"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// DefaultUserPreferences returns the preferences written on first access.
func DefaultUserPreferences() UserPreferences {
	return UserPreferences{
		DefaultMood:     3,
		ShowMoonPhase:   true,
		ShowLocation:    true,
		ShowWeather:     true,
		FirstDayOfWeek:  "monday",
		DateFormat:      "2006-01-02",
		InsightsEnabled: true,
	}
}
