package types

// Standard collection names. Each maps to one SQLite table.
const (
	CollectionEntries     = "journal_entries"
	CollectionMoods       = "mood_entries"
	CollectionInsights    = "deep_insights"
	CollectionSessions    = "therapy_sessions"
	CollectionMessages    = "therapy_messages"
	CollectionSettings    = "app_settings"
	CollectionPreferences = "user_preferences"
	CollectionBackups     = "imported_backups"
)

// StandardCollectionNames lists all collection names for enumeration.
var StandardCollectionNames = []string{
	CollectionEntries,
	CollectionMoods,
	CollectionInsights,
	CollectionSessions,
	CollectionMessages,
	CollectionSettings,
	CollectionPreferences,
	CollectionBackups,
}
