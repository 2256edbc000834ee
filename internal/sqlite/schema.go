package sqlite

// Schema DDL, grouped by the migration version that introduced it.
// History is strictly additive: steps add collections or indexes and
// never drop or rename stored records.

// Version 1: journal entries and mood entries.
const (
	createJournalEntries = `CREATE TABLE journal_entries (
    entry_id TEXT PRIMARY KEY,
    title TEXT NOT NULL DEFAULT '',
    content TEXT NOT NULL,
    date TEXT NOT NULL,
    time TEXT NOT NULL DEFAULT '',
    mood INTEGER NOT NULL DEFAULT 0,
    tags TEXT NOT NULL DEFAULT '[]',
    location TEXT,
    moon_phase TEXT NOT NULL DEFAULT '',
    weather TEXT,
    ai_insights TEXT,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createMoodEntries = `CREATE TABLE mood_entries (
    mood_id TEXT PRIMARY KEY,
    date TEXT NOT NULL,
    mood INTEGER NOT NULL,
    notes TEXT NOT NULL DEFAULT '',
    factors TEXT NOT NULL DEFAULT '[]',
    energy INTEGER NOT NULL DEFAULT 0,
    sleep REAL NOT NULL DEFAULT 0,
    stress INTEGER NOT NULL DEFAULT 0,
    anxiety INTEGER NOT NULL DEFAULT 0,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	idxEntriesDate      = `CREATE INDEX idx_entries_date ON journal_entries(date);`
	idxEntriesCreatedAt = `CREATE INDEX idx_entries_created_at ON journal_entries(created_at DESC);`
	idxEntriesMood      = `CREATE INDEX idx_entries_mood ON journal_entries(mood);`
	idxMoodsDate        = `CREATE INDEX idx_moods_date ON mood_entries(date);`
	idxMoodsCreatedAt   = `CREATE INDEX idx_moods_created_at ON mood_entries(created_at DESC);`
	idxMoodsMood        = `CREATE INDEX idx_moods_mood ON mood_entries(mood);`
)

// Version 2: deep insights.
const (
	createDeepInsights = `CREATE TABLE deep_insights (
    insight_id TEXT PRIMARY KEY,
    journal_entry_id TEXT NOT NULL DEFAULT '',
    primary_emotion TEXT NOT NULL DEFAULT '',
    intensity REAL NOT NULL DEFAULT 0,
    energy_level TEXT NOT NULL DEFAULT '',
    sentiment TEXT,
    themes TEXT NOT NULL DEFAULT '[]',
    suggestions TEXT NOT NULL DEFAULT '[]',
    reflection_prompts TEXT NOT NULL DEFAULT '[]',
    compassionate_reflection TEXT NOT NULL DEFAULT '',
    spiritual_quote TEXT NOT NULL DEFAULT '',
    healing_guidance TEXT NOT NULL DEFAULT '',
    shadow_work TEXT NOT NULL DEFAULT '',
    light_work TEXT NOT NULL DEFAULT '',
    confidence REAL NOT NULL DEFAULT 0,
    created_at TEXT NOT NULL
);`

	idxInsightsEntry     = `CREATE INDEX idx_insights_entry ON deep_insights(journal_entry_id);`
	idxInsightsCreatedAt = `CREATE INDEX idx_insights_created_at ON deep_insights(created_at DESC);`
	idxInsightsEmotion   = `CREATE INDEX idx_insights_emotion ON deep_insights(primary_emotion);`
	idxInsightsIntensity = `CREATE INDEX idx_insights_intensity ON deep_insights(intensity);`
)

// Version 3: therapy sessions and messages.
const (
	createTherapySessions = `CREATE TABLE therapy_sessions (
    session_id TEXT PRIMARY KEY,
    date TEXT NOT NULL DEFAULT '',
    exercises TEXT NOT NULL DEFAULT '[]',
    summary TEXT NOT NULL DEFAULT '',
    mood INTEGER NOT NULL DEFAULT 0,
    tags TEXT NOT NULL DEFAULT '[]',
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createTherapyMessages = `CREATE TABLE therapy_messages (
    message_id TEXT PRIMARY KEY,
    session_id TEXT NOT NULL,
    content TEXT NOT NULL,
    sender TEXT NOT NULL,
    type TEXT NOT NULL DEFAULT '',
    timestamp TEXT NOT NULL
);`

	idxSessionsCreatedAt = `CREATE INDEX idx_sessions_created_at ON therapy_sessions(created_at DESC);`
	idxMessagesSession   = `CREATE INDEX idx_messages_session ON therapy_messages(session_id);`
	idxMessagesTimestamp = `CREATE INDEX idx_messages_timestamp ON therapy_messages(timestamp);`
)

// Version 4: singleton settings and preferences.
const (
	createAppSettings = `CREATE TABLE app_settings (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    value TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createUserPreferences = `CREATE TABLE user_preferences (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    value TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`
)

// Version 5: imported backups.
const (
	createImportedBackups = `CREATE TABLE imported_backups (
    backup_id TEXT PRIMARY KEY,
    title TEXT NOT NULL DEFAULT '',
    content TEXT NOT NULL,
    date TEXT NOT NULL DEFAULT '',
    time TEXT NOT NULL DEFAULT '',
    mood INTEGER NOT NULL DEFAULT 0,
    tags TEXT NOT NULL DEFAULT '[]',
    location TEXT,
    moon_phase TEXT NOT NULL DEFAULT '',
    weather TEXT,
    ai_insights TEXT,
    original_import_date TEXT NOT NULL,
    import_source TEXT NOT NULL,
    import_method TEXT NOT NULL DEFAULT 'manual',
    original_file_name TEXT NOT NULL DEFAULT '',
    checksum TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	idxBackupsImportDate = `CREATE INDEX idx_backups_import_date ON imported_backups(original_import_date);`
	idxBackupsSource     = `CREATE INDEX idx_backups_source ON imported_backups(import_source);`
	idxBackupsCreatedAt  = `CREATE INDEX idx_backups_created_at ON imported_backups(created_at DESC);`
)

// Version 6: duplicate detection and composite query indexes.
const (
	idxBackupsChecksum = `CREATE INDEX idx_backups_checksum ON imported_backups(checksum);`
	idxBackupsMethod   = `CREATE INDEX idx_backups_method ON imported_backups(import_method);`
	idxBackupsDate     = `CREATE INDEX idx_backups_date ON imported_backups(date);`
	idxEntriesDateMood = `CREATE INDEX idx_entries_date_mood ON journal_entries(date, mood);`
)
