package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/lantern/internal/sqlite"
	"github.com/mesh-intelligence/lantern/pkg/types"
)

func TestExportCollectsEverything(t *testing.T) {
	repo, _, clk := setupRepo(t)

	entry, err := repo.AddEntry(&types.JournalEntry{Content: "entry", Date: "2024-06-01"})
	require.NoError(t, err)
	clk.Advance(time.Second)
	_, err = repo.AddMood(&types.MoodEntry{Mood: 4})
	require.NoError(t, err)
	_, err = repo.AddInsight(&types.DeepInsight{JournalEntryID: entry.ID, PrimaryEmotion: "calm"})
	require.NoError(t, err)
	session, err := repo.AddSession(&types.TherapySession{Date: "2024-06-01"})
	require.NoError(t, err)
	_, err = repo.AddMessage(&types.TherapyMessage{
		SessionID: session.ID, Content: "hello", Sender: types.SenderUser,
	})
	require.NoError(t, err)
	_, err = repo.AddBackup(&types.ImportedBackup{
		Content: "backup", Date: "2024-05-01", ImportSource: "manual",
	})
	require.NoError(t, err)

	snap, err := repo.Export()
	require.NoError(t, err)

	assert.Equal(t, sqlite.SchemaVersion, snap.Metadata.SchemaVersion)
	assert.Equal(t, 1, snap.Metadata.TotalEntries)
	assert.Len(t, snap.Entries, 1)
	assert.Len(t, snap.Moods, 1)
	assert.Len(t, snap.Insights, 1)
	assert.Len(t, snap.Sessions, 1)
	assert.Len(t, snap.Messages, 1)
	assert.Len(t, snap.Backups, 1)
	assert.NotNil(t, snap.Settings)
	assert.NotNil(t, snap.Preferences)
}

func TestImportRoundTrip(t *testing.T) {
	source, _, clk := setupRepo(t)

	entry, err := source.AddEntry(&types.JournalEntry{
		Title: "Kept", Content: "entry content", Date: "2024-06-01", Tags: []string{"travel"},
	})
	require.NoError(t, err)
	clk.Advance(time.Second)
	session, err := source.AddSession(&types.TherapySession{Date: "2024-06-01"})
	require.NoError(t, err)
	_, err = source.AddMessage(&types.TherapyMessage{
		SessionID: session.ID, Content: "hi", Sender: types.SenderTherapist,
	})
	require.NoError(t, err)

	snap, err := source.Export()
	require.NoError(t, err)

	dest, destStore, _ := setupRepo(t)
	report, err := dest.Import(snap, false)
	require.NoError(t, err)
	assert.Zero(t, report.Errors)
	assert.Zero(t, report.Duplicates)
	assert.Equal(t, 3, report.Imported)

	// IDs survive so cross-references keep pointing at the right rows.
	imported, err := destStore.GetEntry(entry.ID)
	require.NoError(t, err)
	assert.Equal(t, "Kept", imported.Title)
	assert.Equal(t, []string{"travel"}, imported.Tags)
	assert.True(t, imported.CreatedAt.Equal(entry.CreatedAt),
		"entry timestamps are preserved across export/import")

	messages, err := dest.Messages(session.ID)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "hi", messages[0].Content)
}

func TestImportSkipsLikelyDuplicates(t *testing.T) {
	dest, _, _ := setupRepo(t)

	// A stored backup with the same content and date marks the incoming
	// entry as a likely duplicate.
	_, err := dest.AddBackup(&types.ImportedBackup{
		Content: "already here", Date: "2024-06-01", ImportSource: "manual",
	})
	require.NoError(t, err)

	snap := &types.Snapshot{
		Metadata: types.SnapshotMetadata{SchemaVersion: sqlite.SchemaVersion},
		Entries: []types.JournalEntry{
			{Content: "already here", Date: "2024-06-01"},
			{Content: "brand new", Date: "2024-06-01"},
		},
	}

	report, err := dest.Import(snap, false)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Duplicates)
	assert.Equal(t, 1, report.Imported)

	forced, err := dest.Import(snap, true)
	require.NoError(t, err)
	assert.Zero(t, forced.Duplicates)
	assert.Equal(t, 2, forced.Imported)
}

func TestImportCountsInvalidRecords(t *testing.T) {
	dest, _, _ := setupRepo(t)

	snap := &types.Snapshot{
		Metadata: types.SnapshotMetadata{SchemaVersion: sqlite.SchemaVersion},
		Entries: []types.JournalEntry{
			{Content: "   ", Date: "2024-06-01"},
			{Content: "fine", Date: "2024-06-01"},
		},
		Moods: []types.MoodEntry{{Mood: 11}},
	}

	report, err := dest.Import(snap, false)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Imported)
	assert.Equal(t, 2, report.Errors, "invalid records are skipped, not fatal")
}

func TestImportRejectsNewerSchema(t *testing.T) {
	dest, _, _ := setupRepo(t)

	snap := &types.Snapshot{
		Metadata: types.SnapshotMetadata{SchemaVersion: sqlite.SchemaVersion + 1},
	}
	_, err := dest.Import(snap, false)
	assert.Error(t, err)
}
