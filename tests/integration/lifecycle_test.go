package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/lantern/pkg/types"
)

func TestJournalSurvivesReopen(t *testing.T) {
	repo, store, dir := setupJournal(t)

	entry, err := repo.AddEntry(&types.JournalEntry{
		Title: "Persisted", Content: "still here after reopen", Date: "2024-06-01",
	})
	require.NoError(t, err)
	_, err = repo.AddMood(&types.MoodEntry{Mood: 4})
	require.NoError(t, err)

	repo, _ = reopen(t, store, dir)

	got, err := repo.GetEntry(entry.ID)
	require.NoError(t, err)
	assert.Equal(t, "Persisted", got.Title)
	assert.Equal(t, "still here after reopen", got.Content)

	moods, err := repo.ListMoods(0, 0)
	require.NoError(t, err)
	assert.Len(t, moods, 1)
}

func TestFullEntryLifecycle(t *testing.T) {
	repo, _, _ := setupJournal(t)

	entry, err := repo.AddEntry(&types.JournalEntry{
		Title:   "Morning pages",
		Content: "Wrote before sunrise.",
		Date:    "2024-06-01",
		Tags:    []string{"morning"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, entry.ID)

	found, err := repo.SearchEntries("morning", 0)
	require.NoError(t, err)
	require.Len(t, found, 1)

	content := "Wrote before sunrise, edited after coffee."
	updated, err := repo.UpdateEntry(entry.ID, types.EntryPatch{Content: &content})
	require.NoError(t, err)
	assert.Equal(t, content, updated.Content)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))

	require.NoError(t, repo.DeleteEntry(entry.ID))
	_, err = repo.GetEntry(entry.ID)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestSessionCascadeAcrossReopen(t *testing.T) {
	repo, store, dir := setupJournal(t)

	session, err := repo.AddSession(&types.TherapySession{Date: "2024-06-01"})
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err = repo.AddMessage(&types.TherapyMessage{
			SessionID: session.ID, Content: "message", Sender: types.SenderUser,
		})
		require.NoError(t, err)
	}

	repo, _ = reopen(t, store, dir)
	require.NoError(t, repo.DeleteSession(session.ID))

	messages, err := repo.Messages(session.ID)
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestBackupRestoreAndRepair(t *testing.T) {
	repo, store, _ := setupJournal(t)

	backup, err := repo.AddBackup(&types.ImportedBackup{
		Content:      "an old diary page",
		Date:         "2020-02-14",
		Time:         "09:30",
		ImportSource: "dayone",
	})
	require.NoError(t, err)

	entry, err := repo.RestoreFromBackup(backup.ID)
	require.NoError(t, err)
	assert.Equal(t, "2020-02-14", entry.Date)

	// The restored entry was stamped with the restore moment; the
	// repair pass realigns createdAt with the entry's own date.
	report, err := repo.MigrateEntryDates()
	require.NoError(t, err)
	assert.Equal(t, 1, report.Updated)

	repaired, err := store.GetEntry(entry.ID)
	require.NoError(t, err)
	assert.Equal(t, 2020, repaired.CreatedAt.Year())

	dup, err := repo.CheckDuplicate("an old diary page", "2020-02-14")
	require.NoError(t, err)
	assert.True(t, dup)
}

func TestSnapshotRoundTripBetweenStores(t *testing.T) {
	source, _, _ := setupJournal(t)

	for _, content := range []string{"first entry", "second entry"} {
		_, err := source.AddEntry(&types.JournalEntry{Content: content, Date: "2024-06-01"})
		require.NoError(t, err)
	}
	_, err := source.AddMood(&types.MoodEntry{Mood: 5})
	require.NoError(t, err)

	snap, err := source.Export()
	require.NoError(t, err)
	assert.Equal(t, 2, snap.Metadata.TotalEntries)

	dest, destStore, _ := setupJournal(t)
	report, err := dest.Import(snap, false)
	require.NoError(t, err)
	assert.Zero(t, report.Errors)

	counts, err := destStore.CollectionCounts()
	require.NoError(t, err)
	assert.Equal(t, 2, counts[types.CollectionEntries])
	assert.Equal(t, 1, counts[types.CollectionMoods])
}

func TestAnalyticsOverLiveJournal(t *testing.T) {
	repo, _, _ := setupJournal(t)

	_, err := repo.AddEntry(&types.JournalEntry{
		Content: "five words in this entry", Tags: []string{"daily"},
	})
	require.NoError(t, err)
	for _, mood := range []int{3, 4} {
		_, err = repo.AddMood(&types.MoodEntry{Mood: mood})
		require.NoError(t, err)
	}

	summary, err := repo.Analytics(30)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.EntryCount)
	assert.Equal(t, 2, summary.MoodCount)
	assert.InDelta(t, 3.5, summary.AverageMood, 1e-9)
	assert.Equal(t, 1, summary.WritingStreak)
	assert.Equal(t, 5, summary.WordCount)
}
