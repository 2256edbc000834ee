package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/lantern/pkg/types"
)

func TestInsertAndGetEntry(t *testing.T) {
	s := setupStore(t)

	entry := &types.JournalEntry{
		Title:   "Morning pages",
		Content: "Woke up before sunrise and wrote by candlelight.",
		Date:    "2024-04-12",
		Time:    "06:15",
		Mood:    4,
		Tags:    []string{"morning", "ritual"},
		Location: &types.LocationData{
			City: "Ljubljana", Country: "Slovenia", Latitude: 46.05, Longitude: 14.51,
		},
		MoonPhase: "Waxing Gibbous",
		Weather:   &types.WeatherSnapshot{Condition: "clear", Temperature: 8.5},
	}
	require.NoError(t, s.InsertEntry(entry))
	require.NotEmpty(t, entry.ID)
	require.False(t, entry.CreatedAt.IsZero())

	got, err := s.GetEntry(entry.ID)
	require.NoError(t, err)

	// Every caller-supplied field survives the round trip.
	assert.Equal(t, entry.Title, got.Title)
	assert.Equal(t, entry.Content, got.Content)
	assert.Equal(t, entry.Date, got.Date)
	assert.Equal(t, entry.Time, got.Time)
	assert.Equal(t, entry.Mood, got.Mood)
	assert.Equal(t, entry.Tags, got.Tags)
	assert.Equal(t, entry.Location, got.Location)
	assert.Equal(t, entry.MoonPhase, got.MoonPhase)
	assert.Equal(t, entry.Weather, got.Weather)
	assert.True(t, got.CreatedAt.Equal(entry.CreatedAt))
}

func TestInsertEntryRejectsEmptyContent(t *testing.T) {
	s := setupStore(t)

	err := s.InsertEntry(&types.JournalEntry{Content: "   ", Date: "2024-04-12"})
	require.ErrorIs(t, err, types.ErrEmptyContent)

	entries, err := s.AllEntries()
	require.NoError(t, err)
	assert.Empty(t, entries, "rejected write must not persist a record")
}

func TestGetEntryNotFound(t *testing.T) {
	s := setupStore(t)

	_, err := s.GetEntry("no-such-id")
	assert.ErrorIs(t, err, types.ErrNotFound)

	_, err = s.GetEntry("")
	assert.ErrorIs(t, err, types.ErrInvalidID)
}

func TestUpdateEntry(t *testing.T) {
	s := setupStore(t)

	entry := &types.JournalEntry{Content: "first draft", Date: "2024-04-12"}
	require.NoError(t, s.InsertEntry(entry))

	newContent := "second draft, revised"
	tags := []string{"revised"}
	got, err := s.UpdateEntry(entry.ID, types.EntryPatch{Content: &newContent, Tags: &tags})
	require.NoError(t, err)

	assert.Equal(t, "second draft, revised", got.Content)
	assert.Equal(t, []string{"revised"}, got.Tags)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt))
	assert.True(t, got.CreatedAt.Equal(entry.CreatedAt))

	stored, err := s.GetEntry(entry.ID)
	require.NoError(t, err)
	assert.Equal(t, got.Content, stored.Content)
}

func TestUpdateEntryNotFound(t *testing.T) {
	s := setupStore(t)

	content := "text"
	_, err := s.UpdateEntry("ghost", types.EntryPatch{Content: &content})
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestDeleteEntry(t *testing.T) {
	s := setupStore(t)

	entry := &types.JournalEntry{Content: "to be removed", Date: "2024-04-12"}
	require.NoError(t, s.InsertEntry(entry))
	require.NoError(t, s.DeleteEntry(entry.ID))

	_, err := s.GetEntry(entry.ID)
	assert.ErrorIs(t, err, types.ErrNotFound)

	assert.ErrorIs(t, s.DeleteEntry(entry.ID), types.ErrNotFound)
}

func TestListEntriesReverseChronological(t *testing.T) {
	s := setupStore(t)

	for _, content := range []string{"oldest", "middle", "newest"} {
		require.NoError(t, s.InsertEntry(&types.JournalEntry{Content: content, Date: "2024-04-12"}))
	}

	entries, err := s.ListEntries(0, 0)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "newest", entries[0].Content)
	assert.Equal(t, "middle", entries[1].Content)
	assert.Equal(t, "oldest", entries[2].Content)
}

func TestListEntriesPagination(t *testing.T) {
	s := setupStore(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, s.InsertEntry(&types.JournalEntry{Content: "entry", Date: "2024-04-12"}))
	}

	page1, err := s.ListEntries(2, 0)
	require.NoError(t, err)
	page2, err := s.ListEntries(2, 2)
	require.NoError(t, err)

	assert.Len(t, page1, 2)
	assert.Len(t, page2, 2)
	assert.NotEqual(t, page1[0].ID, page2[0].ID)

	tail, err := s.ListEntries(10, 4)
	require.NoError(t, err)
	assert.Len(t, tail, 1)
}

func TestSearchEntries(t *testing.T) {
	s := setupStore(t)

	require.NoError(t, s.InsertEntry(&types.JournalEntry{
		Title: "Gratitude list", Content: "ten things", Date: "2024-04-12",
	}))
	require.NoError(t, s.InsertEntry(&types.JournalEntry{
		Title: "Dream log", Content: "flying again", Date: "2024-04-13",
		Tags: []string{"dreams", "night"},
	}))
	require.NoError(t, s.InsertEntry(&types.JournalEntry{
		Title: "Grocery thoughts", Content: "nothing deep", Date: "2024-04-14",
	}))

	t.Run("title prefix, case-insensitive", func(t *testing.T) {
		got, err := s.SearchEntries("gr", 0)
		require.NoError(t, err)
		require.Len(t, got, 2)
		// Newest first.
		assert.Equal(t, "Grocery thoughts", got[0].Title)
		assert.Equal(t, "Gratitude list", got[1].Title)
	})

	t.Run("tag term match", func(t *testing.T) {
		got, err := s.SearchEntries("vivid dreams", 0)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Dream log", got[0].Title)
	})

	t.Run("limit applies", func(t *testing.T) {
		got, err := s.SearchEntries("gr", 1)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("no match", func(t *testing.T) {
		got, err := s.SearchEntries("zzz", 0)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestSetEntryTimestamps(t *testing.T) {
	s := setupStore(t)

	entry := &types.JournalEntry{Content: "imported later", Date: "2024-01-05"}
	require.NoError(t, s.InsertEntry(entry))

	newCreated := entry.CreatedAt.AddDate(0, 0, -30)
	newUpdated := entry.UpdatedAt
	require.NoError(t, s.SetEntryTimestamps(entry.ID, newCreated, newUpdated))

	got, err := s.GetEntry(entry.ID)
	require.NoError(t, err)
	assert.True(t, got.CreatedAt.Equal(newCreated))

	assert.ErrorIs(t, s.SetEntryTimestamps("ghost", newCreated, newUpdated), types.ErrNotFound)
}
