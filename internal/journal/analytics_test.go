package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/lantern/internal/sqlite"
	"github.com/mesh-intelligence/lantern/pkg/types"
)

// addEntryAt stages an entry whose createdAt is pinned to a specific
// moment, bypassing the hook's stamping.
func addEntryAt(t *testing.T, store *sqlite.Store, content string, tags []string, at time.Time) {
	t.Helper()
	entry := &types.JournalEntry{Content: content, Tags: tags, Date: at.Format("2006-01-02")}
	require.NoError(t, store.InsertEntry(entry))
	require.NoError(t, store.SetEntryTimestamps(entry.ID, at, at))
}

func moodSeq(values ...int) []types.MoodEntry {
	moods := make([]types.MoodEntry, len(values))
	for i, v := range values {
		moods[i] = types.MoodEntry{Mood: v}
	}
	return moods
}

func TestAverageMood(t *testing.T) {
	assert.Equal(t, 0.0, averageMood(nil), "empty set averages to 0, not NaN")
	assert.Equal(t, 3.0, averageMood(moodSeq(2, 4)))
	assert.Equal(t, 5.0, averageMood(moodSeq(5)))
}

func TestMoodTrend(t *testing.T) {
	tests := []struct {
		name  string
		moods []types.MoodEntry
		want  float64
	}{
		{"improving", moodSeq(1, 1, 1, 5, 5, 5), 4},
		{"declining", moodSeq(5, 5, 1, 1), -4},
		{"flat", moodSeq(3, 3, 3, 3), 0},
		{"single sample", moodSeq(3), 0},
		{"empty", nil, 0},
		{"odd length keeps midpoint in first half", moodSeq(1, 1, 1, 5, 5), 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, moodTrend(tt.moods), 1e-9)
		})
	}
}

func TestWritingStreak(t *testing.T) {
	base := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	day := func(n int) time.Time { return base.AddDate(0, 0, -n) }
	entriesAt := func(days ...int) []types.JournalEntry {
		entries := make([]types.JournalEntry, len(days))
		for i, d := range days {
			entries[i] = types.JournalEntry{CreatedAt: day(d)}
		}
		return entries
	}

	tests := []struct {
		name string
		days []int // descending, most recent first
		want int
	}{
		{"empty", nil, 0},
		{"single entry", []int{0}, 1},
		{"three consecutive days", []int{0, 1, 2}, 3},
		{"gap breaks the streak", []int{0, 1, 2, 5}, 3},
		{"gap right after the latest", []int{0, 3, 4}, 1},
		{"multiple entries on one day count once", []int{0, 0, 1}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, writingStreak(entriesAt(tt.days...)))
		})
	}
}

func TestTopTags(t *testing.T) {
	entries := []types.JournalEntry{
		{Tags: []string{"work", "stress"}},
		{Tags: []string{"work"}},
		{Tags: []string{"family", "stress", "work"}},
	}
	tags := topTags(entries)
	require.Len(t, tags, 3)
	assert.Equal(t, types.TagCount{Tag: "work", Count: 3}, tags[0])
	assert.Equal(t, types.TagCount{Tag: "stress", Count: 2}, tags[1])
	assert.Equal(t, types.TagCount{Tag: "family", Count: 1}, tags[2])
}

func TestTopTagsKeepsTenAndBreaksTiesStably(t *testing.T) {
	var entries []types.JournalEntry
	for _, tag := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"} {
		entries = append(entries, types.JournalEntry{Tags: []string{tag}})
	}
	tags := topTags(entries)
	require.Len(t, tags, 10)
	// All counts tie at 1, so first-encountered order wins.
	assert.Equal(t, "a", tags[0].Tag)
	assert.Equal(t, "j", tags[9].Tag)
}

func TestAnalyticsSummary(t *testing.T) {
	repo, store, clk := setupRepo(t)
	now := clk.Now()

	addEntryAt(t, store, "one two three", []string{"work"}, now.AddDate(0, 0, -1))
	addEntryAt(t, store, "four five", []string{"work", "rest"}, now.AddDate(0, 0, -2))
	addEntryAt(t, store, "stale entry outside the window", nil, now.AddDate(0, 0, -40))

	for _, mood := range []int{2, 4} {
		_, err := repo.AddMood(&types.MoodEntry{Mood: mood})
		require.NoError(t, err)
		clk.Advance(time.Second)
	}

	summary, err := repo.Analytics(30)
	require.NoError(t, err)

	assert.Equal(t, 30, summary.WindowDays)
	assert.Equal(t, 2, summary.EntryCount, "the 40-day-old entry is outside the window")
	assert.Equal(t, 2, summary.MoodCount)
	assert.InDelta(t, 3.0, summary.AverageMood, 1e-9)
	assert.InDelta(t, 2.0, summary.MoodTrend, 1e-9)
	assert.Equal(t, 5, summary.WordCount)
	require.NotEmpty(t, summary.TopTags)
	assert.Equal(t, types.TagCount{Tag: "work", Count: 2}, summary.TopTags[0])
}

func TestAnalyticsCachedPerWindow(t *testing.T) {
	repo, store, clk := setupRepo(t)
	now := clk.Now()
	addEntryAt(t, store, "cached", nil, now.AddDate(0, 0, -1))

	first, err := repo.Analytics(30)
	require.NoError(t, err)
	assert.Equal(t, 1, first.EntryCount)

	// A direct store write is invisible until the cache expires.
	addEntryAt(t, store, "another", nil, now.AddDate(0, 0, -1))
	cached, err := repo.Analytics(30)
	require.NoError(t, err)
	assert.Equal(t, 1, cached.EntryCount)

	// A different window size is a different cache key.
	other, err := repo.Analytics(7)
	require.NoError(t, err)
	assert.Equal(t, 2, other.EntryCount)

	clk.Advance(types.DefaultAnalyticsTTL + time.Second)
	fresh, err := repo.Analytics(30)
	require.NoError(t, err)
	assert.Equal(t, 2, fresh.EntryCount)
}
