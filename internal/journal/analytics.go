package journal

import (
	"fmt"
	"sort"
	"time"

	"github.com/mesh-intelligence/lantern/pkg/types"
)

const topTagLimit = 10

// Analytics computes derived statistics over entries and moods created
// within the trailing windowDays. Results are cached per window size
// with the long analytics TTL; any write clears them.
func (r *Repository) Analytics(windowDays int) (*types.AnalyticsSummary, error) {
	key := analyticsKey(windowDays)
	if cached, ok := r.cache.Get(key); ok {
		return cached.(*types.AnalyticsSummary), nil
	}

	cutoff := r.now().AddDate(0, 0, -windowDays)
	entries, err := r.store.EntriesSince(cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to load journal entries: %w", err)
	}
	moods, err := r.store.MoodsSince(cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to load mood entries: %w", err)
	}

	summary := &types.AnalyticsSummary{
		WindowDays:    windowDays,
		EntryCount:    len(entries),
		MoodCount:     len(moods),
		AverageMood:   averageMood(moods),
		MoodTrend:     moodTrend(moods),
		WritingStreak: writingStreak(entries),
		TopTags:       topTags(entries),
		WordCount:     totalWords(entries),
	}
	r.cache.SetTTL(key, summary, r.analyticsTTL)
	return summary, nil
}

// averageMood is the arithmetic mean over the sample set, 0 when empty.
func averageMood(moods []types.MoodEntry) float64 {
	if len(moods) == 0 {
		return 0
	}
	sum := 0
	for _, m := range moods {
		sum += m.Mood
	}
	return float64(sum) / float64(len(moods))
}

// moodTrend splits the chronological mood sequence at its midpoint,
// lower half inclusive when odd, and returns second-half mean minus
// first-half mean. Positive means improving. Fewer than two samples
// yield 0.
func moodTrend(moods []types.MoodEntry) float64 {
	if len(moods) < 2 {
		return 0
	}
	mid := (len(moods) + 1) / 2
	return meanMood(moods[mid:]) - meanMood(moods[:mid])
}

func meanMood(moods []types.MoodEntry) float64 {
	if len(moods) == 0 {
		return 0
	}
	sum := 0
	for _, m := range moods {
		sum += m.Mood
	}
	return float64(sum) / float64(len(moods))
}

// writingStreak counts consecutive writing days ending at the most
// recent entry. Entries arrive sorted by createdAt descending; multiple
// entries on one day count once, and the streak stops at the first gap
// of more than a day.
func writingStreak(entries []types.JournalEntry) int {
	if len(entries) == 0 {
		return 0
	}

	streak := 1
	prev := dayOf(entries[0].CreatedAt)
	for _, e := range entries[1:] {
		day := dayOf(e.CreatedAt)
		diff := int(prev.Sub(day).Hours() / 24)
		switch diff {
		case 0:
			continue
		case 1:
			streak++
			prev = day
		default:
			return streak
		}
	}
	return streak
}

// dayOf truncates a timestamp to local midnight.
func dayOf(t time.Time) time.Time {
	local := t.Local()
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.Local)
}

// topTags frequency-counts tags across the windowed entries and keeps
// the ten most common. Ties keep first-encountered order.
func topTags(entries []types.JournalEntry) []types.TagCount {
	counts := make(map[string]int)
	var order []string
	for _, e := range entries {
		for _, tag := range e.Tags {
			if counts[tag] == 0 {
				order = append(order, tag)
			}
			counts[tag]++
		}
	}

	tags := make([]types.TagCount, 0, len(order))
	for _, tag := range order {
		tags = append(tags, types.TagCount{Tag: tag, Count: counts[tag]})
	}
	sort.SliceStable(tags, func(i, j int) bool {
		return tags[i].Count > tags[j].Count
	})
	if len(tags) > topTagLimit {
		tags = tags[:topTagLimit]
	}
	return tags
}

func totalWords(entries []types.JournalEntry) int {
	total := 0
	for _, e := range entries {
		total += e.WordCount()
	}
	return total
}
