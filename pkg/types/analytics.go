package types

import "strings"

// TagCount is a tag with its occurrence count across windowed entries.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// AnalyticsSummary holds derived statistics over the trailing window.
//
// AverageMood is 0 (not NaN) when no mood samples exist in the window.
// MoodTrend is second-half mean minus first-half mean of the
// time-ordered mood sequence; positive means improving.
type AnalyticsSummary struct {
	WindowDays   int        `json:"windowDays"`
	EntryCount   int        `json:"entryCount"`
	MoodCount    int        `json:"moodCount"`
	AverageMood  float64    `json:"averageMood"`
	MoodTrend    float64    `json:"moodTrend"`
	WritingStreak int       `json:"writingStreak"`
	TopTags      []TagCount `json:"topTags"`
	WordCount    int        `json:"wordCount"`
}

// countWords returns the number of whitespace-separated tokens in s.
func countWords(s string) int {
	return len(strings.Fields(s))
}
