package types

import "time"

// Sentiment is the scored sentiment block of an insight.
type Sentiment struct {
	Score      float64  `json:"score"`
	Label      string   `json:"label"`
	Confidence float64  `json:"confidence"`
	Emotions   []string `json:"emotions,omitempty"`
}

// DeepInsight is an AI-generated analysis result, optionally bound to a
// JournalEntry through JournalEntryID. The reference is weak: the store
// does not enforce that the entry exists, and an insight survives its
// entry's deletion. Insights are produced externally and persisted
// verbatim.
type DeepInsight struct {
	ID                      string     `json:"id"`
	JournalEntryID          string     `json:"journalEntryId,omitempty"`
	PrimaryEmotion          string     `json:"primaryEmotion"`
	Intensity               float64    `json:"intensity"` // 0-10
	EnergyLevel             string     `json:"energyLevel,omitempty"`
	Sentiment               *Sentiment `json:"sentiment,omitempty"`
	Themes                  []string   `json:"themes,omitempty"`
	Suggestions             []string   `json:"suggestions,omitempty"`
	ReflectionPrompts       []string   `json:"reflectionPrompts,omitempty"`
	CompassionateReflection string     `json:"compassionateReflection,omitempty"`
	SpiritualQuote          string     `json:"spiritualQuote,omitempty"`
	HealingGuidance         string     `json:"healingGuidance,omitempty"`
	ShadowWork              string     `json:"shadowWork,omitempty"`
	LightWork               string     `json:"lightWork,omitempty"`
	Confidence              float64    `json:"confidence"` // 0-1
	CreatedAt               time.Time  `json:"createdAt"`
}
