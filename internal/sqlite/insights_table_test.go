package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/lantern/pkg/types"
)

func TestInsightRoundTrip(t *testing.T) {
	s := setupStore(t)

	insight := &types.DeepInsight{
		JournalEntryID: "entry-1",
		PrimaryEmotion: "gratitude",
		Intensity:      7.5,
		Sentiment: &types.Sentiment{
			Score:      0.8,
			Label:      "positive",
			Confidence: 0.9,
		},
		Themes:     []string{"nature", "rest"},
		Confidence: 0.85,
	}
	require.NoError(t, s.InsertInsight(insight))
	require.NotEmpty(t, insight.ID)
	assert.False(t, insight.CreatedAt.IsZero())

	got, err := s.GetInsight(insight.ID)
	require.NoError(t, err)
	assert.Equal(t, "gratitude", got.PrimaryEmotion)
	assert.Equal(t, 7.5, got.Intensity)
	require.NotNil(t, got.Sentiment)
	assert.Equal(t, "positive", got.Sentiment.Label)
	assert.Equal(t, []string{"nature", "rest"}, got.Themes)
}

func TestInsightDefaultsEmptySequences(t *testing.T) {
	s := setupStore(t)

	insight := &types.DeepInsight{PrimaryEmotion: "calm"}
	require.NoError(t, s.InsertInsight(insight))

	got, err := s.GetInsight(insight.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.Themes)
	assert.NotNil(t, got.Suggestions)
	assert.NotNil(t, got.ReflectionPrompts)
	assert.Empty(t, got.Themes)
}

func TestInsightsByEntry(t *testing.T) {
	s := setupStore(t)

	for i := 0; i < 2; i++ {
		require.NoError(t, s.InsertInsight(&types.DeepInsight{
			JournalEntryID: "entry-a", PrimaryEmotion: "joy",
		}))
	}
	require.NoError(t, s.InsertInsight(&types.DeepInsight{
		JournalEntryID: "entry-b", PrimaryEmotion: "calm",
	}))

	insights, err := s.InsightsByEntry("entry-a")
	require.NoError(t, err)
	assert.Len(t, insights, 2)

	// An insight survives lookups for entries that no longer exist; the
	// reference is weak.
	insights, err = s.InsightsByEntry("gone-entry")
	require.NoError(t, err)
	assert.Empty(t, insights)
}

func TestInsightDelete(t *testing.T) {
	s := setupStore(t)

	insight := &types.DeepInsight{PrimaryEmotion: "calm"}
	require.NoError(t, s.InsertInsight(insight))
	require.NoError(t, s.DeleteInsight(insight.ID))

	_, err := s.GetInsight(insight.ID)
	assert.ErrorIs(t, err, types.ErrNotFound)
	assert.ErrorIs(t, s.DeleteInsight(insight.ID), types.ErrNotFound)
}

func TestInsightListNewestFirst(t *testing.T) {
	s := setupStore(t)

	for _, emotion := range []string{"first", "second", "third"} {
		require.NoError(t, s.InsertInsight(&types.DeepInsight{PrimaryEmotion: emotion}))
	}

	insights, err := s.ListInsights(0, 0)
	require.NoError(t, err)
	require.Len(t, insights, 3)
	assert.Equal(t, "third", insights[0].PrimaryEmotion)
	assert.Equal(t, "first", insights[2].PrimaryEmotion)
}
