package journal

import (
	"fmt"

	"github.com/mesh-intelligence/lantern/pkg/types"
)

// ListInsights returns deep insights newest first, paginated and cached.
func (r *Repository) ListInsights(limit, offset int) ([]types.DeepInsight, error) {
	key := listKey(types.CollectionInsights, limit, offset)
	if cached, ok := r.cache.Get(key); ok {
		return cached.([]types.DeepInsight), nil
	}

	insights, err := r.store.ListInsights(limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to load insights: %w", err)
	}
	r.cache.Set(key, insights)
	return insights, nil
}

// GetInsight retrieves a single insight by ID.
func (r *Repository) GetInsight(id string) (*types.DeepInsight, error) {
	insight, err := r.store.GetInsight(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load insight: %w", err)
	}
	return insight, nil
}

// InsightsForEntry returns the insights generated for one journal entry.
func (r *Repository) InsightsForEntry(entryID string) ([]types.DeepInsight, error) {
	insights, err := r.store.InsightsByEntry(entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load insights: %w", err)
	}
	return insights, nil
}

// AddInsight persists a new insight. Insights are append-only; there is
// no update path.
func (r *Repository) AddInsight(insight *types.DeepInsight) (*types.DeepInsight, error) {
	if err := r.store.InsertInsight(insight); err != nil {
		return nil, fmt.Errorf("failed to save insight: %w", err)
	}
	r.invalidate()
	return insight, nil
}

// DeleteInsight removes an insight.
func (r *Repository) DeleteInsight(id string) error {
	if err := r.store.DeleteInsight(id); err != nil {
		return fmt.Errorf("failed to delete insight: %w", err)
	}
	r.invalidate()
	return nil
}
