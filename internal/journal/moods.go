package journal

import (
	"fmt"

	"github.com/mesh-intelligence/lantern/pkg/types"
)

// ListMoods returns mood entries newest first, paginated and cached.
func (r *Repository) ListMoods(limit, offset int) ([]types.MoodEntry, error) {
	key := listKey(types.CollectionMoods, limit, offset)
	if cached, ok := r.cache.Get(key); ok {
		return cached.([]types.MoodEntry), nil
	}

	moods, err := r.store.ListMoods(limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to load mood entries: %w", err)
	}
	r.cache.Set(key, moods)
	return moods, nil
}

// GetMood retrieves a single mood entry by ID.
func (r *Repository) GetMood(id string) (*types.MoodEntry, error) {
	mood, err := r.store.GetMood(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load mood entry: %w", err)
	}
	return mood, nil
}

// AddMood persists a new mood entry; the 1-5 scale is enforced.
func (r *Repository) AddMood(mood *types.MoodEntry) (*types.MoodEntry, error) {
	if err := r.store.InsertMood(mood); err != nil {
		return nil, fmt.Errorf("failed to save mood entry: %w", err)
	}
	r.invalidate()
	return mood, nil
}

// UpdateMood merges a partial update into the stored mood entry.
func (r *Repository) UpdateMood(id string, patch types.MoodPatch) (*types.MoodEntry, error) {
	mood, err := r.store.UpdateMood(id, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update mood entry: %w", err)
	}
	r.invalidate()
	return mood, nil
}

// DeleteMood removes a mood entry.
func (r *Repository) DeleteMood(id string) error {
	if err := r.store.DeleteMood(id); err != nil {
		return fmt.Errorf("failed to delete mood entry: %w", err)
	}
	r.invalidate()
	return nil
}
