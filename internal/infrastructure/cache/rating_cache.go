package cache

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// RatingCache stores precomputed average review ratings per recipe.
// A miss means the caller should recompute the average from reviews
// and write it back with Set.
type RatingCache interface {
	// Get returns the cached rating and whether it was present.
	Get(ctx context.Context, recipeID uuid.UUID) (float64, bool, error)

	// Set stores the rating with the given TTL.
	Set(ctx context.Context, recipeID uuid.UUID, rating float64, ttl time.Duration) error

	// Invalidate drops the cached rating for a recipe.
	// Called when a new review is added.
	Invalidate(ctx context.Context, recipeID uuid.UUID) error

	// Close releases resources held by the cache.
	Close() error
}
