package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/vibecoders/backend/internal/domain/shared"
)

// RecipeRepository defines the interface for recipe persistence
type RecipeRepository interface {
	// FindByID loads a recipe without its child collections
	FindByID(ctx context.Context, id uuid.UUID) (*Recipe, error)

	// FindByIDWithDetails loads a recipe with ingredients, steps and reviews,
	// children ordered by their list position
	FindByIDWithDetails(ctx context.Context, id uuid.UUID) (*Recipe, error)

	// FindAll finds recipes matching the filter. Filter.Search matches the
	// title or any ingredient name, Filters["category"] narrows by category.
	FindAll(ctx context.Context, filter shared.Filter) ([]Recipe, error)

	// FindByIDs loads recipes by their IDs, without child collections
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Recipe, error)

	// Save creates or updates a recipe along with its ingredients and steps
	Save(ctx context.Context, recipe *Recipe) error

	// Delete removes a recipe; children go with it
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts recipes matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// ReviewRepository defines the interface for review persistence
type ReviewRepository interface {
	// FindByRecipeID returns the reviews of a recipe, newest first
	FindByRecipeID(ctx context.Context, recipeID uuid.UUID) ([]Review, error)

	// Save creates a review
	Save(ctx context.Context, review *Review) error

	// AverageRating returns the mean rating of a recipe, or nil when the
	// recipe has no reviews
	AverageRating(ctx context.Context, recipeID uuid.UUID) (*float64, error)

	// AverageRatings returns the mean rating per recipe for the given IDs;
	// recipes without reviews are absent from the map
	AverageRatings(ctx context.Context, recipeIDs []uuid.UUID) (map[uuid.UUID]float64, error)
}
