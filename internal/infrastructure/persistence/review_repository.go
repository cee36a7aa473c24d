package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/vibecoders/backend/internal/domain/catalog"
	"gorm.io/gorm"
)

// GormReviewRepository implements ReviewRepository using GORM
type GormReviewRepository struct {
	db *gorm.DB
}

// NewGormReviewRepository creates a new GormReviewRepository
func NewGormReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

// FindByRecipeID returns the reviews of a recipe, newest first
func (r *GormReviewRepository) FindByRecipeID(ctx context.Context, recipeID uuid.UUID) ([]catalog.Review, error) {
	var reviews []catalog.Review
	if err := r.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// Save creates a review
func (r *GormReviewRepository) Save(ctx context.Context, review *catalog.Review) error {
	return r.db.WithContext(ctx).Save(review).Error
}

// AverageRating returns the mean rating of a recipe, or nil when the recipe
// has no reviews
func (r *GormReviewRepository) AverageRating(ctx context.Context, recipeID uuid.UUID) (*float64, error) {
	var result struct {
		Avg *float64
	}
	if err := r.db.WithContext(ctx).
		Model(&catalog.Review{}).
		Select("AVG(rating) AS avg").
		Where("recipe_id = ?", recipeID).
		Scan(&result).Error; err != nil {
		return nil, err
	}
	return result.Avg, nil
}

// AverageRatings returns the mean rating per recipe for the given IDs
func (r *GormReviewRepository) AverageRatings(ctx context.Context, recipeIDs []uuid.UUID) (map[uuid.UUID]float64, error) {
	ratings := make(map[uuid.UUID]float64, len(recipeIDs))
	if len(recipeIDs) == 0 {
		return ratings, nil
	}

	var rows []struct {
		RecipeID uuid.UUID
		Avg      float64
	}
	if err := r.db.WithContext(ctx).
		Model(&catalog.Review{}).
		Select("recipe_id, AVG(rating) AS avg").
		Where("recipe_id IN ?", recipeIDs).
		Group("recipe_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		ratings[row.RecipeID] = row.Avg
	}
	return ratings, nil
}
