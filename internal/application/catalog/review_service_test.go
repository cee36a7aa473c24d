package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vibecoders/backend/internal/domain/catalog"
	"github.com/vibecoders/backend/internal/domain/shared"
	"github.com/vibecoders/backend/internal/infrastructure/cache"
)

func TestReviewService_Create(t *testing.T) {
	t.Run("saves review for existing recipe", func(t *testing.T) {
		recipeRepo := new(MockRecipeRepository)
		reviewRepo := new(MockReviewRepository)
		ratings := NewRatingService(reviewRepo, nil, 0, nil)
		service := NewReviewService(recipeRepo, reviewRepo, ratings)

		recipe := newTestRecipe(t, "Борщ")

		recipeRepo.On("FindByID", mock.Anything, recipe.ID).Return(recipe, nil)
		reviewRepo.On("Save", mock.Anything, mock.AnythingOfType("*catalog.Review")).Return(nil)

		resp, err := service.Create(context.Background(), recipe.ID, CreateReviewRequest{
			Author:  "Анна",
			Rating:  5,
			Comment: "Очень вкусно",
			Date:    "15 ноя 2024",
		})

		require.NoError(t, err)
		assert.Equal(t, recipe.ID, resp.RecipeID)
		assert.Equal(t, 5, resp.Rating)
		assert.Equal(t, "Анна", resp.Author)
		reviewRepo.AssertExpectations(t)
	})

	t.Run("not found when recipe missing", func(t *testing.T) {
		recipeRepo := new(MockRecipeRepository)
		reviewRepo := new(MockReviewRepository)
		ratings := NewRatingService(reviewRepo, nil, 0, nil)
		service := NewReviewService(recipeRepo, reviewRepo, ratings)

		id := uuid.New()
		recipeRepo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

		_, err := service.Create(context.Background(), id, CreateReviewRequest{
			Author:  "Анна",
			Rating:  5,
			Comment: "Очень вкусно",
			Date:    "15 ноя 2024",
		})

		assert.ErrorIs(t, err, shared.ErrNotFound)
		reviewRepo.AssertNotCalled(t, "Save")
	})

	t.Run("rejects out-of-range rating before storage", func(t *testing.T) {
		recipeRepo := new(MockRecipeRepository)
		reviewRepo := new(MockReviewRepository)
		ratings := NewRatingService(reviewRepo, nil, 0, nil)
		service := NewReviewService(recipeRepo, reviewRepo, ratings)

		recipe := newTestRecipe(t, "Борщ")
		recipeRepo.On("FindByID", mock.Anything, recipe.ID).Return(recipe, nil)

		_, err := service.Create(context.Background(), recipe.ID, CreateReviewRequest{
			Author:  "Анна",
			Rating:  6,
			Comment: "Очень вкусно",
			Date:    "15 ноя 2024",
		})

		assert.Error(t, err)
		reviewRepo.AssertNotCalled(t, "Save")
	})

	t.Run("invalidates cached rating", func(t *testing.T) {
		recipeRepo := new(MockRecipeRepository)
		reviewRepo := new(MockReviewRepository)

		ratingCache := cache.NewInMemoryRatingCache()
		defer ratingCache.Close()
		ratings := NewRatingService(reviewRepo, ratingCache, 5*time.Minute, nil)
		service := NewReviewService(recipeRepo, reviewRepo, ratings)

		recipe := newTestRecipe(t, "Борщ")
		require.NoError(t, ratingCache.Set(context.Background(), recipe.ID, 3.0, time.Minute))

		recipeRepo.On("FindByID", mock.Anything, recipe.ID).Return(recipe, nil)
		reviewRepo.On("Save", mock.Anything, mock.AnythingOfType("*catalog.Review")).Return(nil)

		_, err := service.Create(context.Background(), recipe.ID, CreateReviewRequest{
			Author:  "Анна",
			Rating:  5,
			Comment: "Очень вкусно",
			Date:    "15 ноя 2024",
		})
		require.NoError(t, err)

		_, found, err := ratingCache.Get(context.Background(), recipe.ID)
		require.NoError(t, err)
		assert.False(t, found, "cached rating should be dropped after a new review")
	})
}

func TestReviewService_ListByRecipe(t *testing.T) {
	t.Run("returns reviews of existing recipe", func(t *testing.T) {
		recipeRepo := new(MockRecipeRepository)
		reviewRepo := new(MockReviewRepository)
		ratings := NewRatingService(reviewRepo, nil, 0, nil)
		service := NewReviewService(recipeRepo, reviewRepo, ratings)

		recipe := newTestRecipe(t, "Борщ")
		review, err := catalog.NewReview(recipe.ID, "Анна", 4, "Неплохо", "15 ноя 2024", nil)
		require.NoError(t, err)

		recipeRepo.On("FindByID", mock.Anything, recipe.ID).Return(recipe, nil)
		reviewRepo.On("FindByRecipeID", mock.Anything, recipe.ID).Return([]catalog.Review{*review}, nil)

		reviews, err := service.ListByRecipe(context.Background(), recipe.ID)

		require.NoError(t, err)
		require.Len(t, reviews, 1)
		assert.Equal(t, "Анна", reviews[0].Author)
	})

	t.Run("not found when recipe missing", func(t *testing.T) {
		recipeRepo := new(MockRecipeRepository)
		reviewRepo := new(MockReviewRepository)
		ratings := NewRatingService(reviewRepo, nil, 0, nil)
		service := NewReviewService(recipeRepo, reviewRepo, ratings)

		id := uuid.New()
		recipeRepo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

		_, err := service.ListByRecipe(context.Background(), id)

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestRatingService_ReadThroughCache(t *testing.T) {
	t.Run("caches computed rating and serves the hit", func(t *testing.T) {
		reviewRepo := new(MockReviewRepository)
		ratingCache := cache.NewInMemoryRatingCache()
		defer ratingCache.Close()
		ratings := NewRatingService(reviewRepo, ratingCache, 5*time.Minute, nil)

		recipeID := uuid.New()
		avg := 4.5
		reviewRepo.On("AverageRating", mock.Anything, recipeID).Return(&avg, nil).Once()

		first, err := ratings.RatingFor(context.Background(), recipeID)
		require.NoError(t, err)
		require.NotNil(t, first)
		assert.Equal(t, 4.5, *first)

		// Second read must come from the cache; the mock allows one call only
		second, err := ratings.RatingFor(context.Background(), recipeID)
		require.NoError(t, err)
		require.NotNil(t, second)
		assert.Equal(t, 4.5, *second)
		reviewRepo.AssertExpectations(t)
	})

	t.Run("nil rating is not cached", func(t *testing.T) {
		reviewRepo := new(MockReviewRepository)
		ratingCache := cache.NewInMemoryRatingCache()
		defer ratingCache.Close()
		ratings := NewRatingService(reviewRepo, ratingCache, 5*time.Minute, nil)

		recipeID := uuid.New()
		reviewRepo.On("AverageRating", mock.Anything, recipeID).Return(nil, nil).Twice()

		rating, err := ratings.RatingFor(context.Background(), recipeID)
		require.NoError(t, err)
		assert.Nil(t, rating)

		rating, err = ratings.RatingFor(context.Background(), recipeID)
		require.NoError(t, err)
		assert.Nil(t, rating)
		reviewRepo.AssertExpectations(t)
	})

	t.Run("batch read mixes cache hits and recomputation", func(t *testing.T) {
		reviewRepo := new(MockReviewRepository)
		ratingCache := cache.NewInMemoryRatingCache()
		defer ratingCache.Close()
		ratings := NewRatingService(reviewRepo, ratingCache, 5*time.Minute, nil)

		cached := uuid.New()
		uncached := uuid.New()
		require.NoError(t, ratingCache.Set(context.Background(), cached, 3.5, time.Minute))

		reviewRepo.On("AverageRatings", mock.Anything, []uuid.UUID{uncached}).
			Return(map[uuid.UUID]float64{uncached: 2.0}, nil)

		result, err := ratings.RatingsFor(context.Background(), []uuid.UUID{cached, uncached})

		require.NoError(t, err)
		assert.Equal(t, 3.5, result[cached])
		assert.Equal(t, 2.0, result[uncached])
		reviewRepo.AssertExpectations(t)
	})
}
