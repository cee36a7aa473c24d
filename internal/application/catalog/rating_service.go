package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vibecoders/backend/internal/domain/catalog"
	"github.com/vibecoders/backend/internal/infrastructure/cache"
	"go.uber.org/zap"
)

// RatingService computes average review ratings with a read-through
// cache in front of the review store. A recipe with no reviews has a
// nil rating; only computed averages are cached.
type RatingService struct {
	reviewRepo catalog.ReviewRepository
	cache      cache.RatingCache
	ttl        time.Duration
	logger     *zap.Logger
}

// NewRatingService creates a RatingService. A nil cache disables
// caching and every read recomputes from reviews.
func NewRatingService(reviewRepo catalog.ReviewRepository, ratingCache cache.RatingCache, ttl time.Duration, logger *zap.Logger) *RatingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RatingService{
		reviewRepo: reviewRepo,
		cache:      ratingCache,
		ttl:        ttl,
		logger:     logger,
	}
}

// RatingFor returns the mean rating of a recipe, nil when it has no
// reviews.
func (s *RatingService) RatingFor(ctx context.Context, recipeID uuid.UUID) (*float64, error) {
	if s.cache != nil {
		rating, found, err := s.cache.Get(ctx, recipeID)
		if err != nil {
			s.logger.Warn("rating cache read failed, recomputing", zap.Error(err))
		} else if found {
			return &rating, nil
		}
	}

	rating, err := s.reviewRepo.AverageRating(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	if rating != nil && s.cache != nil {
		if err := s.cache.Set(ctx, recipeID, *rating, s.ttl); err != nil {
			s.logger.Warn("rating cache write failed", zap.Error(err))
		}
	}

	return rating, nil
}

// RatingsFor returns the mean rating per recipe for the given IDs.
// Recipes without reviews are absent from the result.
func (s *RatingService) RatingsFor(ctx context.Context, recipeIDs []uuid.UUID) (map[uuid.UUID]float64, error) {
	ratings := make(map[uuid.UUID]float64, len(recipeIDs))
	missing := recipeIDs

	if s.cache != nil {
		missing = make([]uuid.UUID, 0, len(recipeIDs))
		for _, id := range recipeIDs {
			rating, found, err := s.cache.Get(ctx, id)
			if err != nil {
				s.logger.Warn("rating cache read failed, recomputing", zap.Error(err))
				missing = append(missing, id)
				continue
			}
			if found {
				ratings[id] = rating
			} else {
				missing = append(missing, id)
			}
		}
	}

	if len(missing) == 0 {
		return ratings, nil
	}

	computed, err := s.reviewRepo.AverageRatings(ctx, missing)
	if err != nil {
		return nil, err
	}

	for id, rating := range computed {
		ratings[id] = rating
		if s.cache != nil {
			if err := s.cache.Set(ctx, id, rating, s.ttl); err != nil {
				s.logger.Warn("rating cache write failed", zap.Error(err))
			}
		}
	}

	return ratings, nil
}

// Invalidate drops the cached rating of a recipe after its review set
// changed.
func (s *RatingService) Invalidate(ctx context.Context, recipeID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, recipeID); err != nil {
		s.logger.Warn("rating cache invalidation failed",
			zap.String("recipe_id", recipeID.String()),
			zap.Error(err),
		)
	}
}
