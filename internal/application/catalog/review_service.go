package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/vibecoders/backend/internal/domain/catalog"
	"github.com/vibecoders/backend/internal/infrastructure/telemetry"
)

// ReviewService handles review creation for recipes
type ReviewService struct {
	recipeRepo catalog.RecipeRepository
	reviewRepo catalog.ReviewRepository
	ratings    *RatingService
}

// NewReviewService creates a new ReviewService
func NewReviewService(recipeRepo catalog.RecipeRepository, reviewRepo catalog.ReviewRepository, ratings *RatingService) *ReviewService {
	return &ReviewService{
		recipeRepo: recipeRepo,
		reviewRepo: reviewRepo,
		ratings:    ratings,
	}
}

// Create adds a review to a recipe and drops the recipe's cached rating.
// Fails with not-found when the recipe does not exist.
func (s *ReviewService) Create(ctx context.Context, recipeID uuid.UUID, req CreateReviewRequest) (*ReviewResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "review", "create",
		telemetry.WithAttribute(telemetry.SpanAttrRecipeID, recipeID))
	defer span.End()

	if _, err := s.recipeRepo.FindByID(ctx, recipeID); err != nil {
		return nil, err
	}

	review, err := catalog.NewReview(recipeID, req.Author, req.Rating, req.Comment, req.Date, req.Image)
	if err != nil {
		return nil, err
	}

	if err := s.reviewRepo.Save(ctx, review); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	s.ratings.Invalidate(ctx, recipeID)
	telemetry.AddEvent(span, "rating_cache_invalidated", telemetry.SpanAttrRecipeID, recipeID.String())

	response := ToReviewResponse(review)
	return &response, nil
}

// ListByRecipe returns the reviews of a recipe, newest first
func (s *ReviewService) ListByRecipe(ctx context.Context, recipeID uuid.UUID) ([]ReviewResponse, error) {
	if _, err := s.recipeRepo.FindByID(ctx, recipeID); err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.FindByRecipeID(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	responses := make([]ReviewResponse, 0, len(reviews))
	for i := range reviews {
		responses = append(responses, ToReviewResponse(&reviews[i]))
	}
	return responses, nil
}
