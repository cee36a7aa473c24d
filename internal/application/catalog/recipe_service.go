package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/vibecoders/backend/internal/domain/catalog"
	"github.com/vibecoders/backend/internal/domain/shared"
	"github.com/vibecoders/backend/internal/infrastructure/telemetry"
)

// RecipeService handles recipe catalog operations
type RecipeService struct {
	recipeRepo catalog.RecipeRepository
	ratings    *RatingService
}

// NewRecipeService creates a new RecipeService
func NewRecipeService(recipeRepo catalog.RecipeRepository, ratings *RatingService) *RecipeService {
	return &RecipeService{
		recipeRepo: recipeRepo,
		ratings:    ratings,
	}
}

// Create creates a recipe with its ordered ingredient and step lists
func (s *RecipeService) Create(ctx context.Context, req CreateRecipeRequest) (*RecipeDetailResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "recipe", "create",
		telemetry.WithAttribute(telemetry.SpanAttrRecipeTitle, req.Title),
		telemetry.WithAttribute(telemetry.SpanAttrCategory, req.Category))
	defer span.End()

	recipe, err := catalog.NewRecipe(req.Title, req.Category, req.CookTime, req.Servings)
	if err != nil {
		return nil, err
	}

	recipe.Image = req.Image
	if err := recipe.SetNutrition(req.CaloriesPerServing, req.ProteinsPerServing, req.FatsPerServing, req.CarbohydratesPerServing); err != nil {
		return nil, err
	}

	for _, ing := range req.Ingredients {
		if err := recipe.AddIngredient(ing.Name, ing.Amount, ing.Unit); err != nil {
			return nil, err
		}
	}
	for _, step := range req.Steps {
		if err := recipe.AddStep(step.Instruction, step.Image); err != nil {
			return nil, err
		}
	}

	if err := s.recipeRepo.Save(ctx, recipe); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	telemetry.SetAttribute(span, telemetry.SpanAttrRecipeID, recipe.ID)

	response := ToRecipeDetailResponse(recipe, nil)
	return &response, nil
}

// GetByID returns the detail projection of a recipe
func (s *RecipeService) GetByID(ctx context.Context, recipeID uuid.UUID) (*RecipeDetailResponse, error) {
	recipe, err := s.recipeRepo.FindByIDWithDetails(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	rating, err := s.ratings.RatingFor(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	response := ToRecipeDetailResponse(recipe, rating)
	return &response, nil
}

// List returns list projections of recipes matching the filter,
// with ratings resolved in one batch
func (s *RecipeService) List(ctx context.Context, filter RecipeListFilter) ([]RecipeListItem, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 50
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "created_at"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "desc"
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		Filters:  make(map[string]interface{}),
	}
	if filter.Category != "" {
		domainFilter.Filters["category"] = filter.Category
	}

	recipes, err := s.recipeRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.recipeRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	ids := make([]uuid.UUID, 0, len(recipes))
	for i := range recipes {
		ids = append(ids, recipes[i].ID)
	}

	ratings, err := s.ratings.RatingsFor(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	items := make([]RecipeListItem, 0, len(recipes))
	for i := range recipes {
		var rating *float64
		if r, ok := ratings[recipes[i].ID]; ok {
			rating = &r
		}
		items = append(items, ToRecipeListItem(&recipes[i], rating))
	}

	return items, total, nil
}

// ListProjectionsByIDs returns list projections keyed by recipe ID.
// Unknown IDs are simply absent from the result.
func (s *RecipeService) ListProjectionsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]RecipeListItem, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]RecipeListItem{}, nil
	}

	recipes, err := s.recipeRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	ratings, err := s.ratings.RatingsFor(ctx, ids)
	if err != nil {
		return nil, err
	}

	items := make(map[uuid.UUID]RecipeListItem, len(recipes))
	for i := range recipes {
		var rating *float64
		if r, ok := ratings[recipes[i].ID]; ok {
			rating = &r
		}
		items[recipes[i].ID] = ToRecipeListItem(&recipes[i], rating)
	}

	return items, nil
}

// Delete removes a recipe; its ingredients, steps and reviews cascade
func (s *RecipeService) Delete(ctx context.Context, recipeID uuid.UUID) error {
	ctx, span := telemetry.StartServiceSpan(ctx, "recipe", "delete",
		telemetry.WithAttribute(telemetry.SpanAttrRecipeID, recipeID))
	defer span.End()

	if err := s.recipeRepo.Delete(ctx, recipeID); err != nil {
		telemetry.RecordError(span, err)
		return err
	}
	s.ratings.Invalidate(ctx, recipeID)
	telemetry.AddEvent(span, "rating_cache_invalidated", telemetry.SpanAttrRecipeID, recipeID.String())
	return nil
}
