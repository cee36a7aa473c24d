package planning

import (
	"context"
	"time"

	"github.com/google/uuid"
	catalogapp "github.com/vibecoders/backend/internal/application/catalog"
	"github.com/vibecoders/backend/internal/domain/catalog"
	"github.com/vibecoders/backend/internal/domain/planning"
	"github.com/vibecoders/backend/internal/domain/shared"
	"github.com/vibecoders/backend/internal/infrastructure/telemetry"
)

// RecipeProjector resolves recipes to their list projections.
// Satisfied by catalog.RecipeService.
type RecipeProjector interface {
	ListProjectionsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]catalogapp.RecipeListItem, error)
}

// MenuPlanService assembles and saves daily menu plans
type MenuPlanService struct {
	planRepo   planning.MenuPlanRepository
	recipeRepo catalog.RecipeRepository
	projector  RecipeProjector
}

// NewMenuPlanService creates a new MenuPlanService
func NewMenuPlanService(planRepo planning.MenuPlanRepository, recipeRepo catalog.RecipeRepository, projector RecipeProjector) *MenuPlanService {
	return &MenuPlanService{
		planRepo:   planRepo,
		recipeRepo: recipeRepo,
		projector:  projector,
	}
}

// Save upserts the plan for a date. Every referenced recipe is
// validated before any mutation; the stored additional list is fully
// replaced by the request's list in request order.
func (s *MenuPlanService) Save(ctx context.Context, req SaveMenuPlanRequest) (*MenuPlanResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "menu_plan", "save",
		telemetry.WithAttribute(telemetry.SpanAttrPlanDate, req.Date),
		telemetry.WithAttribute(telemetry.SpanAttrUserID, req.UserID))
	defer span.End()

	date, err := time.Parse(DateLayout, req.Date)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invalid plan date")
	}

	plan, err := planning.NewMenuPlan(date, req.UserID)
	if err != nil {
		return nil, err
	}

	slots := map[planning.Slot]*uuid.UUID{
		planning.SlotBreakfast: req.BreakfastRecipeID,
		planning.SlotLunch:     req.LunchRecipeID,
		planning.SlotDinner:    req.DinnerRecipeID,
		planning.SlotExtra:     req.ExtraRecipeID,
	}
	for slot, recipeID := range slots {
		if err := plan.SetSlot(slot, recipeID); err != nil {
			return nil, err
		}
	}
	plan.ReplaceAdditional(req.AdditionalRecipeIDs)

	if err := s.validateRecipeRefs(ctx, plan); err != nil {
		return nil, err
	}

	if err := s.planRepo.Upsert(ctx, plan); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	telemetry.SetAttributes(span, telemetry.SpanAttrItemCount, len(req.AdditionalRecipeIDs))

	// Reload for slot recipe associations and child identities
	saved, err := s.planRepo.FindByID(ctx, plan.ID)
	if err != nil {
		return nil, err
	}

	return s.assemble(ctx, saved)
}

// List returns assembled plans for an optional inclusive date range,
// ordered by date ascending
func (s *MenuPlanService) List(ctx context.Context, filter MenuPlanListFilter) ([]MenuPlanResponse, error) {
	start := time.Time{}
	end := time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)

	var err error
	if filter.StartDate != "" {
		if start, err = time.Parse(DateLayout, filter.StartDate); err != nil {
			return nil, shared.NewDomainError("INVALID_INPUT", "Invalid start date")
		}
	}
	if filter.EndDate != "" {
		if end, err = time.Parse(DateLayout, filter.EndDate); err != nil {
			return nil, shared.NewDomainError("INVALID_INPUT", "Invalid end date")
		}
	}

	plans, err := s.planRepo.FindByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	responses := make([]MenuPlanResponse, 0, len(plans))
	for i := range plans {
		assembled, err := s.assemble(ctx, &plans[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *assembled)
	}

	return responses, nil
}

// GetByDate returns the assembled plan of one day, or not-found
func (s *MenuPlanService) GetByDate(ctx context.Context, dateStr string) (*MenuPlanResponse, error) {
	date, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invalid plan date")
	}

	plan, err := s.planRepo.FindByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	return s.assemble(ctx, plan)
}

// DeleteByDate removes the plan of one day along with its additional
// list, or fails with not-found
func (s *MenuPlanService) DeleteByDate(ctx context.Context, dateStr string) error {
	date, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return shared.NewDomainError("INVALID_INPUT", "Invalid plan date")
	}

	plan, err := s.planRepo.FindByDate(ctx, date)
	if err != nil {
		return err
	}

	return s.planRepo.Delete(ctx, plan.ID)
}

// validateRecipeRefs fails with not-found when any referenced recipe
// does not exist. Runs before any write.
func (s *MenuPlanService) validateRecipeRefs(ctx context.Context, plan *planning.MenuPlan) error {
	ids := referencedRecipeIDs(plan)
	if len(ids) == 0 {
		return nil
	}

	found, err := s.recipeRepo.FindByIDs(ctx, ids)
	if err != nil {
		return err
	}
	if len(found) == len(ids) {
		return nil
	}

	existing := make(map[uuid.UUID]bool, len(found))
	for i := range found {
		existing[found[i].ID] = true
	}
	for _, id := range ids {
		if !existing[id] {
			return shared.NewDomainError("RECIPE_NOT_FOUND", "Recipe "+id.String()+" not found")
		}
	}
	return nil
}

// assemble projects every referenced recipe and builds the composite
// response of one plan
func (s *MenuPlanService) assemble(ctx context.Context, plan *planning.MenuPlan) (*MenuPlanResponse, error) {
	projections, err := s.projector.ListProjectionsByIDs(ctx, referencedRecipeIDs(plan))
	if err != nil {
		return nil, err
	}

	lookup := func(id *uuid.UUID) *catalogapp.RecipeListItem {
		if id == nil {
			return nil
		}
		if item, ok := projections[*id]; ok {
			return &item
		}
		// Dangling slot reference after a recipe deletion
		return nil
	}

	resp := &MenuPlanResponse{
		ID:                  plan.ID,
		Date:                plan.Date.Format(DateLayout),
		UserID:              plan.UserID,
		BreakfastRecipeID:   plan.BreakfastRecipeID,
		LunchRecipeID:       plan.LunchRecipeID,
		DinnerRecipeID:      plan.DinnerRecipeID,
		ExtraRecipeID:       plan.ExtraRecipeID,
		AdditionalRecipeIDs: plan.AdditionalRecipeIDs(),
		BreakfastRecipe:     lookup(plan.BreakfastRecipeID),
		LunchRecipe:         lookup(plan.LunchRecipeID),
		DinnerRecipe:        lookup(plan.DinnerRecipeID),
		ExtraRecipe:         lookup(plan.ExtraRecipeID),
		AdditionalRecipes:   make([]catalogapp.RecipeListItem, 0, len(plan.Additional)),
		CreatedAt:           plan.CreatedAt,
		UpdatedAt:           plan.UpdatedAt,
	}

	for i := range plan.Additional {
		if item, ok := projections[plan.Additional[i].RecipeID]; ok {
			resp.AdditionalRecipes = append(resp.AdditionalRecipes, item)
		}
	}

	return resp, nil
}
