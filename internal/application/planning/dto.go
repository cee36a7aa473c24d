package planning

import (
	"time"

	"github.com/google/uuid"
	catalogapp "github.com/vibecoders/backend/internal/application/catalog"
	"github.com/vibecoders/backend/internal/domain/planning"
)

// DateLayout is the wire format for plan dates
const DateLayout = "2006-01-02"

// SaveMenuPlanRequest represents a request to save the plan of one day.
// Saving fully replaces the stored plan for that date.
type SaveMenuPlanRequest struct {
	Date                string      `json:"date" binding:"required,datetime=2006-01-02"`
	UserID              *string     `json:"user_id" binding:"omitempty,max=100"`
	BreakfastRecipeID   *uuid.UUID  `json:"breakfast_recipe_id"`
	LunchRecipeID       *uuid.UUID  `json:"lunch_recipe_id"`
	DinnerRecipeID      *uuid.UUID  `json:"dinner_recipe_id"`
	ExtraRecipeID       *uuid.UUID  `json:"extra_recipe_id"`
	AdditionalRecipeIDs []uuid.UUID `json:"additional_recipe_ids"`
}

// MenuPlanListFilter represents the optional inclusive date range
type MenuPlanListFilter struct {
	StartDate string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"end_date" binding:"omitempty,datetime=2006-01-02"`
}

// MenuPlanResponse is the assembled plan of one day: slot ids plus the
// list projection of every referenced recipe
type MenuPlanResponse struct {
	ID                  uuid.UUID   `json:"id"`
	Date                string      `json:"date"`
	UserID              *string     `json:"user_id"`
	BreakfastRecipeID   *uuid.UUID  `json:"breakfast_recipe_id"`
	LunchRecipeID       *uuid.UUID  `json:"lunch_recipe_id"`
	DinnerRecipeID      *uuid.UUID  `json:"dinner_recipe_id"`
	ExtraRecipeID       *uuid.UUID  `json:"extra_recipe_id"`
	AdditionalRecipeIDs []uuid.UUID `json:"additional_recipe_ids"`

	BreakfastRecipe   *catalogapp.RecipeListItem  `json:"breakfast_recipe"`
	LunchRecipe       *catalogapp.RecipeListItem  `json:"lunch_recipe"`
	DinnerRecipe      *catalogapp.RecipeListItem  `json:"dinner_recipe"`
	ExtraRecipe       *catalogapp.RecipeListItem  `json:"extra_recipe"`
	AdditionalRecipes []catalogapp.RecipeListItem `json:"additional_recipes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// referencedRecipeIDs collects every recipe reference of a plan,
// slots first, additional list after, without duplicates
func referencedRecipeIDs(plan *planning.MenuPlan) []uuid.UUID {
	seen := make(map[uuid.UUID]bool)
	ids := make([]uuid.UUID, 0, 4+len(plan.Additional))

	add := func(id *uuid.UUID) {
		if id == nil || seen[*id] {
			return
		}
		seen[*id] = true
		ids = append(ids, *id)
	}

	add(plan.BreakfastRecipeID)
	add(plan.LunchRecipeID)
	add(plan.DinnerRecipeID)
	add(plan.ExtraRecipeID)
	for i := range plan.Additional {
		add(&plan.Additional[i].RecipeID)
	}

	return ids
}
