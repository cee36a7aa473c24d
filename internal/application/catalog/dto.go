package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/vibecoders/backend/internal/domain/catalog"
)

// CreateIngredientRequest is one line of a new recipe's ingredient list
type CreateIngredientRequest struct {
	Name   string `json:"name" binding:"required,min=1,max=255"`
	Amount string `json:"amount" binding:"required,max=50"`
	Unit   string `json:"unit" binding:"max=50"`
}

// CreateStepRequest is one cooking instruction of a new recipe
type CreateStepRequest struct {
	Instruction string  `json:"instruction" binding:"required"`
	Image       *string `json:"image"`
}

// CreateRecipeRequest represents a request to create a recipe with its
// ordered ingredient and step lists
type CreateRecipeRequest struct {
	Title                   string                    `json:"title" binding:"required,min=1,max=255"`
	Category                string                    `json:"category" binding:"required,min=1,max=50"`
	CookTime                int                       `json:"cook_time" binding:"required,min=1"`
	Servings                int                       `json:"servings" binding:"required,min=1"`
	Image                   *string                   `json:"image"`
	CaloriesPerServing      *int                      `json:"calories_per_serving" binding:"omitempty,min=0"`
	ProteinsPerServing      *float64                  `json:"proteins_per_serving" binding:"omitempty,min=0"`
	FatsPerServing          *float64                  `json:"fats_per_serving" binding:"omitempty,min=0"`
	CarbohydratesPerServing *float64                  `json:"carbohydrates_per_serving" binding:"omitempty,min=0"`
	Ingredients             []CreateIngredientRequest `json:"ingredients" binding:"required,min=1,dive"`
	Steps                   []CreateStepRequest       `json:"steps" binding:"required,min=1,dive"`
}

// CreateReviewRequest represents a request to add a review to a recipe
type CreateReviewRequest struct {
	Author  string  `json:"author" binding:"required,min=1,max=100"`
	Rating  int     `json:"rating" binding:"required,min=1,max=5"`
	Comment string  `json:"comment" binding:"required"`
	Date    string  `json:"date" binding:"required,max=50"`
	Image   *string `json:"image"`
}

// RecipeListFilter represents filter options for the recipe list
type RecipeListFilter struct {
	Category string `form:"category" binding:"omitempty,max=50"`
	Search   string `form:"search" binding:"omitempty,max=255"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// IngredientResponse represents an ingredient line in API responses
type IngredientResponse struct {
	ID       uuid.UUID `json:"id"`
	RecipeID uuid.UUID `json:"recipe_id"`
	Name     string    `json:"name"`
	Amount   string    `json:"amount"`
	Unit     string    `json:"unit"`
	Order    int       `json:"order"`
}

// StepResponse represents a cooking step in API responses
type StepResponse struct {
	ID          uuid.UUID `json:"id"`
	RecipeID    uuid.UUID `json:"recipe_id"`
	Number      int       `json:"number"`
	Instruction string    `json:"instruction"`
	Image       *string   `json:"image"`
	Order       int       `json:"order"`
}

// ReviewResponse represents a review in API responses
type ReviewResponse struct {
	ID       uuid.UUID `json:"id"`
	RecipeID uuid.UUID `json:"recipe_id"`
	Author   string    `json:"author"`
	Rating   int       `json:"rating"`
	Comment  string    `json:"comment"`
	Date     string    `json:"date"`
	Image    *string   `json:"image"`
}

// RecipeListItem is the browse projection of a recipe: header fields
// and the derived rating, no child collections
type RecipeListItem struct {
	ID                      uuid.UUID `json:"id"`
	Title                   string    `json:"title"`
	Category                string    `json:"category"`
	CookTime                int       `json:"cook_time"`
	Servings                int       `json:"servings"`
	Image                   *string   `json:"image"`
	CaloriesPerServing      *int      `json:"calories_per_serving"`
	ProteinsPerServing      *float64  `json:"proteins_per_serving"`
	FatsPerServing          *float64  `json:"fats_per_serving"`
	CarbohydratesPerServing *float64  `json:"carbohydrates_per_serving"`
	Rating                  *float64  `json:"rating"`
}

// RecipeDetailResponse is the detail projection: the list projection
// plus ordered ingredients, ordered steps and reviews
type RecipeDetailResponse struct {
	RecipeListItem
	Ingredients []IngredientResponse `json:"ingredients"`
	Steps       []StepResponse       `json:"steps"`
	Reviews     []ReviewResponse     `json:"reviews"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// ToRecipeListItem converts a domain Recipe to its list projection
func ToRecipeListItem(r *catalog.Recipe, rating *float64) RecipeListItem {
	return RecipeListItem{
		ID:                      r.ID,
		Title:                   r.Title,
		Category:                r.Category,
		CookTime:                r.CookTime,
		Servings:                r.Servings,
		Image:                   r.Image,
		CaloriesPerServing:      r.CaloriesPerServing,
		ProteinsPerServing:      r.ProteinsPerServing,
		FatsPerServing:          r.FatsPerServing,
		CarbohydratesPerServing: r.CarbohydratesPerServing,
		Rating:                  rating,
	}
}

// ToRecipeDetailResponse converts a domain Recipe with loaded children
// to its detail projection
func ToRecipeDetailResponse(r *catalog.Recipe, rating *float64) RecipeDetailResponse {
	resp := RecipeDetailResponse{
		RecipeListItem: ToRecipeListItem(r, rating),
		Ingredients:    make([]IngredientResponse, 0, len(r.Ingredients)),
		Steps:          make([]StepResponse, 0, len(r.Steps)),
		Reviews:        make([]ReviewResponse, 0, len(r.Reviews)),
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}

	for _, ing := range r.Ingredients {
		resp.Ingredients = append(resp.Ingredients, IngredientResponse{
			ID:       ing.ID,
			RecipeID: ing.RecipeID,
			Name:     ing.Name,
			Amount:   ing.Amount,
			Unit:     ing.Unit,
			Order:    ing.SortOrder,
		})
	}

	for _, step := range r.Steps {
		resp.Steps = append(resp.Steps, StepResponse{
			ID:          step.ID,
			RecipeID:    step.RecipeID,
			Number:      step.Number,
			Instruction: step.Instruction,
			Image:       step.Image,
			Order:       step.SortOrder,
		})
	}

	for _, review := range r.Reviews {
		resp.Reviews = append(resp.Reviews, ToReviewResponse(&review))
	}

	return resp
}

// ToReviewResponse converts a domain Review to its API shape
func ToReviewResponse(r *catalog.Review) ReviewResponse {
	return ReviewResponse{
		ID:       r.ID,
		RecipeID: r.RecipeID,
		Author:   r.Author,
		Rating:   r.Rating,
		Comment:  r.Comment,
		Date:     r.Date,
		Image:    r.Image,
	}
}
