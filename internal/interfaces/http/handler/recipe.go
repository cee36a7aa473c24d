package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	catalogapp "github.com/vibecoders/backend/internal/application/catalog"
)

// RecipeHandler handles recipe catalog API endpoints
type RecipeHandler struct {
	BaseHandler
	recipeService *catalogapp.RecipeService
	reviewService *catalogapp.ReviewService
}

// NewRecipeHandler creates a new RecipeHandler
func NewRecipeHandler(recipeService *catalogapp.RecipeService, reviewService *catalogapp.ReviewService) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
		reviewService: reviewService,
	}
}

// List returns recipe summaries filtered by category and search keyword
func (h *RecipeHandler) List(c *gin.Context) {
	var filter catalogapp.RecipeListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	recipes, total, err := h.recipeService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 50
	}
	h.SuccessWithMeta(c, recipes, total, page, pageSize)
}

// Create registers a new recipe with its ingredients and steps
func (h *RecipeHandler) Create(c *gin.Context) {
	var req catalogapp.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	recipe, err := h.recipeService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, recipe)
}

// GetByID returns the full recipe card with ingredients, steps and reviews
func (h *RecipeHandler) GetByID(c *gin.Context) {
	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid recipe ID format")
		return
	}

	recipe, err := h.recipeService.GetByID(c.Request.Context(), recipeID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, recipe)
}

// Delete removes a recipe together with its ingredients, steps and reviews
func (h *RecipeHandler) Delete(c *gin.Context) {
	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid recipe ID format")
		return
	}

	if err := h.recipeService.Delete(c.Request.Context(), recipeID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// CreateReview attaches a review to a recipe
func (h *RecipeHandler) CreateReview(c *gin.Context) {
	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid recipe ID format")
		return
	}

	var req catalogapp.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	review, err := h.reviewService.Create(c.Request.Context(), recipeID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, review)
}

// ListReviews returns all reviews of a recipe, newest first
func (h *RecipeHandler) ListReviews(c *gin.Context) {
	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid recipe ID format")
		return
	}

	reviews, err := h.reviewService.ListByRecipe(c.Request.Context(), recipeID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, reviews)
}
