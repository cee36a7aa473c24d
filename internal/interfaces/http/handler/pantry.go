package handler

import (
	"github.com/gin-gonic/gin"
	pantryapp "github.com/vibecoders/backend/internal/application/pantry"
)

// PantryHandler handles user pantry API endpoints
type PantryHandler struct {
	BaseHandler
	pantryService *pantryapp.PantryService
}

// NewPantryHandler creates a new PantryHandler
func NewPantryHandler(pantryService *pantryapp.PantryService) *PantryHandler {
	return &PantryHandler{pantryService: pantryService}
}

// List returns all pantry items of a user
func (h *PantryHandler) List(c *gin.Context) {
	items, err := h.pantryService.List(c.Request.Context(), c.Query("user_id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, items)
}

// Save upserts a single pantry item keyed by user and name
func (h *PantryHandler) Save(c *gin.Context) {
	var req pantryapp.SavePantryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	item, err := h.pantryService.Save(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, item)
}

// SaveBatch upserts multiple pantry items, returning the items saved so far
// when an element fails partway through
func (h *PantryHandler) SaveBatch(c *gin.Context) {
	var req pantryapp.SavePantryItemsBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	items, err := h.pantryService.SaveBatch(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, items)
}

// Delete removes a pantry item by name
func (h *PantryHandler) Delete(c *gin.Context) {
	err := h.pantryService.Delete(c.Request.Context(), c.Query("user_id"), c.Param("name"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
