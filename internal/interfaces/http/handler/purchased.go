package handler

import (
	"github.com/gin-gonic/gin"
	pantryapp "github.com/vibecoders/backend/internal/application/pantry"
)

// PurchasedHandler handles purchased-items tracker API endpoints
type PurchasedHandler struct {
	BaseHandler
	purchasedService *pantryapp.PurchasedService
}

// NewPurchasedHandler creates a new PurchasedHandler
func NewPurchasedHandler(purchasedService *pantryapp.PurchasedService) *PurchasedHandler {
	return &PurchasedHandler{purchasedService: purchasedService}
}

// List returns purchased-item marks of a user for one shopping tab
func (h *PurchasedHandler) List(c *gin.Context) {
	items, err := h.purchasedService.List(c.Request.Context(), c.Query("user_id"), c.Query("tab_key"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, items)
}

// Save upserts a purchased mark keyed by user, item name and tab
func (h *PurchasedHandler) Save(c *gin.Context) {
	var req pantryapp.SavePurchasedItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	item, err := h.purchasedService.Save(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, item)
}

// SaveBatch upserts multiple purchased marks, returning the marks saved so far
// when an element fails partway through
func (h *PurchasedHandler) SaveBatch(c *gin.Context) {
	var req pantryapp.SavePurchasedItemsBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	items, err := h.purchasedService.SaveBatch(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, items)
}

// Delete removes one purchased mark
func (h *PurchasedHandler) Delete(c *gin.Context) {
	err := h.purchasedService.Delete(c.Request.Context(), c.Query("user_id"), c.Param("item_name"), c.Query("tab_key"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Clear removes all purchased marks of a user, optionally limited to one tab.
// Clearing an already empty tab succeeds with a zero count.
func (h *PurchasedHandler) Clear(c *gin.Context) {
	result, err := h.purchasedService.Clear(c.Request.Context(), c.Query("user_id"), c.Query("tab_key"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}
