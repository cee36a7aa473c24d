package handler

import (
	"github.com/gin-gonic/gin"
	planningapp "github.com/vibecoders/backend/internal/application/planning"
)

// MenuPlanHandler handles weekly menu planning API endpoints
type MenuPlanHandler struct {
	BaseHandler
	planService *planningapp.MenuPlanService
}

// NewMenuPlanHandler creates a new MenuPlanHandler
func NewMenuPlanHandler(planService *planningapp.MenuPlanService) *MenuPlanHandler {
	return &MenuPlanHandler{planService: planService}
}

// List returns menu plans within an optional date range, hydrated with recipe cards
func (h *MenuPlanHandler) List(c *gin.Context) {
	var filter planningapp.MenuPlanListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	plans, err := h.planService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, plans)
}

// Save creates or fully replaces the menu plan for a date
func (h *MenuPlanHandler) Save(c *gin.Context) {
	var req planningapp.SaveMenuPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	plan, err := h.planService.Save(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, plan)
}

// GetByDate returns the menu plan for a single date
func (h *MenuPlanHandler) GetByDate(c *gin.Context) {
	plan, err := h.planService.GetByDate(c.Request.Context(), c.Param("date"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, plan)
}

// Delete removes the menu plan for a date
func (h *MenuPlanHandler) Delete(c *gin.Context) {
	if err := h.planService.DeleteByDate(c.Request.Context(), c.Param("date")); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
