package handlers

import (
	"net/http"

	"petsit/middleware"
	"petsit/models"
	"petsit/services/availability"
	"petsit/utils"

	"github.com/gin-gonic/gin"
)

// SlotHandler exposes the sitter-side availability surface.
type SlotHandler struct {
	Availability availability.Service
}

// NewSlotHandler constructs a SlotHandler.
func NewSlotHandler(svc availability.Service) *SlotHandler {
	return &SlotHandler{Availability: svc}
}

// ListSlotsHandler returns a sitter's slots with derived status. Optional
// query params: date (repeatable) and status (active|booked).
func (h *SlotHandler) ListSlotsHandler(c *gin.Context) {
	creatorID := c.Param("id")
	dates := c.QueryArray("date")
	status := c.Query("status")

	if status != "" && status != models.SlotStatusActive && status != models.SlotStatusBooked {
		utils.JSONError(c, http.StatusBadRequest, "invalid status filter", status)
		return
	}

	slots, err := h.Availability.ListSlots(c.Request.Context(), creatorID, dates, status)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list slots", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// ReconcileSlotsHandler replaces the sitter's availability on the supplied
// dates with the dates x times cross-product. Only the sitter themselves may
// edit their slots.
func (h *SlotHandler) ReconcileSlotsHandler(c *gin.Context) {
	creatorID := c.Param("id")
	if middleware.UserID(c) != creatorID {
		utils.JSONError(c, http.StatusForbidden, "cannot edit another sitter's slots", "")
		return
	}

	var req models.ReconcileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	result, err := h.Availability.ReconcileSlots(c.Request.Context(), creatorID, req.Dates, req.Times)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to reconcile slots", err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}

// AvailabilityHandler returns the day-level classification both calendars
// render from.
func (h *SlotHandler) AvailabilityHandler(c *gin.Context) {
	creatorID := c.Param("id")

	result, err := h.Availability.ComputeAvailability(c.Request.Context(), creatorID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}

// EditGridHandler returns the per-time edit flags for a set of dates being
// edited together in the sitter's slot editor.
func (h *SlotHandler) EditGridHandler(c *gin.Context) {
	creatorID := c.Param("id")
	if middleware.UserID(c) != creatorID {
		utils.JSONError(c, http.StatusForbidden, "cannot inspect another sitter's slot grid", "")
		return
	}

	var req struct {
		Dates []string `json:"dates" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	grid, err := h.Availability.EditGrid(c.Request.Context(), creatorID, req.Dates)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to compute slot grid", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"times": grid})
}
