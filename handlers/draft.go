package handlers

import (
	"net/http"

	"petsit/middleware"
	"petsit/services/booking"
	"petsit/utils"

	"github.com/gin-gonic/gin"
)

// ListPetPassesHandler returns the caller's pets for the booking form's pet
// picker.
func (h *BookingHandler) ListPetPassesHandler(c *gin.Context) {
	passes, err := h.Booking.ListPetPasses(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list pet passes", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"petPasses": passes})
}

// InitiateDraftHandler starts a cached booking form against one sitter.
func (h *BookingHandler) InitiateDraftHandler(c *gin.Context) {
	var input struct {
		ProviderID string `json:"providerId" binding:"required"`
		Date       string `json:"date"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	draft, err := h.Booking.InitiateDraft(c.Request.Context(), middleware.UserID(c), input.ProviderID, input.Date)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// UpdateDraftHandler applies a partial selection change and returns the
// refreshed warnings and price quote.
func (h *BookingHandler) UpdateDraftHandler(c *gin.Context) {
	var update booking.DraftUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	draft, err := h.Booking.UpdateDraft(c.Request.Context(), c.Param("sessionID"), middleware.UserID(c), update)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// ConfirmDraftHandler turns a clean draft into a persisted booking.
func (h *BookingHandler) ConfirmDraftHandler(c *gin.Context) {
	created, err := h.Booking.ConfirmDraft(c.Request.Context(), c.Param("sessionID"), middleware.UserID(c))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": created})
}

// CancelDraftHandler discards the draft session.
func (h *BookingHandler) CancelDraftHandler(c *gin.Context) {
	if err := h.Booking.CancelDraft(c.Request.Context(), c.Param("sessionID"), middleware.UserID(c)); err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}
