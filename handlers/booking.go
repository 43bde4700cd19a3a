package handlers

import (
	"errors"
	"net/http"

	"petsit/middleware"
	"petsit/models"
	"petsit/services/booking"
	"petsit/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the booking lifecycle and the draft session flow.
type BookingHandler struct {
	Booking booking.Service
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc booking.Service) *BookingHandler {
	return &BookingHandler{Booking: svc}
}

// respondBookingError translates the service error taxonomy into HTTP.
// Validation failures carry the per-field flag map so the client can
// highlight every offending field at once.
func respondBookingError(c *gin.Context, err error) {
	var verr *booking.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "booking request invalid",
			"fields": verr.Fields,
		})
		return
	}
	var cerr *booking.ConflictError
	if errors.As(err, &cerr) {
		c.JSON(http.StatusConflict, gin.H{
			"error": cerr.Reason,
			"hint":  "refresh availability and retry",
		})
		return
	}
	var nerr *booking.NotFoundError
	if errors.As(err, &nerr) {
		utils.JSONError(c, http.StatusNotFound, "unavailable", nerr.Error())
		return
	}
	var ferr *booking.ForbiddenError
	if errors.As(err, &ferr) {
		utils.JSONError(c, http.StatusForbidden, ferr.Reason, "")
		return
	}
	if errors.Is(err, booking.ErrDraftNotFound) {
		utils.JSONError(c, http.StatusNotFound, "booking draft not found or expired", "")
		return
	}
	utils.JSONError(c, http.StatusInternalServerError, "booking operation failed", err.Error())
}

// CreateBookingHandler creates a booking directly from a full selection.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	created, err := h.Booking.CreateBooking(c.Request.Context(), middleware.UserID(c), input)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": created})
}

// ListBookingsHandler lists the caller's bookings; role=creator|provider.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	role := c.DefaultQuery("role", "creator")

	bookings, err := h.Booking.ListBookings(c.Request.Context(), middleware.UserID(c), role)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to list bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// GetBookingHandler returns one booking for one of its parties.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	b, err := h.Booking.GetBooking(c.Request.Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// PatchStatusHandler applies accept, decline or cancel.
func (h *BookingHandler) PatchStatusHandler(c *gin.Context) {
	var input struct {
		Action string `json:"action" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	updated, err := h.Booking.Transition(c.Request.Context(), c.Param("id"), middleware.UserID(c), input.Action)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": updated})
}

// MarkReadHandler clears the caller's unread flag on the booking.
func (h *BookingHandler) MarkReadHandler(c *gin.Context) {
	updated, err := h.Booking.MarkRead(c.Request.Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": updated})
}

// CloseReviewHandler records that the caller reviewed, or declined to review,
// the counterparty.
func (h *BookingHandler) CloseReviewHandler(c *gin.Context) {
	var input struct {
		Decline bool `json:"decline"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	updated, err := h.Booking.CloseReview(c.Request.Context(), c.Param("id"), middleware.UserID(c), input.Decline)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": updated})
}
