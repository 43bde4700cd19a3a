package booking

import (
	"context"
	"time"

	"petsit/models"
	"petsit/services/availability"

	"github.com/go-redis/redis/v8"

	bookingRepo "petsit/database/repository/booking"
	petpassRepo "petsit/database/repository/petpass"
	profileRepo "petsit/database/repository/profile"
	slotRepo "petsit/database/repository/slot"
)

// Booking actions accepted by the status transition endpoint.
const (
	ActionAccept  = "accept"
	ActionDecline = "decline"
	ActionCancel  = "cancel"
)

// Service is the requester/sitter-facing booking surface: the validated
// request builder, the booking lifecycle, and the cached draft session flow.
type Service interface {
	CreateBooking(ctx context.Context, userID string, input models.BookingInput) (*models.Booking, error)
	GetBooking(ctx context.Context, bookingID, viewerID string) (*models.Booking, error)
	ListBookings(ctx context.Context, userID, role string) ([]models.Booking, error)
	Transition(ctx context.Context, bookingID, actorID, action string) (*models.Booking, error)
	MarkRead(ctx context.Context, bookingID, actorID string) (*models.Booking, error)
	CloseReview(ctx context.Context, bookingID, actorID string, decline bool) (*models.Booking, error)
	SweepStatuses(ctx context.Context, now time.Time) (int, error)

	ListPetPasses(ctx context.Context, userID string) ([]models.PetPass, error)

	InitiateDraft(ctx context.Context, userID, providerID, date string) (*models.BookingDraft, error)
	UpdateDraft(ctx context.Context, sessionID, userID string, update DraftUpdate) (*models.BookingDraft, error)
	ConfirmDraft(ctx context.Context, sessionID, userID string) (*models.Booking, error)
	CancelDraft(ctx context.Context, sessionID, userID string) error
}

// DefaultBookingService implements Service.
type DefaultBookingService struct {
	Bookings     bookingRepo.BookingRepository
	Slots        slotRepo.SlotRepository
	Profiles     profileRepo.ProfileRepository
	PetPasses    petpassRepo.PetPassRepository
	Availability availability.Service
	Sessions     *redis.Client
}

// DraftUpdate is a partial selection change against a cached booking draft.
// Nil fields are left untouched. Activity replaces any prior selection: the
// data model carries weighted multi-activity bookings, but the form flow only
// ever yields a single activity at weight 100.
type DraftUpdate struct {
	Date      *string          `json:"date,omitempty"`
	SlotIDs   []string         `json:"slotIds,omitempty"`
	Activity  *string          `json:"activity,omitempty"`
	PetPasses []string         `json:"petPasses,omitempty"`
	Location  *models.Location `json:"location,omitempty"`
	Notes     *string          `json:"notes,omitempty"`
}
