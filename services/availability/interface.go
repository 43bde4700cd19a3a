package availability

import (
	"context"

	"petsit/models"

	"github.com/go-redis/redis/v8"

	bookingRepo "petsit/database/repository/booking"
	slotRepo "petsit/database/repository/slot"
)

// Service is the sitter-side availability surface: listing slots with derived
// status, reconciling desired availability against persisted slots, and the
// day/time aggregations both calendars render from.
type Service interface {
	ListSlots(ctx context.Context, creatorID string, dates []string, status string) ([]models.SlotView, error)
	ReconcileSlots(ctx context.Context, creatorID string, dates, times []string) (*models.ReconcileResult, error)
	ComputeAvailability(ctx context.Context, creatorID string) (*models.DayAvailability, error)
	EditGrid(ctx context.Context, creatorID string, dates []string) ([]models.TimeFlags, error)
	InvalidateCache(ctx context.Context, creatorID string)
}

// DefaultAvailabilityService implements Service.
type DefaultAvailabilityService struct {
	Slots    slotRepo.SlotRepository
	Bookings bookingRepo.BookingRepository
	Cache    *redis.Client
}
