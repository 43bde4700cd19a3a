// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"errors"

	"petsit/database"
	"petsit/models"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrNotFound signals the referenced booking does not exist.
	ErrNotFound = errors.New("booking not found")
	// ErrSlotConsumed signals a write collided with the uniqueness guard:
	// one of the requested slots is already held by a non-terminal booking.
	ErrSlotConsumed = errors.New("slot already consumed by another booking")
	// ErrStaleStatus signals a guarded replace lost a concurrent status race.
	ErrStaleStatus = errors.New("booking status changed concurrently")
)

// BookingRepository persists booking records. Create relies on the partial
// unique multikey index over slotIds so that two concurrent bookings can
// never hold the same slot; the loser gets ErrSlotConsumed.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	ListByCreator(ctx context.Context, userID string) ([]models.Booking, error)
	ListByProvider(ctx context.Context, providerID string) ([]models.Booking, error)
	ConsumedSlots(ctx context.Context, providerID string) (map[string]string, error)
	ReplaceIfStatus(ctx context.Context, booking *models.Booking, expectStatus string) error
	ListSweepable(ctx context.Context, maxDate string) ([]models.Booking, error)
	EnsureIndexes() error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("petsit")
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
