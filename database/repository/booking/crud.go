// File: database/repository/booking/crud.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"petsit/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *mongoBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrSlotConsumed
		}
		return fmt.Errorf("insert booking failed: %w", err)
	}
	return nil
}

func (r *mongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	return &booking, nil
}

// ReplaceIfStatus replaces the booking document only while its stored status
// still equals expectStatus. This is the optimistic guard for concurrent
// status transitions.
func (r *mongoBookingRepo) ReplaceIfStatus(ctx context.Context, booking *models.Booking, expectStatus string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	booking.UpdatedAt = time.Now()
	filter := bson.M{"id": booking.ID, "status": expectStatus}
	res, err := r.coll.ReplaceOne(ctx, filter, booking)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrSlotConsumed
		}
		return fmt.Errorf("replace booking failed: %w", err)
	}
	if res.MatchedCount == 0 {
		// Either the booking vanished or the status moved under us.
		if _, getErr := r.GetByID(ctx, booking.ID); getErr != nil {
			return getErr
		}
		return ErrStaleStatus
	}
	return nil
}
