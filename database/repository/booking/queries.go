// File: database/repository/booking/queries.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"petsit/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoBookingRepo) ListByCreator(ctx context.Context, userID string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"bookedBy": userID})
}

func (r *mongoBookingRepo) ListByProvider(ctx context.Context, providerID string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"bookedFrom": providerID})
}

// ConsumedSlots returns every slot ID currently held by a non-terminal
// booking against the given sitter, mapped to the holding booking's ID.
func (r *mongoBookingRepo) ConsumedSlots(ctx context.Context, providerID string) (map[string]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"bookedFrom": providerID,
		"status":     bson.M{"$in": models.NonTerminalStatuses},
	}
	opts := options.Find().SetProjection(bson.M{"id": 1, "slotIds": 1})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch consumed slots: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ID      string   `bson:"id"`
		SlotIDs []string `bson:"slotIds"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("error decoding consumed slots: %w", err)
	}

	consumed := make(map[string]string)
	for _, row := range rows {
		for _, slotID := range row.SlotIDs {
			consumed[slotID] = row.ID
		}
	}
	return consumed, nil
}

// ListSweepable returns non-terminal bookings whose date is on or before
// maxDate, i.e. candidates for the accepted->current->done sweep.
func (r *mongoBookingRepo) ListSweepable(ctx context.Context, maxDate string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{
		"status": bson.M{"$in": []string{models.BookingAccepted, models.BookingCurrent}},
		"date":   bson.M{"$lte": maxDate},
	})
}

func (r *mongoBookingRepo) find(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}
