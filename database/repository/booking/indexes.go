// FILE: database/repository/booking/indexes.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"petsit/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the bookings collection.
//
// The partial unique multikey index on slotIds is the no-double-booking
// guard: while a booking is non-terminal, no other document may reference any
// of its slot IDs. Terminal statuses fall out of the partial filter, which is
// what "releasing" slots means at the storage layer.
func (r *mongoBookingRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys: bson.D{{Key: "slotIds", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetName("unique_live_slot_refs").
				SetPartialFilterExpression(bson.M{
					"status": bson.M{"$in": models.NonTerminalStatuses},
				}),
		},
		{
			Keys:    bson.D{{Key: "bookedBy", Value: 1}},
			Options: options.Index().SetName("booked_by_idx"),
		},
		{
			Keys:    bson.D{{Key: "bookedFrom", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().SetName("booked_from_status_idx"),
		},
		{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetName("status_date_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}
