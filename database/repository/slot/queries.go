// File: database/repository/slot/queries.go
package slotRepo

import (
	"context"
	"fmt"
	"time"

	"petsit/models"

	"go.mongodb.org/mongo-driver/bson"
)

func (r *mongoSlotRepo) GetByCreator(ctx context.Context, creatorID string) ([]models.Slot, error) {
	return r.find(ctx, bson.M{"creatorId": creatorID})
}

func (r *mongoSlotRepo) GetByCreatorAndDate(ctx context.Context, creatorID, date string) ([]models.Slot, error) {
	return r.find(ctx, bson.M{"creatorId": creatorID, "date": date})
}

func (r *mongoSlotRepo) GetByCreatorAndDates(ctx context.Context, creatorID string, dates []string) ([]models.Slot, error) {
	return r.find(ctx, bson.M{"creatorId": creatorID, "date": bson.M{"$in": dates}})
}

func (r *mongoSlotRepo) GetByIDs(ctx context.Context, ids []string) ([]models.Slot, error) {
	return r.find(ctx, bson.M{"id": bson.M{"$in": ids}})
}

func (r *mongoSlotRepo) find(ctx context.Context, filter bson.M) ([]models.Slot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch slots: %w", err)
	}
	defer cursor.Close(ctx)

	var slots []models.Slot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("error decoding slots: %w", err)
	}
	return slots, nil
}
