// File: database/repository/petpass/queries.go
package petpassRepo

import (
	"context"
	"fmt"
	"time"

	"petsit/models"

	"go.mongodb.org/mongo-driver/bson"
)

func (r *mongoPetPassRepo) GetByIDs(ctx context.Context, ids []string) ([]models.PetPass, error) {
	return r.find(ctx, bson.M{"id": bson.M{"$in": ids}})
}

func (r *mongoPetPassRepo) GetByOwner(ctx context.Context, ownerID string) ([]models.PetPass, error) {
	return r.find(ctx, bson.M{"ownerId": ownerID})
}

func (r *mongoPetPassRepo) find(ctx context.Context, filter bson.M) ([]models.PetPass, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pet passes: %w", err)
	}
	defer cursor.Close(ctx)

	var passes []models.PetPass
	if err := cursor.All(ctx, &passes); err != nil {
		return nil, fmt.Errorf("error decoding pet passes: %w", err)
	}
	return passes, nil
}
