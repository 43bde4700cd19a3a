// File: database/repository/profile/queries.go
package profileRepo

import (
	"context"
	"fmt"
	"time"

	"petsit/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *mongoProfileRepo) GetByID(ctx context.Context, id string) (*models.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var profile models.Profile
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&profile)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	return &profile, nil
}
