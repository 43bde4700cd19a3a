// File: database/repository/profile/interface.go
package profileRepo

import (
	"context"
	"errors"

	"petsit/database"
	"petsit/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound signals the referenced sitter profile does not exist.
var ErrNotFound = errors.New("profile not found")

// ProfileRepository is a read-only view over sitter profiles, which are owned
// by the accounts service. The booking core only consumes offerings and
// species flags.
type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (*models.Profile, error)
}

type mongoProfileRepo struct {
	coll *mongo.Collection
}

// NewMongoProfileRepo constructs a new MongoDB ProfileRepository.
func NewMongoProfileRepo() ProfileRepository {
	db := database.MongoClient.Database("petsit")
	return &mongoProfileRepo{
		coll: db.Collection("profiles"),
	}
}
