// File: database/repository/petpass/interface.go
package petpassRepo

import (
	"context"

	"petsit/database"
	"petsit/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// PetPassRepository is a read-only view over pet profiles, which are owned by
// the accounts service. The booking core reads them for ownership and species
// compatibility checks only.
type PetPassRepository interface {
	GetByIDs(ctx context.Context, ids []string) ([]models.PetPass, error)
	GetByOwner(ctx context.Context, ownerID string) ([]models.PetPass, error)
}

type mongoPetPassRepo struct {
	coll *mongo.Collection
}

// NewMongoPetPassRepo constructs a new MongoDB PetPassRepository.
func NewMongoPetPassRepo() PetPassRepository {
	db := database.MongoClient.Database("petsit")
	return &mongoPetPassRepo{
		coll: db.Collection("petpasses"),
	}
}
