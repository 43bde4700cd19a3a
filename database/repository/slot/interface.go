// File: database/repository/slot/interface.go
package slotRepo

import (
	"context"

	"petsit/database"
	"petsit/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// SlotRepository persists the atomic 15-minute availability intervals. Slots
// are immutable: availability edits are expressed as create/delete pairs and
// applied in one transaction by ApplyReconcile.
type SlotRepository interface {
	GetByCreator(ctx context.Context, creatorID string) ([]models.Slot, error)
	GetByCreatorAndDate(ctx context.Context, creatorID, date string) ([]models.Slot, error)
	GetByCreatorAndDates(ctx context.Context, creatorID string, dates []string) ([]models.Slot, error)
	GetByIDs(ctx context.Context, ids []string) ([]models.Slot, error)
	ApplyReconcile(ctx context.Context, create []models.Slot, deleteIDs []string) error
	EnsureIndexes() error
}

type mongoSlotRepo struct {
	coll *mongo.Collection
}

// NewMongoSlotRepo constructs a new MongoDB SlotRepository.
func NewMongoSlotRepo() SlotRepository {
	db := database.MongoClient.Database("petsit")
	return &mongoSlotRepo{
		coll: db.Collection("slots"),
	}
}
