// File: database/repository/slot/crud.go
package slotRepo

import (
	"context"
	"fmt"
	"time"

	"petsit/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ApplyReconcile inserts and deletes slot documents as one atomic unit. Either
// the whole plan lands or none of it does; a mid-operation failure must leave
// prior state unchanged.
func (r *mongoSlotRepo) ApplyReconcile(ctx context.Context, create []models.Slot, deleteIDs []string) error {
	if len(create) == 0 && len(deleteIDs) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		if len(create) > 0 {
			docs := make([]interface{}, len(create))
			for i, slot := range create {
				if slot.ID == "" {
					slot.ID = uuid.New().String()
				}
				if slot.CreatedAt.IsZero() {
					slot.CreatedAt = time.Now()
				}
				docs[i] = slot
			}
			if _, err := r.coll.InsertMany(sc, docs); err != nil {
				return fmt.Errorf("insert slots failed: %w", err)
			}
		}
		if len(deleteIDs) > 0 {
			res, err := r.coll.DeleteMany(sc, bson.M{"id": bson.M{"$in": deleteIDs}})
			if err != nil {
				return fmt.Errorf("delete slots failed: %w", err)
			}
			if res.DeletedCount != int64(len(deleteIDs)) {
				return fmt.Errorf("expected to delete %d slots, deleted %d", len(deleteIDs), res.DeletedCount)
			}
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return fmt.Errorf("slot reconcile transaction failed: %w", err)
	}

	return nil
}
