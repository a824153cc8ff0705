package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Lukasnog18/agendamento-de-consultas/internal/core/domain"
)

const collectionActivity = "activity"

// ActivityRepository persists audit entries to the activity collection.
type ActivityRepository struct {
	col *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{col: db.Collection(collectionActivity)}
}

func (r *ActivityRepository) Insert(ctx context.Context, entry *domain.ActivityEntry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"entity":      entry.Entity,
		"entity_id":   entry.EntityID,
		"action":      entry.Action,
		"actor":       entry.Actor,
		"timestamp":   entry.Timestamp.UTC(),
		"recorded_at": time.Now().UTC(),
	}
	if entry.Detail != "" {
		doc["detail"] = entry.Detail
	}

	_, err := r.col.InsertOne(ctx, doc)
	return err
}
