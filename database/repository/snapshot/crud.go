package snapshotRepo

import (
	"context"
	"time"

	"rateshopper/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create appends a new pricing snapshot and returns its ID.
func (r *mongoSnapshotRepo) Create(ctx context.Context, snapshot models.PricingSnapshot) (string, error) {
	if snapshot.ID == "" {
		snapshot.ID = uuid.New().String()
	}
	if snapshot.CreatedAt.IsZero() {
		snapshot.CreatedAt = time.Now()
	}

	_, err := r.coll.InsertOne(ctx, snapshot)
	if err != nil {
		return "", err
	}
	return snapshot.ID, nil
}

// GetByProperty fetches the most recent snapshots of a property, newest first.
func (r *mongoSnapshotRepo) GetByProperty(ctx context.Context, propertyID string, limit int64) ([]models.PricingSnapshot, error) {
	if limit <= 0 {
		limit = 50
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)
	cursor, err := r.coll.Find(ctx, bson.M{"property_id": propertyID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var snapshots []models.PricingSnapshot
	if err := cursor.All(ctx, &snapshots); err != nil {
		return nil, err
	}
	return snapshots, nil
}
