package snapshotRepo

import (
	"context"

	"rateshopper/database"
	"rateshopper/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// PricingSnapshotRepository is append-only: snapshots are written once and
// only ever read back for historical display.
type PricingSnapshotRepository interface {
	Create(ctx context.Context, snapshot models.PricingSnapshot) (string, error)
	GetByProperty(ctx context.Context, propertyID string, limit int64) ([]models.PricingSnapshot, error)
}

type mongoSnapshotRepo struct {
	coll *mongo.Collection
}

// NewMongoSnapshotRepo returns a new PricingSnapshotRepository instance using MongoDB.
func NewMongoSnapshotRepo() PricingSnapshotRepository {
	return &mongoSnapshotRepo{
		coll: database.DB().Collection("pricing_snapshots"),
	}
}
