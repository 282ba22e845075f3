package factorsRepo

import (
	"context"

	"rateshopper/database"
	"rateshopper/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type PricingFactorsRepository interface {
	// GetByProperty returns the saved factors config, or nil when the
	// property has none.
	GetByProperty(ctx context.Context, propertyID string) (*models.PricingFactors, error)
	// Save upserts the property's factors config. Factors only change via
	// this explicit save.
	Save(ctx context.Context, propertyID string, factors models.PricingFactors) error
}

type mongoFactorsRepo struct {
	coll *mongo.Collection
}

// NewMongoFactorsRepo returns a new PricingFactorsRepository instance using MongoDB.
func NewMongoFactorsRepo() PricingFactorsRepository {
	return &mongoFactorsRepo{
		coll: database.DB().Collection("pricing_factors"),
	}
}
