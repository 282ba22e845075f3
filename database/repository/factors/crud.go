package factorsRepo

import (
	"context"
	"errors"
	"time"

	"rateshopper/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type factorsDoc struct {
	PropertyID string                `bson:"property_id"`
	Factors    models.PricingFactors `bson:"factors"`
	UpdatedAt  time.Time             `bson:"updated_at"`
}

// GetByProperty returns the stored factors config for a property, or nil
// when none was ever saved.
func (r *mongoFactorsRepo) GetByProperty(ctx context.Context, propertyID string) (*models.PricingFactors, error) {
	var doc factorsDoc
	err := r.coll.FindOne(ctx, bson.M{"property_id": propertyID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc.Factors, nil
}

// Save upserts the property's factors config.
func (r *mongoFactorsRepo) Save(ctx context.Context, propertyID string, factors models.PricingFactors) error {
	doc := factorsDoc{
		PropertyID: propertyID,
		Factors:    factors,
		UpdatedAt:  time.Now(),
	}
	opts := options.Replace().SetUpsert(true)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"property_id": propertyID}, doc, opts)
	return err
}
