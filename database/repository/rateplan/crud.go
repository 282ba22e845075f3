package ratePlanRepo

import (
	"context"
	"errors"
	"time"

	"rateshopper/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new rate plan and returns its ID.
func (r *mongoRatePlanRepo) Create(ctx context.Context, plan models.RatePlan) (string, error) {
	if plan.ID == "" {
		plan.ID = uuid.New().String()
	}
	plan.CreatedAt = time.Now()
	plan.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, plan)
	if err != nil {
		return "", err
	}
	return plan.ID, nil
}

// GetByProperty fetches all rate plans of a property.
func (r *mongoRatePlanRepo) GetByProperty(ctx context.Context, propertyID string) ([]models.RatePlan, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"property_id": propertyID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var plans []models.RatePlan
	if err := cursor.All(ctx, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

// Update replaces an existing rate plan.
func (r *mongoRatePlanRepo) Update(ctx context.Context, plan models.RatePlan) error {
	plan.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": plan.ID}, plan)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("rate plan not found")
	}
	return nil
}

// DeleteByID removes a rate plan by ID.
func (r *mongoRatePlanRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("rate plan not found")
	}
	return nil
}
