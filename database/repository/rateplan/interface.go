package ratePlanRepo

import (
	"context"

	"rateshopper/database"
	"rateshopper/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type RatePlanRepository interface {
	Create(ctx context.Context, plan models.RatePlan) (string, error)
	GetByProperty(ctx context.Context, propertyID string) ([]models.RatePlan, error)
	Update(ctx context.Context, plan models.RatePlan) error
	DeleteByID(ctx context.Context, id string) error
}

type mongoRatePlanRepo struct {
	coll *mongo.Collection
}

// NewMongoRatePlanRepo returns a new RatePlanRepository instance using MongoDB.
func NewMongoRatePlanRepo() RatePlanRepository {
	return &mongoRatePlanRepo{
		coll: database.DB().Collection("rate_plans"),
	}
}
