package roomTypeRepo

import (
	"context"

	"rateshopper/database"
	"rateshopper/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type RoomTypeRepository interface {
	Create(ctx context.Context, room models.RoomType) (string, error)
	GetByID(ctx context.Context, id string) (*models.RoomType, error)
	GetByProperty(ctx context.Context, propertyID string) ([]models.RoomType, error)
	PropertyIDs(ctx context.Context) ([]string, error)
	Update(ctx context.Context, room models.RoomType) error
	DeleteByID(ctx context.Context, id string) error
}

type mongoRoomTypeRepo struct {
	coll *mongo.Collection
}

// NewMongoRoomTypeRepo returns a new RoomTypeRepository instance using MongoDB.
func NewMongoRoomTypeRepo() RoomTypeRepository {
	return &mongoRoomTypeRepo{
		coll: database.DB().Collection("room_types"),
	}
}
