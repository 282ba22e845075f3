package roomTypeRepo

import (
	"context"
	"errors"
	"time"

	"rateshopper/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new room type and returns its ID.
func (r *mongoRoomTypeRepo) Create(ctx context.Context, room models.RoomType) (string, error) {
	if room.ID == "" {
		room.ID = uuid.New().String()
	}
	room.CreatedAt = time.Now()
	room.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, room)
	if err != nil {
		return "", err
	}
	return room.ID, nil
}

// GetByID returns a room type by its ID.
func (r *mongoRoomTypeRepo) GetByID(ctx context.Context, id string) (*models.RoomType, error) {
	var room models.RoomType
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&room)
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// GetByProperty fetches all room types of a property in display order.
func (r *mongoRoomTypeRepo) GetByProperty(ctx context.Context, propertyID string) ([]models.RoomType, error) {
	opts := options.Find().SetSort(bson.D{{Key: "rank", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"property_id": propertyID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rooms []models.RoomType
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// PropertyIDs returns the distinct property IDs that have room types. The
// rate-refresh job uses it to enumerate the portfolio.
func (r *mongoRoomTypeRepo) PropertyIDs(ctx context.Context) ([]string, error) {
	values, err := r.coll.Distinct(ctx, "property_id", bson.M{})
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(values))
	for _, v := range values {
		if id, ok := v.(string); ok && id != "" {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// Update replaces an existing room type.
func (r *mongoRoomTypeRepo) Update(ctx context.Context, room models.RoomType) error {
	room.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": room.ID}, room)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("room type not found")
	}
	return nil
}

// DeleteByID removes a room type by ID.
func (r *mongoRoomTypeRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("room type not found")
	}
	return nil
}
