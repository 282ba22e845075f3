package pricing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"

	"rateshopper/models"
)

type fixedRoomRepo struct {
	room models.RoomType
}

func (r *fixedRoomRepo) Create(ctx context.Context, room models.RoomType) (string, error) {
	return room.ID, nil
}

func (r *fixedRoomRepo) GetByID(ctx context.Context, id string) (*models.RoomType, error) {
	room := r.room
	return &room, nil
}

func (r *fixedRoomRepo) GetByProperty(ctx context.Context, propertyID string) ([]models.RoomType, error) {
	return []models.RoomType{r.room}, nil
}

func (r *fixedRoomRepo) PropertyIDs(ctx context.Context) ([]string, error) {
	return []string{r.room.PropertyID}, nil
}

func (r *fixedRoomRepo) Update(ctx context.Context, room models.RoomType) error { return nil }

func (r *fixedRoomRepo) DeleteByID(ctx context.Context, id string) error { return nil }

func quoteServiceFixture() (*DefaultPricingService, QuoteParams) {
	svc := &DefaultPricingService{
		RoomTypes: &fixedRoomRepo{room: models.RoomType{
			ID:         "room-1",
			PropertyID: "prop-1",
			Name:       "Deluxe",
			BasePrice:  2500,
			MaxAdults:  3,
		}},
	}
	occupancy := 50.0
	params := QuoteParams{
		CheckIn:          time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		CheckOut:         time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC),
		CurrentOccupancy: &occupancy,
		NumAdults:        2,
	}
	return svc, params
}

func TestQuotePrice_SnapshotTaskBuildFailureDoesNotFailQuote(t *testing.T) {
	svc, params := quoteServiceFixture()
	svc.Queue = asynq.NewClient(asynq.RedisClientOpt{Addr: "127.0.0.1:1"})
	defer svc.Queue.Close()
	svc.SnapshotTaskBuilder = func(models.PricingSnapshot) (*asynq.Task, error) {
		return nil, errors.New("marshal failed")
	}

	quote, err := svc.QuotePrice(context.Background(), "prop-1", "room-1", params)

	assert.NoError(t, err)
	assert.NotNil(t, quote)
	assert.Greater(t, quote.RecommendedPrice, 0.0)
}

func TestQuotePrice_SnapshotEnqueueFailureDoesNotFailQuote(t *testing.T) {
	svc, params := quoteServiceFixture()
	// Nothing listens on this address, so the enqueue itself fails.
	svc.Queue = asynq.NewClient(asynq.RedisClientOpt{Addr: "127.0.0.1:1"})
	defer svc.Queue.Close()
	built := false
	svc.SnapshotTaskBuilder = func(snapshot models.PricingSnapshot) (*asynq.Task, error) {
		built = true
		assert.Equal(t, "prop-1", snapshot.PropertyID)
		assert.Equal(t, "room-1", snapshot.RoomTypeID)
		return asynq.NewTask("snapshot:persist", []byte("{}")), nil
	}

	quote, err := svc.QuotePrice(context.Background(), "prop-1", "room-1", params)

	assert.NoError(t, err)
	assert.NotNil(t, quote)
	assert.True(t, built)
}

func TestQuotePrice_NoQueueConfigured(t *testing.T) {
	svc, params := quoteServiceFixture()

	quote, err := svc.QuotePrice(context.Background(), "prop-1", "room-1", params)

	assert.NoError(t, err)
	assert.NotNil(t, quote)
}
