package pricing

import (
	"context"
	"fmt"

	"rateshopper/config"
	factorsRepo "rateshopper/database/repository/factors"
	ratePlanRepo "rateshopper/database/repository/rateplan"
	roomTypeRepo "rateshopper/database/repository/roomtype"
	"rateshopper/models"
	"rateshopper/services/rateshop"
	"rateshopper/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// DefaultPricingService implements PricingService over the Mongo
// repositories and the rate-shop collaborator. Snapshot persistence goes
// through the asynq queue and never fails a calculation.
type DefaultPricingService struct {
	RoomTypes roomTypeRepo.RoomTypeRepository
	RatePlans ratePlanRepo.RatePlanRepository
	Factors   factorsRepo.PricingFactorsRepository
	RateShop  rateshop.RateShopService
	Queue     *asynq.Client

	// SnapshotTaskBuilder turns a completed calculation into a queue task;
	// main wires cron.NewSnapshotTask here.
	SnapshotTaskBuilder func(models.PricingSnapshot) (*asynq.Task, error)
}

func (s *DefaultPricingService) QuotePrice(ctx context.Context, propertyID, roomTypeID string, params QuoteParams) (*models.PriceQuote, error) {
	room, err := s.RoomTypes.GetByID(ctx, roomTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch room type %s: %w", roomTypeID, err)
	}

	factors := s.loadFactors(ctx, propertyID)
	competitors := s.loadCompetitorRates(ctx, propertyID)

	quote, err := CalculatePrice(QuoteRequest{
		BasePrice:        room.BasePrice,
		CheckIn:          params.CheckIn,
		CheckOut:         params.CheckOut,
		CurrentOccupancy: params.CurrentOccupancy,
		Factors:          factors,
		CompetitorPrices: competitors,
		OccupancyPricing: room.OccupancyPricing,
		NumAdults:        params.NumAdults,
		NumChildren:      params.NumChildren,
	})
	if err != nil {
		return nil, err
	}

	s.enqueueSnapshot(propertyID, roomTypeID, params, quote, competitors)
	return quote, nil
}

func (s *DefaultPricingService) WeeklyPrices(ctx context.Context, propertyID, roomTypeID string, params QuoteParams) (*models.WeeklyPrices, error) {
	room, err := s.RoomTypes.GetByID(ctx, roomTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch room type %s: %w", roomTypeID, err)
	}

	return CalculateWeeklyPrices(QuoteRequest{
		BasePrice:        room.BasePrice,
		CheckIn:          params.CheckIn,
		CheckOut:         params.CheckOut,
		CurrentOccupancy: params.CurrentOccupancy,
		Factors:          s.loadFactors(ctx, propertyID),
		CompetitorPrices: s.loadCompetitorRates(ctx, propertyID),
		OccupancyPricing: room.OccupancyPricing,
		NumAdults:        params.NumAdults,
		NumChildren:      params.NumChildren,
	})
}

func (s *DefaultPricingService) PricingTable(ctx context.Context, propertyID string, params QuoteParams) ([]models.PricingTableRow, []string, error) {
	rooms, err := s.RoomTypes.GetByProperty(ctx, propertyID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch room types: %w", err)
	}
	plans, err := s.RatePlans.GetByProperty(ctx, propertyID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch rate plans: %w", err)
	}

	rows, warnErrs, err := BuildPricingTable(rooms, plans, TableRequest{
		CheckIn:          params.CheckIn,
		CheckOut:         params.CheckOut,
		CurrentOccupancy: params.CurrentOccupancy,
		Factors:          s.loadFactors(ctx, propertyID),
		CompetitorPrices: s.loadCompetitorRates(ctx, propertyID),
	})
	if err != nil {
		return nil, nil, err
	}

	warnings := make([]string, 0, len(warnErrs))
	for _, w := range warnErrs {
		utils.GetLogger().Warn("Pricing table configuration issue",
			zap.String("propertyId", propertyID), zap.Error(w))
		warnings = append(warnings, w.Error())
	}
	return rows, warnings, nil
}

func (s *DefaultPricingService) RevenueSummary(ctx context.Context, propertyID string, params QuoteParams, targetOccupancy float64) (*models.RevenueMetrics, error) {
	rooms, err := s.RoomTypes.GetByProperty(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch room types: %w", err)
	}

	factors := s.loadFactors(ctx, propertyID)
	competitors := s.loadCompetitorRates(ctx, propertyID)

	recs := make([]models.RoomRecommendation, 0, len(rooms))
	for _, room := range rooms {
		quote, err := CalculatePrice(QuoteRequest{
			BasePrice:        room.BasePrice,
			CheckIn:          params.CheckIn,
			CheckOut:         params.CheckOut,
			CurrentOccupancy: params.CurrentOccupancy,
			Factors:          factors,
			CompetitorPrices: competitors,
			OccupancyPricing: room.OccupancyPricing,
			NumAdults:        params.NumAdults,
			NumChildren:      params.NumChildren,
		})
		if err != nil {
			return nil, err
		}
		recs = append(recs, models.RoomRecommendation{
			RoomTypeID:       room.ID,
			RecommendedPrice: quote.RecommendedPrice,
		})
	}

	currentOccupancy := 50.0
	if params.CurrentOccupancy != nil {
		currentOccupancy = *params.CurrentOccupancy
	}
	if targetOccupancy <= 0 {
		targetOccupancy = config.AppConfig.TargetOccupancy
	}

	metrics := AggregateRevenue(rooms, recs, currentOccupancy, targetOccupancy)
	return &metrics, nil
}

// loadFactors falls back to the defaults when the property never saved a
// config or the fetch fails; a pricing request should not die on a missing
// optional config.
func (s *DefaultPricingService) loadFactors(ctx context.Context, propertyID string) *models.PricingFactors {
	if s.Factors == nil {
		return models.DefaultPricingFactors()
	}
	factors, err := s.Factors.GetByProperty(ctx, propertyID)
	if err != nil {
		utils.GetLogger().Warn("Failed to load pricing factors, using defaults",
			zap.String("propertyId", propertyID), zap.Error(err))
		return models.DefaultPricingFactors()
	}
	if factors == nil {
		return models.DefaultPricingFactors()
	}
	return factors
}

// loadCompetitorRates degrades to an empty comp set on any failure, which
// neutralizes the competitor multiplier.
func (s *DefaultPricingService) loadCompetitorRates(ctx context.Context, propertyID string) []float64 {
	if s.RateShop == nil {
		return nil
	}
	rates, err := s.RateShop.FetchCompetitorRates(ctx, propertyID)
	if err != nil {
		utils.GetLogger().Warn("Failed to fetch competitor rates",
			zap.String("propertyId", propertyID), zap.Error(err))
		return nil
	}
	return rates
}

// enqueueSnapshot records the calculation for historical display. Enqueue
// failures are logged and swallowed: snapshot persistence never fails the
// pricing response.
func (s *DefaultPricingService) enqueueSnapshot(propertyID, roomTypeID string, params QuoteParams, quote *models.PriceQuote, competitors []float64) {
	if s.Queue == nil || s.SnapshotTaskBuilder == nil {
		return
	}

	occupancy := 50.0
	if params.CurrentOccupancy != nil {
		occupancy = *params.CurrentOccupancy
	}
	snapshot := models.PricingSnapshot{
		PropertyID:       propertyID,
		RoomTypeID:       roomTypeID,
		CheckIn:          params.CheckIn.Format(dateLayout),
		CheckOut:         params.CheckOut.Format(dateLayout),
		Occupancy:        occupancy,
		RecommendedPrice: quote.RecommendedPrice,
		PriceChangePct:   quote.PriceChangePct,
		Breakdown:        quote.Breakdown,
		CompetitorPrices: competitors,
	}

	task, err := s.SnapshotTaskBuilder(snapshot)
	if err != nil {
		utils.GetLogger().Warn("Failed to build snapshot task", zap.Error(err))
		return
	}
	if _, err := s.Queue.Enqueue(task); err != nil {
		utils.GetLogger().Warn("Failed to enqueue pricing snapshot",
			zap.String("roomTypeId", roomTypeID), zap.Error(err))
	}
}
