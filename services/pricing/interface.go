package pricing

import (
	"context"
	"time"

	"rateshopper/models"
)

// QuoteParams are the caller-supplied inputs of a pricing request; stored
// configuration (room types, rate plans, factors, competitor rates) is
// loaded by the service.
type QuoteParams struct {
	CheckIn          time.Time
	CheckOut         time.Time
	CurrentOccupancy *float64 // percent; nil defaults to 50
	NumAdults        int
	NumChildren      int
}

// PricingService is the dashboard-facing entry point of the pricing engine.
type PricingService interface {
	// QuotePrice computes the recommendation for one room type and one
	// check-in date, and appends a pricing snapshot in the background.
	QuotePrice(ctx context.Context, propertyID, roomTypeID string, params QuoteParams) (*models.PriceQuote, error)
	// WeeklyPrices computes the seven weekday prices for one room type.
	WeeklyPrices(ctx context.Context, propertyID, roomTypeID string, params QuoteParams) (*models.WeeklyPrices, error)
	// PricingTable assembles the full room x meal-plan x occupancy x weekday
	// table, returning non-fatal configuration warnings alongside the rows.
	PricingTable(ctx context.Context, propertyID string, params QuoteParams) ([]models.PricingTableRow, []string, error)
	// RevenueSummary aggregates per-room recommendations into portfolio
	// revenue metrics. A zero targetOccupancy falls back to the configured
	// default.
	RevenueSummary(ctx context.Context, propertyID string, params QuoteParams, targetOccupancy float64) (*models.RevenueMetrics, error)
}
