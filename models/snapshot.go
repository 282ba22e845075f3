package models

import "time"

// PricingSnapshot is an immutable record of a completed price calculation,
// appended after every successful quote and kept for historical display.
// Never mutated; never read back by the engine itself.
type PricingSnapshot struct {
	ID               string          `bson:"id" json:"id"`
	PropertyID       string          `bson:"property_id" json:"property_id"`
	RoomTypeID       string          `bson:"room_type_id" json:"room_type_id"`
	CheckIn          string          `bson:"check_in" json:"check_in"`   // "YYYY-MM-DD"
	CheckOut         string          `bson:"check_out" json:"check_out"` // "YYYY-MM-DD"
	Occupancy        float64         `bson:"occupancy" json:"occupancy"`
	RecommendedPrice float64         `bson:"recommended_price" json:"recommended_price"`
	PriceChangePct   float64         `bson:"price_change_pct" json:"price_change_pct"`
	Breakdown        FactorBreakdown `bson:"factor_breakdown" json:"factor_breakdown"`
	CompetitorPrices []float64       `bson:"competitor_prices,omitempty" json:"competitor_prices,omitempty"`
	CreatedAt        time.Time       `bson:"created_at" json:"created_at"`
}

// RateRefreshPayload is the asynq task payload for a competitor-rate
// cache refresh.
type RateRefreshPayload struct {
	PropertyID string `json:"propertyId"`
}
