package models

import (
	"encoding/json"
	"strconv"
	"time"
)

// Pricing modes recognized in an occupancy pricing config.
const (
	PricingModeFlat      = "flat"
	PricingModeOccupancy = "occupancy"
	PricingModePerAdult  = "per_adult"
)

// OccupancyPricing configures how a room type's rate varies with the number
// of guests. Attached to a RoomType; stored as a JSON string column in some
// backends (see ParseOccupancyPricing).
type OccupancyPricing struct {
	PricingMode  string             `bson:"pricing_mode" json:"pricing_mode"`
	AdultPricing map[string]float64 `bson:"adult_pricing,omitempty" json:"adult_pricing,omitempty"`
	ExtraAdult   float64            `bson:"extra_adult,omitempty" json:"extra_adult,omitempty"`
	ExtraChild   float64            `bson:"extra_child,omitempty" json:"extra_child,omitempty"`
	PerAdultRate float64            `bson:"per_adult_rate,omitempty" json:"per_adult_rate,omitempty"`
}

// AdultPrice looks up the configured price for the given adult count.
// Keys are stored as strings and need not be contiguous.
func (op *OccupancyPricing) AdultPrice(adults int) (float64, bool) {
	if op == nil || len(op.AdultPricing) == 0 {
		return 0, false
	}
	price, ok := op.AdultPricing[strconv.Itoa(adults)]
	return price, ok
}

// ParseOccupancyPricing decodes the JSON-string storage form of an occupancy
// pricing config. Any decode failure degrades to nil, which the pricing
// engine treats as flat pricing.
func ParseOccupancyPricing(raw string) *OccupancyPricing {
	if raw == "" {
		return nil
	}
	var op OccupancyPricing
	if err := json.Unmarshal([]byte(raw), &op); err != nil {
		return nil
	}
	return &op
}

// RoomType represents a bookable room category of a property.
// Created and edited by the property admin; read-only to the pricing engine.
type RoomType struct {
	ID               string            `bson:"id" json:"id"`
	PropertyID       string            `bson:"property_id" json:"property_id"`
	Name             string            `bson:"name" json:"name"`
	BasePrice        float64           `bson:"base_price" json:"base_price"`
	NumberOfRooms    int               `bson:"number_of_rooms" json:"number_of_rooms"`
	MaxAdults        int               `bson:"max_adults" json:"max_adults"`
	OccupancyPricing *OccupancyPricing `bson:"occupancy_pricing,omitempty" json:"occupancy_pricing,omitempty"`
	Rank             int               `bson:"rank" json:"rank"` // display order
	CreatedAt        time.Time         `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time         `bson:"updated_at" json:"updated_at"`
}
