package models

import (
	"strings"
	"time"
)

// Rate plan pricing types.
const (
	RatePlanPricingFlat       = "flat"
	RatePlanPricingMultiplier = "multiplier"
)

// RatePlan represents a meal plan (EP/CP/MAP/AP) attached to a property.
// Exactly one of CostPerAdult and Multiplier is active, selected by
// PricingType; the other is ignored even if present.
type RatePlan struct {
	ID           string    `bson:"id" json:"id"`
	PropertyID   string    `bson:"property_id" json:"property_id"`
	PlanName     string    `bson:"plan_name" json:"plan_name"`
	PricingType  string    `bson:"pricing_type" json:"pricing_type"`
	CostPerAdult float64   `bson:"cost_per_adult,omitempty" json:"cost_per_adult,omitempty"`
	Multiplier   float64   `bson:"multiplier,omitempty" json:"multiplier,omitempty"`
	Description  string    `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// IsRoomOnly reports whether the plan is room-only (EP), which never carries
// a meal surcharge.
func (p RatePlan) IsRoomOnly() bool {
	return strings.EqualFold(strings.TrimSpace(p.PlanName), "EP")
}
