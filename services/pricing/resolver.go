package pricing

import (
	"math"

	"rateshopper/models"
)

// ResolveBasePrice derives the occupancy-adjusted base rate for a room.
// Absence or misconfiguration of the occupancy pricing always degrades to
// the unmodified base price; the resolver never fails. The result is a
// non-negative finite number.
func ResolveBasePrice(basePrice float64, op *models.OccupancyPricing, numAdults, numChildren int) float64 {
	if op == nil || op.PricingMode == models.PricingModeFlat {
		return basePrice
	}
	if numAdults < 1 {
		numAdults = 1
	}
	if numChildren < 0 {
		numChildren = 0
	}

	if op.PricingMode == models.PricingModePerAdult {
		if op.PerAdultRate <= 0 {
			return basePrice
		}
		return sanitize(op.PerAdultRate*float64(numAdults)+float64(numChildren)*op.ExtraChild, basePrice)
	}

	if len(op.AdultPricing) == 0 {
		return basePrice
	}

	price, ok := op.AdultPrice(numAdults)
	if !ok {
		// No entry for this adult count: start from the single-occupancy
		// price and charge the extra heads, falling back to the room base
		// when even that entry is missing.
		start, okSingle := op.AdultPrice(1)
		if !okSingle {
			start = basePrice
		}
		price = start + float64(numAdults-1)*op.ExtraAdult
	}
	if numChildren > 0 {
		price += float64(numChildren) * op.ExtraChild
	}
	return sanitize(price, basePrice)
}

func sanitize(price, fallback float64) float64 {
	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return fallback
	}
	return price
}
