package pricing

import "rateshopper/models"

// MealCostPerAdult computes the per-adult meal surcharge of a rate plan.
// The surcharge is derived from the unmultiplied base price so fixed meal
// costs stay decoupled from demand pricing. A plan without a pricing_type is
// a configuration error; the caller decides whether to price the cell at
// zero meal cost and continue.
func MealCostPerAdult(plan models.RatePlan, originalBasePrice float64) (float64, error) {
	if plan.IsRoomOnly() {
		return 0, nil
	}
	switch plan.PricingType {
	case models.RatePlanPricingFlat:
		return plan.CostPerAdult, nil
	case models.RatePlanPricingMultiplier:
		return originalBasePrice * (plan.Multiplier - 1), nil
	default:
		return 0, NewConfigurationError("rate plan %q has no pricing_type", plan.PlanName)
	}
}

// MealCost returns the total meal surcharge for the given adult count.
func MealCost(plan models.RatePlan, originalBasePrice float64, numAdults int) (float64, error) {
	perAdult, err := MealCostPerAdult(plan, originalBasePrice)
	if err != nil {
		return 0, err
	}
	if numAdults < 1 {
		numAdults = 1
	}
	return perAdult * float64(numAdults), nil
}
