package pricing

import (
	"sort"
	"time"

	"rateshopper/models"
)

// TableRequest holds the baseline inputs shared by every row of a pricing
// table: one stay window, one occupancy reading, one factors config and one
// competitor set, applied across rooms, plans and adult counts.
type TableRequest struct {
	CheckIn          time.Time
	CheckOut         time.Time
	CurrentOccupancy *float64
	Factors          *models.PricingFactors
	CompetitorPrices []float64
	Now              time.Time
}

// BuildPricingTable assembles the full room x meal-plan x occupancy x
// weekday table. For each cell the demand-adjusted base price is computed
// first; the meal surcharge, derived from the unmultiplied resolved base, is
// added on top afterwards. Rate plans with broken pricing config are priced
// at zero meal cost and reported in the returned warnings rather than
// aborting the batch.
func BuildPricingTable(rooms []models.RoomType, plans []models.RatePlan, req TableRequest) ([]models.PricingTableRow, []error, error) {
	sorted := make([]models.RoomType, len(rooms))
	copy(sorted, rooms)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Rank < sorted[j].Rank })

	var rows []models.PricingTableRow
	var warnings []error

	for _, room := range sorted {
		maxAdults := room.MaxAdults
		if maxAdults < 1 {
			maxAdults = 1
		}
		for _, plan := range plans {
			for adults := 1; adults <= maxAdults; adults++ {
				weekly, err := CalculateWeeklyPrices(QuoteRequest{
					BasePrice:        room.BasePrice,
					CheckIn:          req.CheckIn,
					CheckOut:         req.CheckOut,
					CurrentOccupancy: req.CurrentOccupancy,
					Factors:          req.Factors,
					CompetitorPrices: req.CompetitorPrices,
					OccupancyPricing: room.OccupancyPricing,
					NumAdults:        adults,
					Now:              req.Now,
				})
				if err != nil {
					return nil, warnings, err
				}

				resolvedBase := ResolveBasePrice(room.BasePrice, room.OccupancyPricing, adults, 0)
				mealCost, mealErr := MealCost(plan, resolvedBase, adults)
				if mealErr != nil {
					warnings = append(warnings, mealErr)
					mealCost = 0
				}

				prices := *weekly
				for i, p := range prices.Days() {
					prices.SetDay(i, Round2(p+mealCost))
				}

				rows = append(rows, models.PricingTableRow{
					RoomCategory: room.Name,
					MealPlan:     plan.PlanName,
					Occupancy:    adults,
					Prices:       prices,
				})
			}
		}
	}
	return rows, warnings, nil
}
