package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"rateshopper/models"
)

func TestMealCostPerAdult_FlatPlan(t *testing.T) {
	plan := models.RatePlan{PlanName: "CP", PricingType: models.RatePlanPricingFlat, CostPerAdult: 300}
	cost, err := MealCostPerAdult(plan, 2500)
	assert.NoError(t, err)
	assert.Equal(t, 300.0, cost)
}

func TestMealCostPerAdult_MultiplierPlan(t *testing.T) {
	plan := models.RatePlan{PlanName: "MAP", PricingType: models.RatePlanPricingMultiplier, Multiplier: 1.2}
	cost, err := MealCostPerAdult(plan, 2500)
	assert.NoError(t, err)
	assert.InDelta(t, 500.0, cost, 1e-9)
}

func TestMealCostPerAdult_RoomOnlyAlwaysZero(t *testing.T) {
	// EP contributes nothing even with pricing fields set.
	plan := models.RatePlan{PlanName: "EP", PricingType: models.RatePlanPricingFlat, CostPerAdult: 300}
	cost, err := MealCostPerAdult(plan, 2500)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, cost)
}

func TestMealCostPerAdult_MissingPricingTypeIsConfigError(t *testing.T) {
	plan := models.RatePlan{PlanName: "AP"}
	_, err := MealCostPerAdult(plan, 2500)

	var confErr *ConfigurationError
	assert.ErrorAs(t, err, &confErr)
	assert.Contains(t, confErr.Error(), "AP")
}

func TestMealCost_ScalesWithAdults(t *testing.T) {
	plan := models.RatePlan{PlanName: "CP", PricingType: models.RatePlanPricingFlat, CostPerAdult: 300}
	cost, err := MealCost(plan, 2500, 3)
	assert.NoError(t, err)
	assert.Equal(t, 900.0, cost)
}

func tableRequest(factors *models.PricingFactors) TableRequest {
	checkIn := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	return TableRequest{
		CheckIn:  checkIn,
		CheckOut: checkIn.AddDate(0, 0, 1),
		Factors:  factors,
		Now:      checkIn,
	}
}

func TestBuildPricingTable_RowPerRoomPlanOccupancy(t *testing.T) {
	rooms := []models.RoomType{
		{ID: "r1", Name: "Deluxe", BasePrice: 2500, NumberOfRooms: 10, MaxAdults: 2, Rank: 1},
	}
	plans := []models.RatePlan{
		{PlanName: "EP", PricingType: models.RatePlanPricingFlat},
		{PlanName: "CP", PricingType: models.RatePlanPricingFlat, CostPerAdult: 300},
	}

	rows, warnings, err := BuildPricingTable(rooms, plans, tableRequest(neutralFactors()))
	assert.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Len(t, rows, 4) // 1 room x 2 plans x 2 occupancy levels

	// EP, single occupancy: bare demand-adjusted price.
	assert.Equal(t, "Deluxe", rows[0].RoomCategory)
	assert.Equal(t, "EP", rows[0].MealPlan)
	assert.Equal(t, 1, rows[0].Occupancy)
	assert.Equal(t, 2500.0, rows[0].Prices.Monday)

	// CP, double occupancy: 2500 + 2*300.
	assert.Equal(t, "CP", rows[2].MealPlan)
	assert.Equal(t, 2, rows[3].Occupancy)
	assert.Equal(t, 3100.0, rows[3].Prices.Monday)
}

func TestBuildPricingTable_MealCostNotDemandAdjusted(t *testing.T) {
	factors := neutralFactors()
	factors.OccupancyHigh = 1.2
	req := tableRequest(factors)
	req.CurrentOccupancy = pct(75)

	rooms := []models.RoomType{
		{ID: "r1", Name: "Deluxe", BasePrice: 2500, MaxAdults: 1, Rank: 1},
	}
	plans := []models.RatePlan{
		{PlanName: "CP", PricingType: models.RatePlanPricingFlat, CostPerAdult: 300},
	}

	rows, warnings, err := BuildPricingTable(rooms, plans, req)
	assert.NoError(t, err)
	assert.Empty(t, warnings)
	// Demand-adjusted base 2500*1.2 = 3000, then the flat meal cost on top.
	assert.Equal(t, 3300.0, rows[0].Prices.Monday)
}

func TestBuildPricingTable_BrokenPlanWarnsAndContinues(t *testing.T) {
	rooms := []models.RoomType{
		{ID: "r1", Name: "Deluxe", BasePrice: 2500, MaxAdults: 1, Rank: 1},
	}
	plans := []models.RatePlan{
		{PlanName: "Mystery"}, // no pricing_type
		{PlanName: "CP", PricingType: models.RatePlanPricingFlat, CostPerAdult: 300},
	}

	rows, warnings, err := BuildPricingTable(rooms, plans, tableRequest(neutralFactors()))
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Len(t, warnings, 1)
	assert.Contains(t, warnings[0].Error(), "Mystery")

	// The broken plan's cell is priced at zero meal cost, not dropped.
	assert.Equal(t, 2500.0, rows[0].Prices.Monday)
	assert.Equal(t, 2800.0, rows[1].Prices.Monday)
}

func TestBuildPricingTable_RespectsRankOrder(t *testing.T) {
	rooms := []models.RoomType{
		{ID: "r2", Name: "Suite", BasePrice: 5000, MaxAdults: 1, Rank: 2},
		{ID: "r1", Name: "Standard", BasePrice: 2000, MaxAdults: 1, Rank: 1},
	}
	plans := []models.RatePlan{
		{PlanName: "EP", PricingType: models.RatePlanPricingFlat},
	}

	rows, _, err := BuildPricingTable(rooms, plans, tableRequest(neutralFactors()))
	assert.NoError(t, err)
	assert.Equal(t, "Standard", rows[0].RoomCategory)
	assert.Equal(t, "Suite", rows[1].RoomCategory)
}

func TestBuildPricingTable_UsesOccupancyPricingPerAdultCount(t *testing.T) {
	rooms := []models.RoomType{
		{
			ID: "r1", Name: "Deluxe", BasePrice: 2500, MaxAdults: 2, Rank: 1,
			OccupancyPricing: &models.OccupancyPricing{
				PricingMode:  models.PricingModeOccupancy,
				AdultPricing: map[string]float64{"1": 2000, "2": 3200},
			},
		},
	}
	plans := []models.RatePlan{
		{PlanName: "EP", PricingType: models.RatePlanPricingFlat},
	}

	rows, _, err := BuildPricingTable(rooms, plans, tableRequest(neutralFactors()))
	assert.NoError(t, err)
	assert.Equal(t, 2000.0, rows[0].Prices.Monday)
	assert.Equal(t, 3200.0, rows[1].Prices.Monday)
}
