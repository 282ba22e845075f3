package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"rateshopper/models"
)

// neutralFactors pins every multiplier to 1.0 and disables the competitor
// dimension, so individual tests can light up one dimension at a time.
func neutralFactors() *models.PricingFactors {
	return &models.PricingFactors{
		OccupancyLow:    1.0,
		OccupancyMedium: 1.0,
		OccupancyHigh:   1.0,

		PeakSeasonMultiplier: 1.0,
		OffPeakMultiplier:    1.0,

		SundayMultiplier:    1.0,
		MondayMultiplier:    1.0,
		TuesdayMultiplier:   1.0,
		WednesdayMultiplier: 1.0,
		ThursdayMultiplier:  1.0,
		FridayMultiplier:    1.0,
		SaturdayMultiplier:  1.0,

		LeadTime0To3:   1.0,
		LeadTime4To7:   1.0,
		LeadTime8To14:  1.0,
		LeadTime15To30: 1.0,
		LeadTime31Plus: 1.0,

		Stay1Night: 1.0,
		Stay2To3:   1.0,
		Stay4To6:   1.0,
		Stay7Plus:  1.0,
	}
}

func pct(v float64) *float64 { return &v }

// baseRequest is a one-night stay checked in today, so lead-time and
// length-of-stay land in their first bands.
func baseRequest(factors *models.PricingFactors) QuoteRequest {
	checkIn := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC) // a Monday
	return QuoteRequest{
		BasePrice: 1000,
		CheckIn:   checkIn,
		CheckOut:  checkIn.AddDate(0, 0, 1),
		Factors:   factors,
		Now:       checkIn,
	}
}

func TestCalculatePrice_MissingParametersReportedTogether(t *testing.T) {
	_, err := CalculatePrice(QuoteRequest{})
	assert.Error(t, err)

	var missing *MissingParameterError
	assert.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"basePrice", "checkInDate", "checkOutDate", "pricingFactors"}, missing.Fields)
}

func TestCalculatePrice_HighOccupancyScenario(t *testing.T) {
	factors := neutralFactors()
	factors.OccupancyHigh = 1.2

	req := baseRequest(factors)
	req.CurrentOccupancy = pct(75)

	quote, err := CalculatePrice(req)
	assert.NoError(t, err)
	assert.Equal(t, 1200.0, quote.RecommendedPrice)
	assert.Equal(t, 20.0, quote.PriceChangePct)
	assert.Equal(t, 1.2, quote.Breakdown.Occupancy.Multiplier)
	assert.Equal(t, 200.0, quote.Breakdown.Occupancy.Impact)
}

func TestCalculatePrice_OccupancyBandBoundaries(t *testing.T) {
	factors := neutralFactors()
	factors.OccupancyLow = 0.5
	factors.OccupancyMedium = 1.0
	factors.OccupancyHigh = 2.0

	cases := []struct {
		occupancy float64
		want      float64
	}{
		{30, 0.5},
		{31, 1.0},
		{70, 1.0},
		{71, 2.0},
	}
	for _, tc := range cases {
		req := baseRequest(factors)
		req.CurrentOccupancy = pct(tc.occupancy)
		quote, err := CalculatePrice(req)
		assert.NoError(t, err)
		assert.Equalf(t, tc.want, quote.Breakdown.Occupancy.Multiplier, "occupancy %.0f", tc.occupancy)
	}
}

func TestCalculatePrice_MissingOccupancyDefaultsToMedium(t *testing.T) {
	factors := neutralFactors()
	factors.OccupancyLow = 0.5
	factors.OccupancyHigh = 2.0

	quote, err := CalculatePrice(baseRequest(factors))
	assert.NoError(t, err)
	// 50% falls in the medium band.
	assert.Equal(t, 1.0, quote.Breakdown.Occupancy.Multiplier)
}

func TestCalculatePrice_CompetitorClampUpper(t *testing.T) {
	factors := neutralFactors()
	factors.CompetitorPricingWeight = 1.0

	req := baseRequest(factors)
	req.CompetitorPrices = []float64{2000}

	quote, err := CalculatePrice(req)
	assert.NoError(t, err)
	// Raw adjustment would be +100%; the clamp caps it at +20%.
	assert.Equal(t, 1.2, quote.Breakdown.Competitor.Multiplier)
	assert.Equal(t, 1200.0, quote.RecommendedPrice)
}

func TestCalculatePrice_CompetitorClampLower(t *testing.T) {
	factors := neutralFactors()
	factors.CompetitorPricingWeight = 1.0

	req := baseRequest(factors)
	req.CompetitorPrices = []float64{100}

	quote, err := CalculatePrice(req)
	assert.NoError(t, err)
	assert.Equal(t, 0.8, quote.Breakdown.Competitor.Multiplier)
}

func TestCalculatePrice_CompetitorDisabled(t *testing.T) {
	factors := neutralFactors()

	// No prices at all.
	quote, err := CalculatePrice(baseRequest(factors))
	assert.NoError(t, err)
	assert.Equal(t, 1.0, quote.Breakdown.Competitor.Multiplier)

	// Prices present but zero weight.
	req := baseRequest(factors)
	req.CompetitorPrices = []float64{5000, 6000}
	quote, err = CalculatePrice(req)
	assert.NoError(t, err)
	assert.Equal(t, 1.0, quote.Breakdown.Competitor.Multiplier)
}

func TestCalculatePrice_CompetitorMultiplierStaysWithinBounds(t *testing.T) {
	factors := neutralFactors()
	factors.CompetitorPricingWeight = 1.0

	for _, prices := range [][]float64{
		{1}, {100000}, {900, 1100}, {0.01}, {1000},
	} {
		req := baseRequest(factors)
		req.CompetitorPrices = prices
		quote, err := CalculatePrice(req)
		assert.NoError(t, err)
		m := quote.Breakdown.Competitor.Multiplier
		assert.GreaterOrEqual(t, m, 0.8)
		assert.LessOrEqual(t, m, 1.2)
	}
}

func TestCalculatePrice_SeasonalityInclusiveBounds(t *testing.T) {
	factors := neutralFactors()
	factors.PeakSeasonStart = "2026-03-01"
	factors.PeakSeasonEnd = "2026-03-02"
	factors.PeakSeasonMultiplier = 1.3

	req := baseRequest(factors) // check-in 2026-03-02, the last peak day
	quote, err := CalculatePrice(req)
	assert.NoError(t, err)
	assert.Equal(t, 1.3, quote.Breakdown.Seasonality.Multiplier)

	// One day past the end is off-peak again.
	req.CheckIn = req.CheckIn.AddDate(0, 0, 1)
	req.Now = req.CheckIn
	quote, err = CalculatePrice(req)
	assert.NoError(t, err)
	assert.Equal(t, 1.0, quote.Breakdown.Seasonality.Multiplier)
}

func TestCalculatePrice_UndefinedSeasonNeverPeaks(t *testing.T) {
	factors := neutralFactors()
	factors.PeakSeasonMultiplier = 1.3
	factors.OffPeakMultiplier = 0.95

	quote, err := CalculatePrice(baseRequest(factors))
	assert.NoError(t, err)
	assert.Equal(t, 0.95, quote.Breakdown.Seasonality.Multiplier)
}

func TestCalculatePrice_LeadTimeBands(t *testing.T) {
	factors := neutralFactors()
	factors.LeadTime0To3 = 1.2
	factors.LeadTime4To7 = 1.1
	factors.LeadTime8To14 = 1.0
	factors.LeadTime15To30 = 0.95
	factors.LeadTime31Plus = 0.9

	cases := []struct {
		leadDays int
		want     float64
	}{
		{0, 1.2}, {3, 1.2}, {4, 1.1}, {7, 1.1}, {8, 1.0},
		{14, 1.0}, {15, 0.95}, {30, 0.95}, {31, 0.9}, {90, 0.9},
	}
	for _, tc := range cases {
		req := baseRequest(factors)
		req.CheckIn = req.Now.AddDate(0, 0, tc.leadDays)
		req.CheckOut = req.CheckIn.AddDate(0, 0, 1)
		quote, err := CalculatePrice(req)
		assert.NoError(t, err)
		assert.Equalf(t, tc.want, quote.Breakdown.LeadTime.Multiplier, "lead time %d days", tc.leadDays)
		assert.Equal(t, tc.leadDays, quote.LeadTimeDays)
	}
}

func TestCalculatePrice_LengthOfStayBands(t *testing.T) {
	factors := neutralFactors()
	factors.Stay1Night = 1.0
	factors.Stay2To3 = 0.98
	factors.Stay4To6 = 0.95
	factors.Stay7Plus = 0.9

	cases := []struct {
		nights int
		want   float64
	}{
		{1, 1.0}, {2, 0.98}, {3, 0.98}, {4, 0.95}, {6, 0.95}, {7, 0.9}, {21, 0.9},
	}
	for _, tc := range cases {
		req := baseRequest(factors)
		req.CheckOut = req.CheckIn.AddDate(0, 0, tc.nights)
		quote, err := CalculatePrice(req)
		assert.NoError(t, err)
		assert.Equalf(t, tc.want, quote.Breakdown.LengthOfStay.Multiplier, "%d nights", tc.nights)
		assert.Equal(t, tc.nights, quote.LengthOfStay)
	}
}

func TestCalculatePrice_DayOfWeekMultiplier(t *testing.T) {
	factors := neutralFactors()
	factors.MondayMultiplier = 0.85
	factors.SaturdayMultiplier = 1.15

	req := baseRequest(factors) // Monday check-in
	quote, err := CalculatePrice(req)
	assert.NoError(t, err)
	assert.Equal(t, 0.85, quote.Breakdown.DayOfWeek.Multiplier)
	assert.Equal(t, 850.0, quote.RecommendedPrice)

	req.CheckIn = req.CheckIn.AddDate(0, 0, 5) // Saturday
	req.CheckOut = req.CheckIn.AddDate(0, 0, 1)
	req.Now = req.CheckIn
	quote, err = CalculatePrice(req)
	assert.NoError(t, err)
	assert.Equal(t, 1.15, quote.Breakdown.DayOfWeek.Multiplier)
}

func TestCalculatePrice_UsesResolvedBasePrice(t *testing.T) {
	factors := neutralFactors()
	req := baseRequest(factors)
	req.OccupancyPricing = &models.OccupancyPricing{
		PricingMode:  models.PricingModeOccupancy,
		AdultPricing: map[string]float64{"2": 1600},
	}
	req.NumAdults = 2

	quote, err := CalculatePrice(req)
	assert.NoError(t, err)
	assert.Equal(t, 1600.0, quote.EffectiveBasePrice)
	assert.Equal(t, 1600.0, quote.RecommendedPrice)
	assert.Equal(t, 0.0, quote.PriceChangePct)
}

func TestCalculatePrice_Deterministic(t *testing.T) {
	factors := models.DefaultPricingFactors()
	req := baseRequest(factors)
	req.CurrentOccupancy = pct(64)
	req.CompetitorPrices = []float64{950, 1200, 1100}

	first, err := CalculatePrice(req)
	assert.NoError(t, err)
	for i := 0; i < 50; i++ {
		again, err := CalculatePrice(req)
		assert.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestRound2_HalfAwayFromZero(t *testing.T) {
	assert.Equal(t, 2.01, Round2(2.005))
	assert.Equal(t, 1.01, Round2(1.005))
	assert.Equal(t, -2.01, Round2(-2.005))
	assert.Equal(t, 2.0, Round2(2.004999))
	assert.Equal(t, 1234.57, Round2(1234.565))
}

func TestCalculateWeeklyPrices_MondayFirstAndDayMultiplierOnly(t *testing.T) {
	factors := neutralFactors()
	factors.MondayMultiplier = 0.85
	factors.TuesdayMultiplier = 0.86
	factors.WednesdayMultiplier = 0.9
	factors.ThursdayMultiplier = 0.95
	factors.FridayMultiplier = 1.1
	factors.SaturdayMultiplier = 1.15
	factors.SundayMultiplier = 1.05

	week, err := CalculateWeeklyPrices(baseRequest(factors))
	assert.NoError(t, err)

	assert.Equal(t, 850.0, week.Monday)
	assert.Equal(t, 860.0, week.Tuesday)
	assert.Equal(t, 900.0, week.Wednesday)
	assert.Equal(t, 950.0, week.Thursday)
	assert.Equal(t, 1100.0, week.Friday)
	assert.Equal(t, 1150.0, week.Saturday)
	assert.Equal(t, 1050.0, week.Sunday)

	days := week.Days()
	assert.Equal(t, week.Monday, days[0])
	assert.Equal(t, week.Sunday, days[6])
}

func TestCalculateWeeklyPrices_LeadTimeHeldFixed(t *testing.T) {
	factors := neutralFactors()
	factors.LeadTime0To3 = 1.2
	factors.LeadTime4To7 = 0.7

	// Check-in is 2 days out: the 0-3 band applies to all seven prices even
	// though iterating real dates across a week would cross into 4-7.
	req := baseRequest(factors)
	req.CheckIn = req.Now.AddDate(0, 0, 2)
	req.CheckOut = req.CheckIn.AddDate(0, 0, 1)

	week, err := CalculateWeeklyPrices(req)
	assert.NoError(t, err)
	for _, price := range week.Days() {
		assert.Equal(t, 1200.0, price)
	}
}

func TestCalculateWeeklyPrices_MissingParameters(t *testing.T) {
	_, err := CalculateWeeklyPrices(QuoteRequest{BasePrice: 1000})
	var missing *MissingParameterError
	assert.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"checkInDate", "checkOutDate", "pricingFactors"}, missing.Fields)
}
