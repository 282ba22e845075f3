package pricing

import (
	"time"

	"rateshopper/models"
)

// weekdayOrder maps the Monday-first output order to time.Weekday values.
var weekdayOrder = [7]time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

// CalculateWeeklyPrices computes one recommended price per weekday,
// Monday-first. Lead time and length of stay are held at the values derived
// from the supplied check-in/check-out pair; only the day-of-week multiplier
// varies across the seven prices.
func CalculateWeeklyPrices(req QuoteRequest) (*models.WeeklyPrices, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	f := req.Factors.Normalized()

	now := req.Now
	if now.IsZero() {
		now = time.Now()
	}

	effectiveBase := ResolveBasePrice(req.BasePrice, req.OccupancyPricing, req.NumAdults, req.NumChildren)
	if effectiveBase <= 0 {
		effectiveBase = req.BasePrice
	}

	leadTimeDays := roundDays(req.CheckIn.Sub(now))
	lengthOfStay := roundDays(req.CheckOut.Sub(req.CheckIn))

	occupancy := 50.0
	if req.CurrentOccupancy != nil {
		occupancy = *req.CurrentOccupancy
	}

	// Everything except the day-of-week dimension is shared by all seven days.
	shared := occupancyMultiplier(f, occupancy) *
		seasonMultiplier(f, req.CheckIn) *
		leadTimeMultiplier(f, leadTimeDays) *
		lengthOfStayMultiplier(f, lengthOfStay) *
		competitorMultiplier(f, effectiveBase, req.CompetitorPrices)

	var week models.WeeklyPrices
	for i, day := range weekdayOrder {
		week.SetDay(i, Round2(effectiveBase*shared*dayOfWeekMultiplier(f, day)))
	}
	return &week, nil
}
