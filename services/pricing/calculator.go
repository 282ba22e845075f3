package pricing

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"rateshopper/models"
)

const dateLayout = "2006-01-02"

// Hard ceiling on how far the competitor average may move the price.
const competitorClamp = 0.2

// QuoteRequest carries every input to a price calculation. The engine never
// reads ambient state: multipliers, occupancy and competitor prices all
// arrive here explicitly. Now lets callers pin the clock; the zero value
// means time.Now().
type QuoteRequest struct {
	BasePrice        float64
	CheckIn          time.Time
	CheckOut         time.Time
	CurrentOccupancy *float64 // percent; nil defaults to 50
	Factors          *models.PricingFactors
	CompetitorPrices []float64
	OccupancyPricing *models.OccupancyPricing
	NumAdults        int
	NumChildren      int
	Now              time.Time
}

func (req QuoteRequest) validate() error {
	var missing []string
	if req.BasePrice <= 0 {
		missing = append(missing, "basePrice")
	}
	if req.CheckIn.IsZero() {
		missing = append(missing, "checkInDate")
	}
	if req.CheckOut.IsZero() {
		missing = append(missing, "checkOutDate")
	}
	if req.Factors == nil {
		missing = append(missing, "pricingFactors")
	}
	if len(missing) > 0 {
		return &MissingParameterError{Fields: missing}
	}
	return nil
}

// CalculatePrice computes the recommended nightly price for a single
// check-in date as the product of six independent demand multipliers over
// the occupancy-resolved base price, with a per-dimension breakdown.
func CalculatePrice(req QuoteRequest) (*models.PriceQuote, error) {
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

	occM := occupancyMultiplier(f, occupancy)
	seasonM := seasonMultiplier(f, req.CheckIn)
	dayM := dayOfWeekMultiplier(f, req.CheckIn.Weekday())
	leadM := leadTimeMultiplier(f, leadTimeDays)
	stayM := lengthOfStayMultiplier(f, lengthOfStay)
	compM := competitorMultiplier(f, effectiveBase, req.CompetitorPrices)

	final := Round2(effectiveBase * occM * seasonM * dayM * leadM * stayM * compM)

	return &models.PriceQuote{
		EffectiveBasePrice: effectiveBase,
		RecommendedPrice:   final,
		PriceChangePct:     Round2((final - effectiveBase) / effectiveBase * 100),
		Breakdown: models.FactorBreakdown{
			Occupancy:    factorImpact(effectiveBase, occM),
			Seasonality:  factorImpact(effectiveBase, seasonM),
			DayOfWeek:    factorImpact(effectiveBase, dayM),
			LeadTime:     factorImpact(effectiveBase, leadM),
			LengthOfStay: factorImpact(effectiveBase, stayM),
			Competitor:   factorImpact(effectiveBase, compM),
		},
		LeadTimeDays: leadTimeDays,
		LengthOfStay: lengthOfStay,
	}, nil
}

func factorImpact(base, m float64) models.FactorImpact {
	return models.FactorImpact{
		Multiplier: m,
		Impact:     Round2((m - 1) * base),
	}
}

func roundDays(d time.Duration) int {
	return int(math.Round(math.Abs(d.Hours()) / 24))
}

func occupancyMultiplier(f models.PricingFactors, pct float64) float64 {
	switch {
	case pct <= 30:
		return f.OccupancyLow
	case pct <= 70:
		return f.OccupancyMedium
	default:
		return f.OccupancyHigh
	}
}

// seasonMultiplier applies the peak multiplier when the check-in date falls
// within [PeakSeasonStart, PeakSeasonEnd] inclusive. Unset or unparsable
// bounds mean never peak.
func seasonMultiplier(f models.PricingFactors, checkIn time.Time) float64 {
	start, errS := time.Parse(dateLayout, f.PeakSeasonStart)
	end, errE := time.Parse(dateLayout, f.PeakSeasonEnd)
	if errS != nil || errE != nil {
		return f.OffPeakMultiplier
	}
	day := time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day(), 0, 0, 0, 0, time.UTC)
	if !day.Before(start) && !day.After(end) {
		return f.PeakSeasonMultiplier
	}
	return f.OffPeakMultiplier
}

func dayOfWeekMultiplier(f models.PricingFactors, day time.Weekday) float64 {
	switch day {
	case time.Sunday:
		return f.SundayMultiplier
	case time.Monday:
		return f.MondayMultiplier
	case time.Tuesday:
		return f.TuesdayMultiplier
	case time.Wednesday:
		return f.WednesdayMultiplier
	case time.Thursday:
		return f.ThursdayMultiplier
	case time.Friday:
		return f.FridayMultiplier
	default:
		return f.SaturdayMultiplier
	}
}

func leadTimeMultiplier(f models.PricingFactors, days int) float64 {
	switch {
	case days <= 3:
		return f.LeadTime0To3
	case days <= 7:
		return f.LeadTime4To7
	case days <= 14:
		return f.LeadTime8To14
	case days <= 30:
		return f.LeadTime15To30
	default:
		return f.LeadTime31Plus
	}
}

func lengthOfStayMultiplier(f models.PricingFactors, nights int) float64 {
	switch {
	case nights <= 1:
		return f.Stay1Night
	case nights <= 3:
		return f.Stay2To3
	case nights <= 6:
		return f.Stay4To6
	default:
		return f.Stay7Plus
	}
}

// competitorMultiplier nudges the price toward the competitor average,
// scaled by the configured weight and clamped to +/-20% exactly.
func competitorMultiplier(f models.PricingFactors, effectiveBase float64, prices []float64) float64 {
	if len(prices) == 0 || f.CompetitorPricingWeight == 0 || effectiveBase <= 0 {
		return 1.0
	}
	var sum float64
	for _, p := range prices {
		sum += p
	}
	avg := sum / float64(len(prices))
	adjustment := (avg - effectiveBase) / effectiveBase * f.CompetitorPricingWeight
	if adjustment > competitorClamp {
		adjustment = competitorClamp
	}
	if adjustment < -competitorClamp {
		adjustment = -competitorClamp
	}
	return 1 + adjustment
}

// Round2 rounds to two decimal places, half away from zero.
func Round2(x float64) float64 {
	v, _ := decimal.NewFromFloat(x).Round(2).Float64()
	return v
}
