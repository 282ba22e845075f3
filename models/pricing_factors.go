package models

// PricingFactors is the property-level demand configuration consumed by the
// dynamic pricing calculator. Every field has a hardcoded default so a
// partially-specified stored config is always usable; Normalized fills the
// gaps. Season bounds are "YYYY-MM-DD" strings; unset or unparsable bounds
// mean the peak multiplier never applies.
type PricingFactors struct {
	// Occupancy-level multipliers.
	OccupancyLow    float64 `bson:"occupancy_low" json:"occupancy_low"`       // occupancy <= 30%
	OccupancyMedium float64 `bson:"occupancy_medium" json:"occupancy_medium"` // 31-70%
	OccupancyHigh   float64 `bson:"occupancy_high" json:"occupancy_high"`     // > 70%

	// Seasonality.
	PeakSeasonStart      string  `bson:"peak_season_start,omitempty" json:"peak_season_start,omitempty"`
	PeakSeasonEnd        string  `bson:"peak_season_end,omitempty" json:"peak_season_end,omitempty"`
	PeakSeasonMultiplier float64 `bson:"peak_season_multiplier" json:"peak_season_multiplier"`
	OffPeakMultiplier    float64 `bson:"off_peak_multiplier" json:"off_peak_multiplier"`

	// Day-of-week multipliers.
	SundayMultiplier    float64 `bson:"sunday_multiplier" json:"sunday_multiplier"`
	MondayMultiplier    float64 `bson:"monday_multiplier" json:"monday_multiplier"`
	TuesdayMultiplier   float64 `bson:"tuesday_multiplier" json:"tuesday_multiplier"`
	WednesdayMultiplier float64 `bson:"wednesday_multiplier" json:"wednesday_multiplier"`
	ThursdayMultiplier  float64 `bson:"thursday_multiplier" json:"thursday_multiplier"`
	FridayMultiplier    float64 `bson:"friday_multiplier" json:"friday_multiplier"`
	SaturdayMultiplier  float64 `bson:"saturday_multiplier" json:"saturday_multiplier"`

	// Lead-time bands (days until check-in).
	LeadTime0To3   float64 `bson:"lead_time_0_3" json:"lead_time_0_3"`
	LeadTime4To7   float64 `bson:"lead_time_4_7" json:"lead_time_4_7"`
	LeadTime8To14  float64 `bson:"lead_time_8_14" json:"lead_time_8_14"`
	LeadTime15To30 float64 `bson:"lead_time_15_30" json:"lead_time_15_30"`
	LeadTime31Plus float64 `bson:"lead_time_31_plus" json:"lead_time_31_plus"`

	// Length-of-stay bands (nights).
	Stay1Night float64 `bson:"stay_1_night" json:"stay_1_night"`
	Stay2To3   float64 `bson:"stay_2_3" json:"stay_2_3"`
	Stay4To6   float64 `bson:"stay_4_6" json:"stay_4_6"`
	Stay7Plus  float64 `bson:"stay_7_plus" json:"stay_7_plus"`

	// How much the competitor average can shift the final price (0..1).
	// An explicit 0 disables the competitor dimension.
	CompetitorPricingWeight float64 `bson:"competitor_pricing_weight" json:"competitor_pricing_weight"`
}

// DefaultPricingFactors returns a fully populated config with the standard
// defaults, used when a property has no saved factors.
func DefaultPricingFactors() *PricingFactors {
	return &PricingFactors{
		OccupancyLow:    0.9,
		OccupancyMedium: 1.0,
		OccupancyHigh:   1.2,

		PeakSeasonMultiplier: 1.3,
		OffPeakMultiplier:    0.95,

		SundayMultiplier:    1.0,
		MondayMultiplier:    0.85,
		TuesdayMultiplier:   0.85,
		WednesdayMultiplier: 0.9,
		ThursdayMultiplier:  0.95,
		FridayMultiplier:    1.1,
		SaturdayMultiplier:  1.15,

		LeadTime0To3:   1.2,
		LeadTime4To7:   1.1,
		LeadTime8To14:  1.0,
		LeadTime15To30: 0.95,
		LeadTime31Plus: 0.9,

		Stay1Night: 1.0,
		Stay2To3:   0.98,
		Stay4To6:   0.95,
		Stay7Plus:  0.9,

		CompetitorPricingWeight: 0.5,
	}
}

// Normalized returns a copy with every unset multiplier replaced by its
// default. Season bounds and the competitor weight are kept as stored: a
// zero weight means the dimension is disabled, not defaulted.
func (pf PricingFactors) Normalized() PricingFactors {
	def := DefaultPricingFactors()
	fill := func(v *float64, d float64) {
		if *v == 0 {
			*v = d
		}
	}
	fill(&pf.OccupancyLow, def.OccupancyLow)
	fill(&pf.OccupancyMedium, def.OccupancyMedium)
	fill(&pf.OccupancyHigh, def.OccupancyHigh)
	fill(&pf.PeakSeasonMultiplier, def.PeakSeasonMultiplier)
	fill(&pf.OffPeakMultiplier, def.OffPeakMultiplier)
	fill(&pf.SundayMultiplier, def.SundayMultiplier)
	fill(&pf.MondayMultiplier, def.MondayMultiplier)
	fill(&pf.TuesdayMultiplier, def.TuesdayMultiplier)
	fill(&pf.WednesdayMultiplier, def.WednesdayMultiplier)
	fill(&pf.ThursdayMultiplier, def.ThursdayMultiplier)
	fill(&pf.FridayMultiplier, def.FridayMultiplier)
	fill(&pf.SaturdayMultiplier, def.SaturdayMultiplier)
	fill(&pf.LeadTime0To3, def.LeadTime0To3)
	fill(&pf.LeadTime4To7, def.LeadTime4To7)
	fill(&pf.LeadTime8To14, def.LeadTime8To14)
	fill(&pf.LeadTime15To30, def.LeadTime15To30)
	fill(&pf.LeadTime31Plus, def.LeadTime31Plus)
	fill(&pf.Stay1Night, def.Stay1Night)
	fill(&pf.Stay2To3, def.Stay2To3)
	fill(&pf.Stay4To6, def.Stay4To6)
	fill(&pf.Stay7Plus, def.Stay7Plus)
	return pf
}
