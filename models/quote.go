package models

// FactorImpact reports one pricing dimension: the raw multiplier applied and
// its monetary impact relative to the effective base price, so the dashboard
// can explain a multiplicative recommendation additively.
type FactorImpact struct {
	Multiplier float64 `bson:"multiplier" json:"multiplier"`
	Impact     float64 `bson:"impact" json:"impact"`
}

// FactorBreakdown holds the per-dimension impacts of a price calculation.
type FactorBreakdown struct {
	Occupancy    FactorImpact `bson:"occupancy" json:"occupancy"`
	Seasonality  FactorImpact `bson:"seasonality" json:"seasonality"`
	DayOfWeek    FactorImpact `bson:"day_of_week" json:"day_of_week"`
	LeadTime     FactorImpact `bson:"lead_time" json:"lead_time"`
	LengthOfStay FactorImpact `bson:"length_of_stay" json:"length_of_stay"`
	Competitor   FactorImpact `bson:"competitor" json:"competitor"`
}

// PriceQuote is the result of a single-date price calculation.
type PriceQuote struct {
	EffectiveBasePrice float64         `bson:"effective_base_price" json:"effective_base_price"`
	RecommendedPrice   float64         `bson:"recommended_price" json:"recommended_price"`
	PriceChangePct     float64         `bson:"price_change_pct" json:"price_change_pct"`
	Breakdown          FactorBreakdown `bson:"factor_breakdown" json:"factor_breakdown"`
	LeadTimeDays       int             `bson:"lead_time_days" json:"lead_time_days"`
	LengthOfStay       int             `bson:"length_of_stay" json:"length_of_stay"`
}

// WeekdayNames lists the seven weekday names Monday-first, matching the
// order of WeeklyPrices.
var WeekdayNames = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// WeeklyPrices holds one recommended price per weekday, Monday-first.
type WeeklyPrices struct {
	Monday    float64 `bson:"monday" json:"Monday"`
	Tuesday   float64 `bson:"tuesday" json:"Tuesday"`
	Wednesday float64 `bson:"wednesday" json:"Wednesday"`
	Thursday  float64 `bson:"thursday" json:"Thursday"`
	Friday    float64 `bson:"friday" json:"Friday"`
	Saturday  float64 `bson:"saturday" json:"Saturday"`
	Sunday    float64 `bson:"sunday" json:"Sunday"`
}

// Days returns the seven prices in Monday-first order.
func (w WeeklyPrices) Days() [7]float64 {
	return [7]float64{w.Monday, w.Tuesday, w.Wednesday, w.Thursday, w.Friday, w.Saturday, w.Sunday}
}

// SetDay sets the price for the Monday-first index i.
func (w *WeeklyPrices) SetDay(i int, price float64) {
	switch i {
	case 0:
		w.Monday = price
	case 1:
		w.Tuesday = price
	case 2:
		w.Wednesday = price
	case 3:
		w.Thursday = price
	case 4:
		w.Friday = price
	case 5:
		w.Saturday = price
	case 6:
		w.Sunday = price
	}
}

// PricingTableRow is one cell group of the dashboard pricing table: a room
// category priced for a meal plan at a given adult occupancy, across the week.
type PricingTableRow struct {
	RoomCategory string       `bson:"room_category" json:"room_category"`
	MealPlan     string       `bson:"meal_plan" json:"meal_plan"`
	Occupancy    int          `bson:"occupancy" json:"occupancy"`
	Prices       WeeklyPrices `bson:"prices" json:"prices"`
}

// RoomRecommendation pairs a room type with its recommended nightly price,
// as consumed by the revenue aggregator.
type RoomRecommendation struct {
	RoomTypeID       string  `bson:"room_type_id" json:"room_type_id"`
	RecommendedPrice float64 `bson:"recommended_price" json:"recommended_price"`
}

// RevenueMetrics summarizes a property's pricing position across room types.
type RevenueMetrics struct {
	TotalRooms                  int      `bson:"total_rooms" json:"total_rooms"`
	AverageBasePrice            float64  `bson:"average_base_price" json:"average_base_price"`
	AverageRecommendedPrice     float64  `bson:"average_recommended_price" json:"average_recommended_price"`
	PotentialRevenueIncreasePct float64  `bson:"potential_revenue_increase_pct" json:"potential_revenue_increase_pct"`
	OccupancyGap                float64  `bson:"occupancy_gap" json:"occupancy_gap"`
	Recommendations             []string `bson:"recommendations" json:"recommendations"`
}
