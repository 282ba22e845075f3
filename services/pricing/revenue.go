package pricing

import (
	"fmt"

	"rateshopper/models"
)

// DefaultTargetOccupancy is assumed when the caller supplies no target.
const DefaultTargetOccupancy = 80.0

// AggregateRevenue rolls per-room recommendations up into portfolio revenue
// metrics. Averages are weighted by room count, so categories with more
// inventory weigh proportionally. The advisory strings are informational
// only and never change the computed numbers.
func AggregateRevenue(rooms []models.RoomType, recs []models.RoomRecommendation, currentOccupancy, targetOccupancy float64) models.RevenueMetrics {
	if targetOccupancy <= 0 {
		targetOccupancy = DefaultTargetOccupancy
	}

	recByRoom := make(map[string]float64, len(recs))
	for _, r := range recs {
		recByRoom[r.RoomTypeID] = r.RecommendedPrice
	}

	var totalRooms int
	var baseRevenue, recommendedRevenue float64
	for _, room := range rooms {
		n := float64(room.NumberOfRooms)
		totalRooms += room.NumberOfRooms
		baseRevenue += room.BasePrice * n

		price, ok := recByRoom[room.ID]
		if !ok {
			price = room.BasePrice
		}
		recommendedRevenue += price * n
	}

	metrics := models.RevenueMetrics{
		TotalRooms:   totalRooms,
		OccupancyGap: Round2(targetOccupancy - currentOccupancy),
	}
	if totalRooms > 0 {
		metrics.AverageBasePrice = Round2(baseRevenue / float64(totalRooms))
		metrics.AverageRecommendedPrice = Round2(recommendedRevenue / float64(totalRooms))
	}
	if baseRevenue > 0 {
		metrics.PotentialRevenueIncreasePct = Round2((recommendedRevenue - baseRevenue) / baseRevenue * 100)
	}

	metrics.Recommendations = advisories(metrics.OccupancyGap, metrics.PotentialRevenueIncreasePct)
	return metrics
}

func advisories(occupancyGap, revenueDeltaPct float64) []string {
	var out []string
	if occupancyGap > 10 {
		out = append(out, fmt.Sprintf("Occupancy is %.0f points below target: consider lowering rates to stimulate demand.", occupancyGap))
	} else if occupancyGap < -10 {
		out = append(out, fmt.Sprintf("Occupancy is %.0f points above target: consider raising rates to capture demand.", -occupancyGap))
	}
	if revenueDeltaPct > 5 {
		out = append(out, fmt.Sprintf("Applying the recommended rates would lift revenue by %.2f%%.", revenueDeltaPct))
	} else if revenueDeltaPct < -5 {
		out = append(out, fmt.Sprintf("Recommended rates would reduce revenue by %.2f%%; review the demand factors before applying.", -revenueDeltaPct))
	}
	return out
}
