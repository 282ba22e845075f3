package pricing

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/shopspring/decimal"

	"rateshopper/models"
)

// FormatPrice renders a price with exactly two decimal places.
func FormatPrice(p float64) string {
	return decimal.NewFromFloat(p).StringFixed(2)
}

// ExportTableCSV writes the pricing table as CSV for the dashboard download,
// one row per room/plan/occupancy combination with the seven weekday prices
// Monday-first.
func ExportTableCSV(w io.Writer, rows []models.PricingTableRow) error {
	cw := csv.NewWriter(w)

	header := append([]string{"Room Category", "Meal Plan", "Occupancy"}, models.WeekdayNames[:]...)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{row.RoomCategory, row.MealPlan, strconv.Itoa(row.Occupancy)}
		for _, price := range row.Prices.Days() {
			record = append(record, FormatPrice(price))
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
