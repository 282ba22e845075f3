package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"rateshopper/services/pricing"
	"rateshopper/utils"
)

const dateLayout = "2006-01-02"

// PricingHandler exposes the pricing engine over HTTP.
type PricingHandler struct {
	Service pricing.PricingService
}

func NewPricingHandler(svc pricing.PricingService) *PricingHandler {
	return &PricingHandler{Service: svc}
}

type pricingInput struct {
	RoomTypeID       string   `json:"room_type_id"`
	CheckIn          string   `json:"check_in"`
	CheckOut         string   `json:"check_out"`
	CurrentOccupancy *float64 `json:"current_occupancy"`
	NumAdults        int      `json:"num_adults"`
	NumChildren      int      `json:"num_children"`
	TargetOccupancy  float64  `json:"target_occupancy"`
}

// params converts the wire input to engine parameters. Absent dates stay as
// zero times so the engine can report every missing field at once.
func (in pricingInput) params(c *gin.Context) (pricing.QuoteParams, bool) {
	var p pricing.QuoteParams
	var err error
	if in.CheckIn != "" {
		p.CheckIn, err = time.Parse(dateLayout, in.CheckIn)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid check_in date", err.Error())
			return p, false
		}
	}
	if in.CheckOut != "" {
		p.CheckOut, err = time.Parse(dateLayout, in.CheckOut)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid check_out date", err.Error())
			return p, false
		}
	}
	p.CurrentOccupancy = in.CurrentOccupancy
	p.NumAdults = in.NumAdults
	p.NumChildren = in.NumChildren
	return p, true
}

func respondPricingError(c *gin.Context, err error) {
	var missing *pricing.MissingParameterError
	if errors.As(err, &missing) {
		utils.JSONError(c, http.StatusBadRequest, "missing required parameters", missing.Error())
		return
	}
	var confErr *pricing.ConfigurationError
	if errors.As(err, &confErr) {
		utils.JSONError(c, http.StatusUnprocessableEntity, "pricing configuration error", confErr.Error())
		return
	}
	utils.JSONError(c, http.StatusInternalServerError, "pricing calculation failed", err.Error())
}

// Quote computes the recommended price for a single check-in date.
func (h *PricingHandler) Quote(c *gin.Context) {
	propertyID := c.Param("propertyID")
	var input pricingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if input.RoomTypeID == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing required parameters", "room_type_id is required")
		return
	}
	params, ok := input.params(c)
	if !ok {
		return
	}

	quote, err := h.Service.QuotePrice(c.Request.Context(), propertyID, input.RoomTypeID, params)
	if err != nil {
		respondPricingError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// Weekly computes the seven weekday prices for one room type.
func (h *PricingHandler) Weekly(c *gin.Context) {
	propertyID := c.Param("propertyID")
	var input pricingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if input.RoomTypeID == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing required parameters", "room_type_id is required")
		return
	}
	params, ok := input.params(c)
	if !ok {
		return
	}

	week, err := h.Service.WeeklyPrices(c.Request.Context(), propertyID, input.RoomTypeID, params)
	if err != nil {
		respondPricingError(c, err)
		return
	}
	c.JSON(http.StatusOK, week)
}

// Table assembles the full pricing table for the property.
func (h *PricingHandler) Table(c *gin.Context) {
	propertyID := c.Param("propertyID")
	var input pricingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	params, ok := input.params(c)
	if !ok {
		return
	}

	rows, warnings, err := h.Service.PricingTable(c.Request.Context(), propertyID, params)
	if err != nil {
		respondPricingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"rows":     rows,
		"warnings": warnings,
	})
}

// ExportTable streams the pricing table as a CSV download.
func (h *PricingHandler) ExportTable(c *gin.Context) {
	propertyID := c.Param("propertyID")
	var input pricingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	params, ok := input.params(c)
	if !ok {
		return
	}

	rows, _, err := h.Service.PricingTable(c.Request.Context(), propertyID, params)
	if err != nil {
		respondPricingError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=pricing-%s.csv", propertyID))
	if err := pricing.ExportTableCSV(c.Writer, rows); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to export pricing table", err.Error())
	}
}

// Revenue aggregates per-room recommendations into portfolio metrics.
func (h *PricingHandler) Revenue(c *gin.Context) {
	propertyID := c.Param("propertyID")
	var input pricingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	params, ok := input.params(c)
	if !ok {
		return
	}

	metrics, err := h.Service.RevenueSummary(c.Request.Context(), propertyID, params, input.TargetOccupancy)
	if err != nil {
		respondPricingError(c, err)
		return
	}
	c.JSON(http.StatusOK, metrics)
}
