package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	ratePlanRepo "rateshopper/database/repository/rateplan"
	"rateshopper/models"
	"rateshopper/utils"
)

// RatePlanHandler manages a property's meal plans.
type RatePlanHandler struct {
	Repo ratePlanRepo.RatePlanRepository
}

func NewRatePlanHandler(repo ratePlanRepo.RatePlanRepository) *RatePlanHandler {
	return &RatePlanHandler{Repo: repo}
}

type ratePlanInput struct {
	PlanName     string  `json:"plan_name"`
	PricingType  string  `json:"pricing_type"`
	CostPerAdult float64 `json:"cost_per_adult"`
	Multiplier   float64 `json:"multiplier"`
	Description  string  `json:"description"`
}

func (in ratePlanInput) valid() bool {
	if in.PlanName == "" {
		return false
	}
	return in.PricingType == models.RatePlanPricingFlat || in.PricingType == models.RatePlanPricingMultiplier
}

// Create adds a rate plan to the property.
func (h *RatePlanHandler) Create(c *gin.Context) {
	propertyID := c.Param("propertyID")
	var input ratePlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if !input.valid() {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "plan_name and a pricing_type of flat or multiplier are required")
		return
	}

	id, err := h.Repo.Create(c.Request.Context(), models.RatePlan{
		PropertyID:   propertyID,
		PlanName:     input.PlanName,
		PricingType:  input.PricingType,
		CostPerAdult: input.CostPerAdult,
		Multiplier:   input.Multiplier,
		Description:  input.Description,
	})
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create rate plan", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// List returns the property's rate plans.
func (h *RatePlanHandler) List(c *gin.Context) {
	propertyID := c.Param("propertyID")
	plans, err := h.Repo.GetByProperty(c.Request.Context(), propertyID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch rate plans", err.Error())
		return
	}
	c.JSON(http.StatusOK, plans)
}

// Update replaces a rate plan.
func (h *RatePlanHandler) Update(c *gin.Context) {
	propertyID := c.Param("propertyID")
	var input ratePlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if !input.valid() {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "plan_name and a pricing_type of flat or multiplier are required")
		return
	}

	plan := models.RatePlan{
		ID:           c.Param("ratePlanID"),
		PropertyID:   propertyID,
		PlanName:     input.PlanName,
		PricingType:  input.PricingType,
		CostPerAdult: input.CostPerAdult,
		Multiplier:   input.Multiplier,
		Description:  input.Description,
	}
	if err := h.Repo.Update(c.Request.Context(), plan); err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to update rate plan", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": plan.ID})
}

// Delete removes a rate plan.
func (h *RatePlanHandler) Delete(c *gin.Context) {
	id := c.Param("ratePlanID")
	if err := h.Repo.DeleteByID(c.Request.Context(), id); err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to delete rate plan", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}
