package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	factorsRepo "rateshopper/database/repository/factors"
	"rateshopper/models"
	"rateshopper/utils"
)

// FactorsHandler manages a property's pricing-factors configuration.
type FactorsHandler struct {
	Repo factorsRepo.PricingFactorsRepository
}

func NewFactorsHandler(repo factorsRepo.PricingFactorsRepository) *FactorsHandler {
	return &FactorsHandler{Repo: repo}
}

// Get returns the saved factors, normalized against the defaults so the
// dashboard always sees a complete config.
func (h *FactorsHandler) Get(c *gin.Context) {
	propertyID := c.Param("propertyID")
	factors, err := h.Repo.GetByProperty(c.Request.Context(), propertyID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch pricing factors", err.Error())
		return
	}
	if factors == nil {
		c.JSON(http.StatusOK, models.DefaultPricingFactors())
		return
	}
	normalized := factors.Normalized()
	c.JSON(http.StatusOK, normalized)
}

// Save stores the property's factors config. This is the only way the
// factors change.
func (h *FactorsHandler) Save(c *gin.Context) {
	propertyID := c.Param("propertyID")
	var factors models.PricingFactors
	if err := c.ShouldBindJSON(&factors); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Repo.Save(c.Request.Context(), propertyID, factors); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to save pricing factors", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "saved"})
}
