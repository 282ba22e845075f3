package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	snapshotRepo "rateshopper/database/repository/snapshot"
	"rateshopper/utils"
)

// SnapshotHandler serves the historical pricing snapshots of a property.
type SnapshotHandler struct {
	Repo snapshotRepo.PricingSnapshotRepository
}

func NewSnapshotHandler(repo snapshotRepo.PricingSnapshotRepository) *SnapshotHandler {
	return &SnapshotHandler{Repo: repo}
}

// List returns the most recent snapshots, newest first.
func (h *SnapshotHandler) List(c *gin.Context) {
	propertyID := c.Param("propertyID")
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)

	snapshots, err := h.Repo.GetByProperty(c.Request.Context(), propertyID, limit)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch snapshots", err.Error())
		return
	}
	c.JSON(http.StatusOK, snapshots)
}
