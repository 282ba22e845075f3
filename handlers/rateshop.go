package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"

	"rateshopper/cron"
	"rateshopper/utils"
)

// RateShopHandler queues competitor rate refreshes on demand; the nightly
// scheduler covers the rest of the portfolio.
type RateShopHandler struct {
	Queue *asynq.Client
}

func NewRateShopHandler(queue *asynq.Client) *RateShopHandler {
	return &RateShopHandler{Queue: queue}
}

// Refresh enqueues a rate-shop refresh for one property and returns as soon
// as the task is queued.
func (h *RateShopHandler) Refresh(c *gin.Context) {
	propertyID := c.Param("propertyID")

	task, err := cron.NewRateRefreshTask(propertyID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to build refresh task", err.Error())
		return
	}
	if _, err := h.Queue.Enqueue(task); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to queue rate refresh", err.Error())
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "queued", "property_id": propertyID})
}
