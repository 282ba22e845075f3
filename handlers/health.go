package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rateshopper/utils"
)

// Health reports the latest stored health snapshot of Mongo and Redis.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}
