package routes

import (
	"github.com/gin-gonic/gin"

	"rateshopper/handlers"
)

// Handlers bundles the route handlers wired in main.
type Handlers struct {
	Pricing   *handlers.PricingHandler
	RoomTypes *handlers.RoomTypeHandler
	RatePlans *handlers.RatePlanHandler
	Factors   *handlers.FactorsHandler
	Snapshots *handlers.SnapshotHandler
	RateShop  *handlers.RateShopHandler
}

// RegisterRoutes registers every endpoint of the server.
func RegisterRoutes(r *gin.Engine, h Handlers) {
	r.GET("/health", handlers.Health)

	RegisterPricingRoutes(r, h)
	RegisterPropertyRoutes(r, h)
}
