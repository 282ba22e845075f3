package routes

import "github.com/gin-gonic/gin"

// RegisterPricingRoutes registers all endpoints of the pricing engine.
func RegisterPricingRoutes(r *gin.Engine, h Handlers) {
	pricing := r.Group("/api/properties/:propertyID/pricing")
	{
		pricing.POST("/quote", h.Pricing.Quote)         // single-date recommendation
		pricing.POST("/weekly", h.Pricing.Weekly)       // seven weekday prices
		pricing.POST("/table", h.Pricing.Table)         // full room x plan x occupancy table
		pricing.POST("/table/export", h.Pricing.ExportTable)
		pricing.POST("/revenue", h.Pricing.Revenue) // portfolio revenue metrics
	}
}
