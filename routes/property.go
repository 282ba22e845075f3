package routes

import "github.com/gin-gonic/gin"

// RegisterPropertyRoutes registers the property configuration endpoints:
// room types, rate plans, pricing factors and snapshot history.
func RegisterPropertyRoutes(r *gin.Engine, h Handlers) {
	property := r.Group("/api/properties/:propertyID")
	{
		property.POST("/room-types", h.RoomTypes.Create)
		property.GET("/room-types", h.RoomTypes.List)
		property.PUT("/room-types/:roomTypeID", h.RoomTypes.Update)
		property.DELETE("/room-types/:roomTypeID", h.RoomTypes.Delete)

		property.POST("/rate-plans", h.RatePlans.Create)
		property.GET("/rate-plans", h.RatePlans.List)
		property.PUT("/rate-plans/:ratePlanID", h.RatePlans.Update)
		property.DELETE("/rate-plans/:ratePlanID", h.RatePlans.Delete)

		property.GET("/factors", h.Factors.Get)
		property.PUT("/factors", h.Factors.Save)

		property.GET("/snapshots", h.Snapshots.List)

		property.POST("/rate-shop/refresh", h.RateShop.Refresh)
	}
}
