package routes

import (
	"net/http"

	"easyislanders/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes sets up the endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", hb.CreateBooking)
		api.GET("", hb.ListBookings)
		api.GET("/:id", hb.GetBooking)
		api.POST("/:id/payment", hb.CompletePayment)
	}

	r.POST("/api/taxi", hb.DispatchTaxi)
}

// RegisterNotificationRoutes registers notification endpoints.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		api.GET("", hb.ListNotifications)
		api.PUT("/:id/read", hb.MarkNotificationRead)
	}
}

// RegisterCatalogRoutes registers catalog lookup and search endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.GET("/search", hb.SearchCatalog)
		api.GET("/id/:id", hb.GetCatalogItem)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Easy Islanders"})
	})
}

// RegisterRoutes wires every route group onto the router.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	RegisterHealthRoute(r)
	RegisterBookingRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
}
