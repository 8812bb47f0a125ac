package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"versatil/handlers"
	"versatil/utils"
)

// RegisterCatalogRoutes registers the read-only catalogue endpoints.
func RegisterCatalogRoutes(r *gin.Engine, catalog *handlers.CatalogHandler) {
	api := r.Group("/api/catalog")
	{
		api.GET("/services", catalog.ListServices)
		api.GET("/services/:id", catalog.GetService)
		api.GET("/stylists", catalog.ListStylists)
	}
}

// RegisterAvailabilityRoutes registers the slot grid endpoint.
func RegisterAvailabilityRoutes(r *gin.Engine, avail *handlers.AvailabilityHandler) {
	r.GET("/api/availability", avail.GetDayAvailability)
}

// RegisterBookingRoutes sets up the endpoints for the booking wizard.
func RegisterBookingRoutes(r *gin.Engine, booking *handlers.BookingHandler) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.POST("/session", booking.InitiateSession)
		bookingGroup.GET("/session/:sessionID", booking.GetSession)
		bookingGroup.PUT("/session/:sessionID", booking.UpdateSession)
		bookingGroup.POST("/session/:sessionID/confirm", booking.ConfirmSession)
		bookingGroup.DELETE("/session/:sessionID", booking.CancelSession)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, catalog *handlers.CatalogHandler, avail *handlers.AvailabilityHandler, booking *handlers.BookingHandler) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterCatalogRoutes(r, catalog)
	RegisterAvailabilityRoutes(r, avail)
	RegisterBookingRoutes(r, booking)
}
