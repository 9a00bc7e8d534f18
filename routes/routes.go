package routes

import (
	"net/http"
	"time"

	"gamecoach/handlers"
	"gamecoach/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every endpoint group onto the router.
func RegisterRoutes(r *gin.Engine, coachHandler *handlers.CoachHandler, bookingHandler *handlers.BookingHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterCoachRoutes(r, coachHandler)
	RegisterBookingRoutes(r, bookingHandler)
}

// RegisterCoachRoutes registers coach profile, planning and listing endpoints.
func RegisterCoachRoutes(r *gin.Engine, h *handlers.CoachHandler) {
	api := r.Group("/api/coaches")
	{
		api.POST("", h.RegisterCoachHandler)
		api.GET("/:username", h.GetProfileHandler)
		api.GET("/:username/slots", h.GetSlotsHandler)
		api.GET("/:username/bookings", h.ListBookingsHandler)
		api.POST("/:username/services", h.CreateServiceHandler)
		api.PUT("/:username/availability", h.SetAvailabilityHandler)
		api.PUT("/:username/services/:serviceID/slots", h.SetServiceSlotsHandler)
	}
}

// RegisterBookingRoutes registers the booking session flow.
func RegisterBookingRoutes(r *gin.Engine, h *handlers.BookingHandler) {
	booking := r.Group("/api/booking")
	{
		booking.POST("/session", h.StartSession)
		booking.PUT("/session/:sessionID/date", h.SelectDate)
		booking.PUT("/session/:sessionID/slot", h.ChooseSlot)
		booking.POST("/session/:sessionID/confirm", h.ConfirmBooking)
		booking.DELETE("/session/:sessionID", h.CancelSession)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}
