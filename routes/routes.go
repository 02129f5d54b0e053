package routes

import (
	"net/http"
	"time"

	"salonbook/handlers"
	"salonbook/middleware"
	"salonbook/models"
	"salonbook/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterHealthRoute registers the health-check and metrics endpoints.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		status := utils.GetHealthStatus()
		code := http.StatusOK
		if !status.Healthy() {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{"status": status, "message": "Hi, I'm salonbook"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// RegisterSalonRoutes registers catalogue endpoints.
func RegisterSalonRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/salons")
	{
		api.GET("", hb.Salon.ListSalonsHandler)
		api.GET("/:id", hb.Salon.GetSalonHandler)
		api.GET("/:id/staff", hb.Salon.ListStaffHandler)
		api.GET("/:id/services", hb.Salon.ListServicesHandler)

		// Management requires an owner or super admin.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo, hb.AuthCache))
		protected.Use(middleware.RequireRoles(models.RoleSalonOwner, models.RoleSuperAdmin))
		protected.POST("", hb.Salon.CreateSalonHandler)
		protected.PUT("/:id/working-hours", hb.Salon.UpdateWorkingHoursHandler)
		protected.PUT("/:id/holidays", hb.Salon.UpdateHolidaysHandler)
		protected.POST("/:id/staff", hb.Salon.AddStaffHandler)
		protected.POST("/:id/services", hb.Salon.AddServiceHandler)
	}
	r.GET("/api/staff/:id/availability", hb.Booking.StaffAvailabilityHandler)
}

// RegisterBookingRoutes registers booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("/check-availability", hb.Booking.CheckAvailabilityHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo, hb.AuthCache))
		protected.GET("", middleware.RequireRoles(models.RoleSuperAdmin), hb.Booking.ListAllBookingsHandler)
		protected.GET("/upcoming", hb.Booking.UpcomingBookingsHandler)
		protected.GET("/past", hb.Booking.PastBookingsHandler)
		protected.GET("/today", hb.Booking.TodayBookingsHandler)
		protected.GET("/calendar/:salonId", hb.Booking.CalendarBookingsHandler)
		protected.GET("/user/:userId", hb.Booking.UserBookingsHandler)
		protected.GET("/salon/:salonId", hb.Booking.SalonBookingsHandler)
		protected.GET("/:id", hb.Booking.GetBookingHandler)
		protected.POST("", hb.Booking.CreateBookingHandler)
		protected.PUT("/:id", hb.Booking.UpdateBookingHandler)
		protected.PATCH("/:id/reschedule", hb.Booking.RescheduleBookingHandler)
		protected.PATCH("/:id/status", hb.Booking.UpdateStatusHandler)
		protected.DELETE("/:id", hb.Booking.CancelBookingHandler)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterSalonRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
}
