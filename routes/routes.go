package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/urboijano/MassageHaven/config"
	"github.com/urboijano/MassageHaven/controllers"
	"github.com/urboijano/MassageHaven/utils"
)

func SetupRouter(h *controllers.Handler, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	// Public routes: the marketing site and the booking form.
	public := r.Group("/api")
	{
		public.POST("/auth/login", h.Login)

		public.GET("/services", h.GetServices)
		public.GET("/services/featured", h.GetFeaturedServices)
		public.GET("/services/:id", h.GetService)

		public.GET("/staff", h.GetStaff)
		public.GET("/staff/active", h.GetActiveStaff)
		public.GET("/staff/:id", h.GetStaffMember)

		public.POST("/bookings", h.CreateBooking)

		public.GET("/settings", h.GetSettings)
	}

	// Admin routes require a valid bearer token.
	admin := r.Group("/api")
	admin.Use(utils.AuthMiddleware(cfg.JWTSecret))
	{
		admin.POST("/services", h.CreateService)
		admin.PATCH("/services/:id", h.UpdateService)
		admin.DELETE("/services/:id", h.DeleteService)

		admin.POST("/staff", h.CreateStaff)
		admin.PATCH("/staff/:id", h.UpdateStaff)
		admin.DELETE("/staff/:id", h.DeleteStaff)

		admin.GET("/bookings", h.GetBookings)
		admin.GET("/bookings/:id", h.GetBooking)
		admin.PATCH("/bookings/:id/status", h.UpdateBookingStatus)
		admin.DELETE("/bookings/:id", h.DeleteBooking)

		admin.PATCH("/settings", h.UpdateSettings)

		admin.POST("/upload", h.Upload)

		admin.GET("/admin/stats", h.GetAdminStats)
		admin.GET("/admin/bookings/recent", h.GetRecentBookings)
		admin.GET("/admin/bookings", h.GetAdminBookings)
		admin.GET("/admin/services/popular", h.GetPopularServices)
	}

	return r
}
