package bookings

import (
	"xplorium/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupBookingRoutes(router *gin.RouterGroup, controller Controller) {
	// Public route - the booking form submits here without an account
	publicBookings := router.Group("/bookings")
	{
		publicBookings.POST("", controller.CreateBooking) // POST /api/v1/bookings - Submit booking request
	}

	// Admin routes - staff review and manage the booking queue
	adminBookings := router.Group("/admin/bookings")
	adminBookings.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		adminBookings.GET("", controller.ListBookings)               // GET /api/v1/admin/bookings - List bookings with filters
		adminBookings.GET("/:id", controller.GetBooking)             // GET /api/v1/admin/bookings/:id - Booking details
		adminBookings.PATCH("/:id/status", controller.UpdateStatus)  // PATCH /api/v1/admin/bookings/:id/status - Approve/reject/cancel/complete
	}
}
