package events

import (
	"xplorium/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupEventRoutes(router *gin.RouterGroup, controller Controller) {
	// Public routes - the marketing site browses published events
	publicEvents := router.Group("/events")
	{
		publicEvents.GET("", controller.ListUpcoming) // GET /api/v1/events - Upcoming published events
		publicEvents.GET("/:id", controller.GetEvent) // GET /api/v1/events/:id - Event details
	}

	// Admin routes - full lifecycle management
	adminEvents := router.Group("/admin/events")
	adminEvents.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		adminEvents.GET("", controller.ListEvents)         // GET /api/v1/admin/events - All events with filters
		adminEvents.POST("", controller.CreateEvent)       // POST /api/v1/admin/events - Create draft event
		adminEvents.PUT("/:id", controller.UpdateEvent)    // PUT /api/v1/admin/events/:id - Update event / change status
		adminEvents.DELETE("/:id", controller.DeleteEvent) // DELETE /api/v1/admin/events/:id - Delete draft event
	}
}
