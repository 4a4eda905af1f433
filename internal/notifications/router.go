package notifications

import (
	"xplorium/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupNotificationRoutes(router *gin.RouterGroup, controller Controller) {
	// Public route - unsubscribe links land here without an account
	publicNotifications := router.Group("/notifications")
	{
		publicNotifications.POST("/preferences", controller.UpdatePreference) // POST /api/v1/notifications/preferences - Opt in/out
	}

	// Admin route - support staff look up a customer's opt-outs
	adminNotifications := router.Group("/admin/notifications")
	adminNotifications.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		adminNotifications.GET("/preferences", controller.ListPreferences) // GET /api/v1/admin/notifications/preferences?email=...
	}
}
