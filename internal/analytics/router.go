package analytics

import (
	"xplorium/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupAnalyticsRoutes(router *gin.RouterGroup, controller Controller) {
	// Admin-only reporting surface
	adminAnalytics := router.Group("/analytics/admin")
	adminAnalytics.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		adminAnalytics.GET("/dashboard", controller.GetDashboard) // GET /api/v1/analytics/admin/dashboard - Full dashboard stats
		adminAnalytics.GET("/daily", controller.GetDailyStats)    // GET /api/v1/analytics/admin/daily?days=30 - Per-day booking counts
		adminAnalytics.GET("/forecast", controller.GetForecast)   // GET /api/v1/analytics/admin/forecast - 3-month revenue projection
	}
}
