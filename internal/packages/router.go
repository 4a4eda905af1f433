package packages

import (
	"xplorium/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupPackageRoutes(router *gin.RouterGroup, controller Controller) {
	// Public routes - the pricing page lists active packages
	publicPackages := router.Group("/packages")
	{
		publicPackages.GET("", controller.ListActivePackages) // GET /api/v1/packages - Active packages
		publicPackages.GET("/:id", controller.GetPackage)     // GET /api/v1/packages/:id - Package details
	}

	// Admin routes - full pricing management
	adminPackages := router.Group("/admin/packages")
	adminPackages.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		adminPackages.GET("", controller.ListPackages)         // GET /api/v1/admin/packages - All packages incl. inactive
		adminPackages.POST("", controller.CreatePackage)       // POST /api/v1/admin/packages - Create package
		adminPackages.PUT("/:id", controller.UpdatePackage)    // PUT /api/v1/admin/packages/:id - Update package
		adminPackages.DELETE("/:id", controller.DeletePackage) // DELETE /api/v1/admin/packages/:id - Delete package
	}
}
