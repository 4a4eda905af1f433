package content

import (
	"xplorium/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupContentRoutes(router *gin.RouterGroup, controller Controller) {
	// Public route - the marketing site pulls copy by slug
	publicContent := router.Group("/content")
	{
		publicContent.GET("/:slug", controller.GetBlockBySlug) // GET /api/v1/content/:slug - Published block by slug
	}

	// Admin routes - content editing
	adminContent := router.Group("/admin/content")
	adminContent.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		adminContent.GET("", controller.ListBlocks)         // GET /api/v1/admin/content - All blocks incl. unpublished
		adminContent.POST("", controller.CreateBlock)       // POST /api/v1/admin/content - Create block
		adminContent.PUT("/:id", controller.UpdateBlock)    // PUT /api/v1/admin/content/:id - Update block
		adminContent.DELETE("/:id", controller.DeleteBlock) // DELETE /api/v1/admin/content/:id - Delete block
	}
}
