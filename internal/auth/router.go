package auth

import (
	"github.com/gin-gonic/gin"

	"xplorium/internal/shared/config"
	"xplorium/internal/shared/middleware"
)

type Router struct {
	controller *Controller
	config     *config.Config
}

func NewRouter(controller *Controller, cfg *config.Config) *Router {
	return &Router{controller: controller, config: cfg}
}

func (r *Router) SetupRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", r.controller.Register) // POST /api/v1/auth/register
		auth.POST("/login", r.controller.Login)       // POST /api/v1/auth/login
		auth.POST("/refresh", r.controller.RefreshToken)
		auth.POST("/logout", r.controller.Logout)

		protected := auth.Group("")
		protected.Use(middleware.JWTAuthWithConfig(r.config))
		{
			protected.PUT("/change-password", r.controller.ChangePassword)
			protected.GET("/me", r.controller.GetMe)
		}
	}
}
