// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"xplorium/internal/analytics"
	"xplorium/internal/auth"
	"xplorium/internal/bookings"
	"xplorium/internal/content"
	"xplorium/internal/events"
	"xplorium/internal/notifications"
	"xplorium/internal/packages"
	"xplorium/internal/shared/config"
	"xplorium/internal/shared/database"
	"xplorium/pkg/cache"
)

// Router holds all route dependencies
type Router struct {
	config              *config.Config
	db                  *database.DB
	cacheService        cache.Service
	notificationService notifications.Service
}

// NewRouter creates a new router instance. The notification service may be
// nil when Kafka is unreachable; booking flows then run without emails.
func NewRouter(cfg *config.Config, db *database.DB, notificationService notifications.Service) *Router {
	return &Router{
		config:              cfg,
		db:                  db,
		cacheService:        cache.NewService(db.GetRedis()),
		notificationService: notificationService,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	// API routes
	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupAuthRoutes(api)
		r.setupBookingRoutes(api)
		r.setupPackageRoutes(api)
		r.setupEventRoutes(api)
		r.setupContentRoutes(api)
		r.setupNotificationRoutes(api)
		r.setupAnalyticsRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "xplorium-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "xplorium-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})

	// Prometheus scrape endpoint
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger UI (generated docs)
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// setupAuthRoutes configures authentication routes
func (r *Router) setupAuthRoutes(rg *gin.RouterGroup) {
	authRepo := auth.NewRepository(r.db.GetPostgreSQL())
	authService := auth.NewService(authRepo, r.config)
	authController := auth.NewController(authService)
	authRouter := auth.NewRouter(authController, r.config)

	authRouter.SetupRoutes(rg)
}

// setupBookingRoutes configures booking management routes
func (r *Router) setupBookingRoutes(rg *gin.RouterGroup) {
	bookingRepo := bookings.NewRepository(r.db.GetPostgreSQL())
	bookingService := bookings.NewService(bookingRepo)

	// Booking status changes fan out to the Kafka notification pipeline
	if r.notificationService != nil {
		bookingService.SetNotifier(notifications.NewBookingServiceAdapter(r.notificationService))
	}

	bookingController := bookings.NewController(bookingService)
	bookings.SetupBookingRoutes(rg, bookingController)
}

// setupPackageRoutes configures pricing package routes
func (r *Router) setupPackageRoutes(rg *gin.RouterGroup) {
	packageRepo := packages.NewRepository(r.db.GetPostgreSQL())
	packageService := packages.NewService(packageRepo)
	packageService.SetCacheService(r.cacheService)

	packageController := packages.NewController(packageService)
	packages.SetupPackageRoutes(rg, packageController)
}

// setupEventRoutes configures event management routes
func (r *Router) setupEventRoutes(rg *gin.RouterGroup) {
	eventRepo := events.NewRepository(r.db.GetPostgreSQL())
	eventService := events.NewService(eventRepo)
	eventService.SetCacheService(r.cacheService)

	eventController := events.NewController(eventService)
	events.SetupEventRoutes(rg, eventController)
}

// setupContentRoutes configures CMS content block routes
func (r *Router) setupContentRoutes(rg *gin.RouterGroup) {
	contentRepo := content.NewRepository(r.db.GetPostgreSQL())
	contentService := content.NewService(contentRepo)
	contentService.SetCacheService(r.cacheService)

	contentController := content.NewController(contentService)
	content.SetupContentRoutes(rg, contentController)
}

// setupNotificationRoutes configures notification preference routes
func (r *Router) setupNotificationRoutes(rg *gin.RouterGroup) {
	if r.notificationService == nil {
		return
	}
	notificationController := notifications.NewController(r.notificationService)
	notifications.SetupNotificationRoutes(rg, notificationController)
}

// setupAnalyticsRoutes configures admin analytics and forecast routes
func (r *Router) setupAnalyticsRoutes(rg *gin.RouterGroup) {
	analyticsRepo := analytics.NewRepository(r.db.GetPostgreSQL())
	analyticsService := analytics.NewService(analyticsRepo)
	analyticsService.SetCacheService(r.cacheService)

	analyticsController := analytics.NewController(analyticsService)
	analytics.SetupAnalyticsRoutes(rg, analyticsController)
}
