package routes

import (
	"log"
	"time"

	"newsroom-backend/internal/ai"
	"newsroom-backend/internal/api/handlers"
	"newsroom-backend/internal/api/middleware"
	"newsroom-backend/internal/audit"
	"newsroom-backend/internal/auth"
	"newsroom-backend/internal/config"
	"newsroom-backend/internal/database/models"
	"newsroom-backend/internal/feed"
	"newsroom-backend/internal/ratelimit"
	"newsroom-backend/internal/repository"
	"newsroom-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// newLimiter selects the rate limiter backend. A Redis URL switches to
// the shared counter; otherwise limits are tracked per process.
func newLimiter(cfg *config.Config) ratelimit.Limiter {
	limiterCfg := ratelimit.Config{
		Requests: cfg.RateLimitRequests,
		Window:   time.Duration(cfg.RateLimitWindow) * time.Second,
	}
	if cfg.RedisURL != "" {
		limiter, err := ratelimit.NewRedisLimiter(cfg.RedisURL, limiterCfg)
		if err == nil {
			return limiter
		}
		log.Printf("Warning: Redis rate limiter unavailable, using in-process counter: %v", err)
	}
	return ratelimit.NewMemoryLimiter(limiterCfg)
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validate := validator.New()

	// Initialize repositories
	tenantRepo := repository.NewTenantRepository(db)
	userRepo := repository.NewUserRepository(db)
	sourceRepo := repository.NewSourceRepository(db)
	articleRepo := repository.NewArticleRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	auditLogRepo := repository.NewAuditLogRepository(db)
	articleInserter := repository.SelectArticleInserter(db)

	// Initialize audit trail recorder
	recorder := audit.NewDBRecorder(db)

	// Initialize external collaborators
	fetcher := feed.NewFetcher(time.Duration(cfg.FeedFetchTimeoutSec)*time.Second, cfg.FeedUserAgent)
	chatClient := ai.NewClient(ai.Config{
		APIKey:  cfg.AIAPIKey,
		BaseURL: cfg.AIBaseURL,
		Model:   cfg.AIModel,
	})

	// Initialize services
	tenantService := service.NewTenantService(tenantRepo, userRepo, recorder, validate)
	userService := service.NewUserService(userRepo, recorder, validate)
	sourceService := service.NewSourceService(sourceRepo, recorder, validate)
	syncService := service.NewSyncService(sourceRepo, articleInserter, fetcher, recorder)
	articleService := service.NewArticleService(articleRepo, recorder, validate)
	categoryService := service.NewCategoryService(categoryRepo, recorder, validate)
	dashboardService := service.NewDashboardService(articleRepo)
	auditLogService := service.NewAuditLogService(auditLogRepo)
	aiService := service.NewAIService(chatClient, recorder, validate)

	// Initialize authentication
	authService := auth.NewService(cfg.JWTSecret)
	authHandler := auth.NewHandler(authService, userRepo, recorder, cfg.IsProduction())
	authMiddleware := auth.NewMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	tenantHandler := handlers.NewTenantHandler(tenantService)
	userHandler := handlers.NewUserHandler(userService)
	profileHandler := handlers.NewProfileHandler(userService)
	sourceHandler := handlers.NewSourceHandler(sourceService, syncService)
	articleHandler := handlers.NewArticleHandler(articleService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	auditLogHandler := handlers.NewAuditLogHandler(auditLogService)
	aiHandler := handlers.NewAIHandler(aiService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// API routes share one rate limit keyed by client address
	api := router.Group("/api")
	api.Use(middleware.RateLimit(newLimiter(cfg)))

	v1 := api.Group("/v1")

	// Unauthenticated endpoints: login and tenant bootstrap. Logout
	// resolves the actor so the USER_LOGOUT audit entry can name them.
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/logout", authMiddleware.OptionalAuth(), authHandler.Logout)
	}
	v1.POST("/tenants", tenantHandler.CreateTenant)

	v1.Use(authMiddleware.RequireAuth())
	{
		// Tenant settings routes
		tenant := v1.Group("/tenant", authMiddleware.RequireRole(models.RoleAdmin))
		{
			tenant.GET("/settings", tenantHandler.GetSettings)
			tenant.PUT("/settings", tenantHandler.UpdateSettings)
		}

		// Admin-only management routes
		admin := v1.Group("/admin", authMiddleware.RequireRole(models.RoleAdmin))
		{
			users := admin.Group("/users")
			{
				users.GET("", userHandler.GetUsers)
				users.POST("", userHandler.CreateUser)
				users.GET("/:id", userHandler.GetUser)
				users.PUT("/:id", userHandler.UpdateUser)
				users.DELETE("/:id", userHandler.DeleteUser)
			}

			categories := admin.Group("/categories")
			{
				categories.GET("", categoryHandler.GetCategories)
				categories.POST("", categoryHandler.CreateCategory)
				categories.GET("/:id", categoryHandler.GetCategory)
				categories.PUT("/:id", categoryHandler.UpdateCategory)
				categories.DELETE("/:id", categoryHandler.DeleteCategory)
			}

			admin.GET("/audit-logs", auditLogHandler.GetAuditLogs)
		}

		// Self-service profile routes
		profile := v1.Group("/profile")
		{
			profile.GET("", profileHandler.GetProfile)
			profile.PUT("", profileHandler.UpdateProfile)
			profile.PUT("/password", profileHandler.ChangePassword)
		}

		// News source routes
		sources := v1.Group("/sources")
		{
			sources.GET("", sourceHandler.GetSources)
			sources.GET("/:id", sourceHandler.GetSource)

			editors := authMiddleware.RequireRole(models.RoleAdmin, models.RoleEditor)
			sources.POST("", editors, sourceHandler.CreateSource)
			sources.PUT("/:id", editors, sourceHandler.UpdateSource)
			sources.DELETE("/:id", editors, sourceHandler.DeleteSource)
			sources.POST("/:id/sync", editors, sourceHandler.SyncSource)
		}

		// Article routes
		articles := v1.Group("/articles")
		{
			articles.GET("", articleHandler.GetArticles)
			articles.GET("/:id", articleHandler.GetArticle)

			editors := authMiddleware.RequireRole(models.RoleAdmin, models.RoleEditor)
			articles.POST("", editors, articleHandler.CreateArticle)
			articles.PUT("/:id", editors, articleHandler.UpdateArticle)
			articles.DELETE("/:id", editors, articleHandler.DeleteArticle)
		}

		// Dashboard routes
		v1.GET("/dashboard/stats", dashboardHandler.GetStats)

		// Editorial AI routes
		aiGroup := v1.Group("/ai", authMiddleware.RequireRole(models.RoleAdmin, models.RoleEditor))
		{
			aiGroup.POST("/seo", aiHandler.GenerateSeoMetadata)
			aiGroup.POST("/grammar", aiHandler.CheckGrammar)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
