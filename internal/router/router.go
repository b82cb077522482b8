package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hostelhq/outpass-backend/internal/config"
	"github.com/hostelhq/outpass-backend/internal/handler"
	"github.com/hostelhq/outpass-backend/internal/middleware"
	"github.com/hostelhq/outpass-backend/internal/model"
	"github.com/hostelhq/outpass-backend/internal/response"
	"github.com/hostelhq/outpass-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth      *handler.AuthHandler
	GatePass  *handler.GatePassHandler
	Dashboard *handler.DashboardHandler
	Media     *handler.MediaHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

	// Serve uploaded photos statically with aggressive caching (1 year).
	uploadsGroup := router.Group("/uploads")
	uploadsGroup.Use(middleware.CacheControl(31536000))
	{
		uploadsGroup.Static("/", cfg.UploadDir)
	}

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for credential endpoints (30 requests per minute per IP).
	authLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── 1. Admin Auth (Public, Rate Limited) ──────────────────────────
	admin := router.Group("/admin")
	{
		admin.POST("/login", authLimiter.Middleware(), handlers.Auth.Login)
		admin.POST("/signup", authLimiter.Middleware(), handlers.Auth.Signup)
		admin.GET("/me", middleware.RequireAdminJWT(authService), handlers.Auth.Me)
	}

	// ─── 2. Gate-Pass Requests ─────────────────────────────────────────
	requests := router.Group("/requests")
	{
		// Students submit requests without an account.
		requests.POST("", handlers.GatePass.Create)

		authed := requests.Group("", middleware.RequireAdminJWT(authService))
		{
			authed.GET("", handlers.GatePass.List)
			authed.GET("/:id", handlers.GatePass.Get)
			authed.PUT("/:id", handlers.GatePass.Approve)
			authed.POST("/delete-many", handlers.GatePass.DeleteMany)

			// Gate movements are the watchman's job.
			watchman := authed.Group("", middleware.RequireRole(model.RoleWatchman))
			{
				watchman.POST("/:id/out", handlers.GatePass.MarkOut)
				watchman.POST("/:id/in", handlers.GatePass.MarkIn)
			}
		}
	}

	// ─── 3. Admin Dashboard & Media ────────────────────────────────────
	authed := router.Group("", middleware.RequireAdminJWT(authService))
	{
		authed.GET("/dashboard", handlers.Dashboard.Stats)
		authed.POST("/media/upload", handlers.Media.Upload)
	}

	return router
}
