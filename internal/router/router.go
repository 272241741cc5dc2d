package router

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/timegridapp/timegrid-backend/internal/config"
	"github.com/timegridapp/timegrid-backend/internal/handler"
	"github.com/timegridapp/timegrid-backend/internal/middleware"
	"github.com/timegridapp/timegrid-backend/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Schedule *handler.ScheduleHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(handlers *Handlers, cfg *config.Config) *gin.Engine {
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
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID", "Content-Disposition"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Compress JSON responses; the xlsx container is already deflate-
	// compressed, so workbook downloads are skipped.
	brotliCfg := middleware.DefaultBrotliConfig
	brotliCfg.Skipper = func(c *gin.Context) bool {
		return strings.HasPrefix(c.Request.URL.Path, "/api/v1/schedule")
	}
	router.Use(middleware.BrotliWithConfig(brotliCfg))

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for report generation (30 requests per minute per IP);
	// every request parses and renders a full workbook.
	scheduleLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── Schedule Reports ──────────────────────────────────────────────
	schedule := router.Group("/api/v1/schedule")
	schedule.Use(scheduleLimiter.Middleware(), middleware.NoStore())
	{
		schedule.POST("/room", handlers.Schedule.GenerateRoomSchedule)
		schedule.POST("/teacher", handlers.Schedule.GenerateTeacherSchedule)
	}

	return router
}
