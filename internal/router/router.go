package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/readylabs/aiready-backend/internal/config"
	"github.com/readylabs/aiready-backend/internal/handler"
	"github.com/readylabs/aiready-backend/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Question *handler.QuestionHandler
	Session  *handler.SessionHandler
	Result   *handler.ResultHandler
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
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID", "Content-Disposition"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Request ID on every response so autosave retries are traceable.
	router.Use(response.RequestIDMiddleware())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		// Question catalog (read-only).
		api.GET("/questions", handlers.Question.List)
		api.GET("/questions/category/:category", handlers.Question.ListByCategory)

		// Session lifecycle.
		api.POST("/quiz-sessions", handlers.Session.Create)
		api.GET("/quiz-sessions/:id", handlers.Session.Get)
		api.PATCH("/quiz-sessions/:id", handlers.Session.Update)
		api.POST("/quiz-sessions/:id/submit", handlers.Session.Submit)

		// Results.
		api.GET("/quiz-results/session/:sessionId", handlers.Result.ListBySession)
		api.GET("/quiz-results/:id/export", handlers.Result.Export)
	}

	return router
}
