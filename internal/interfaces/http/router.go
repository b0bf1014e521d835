package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Maple-Lazuli/one-place-v3/internal/infrastructure/config"
	"github.com/Maple-Lazuli/one-place-v3/internal/infrastructure/ratelimit"
	"github.com/Maple-Lazuli/one-place-v3/internal/interfaces/http/middleware"
	"github.com/Maple-Lazuli/one-place-v3/internal/interfaces/http/routes"
	"github.com/Maple-Lazuli/one-place-v3/internal/shared/logger"
	"github.com/Maple-Lazuli/one-place-v3/internal/shared/utils"
)

// NewRouter builds the Gin engine with the shared middleware stack and every
// route group registered.
func NewRouter(cfg *config.Config, container *Container) *gin.Engine {
	if cfg.Server.Mode == "release" || cfg.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.Logger(logger.NewLogger()))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	engine.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, http.StatusOK, "ok", nil)
	})

	var authLimit gin.HandlerFunc
	if container.RateLimiter != nil {
		authLimit = middleware.RateLimit(container.RateLimiter, ratelimit.Config{
			RequestsPerMinute: 10,
			RequestsPerHour:   100,
			RequestsPerDay:    500,
		})
	}

	routes.SetupAuthRoutes(engine, &routes.AuthRouteConfig{
		AuthHandler: container.AuthHandler,
		RateLimit:   authLimit,
	})

	routes.SetupWorkspaceRoutes(engine, &routes.WorkspaceRouteConfig{
		ProjectHandler:     container.ProjectHandler,
		PageHandler:        container.PageHandler,
		EquationHandler:    container.EquationHandler,
		SnippetHandler:     container.SnippetHandler,
		CanvasHandler:      container.CanvasHandler,
		RecipeHandler:      container.RecipeHandler,
		TranslationHandler: container.TranslationHandler,
		FileHandler:        container.FileHandler,
		TodoHandler:        container.TodoHandler,
		EventHandler:       container.EventHandler,
		HistoryHandler:     container.HistoryHandler,
	})

	routes.SetupContentRoutes(engine, &routes.ContentRouteConfig{
		EquationHandler:    container.EquationHandler,
		SnippetHandler:     container.SnippetHandler,
		CanvasHandler:      container.CanvasHandler,
		RecipeHandler:      container.RecipeHandler,
		TranslationHandler: container.TranslationHandler,
		FileHandler:        container.FileHandler,
		TodoHandler:        container.TodoHandler,
		EventHandler:       container.EventHandler,
		HistoryHandler:     container.HistoryHandler,
	})

	return engine
}
