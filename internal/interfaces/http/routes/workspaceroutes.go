package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Maple-Lazuli/one-place-v3/internal/interfaces/http/handlers"
)

// WorkspaceRouteConfig holds dependencies for project and page routes,
// including the per-project collection listings.
type WorkspaceRouteConfig struct {
	ProjectHandler     *handlers.ProjectHandler
	PageHandler        *handlers.PageHandler
	EquationHandler    *handlers.EquationHandler
	SnippetHandler     *handlers.SnippetHandler
	CanvasHandler      *handlers.CanvasHandler
	RecipeHandler      *handlers.RecipeHandler
	TranslationHandler *handlers.TranslationHandler
	FileHandler        *handlers.FileHandler
	TodoHandler        *handlers.TodoHandler
	EventHandler       *handlers.EventHandler
	HistoryHandler     *handlers.HistoryHandler
}

func SetupWorkspaceRoutes(engine *gin.Engine, cfg *WorkspaceRouteConfig) {
	projects := engine.Group("/projects")
	{
		projects.POST("", cfg.ProjectHandler.Create)
		projects.GET("", cfg.ProjectHandler.List)
		projects.GET("/:id", cfg.ProjectHandler.Get)
		projects.PUT("/:id", cfg.ProjectHandler.Update)
		projects.DELETE("/:id", cfg.ProjectHandler.Delete)

		projects.GET("/:id/pages", cfg.PageHandler.ListByProject)
		projects.GET("/:id/equations", cfg.EquationHandler.ListByProject)
		projects.GET("/:id/snippets", cfg.SnippetHandler.ListByProject)
		projects.GET("/:id/canvases", cfg.CanvasHandler.ListByProject)
		projects.GET("/:id/recipes", cfg.RecipeHandler.ListByProject)
		projects.GET("/:id/translations", cfg.TranslationHandler.ListByProject)
		projects.GET("/:id/todos", cfg.TodoHandler.ListByProject)
		projects.GET("/:id/events", cfg.EventHandler.ListByProject)
		projects.GET("/:id/history", cfg.HistoryHandler.ForProject)
	}

	pages := engine.Group("/pages")
	{
		pages.POST("", cfg.PageHandler.Create)
		pages.GET("/:id", cfg.PageHandler.Get)
		pages.PUT("/:id", cfg.PageHandler.Update)
		pages.DELETE("/:id", cfg.PageHandler.Delete)

		pages.POST("/:id/review", cfg.PageHandler.MarkReviewed)
		pages.GET("/:id/review", cfg.PageHandler.GetReviewStatus)

		pages.GET("/:id/equations", cfg.EquationHandler.ListByPage)
		pages.GET("/:id/snippets", cfg.SnippetHandler.ListByPage)
		pages.GET("/:id/canvases", cfg.CanvasHandler.ListByPage)
		pages.GET("/:id/recipes", cfg.RecipeHandler.ListByPage)
		pages.GET("/:id/translations", cfg.TranslationHandler.ListByPage)

		pages.POST("/:id/files", cfg.FileHandler.Upload)
		pages.GET("/:id/files", cfg.FileHandler.ListByPage)
	}
}
