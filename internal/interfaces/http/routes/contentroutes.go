package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Maple-Lazuli/one-place-v3/internal/interfaces/http/handlers"
)

// ContentRouteConfig holds dependencies for the page-scoped and
// project-scoped content resources.
type ContentRouteConfig struct {
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

func SetupContentRoutes(engine *gin.Engine, cfg *ContentRouteConfig) {
	equations := engine.Group("/equations")
	{
		equations.POST("", cfg.EquationHandler.Create)
		equations.GET("/:id", cfg.EquationHandler.Get)
		equations.PUT("/:id", cfg.EquationHandler.Update)
		equations.DELETE("/:id", cfg.EquationHandler.Delete)
	}

	snippets := engine.Group("/snippets")
	{
		snippets.POST("", cfg.SnippetHandler.Create)
		snippets.GET("/:id", cfg.SnippetHandler.Get)
		snippets.PUT("/:id", cfg.SnippetHandler.Update)
		snippets.DELETE("/:id", cfg.SnippetHandler.Delete)
	}

	canvases := engine.Group("/canvases")
	{
		canvases.POST("", cfg.CanvasHandler.Create)
		canvases.GET("/:id", cfg.CanvasHandler.Get)
		canvases.PUT("/:id", cfg.CanvasHandler.Update)
		canvases.DELETE("/:id", cfg.CanvasHandler.Delete)
	}

	recipes := engine.Group("/recipes")
	{
		recipes.POST("", cfg.RecipeHandler.Create)
		recipes.GET("/:id", cfg.RecipeHandler.Get)
		recipes.PUT("/:id", cfg.RecipeHandler.Update)
		recipes.DELETE("/:id", cfg.RecipeHandler.Delete)
	}

	translations := engine.Group("/translations")
	{
		translations.POST("", cfg.TranslationHandler.Create)
		translations.GET("/:id", cfg.TranslationHandler.Get)
		translations.PUT("/:id", cfg.TranslationHandler.Update)
		translations.DELETE("/:id", cfg.TranslationHandler.Delete)
	}

	files := engine.Group("/files")
	{
		files.GET("/:id", cfg.FileHandler.Download)
		files.DELETE("/:id", cfg.FileHandler.Delete)
	}

	todos := engine.Group("/todos")
	{
		todos.POST("", cfg.TodoHandler.Create)
		todos.PUT("/:id", cfg.TodoHandler.Update)
		todos.DELETE("/:id", cfg.TodoHandler.Delete)
	}

	events := engine.Group("/events")
	{
		events.POST("", cfg.EventHandler.Create)
		events.GET("", cfg.EventHandler.Calendar)
		events.PUT("/:id", cfg.EventHandler.Update)
		events.DELETE("/:id", cfg.EventHandler.Delete)
	}

	engine.GET("/history", cfg.HistoryHandler.ForUser)
}
