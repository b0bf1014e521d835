// Package routes maps the HTTP surface onto handlers. Routes are grouped by
// aggregate; only the anonymous auth endpoints carry rate limiting.
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Maple-Lazuli/one-place-v3/internal/interfaces/http/handlers"
)

// AuthRouteConfig holds dependencies for account and session routes.
type AuthRouteConfig struct {
	AuthHandler *handlers.AuthHandler
	// RateLimit guards the unauthenticated endpoints; nil disables limiting.
	RateLimit gin.HandlerFunc
}

func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	users := engine.Group("/users")
	{
		if cfg.RateLimit != nil {
			users.POST("", cfg.RateLimit, cfg.AuthHandler.Signup)
		} else {
			users.POST("", cfg.AuthHandler.Signup)
		}
		users.PUT("/password", cfg.AuthHandler.ChangePassword)
		users.DELETE("", cfg.AuthHandler.DeleteAccount)
		users.GET("/preferences", cfg.AuthHandler.GetPreferences)
		users.PUT("/preferences", cfg.AuthHandler.UpdatePreferences)
	}

	sessions := engine.Group("/sessions")
	{
		if cfg.RateLimit != nil {
			sessions.POST("", cfg.RateLimit, cfg.AuthHandler.Login)
		} else {
			sessions.POST("", cfg.AuthHandler.Login)
		}
		sessions.DELETE("", cfg.AuthHandler.Logout)
		sessions.POST("/renew", cfg.AuthHandler.Renew)
		sessions.GET("/validate", cfg.AuthHandler.Validate)
	}
}
