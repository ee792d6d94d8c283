// Package routes groups endpoint registration per feature area.
package routes

import (
	"github.com/gin-gonic/gin"

	"wordnest/internal/interfaces/http/handlers"
	"wordnest/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for the identity routes.
type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *middleware.RateLimiter
}

func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	auth := engine.Group("/api/auth")
	{
		auth.POST("/register", cfg.RateLimiter.Limit(), cfg.AuthHandler.Register)
		auth.POST("/login", cfg.RateLimiter.Limit(), cfg.AuthHandler.Login)
		auth.POST("/logout", cfg.AuthHandler.Logout)
		auth.GET("/verify-email", cfg.AuthHandler.VerifyEmail)
		auth.POST("/verify-email", cfg.AuthHandler.VerifyEmail)

		// Link mode needs the caller's identity; OptionalAuth leaves
		// plain sign-ins anonymous.
		auth.GET("/oauth/:provider", cfg.RateLimiter.Limit(), cfg.AuthMiddleware.OptionalAuth(), cfg.AuthHandler.InitiateOAuth)
		auth.GET("/oauth/:provider/callback", cfg.AuthHandler.HandleOAuthCallback)

		auth.GET("/me", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.GetCurrentUser)
		auth.PUT("/me", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.UpdateProfile)
		auth.POST("/password", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.ChangePassword)
		auth.POST("/unlink", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.UnlinkProvider)
	}
}
