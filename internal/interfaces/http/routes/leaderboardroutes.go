package routes

import (
	"github.com/gin-gonic/gin"

	"wordnest/internal/interfaces/http/handlers"
	"wordnest/internal/interfaces/http/middleware"
)

type LeaderboardRouteConfig struct {
	LeaderboardHandler *handlers.LeaderboardHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

func SetupLeaderboardRoutes(engine *gin.Engine, cfg *LeaderboardRouteConfig) {
	engine.GET("/api/leaderboard", cfg.AuthMiddleware.OptionalAuth(), cfg.LeaderboardHandler.Top)
}
