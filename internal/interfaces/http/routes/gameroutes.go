package routes

import (
	"github.com/gin-gonic/gin"

	"wordnest/internal/interfaces/http/handlers"
	"wordnest/internal/interfaces/http/middleware"
)

type GameRouteConfig struct {
	GameHandler    *handlers.GameHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupGameRoutes(engine *gin.Engine, cfg *GameRouteConfig) {
	games := engine.Group("/api/games")
	games.Use(cfg.AuthMiddleware.RequireAuth())
	{
		games.POST("/scores", cfg.GameHandler.SubmitScore)
	}
}
