package routes

import (
	"github.com/gin-gonic/gin"

	"wordnest/internal/interfaces/http/handlers"
	"wordnest/internal/interfaces/http/middleware"
)

type LessonRouteConfig struct {
	LessonHandler        *handlers.LessonHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupLessonRoutes(engine *gin.Engine, cfg *LessonRouteConfig) {
	lessons := engine.Group("/api/lessons")
	{
		lessons.GET("", cfg.AuthMiddleware.OptionalAuth(), cfg.LessonHandler.List)
		lessons.GET("/:slug", cfg.AuthMiddleware.OptionalAuth(), cfg.LessonHandler.Get)
		lessons.POST("/:slug/complete", cfg.AuthMiddleware.RequireAuth(), cfg.LessonHandler.Complete)
	}

	admin := engine.Group("/api/admin/lessons")
	admin.Use(cfg.AuthMiddleware.RequireAuth(), cfg.PermissionMiddleware.RequirePermission("lessons", "manage"))
	{
		admin.POST("", cfg.LessonHandler.Create)
		admin.PUT("/:id", cfg.LessonHandler.Update)
	}
}
