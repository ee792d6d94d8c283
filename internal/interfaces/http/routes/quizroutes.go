package routes

import (
	"github.com/gin-gonic/gin"

	"wordnest/internal/interfaces/http/handlers"
	"wordnest/internal/interfaces/http/middleware"
)

type QuizRouteConfig struct {
	QuizHandler          *handlers.QuizHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupQuizRoutes(engine *gin.Engine, cfg *QuizRouteConfig) {
	quizzes := engine.Group("/api")
	quizzes.Use(cfg.AuthMiddleware.RequireAuth())
	{
		quizzes.GET("/lessons/:slug/quiz", cfg.QuizHandler.GetByLesson)
		quizzes.POST("/quizzes/:id/attempts", cfg.QuizHandler.SubmitAttempt)
	}

	admin := engine.Group("/api/admin/quizzes")
	admin.Use(cfg.AuthMiddleware.RequireAuth(), cfg.PermissionMiddleware.RequirePermission("quizzes", "manage"))
	{
		admin.POST("", cfg.QuizHandler.Create)
	}
}
