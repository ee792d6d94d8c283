package routes

import (
	"github.com/gin-gonic/gin"

	"wordnest/internal/interfaces/http/handlers"
	"wordnest/internal/interfaces/http/middleware"
)

type AdminRouteConfig struct {
	AuditHandler         *handlers.AuditHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupAdminRoutes(engine *gin.Engine, cfg *AdminRouteConfig) {
	admin := engine.Group("/api/admin")
	admin.Use(cfg.AuthMiddleware.RequireAuth(), cfg.PermissionMiddleware.RequirePermission("audit", "read"))
	{
		admin.GET("/users/:id/audit", cfg.AuditHandler.ListByActor)
	}
}
