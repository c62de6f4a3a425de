package routes

import (
	"skaters_backend/internal/handlers"
	"skaters_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Guards are the middleware chains that protect the private routes.
type Guards struct {
	// Session must let through only authenticated skaters.
	Session gin.HandlerFunc
	// Admin runs after Session and lets through only the administrator.
	Admin gin.HandlerFunc
}

// RegisterRoutes registers every HTTP route of the application.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	guards Guards,
) {
	public := ginRouter.Group("")
	{
		appHandlers.HomeHandler.RegisterRoutes(public)
		appHandlers.AuthHandler.RegisterRoutes(public)
	}

	private := ginRouter.Group("")
	private.Use(guards.Session)
	{
		appHandlers.ProfileHandler.RegisterRoutes(private)
	}

	admin := ginRouter.Group("/admin")
	admin.Use(guards.Session, guards.Admin)
	{
		appHandlers.AdminHandler.RegisterRoutes(admin)
	}

	logger.Debug("HTTP routes registered", "count", len(ginRouter.Routes()))
}
