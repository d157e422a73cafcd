package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/discourse/discourse-local-site-contacts/internal/interfaces/http/handlers"
	"github.com/discourse/discourse-local-site-contacts/internal/interfaces/http/middleware"
	"github.com/discourse/discourse-local-site-contacts/internal/shared/authorization"
)

// LocalContactRouteConfig holds the configuration for local contact routes
type LocalContactRouteConfig struct {
	Handler        *handlers.LocalContactHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupLocalContactRoutes configures the local site contact admin routes
func SetupLocalContactRoutes(engine *gin.Engine, config *LocalContactRouteConfig) {
	contacts := engine.Group("/admin/local-site-contacts")
	contacts.Use(config.AuthMiddleware.RequireAuth())
	contacts.Use(authorization.RequireAdmin())
	{
		contacts.GET("/schema", config.Handler.GetSchema)
		contacts.GET("/resolve", config.Handler.Resolve)
		contacts.GET("/validate", config.Handler.ValidateStored)
		contacts.POST("/validate", config.Handler.ValidateCandidate)
	}
}
