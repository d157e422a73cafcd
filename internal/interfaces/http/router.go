package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/discourse/discourse-local-site-contacts/internal/interfaces/http/handlers"
	"github.com/discourse/discourse-local-site-contacts/internal/interfaces/http/middleware"
	"github.com/discourse/discourse-local-site-contacts/internal/interfaces/http/routes"
	"github.com/discourse/discourse-local-site-contacts/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	engine *gin.Engine
}

// RouterDeps are the components the admin API is built from
type RouterDeps struct {
	LocalContactHandler *handlers.LocalContactHandler
	TokenVerifier       middleware.TokenVerifier
	Logger              logger.Interface
}

// NewRouter creates the gin engine with all routes registered
func NewRouter(deps RouterDeps) *Router {
	engine := gin.New()
	engine.Use(middleware.Recovery(deps.Logger))
	engine.Use(middleware.Logger(deps.Logger))

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupLocalContactRoutes(engine, &routes.LocalContactRouteConfig{
		Handler:        deps.LocalContactHandler,
		AuthMiddleware: middleware.NewAuthMiddleware(deps.TokenVerifier, deps.Logger),
	})

	return &Router{engine: engine}
}

// Engine returns the underlying gin engine
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
