// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/visitor-log/internal/handler"
	"github.com/deppfellow/visitor-log/internal/middleware"
	"github.com/deppfellow/visitor-log/internal/server"
)

// NewRouter builds the Echo instance with global middleware, system
// routes and the rate limited /api/v1 group.
//
// Order matters: the request id must exist before the tracing and logger
// middleware read it, and the New Relic transaction must exist before
// EnhanceTracing and EnhanceContext look it up.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, h)

	v1 := router.Group("/api/v1", middlewares.RateLimit.Limit())
	registerVisitorRoutes(v1, h)

	return router
}
