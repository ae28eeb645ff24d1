package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/visitor-log/internal/handler"
)

// registerSystemRoutes registers endpoints outside the visitor API:
// the health check, the docs UI and its static assets.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)

	r.Static("/static", "static")

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
