package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/visitor-log/internal/handler"
)

func newEmptyRequest() *handler.EmptyRequest { return &handler.EmptyRequest{} }
func newIDRequest() *handler.IDRequest       { return &handler.IDRequest{} }

// registerVisitorRoutes maps the visitor operations under /visitors.
// /last is registered before /:id so it is not parsed as an id.
func registerVisitorRoutes(g *echo.Group, h *handler.Handlers) {
	vh := h.Visitor
	visitors := g.Group("/visitors")

	visitors.POST("/table", handler.Handle(vh.Handler, vh.CreateTable, http.StatusCreated, newEmptyRequest))

	visitors.POST("", handler.Handle(vh.Handler, vh.AddVisitor, http.StatusCreated, func() *handler.AddVisitorRequest {
		return &handler.AddVisitorRequest{}
	}))

	visitors.GET("", handler.Handle(vh.Handler, vh.ListAll, http.StatusOK, newEmptyRequest))
	visitors.GET("/last", handler.Handle(vh.Handler, vh.ViewLast, http.StatusOK, newEmptyRequest))
	visitors.GET("/:id", handler.Handle(vh.Handler, vh.ViewOne, http.StatusOK, newIDRequest))

	visitors.PATCH("/:id", handler.Handle(vh.Handler, vh.UpdateOne, http.StatusOK, func() *handler.UpdateVisitorRequest {
		return &handler.UpdateVisitorRequest{}
	}))

	visitors.DELETE("/:id", handler.Handle(vh.Handler, vh.DeleteOne, http.StatusOK, newIDRequest))
	visitors.DELETE("", handler.Handle(vh.Handler, vh.DeleteAll, http.StatusOK, newEmptyRequest))
}
