package handler

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/visitor-log/internal/errs"
	"github.com/deppfellow/visitor-log/internal/model/visitor"
	"github.com/deppfellow/visitor-log/internal/server"
	"github.com/deppfellow/visitor-log/internal/service"
)

const codeVisitorNotFound = "VISITOR_NOT_FOUND"

// VisitorHandler exposes the visitor operations over HTTP.
type VisitorHandler struct {
	Handler
	visitorService *service.VisitorService
}

func NewVisitorHandler(s *server.Server, visitorService *service.VisitorService) *VisitorHandler {
	return &VisitorHandler{
		Handler:        NewHandler(s),
		visitorService: visitorService,
	}
}

func (h *VisitorHandler) CreateTable(c echo.Context, _ *EmptyRequest) (*StatusResponse, error) {
	return statusResponse(h.visitorService.CreateTable(c.Request().Context()))
}

func (h *VisitorHandler) AddVisitor(c echo.Context, req *AddVisitorRequest) (*StatusResponse, error) {
	return statusResponse(h.visitorService.AddVisitor(c.Request().Context(), req.NewVisitor()))
}

func (h *VisitorHandler) ListAll(c echo.Context, _ *EmptyRequest) ([]visitor.Visitor, error) {
	visitors, err := h.visitorService.ListAll(c.Request().Context())
	if err != nil {
		return nil, mapVisitorError(err)
	}
	return visitors, nil
}

func (h *VisitorHandler) ViewOne(c echo.Context, req *IDRequest) (*visitor.Visitor, error) {
	v, err := h.visitorService.ViewOne(c.Request().Context(), req.ID)
	if err != nil {
		return nil, mapVisitorError(err)
	}
	return &v, nil
}

func (h *VisitorHandler) ViewLast(c echo.Context, _ *EmptyRequest) (*visitor.Visitor, error) {
	v, err := h.visitorService.ViewLast(c.Request().Context())
	if err != nil {
		return nil, mapVisitorError(err)
	}
	return &v, nil
}

func (h *VisitorHandler) UpdateOne(c echo.Context, req *UpdateVisitorRequest) (*StatusResponse, error) {
	return statusResponse(h.visitorService.UpdateOne(c.Request().Context(), req.ID, req.Column, req.Value))
}

func (h *VisitorHandler) DeleteOne(c echo.Context, req *IDRequest) (*StatusResponse, error) {
	return statusResponse(h.visitorService.DeleteOne(c.Request().Context(), req.ID))
}

func (h *VisitorHandler) DeleteAll(c echo.Context, _ *EmptyRequest) (*StatusResponse, error) {
	return statusResponse(h.visitorService.DeleteAll(c.Request().Context()))
}

func statusResponse(status visitor.Status, err error) (*StatusResponse, error) {
	if err != nil {
		return nil, mapVisitorError(err)
	}
	return &StatusResponse{Status: status}, nil
}

// mapVisitorError turns visitor errors into client errors. Validation
// failures get the same shape as a rejected request payload; anything else
// is left for the global error handler.
func mapVisitorError(err error) error {
	if errors.Is(err, visitor.ErrVisitorNotFound) {
		code := codeVisitorNotFound
		return errs.NewNotFoundError(visitor.NotFoundMessage, true, &code)
	}

	var vErr *visitor.ValidationError
	if errors.As(err, &vErr) {
		return errs.NewBadRequestError(vErr.Message, true, nil, []errs.FieldError{{
			Field: vErr.Field,
			Error: vErr.Message,
		}})
	}

	return err
}
