package handler

import (
	"github.com/deppfellow/visitor-log/internal/model/visitor"
	"github.com/deppfellow/visitor-log/internal/validation"
)

// EmptyRequest is bound by endpoints that take no input.
type EmptyRequest struct{}

func (r *EmptyRequest) Validate() error {
	return nil
}

// IDRequest carries the visitor id path parameter.
type IDRequest struct {
	ID int64 `param:"id" validate:"required,min=1"`
}

func (r *IDRequest) Validate() error {
	return validation.Struct(r)
}

// AddVisitorRequest is the body of POST /api/v1/visitors.
//
// Fields are untyped so a wrong JSON type is reported with the catalog
// message instead of a decoder error.
type AddVisitorRequest struct {
	Name      any `json:"name"`
	Age       any `json:"age"`
	Date      any `json:"date"`
	Time      any `json:"time"`
	Assistant any `json:"assistant"`
	Comments  any `json:"comments"`
}

func (r *AddVisitorRequest) NewVisitor() visitor.NewVisitor {
	return visitor.NewVisitor{
		Name:      r.Name,
		Age:       r.Age,
		Date:      r.Date,
		Time:      r.Time,
		Assistant: r.Assistant,
		Comments:  r.Comments,
	}
}

func (r *AddVisitorRequest) Validate() error {
	return validation.FromVisitorError(validation.ValidateVisitor(r.NewVisitor()))
}

// UpdateVisitorRequest is the body of PATCH /api/v1/visitors/:id.
// Column and value are checked by the service against the column rules.
type UpdateVisitorRequest struct {
	ID     int64  `param:"id" json:"-" validate:"required,min=1"`
	Column string `json:"column" validate:"required"`
	Value  any    `json:"value"`
}

func (r *UpdateVisitorRequest) Validate() error {
	return validation.Struct(r)
}

// StatusResponse wraps a status catalog message.
type StatusResponse struct {
	Status visitor.Status `json:"status"`
}
