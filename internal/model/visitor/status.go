package visitor

import (
	"errors"
	"fmt"
)

// Status is the outcome of a successful write operation.
type Status string

const (
	StatusTableCreated       Status = "Visitors table created successfully"
	StatusVisitorAdded       Status = "Visitor added successfully"
	StatusVisitorUpdated     Status = "Visitor updated successfully"
	StatusVisitorDeleted     Status = "Visitor deleted successfully"
	StatusAllVisitorsDeleted Status = "All visitors deleted successfully"
	StatusNoVisitorsFound    Status = "No visitors found"
)

func (s Status) String() string {
	return string(s)
}

// Fixed messages for format and lookup failures.
const (
	AgeFormatMessage  = "Invalid age. Age must be a whole number between 0 and 150"
	DateFormatMessage = "Invalid date format. Date must be in YYYY-MM-DD format"
	TimeFormatMessage = "Invalid time format. Time must be in HH:MM format"
	NotFoundMessage   = "Visitor not found"
)

// ErrVisitorNotFound is returned when a lookup, update or single delete
// matches no row.
var ErrVisitorNotFound = errors.New(NotFoundMessage)

// NotStringMessage is the type error message for a field that must be text.
// The value is embedded as DisplayValue renders it.
func NotStringMessage(value any) string {
	return DisplayValue(value) + " is not a string"
}

// InvalidColumnMessage is returned when an update targets an unknown column.
func InvalidColumnMessage(column string) string {
	return fmt.Sprintf("%q is not an updatable column", column)
}

// ErrorKind separates wrong-type input from well-typed input in the wrong shape.
type ErrorKind string

const (
	KindType   ErrorKind = "type"
	KindFormat ErrorKind = "format"
)

// ValidationError describes the first invalid field found in a write.
// Error returns the catalog message unchanged.
type ValidationError struct {
	Kind    ErrorKind
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewTypeError builds the type error for field, embedding the value.
func NewTypeError(field string, value any) *ValidationError {
	return &ValidationError{
		Kind:    KindType,
		Field:   field,
		Value:   value,
		Message: NotStringMessage(value),
	}
}

// NewFormatError builds a format error carrying one of the fixed messages.
func NewFormatError(field string, value any, message string) *ValidationError {
	return &ValidationError{
		Kind:    KindFormat,
		Field:   field,
		Value:   value,
		Message: message,
	}
}
