package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/deppfellow/visitor-log/internal/errs"
)

func TestMapCode(t *testing.T) {
	tests := map[string]Code{
		"23502": NotNullViolation,
		"23514": CheckViolation,
		"22008": DatetimeFieldOverflow,
		"42P01": UndefinedTable,
		"XX000": Other,
		"":      Other,
	}

	for state, want := range tests {
		if got := MapCode(state); got != want {
			t.Errorf("MapCode(%q) = %q, want %q", state, got, want)
		}
	}
}

func TestMapSeverity(t *testing.T) {
	if got := MapSeverity("fatal"); got != SeverityFatal {
		t.Errorf("MapSeverity(fatal) = %q", got)
	}
	if got := MapSeverity("bogus"); got != SeverityError {
		t.Errorf("MapSeverity(bogus) = %q", got)
	}
}

func TestExtractColumnFromConstraint(t *testing.T) {
	tests := map[string]string{
		"visitors_age_check":     "age",
		"visitors_name_not_null": "name",
		"visitors_name_key":      "name",
		"unique_visitors_name":   "name",
		"visitors_pkey":          "",
		"":                       "",
	}

	for constraint, want := range tests {
		if got := extractColumnFromConstraint(constraint); got != want {
			t.Errorf("extractColumnFromConstraint(%q) = %q, want %q", constraint, got, want)
		}
	}
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		status   int
		code     string
		message  string
		hasField bool
	}{
		{
			name:     "check violation",
			err:      &pgconn.PgError{Code: "23514", Severity: "ERROR", TableName: "visitors", ConstraintName: "visitors_age_check"},
			status:   http.StatusBadRequest,
			code:     "VISITOR_INVALID",
			message:  "The Age value does not meet required conditions",
			hasField: true,
		},
		{
			name:     "not null",
			err:      &pgconn.PgError{Code: "23502", TableName: "visitors", ColumnName: "assistant"},
			status:   http.StatusBadRequest,
			code:     "VISITOR_REQUIRED",
			message:  "The Assistant is required",
			hasField: true,
		},
		{
			name:    "calendar overflow",
			err:     fmt.Errorf("insert visitor: %w", &pgconn.PgError{Code: "22008", Message: "date/time field value out of range"}),
			status:  http.StatusBadRequest,
			code:    "RECORD_INVALID",
			message: "A date or time value is not a valid calendar value",
		},
		{
			name:    "invalid datetime",
			err:     &pgconn.PgError{Code: "22007", Message: `invalid input syntax for type time: "25:61"`, TableName: "visitors"},
			status:  http.StatusBadRequest,
			code:    "VISITOR_INVALID",
			message: "A date or time value is not a valid calendar value",
		},
		{
			name:    "missing table",
			err:     &pgconn.PgError{Code: "42P01", Message: `relation "visitors" does not exist`},
			status:  http.StatusNotFound,
			code:    "VISITOR_TABLE_NOT_FOUND",
			message: "The visitors table does not exist",
		},
		{
			name:    "unknown pg error",
			err:     &pgconn.PgError{Code: "XX000", Message: "internal"},
			status:  http.StatusInternalServerError,
			code:    "INTERNAL_SERVER_ERROR",
			message: "Internal Server Error",
		},
		{
			name:    "no rows",
			err:     pgx.ErrNoRows,
			status:  http.StatusNotFound,
			code:    "NOT_FOUND",
			message: "Resource not found",
		},
		{
			name:    "plain error",
			err:     errors.New("connection reset"),
			status:  http.StatusInternalServerError,
			code:    "INTERNAL_SERVER_ERROR",
			message: "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var httpErr *errs.HTTPError
			if !errors.As(HandleError(tt.err), &httpErr) {
				t.Fatalf("HandleError did not return *errs.HTTPError")
			}

			if httpErr.Status != tt.status || httpErr.Code != tt.code || httpErr.Message != tt.message {
				t.Errorf("got %d/%s/%q, want %d/%s/%q",
					httpErr.Status, httpErr.Code, httpErr.Message, tt.status, tt.code, tt.message)
			}
			if (len(httpErr.Errors) > 0) != tt.hasField {
				t.Errorf("field errors = %v, want present=%v", httpErr.Errors, tt.hasField)
			}
		})
	}
}

func TestHandleErrorKeepsHTTPError(t *testing.T) {
	original := errs.NewNotFoundError("Visitor not found", true, nil)
	if got := HandleError(original); got != original {
		t.Errorf("HandleError rewrapped an HTTPError: %v", got)
	}
}

func TestErrCode(t *testing.T) {
	wrapped := fmt.Errorf("update: %w", &pgconn.PgError{Code: "23514"})
	if got := ErrCode(wrapped); got != CheckViolation {
		t.Errorf("ErrCode = %q", got)
	}
	if got := ErrCode(errors.New("x")); got != Other {
		t.Errorf("ErrCode(plain) = %q", got)
	}
}
