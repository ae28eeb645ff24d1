package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestConstructors(t *testing.T) {
	custom := "VISITOR_INVALID"

	tests := []struct {
		name     string
		err      *HTTPError
		status   int
		code     string
		override bool
	}{
		{"bad request", NewBadRequestError("bad", true, nil, nil), http.StatusBadRequest, "BAD_REQUEST", true},
		{"bad request custom code", NewBadRequestError("bad", false, &custom, nil), http.StatusBadRequest, custom, false},
		{"not found", NewNotFoundError("Visitor not found", true, nil), http.StatusNotFound, "NOT_FOUND", true},
		{"too many requests", NewTooManyRequestsError("slow down"), http.StatusTooManyRequests, "TOO_MANY_REQUESTS", true},
		{"service unavailable", NewServiceUnavailableError("down"), http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", false},
		{"internal", NewInternalServerError(), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Status != tt.status || tt.err.Code != tt.code || tt.err.Override != tt.override {
				t.Errorf("got %d/%s/%v, want %d/%s/%v",
					tt.err.Status, tt.err.Code, tt.err.Override, tt.status, tt.code, tt.override)
			}
		})
	}
}

func TestInternalServerErrorHidesCause(t *testing.T) {
	if got := NewInternalServerError().Error(); got != "Internal Server Error" {
		t.Errorf("Error() = %q", got)
	}
}

func TestHTTPErrorIs(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", NewNotFoundError("Visitor not found", true, nil))

	if !errors.Is(wrapped, &HTTPError{}) {
		t.Error("errors.Is should match any *HTTPError")
	}

	var httpErr *HTTPError
	if !errors.As(wrapped, &httpErr) || httpErr.Status != http.StatusNotFound {
		t.Errorf("errors.As = %+v", httpErr)
	}
}

func TestWithMessageCopies(t *testing.T) {
	base := NewBadRequestError("original", true, nil, []FieldError{{Field: "age", Error: "bad"}})
	changed := base.WithMessage("changed")

	if base.Message != "original" || changed.Message != "changed" {
		t.Errorf("messages = %q/%q", base.Message, changed.Message)
	}
	if changed.Status != base.Status || len(changed.Errors) != 1 {
		t.Errorf("copy lost fields: %+v", changed)
	}
}

func TestValidationError(t *testing.T) {
	err := ValidationError(errors.New("age: min"))
	if err.Message != "Validation failed: age: min" || err.Status != http.StatusBadRequest {
		t.Errorf("unexpected error %+v", err)
	}
}
