package validation

import (
	"errors"
	"testing"

	"github.com/deppfellow/visitor-log/internal/model/visitor"
)

func validVisitor() visitor.NewVisitor {
	return visitor.NewVisitor{
		Name:      "Bend Over",
		Age:       float64(25),
		Date:      "2024-05-13",
		Time:      "09:00",
		Assistant: "Jane Smith",
		Comments:  "Interested in programming and designing courses",
	}
}

func TestValidateVisitorAcceptsValidInput(t *testing.T) {
	if err := ValidateVisitor(validVisitor()); err != nil {
		t.Fatalf("expected valid visitor, got %v", err)
	}
}

func TestValidateVisitorRejectsInvalidFields(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(v *visitor.NewVisitor)
		field    string
		kind     visitor.ErrorKind
		expected string
	}{
		{
			name:     "name is not a string",
			mutate:   func(v *visitor.NewVisitor) { v.Name = float64(123) },
			field:    "name",
			kind:     visitor.KindType,
			expected: "123 is not a string",
		},
		{
			name:     "age is negative",
			mutate:   func(v *visitor.NewVisitor) { v.Age = float64(-1) },
			field:    "age",
			kind:     visitor.KindFormat,
			expected: visitor.AgeFormatMessage,
		},
		{
			name:     "age is above the maximum",
			mutate:   func(v *visitor.NewVisitor) { v.Age = 151 },
			field:    "age",
			kind:     visitor.KindFormat,
			expected: visitor.AgeFormatMessage,
		},
		{
			name:     "age is fractional",
			mutate:   func(v *visitor.NewVisitor) { v.Age = 25.5 },
			field:    "age",
			kind:     visitor.KindFormat,
			expected: visitor.AgeFormatMessage,
		},
		{
			name:     "age is text",
			mutate:   func(v *visitor.NewVisitor) { v.Age = "25" },
			field:    "age",
			kind:     visitor.KindFormat,
			expected: visitor.AgeFormatMessage,
		},
		{
			name:     "date is not a string",
			mutate:   func(v *visitor.NewVisitor) { v.Date = float64(1985) },
			field:    "date",
			kind:     visitor.KindType,
			expected: "1985 is not a string",
		},
		{
			name:     "date is in the wrong format",
			mutate:   func(v *visitor.NewVisitor) { v.Date = "04-12-2022" },
			field:    "date",
			kind:     visitor.KindFormat,
			expected: visitor.DateFormatMessage,
		},
		{
			name:     "time is not a string",
			mutate:   func(v *visitor.NewVisitor) { v.Time = float64(7) },
			field:    "time",
			kind:     visitor.KindType,
			expected: "7 is not a string",
		},
		{
			name:     "time is in the wrong format",
			mutate:   func(v *visitor.NewVisitor) { v.Time = "10:1" },
			field:    "time",
			kind:     visitor.KindFormat,
			expected: visitor.TimeFormatMessage,
		},
		{
			name:     "assistant is not a string",
			mutate:   func(v *visitor.NewVisitor) { v.Assistant = float64(123) },
			field:    "assistant",
			kind:     visitor.KindType,
			expected: "123 is not a string",
		},
		{
			name:     "comments is missing",
			mutate:   func(v *visitor.NewVisitor) { v.Comments = nil },
			field:    "comments",
			kind:     visitor.KindType,
			expected: "null is not a string",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := validVisitor()
			tt.mutate(&v)

			err := ValidateVisitor(v)

			var vErr *visitor.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected *visitor.ValidationError, got %v", err)
			}
			if vErr.Field != tt.field {
				t.Errorf("field = %q, want %q", vErr.Field, tt.field)
			}
			if vErr.Kind != tt.kind {
				t.Errorf("kind = %q, want %q", vErr.Kind, tt.kind)
			}
			if err.Error() != tt.expected {
				t.Errorf("message = %q, want %q", err.Error(), tt.expected)
			}
		})
	}
}

func TestValidateVisitorReportsFirstFailure(t *testing.T) {
	v := validVisitor()
	v.Date = "13/05/2024"
	v.Time = 9
	v.Comments = 1

	err := ValidateVisitor(v)
	if err == nil || err.Error() != visitor.DateFormatMessage {
		t.Fatalf("expected date format error first, got %v", err)
	}
}

func TestValidateVisitorAgeBoundaries(t *testing.T) {
	for _, age := range []any{0, float64(0), 150, int64(42)} {
		v := validVisitor()
		v.Age = age
		if err := ValidateVisitor(v); err != nil {
			t.Errorf("age %v: unexpected error %v", age, err)
		}
	}
}

func TestValidateColumnValue(t *testing.T) {
	tests := []struct {
		column  visitor.Column
		value   any
		wantErr string
	}{
		{visitor.ColumnName, "Teddy Bear", ""},
		{visitor.ColumnName, float64(5), "5 is not a string"},
		{visitor.ColumnAge, float64(40), ""},
		{visitor.ColumnAge, float64(-3), visitor.AgeFormatMessage},
		{visitor.ColumnDate, "2024-06-08", ""},
		{visitor.ColumnDate, "2024/06/08", visitor.DateFormatMessage},
		{visitor.ColumnTime, "23:59", ""},
		{visitor.ColumnTime, "9:00", visitor.TimeFormatMessage},
		{visitor.ColumnAssistant, "Jane Smith", ""},
		{visitor.ColumnComments, true, "true is not a string"},
		{visitor.Column("id"), "1", visitor.InvalidColumnMessage("id")},
	}

	for _, tt := range tests {
		err := ValidateColumnValue(tt.column, tt.value)
		switch {
		case tt.wantErr == "" && err != nil:
			t.Errorf("%s=%v: unexpected error %v", tt.column, tt.value, err)
		case tt.wantErr != "" && (err == nil || err.Error() != tt.wantErr):
			t.Errorf("%s=%v: got %v, want %q", tt.column, tt.value, err, tt.wantErr)
		}
	}
}

func TestFromVisitorError(t *testing.T) {
	err := FromVisitorError(visitor.NewFormatError("time", "10:1", visitor.TimeFormatMessage))

	var custom CustomValidationErrors
	if !errors.As(err, &custom) {
		t.Fatalf("expected CustomValidationErrors, got %T", err)
	}
	if len(custom) != 1 || custom[0].Field != "time" || custom[0].Message != visitor.TimeFormatMessage {
		t.Errorf("unexpected custom errors: %+v", custom)
	}
	if custom.Error() != visitor.TimeFormatMessage {
		t.Errorf("Error() = %q, want %q", custom.Error(), visitor.TimeFormatMessage)
	}

	plain := errors.New("boom")
	if got := FromVisitorError(plain); got != plain {
		t.Errorf("expected non-visitor error to pass through, got %v", got)
	}
}
