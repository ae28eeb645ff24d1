package validation

import (
	"fmt"
	"regexp"

	"github.com/deppfellow/visitor-log/internal/model/visitor"
	"github.com/go-playground/validator/v10"
)

var (
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern = regexp.MustCompile(`^\d{2}:\d{2}$`)
	ageRule     = fmt.Sprintf("min=0,max=%d", visitor.MaxAge)
)

// fields holds the custom tags used for single-value checks:
//   - visitdate: YYYY-MM-DD
//   - visittime: HH:MM (24-hour, zero-padded)
var fields = newFieldValidator()

func newFieldValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	if err := v.RegisterValidation("visitdate", func(fl validator.FieldLevel) bool {
		return datePattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	if err := v.RegisterValidation("visittime", func(fl validator.FieldLevel) bool {
		return timePattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	return v
}

// ValidateVisitor checks the writable fields of a new visitor and returns the
// first violation as a *visitor.ValidationError.
//
// Order: name type, age, date type, date format, time type, time format,
// assistant type, comments type.
func ValidateVisitor(n visitor.NewVisitor) error {
	if err := validateString("name", n.Name); err != nil {
		return err
	}
	if err := validateAge(n.Age); err != nil {
		return err
	}
	if err := validateDate(n.Date); err != nil {
		return err
	}
	if err := validateTime(n.Time); err != nil {
		return err
	}
	if err := validateString("assistant", n.Assistant); err != nil {
		return err
	}
	return validateString("comments", n.Comments)
}

// ValidateColumnValue applies the insert rule of a single column to an
// update value.
func ValidateColumnValue(column visitor.Column, value any) error {
	switch column {
	case visitor.ColumnAge:
		return validateAge(value)
	case visitor.ColumnDate:
		return validateDate(value)
	case visitor.ColumnTime:
		return validateTime(value)
	case visitor.ColumnName, visitor.ColumnAssistant, visitor.ColumnComments:
		return validateString(string(column), value)
	default:
		_, err := visitor.ParseColumn(string(column))
		return err
	}
}

func validateString(field string, value any) error {
	if _, ok := value.(string); !ok {
		return visitor.NewTypeError(field, value)
	}
	return nil
}

func validateAge(value any) error {
	age, ok := visitor.WholeNumber(value)
	if !ok {
		return visitor.NewFormatError("age", value, visitor.AgeFormatMessage)
	}
	if err := fields.Var(age, ageRule); err != nil {
		return visitor.NewFormatError("age", value, visitor.AgeFormatMessage)
	}
	return nil
}

func validateDate(value any) error {
	date, ok := value.(string)
	if !ok {
		return visitor.NewTypeError("date", value)
	}
	if err := fields.Var(date, "visitdate"); err != nil {
		return visitor.NewFormatError("date", value, visitor.DateFormatMessage)
	}
	return nil
}

func validateTime(value any) error {
	t, ok := value.(string)
	if !ok {
		return visitor.NewTypeError("time", value)
	}
	if err := fields.Var(t, "visittime"); err != nil {
		return visitor.NewFormatError("time", value, visitor.TimeFormatMessage)
	}
	return nil
}
