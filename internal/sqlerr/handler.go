package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/deppfellow/visitor-log/internal/errs"
)

var (
	// constraintColumnPattern reads the column out of PostgreSQL's default
	// constraint names, which follow <table>_<column>_<suffix>:
	//   - visitors_name_key      (UNIQUE)
	//   - visitors_age_check     (CHECK)
	//   - visitors_name_not_null (NOT NULL, PostgreSQL 18+)
	//
	// Only the segment right before the suffix is taken, so a multi-word
	// column like first_name comes back as "name". No visitors column
	// contains an underscore.
	constraintColumnPattern = regexp.MustCompile(`_([^_]+)_(?:key|ukey|check|not_null)$`)

	// relationPattern pulls the table name out of a 42P01 message. The
	// driver leaves PgError.TableName empty for undefined relations.
	relationPattern = regexp.MustCompile(`relation "([^"]+)" does not exist`)
)

// ErrCode reports the mapped Code for a given error.
//
// Behavior:
//   - If err unwraps into *Error, return its Code.
//   - If err unwraps into a raw *pgconn.PgError, map its SQLSTATE.
//   - Otherwise return Other.
func ErrCode(err error) Code {
	var pgerr *Error
	if errors.As(err, &pgerr) {
		return pgerr.Code
	}

	var src *pgconn.PgError
	if errors.As(err, &src) {
		return MapCode(src.Code)
	}
	return Other
}

// ConvertPgError converts a pgconn.PgError (raw Postgres error) into *Error.
//
// SQLSTATE and severity are mapped into enums for easier switching; the
// original SQLSTATE and the driver error are kept for logs and Unwrap.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// generateErrorCode creates application error codes from DB errors.
//
// Output format:
//
//	<DOMAIN>_<ACTION>
//
// Examples:
//
//	visitors + CheckViolation        => VISITOR_INVALID
//	visitors + DatetimeFieldOverflow => VISITOR_INVALID
//	visitors + UndefinedTable        => VISITOR_TABLE_NOT_FOUND
//
// DOMAIN is the table name uppercased with a trailing S dropped, or RECORD
// when the driver reports no table. These codes are for machines; the
// message from formatUserFriendlyMessage is for people.
func generateErrorCode(tableName string, errType Code) string {
	if tableName == "" {
		tableName = "RECORD"
	}

	domain := strings.ToUpper(tableName)
	if strings.HasSuffix(domain, "S") && len(domain) > 1 {
		domain = domain[:len(domain)-1]
	}

	action := "ERROR"
	switch errType {
	case ForeignKeyViolation:
		action = "NOT_FOUND"
	case UniqueViolation:
		action = "ALREADY_EXISTS"
	case NotNullViolation:
		action = "REQUIRED"
	case CheckViolation, StringDataRightTruncation, NumericValueOutOfRange,
		InvalidDatetimeFormat, DatetimeFieldOverflow, InvalidTextRepresentation:
		// The value reached the database but the column rejected it.
		action = "INVALID"
	case UndefinedTable:
		// createTable has not been called yet.
		action = "TABLE_NOT_FOUND"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

func formatUserFriendlyMessage(sqlErr *Error) string {
	entityName := getEntityName(sqlErr.TableName, sqlErr.ColumnName)
	fieldName := humanizeText(sqlErr.ColumnName)

	switch sqlErr.Code {
	case ForeignKeyViolation:
		return fmt.Sprintf("The referenced %s does not exist", entityName)

	case UniqueViolation:
		return fmt.Sprintf("A %s with this identifier already exists", entityName)

	case NotNullViolation:
		if fieldName == "" {
			fieldName = "field"
		}
		return fmt.Sprintf("The %s is required", fieldName)

	case CheckViolation:
		if fieldName != "" {
			return fmt.Sprintf("The %s value does not meet required conditions", fieldName)
		}
		return "One or more values do not meet required conditions"

	case StringDataRightTruncation:
		return "A value is too long"

	case NumericValueOutOfRange:
		return "A numeric value is out of range"

	case InvalidDatetimeFormat, DatetimeFieldOverflow:
		// 22007/22008: the text matched YYYY-MM-DD or HH:MM but names no
		// real instant, e.g. 2024-02-30 or 25:61.
		return "A date or time value is not a valid calendar value"

	case InvalidTextRepresentation:
		return "A value has the wrong format"

	case UndefinedTable:
		// Example: "The visitors table does not exist"
		return fmt.Sprintf("The %s table does not exist", tableLabel(sqlErr.TableName))

	default:
		return "An error occurred while processing your request"
	}
}

// getEntityName prefers a "<entity>_id" column, then the singular table name.
func getEntityName(tableName, columnName string) string {
	if columnName != "" && strings.HasSuffix(strings.ToLower(columnName), "_id") {
		entity := strings.TrimSuffix(strings.ToLower(columnName), "_id")
		return humanizeText(entity)
	}

	if tableName != "" {
		entity := tableName
		if strings.HasSuffix(entity, "s") && len(entity) > 1 {
			entity = entity[:len(entity)-1]
		}
		return humanizeText(entity)
	}

	return "record"
}

func tableLabel(tableName string) string {
	if tableName == "" {
		return "requested"
	}
	return tableName
}

// humanizeText turns "first_name" into "First Name".
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// extractColumnFromConstraint infers a column name from a constraint name.
//
// Convention 1: unique_<table>_<column>, the last segment is the column.
// Convention 2: <table>_<column>_<key|ukey|check|not_null>, see
// constraintColumnPattern.
//
// Primary keys (visitors_pkey) and unknown names yield "".
func extractColumnFromConstraint(constraintName string) string {
	if constraintName == "" {
		return ""
	}

	if strings.HasPrefix(constraintName, "unique_") {
		parts := strings.Split(constraintName, "_")
		if len(parts) >= 3 {
			return parts[len(parts)-1]
		}
	}

	if matches := constraintColumnPattern.FindStringSubmatch(constraintName); len(matches) > 1 {
		return matches[1]
	}

	return ""
}

// HandleError converts a database error into an *errs.HTTPError.
//
// Mapping:
//   - already an *errs.HTTPError: returned unchanged
//   - foreign key, unique, not-null, check violations: 400
//   - data errors (truncation, range, datetime, text representation): 400
//   - undefined table: 404
//   - any other PostgreSQL error: opaque 500
//   - pgx.ErrNoRows / sql.ErrNoRows: 404
//   - anything else: opaque 500
//
// Driver messages never reach the client; the global error handler logs
// the original error.
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		sqlErr := ConvertPgError(pgerr)

		// CHECK and UNIQUE violations usually leave ColumnName empty;
		// recover it from the constraint name.
		if sqlErr.ColumnName == "" {
			sqlErr.ColumnName = extractColumnFromConstraint(sqlErr.ConstraintName)
		}
		// 42P01 only names the relation inside the message text.
		if sqlErr.Code == UndefinedTable && sqlErr.TableName == "" {
			if matches := relationPattern.FindStringSubmatch(sqlErr.Message); len(matches) > 1 {
				sqlErr.TableName = matches[1]
			}
		}

		errorCode := generateErrorCode(sqlErr.TableName, sqlErr.Code)
		userMessage := formatUserFriendlyMessage(sqlErr)

		switch sqlErr.Code {
		case ForeignKeyViolation:
			return errs.NewBadRequestError(userMessage, false, &errorCode, nil)

		case UniqueViolation:
			if sqlErr.ColumnName != "" {
				userMessage = strings.ReplaceAll(userMessage, "identifier", humanizeText(sqlErr.ColumnName))
			}
			return errs.NewBadRequestError(userMessage, true, &errorCode, nil)

		case NotNullViolation, CheckViolation:
			// Field-level error so clients can highlight the input,
			// same shape as a rejected request payload.
			var fieldErrors []errs.FieldError
			if sqlErr.ColumnName != "" {
				fieldErrors = []errs.FieldError{{
					Field: strings.ToLower(sqlErr.ColumnName),
					Error: userMessage,
				}}
			}
			return errs.NewBadRequestError(userMessage, true, &errorCode, fieldErrors)

		case StringDataRightTruncation, NumericValueOutOfRange,
			InvalidDatetimeFormat, DatetimeFieldOverflow, InvalidTextRepresentation:
			// The driver does not say which column failed, so no
			// field error is attached.
			return errs.NewBadRequestError(userMessage, true, &errorCode, nil)

		case UndefinedTable:
			// 404 rather than 500: the store is reachable, the
			// visitors table just has not been created yet.
			return errs.NewNotFoundError(userMessage, true, &errorCode)

		default:
			return errs.NewInternalServerError()
		}
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return errs.NewNotFoundError("Resource not found", false, nil)
	}

	return errs.NewInternalServerError()
}
