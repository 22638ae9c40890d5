// Package sqlerr translates PostgreSQL driver errors into API errors.
//
// pgconn.PgError carries a five character SQLSTATE. This package maps the
// states the API cares about onto a small Code enum and turns them into
// errs.HTTPError values with humanized, table-aware messages.
package sqlerr

import "fmt"

// Code is the normalized class of a database error.
type Code string

const (
	Other                     Code = "other"
	NotNullViolation          Code = "not_null_violation"
	ForeignKeyViolation       Code = "foreign_key_violation"
	UniqueViolation           Code = "unique_violation"
	CheckViolation            Code = "check_violation"
	ExclusionViolation        Code = "exclusion_violation"
	InvalidTextRepresentation Code = "invalid_text_representation"
	InvalidDatetimeFormat     Code = "invalid_datetime_format"
	DatetimeFieldOverflow     Code = "datetime_field_overflow"
	NumericValueOutOfRange    Code = "numeric_value_out_of_range"
	StringDataRightTruncation Code = "string_data_right_truncation"
	DuplicateDatabase         Code = "duplicate_database"
	DuplicateObject           Code = "duplicate_object"
)

// SQLSTATE values, see https://www.postgresql.org/docs/current/errcodes-appendix.html
var pgCodes = map[string]Code{
	"23502": NotNullViolation,
	"23503": ForeignKeyViolation,
	"23505": UniqueViolation,
	"23514": CheckViolation,
	"23P01": ExclusionViolation,
	"22P02": InvalidTextRepresentation,
	"22007": InvalidDatetimeFormat,
	"22008": DatetimeFieldOverflow,
	"22003": NumericValueOutOfRange,
	"22001": StringDataRightTruncation,
	"42P04": DuplicateDatabase,
	"42710": DuplicateObject,
}

// MapCode converts a SQLSTATE into a Code.
func MapCode(sqlState string) Code {
	if code, ok := pgCodes[sqlState]; ok {
		return code
	}
	return Other
}

// Severity mirrors the PostgreSQL message severity.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityFatal   Severity = "FATAL"
	SeverityPanic   Severity = "PANIC"
	SeverityWarning Severity = "WARNING"
	SeverityNotice  Severity = "NOTICE"
	SeverityOther   Severity = "OTHER"
)

func MapSeverity(severity string) Severity {
	switch Severity(severity) {
	case SeverityError, SeverityFatal, SeverityPanic, SeverityWarning, SeverityNotice:
		return Severity(severity)
	default:
		return SeverityOther
	}
}

// Error is the driver-independent view of a database error.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string
	driverErr      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Severity, e.DatabaseCode, e.Message)
}

func (e *Error) Unwrap() error {
	return e.driverErr
}
