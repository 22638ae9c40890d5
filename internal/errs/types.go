package errs

import "strings"

// FieldError represents a field-level validation error.
//
//	{ "field": "email", "error": "is required" }
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// ActionType is a string-based enum describing what the client should do.
type ActionType string

const (
	ActionTypeRedirect ActionType = "redirect"
)

// Action is an optional instruction for the client (e.g. redirect to login).
type Action struct {
	Type    ActionType `json:"type"`
	Message string     `json:"message"`
	Value   string     `json:"value"`
}

// HTTPError is the error type every handler returns to the client.
//
// The human message is serialized under "error", which is the body shape
// existing clients read. Code is a stable, machine-readable kind such as
// "NOT_FOUND" or "USER_ALREADY_EXISTS".
//
// Override marks messages that are safe to show verbatim (e.g. humanized
// constraint violations) as opposed to generic status text.
type HTTPError struct {
	Message  string       `json:"error"`
	Code     string       `json:"code"`
	Status   int          `json:"status"`
	Override bool         `json:"-"`
	Errors   []FieldError `json:"errors,omitempty"`
	Action   *Action      `json:"action,omitempty"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError. It does not compare fields.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)

	return ok
}

// WithMessage returns a copy of e with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:     e.Code,
		Message:  message,
		Status:   e.Status,
		Override: e.Override,
		Errors:   e.Errors,
		Action:   e.Action,
	}
}

// MakeUpperCaseWithUnderscores turns "Bad Request" into "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
