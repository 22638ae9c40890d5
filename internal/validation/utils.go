package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/nyashahama/bkw-backend/internal/errs"
)

// Validatable is implemented by every request payload.
type Validatable interface {
	Validate() error
}

// Described payloads replace the generic "Validation failed" message with
// their own, e.g. "Missing required fields".
type Described interface {
	InvalidMessage() string
}

// BindDescribed payloads replace the message used when the request cannot be
// bound at all, e.g. a non-numeric path id.
type BindDescribed interface {
	BindErrorMessage() string
}

type CustomValidationError struct {
	Field   string
	Message string
}

type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report json names ("client_id") instead of Go names ("ClientID").
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "param", "query"} {
			name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return field.Name
	})

	return v
}

// Struct runs the shared validator over v.
func Struct(v any) error {
	return validate.Struct(v)
}

// BindAndValidate binds path params, query params and the JSON body into
// payload, then runs its Validate method.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		message := "Invalid request payload"
		var fieldErrors []errs.FieldError

		var bindErr *echo.BindingError
		if errors.As(err, &bindErr) {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: bindErr.Field,
				Error: "has an invalid value",
			})
		}

		if d, ok := payload.(BindDescribed); ok {
			message = d.BindErrorMessage()
		}

		return errs.NewBadRequestError(message, false, nil, fieldErrors, nil)
	}

	if err := payload.Validate(); err != nil {
		// Payloads may reject input with a ready-made HTTPError.
		var httpErr *errs.HTTPError
		if errors.As(err, &httpErr) {
			return httpErr
		}

		msg, fieldErrors := extractValidationError(err)
		if d, ok := payload.(Described); ok {
			msg = d.InvalidMessage()
		}
		return errs.NewBadRequestError(msg, true, nil, fieldErrors, nil)
	}

	return nil
}

func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	var customErrors CustomValidationErrors
	if errors.As(err, &customErrors) {
		for _, e := range customErrors {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: e.Field,
				Error: e.Message,
			})
		}
		return "Validation failed", fieldErrors
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return "Validation failed", []errs.FieldError{{Field: "body", Error: err.Error()}}
	}

	for _, err := range validationErrors {
		field := err.Field()
		var msg string

		switch err.Tag() {
		case "required":
			msg = "is required"

		case "min":
			if err.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", err.Param())
			}

		case "max":
			if err.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", err.Param())
			}

		case "gt":
			msg = fmt.Sprintf("must be greater than %s", err.Param())

		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", err.Param())

		case "email":
			msg = "must be a valid email address"

		case "dive":
			msg = "some items are invalid"

		default:
			if err.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", field, err.Tag(), err.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", field, err.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: field,
			Error: msg,
		})
	}

	return "Validation failed", fieldErrors
}
