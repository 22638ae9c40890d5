package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/nyashahama/bkw-backend/internal/errs"
)

func asHTTP(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *errs.HTTPError, got %T", err)
	}
	return httpErr
}

func TestHandleErrorUniqueEmail(t *testing.T) {
	err := HandleError(&pgconn.PgError{
		Code:           "23505",
		Severity:       "ERROR",
		TableName:      "users",
		ConstraintName: "users_email_key",
	})

	httpErr := asHTTP(t, err)
	if httpErr.Status != http.StatusBadRequest {
		t.Errorf("status: got %d", httpErr.Status)
	}
	if httpErr.Code != "USER_ALREADY_EXISTS" {
		t.Errorf("code: got %s", httpErr.Code)
	}
	if httpErr.Message != "A User with this Email already exists" {
		t.Errorf("message: got %q", httpErr.Message)
	}
}

func TestHandleErrorForeignKey(t *testing.T) {
	err := HandleError(fmt.Errorf("insert booking: %w", &pgconn.PgError{
		Code:       "23503",
		TableName:  "bookings",
		ColumnName: "service_id",
	}))

	httpErr := asHTTP(t, err)
	if httpErr.Status != http.StatusBadRequest || httpErr.Code != "BOOKING_NOT_FOUND" {
		t.Errorf("got %d %s", httpErr.Status, httpErr.Code)
	}
	if httpErr.Message != "The referenced Service does not exist" {
		t.Errorf("message: got %q", httpErr.Message)
	}
}

func TestHandleErrorNotNull(t *testing.T) {
	httpErr := asHTTP(t, HandleError(&pgconn.PgError{
		Code:       "23502",
		TableName:  "subcategories",
		ColumnName: "price",
	}))

	if httpErr.Status != http.StatusBadRequest {
		t.Errorf("status: got %d", httpErr.Status)
	}
	if len(httpErr.Errors) != 1 || httpErr.Errors[0].Field != "price" {
		t.Errorf("field errors: got %+v", httpErr.Errors)
	}
}

func TestHandleErrorInvalidInput(t *testing.T) {
	httpErr := asHTTP(t, HandleError(&pgconn.PgError{Code: "22007", TableName: "appointments"}))
	if httpErr.Status != http.StatusBadRequest || httpErr.Code != "APPOINTMENT_INVALID" {
		t.Errorf("got %d %s", httpErr.Status, httpErr.Code)
	}
}

func TestHandleErrorFallbacks(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"no rows", pgx.ErrNoRows, http.StatusNotFound},
		{"unknown sqlstate", &pgconn.PgError{Code: "53300"}, http.StatusInternalServerError},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
		{"http error passthrough", errs.NewUnauthorizedError("x", false), http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := asHTTP(t, HandleError(tt.err)).Status; got != tt.status {
				t.Errorf("status: got %d, want %d", got, tt.status)
			}
		})
	}
}

func TestNoRowsWithTableHint(t *testing.T) {
	tests := map[string]string{
		"failed to collect row from table:users for id=5":       "User not found",
		"failed to collect row from table:appointments for id=9": "Appointment not found",
		"failed to collect row from table:bookings":              "Booking not found",
		"table:wedding_plans":                                    "Wedding Plan not found",
		"failed to load":                                         "Resource not found",
	}

	for prefix, want := range tests {
		httpErr := asHTTP(t, HandleError(fmt.Errorf("%s: %w", prefix, pgx.ErrNoRows)))
		if httpErr.Status != http.StatusNotFound || httpErr.Message != want {
			t.Errorf("%q: got %d %q, want %q", prefix, httpErr.Status, httpErr.Message, want)
		}
	}
}

func TestIs(t *testing.T) {
	err := fmt.Errorf("create database: %w", &pgconn.PgError{Code: "42P04"})
	if !Is(err, DuplicateDatabase) {
		t.Error("expected duplicate database")
	}
	if Is(errors.New("x"), DuplicateDatabase) {
		t.Error("plain error must not match")
	}
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	tests := map[string]string{
		"users_email_key":    "email",
		"unique_users_email": "email",
		"":                   "",
		"pk":                 "",
	}
	for in, want := range tests {
		if got := extractColumnForUniqueViolation(in); got != want {
			t.Errorf("%q: got %q, want %q", in, got, want)
		}
	}
}
