package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/nyashahama/bkw-backend/internal/errs"
)

type itemPayload struct {
	ID   int64  `param:"id"`
	Name string `json:"name" validate:"required"`
}

func (p *itemPayload) Validate() error {
	return Struct(p)
}

func (p *itemPayload) InvalidMessage() string {
	return "Name is required"
}

func (p *itemPayload) BindErrorMessage() string {
	return "Invalid item ID"
}

type rejectingPayload struct{}

func (p *rejectingPayload) Validate() error {
	return errs.NewBadRequestError("Nope", true, nil, nil, nil)
}

func newContext(method, id, body string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(method, "/items/"+id, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/items/:id")
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c
}

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *errs.HTTPError, got %v", err)
	}
	return httpErr
}

func TestBindAndValidate(t *testing.T) {
	p := &itemPayload{}
	if err := BindAndValidate(newContext(http.MethodPost, "7", `{"name":"veil"}`), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != 7 || p.Name != "veil" {
		t.Errorf("bound payload: %+v", p)
	}
}

func TestBindAndValidateBindFailure(t *testing.T) {
	err := BindAndValidate(newContext(http.MethodPost, "abc", `{"name":"veil"}`), &itemPayload{})

	httpErr := asHTTPError(t, err)
	if httpErr.Status != http.StatusBadRequest || httpErr.Message != "Invalid item ID" {
		t.Errorf("got %d %q", httpErr.Status, httpErr.Message)
	}
}

func TestBindAndValidateMissingField(t *testing.T) {
	err := BindAndValidate(newContext(http.MethodPost, "7", `{}`), &itemPayload{})

	httpErr := asHTTPError(t, err)
	if httpErr.Message != "Name is required" {
		t.Errorf("message: got %q", httpErr.Message)
	}
	if len(httpErr.Errors) != 1 || httpErr.Errors[0].Field != "name" {
		t.Errorf("field errors: got %+v", httpErr.Errors)
	}
}

func TestBindAndValidatePassesHTTPErrorThrough(t *testing.T) {
	err := BindAndValidate(newContext(http.MethodPost, "7", `{}`), &rejectingPayload{})

	if got := asHTTPError(t, err).Message; got != "Nope" {
		t.Errorf("message: got %q", got)
	}
}

func TestCustomValidationErrors(t *testing.T) {
	msg, fields := extractValidationError(CustomValidationErrors{{Field: "deposit", Message: "is required"}})
	if msg != "Validation failed" || len(fields) != 1 || fields[0].Field != "deposit" {
		t.Errorf("got %q %+v", msg, fields)
	}
}
