package errs

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
)

func TestHTTPErrorBody(t *testing.T) {
	body, err := json.Marshal(NewNotFoundError("User not found", false, nil))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if got["error"] != "User not found" {
		t.Errorf("error: got %v", got["error"])
	}
	if got["code"] != "NOT_FOUND" {
		t.Errorf("code: got %v", got["code"])
	}
	if got["status"] != float64(http.StatusNotFound) {
		t.Errorf("status: got %v", got["status"])
	}
	if _, ok := got["errors"]; ok {
		t.Error("empty field errors should be omitted")
	}
}

func TestConstructors(t *testing.T) {
	custom := "USER_ALREADY_EXISTS"
	tests := []struct {
		name   string
		err    *HTTPError
		status int
		code   string
	}{
		{"unauthorized", NewUnauthorizedError("Invalid email or password", false), 401, "UNAUTHORIZED"},
		{"forbidden", NewForbiddenError("nope", false), 403, "FORBIDDEN"},
		{"bad request", NewBadRequestError("Missing required fields", false, nil, nil, nil), 400, "BAD_REQUEST"},
		{"custom code", NewBadRequestError("dup", true, &custom, nil, nil), 400, custom},
		{"too many", NewTooManyRequestsError("Too many requests"), 429, "TOO_MANY_REQUESTS"},
		{"internal", NewInternalServerError(), 500, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Status != tt.status {
				t.Errorf("status: got %d, want %d", tt.err.Status, tt.status)
			}
			if tt.err.Code != tt.code {
				t.Errorf("code: got %s, want %s", tt.err.Code, tt.code)
			}
		})
	}
}

func TestInternalServerErrorMessage(t *testing.T) {
	if got := NewInternalServerError().Message; got != "Internal Server Error" {
		t.Errorf("message: got %q", got)
	}
}

func TestIsAndWithMessage(t *testing.T) {
	base := NewNotFoundError("Resource not found", false, nil)
	renamed := base.WithMessage("Appointment not found")

	if renamed.Message != "Appointment not found" || base.Message != "Resource not found" {
		t.Error("WithMessage must copy, not mutate")
	}
	if !errors.Is(renamed, &HTTPError{}) {
		t.Error("errors.Is should match any *HTTPError")
	}
}
