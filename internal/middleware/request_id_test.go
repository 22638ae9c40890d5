package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/nyashahama/bkw-backend/internal/errs"
)

func TestRequestID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "absent", incoming: "", keep: false},
		{name: "client supplied", incoming: "wedding-42", keep: true},
		{name: "with spaces", incoming: "a b", keep: false},
		{name: "too long", incoming: strings.Repeat("x", maxRequestIDLength+1), keep: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(RequestIDHeader, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seen string
			err := RequestID()(func(c echo.Context) error {
				seen = GetRequestID(c)
				return nil
			})(c)
			if err != nil {
				t.Fatal(err)
			}

			if seen == "" || rec.Header().Get(RequestIDHeader) != seen {
				t.Fatalf("context %q, header %q", seen, rec.Header().Get(RequestIDHeader))
			}
			if (seen == tt.incoming) != tt.keep {
				t.Errorf("got %q for incoming %q", seen, tt.incoming)
			}
		})
	}
}

func TestServerSide(t *testing.T) {
	if serverSide(errs.NewNotFoundError("Booking not found", true, nil)) {
		t.Error("404 must not be noticed")
	}
	if !serverSide(errs.NewInternalServerError()) {
		t.Error("500 must be noticed")
	}
	if serverSide(echo.ErrNotFound) {
		t.Error("echo 404 must not be noticed")
	}
	if serverSide(fmt.Errorf("failed to collect row from table:bookings: %w", pgx.ErrNoRows)) {
		t.Error("missing row must not be noticed")
	}
	if !serverSide(http.ErrServerClosed) {
		t.Error("unknown errors must be noticed")
	}
}
