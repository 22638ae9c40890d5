package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

type notePayload struct {
	Name string  `json:"name"`
	Note *string `json:"note"`
}

func (p *notePayload) Validate() error {
	return nil
}

func TestHandleAllocatesPayloadPerRequest(t *testing.T) {
	var calls int
	endpoint := Handle(
		Handler{},
		func(c echo.Context, payload *notePayload) (*notePayload, error) {
			calls++
			return payload, nil
		},
		http.StatusOK,
	)

	e := echo.New()
	e.POST("/notes", endpoint)

	send := func(body string) notePayload {
		t.Helper()
		req := httptest.NewRequest(http.MethodPost, "/notes", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status: %d body: %s", rec.Code, rec.Body.String())
		}
		var got notePayload
		if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
			t.Fatal(err)
		}
		return got
	}

	first := send(`{"name":"venue","note":"garden"}`)
	if first.Note == nil || *first.Note != "garden" {
		t.Fatalf("first: %+v", first)
	}

	second := send(`{"name":"decor"}`)
	if second.Name != "decor" || second.Note != nil {
		t.Errorf("second request saw fields of the first: %+v", second)
	}
	if calls != 2 {
		t.Errorf("calls: %d", calls)
	}
}
