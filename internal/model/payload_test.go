package model

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/nyashahama/bkw-backend/internal/errs"
	"github.com/nyashahama/bkw-backend/internal/validation"
	"github.com/shopspring/decimal"
)

func TestCreateServicePayloadSubcategories(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantItems   int
		wantMessage string
		wantCustom  bool
	}{
		{name: "encoded string", raw: `"[{\"name\":\"A\",\"price\":10,\"shortDescription\":\"x\"},{\"name\":\"B\",\"price\":20,\"shortDescription\":\"y\"}]"`, wantItems: 2},
		{name: "plain array", raw: `[{"name":"A","price":"10.50","shortDescription":"x"}]`, wantItems: 1},
		{name: "empty array", raw: `"[]"`, wantItems: 0},
		{name: "garbage", raw: `"not json"`, wantMessage: "Invalid subcategories format"},
		{name: "object", raw: `"{\"name\":\"A\"}"`, wantMessage: "Subcategories must be an array"},
		{name: "number", raw: `7`, wantMessage: "Subcategories must be an array"},
		{name: "wrong element type", raw: `"[1,2]"`, wantMessage: "Invalid subcategories format"},
		{name: "missing", raw: ``, wantCustom: true},
		{name: "null", raw: `null`, wantCustom: true},
		{name: "empty string", raw: `""`, wantCustom: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &CreateServicePayload{
				Title:         "Catering",
				Description:   "Food",
				UserID:        1,
				Subcategories: json.RawMessage(tt.raw),
			}

			err := p.Validate()

			switch {
			case tt.wantMessage != "":
				var httpErr *errs.HTTPError
				if !errors.As(err, &httpErr) {
					t.Fatalf("expected HTTPError, got %v", err)
				}
				if httpErr.Status != http.StatusBadRequest || httpErr.Message != tt.wantMessage {
					t.Errorf("got %d %q", httpErr.Status, httpErr.Message)
				}
			case tt.wantCustom:
				var custom validation.CustomValidationErrors
				if !errors.As(err, &custom) {
					t.Fatalf("expected missing field error, got %v", err)
				}
			default:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if len(p.Items) != tt.wantItems {
					t.Errorf("items: got %d, want %d", len(p.Items), tt.wantItems)
				}
			}
		})
	}
}

func TestCreateServicePayloadParsesFields(t *testing.T) {
	p := &CreateServicePayload{
		Title:         "Photography",
		Description:   "Shoots",
		UserID:        3,
		Subcategories: json.RawMessage(`"[{\"name\":\"Full day\",\"price\":1500.5,\"shortDescription\":\"8h\",\"file\":\"a.png\"},{\"name\":\"Half\"}]"`),
	}
	if err := p.Validate(); err != nil {
		t.Fatal(err)
	}

	first := p.Items[0]
	if *first.Name != "Full day" || *first.ShortDescription != "8h" || *first.File != "a.png" {
		t.Errorf("unexpected first item: %+v", first)
	}
	if !first.Price.Equal(decimal.RequireFromString("1500.5")) {
		t.Errorf("price: got %s", first.Price)
	}

	second := p.Items[1]
	if second.Price != nil || second.File != nil {
		t.Errorf("absent fields must stay nil: %+v", second)
	}
}

func TestCreateServicePayloadRequiresScalarsFirst(t *testing.T) {
	p := &CreateServicePayload{Subcategories: json.RawMessage(`"garbage"`)}

	err := p.Validate()
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		t.Fatalf("missing title must be reported before subcategory parsing, got %q", httpErr.Message)
	}
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestRequiredFields(t *testing.T) {
	status := false
	deposit := decimal.NewFromInt(100)
	zero := decimal.Zero

	tests := []struct {
		name    string
		payload validation.Validatable
		wantErr bool
	}{
		{"user ok", &CreateUserPayload{Email: "a@b.c", FullName: "A", Password: "pw"}, false},
		{"user missing password", &CreateUserPayload{Email: "a@b.c", FullName: "A"}, true},
		{"user bad role", &CreateUserPayload{Email: "a@b.c", FullName: "A", Password: "pw", Role: ptr("admin")}, true},
		{"user vendor role", &CreateUserPayload{Email: "a@b.c", FullName: "A", Password: "pw", Role: ptr(RoleVendor)}, false},
		{"login missing email", &LoginPayload{Password: "pw"}, true},
		{"appointment ok", &CreateAppointmentPayload{Date: "2025-06-01", Time: "10:00", ClientID: 1, VendorID: 2}, false},
		{"appointment missing vendor", &CreateAppointmentPayload{Date: "2025-06-01", Time: "10:00", ClientID: 1}, true},
		{"status false allowed", &UpdateAppointmentStatusPayload{ID: 1, Status: &status}, false},
		{"status missing", &UpdateAppointmentStatusPayload{ID: 1}, true},
		{"booking missing sub", &CreateBookingPayload{ServiceID: 1, UserID: 1}, true},
		{"booking status ok", &UpdateBookingStatusPayload{ID: 1, Status: BookingInProgress}, false},
		{"booking status unknown", &UpdateBookingStatusPayload{ID: 1, Status: "cancelled"}, true},
		{"payment ok", &CreatePaymentPayload{BookingID: 1, Deposit: &deposit, ReferenceNumber: "R1"}, false},
		{"payment zero deposit", &CreatePaymentPayload{BookingID: 1, Deposit: &zero, ReferenceNumber: "R1"}, true},
		{"payment missing deposit", &CreatePaymentPayload{BookingID: 1, ReferenceNumber: "R1"}, true},
		{"plan ok", &CreateWeddingPlanPayload{UserID: 4}, false},
		{"plan missing user", &CreateWeddingPlanPayload{Venue: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.payload.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func ptr[T any](v T) *T {
	return &v
}
