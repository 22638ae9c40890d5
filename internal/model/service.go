package model

import (
	"bytes"
	"encoding/json"

	"github.com/nyashahama/bkw-backend/internal/errs"
	"github.com/nyashahama/bkw-backend/internal/validation"
	"github.com/shopspring/decimal"
)

// SubcategoryInput is one element of the subcategories array of a new
// service. Missing fields reach the database as NULL and are rejected there.
type SubcategoryInput struct {
	Name             *string          `json:"name"`
	Price            *decimal.Decimal `json:"price"`
	ShortDescription *string          `json:"shortDescription"`
	File             *string          `json:"file"`
}

// CreateServicePayload accepts subcategories either as a JSON-encoded string
// holding an array (the form multipart-era clients send) or as a plain array.
type CreateServicePayload struct {
	Title         string          `json:"title" validate:"required"`
	Description   string          `json:"description" validate:"required"`
	UserID        int64           `json:"userId" validate:"required"`
	Subcategories json.RawMessage `json:"subcategories"`

	// Items is filled by Validate.
	Items []SubcategoryInput `json:"-"`
}

func (p *CreateServicePayload) Validate() error {
	if err := validation.Struct(p); err != nil {
		return err
	}

	raw := bytes.TrimSpace(p.Subcategories)
	if len(raw) > 0 && raw[0] == '"' {
		var encoded string
		if err := json.Unmarshal(raw, &encoded); err != nil {
			return errs.NewBadRequestError("Invalid subcategories format", true, nil, nil, nil)
		}
		raw = bytes.TrimSpace([]byte(encoded))
	}

	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return validation.CustomValidationErrors{{Field: "subcategories", Message: "is required"}}
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return errs.NewBadRequestError("Invalid subcategories format", true, nil, nil, nil)
	}
	if _, ok := decoded.([]any); !ok {
		return errs.NewBadRequestError("Subcategories must be an array", true, nil, nil, nil)
	}

	var items []SubcategoryInput
	if err := json.Unmarshal(raw, &items); err != nil {
		return errs.NewBadRequestError("Invalid subcategories format", true, nil, nil, nil)
	}
	p.Items = items

	return nil
}

func (p *CreateServicePayload) InvalidMessage() string {
	return "Missing required fields"
}

type ListServicesPayload struct{}

func (p *ListServicesPayload) Validate() error {
	return nil
}

type ServicesByUserPayload struct {
	UserID int64 `param:"userId"`
}

func (p *ServicesByUserPayload) Validate() error {
	return nil
}

func (p *ServicesByUserPayload) BindErrorMessage() string {
	return "Invalid user ID"
}

type DeleteServicePayload struct {
	ID int64 `param:"serviceId"`
}

func (p *DeleteServicePayload) Validate() error {
	return nil
}

func (p *DeleteServicePayload) BindErrorMessage() string {
	return "Invalid service ID"
}
