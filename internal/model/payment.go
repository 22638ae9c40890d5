package model

import (
	"github.com/nyashahama/bkw-backend/internal/validation"
	"github.com/shopspring/decimal"
)

type CreatePaymentPayload struct {
	BookingID       int64            `json:"booking_id" validate:"required"`
	Deposit         *decimal.Decimal `json:"deposit" validate:"required"`
	ReferenceNumber string           `json:"reference_number" validate:"required"`
}

func (p *CreatePaymentPayload) Validate() error {
	if err := validation.Struct(p); err != nil {
		return err
	}
	if p.Deposit.IsZero() {
		return validation.CustomValidationErrors{{Field: "deposit", Message: "is required"}}
	}
	return nil
}

func (p *CreatePaymentPayload) InvalidMessage() string {
	return "booking_id, deposit, and reference_number are required"
}
