package model

import (
	"github.com/nyashahama/bkw-backend/internal/validation"
	"github.com/shopspring/decimal"
)

// CreateWeddingPlanPayload leaves every checklist flag false unless set.
type CreateWeddingPlanPayload struct {
	Budget         decimal.NullDecimal `json:"budget"`
	Venue          bool                `json:"venue"`
	Decor          bool                `json:"decor"`
	Catering       bool                `json:"catering"`
	Entertainment  bool                `json:"entertainment"`
	Photographer   bool                `json:"photographer"`
	WeddingCake    bool                `json:"wedding_cake"`
	Transportation bool                `json:"transportation"`
	UserID         int64               `json:"user_id" validate:"required"`
}

func (p *CreateWeddingPlanPayload) Validate() error {
	return validation.Struct(p)
}

func (p *CreateWeddingPlanPayload) InvalidMessage() string {
	return "user_id are required"
}

type WeddingPlansByUserPayload struct {
	UserID int64 `param:"user_id"`
}

func (p *WeddingPlansByUserPayload) Validate() error {
	return nil
}

func (p *WeddingPlansByUserPayload) BindErrorMessage() string {
	return "Invalid user ID"
}
