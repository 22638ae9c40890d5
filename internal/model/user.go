package model

import "github.com/nyashahama/bkw-backend/internal/validation"

type CreateUserPayload struct {
	Email         string  `json:"email" validate:"required"`
	FullName      string  `json:"full_name" validate:"required"`
	ContactNumber *string `json:"contact_number"`
	Address       *string `json:"address"`
	Password      string  `json:"password" validate:"required"`
	Role          *string `json:"role" validate:"omitempty,oneof=client vendor"`
}

func (p *CreateUserPayload) Validate() error {
	return validation.Struct(p)
}

func (p *CreateUserPayload) InvalidMessage() string {
	return "Missing required fields"
}

type GetUserPayload struct {
	ID int64 `param:"id"`
}

func (p *GetUserPayload) Validate() error {
	return nil
}

func (p *GetUserPayload) BindErrorMessage() string {
	return "Invalid user ID"
}

type LoginPayload struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (p *LoginPayload) Validate() error {
	return validation.Struct(p)
}

func (p *LoginPayload) InvalidMessage() string {
	return "Missing email or password"
}
