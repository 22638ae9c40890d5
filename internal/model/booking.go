package model

import "github.com/nyashahama/bkw-backend/internal/validation"

type CreateBookingPayload struct {
	ServiceID int64 `json:"service_id" validate:"required"`
	UserID    int64 `json:"user_id" validate:"required"`
	SubID     int64 `json:"sub_id" validate:"required"`
}

func (p *CreateBookingPayload) Validate() error {
	return validation.Struct(p)
}

func (p *CreateBookingPayload) InvalidMessage() string {
	return "Missing required fields"
}

type BookingsByUserPayload struct {
	UserID int64 `param:"user_id"`
}

func (p *BookingsByUserPayload) Validate() error {
	return nil
}

func (p *BookingsByUserPayload) BindErrorMessage() string {
	return "Invalid user ID"
}

type VendorBookingsPayload struct {
	UserID int64 `param:"userId"`
}

func (p *VendorBookingsPayload) Validate() error {
	return nil
}

func (p *VendorBookingsPayload) BindErrorMessage() string {
	return "Invalid user ID"
}

type UpdateBookingStatusPayload struct {
	ID     int64  `param:"id"`
	Status string `json:"status" validate:"required,oneof='in progress' confirmed completed"`
}

func (p *UpdateBookingStatusPayload) Validate() error {
	return validation.Struct(p)
}

func (p *UpdateBookingStatusPayload) InvalidMessage() string {
	return "Status must be one of: in progress, confirmed, completed"
}
