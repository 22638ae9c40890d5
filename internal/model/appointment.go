package model

import "github.com/nyashahama/bkw-backend/internal/validation"

type CreateAppointmentPayload struct {
	Date           string  `json:"date" validate:"required"`
	Time           string  `json:"time" validate:"required"`
	AdditionalInfo *string `json:"additional_info"`
	ClientID       int64   `json:"client_id" validate:"required"`
	VendorID       int64   `json:"vendor_id" validate:"required"`
	Status         *bool   `json:"status"`
}

func (p *CreateAppointmentPayload) Validate() error {
	return validation.Struct(p)
}

func (p *CreateAppointmentPayload) InvalidMessage() string {
	return "date, time, client_id, and vendor_id are required"
}

type ListAppointmentsPayload struct{}

func (p *ListAppointmentsPayload) Validate() error {
	return nil
}

type AppointmentsByClientPayload struct {
	ClientID int64 `param:"clientId"`
}

func (p *AppointmentsByClientPayload) Validate() error {
	return nil
}

func (p *AppointmentsByClientPayload) BindErrorMessage() string {
	return "Invalid client ID"
}

type AppointmentsByVendorPayload struct {
	VendorID int64 `param:"vendorId"`
}

func (p *AppointmentsByVendorPayload) Validate() error {
	return nil
}

func (p *AppointmentsByVendorPayload) BindErrorMessage() string {
	return "Invalid vendor ID"
}

// UpdateAppointmentStatusPayload takes a pointer so that false is a valid
// status while an absent status is not.
type UpdateAppointmentStatusPayload struct {
	ID     int64 `param:"id"`
	Status *bool `json:"status" validate:"required"`
}

func (p *UpdateAppointmentStatusPayload) Validate() error {
	return validation.Struct(p)
}

func (p *UpdateAppointmentStatusPayload) InvalidMessage() string {
	return "Status is required"
}

type DeleteAppointmentPayload struct {
	ID int64 `param:"id"`
}

func (p *DeleteAppointmentPayload) Validate() error {
	return nil
}

func (p *DeleteAppointmentPayload) BindErrorMessage() string {
	return "Invalid appointment ID"
}
