package service

import (
	"context"

	"github.com/nyashahama/bkw-backend/internal/model"
)

type AppointmentRepository interface {
	Create(ctx context.Context, payload *model.CreateAppointmentPayload) (*model.Appointment, error)
	ListAll(ctx context.Context) ([]model.Appointment, error)
	ListByClient(ctx context.Context, clientID int64) ([]model.Appointment, error)
	ListByVendor(ctx context.Context, vendorID int64) ([]model.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status bool) (*model.Appointment, error)
	Delete(ctx context.Context, id int64) error
}

type AppointmentService struct {
	appointments AppointmentRepository
}

func NewAppointmentService(appointments AppointmentRepository) *AppointmentService {
	return &AppointmentService{appointments: appointments}
}

func (s *AppointmentService) Create(ctx context.Context, payload *model.CreateAppointmentPayload) (*model.Appointment, error) {
	return s.appointments.Create(ctx, payload)
}

func (s *AppointmentService) ListAll(ctx context.Context) ([]model.Appointment, error) {
	return s.appointments.ListAll(ctx)
}

func (s *AppointmentService) ListByClient(ctx context.Context, clientID int64) ([]model.Appointment, error) {
	return s.appointments.ListByClient(ctx, clientID)
}

func (s *AppointmentService) ListByVendor(ctx context.Context, vendorID int64) ([]model.Appointment, error) {
	return s.appointments.ListByVendor(ctx, vendorID)
}

func (s *AppointmentService) UpdateStatus(ctx context.Context, id int64, status bool) (*model.Appointment, error) {
	return s.appointments.UpdateStatus(ctx, id, status)
}

func (s *AppointmentService) Delete(ctx context.Context, id int64) (*model.Message, error) {
	if err := s.appointments.Delete(ctx, id); err != nil {
		return nil, err
	}
	return &model.Message{Message: "Appointment deleted successfully"}, nil
}
