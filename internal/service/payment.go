package service

import (
	"context"

	"github.com/nyashahama/bkw-backend/internal/model"
)

type PaymentRepository interface {
	Create(ctx context.Context, payload *model.CreatePaymentPayload) (*model.Payment, error)
	FirstByBooking(ctx context.Context, bookingID int64) (*model.Payment, error)
}

// PaymentService records deposits. No payment gateway is involved.
type PaymentService struct {
	payments PaymentRepository
}

func NewPaymentService(payments PaymentRepository) *PaymentService {
	return &PaymentService{payments: payments}
}

func (s *PaymentService) Create(ctx context.Context, payload *model.CreatePaymentPayload) (*model.Payment, error) {
	return s.payments.Create(ctx, payload)
}
