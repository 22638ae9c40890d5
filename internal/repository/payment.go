package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/nyashahama/bkw-backend/internal/model"
	"github.com/nyashahama/bkw-backend/internal/server"
)

type PaymentRepository struct {
	server *server.Server
}

func NewPaymentRepository(s *server.Server) *PaymentRepository {
	return &PaymentRepository{server: s}
}

func (r *PaymentRepository) Create(ctx context.Context, payload *model.CreatePaymentPayload) (*model.Payment, error) {
	stmt := `
		INSERT INTO payments (booking_id, deposit, reference_number)
		VALUES (@booking_id, @deposit, @reference_number)
		RETURNING ` + paymentColumns

	rows, err := r.server.DB.Pool.Query(ctx, stmt, pgx.NamedArgs{
		"booking_id":       payload.BookingID,
		"deposit":          payload.Deposit,
		"reference_number": payload.ReferenceNumber,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute create payment query for booking_id=%d: %w", payload.BookingID, err)
	}

	payment, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Payment])
	if err != nil {
		return nil, fmt.Errorf("failed to collect row from table:payments for booking_id=%d: %w", payload.BookingID, err)
	}

	return &payment, nil
}

// FirstByBooking returns the oldest payment recorded for a booking.
func (r *PaymentRepository) FirstByBooking(ctx context.Context, bookingID int64) (*model.Payment, error) {
	rows, err := r.server.DB.Pool.Query(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE booking_id = @booking_id ORDER BY id LIMIT 1`,
		pgx.NamedArgs{"booking_id": bookingID})
	if err != nil {
		return nil, fmt.Errorf("failed to execute get payment query for booking_id=%d: %w", bookingID, err)
	}

	payment, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Payment])
	if err != nil {
		return nil, fmt.Errorf("failed to collect row from table:payments for booking_id=%d: %w", bookingID, err)
	}

	return &payment, nil
}
