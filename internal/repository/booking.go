package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/nyashahama/bkw-backend/internal/model"
	"github.com/nyashahama/bkw-backend/internal/server"
)

type BookingRepository struct {
	server *server.Server
}

func NewBookingRepository(s *server.Server) *BookingRepository {
	return &BookingRepository{server: s}
}

// Create inserts a booking with the default "in progress" status.
func (r *BookingRepository) Create(ctx context.Context, payload *model.CreateBookingPayload) (*model.Booking, error) {
	stmt := `
		INSERT INTO bookings (service_id, user_id, sub_id)
		VALUES (@service_id, @user_id, @sub_id)
		RETURNING ` + bookingColumns

	rows, err := r.server.DB.Pool.Query(ctx, stmt, pgx.NamedArgs{
		"service_id": payload.ServiceID,
		"user_id":    payload.UserID,
		"sub_id":     payload.SubID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute create booking query for user_id=%d service_id=%d: %w",
			payload.UserID, payload.ServiceID, err)
	}

	booking, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Booking])
	if err != nil {
		return nil, fmt.Errorf("failed to collect row from table:bookings: %w", err)
	}

	return &booking, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID int64) ([]model.Booking, error) {
	return r.list(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE user_id = @user_id ORDER BY id`,
		pgx.NamedArgs{"user_id": userID})
}

func (r *BookingRepository) ListByServiceIDs(ctx context.Context, serviceIDs []int64) ([]model.Booking, error) {
	return r.list(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE service_id = ANY(@ids) ORDER BY id`,
		pgx.NamedArgs{"ids": serviceIDs})
}

func (r *BookingRepository) list(ctx context.Context, stmt string, args ...any) ([]model.Booking, error) {
	rows, err := r.server.DB.Pool.Query(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute list bookings query: %w", err)
	}

	bookings, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Booking])
	if err != nil {
		return nil, fmt.Errorf("failed to collect rows from table:bookings: %w", err)
	}

	return nonNil(bookings), nil
}

// DistinctServiceIDs returns which of serviceIDs have at least one booking.
func (r *BookingRepository) DistinctServiceIDs(ctx context.Context, serviceIDs []int64) ([]int64, error) {
	rows, err := r.server.DB.Pool.Query(ctx,
		`SELECT DISTINCT service_id FROM bookings WHERE service_id = ANY(@ids) ORDER BY service_id`,
		pgx.NamedArgs{"ids": serviceIDs})
	if err != nil {
		return nil, fmt.Errorf("failed to execute distinct booked services query: %w", err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("failed to collect rows from table:bookings: %w", err)
	}

	return nonNil(ids), nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status string) (*model.Booking, error) {
	stmt := `UPDATE bookings SET status = @status::booking_status WHERE id = @id RETURNING ` + bookingColumns

	rows, err := r.server.DB.Pool.Query(ctx, stmt, pgx.NamedArgs{"id": id, "status": status})
	if err != nil {
		return nil, fmt.Errorf("failed to execute update booking status query for id=%d: %w", id, err)
	}

	booking, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Booking])
	if err != nil {
		return nil, fmt.Errorf("failed to collect row from table:bookings for id=%d: %w", id, err)
	}

	return &booking, nil
}
