package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/nyashahama/bkw-backend/internal/model"
	"github.com/nyashahama/bkw-backend/internal/server"
)

type AppointmentRepository struct {
	server *server.Server
}

func NewAppointmentRepository(s *server.Server) *AppointmentRepository {
	return &AppointmentRepository{server: s}
}

// Create inserts an appointment. Date and time are passed as text and
// parsed by PostgreSQL, so malformed values fail with an invalid format error.
func (r *AppointmentRepository) Create(ctx context.Context, payload *model.CreateAppointmentPayload) (*model.Appointment, error) {
	stmt := `
		INSERT INTO appointments (date, time, additional_info, client_id, vendor_id, status)
		VALUES (@date::DATE, @time::TIME, @additional_info, @client_id, @vendor_id, @status)
		RETURNING ` + appointmentColumns

	rows, err := r.server.DB.Pool.Query(ctx, stmt, pgx.NamedArgs{
		"date":            payload.Date,
		"time":            payload.Time,
		"additional_info": payload.AdditionalInfo,
		"client_id":       payload.ClientID,
		"vendor_id":       payload.VendorID,
		"status":          payload.Status,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute create appointment query for client_id=%d vendor_id=%d: %w",
			payload.ClientID, payload.VendorID, err)
	}

	appointment, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Appointment])
	if err != nil {
		return nil, fmt.Errorf("failed to collect row from table:appointments: %w", err)
	}

	return &appointment, nil
}

func (r *AppointmentRepository) ListAll(ctx context.Context) ([]model.Appointment, error) {
	return r.list(ctx, `SELECT `+appointmentColumns+` FROM appointments ORDER BY id`)
}

func (r *AppointmentRepository) ListByClient(ctx context.Context, clientID int64) ([]model.Appointment, error) {
	return r.list(ctx, `SELECT `+appointmentColumns+` FROM appointments WHERE client_id = @id ORDER BY id`,
		pgx.NamedArgs{"id": clientID})
}

func (r *AppointmentRepository) ListByVendor(ctx context.Context, vendorID int64) ([]model.Appointment, error) {
	return r.list(ctx, `SELECT `+appointmentColumns+` FROM appointments WHERE vendor_id = @id ORDER BY id`,
		pgx.NamedArgs{"id": vendorID})
}

func (r *AppointmentRepository) list(ctx context.Context, stmt string, args ...any) ([]model.Appointment, error) {
	rows, err := r.server.DB.Pool.Query(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute list appointments query: %w", err)
	}

	appointments, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Appointment])
	if err != nil {
		return nil, fmt.Errorf("failed to collect rows from table:appointments: %w", err)
	}

	return nonNil(appointments), nil
}

func (r *AppointmentRepository) UpdateStatus(ctx context.Context, id int64, status bool) (*model.Appointment, error) {
	stmt := `UPDATE appointments SET status = @status WHERE id = @id RETURNING ` + appointmentColumns

	rows, err := r.server.DB.Pool.Query(ctx, stmt, pgx.NamedArgs{"id": id, "status": status})
	if err != nil {
		return nil, fmt.Errorf("failed to execute update appointment status query for id=%d: %w", id, err)
	}

	appointment, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Appointment])
	if err != nil {
		return nil, fmt.Errorf("failed to collect row from table:appointments for id=%d: %w", id, err)
	}

	return &appointment, nil
}

func (r *AppointmentRepository) Delete(ctx context.Context, id int64) error {
	rows, err := r.server.DB.Pool.Query(ctx,
		`DELETE FROM appointments WHERE id = @id RETURNING id`,
		pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("failed to execute delete appointment query for id=%d: %w", id, err)
	}

	if _, err := pgx.CollectOneRow(rows, pgx.RowTo[int64]); err != nil {
		return fmt.Errorf("failed to collect row from table:appointments for id=%d: %w", id, err)
	}

	return nil
}
