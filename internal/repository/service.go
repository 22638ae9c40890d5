package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/nyashahama/bkw-backend/internal/model"
	"github.com/nyashahama/bkw-backend/internal/server"
)

type ServiceRepository struct {
	server *server.Server
}

func NewServiceRepository(s *server.Server) *ServiceRepository {
	return &ServiceRepository{server: s}
}

func (r *ServiceRepository) Create(ctx context.Context, title, description string, userID int64) (*model.Service, error) {
	stmt := `
		INSERT INTO services (title, description, user_id)
		VALUES (@title, @description, @user_id)
		RETURNING ` + serviceColumns

	rows, err := r.server.DB.Pool.Query(ctx, stmt, pgx.NamedArgs{
		"title":       title,
		"description": description,
		"user_id":     userID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute create service query for user_id=%d: %w", userID, err)
	}

	service, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Service])
	if err != nil {
		return nil, fmt.Errorf("failed to collect row from table:services for user_id=%d: %w", userID, err)
	}

	return &service, nil
}

func (r *ServiceRepository) GetByID(ctx context.Context, id int64) (*model.Service, error) {
	rows, err := r.server.DB.Pool.Query(ctx,
		`SELECT `+serviceColumns+` FROM services WHERE id = @id`,
		pgx.NamedArgs{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to execute get service query for id=%d: %w", id, err)
	}

	service, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Service])
	if err != nil {
		return nil, fmt.Errorf("failed to collect row from table:services for id=%d: %w", id, err)
	}

	return &service, nil
}

func (r *ServiceRepository) ListAll(ctx context.Context) ([]model.Service, error) {
	return r.list(ctx, `SELECT `+serviceColumns+` FROM services ORDER BY id`)
}

func (r *ServiceRepository) ListByUser(ctx context.Context, userID int64) ([]model.Service, error) {
	return r.list(ctx, `SELECT `+serviceColumns+` FROM services WHERE user_id = @user_id ORDER BY id`,
		pgx.NamedArgs{"user_id": userID})
}

func (r *ServiceRepository) ListByIDs(ctx context.Context, ids []int64) ([]model.Service, error) {
	return r.list(ctx, `SELECT `+serviceColumns+` FROM services WHERE id = ANY(@ids) ORDER BY id`,
		pgx.NamedArgs{"ids": ids})
}

func (r *ServiceRepository) list(ctx context.Context, stmt string, args ...any) ([]model.Service, error) {
	rows, err := r.server.DB.Pool.Query(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute list services query: %w", err)
	}

	services, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Service])
	if err != nil {
		return nil, fmt.Errorf("failed to collect rows from table:services: %w", err)
	}

	return nonNil(services), nil
}

// IDsByUser returns the ids of the services a vendor owns.
func (r *ServiceRepository) IDsByUser(ctx context.Context, userID int64) ([]int64, error) {
	rows, err := r.server.DB.Pool.Query(ctx,
		`SELECT id FROM services WHERE user_id = @user_id ORDER BY id`,
		pgx.NamedArgs{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to execute service ids query for user_id=%d: %w", userID, err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("failed to collect rows from table:services for user_id=%d: %w", userID, err)
	}

	return nonNil(ids), nil
}

// Delete removes a service; its subcategories and bookings go with it.
func (r *ServiceRepository) Delete(ctx context.Context, id int64) error {
	rows, err := r.server.DB.Pool.Query(ctx,
		`DELETE FROM services WHERE id = @id RETURNING id`,
		pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("failed to execute delete service query for id=%d: %w", id, err)
	}

	if _, err := pgx.CollectOneRow(rows, pgx.RowTo[int64]); err != nil {
		return fmt.Errorf("failed to collect row from table:services for id=%d: %w", id, err)
	}

	return nil
}
