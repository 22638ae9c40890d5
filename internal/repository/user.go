package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/nyashahama/bkw-backend/internal/model"
	"github.com/nyashahama/bkw-backend/internal/server"
)

type UserRepository struct {
	server *server.Server
}

func NewUserRepository(s *server.Server) *UserRepository {
	return &UserRepository{server: s}
}

// Create inserts a user. A nil role falls back to the column default.
func (r *UserRepository) Create(ctx context.Context, payload *model.CreateUserPayload, passwordHash string) (*model.User, error) {
	stmt := `
		INSERT INTO users (email, full_name, contact_number, address, password, role)
		VALUES (@email, @full_name, @contact_number, @address, @password, COALESCE(@role::VARCHAR, 'client'))
		RETURNING ` + userColumns

	rows, err := r.server.DB.Pool.Query(ctx, stmt, pgx.NamedArgs{
		"email":          payload.Email,
		"full_name":      payload.FullName,
		"contact_number": payload.ContactNumber,
		"address":        payload.Address,
		"password":       passwordHash,
		"role":           payload.Role,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute create user query for email=%s: %w", payload.Email, err)
	}

	user, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
	if err != nil {
		return nil, fmt.Errorf("failed to collect row from table:users for email=%s: %w", payload.Email, err)
	}

	return &user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	stmt := `SELECT ` + userColumns + ` FROM users WHERE id = @id`

	rows, err := r.server.DB.Pool.Query(ctx, stmt, pgx.NamedArgs{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to execute get user query for id=%d: %w", id, err)
	}

	user, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
	if err != nil {
		return nil, fmt.Errorf("failed to collect row from table:users for id=%d: %w", id, err)
	}

	return &user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	stmt := `SELECT ` + userColumns + ` FROM users WHERE email = @email`

	rows, err := r.server.DB.Pool.Query(ctx, stmt, pgx.NamedArgs{"email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to execute get user by email query: %w", err)
	}

	user, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
	if err != nil {
		return nil, fmt.Errorf("failed to collect row from table:users by email: %w", err)
	}

	return &user, nil
}

func (r *UserRepository) ListByIDs(ctx context.Context, ids []int64) ([]model.User, error) {
	stmt := `SELECT ` + userColumns + ` FROM users WHERE id = ANY(@ids) ORDER BY id`

	rows, err := r.server.DB.Pool.Query(ctx, stmt, pgx.NamedArgs{"ids": ids})
	if err != nil {
		return nil, fmt.Errorf("failed to execute list users by ids query: %w", err)
	}

	users, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.User])
	if err != nil {
		return nil, fmt.Errorf("failed to collect rows from table:users: %w", err)
	}

	return nonNil(users), nil
}

// nonNil keeps empty results encoding as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
