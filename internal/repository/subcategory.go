package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/nyashahama/bkw-backend/internal/model"
	"github.com/nyashahama/bkw-backend/internal/server"
)

type SubcategoryRepository struct {
	server *server.Server
}

func NewSubcategoryRepository(s *server.Server) *SubcategoryRepository {
	return &SubcategoryRepository{server: s}
}

// Create inserts one subcategory of serviceID. Absent input fields are sent
// as NULL and rejected by the NOT NULL constraints.
func (r *SubcategoryRepository) Create(ctx context.Context, serviceID int64, in model.SubcategoryInput) (*model.Subcategory, error) {
	stmt := `
		INSERT INTO subcategories (service_id, name, price, short_description, file_url)
		VALUES (@service_id, @name, @price, @short_description, @file_url)
		RETURNING ` + subcategoryColumns

	rows, err := r.server.DB.Pool.Query(ctx, stmt, pgx.NamedArgs{
		"service_id":        serviceID,
		"name":              in.Name,
		"price":             in.Price,
		"short_description": in.ShortDescription,
		"file_url":          in.File,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute create subcategory query for service_id=%d: %w", serviceID, err)
	}

	sub, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Subcategory])
	if err != nil {
		return nil, fmt.Errorf("failed to collect row from table:subcategories for service_id=%d: %w", serviceID, err)
	}

	return &sub, nil
}

func (r *SubcategoryRepository) GetByID(ctx context.Context, id int64) (*model.Subcategory, error) {
	rows, err := r.server.DB.Pool.Query(ctx,
		`SELECT `+subcategoryColumns+` FROM subcategories WHERE id = @id`,
		pgx.NamedArgs{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to execute get subcategory query for id=%d: %w", id, err)
	}

	sub, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Subcategory])
	if err != nil {
		return nil, fmt.Errorf("failed to collect row from table:subcategories for id=%d: %w", id, err)
	}

	return &sub, nil
}

// ListByServiceIDs returns the subcategories of all given services in one
// round trip.
func (r *SubcategoryRepository) ListByServiceIDs(ctx context.Context, serviceIDs []int64) ([]model.Subcategory, error) {
	return r.list(ctx, `SELECT `+subcategoryColumns+` FROM subcategories WHERE service_id = ANY(@ids) ORDER BY id`, serviceIDs)
}

func (r *SubcategoryRepository) ListByIDs(ctx context.Context, ids []int64) ([]model.Subcategory, error) {
	return r.list(ctx, `SELECT `+subcategoryColumns+` FROM subcategories WHERE id = ANY(@ids) ORDER BY id`, ids)
}

func (r *SubcategoryRepository) list(ctx context.Context, stmt string, ids []int64) ([]model.Subcategory, error) {
	rows, err := r.server.DB.Pool.Query(ctx, stmt, pgx.NamedArgs{"ids": ids})
	if err != nil {
		return nil, fmt.Errorf("failed to execute list subcategories query: %w", err)
	}

	subs, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Subcategory])
	if err != nil {
		return nil, fmt.Errorf("failed to collect rows from table:subcategories: %w", err)
	}

	return nonNil(subs), nil
}
