package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/nyashahama/bkw-backend/internal/model"
	"github.com/nyashahama/bkw-backend/internal/server"
)

type WeddingPlanRepository struct {
	server *server.Server
}

func NewWeddingPlanRepository(s *server.Server) *WeddingPlanRepository {
	return &WeddingPlanRepository{server: s}
}

func (r *WeddingPlanRepository) Create(ctx context.Context, payload *model.CreateWeddingPlanPayload) (*model.WeddingPlan, error) {
	stmt := `
		INSERT INTO wedding_plans (
			budget, venue, decor, catering, entertainment,
			photographer, wedding_cake, transportation, user_id
		)
		VALUES (
			@budget, @venue, @decor, @catering, @entertainment,
			@photographer, @wedding_cake, @transportation, @user_id
		)
		RETURNING ` + weddingPlanColumns

	rows, err := r.server.DB.Pool.Query(ctx, stmt, pgx.NamedArgs{
		"budget":         payload.Budget,
		"venue":          payload.Venue,
		"decor":          payload.Decor,
		"catering":       payload.Catering,
		"entertainment":  payload.Entertainment,
		"photographer":   payload.Photographer,
		"wedding_cake":   payload.WeddingCake,
		"transportation": payload.Transportation,
		"user_id":        payload.UserID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute create wedding plan query for user_id=%d: %w", payload.UserID, err)
	}

	plan, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.WeddingPlan])
	if err != nil {
		return nil, fmt.Errorf("failed to collect row from table:wedding_plans for user_id=%d: %w", payload.UserID, err)
	}

	return &plan, nil
}

func (r *WeddingPlanRepository) ListByUser(ctx context.Context, userID int64) ([]model.WeddingPlan, error) {
	rows, err := r.server.DB.Pool.Query(ctx,
		`SELECT `+weddingPlanColumns+` FROM wedding_plans WHERE user_id = @user_id ORDER BY id`,
		pgx.NamedArgs{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to execute list wedding plans query for user_id=%d: %w", userID, err)
	}

	plans, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.WeddingPlan])
	if err != nil {
		return nil, fmt.Errorf("failed to collect rows from table:wedding_plans for user_id=%d: %w", userID, err)
	}

	return nonNil(plans), nil
}
