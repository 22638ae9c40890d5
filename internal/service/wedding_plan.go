package service

import (
	"context"

	"github.com/nyashahama/bkw-backend/internal/errs"
	"github.com/nyashahama/bkw-backend/internal/model"
)

type WeddingPlanRepository interface {
	Create(ctx context.Context, payload *model.CreateWeddingPlanPayload) (*model.WeddingPlan, error)
	ListByUser(ctx context.Context, userID int64) ([]model.WeddingPlan, error)
}

type WeddingPlanService struct {
	plans WeddingPlanRepository
}

func NewWeddingPlanService(plans WeddingPlanRepository) *WeddingPlanService {
	return &WeddingPlanService{plans: plans}
}

func (s *WeddingPlanService) Create(ctx context.Context, payload *model.CreateWeddingPlanPayload) (*model.WeddingPlanCreated, error) {
	plan, err := s.plans.Create(ctx, payload)
	if err != nil {
		return nil, err
	}
	return &model.WeddingPlanCreated{Message: "Wedding plan created successfully", Plan: plan}, nil
}

// ListByUser answers 404 rather than an empty list when the user has no plans.
func (s *WeddingPlanService) ListByUser(ctx context.Context, userID int64) ([]model.WeddingPlan, error) {
	plans, err := s.plans.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(plans) == 0 {
		return nil, errs.NewNotFoundError("No plans found for this user", true, nil)
	}
	return plans, nil
}
