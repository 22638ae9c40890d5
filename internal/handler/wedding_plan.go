package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nyashahama/bkw-backend/internal/model"
	"github.com/nyashahama/bkw-backend/internal/server"
	"github.com/nyashahama/bkw-backend/internal/service"
)

type WeddingPlanHandler struct {
	Handler
	weddingPlanService *service.WeddingPlanService
}

func NewWeddingPlanHandler(s *server.Server, weddingPlanService *service.WeddingPlanService) *WeddingPlanHandler {
	return &WeddingPlanHandler{
		Handler:            NewHandler(s),
		weddingPlanService: weddingPlanService,
	}
}

func (h *WeddingPlanHandler) CreatePlan(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.CreateWeddingPlanPayload) (*model.WeddingPlanCreated, error) {
			return h.weddingPlanService.Create(c.Request().Context(), payload)
		},
		http.StatusCreated,
	)(c)
}

func (h *WeddingPlanHandler) ListByUser(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.WeddingPlansByUserPayload) ([]model.WeddingPlan, error) {
			return h.weddingPlanService.ListByUser(c.Request().Context(), payload.UserID)
		},
		http.StatusOK,
	)(c)
}
