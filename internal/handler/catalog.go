package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nyashahama/bkw-backend/internal/model"
	"github.com/nyashahama/bkw-backend/internal/server"
	"github.com/nyashahama/bkw-backend/internal/service"
)

// CatalogHandler serves vendor services and their subcategories.
type CatalogHandler struct {
	Handler
	catalogService *service.CatalogService
}

func NewCatalogHandler(s *server.Server, catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		Handler:        NewHandler(s),
		catalogService: catalogService,
	}
}

func (h *CatalogHandler) CreateService(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.CreateServicePayload) (*model.ServiceCreated, error) {
			return h.catalogService.Create(c.Request().Context(), payload)
		},
		http.StatusCreated,
	)(c)
}

func (h *CatalogHandler) ListServices(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, _ *model.ListServicesPayload) ([]model.ServiceWithSubcategories, error) {
			return h.catalogService.List(c.Request().Context())
		},
		http.StatusOK,
	)(c)
}

func (h *CatalogHandler) ListServicesByUser(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.ServicesByUserPayload) ([]model.ServiceWithSubcategories, error) {
			return h.catalogService.ListByUser(c.Request().Context(), payload.UserID)
		},
		http.StatusOK,
	)(c)
}

func (h *CatalogHandler) DeleteService(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.DeleteServicePayload) (*model.Message, error) {
			return h.catalogService.Delete(c.Request().Context(), payload.ID)
		},
		http.StatusOK,
	)(c)
}
