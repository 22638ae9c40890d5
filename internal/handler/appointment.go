package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nyashahama/bkw-backend/internal/model"
	"github.com/nyashahama/bkw-backend/internal/server"
	"github.com/nyashahama/bkw-backend/internal/service"
)

type AppointmentHandler struct {
	Handler
	appointmentService *service.AppointmentService
}

func NewAppointmentHandler(s *server.Server, appointmentService *service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{
		Handler:            NewHandler(s),
		appointmentService: appointmentService,
	}
}

func (h *AppointmentHandler) CreateAppointment(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.CreateAppointmentPayload) (*model.Appointment, error) {
			return h.appointmentService.Create(c.Request().Context(), payload)
		},
		http.StatusCreated,
	)(c)
}

func (h *AppointmentHandler) ListAppointments(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, _ *model.ListAppointmentsPayload) ([]model.Appointment, error) {
			return h.appointmentService.ListAll(c.Request().Context())
		},
		http.StatusOK,
	)(c)
}

func (h *AppointmentHandler) ListByClient(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.AppointmentsByClientPayload) ([]model.Appointment, error) {
			return h.appointmentService.ListByClient(c.Request().Context(), payload.ClientID)
		},
		http.StatusOK,
	)(c)
}

func (h *AppointmentHandler) ListByVendor(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.AppointmentsByVendorPayload) ([]model.Appointment, error) {
			return h.appointmentService.ListByVendor(c.Request().Context(), payload.VendorID)
		},
		http.StatusOK,
	)(c)
}

func (h *AppointmentHandler) UpdateStatus(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.UpdateAppointmentStatusPayload) (*model.Appointment, error) {
			return h.appointmentService.UpdateStatus(c.Request().Context(), payload.ID, *payload.Status)
		},
		http.StatusOK,
	)(c)
}

func (h *AppointmentHandler) DeleteAppointment(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.DeleteAppointmentPayload) (*model.Message, error) {
			return h.appointmentService.Delete(c.Request().Context(), payload.ID)
		},
		http.StatusOK,
	)(c)
}
