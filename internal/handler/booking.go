package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nyashahama/bkw-backend/internal/model"
	"github.com/nyashahama/bkw-backend/internal/server"
	"github.com/nyashahama/bkw-backend/internal/service"
)

type BookingHandler struct {
	Handler
	bookingService *service.BookingService
}

func NewBookingHandler(s *server.Server, bookingService *service.BookingService) *BookingHandler {
	return &BookingHandler{
		Handler:        NewHandler(s),
		bookingService: bookingService,
	}
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.CreateBookingPayload) (*model.BookingCreated, error) {
			return h.bookingService.Create(c.Request().Context(), payload)
		},
		http.StatusCreated,
	)(c)
}

func (h *BookingHandler) ListByUser(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.BookingsByUserPayload) ([]model.BookingDetails, error) {
			return h.bookingService.ByUser(c.Request().Context(), payload.UserID)
		},
		http.StatusOK,
	)(c)
}

func (h *BookingHandler) VendorBookings(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.VendorBookingsPayload) ([]model.VendorService, error) {
			return h.bookingService.VendorBookings(c.Request().Context(), payload.UserID)
		},
		http.StatusOK,
	)(c)
}

func (h *BookingHandler) UpdateStatus(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.UpdateBookingStatusPayload) (*model.Booking, error) {
			return h.bookingService.UpdateStatus(c.Request().Context(), payload.ID, payload.Status)
		},
		http.StatusOK,
	)(c)
}
