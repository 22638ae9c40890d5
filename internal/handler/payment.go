package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nyashahama/bkw-backend/internal/model"
	"github.com/nyashahama/bkw-backend/internal/server"
	"github.com/nyashahama/bkw-backend/internal/service"
)

type PaymentHandler struct {
	Handler
	paymentService *service.PaymentService
}

func NewPaymentHandler(s *server.Server, paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		Handler:        NewHandler(s),
		paymentService: paymentService,
	}
}

func (h *PaymentHandler) CreatePayment(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.CreatePaymentPayload) (*model.Payment, error) {
			return h.paymentService.Create(c.Request().Context(), payload)
		},
		http.StatusCreated,
	)(c)
}
