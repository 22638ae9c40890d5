package handler

import (
	"github.com/nyashahama/bkw-backend/internal/server"
	"github.com/nyashahama/bkw-backend/internal/service"
)

type Handlers struct {
	Health      *HealthHandler
	OpenAPI     *OpenAPIHandler
	User        *UserHandler
	Catalog     *CatalogHandler
	Appointment *AppointmentHandler
	Booking     *BookingHandler
	Payment     *PaymentHandler
	WeddingPlan *WeddingPlanHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:      NewHealthHandler(s),
		OpenAPI:     NewOpenAPIHandler(s),
		User:        NewUserHandler(s, services.User),
		Catalog:     NewCatalogHandler(s, services.Catalog),
		Appointment: NewAppointmentHandler(s, services.Appointment),
		Booking:     NewBookingHandler(s, services.Booking),
		Payment:     NewPaymentHandler(s, services.Payment),
		WeddingPlan: NewWeddingPlanHandler(s, services.WeddingPlan),
	}
}
