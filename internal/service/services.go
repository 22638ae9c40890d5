package service

import (
	"github.com/nyashahama/bkw-backend/internal/repository"
	"github.com/nyashahama/bkw-backend/internal/server"
)

type Services struct {
	User        *UserService
	Catalog     *CatalogService
	Appointment *AppointmentService
	Booking     *BookingService
	Payment     *PaymentService
	WeddingPlan *WeddingPlanService
}

func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	// A nil *asynq.Client must not become a non-nil interface.
	var jobs TaskEnqueuer
	if s.Job != nil {
		jobs = s.Job.Client
	}

	return &Services{
		User:        NewUserService(repos.User, jobs, s.Config.Auth.BcryptCost),
		Catalog:     NewCatalogService(repos.Service, repos.Subcategory),
		Appointment: NewAppointmentService(repos.Appointment),
		Booking:     NewBookingService(repos.Booking, repos.Service, repos.Subcategory, repos.User, repos.Payment, jobs),
		Payment:     NewPaymentService(repos.Payment),
		WeddingPlan: NewWeddingPlanService(repos.WeddingPlan),
	}
}
