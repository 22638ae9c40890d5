// Package repository handles all interactions with the database.
//
// It contains the SQL statements and methods that fetch, persist or update
// rows, one repository per entity, abstracting SQL away from the service
// layer. Errors are wrapped with a "table:<name>" hint so that a missing row
// surfaces as "<Entity> not found" through sqlerr.HandleError.
package repository

import (
	"github.com/nyashahama/bkw-backend/internal/server"
)

// Column lists shared by SELECT and RETURNING clauses. Dates, times and the
// booking status enum are read as text.
const (
	userColumns        = "id, email, full_name, contact_number, address, password, role"
	serviceColumns     = "id, title, description, user_id, created_at"
	subcategoryColumns = "id, service_id, name, price, short_description, file_url"
	appointmentColumns = "id, date::text AS date, time::text AS time, additional_info, client_id, vendor_id, status, created_at"
	bookingColumns     = "id, user_id, service_id, sub_id, status::text AS status, created_at"
	paymentColumns     = "id, booking_id, deposit, reference_number, created_at"
	weddingPlanColumns = "id, budget, venue, decor, catering, entertainment, photographer, wedding_cake, transportation, user_id, created_at"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	User        *UserRepository
	Service     *ServiceRepository
	Subcategory *SubcategoryRepository
	Appointment *AppointmentRepository
	Booking     *BookingRepository
	Payment     *PaymentRepository
	WeddingPlan *WeddingPlanRepository
}

// NewRepositories builds every repository over the server's connection pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		User:        NewUserRepository(s),
		Service:     NewServiceRepository(s),
		Subcategory: NewSubcategoryRepository(s),
		Appointment: NewAppointmentRepository(s),
		Booking:     NewBookingRepository(s),
		Payment:     NewPaymentRepository(s),
		WeddingPlan: NewWeddingPlanRepository(s),
	}
}
