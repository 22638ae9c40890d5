package router

import (
	"github.com/labstack/echo/v4"
	"github.com/nyashahama/bkw-backend/internal/handler"
	"github.com/nyashahama/bkw-backend/internal/middleware"
)

// registerAPIRoutes mounts the marketplace endpoints at the root path.
func registerAPIRoutes(r *echo.Echo, h *handler.Handlers, m *middleware.Middlewares) {
	limit := m.RateLimit.Limit()

	// users
	r.POST("/adduser", h.User.CreateUser, limit)
	r.POST("/login", h.User.Login, limit)
	r.GET("/users/:id", h.User.GetUser)

	// services
	r.POST("/addservice", h.Catalog.CreateService)
	r.GET("/services", h.Catalog.ListServices)
	r.GET("/services/:userId", h.Catalog.ListServicesByUser)
	r.DELETE("/services/:serviceId", h.Catalog.DeleteService)

	// appointments
	r.POST("/appointments", h.Appointment.CreateAppointment)
	r.GET("/appointments", h.Appointment.ListAppointments)
	r.GET("/appointments/client/:clientId", h.Appointment.ListByClient)
	r.GET("/appointments/vendor/:vendorId", h.Appointment.ListByVendor)
	r.PATCH("/appointments/:id/status", h.Appointment.UpdateStatus)
	r.DELETE("/appointments/:id", h.Appointment.DeleteAppointment)

	// bookings
	r.POST("/addbooking", h.Booking.CreateBooking)
	r.GET("/bookings/:user_id", h.Booking.ListByUser)
	r.PATCH("/bookings/:id/status", h.Booking.UpdateStatus)
	r.GET("/vendor_bookings/:userId", h.Booking.VendorBookings)

	r.POST("/payments", h.Payment.CreatePayment)

	r.POST("/wedding_plans", h.WeddingPlan.CreatePlan)
	r.GET("/wedding_plans/:user_id", h.WeddingPlan.ListByUser)
}
