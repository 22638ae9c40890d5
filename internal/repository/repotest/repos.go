package repotest

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/nyashahama/bkw-backend/internal/model"
)

type Users struct{ s *Store }

func (r *Users) Create(_ context.Context, p *model.CreateUserPayload, passwordHash string) (*model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}

	if slices.ContainsFunc(r.s.users, func(u model.User) bool { return u.Email == p.Email }) {
		return nil, &pgconn.PgError{
			Severity:       "ERROR",
			Code:           "23505",
			Message:        `duplicate key value violates unique constraint "users_email_key"`,
			TableName:      "users",
			ConstraintName: "users_email_key",
		}
	}

	role := model.RoleClient
	if p.Role != nil {
		role = *p.Role
	}

	u := model.User{
		ID:            r.s.next("users"),
		Email:         p.Email,
		FullName:      p.FullName,
		ContactNumber: p.ContactNumber,
		Address:       p.Address,
		Password:      passwordHash,
		Role:          &role,
	}
	r.s.users = append(r.s.users, u)
	return &u, nil
}

func (r *Users) GetByID(_ context.Context, id int64) (*model.User, error) {
	return r.find(func(u model.User) bool { return u.ID == id })
}

func (r *Users) GetByEmail(_ context.Context, email string) (*model.User, error) {
	return r.find(func(u model.User) bool { return u.Email == email })
}

func (r *Users) find(match func(model.User) bool) (*model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}

	if i := slices.IndexFunc(r.s.users, match); i >= 0 {
		u := r.s.users[i]
		return &u, nil
	}
	return nil, notFound("users")
}

func (r *Users) ListByIDs(_ context.Context, ids []int64) ([]model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	return filter(r.s.users, func(u model.User) bool { return slices.Contains(ids, u.ID) }), nil
}

type Services struct{ s *Store }

func (r *Services) Create(_ context.Context, title, description string, userID int64) (*model.Service, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}

	v := model.Service{
		ID:          r.s.next("services"),
		Title:       title,
		Description: description,
		UserID:      userID,
		CreatedAt:   now(),
	}
	r.s.services = append(r.s.services, v)
	return &v, nil
}

func (r *Services) GetByID(_ context.Context, id int64) (*model.Service, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}

	if i := slices.IndexFunc(r.s.services, func(v model.Service) bool { return v.ID == id }); i >= 0 {
		v := r.s.services[i]
		return &v, nil
	}
	return nil, notFound("services")
}

func (r *Services) ListAll(_ context.Context) ([]model.Service, error) {
	return r.list(func(model.Service) bool { return true })
}

func (r *Services) ListByUser(_ context.Context, userID int64) ([]model.Service, error) {
	return r.list(func(v model.Service) bool { return v.UserID == userID })
}

func (r *Services) ListByIDs(_ context.Context, ids []int64) ([]model.Service, error) {
	return r.list(func(v model.Service) bool { return slices.Contains(ids, v.ID) })
}

func (r *Services) list(keep func(model.Service) bool) ([]model.Service, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	return filter(r.s.services, keep), nil
}

func (r *Services) IDsByUser(ctx context.Context, userID int64) ([]int64, error) {
	services, err := r.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := []int64{}
	for _, v := range services {
		ids = append(ids, v.ID)
	}
	return ids, nil
}

func (r *Services) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}

	if !r.s.serviceExists(id) {
		return notFound("services")
	}
	r.s.deleteService(id)
	return nil
}

type Subcategories struct{ s *Store }

func (r *Subcategories) Create(_ context.Context, serviceID int64, in model.SubcategoryInput) (*model.Subcategory, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}

	switch {
	case in.Name == nil:
		return nil, notNull("subcategories", "name")
	case in.Price == nil:
		return nil, notNull("subcategories", "price")
	case in.ShortDescription == nil:
		return nil, notNull("subcategories", "short_description")
	case !r.s.serviceExists(serviceID):
		return nil, foreignKey("subcategories", "service_id")
	}

	v := model.Subcategory{
		ID:               r.s.next("subcategories"),
		ServiceID:        ptr(serviceID),
		Name:             *in.Name,
		Price:            in.Price.Round(2),
		ShortDescription: *in.ShortDescription,
		FileURL:          in.File,
	}
	r.s.subcategories = append(r.s.subcategories, v)
	return &v, nil
}

func (r *Subcategories) GetByID(_ context.Context, id int64) (*model.Subcategory, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}

	if i := slices.IndexFunc(r.s.subcategories, func(v model.Subcategory) bool { return v.ID == id }); i >= 0 {
		v := r.s.subcategories[i]
		return &v, nil
	}
	return nil, notFound("subcategories")
}

func (r *Subcategories) ListByServiceIDs(_ context.Context, serviceIDs []int64) ([]model.Subcategory, error) {
	return r.list(func(v model.Subcategory) bool {
		return v.ServiceID != nil && slices.Contains(serviceIDs, *v.ServiceID)
	})
}

func (r *Subcategories) ListByIDs(_ context.Context, ids []int64) ([]model.Subcategory, error) {
	return r.list(func(v model.Subcategory) bool { return slices.Contains(ids, v.ID) })
}

func (r *Subcategories) list(keep func(model.Subcategory) bool) ([]model.Subcategory, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	return filter(r.s.subcategories, keep), nil
}

type Appointments struct{ s *Store }

func (r *Appointments) Create(_ context.Context, p *model.CreateAppointmentPayload) (*model.Appointment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}

	date, err := time.Parse(time.DateOnly, p.Date)
	if err != nil {
		return nil, invalidFormat("appointments")
	}
	clock, err := parseClock(p.Time)
	if err != nil {
		return nil, invalidFormat("appointments")
	}

	switch {
	case !r.s.userExists(p.ClientID):
		return nil, foreignKey("appointments", "client_id")
	case !r.s.userExists(p.VendorID):
		return nil, foreignKey("appointments", "vendor_id")
	}

	v := model.Appointment{
		ID:             r.s.next("appointments"),
		Date:           date.Format(time.DateOnly),
		Time:           clock.Format(time.TimeOnly),
		AdditionalInfo: p.AdditionalInfo,
		ClientID:       p.ClientID,
		VendorID:       p.VendorID,
		Status:         p.Status,
		CreatedAt:      now(),
	}
	r.s.appointments = append(r.s.appointments, v)
	return &v, nil
}

func parseClock(s string) (time.Time, error) {
	if strings.Count(s, ":") == 1 {
		return time.Parse("15:04", s)
	}
	return time.Parse(time.TimeOnly, s)
}

func (r *Appointments) ListAll(_ context.Context) ([]model.Appointment, error) {
	return r.list(func(model.Appointment) bool { return true })
}

func (r *Appointments) ListByClient(_ context.Context, clientID int64) ([]model.Appointment, error) {
	return r.list(func(v model.Appointment) bool { return v.ClientID == clientID })
}

func (r *Appointments) ListByVendor(_ context.Context, vendorID int64) ([]model.Appointment, error) {
	return r.list(func(v model.Appointment) bool { return v.VendorID == vendorID })
}

func (r *Appointments) list(keep func(model.Appointment) bool) ([]model.Appointment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	return filter(r.s.appointments, keep), nil
}

func (r *Appointments) UpdateStatus(_ context.Context, id int64, status bool) (*model.Appointment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}

	i := slices.IndexFunc(r.s.appointments, func(v model.Appointment) bool { return v.ID == id })
	if i < 0 {
		return nil, notFound("appointments")
	}
	r.s.appointments[i].Status = ptr(status)
	v := r.s.appointments[i]
	return &v, nil
}

func (r *Appointments) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}

	before := len(r.s.appointments)
	r.s.appointments = slices.DeleteFunc(r.s.appointments, func(v model.Appointment) bool { return v.ID == id })
	if len(r.s.appointments) == before {
		return notFound("appointments")
	}
	return nil
}

type Bookings struct{ s *Store }

func (r *Bookings) Create(_ context.Context, p *model.CreateBookingPayload) (*model.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}

	switch {
	case !r.s.userExists(p.UserID):
		return nil, foreignKey("bookings", "user_id")
	case !r.s.serviceExists(p.ServiceID):
		return nil, foreignKey("bookings", "service_id")
	case !r.s.subcategoryExists(p.SubID):
		return nil, foreignKey("bookings", "sub_id")
	}

	v := model.Booking{
		ID:        r.s.next("bookings"),
		UserID:    ptr(p.UserID),
		ServiceID: ptr(p.ServiceID),
		SubID:     ptr(p.SubID),
		Status:    ptr(model.BookingInProgress),
		CreatedAt: now(),
	}
	r.s.bookings = append(r.s.bookings, v)
	return &v, nil
}

func (r *Bookings) ListByUser(_ context.Context, userID int64) ([]model.Booking, error) {
	return r.list(func(b model.Booking) bool { return b.UserID != nil && *b.UserID == userID })
}

func (r *Bookings) ListByServiceIDs(_ context.Context, serviceIDs []int64) ([]model.Booking, error) {
	return r.list(func(b model.Booking) bool {
		return b.ServiceID != nil && slices.Contains(serviceIDs, *b.ServiceID)
	})
}

func (r *Bookings) list(keep func(model.Booking) bool) ([]model.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	return filter(r.s.bookings, keep), nil
}

func (r *Bookings) DistinctServiceIDs(ctx context.Context, serviceIDs []int64) ([]int64, error) {
	bookings, err := r.ListByServiceIDs(ctx, serviceIDs)
	if err != nil {
		return nil, err
	}

	ids := []int64{}
	for _, b := range bookings {
		if !slices.Contains(ids, *b.ServiceID) {
			ids = append(ids, *b.ServiceID)
		}
	}
	slices.Sort(ids)
	return ids, nil
}

func (r *Bookings) UpdateStatus(_ context.Context, id int64, status string) (*model.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}

	if !slices.Contains([]string{model.BookingInProgress, model.BookingConfirmed, model.BookingCompleted}, status) {
		return nil, &pgconn.PgError{Severity: "ERROR", Code: "22P02", TableName: "bookings"}
	}

	i := slices.IndexFunc(r.s.bookings, func(b model.Booking) bool { return b.ID == id })
	if i < 0 {
		return nil, notFound("bookings")
	}
	r.s.bookings[i].Status = ptr(status)
	v := r.s.bookings[i]
	return &v, nil
}

type Payments struct{ s *Store }

func (r *Payments) Create(_ context.Context, p *model.CreatePaymentPayload) (*model.Payment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}

	if !r.s.bookingExists(p.BookingID) {
		return nil, foreignKey("payments", "booking_id")
	}

	v := model.Payment{
		ID:              r.s.next("payments"),
		BookingID:       ptr(p.BookingID),
		Deposit:         p.Deposit.Round(2),
		ReferenceNumber: p.ReferenceNumber,
		CreatedAt:       now(),
	}
	r.s.payments = append(r.s.payments, v)
	return &v, nil
}

func (r *Payments) FirstByBooking(_ context.Context, bookingID int64) (*model.Payment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}

	i := slices.IndexFunc(r.s.payments, func(p model.Payment) bool {
		return p.BookingID != nil && *p.BookingID == bookingID
	})
	if i < 0 {
		return nil, notFound("payments")
	}
	v := r.s.payments[i]
	return &v, nil
}

type WeddingPlans struct{ s *Store }

func (r *WeddingPlans) Create(_ context.Context, p *model.CreateWeddingPlanPayload) (*model.WeddingPlan, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}

	if !r.s.userExists(p.UserID) {
		return nil, foreignKey("wedding_plans", "user_id")
	}

	v := model.WeddingPlan{
		ID:             r.s.next("wedding_plans"),
		Budget:         p.Budget,
		Venue:          ptr(p.Venue),
		Decor:          ptr(p.Decor),
		Catering:       ptr(p.Catering),
		Entertainment:  ptr(p.Entertainment),
		Photographer:   ptr(p.Photographer),
		WeddingCake:    ptr(p.WeddingCake),
		Transportation: ptr(p.Transportation),
		UserID:         ptr(p.UserID),
		CreatedAt:      now(),
	}
	r.s.plans = append(r.s.plans, v)
	return &v, nil
}

func (r *WeddingPlans) ListByUser(_ context.Context, userID int64) ([]model.WeddingPlan, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	return filter(r.s.plans, func(p model.WeddingPlan) bool { return p.UserID != nil && *p.UserID == userID }), nil
}
