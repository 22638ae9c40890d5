// Package repotest provides an in-memory stand-in for the PostgreSQL
// repositories. It reproduces the schema rules the services rely on: unique
// e-mail, NOT NULL columns, foreign keys, ON DELETE CASCADE and SET NULL.
// Violations are reported as *pgconn.PgError so sqlerr maps them exactly as
// it maps the real database.
package repotest

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/nyashahama/bkw-backend/internal/model"
)

type Store struct {
	mu sync.Mutex

	seq map[string]int64

	users         []model.User
	services      []model.Service
	subcategories []model.Subcategory
	appointments  []model.Appointment
	bookings      []model.Booking
	payments      []model.Payment
	plans         []model.WeddingPlan

	// Err, when set, is returned by every repository call.
	Err error
}

func NewStore() *Store {
	return &Store{seq: map[string]int64{}}
}

func (s *Store) Users() *Users { return &Users{s} }
func (s *Store) Services() *Services { return &Services{s} }
func (s *Store) Subcategories() *Subcategories { return &Subcategories{s} }
func (s *Store) Appointments() *Appointments { return &Appointments{s} }
func (s *Store) Bookings() *Bookings { return &Bookings{s} }
func (s *Store) Payments() *Payments { return &Payments{s} }
func (s *Store) WeddingPlans() *WeddingPlans { return &WeddingPlans{s} }

// ServiceRows returns a copy of the stored services.
func (s *Store) ServiceRows() []model.Service {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.services)
}

// SubcategoryRows returns a copy of the stored subcategories.
func (s *Store) SubcategoryRows() []model.Subcategory {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.subcategories)
}

func (s *Store) next(table string) int64 {
	s.seq[table]++
	return s.seq[table]
}

func now() *time.Time {
	t := time.Now().UTC().Truncate(time.Microsecond)
	return &t
}

func notFound(table string) error {
	return fmt.Errorf("failed to collect row from table:%s: %w", table, pgx.ErrNoRows)
}

func notNull(table, column string) error {
	return &pgconn.PgError{
		Severity:   "ERROR",
		Code:       "23502",
		Message:    fmt.Sprintf("null value in column %q of relation %q violates not-null constraint", column, table),
		TableName:  table,
		ColumnName: column,
	}
}

func foreignKey(table, column string) error {
	return &pgconn.PgError{
		Severity:       "ERROR",
		Code:           "23503",
		Message:        fmt.Sprintf("insert or update on table %q violates foreign key constraint", table),
		TableName:      table,
		ColumnName:     column,
		ConstraintName: fmt.Sprintf("%s_%s_fkey", table, column),
	}
}

func invalidFormat(table string) error {
	return &pgconn.PgError{Severity: "ERROR", Code: "22007", TableName: table}
}

func (s *Store) userExists(id int64) bool {
	return slices.ContainsFunc(s.users, func(u model.User) bool { return u.ID == id })
}

func (s *Store) serviceExists(id int64) bool {
	return slices.ContainsFunc(s.services, func(v model.Service) bool { return v.ID == id })
}

func (s *Store) subcategoryExists(id int64) bool {
	return slices.ContainsFunc(s.subcategories, func(v model.Subcategory) bool { return v.ID == id })
}

func (s *Store) bookingExists(id int64) bool {
	return slices.ContainsFunc(s.bookings, func(v model.Booking) bool { return v.ID == id })
}

// DeleteUser removes a user the way PostgreSQL would: bookings keep the row
// with user_id set to NULL, wedding plans are deleted.
func (s *Store) DeleteUser(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = slices.DeleteFunc(s.users, func(u model.User) bool { return u.ID == id })
	for i := range s.bookings {
		if b := s.bookings[i].UserID; b != nil && *b == id {
			s.bookings[i].UserID = nil
		}
	}
	s.plans = slices.DeleteFunc(s.plans, func(p model.WeddingPlan) bool {
		return p.UserID != nil && *p.UserID == id
	})
}

// deleteService cascades to subcategories, bookings and payments.
func (s *Store) deleteService(id int64) {
	s.services = slices.DeleteFunc(s.services, func(v model.Service) bool { return v.ID == id })

	var goneSubs []int64
	s.subcategories = slices.DeleteFunc(s.subcategories, func(v model.Subcategory) bool {
		if v.ServiceID != nil && *v.ServiceID == id {
			goneSubs = append(goneSubs, v.ID)
			return true
		}
		return false
	})

	var goneBookings []int64
	s.bookings = slices.DeleteFunc(s.bookings, func(b model.Booking) bool {
		hit := (b.ServiceID != nil && *b.ServiceID == id) ||
			(b.SubID != nil && slices.Contains(goneSubs, *b.SubID))
		if hit {
			goneBookings = append(goneBookings, b.ID)
		}
		return hit
	})

	s.payments = slices.DeleteFunc(s.payments, func(p model.Payment) bool {
		return p.BookingID != nil && slices.Contains(goneBookings, *p.BookingID)
	})
}

func ptr[T any](v T) *T {
	return &v
}

func filter[T any](rows []T, keep func(T) bool) []T {
	out := []T{}
	for _, r := range rows {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
