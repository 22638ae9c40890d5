package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nyashahama/bkw-backend/internal/database"
	"github.com/nyashahama/bkw-backend/internal/model"
	"github.com/nyashahama/bkw-backend/internal/server"
	"github.com/nyashahama/bkw-backend/internal/sqlerr"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// newTestRepositories migrates the database named by BKW_TEST_DATABASE_URL
// and returns repositories over a fresh pool. Rows are left in place; tests
// create their own users with unique e-mails.
func newTestRepositories(t *testing.T) *Repositories {
	t.Helper()

	url := os.Getenv("BKW_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("BKW_TEST_DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger := zerolog.Nop()

	conn, err := pgx.Connect(ctx, url)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer conn.Close(ctx)

	if err := database.MigrateConn(ctx, &logger, conn); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	poolConfig, err := pgxpool.ParseConfig(url)
	if err != nil {
		t.Fatalf("parse pool config: %v", err)
	}
	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		t.Fatalf("create pool: %v", err)
	}
	t.Cleanup(pool.Close)

	return NewRepositories(&server.Server{
		Logger: &logger,
		DB:     &database.Database{Pool: pool},
	})
}

func createUser(t *testing.T, repos *Repositories, role string) *model.User {
	t.Helper()

	user, err := repos.User.Create(context.Background(), &model.CreateUserPayload{
		Email:    fmt.Sprintf("%s-%d@example.com", role, time.Now().UnixNano()),
		FullName: "Test " + role,
		Password: "pw",
		Role:     &role,
	}, "hash")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func TestUserRepository(t *testing.T) {
	repos := newTestRepositories(t)
	ctx := context.Background()

	defaulted, err := repos.User.Create(ctx, &model.CreateUserPayload{
		Email:    fmt.Sprintf("plain-%d@example.com", time.Now().UnixNano()),
		FullName: "Plain",
		Password: "pw",
	}, "hash")
	if err != nil {
		t.Fatal(err)
	}
	if defaulted.Role == nil || *defaulted.Role != model.RoleClient {
		t.Errorf("role: got %v, want client", defaulted.Role)
	}

	byEmail, err := repos.User.GetByEmail(ctx, defaulted.Email)
	if err != nil || byEmail.ID != defaulted.ID {
		t.Fatalf("GetByEmail: %v %+v", err, byEmail)
	}

	_, err = repos.User.Create(ctx, &model.CreateUserPayload{
		Email:    defaulted.Email,
		FullName: "Again",
		Password: "pw",
	}, "hash")
	if !sqlerr.Is(err, sqlerr.UniqueViolation) {
		t.Errorf("duplicate email: got %v", err)
	}

	if _, err := repos.User.GetByID(ctx, -1); !errors.Is(err, pgx.ErrNoRows) {
		t.Errorf("unknown id: got %v", err)
	}

	users, err := repos.User.ListByIDs(ctx, []int64{-1})
	if err != nil || users == nil || len(users) != 0 {
		t.Errorf("ListByIDs with no match: %v %v", err, users)
	}
}

func TestCatalogRepositories(t *testing.T) {
	repos := newTestRepositories(t)
	ctx := context.Background()
	vendor := createUser(t, repos, model.RoleVendor)

	service, err := repos.Service.Create(ctx, "Catering", "Food", vendor.ID)
	if err != nil {
		t.Fatal(err)
	}

	name, desc := "Buffet", "Self serve"
	price := decimal.RequireFromString("1250.50")
	sub, err := repos.Subcategory.Create(ctx, service.ID, model.SubcategoryInput{
		Name:             &name,
		Price:            &price,
		ShortDescription: &desc,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !sub.Price.Equal(price) || sub.FileURL != nil {
		t.Errorf("subcategory: %+v", sub)
	}

	_, err = repos.Subcategory.Create(ctx, service.ID, model.SubcategoryInput{Name: &name})
	if !sqlerr.Is(err, sqlerr.NotNullViolation) {
		t.Errorf("missing price: got %v", err)
	}

	ids, err := repos.Service.IDsByUser(ctx, vendor.ID)
	if err != nil || len(ids) != 1 || ids[0] != service.ID {
		t.Fatalf("IDsByUser: %v %v", err, ids)
	}

	subs, err := repos.Subcategory.ListByServiceIDs(ctx, ids)
	if err != nil || len(subs) != 1 {
		t.Fatalf("ListByServiceIDs: %v %v", err, subs)
	}

	if err := repos.Service.Delete(ctx, service.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := repos.Subcategory.GetByID(ctx, sub.ID); !errors.Is(err, pgx.ErrNoRows) {
		t.Errorf("subcategory must cascade: got %v", err)
	}
	if err := repos.Service.Delete(ctx, service.ID); !errors.Is(err, pgx.ErrNoRows) {
		t.Errorf("second delete: got %v", err)
	}
}

func TestBookingRepositories(t *testing.T) {
	repos := newTestRepositories(t)
	ctx := context.Background()
	vendor := createUser(t, repos, model.RoleVendor)
	client := createUser(t, repos, model.RoleClient)

	service, err := repos.Service.Create(ctx, "Photography", "Shoots", vendor.ID)
	if err != nil {
		t.Fatal(err)
	}
	name, desc := "Full day", "8h"
	price := decimal.NewFromInt(900)
	sub, err := repos.Subcategory.Create(ctx, service.ID, model.SubcategoryInput{
		Name:             &name,
		Price:            &price,
		ShortDescription: &desc,
	})
	if err != nil {
		t.Fatal(err)
	}

	booking, err := repos.Booking.Create(ctx, &model.CreateBookingPayload{
		ServiceID: service.ID,
		UserID:    client.ID,
		SubID:     sub.ID,
	})
	if err != nil {
		t.Fatal(err)
	}
	if booking.Status == nil || *booking.Status != model.BookingInProgress {
		t.Errorf("default status: got %v", booking.Status)
	}

	_, err = repos.Booking.Create(ctx, &model.CreateBookingPayload{ServiceID: -1, UserID: client.ID, SubID: sub.ID})
	if !sqlerr.Is(err, sqlerr.ForeignKeyViolation) {
		t.Errorf("unknown service: got %v", err)
	}

	booked, err := repos.Booking.DistinctServiceIDs(ctx, []int64{service.ID, -1})
	if err != nil || len(booked) != 1 || booked[0] != service.ID {
		t.Errorf("DistinctServiceIDs: %v %v", err, booked)
	}

	deposit := decimal.RequireFromString("150.25")
	for _, ref := range []string{"REF-1", "REF-2"} {
		if _, err := repos.Payment.Create(ctx, &model.CreatePaymentPayload{
			BookingID:       booking.ID,
			Deposit:         &deposit,
			ReferenceNumber: ref,
		}); err != nil {
			t.Fatal(err)
		}
	}
	first, err := repos.Payment.FirstByBooking(ctx, booking.ID)
	if err != nil || first.ReferenceNumber != "REF-1" || !first.Deposit.Equal(deposit) {
		t.Errorf("FirstByBooking: %v %+v", err, first)
	}

	updated, err := repos.Booking.UpdateStatus(ctx, booking.ID, model.BookingConfirmed)
	if err != nil || *updated.Status != model.BookingConfirmed {
		t.Errorf("UpdateStatus: %v %+v", err, updated)
	}
	if _, err := repos.Booking.UpdateStatus(ctx, booking.ID, "cancelled"); !sqlerr.Is(err, sqlerr.InvalidTextRepresentation) {
		t.Errorf("unknown status label: got %v", err)
	}
}

func TestAppointmentRepository(t *testing.T) {
	repos := newTestRepositories(t)
	ctx := context.Background()
	vendor := createUser(t, repos, model.RoleVendor)
	client := createUser(t, repos, model.RoleClient)

	appointment, err := repos.Appointment.Create(ctx, &model.CreateAppointmentPayload{
		Date:     "2025-06-01",
		Time:     "10:30",
		ClientID: client.ID,
		VendorID: vendor.ID,
	})
	if err != nil {
		t.Fatal(err)
	}
	if appointment.Date != "2025-06-01" || appointment.Time != "10:30:00" {
		t.Errorf("date/time text: %q %q", appointment.Date, appointment.Time)
	}
	if appointment.Status != nil {
		t.Errorf("status without input: got %v, want null", *appointment.Status)
	}

	byVendor, err := repos.Appointment.ListByVendor(ctx, vendor.ID)
	if err != nil || len(byVendor) != 1 {
		t.Fatalf("ListByVendor: %v %v", err, byVendor)
	}

	updated, err := repos.Appointment.UpdateStatus(ctx, appointment.ID, true)
	if err != nil || !*updated.Status {
		t.Errorf("UpdateStatus: %v %+v", err, updated)
	}

	if err := repos.Appointment.Delete(ctx, appointment.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := repos.Appointment.UpdateStatus(ctx, appointment.ID, false); !errors.Is(err, pgx.ErrNoRows) {
		t.Errorf("update after delete: got %v", err)
	}
}

func TestWeddingPlanRepository(t *testing.T) {
	repos := newTestRepositories(t)
	ctx := context.Background()
	client := createUser(t, repos, model.RoleClient)

	plan, err := repos.WeddingPlan.Create(ctx, &model.CreateWeddingPlanPayload{
		Budget: decimal.NewNullDecimal(decimal.NewFromInt(25000)),
		Venue:  true,
		UserID: client.ID,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !plan.Budget.Valid || !*plan.Venue || *plan.Decor {
		t.Errorf("plan: %+v", plan)
	}

	plans, err := repos.WeddingPlan.ListByUser(ctx, client.ID)
	if err != nil || len(plans) != 1 {
		t.Errorf("ListByUser: %v %v", err, plans)
	}
}
