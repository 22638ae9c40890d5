package service

import (
	"context"

	"github.com/nyashahama/bkw-backend/internal/errs"
	"github.com/nyashahama/bkw-backend/internal/lib/job"
	"github.com/nyashahama/bkw-backend/internal/model"
	"github.com/rs/zerolog"
)

type BookingRepository interface {
	Create(ctx context.Context, payload *model.CreateBookingPayload) (*model.Booking, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Booking, error)
	ListByServiceIDs(ctx context.Context, serviceIDs []int64) ([]model.Booking, error)
	DistinctServiceIDs(ctx context.Context, serviceIDs []int64) ([]int64, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*model.Booking, error)
}

// UserLookup is the read side of the user repository.
type UserLookup interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	ListByIDs(ctx context.Context, ids []int64) ([]model.User, error)
}

type BookingService struct {
	bookings      BookingRepository
	services      ServiceRepository
	subcategories SubcategoryRepository
	users         UserLookup
	payments      PaymentRepository
	jobs          TaskEnqueuer
}

func NewBookingService(
	bookings BookingRepository,
	services ServiceRepository,
	subcategories SubcategoryRepository,
	users UserLookup,
	payments PaymentRepository,
	jobs TaskEnqueuer,
) *BookingService {
	return &BookingService{
		bookings:      bookings,
		services:      services,
		subcategories: subcategories,
		users:         users,
		payments:      payments,
		jobs:          jobs,
	}
}

// Create stores the booking and queues a notification to the vendor who owns
// the booked service.
func (s *BookingService) Create(ctx context.Context, payload *model.CreateBookingPayload) (*model.BookingCreated, error) {
	booking, err := s.bookings.Create(ctx, payload)
	if err != nil {
		return nil, err
	}

	s.notifyVendor(ctx, booking)

	return &model.BookingCreated{Message: "Booking added successfully", Booking: booking}, nil
}

func (s *BookingService) notifyVendor(ctx context.Context, booking *model.Booking) {
	if s.jobs == nil || booking.ServiceID == nil || booking.SubID == nil {
		return
	}

	logger := zerolog.Ctx(ctx).With().Int64("booking_id", booking.ID).Logger()

	service, err := s.services.GetByID(ctx, *booking.ServiceID)
	if err != nil {
		logger.Warn().Err(err).Msg("skipping vendor notification: service lookup failed")
		return
	}

	vendor, err := s.users.GetByID(ctx, service.UserID)
	if err != nil {
		logger.Warn().Err(err).Msg("skipping vendor notification: vendor lookup failed")
		return
	}

	sub, err := s.subcategories.GetByID(ctx, *booking.SubID)
	if err != nil {
		logger.Warn().Err(err).Msg("skipping vendor notification: subcategory lookup failed")
		return
	}

	task, err := job.NewBookingReceivedTask(job.BookingReceivedPayload{
		To:              vendor.Email,
		VendorName:      vendor.FullName,
		ServiceTitle:    service.Title,
		SubcategoryName: sub.Name,
		BookingID:       booking.ID,
	})
	enqueue(ctx, s.jobs, task, err)
}

// ByUser returns the user's bookings, each with its service, subcategory and
// first payment. Related rows are fetched booking by booking; a missing row
// becomes null. When the service is gone, subcategory and payment are left
// null as well.
func (s *BookingService) ByUser(ctx context.Context, userID int64) ([]model.BookingDetails, error) {
	logger := zerolog.Ctx(ctx)

	bookings, err := s.bookings.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		logger.Warn().Int64("user_id", userID).Msg("no bookings found for user")
		return nil, errs.NewNotFoundError("No bookings found for this user", true, nil)
	}

	out := make([]model.BookingDetails, 0, len(bookings))
	for _, booking := range bookings {
		details := model.BookingDetails{Booking: booking}

		if booking.ServiceID == nil {
			logger.Warn().Int64("booking_id", booking.ID).Msg("booking has no service")
			out = append(out, details)
			continue
		}

		service, err := s.services.GetByID(ctx, *booking.ServiceID)
		if isNoRows(err) {
			logger.Warn().Int64("service_id", *booking.ServiceID).Msg("service not found for booking")
			out = append(out, details)
			continue
		}
		if err != nil {
			return nil, err
		}
		details.Service = service

		if booking.SubID != nil {
			sub, err := s.subcategories.GetByID(ctx, *booking.SubID)
			switch {
			case isNoRows(err):
				logger.Warn().Int64("sub_id", *booking.SubID).Msg("subcategory not found for booking")
			case err != nil:
				return nil, err
			default:
				details.Subcategory = sub
			}
		}

		payment, err := s.payments.FirstByBooking(ctx, booking.ID)
		switch {
		case isNoRows(err):
			logger.Debug().Int64("booking_id", booking.ID).Msg("no payment found for booking")
		case err != nil:
			return nil, err
		default:
			details.Payment = payment
		}

		out = append(out, details)
	}

	return out, nil
}

// VendorBookings lists the vendor's booked services, each with its bookings,
// the booked subcategory and the client. Services without bookings are left
// out.
func (s *BookingService) VendorBookings(ctx context.Context, userID int64) ([]model.VendorService, error) {
	serviceIDs, err := s.services.IDsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(serviceIDs) == 0 {
		return nil, errs.NewNotFoundError("No services found for the given userId", true, nil)
	}

	bookedIDs, err := s.bookings.DistinctServiceIDs(ctx, serviceIDs)
	if err != nil {
		return nil, err
	}
	if len(bookedIDs) == 0 {
		return nil, errs.NewNotFoundError("No bookings found for the services of the given userId", true, nil)
	}

	services, err := s.services.ListByIDs(ctx, bookedIDs)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookings.ListByServiceIDs(ctx, bookedIDs)
	if err != nil {
		return nil, err
	}

	subs, err := s.subcategories.ListByIDs(ctx, distinct(bookings, func(b model.Booking) *int64 { return b.SubID }))
	if err != nil {
		return nil, err
	}
	users, err := s.users.ListByIDs(ctx, distinct(bookings, func(b model.Booking) *int64 { return b.UserID }))
	if err != nil {
		return nil, err
	}

	subByID := make(map[int64]*model.Subcategory, len(subs))
	for i := range subs {
		subByID[subs[i].ID] = &subs[i]
	}
	userByID := make(map[int64]*model.User, len(users))
	for i := range users {
		userByID[users[i].ID] = &users[i]
	}

	byService := make(map[int64][]model.VendorBooking, len(services))
	for _, b := range bookings {
		if b.ServiceID == nil {
			continue
		}
		vb := model.VendorBooking{Booking: b}
		if b.SubID != nil {
			vb.Subcategory = subByID[*b.SubID]
		}
		if b.UserID != nil {
			vb.User = userByID[*b.UserID]
		}
		byService[*b.ServiceID] = append(byService[*b.ServiceID], vb)
	}

	out := make([]model.VendorService, 0, len(services))
	for _, svc := range services {
		nested := byService[svc.ID]
		if nested == nil {
			nested = []model.VendorBooking{}
		}
		out = append(out, model.VendorService{Service: svc, Bookings: nested})
	}

	return out, nil
}

func (s *BookingService) UpdateStatus(ctx context.Context, id int64, status string) (*model.Booking, error) {
	return s.bookings.UpdateStatus(ctx, id, status)
}

// distinct collects the non-null ids picked from bookings, first occurrence
// order.
func distinct(bookings []model.Booking, pick func(model.Booking) *int64) []int64 {
	seen := make(map[int64]struct{}, len(bookings))
	ids := make([]int64, 0, len(bookings))
	for _, b := range bookings {
		id := pick(b)
		if id == nil {
			continue
		}
		if _, ok := seen[*id]; ok {
			continue
		}
		seen[*id] = struct{}{}
		ids = append(ids, *id)
	}
	return ids
}
