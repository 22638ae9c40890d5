package service

import (
	"context"

	"github.com/nyashahama/bkw-backend/internal/model"
	"golang.org/x/sync/errgroup"
)

type ServiceRepository interface {
	Create(ctx context.Context, title, description string, userID int64) (*model.Service, error)
	GetByID(ctx context.Context, id int64) (*model.Service, error)
	ListAll(ctx context.Context) ([]model.Service, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Service, error)
	ListByIDs(ctx context.Context, ids []int64) ([]model.Service, error)
	IDsByUser(ctx context.Context, userID int64) ([]int64, error)
	Delete(ctx context.Context, id int64) error
}

type SubcategoryRepository interface {
	Create(ctx context.Context, serviceID int64, in model.SubcategoryInput) (*model.Subcategory, error)
	GetByID(ctx context.Context, id int64) (*model.Subcategory, error)
	ListByServiceIDs(ctx context.Context, serviceIDs []int64) ([]model.Subcategory, error)
	ListByIDs(ctx context.Context, ids []int64) ([]model.Subcategory, error)
}

// CatalogService manages vendor services and their priced subcategories.
type CatalogService struct {
	services      ServiceRepository
	subcategories SubcategoryRepository
}

func NewCatalogService(services ServiceRepository, subcategories SubcategoryRepository) *CatalogService {
	return &CatalogService{
		services:      services,
		subcategories: subcategories,
	}
}

// Create inserts the service, then all subcategories concurrently.
//
// The inserts are independent statements: when one fails the call fails, but
// the service and the subcategories already written stay.
func (s *CatalogService) Create(ctx context.Context, payload *model.CreateServicePayload) (*model.ServiceCreated, error) {
	service, err := s.services.Create(ctx, payload.Title, payload.Description, payload.UserID)
	if err != nil {
		return nil, err
	}

	var g errgroup.Group
	for _, item := range payload.Items {
		g.Go(func() error {
			_, err := s.subcategories.Create(ctx, service.ID, item)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &model.ServiceCreated{
		Message:   "Service and subcategories added successfully",
		ServiceID: service.ID,
	}, nil
}

func (s *CatalogService) List(ctx context.Context) ([]model.ServiceWithSubcategories, error) {
	services, err := s.services.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.withSubcategories(ctx, services)
}

func (s *CatalogService) ListByUser(ctx context.Context, userID int64) ([]model.ServiceWithSubcategories, error) {
	services, err := s.services.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.withSubcategories(ctx, services)
}

// withSubcategories nests subcategories under their services using a single
// lookup for all of them.
func (s *CatalogService) withSubcategories(ctx context.Context, services []model.Service) ([]model.ServiceWithSubcategories, error) {
	out := make([]model.ServiceWithSubcategories, 0, len(services))
	if len(services) == 0 {
		return out, nil
	}

	ids := make([]int64, 0, len(services))
	for _, svc := range services {
		ids = append(ids, svc.ID)
	}

	subs, err := s.subcategories.ListByServiceIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byService := make(map[int64][]model.Subcategory, len(services))
	for _, sub := range subs {
		if sub.ServiceID != nil {
			byService[*sub.ServiceID] = append(byService[*sub.ServiceID], sub)
		}
	}

	for _, svc := range services {
		nested := byService[svc.ID]
		if nested == nil {
			nested = []model.Subcategory{}
		}
		out = append(out, model.ServiceWithSubcategories{Service: svc, Subcategories: nested})
	}

	return out, nil
}

// Delete removes a service together with its subcategories and bookings.
func (s *CatalogService) Delete(ctx context.Context, id int64) (*model.Message, error) {
	if err := s.services.Delete(ctx, id); err != nil {
		return nil, err
	}
	return &model.Message{Message: "Service deleted successfully"}, nil
}
