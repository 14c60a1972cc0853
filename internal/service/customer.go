package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/fieldsales/visits/internal/model"
	"github.com/fieldsales/visits/internal/repository"
)

// CustomerService provides customer shop functionality
type CustomerService interface {
	FindAll(context.Context) ([]*model.Customer, error)
	FindByID(context.Context, string) (*model.Customer, error)
	Create(context.Context, *model.Customer) (*model.Customer, error)
	Update(context.Context, string, *repository.CustomerUpdate) (*model.Customer, error)
	DeleteByID(context.Context, string) error
}

type customerService struct {
	customerRps repository.CustomerRepository
}

// NewCustomerService builds CustomerService
func NewCustomerService(customerRps repository.CustomerRepository) CustomerService {
	return &customerService{customerRps: customerRps}
}

func (s *customerService) FindAll(ctx context.Context) ([]*model.Customer, error) {
	return s.customerRps.FindAllActive(ctx)
}

func (s *customerService) FindByID(ctx context.Context, id string) (*model.Customer, error) {
	c, err := s.customerRps.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, echo.ErrNotFound
	}
	return c, nil
}

func (s *customerService) Create(ctx context.Context, c *model.Customer) (*model.Customer, error) {
	c.ID = uuid.NewString()
	c.Status = model.CustomerStatusActive

	if err := s.customerRps.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *customerService) Update(ctx context.Context, id string, upd *repository.CustomerUpdate) (*model.Customer, error) {
	c, err := s.customerRps.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, echo.ErrNotFound
	}
	return c, nil
}

func (s *customerService) DeleteByID(ctx context.Context, id string) error {
	deleted, err := s.customerRps.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return echo.ErrNotFound
	}
	return nil
}
