package service

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/fieldsales/visits/internal/model"
	"github.com/fieldsales/visits/internal/repository"
)

// UserService provides admin user management functionality
type UserService interface {
	FindAll(context.Context) ([]*model.User, error)
	FindByID(context.Context, string) (*model.User, error)
	Update(context.Context, string, *repository.UserUpdate) (*model.User, error)
	UpdatePermissions(context.Context, string, map[string]bool) (*model.User, error)
	Deactivate(context.Context, string) error
}

type userService struct {
	userRps repository.UserRepository
}

// NewUserService builds UserService
func NewUserService(userRps repository.UserRepository) UserService {
	return &userService{userRps: userRps}
}

func (s *userService) FindAll(ctx context.Context) ([]*model.User, error) {
	return s.userRps.FindAll(ctx)
}

func (s *userService) FindByID(ctx context.Context, id string) (*model.User, error) {
	u, err := s.userRps.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, echo.ErrNotFound
	}
	return u, nil
}

func (s *userService) Update(ctx context.Context, id string, upd *repository.UserUpdate) (*model.User, error) {
	u, err := s.userRps.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, echo.ErrNotFound
	}
	return u, nil
}

func (s *userService) UpdatePermissions(ctx context.Context, id string, perms map[string]bool) (*model.User, error) {
	u, err := s.userRps.UpdatePermissions(ctx, id, perms)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, echo.ErrNotFound
	}
	return u, nil
}

// Deactivate soft-deletes user, records stay in place
func (s *userService) Deactivate(ctx context.Context, id string) error {
	deactivated, err := s.userRps.Deactivate(ctx, id)
	if err != nil {
		return err
	}
	if !deactivated {
		return echo.ErrNotFound
	}

	logrus.Infof("user %s deactivated", id)
	return nil
}
