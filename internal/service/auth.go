package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/fieldsales/visits/internal/auth"
	"github.com/fieldsales/visits/internal/model"
	"github.com/fieldsales/visits/internal/repository"
	"github.com/fieldsales/visits/pkg/db/transactor"
)

// Registration is data for new user account created by an admin
type Registration struct {
	Email      string
	Password   string
	FullName   string
	Role       model.Role
	Department *string
	Territory  *string
}

// AuthService provides authentication related functionality
type AuthService interface {
	Login(ctx context.Context, email, password string, at time.Time) (*auth.Jwt, *model.User, error)
	Register(context.Context, Registration) (*model.User, error)
	Profile(ctx context.Context, userID string) (*model.User, error)
	UpdateProfile(ctx context.Context, userID string, upd *repository.ProfileUpdate) (*model.User, error)
}

type authService struct {
	jwtIssuer *auth.JwtIssuer
	trx       transactor.Transactor
	userRps   repository.UserRepository
}

// NewAuthService builds AuthService
func NewAuthService(jwtIssuer *auth.JwtIssuer, trx transactor.Transactor, userRps repository.UserRepository) AuthService {
	return &authService{
		jwtIssuer: jwtIssuer,
		trx:       trx,
		userRps:   userRps,
	}
}

// Login verifies credentials and issues signed token. Recording last login
// happens in the same transaction as the lookup.
func (s *authService) Login(ctx context.Context, email, password string, at time.Time) (*auth.Jwt, *model.User, error) {
	var (
		jwtToken *auth.Jwt
		user     *model.User
	)

	err := s.trx.WithinTransaction(ctx, func(ctx context.Context) error {
		u, err := s.userRps.FindByEmail(ctx, email)
		if err != nil {
			return err
		}

		// same generic failure for unknown email, deactivated account and
		// wrong password - the caller must not learn which one it was
		if u == nil || !u.IsActive {
			return echo.ErrUnauthorized
		}

		if err := auth.VerifyPassword(u.PasswordHash, password); err != nil {
			return echo.ErrUnauthorized
		}

		if err := s.userRps.RecordLogin(ctx, u.ID, at); err != nil {
			return err
		}
		lastLogin := at
		u.LastLogin = &lastLogin

		jwtToken, err = s.jwtIssuer.Sign(u, at)
		if err != nil {
			return err
		}

		user = u
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	logrus.Infof("user %s logged in", user.Email)
	return jwtToken, user, nil
}

func (s *authService) Register(ctx context.Context, reg Registration) (*model.User, error) {
	existing, err := s.userRps.FindByEmail(ctx, reg.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("user with email %s already exists", reg.Email))
	}

	hash, err := auth.GeneratePasswordHash(reg.Password)
	if err != nil {
		return nil, err
	}

	u := &model.User{
		ID:           uuid.NewString(),
		Email:        reg.Email,
		PasswordHash: hash,
		FullName:     reg.FullName,
		Role:         reg.Role,
		Department:   reg.Department,
		Territory:    reg.Territory,
		IsActive:     true,
	}

	if err := s.userRps.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *authService) Profile(ctx context.Context, userID string) (*model.User, error) {
	u, err := s.userRps.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, echo.ErrNotFound
	}
	return u, nil
}

func (s *authService) UpdateProfile(ctx context.Context, userID string, upd *repository.ProfileUpdate) (*model.User, error) {
	u, err := s.userRps.UpdateProfile(ctx, userID, upd)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, echo.ErrNotFound
	}
	return u, nil
}
