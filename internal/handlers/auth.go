package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fieldsales/visits/internal/middleware"
	"github.com/fieldsales/visits/internal/model"
	"github.com/fieldsales/visits/internal/repository"
	"github.com/fieldsales/visits/internal/service"
)

type login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type session struct {
	Token     string      `json:"token"`
	ExpiresAt int64       `json:"expires_at"`
	User      *model.User `json:"user"`
}

type register struct {
	Email      string     `json:"email" validate:"required,email"`
	Password   string     `json:"password" validate:"required,min=6"`
	FullName   string     `json:"full_name" validate:"required,min=2"`
	Role       model.Role `json:"role" validate:"required,oneof=admin manager user"`
	Department *string    `json:"department"`
	Territory  *string    `json:"territory"`
}

// AuthHTTPHandler is http handler for auth endpoints
type AuthHTTPHandler struct {
	authSvc service.AuthService
}

// NewAuthHTTPHandler builds new AuthHTTPHandler
func NewAuthHTTPHandler(authSvc service.AuthService) *AuthHTTPHandler {
	return &AuthHTTPHandler{authSvc: authSvc}
}

// Login verifies credentials and issues a bearer token
// @Summary     Login user
// @Description Verifies provided credentials and signs access token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       login  body     login true "User credentials"
// @Success     200    {object} session
// @Failure     401    {object} echo.HTTPError
// @Failure     429    {object} echo.HTTPError
// @Router      /api/auth/login [post]
func (h *AuthHTTPHandler) Login(c echo.Context) error {
	var lgn login
	if err := c.Bind(&lgn); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&lgn); err != nil {
		return err
	}

	jwt, user, err := h.authSvc.Login(c.Request().Context(), lgn.Email, lgn.Password, time.Now().UTC())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &session{
		Token:     jwt.Signed,
		ExpiresAt: jwt.ExpiresAt,
		User:      user,
	})
}

// Register creates new user account, admins only
// @Summary     Register new user
// @Description Creates new user account with provided role
// @Tags        auth
// @Security    ApiKeyAuth
// @Accept      json
// @Produce     json
// @Param       register body	  register true "New user data"
// @Success     201      {object} model.User
// @Failure     400      {object} echo.HTTPError
// @Router      /api/auth/register [post]
func (h *AuthHTTPHandler) Register(c echo.Context) error {
	var reg register
	if err := c.Bind(&reg); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&reg); err != nil {
		return err
	}

	u, err := h.authSvc.Register(c.Request().Context(), service.Registration{
		Email:      reg.Email,
		Password:   reg.Password,
		FullName:   reg.FullName,
		Role:       reg.Role,
		Department: reg.Department,
		Territory:  reg.Territory,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, u)
}

// Me returns profile of the authenticated caller
// @Summary     Get current user
// @Tags        auth
// @Security    ApiKeyAuth
// @Produce     json
// @Success     200 {object} model.User
// @Router      /api/auth/me [get]
func (h *AuthHTTPHandler) Me(c echo.Context) error {
	ident := middleware.Identity(c)

	u, err := h.authSvc.Profile(c.Request().Context(), ident.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}

// UpdateMe partially updates profile of the authenticated caller
// @Summary     Update current user
// @Tags        auth
// @Security    ApiKeyAuth
// @Accept      json
// @Produce     json
// @Param       profile body     repository.ProfileUpdate true "Profile fields"
// @Success     200     {object} model.User
// @Router      /api/auth/me [put]
func (h *AuthHTTPHandler) UpdateMe(c echo.Context) error {
	var upd repository.ProfileUpdate
	if err := c.Bind(&upd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&upd); err != nil {
		return err
	}

	ident := middleware.Identity(c)

	u, err := h.authSvc.UpdateProfile(c.Request().Context(), ident.ID, &upd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}
