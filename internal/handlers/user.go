package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fieldsales/visits/internal/repository"
	"github.com/fieldsales/visits/internal/service"
)

type permissionsUpdate struct {
	Permissions map[string]bool `json:"permissions" validate:"required"`
}

// UserHTTPHandler is http handler for admin user management endpoints
type UserHTTPHandler struct {
	userSvc service.UserService
}

// NewUserHTTPHandler builds new UserHTTPHandler
func NewUserHTTPHandler(userSvc service.UserService) *UserHTTPHandler {
	return &UserHTTPHandler{userSvc: userSvc}
}

// GetAll lists all users
// @Summary     List users
// @Tags        users
// @Security    ApiKeyAuth
// @Produce     json
// @Success     200 {array} model.User
// @Router      /api/users [get]
func (h *UserHTTPHandler) GetAll(c echo.Context) error {
	users, err := h.userSvc.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Get returns single user by id
// @Summary     Get user by id
// @Tags        users
// @Security    ApiKeyAuth
// @Produce     json
// @Param       id  path     string true "User id" Format(uuid)
// @Success     200 {object} model.User
// @Failure     404 {object} echo.HTTPError
// @Router      /api/users/{id} [get]
func (h *UserHTTPHandler) Get(c echo.Context) error {
	u, err := h.userSvc.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}

// Put partially updates user
// @Summary     Update user
// @Tags        users
// @Security    ApiKeyAuth
// @Accept      json
// @Produce     json
// @Param       id         path     string                true "User id" Format(uuid)
// @Param       userUpdate body     repository.UserUpdate true "Fields to update"
// @Success     200        {object} model.User
// @Failure     404        {object} echo.HTTPError
// @Router      /api/users/{id} [put]
func (h *UserHTTPHandler) Put(c echo.Context) error {
	var upd repository.UserUpdate
	if err := c.Bind(&upd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&upd); err != nil {
		return err
	}

	u, err := h.userSvc.Update(c.Request().Context(), c.Param("id"), &upd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}

// PutPermissions replaces user permission map
// @Summary     Update user permissions
// @Tags        users
// @Security    ApiKeyAuth
// @Accept      json
// @Produce     json
// @Param       id          path     string            true "User id" Format(uuid)
// @Param       permissions body     permissionsUpdate true "Permission map"
// @Success     200         {object} model.User
// @Failure     404         {object} echo.HTTPError
// @Router      /api/users/{id}/permissions [put]
func (h *UserHTTPHandler) PutPermissions(c echo.Context) error {
	var upd permissionsUpdate
	if err := c.Bind(&upd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&upd); err != nil {
		return err
	}

	u, err := h.userSvc.UpdatePermissions(c.Request().Context(), c.Param("id"), upd.Permissions)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}

// DeleteByID deactivates user, records are kept
// @Summary     Deactivate user
// @Tags        users
// @Security    ApiKeyAuth
// @Param       id path string true "User id" Format(uuid)
// @Success     204 "Successful status code"
// @Failure     404 {object} echo.HTTPError
// @Router      /api/users/{id} [delete]
func (h *UserHTTPHandler) DeleteByID(c echo.Context) error {
	if err := h.userSvc.Deactivate(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
