package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fieldsales/visits/internal/model"
	"github.com/fieldsales/visits/internal/repository"
	"github.com/fieldsales/visits/internal/service"
)

type newConfiguration struct {
	ConfigType   string `json:"config_type" validate:"required,min=1"`
	ConfigName   string `json:"config_name" validate:"required,min=1"`
	ConfigValue  string `json:"config_value" validate:"required,min=1"`
	DisplayOrder int    `json:"display_order"`
	IsActive     *bool  `json:"is_active"`
}

// ConfigurationHTTPHandler is http handler for configuration endpoints
type ConfigurationHTTPHandler struct {
	configSvc service.ConfigurationService
}

// NewConfigurationHTTPHandler builds new ConfigurationHTTPHandler
func NewConfigurationHTTPHandler(configSvc service.ConfigurationService) *ConfigurationHTTPHandler {
	return &ConfigurationHTTPHandler{configSvc: configSvc}
}

// GetAll lists active configuration entries, optionally narrowed by type
// @Summary     List configurations
// @Tags        configurations
// @Security    ApiKeyAuth
// @Produce     json
// @Param       type query   string false "Configuration type"
// @Success     200  {array} model.Configuration
// @Router      /api/configurations [get]
func (h *ConfigurationHTTPHandler) GetAll(c echo.Context) error {
	configs, err := h.configSvc.FindActive(c.Request().Context(), c.QueryParam("type"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, configs)
}

// Post creates new configuration entry, admins only
// @Summary     New configuration
// @Tags        configurations
// @Security    ApiKeyAuth
// @Accept      json
// @Produce     json
// @Param       newConfiguration body     newConfiguration true "Configuration data"
// @Success     201              {object} model.Configuration
// @Failure     400              {object} echo.HTTPError
// @Router      /api/configurations [post]
func (h *ConfigurationHTTPHandler) Post(c echo.Context) error {
	var nc newConfiguration
	if err := c.Bind(&nc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&nc); err != nil {
		return err
	}

	isActive := true
	if nc.IsActive != nil {
		isActive = *nc.IsActive
	}

	config, err := h.configSvc.Create(c.Request().Context(), &model.Configuration{
		ConfigType:   nc.ConfigType,
		ConfigName:   nc.ConfigName,
		ConfigValue:  nc.ConfigValue,
		DisplayOrder: nc.DisplayOrder,
		IsActive:     isActive,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, config)
}

// Put partially updates configuration entry, admins only
// @Summary     Update configuration
// @Tags        configurations
// @Security    ApiKeyAuth
// @Accept      json
// @Produce     json
// @Param       id           path     string                         true "Configuration id" Format(uuid)
// @Param       configUpdate body     repository.ConfigurationUpdate true "Fields to update"
// @Success     200          {object} model.Configuration
// @Failure     404          {object} echo.HTTPError
// @Router      /api/configurations/{id} [put]
func (h *ConfigurationHTTPHandler) Put(c echo.Context) error {
	var upd repository.ConfigurationUpdate
	if err := c.Bind(&upd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&upd); err != nil {
		return err
	}

	config, err := h.configSvc.Update(c.Request().Context(), c.Param("id"), &upd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, config)
}

// DeleteByID deletes configuration entry, admins only
// @Summary     Delete configuration
// @Tags        configurations
// @Security    ApiKeyAuth
// @Param       id path string true "Configuration id" Format(uuid)
// @Success     204 "Successful status code"
// @Failure     404 {object} echo.HTTPError
// @Router      /api/configurations/{id} [delete]
func (h *ConfigurationHTTPHandler) DeleteByID(c echo.Context) error {
	if err := h.configSvc.DeleteByID(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
