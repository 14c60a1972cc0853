package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fieldsales/visits/internal/model"
	"github.com/fieldsales/visits/internal/repository"
	"github.com/fieldsales/visits/internal/service"
)

type newCustomer struct {
	ShopName      string         `json:"shop_name" validate:"required,min=1"`
	ShopType      model.ShopType `json:"shop_type" validate:"required,oneof=growshop garden_center nursery hydroponics_store other"`
	ShopAddress   *string        `json:"shop_address"`
	Zipcode       *string        `json:"zipcode"`
	City          *string        `json:"city"`
	County        *string        `json:"county"`
	Region        *string        `json:"region"`
	ContactPerson *string        `json:"contact_person"`
	ContactPhone  *string        `json:"contact_phone"`
	ContactEmail  *string        `json:"contact_email" validate:"omitempty,email"`
	JobTitle      *string        `json:"job_title"`
}

// CustomerHTTPHandler is http handler for customer endpoints
type CustomerHTTPHandler struct {
	customerSvc service.CustomerService
}

// NewCustomerHTTPHandler builds new CustomerHTTPHandler
func NewCustomerHTTPHandler(customerSvc service.CustomerService) *CustomerHTTPHandler {
	return &CustomerHTTPHandler{customerSvc: customerSvc}
}

// GetAll lists active customers
// @Summary     List customers
// @Tags        customers
// @Security    ApiKeyAuth
// @Produce     json
// @Success     200 {array} model.Customer
// @Router      /api/customers [get]
func (h *CustomerHTTPHandler) GetAll(c echo.Context) error {
	customers, err := h.customerSvc.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customers)
}

// Get returns single customer by id
// @Summary     Get customer by id
// @Tags        customers
// @Security    ApiKeyAuth
// @Produce     json
// @Param       id  path     string true "Customer id" Format(uuid)
// @Success     200 {object} model.Customer
// @Failure     404 {object} echo.HTTPError
// @Router      /api/customers/{id} [get]
func (h *CustomerHTTPHandler) Get(c echo.Context) error {
	customer, err := h.customerSvc.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customer)
}

// Post creates new customer shop, admins and managers only
// @Summary     New customer
// @Tags        customers
// @Security    ApiKeyAuth
// @Accept      json
// @Produce     json
// @Param       newCustomer body     newCustomer true "Customer data"
// @Success     201         {object} model.Customer
// @Failure     400         {object} echo.HTTPError
// @Router      /api/customers [post]
func (h *CustomerHTTPHandler) Post(c echo.Context) error {
	var nc newCustomer
	if err := c.Bind(&nc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&nc); err != nil {
		return err
	}

	customer, err := h.customerSvc.Create(c.Request().Context(), &model.Customer{
		ShopName:      nc.ShopName,
		ShopType:      nc.ShopType,
		ShopAddress:   nc.ShopAddress,
		Zipcode:       nc.Zipcode,
		City:          nc.City,
		County:        nc.County,
		Region:        nc.Region,
		ContactPerson: nc.ContactPerson,
		ContactPhone:  nc.ContactPhone,
		ContactEmail:  nc.ContactEmail,
		JobTitle:      nc.JobTitle,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, customer)
}

// Put partially updates customer, admins and managers only
// @Summary     Update customer
// @Tags        customers
// @Security    ApiKeyAuth
// @Accept      json
// @Produce     json
// @Param       id             path     string                    true "Customer id" Format(uuid)
// @Param       customerUpdate body     repository.CustomerUpdate true "Fields to update"
// @Success     200            {object} model.Customer
// @Failure     404            {object} echo.HTTPError
// @Router      /api/customers/{id} [put]
func (h *CustomerHTTPHandler) Put(c echo.Context) error {
	var upd repository.CustomerUpdate
	if err := c.Bind(&upd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&upd); err != nil {
		return err
	}

	customer, err := h.customerSvc.Update(c.Request().Context(), c.Param("id"), &upd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customer)
}

// DeleteByID deletes customer, admins only
// @Summary     Delete customer
// @Tags        customers
// @Security    ApiKeyAuth
// @Param       id path string true "Customer id" Format(uuid)
// @Success     204 "Successful status code"
// @Failure     404 {object} echo.HTTPError
// @Router      /api/customers/{id} [delete]
func (h *CustomerHTTPHandler) DeleteByID(c echo.Context) error {
	if err := h.customerSvc.DeleteByID(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
