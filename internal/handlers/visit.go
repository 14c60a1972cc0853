package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fieldsales/visits/internal/middleware"
	"github.com/fieldsales/visits/internal/model"
	"github.com/fieldsales/visits/internal/repository"
	"github.com/fieldsales/visits/internal/service"
)

const (
	defaultVisitLimit = 100
	maxVisitLimit     = 500
)

type newVisit struct {
	CustomerID             string    `json:"customer_id" validate:"required,uuid"`
	ShopName               string    `json:"shop_name" validate:"required,min=1"`
	VisitDate              time.Time `json:"visit_date" validate:"required"`
	VisitPurpose           string    `json:"visit_purpose" validate:"required,min=1"`
	ProductVisibilityScore float64   `json:"product_visibility_score"`
	ProductsDiscussed      []string  `json:"products_discussed"`
	TrainingProvided       bool      `json:"training_provided"`
	CommercialOutcome      string    `json:"commercial_outcome"`
	CompetitorPresence     *string   `json:"competitor_presence"`
	OverallSatisfaction    float64   `json:"overall_satisfaction"`
	Notes                  *string   `json:"notes"`
	Photos                 []string  `json:"photos"`
}

// VisitHTTPHandler is http handler for visit endpoints
type VisitHTTPHandler struct {
	visitSvc service.VisitService
}

// NewVisitHTTPHandler builds new VisitHTTPHandler
func NewVisitHTTPHandler(visitSvc service.VisitService) *VisitHTTPHandler {
	return &VisitHTTPHandler{visitSvc: visitSvc}
}

// GetAll lists visits visible to the caller
// @Summary     List visits
// @Description Returns visits of the caller, or of everyone for admins
// @Tags        visits
// @Security    ApiKeyAuth
// @Produce     json
// @Param       order  query    string false "Sort field, leading - for descending"
// @Param       limit  query    int    false "Page size"
// @Param       offset query    int    false "Page offset"
// @Success     200    {array}  model.Visit
// @Router      /api/visits [get]
func (h *VisitHTTPHandler) GetAll(c echo.Context) error {
	visits, err := h.visitSvc.FindAll(c.Request().Context(), middleware.Identity(c), visitFilter(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, visits)
}

// Get returns single visit by id
// @Summary     Get visit by id
// @Tags        visits
// @Security    ApiKeyAuth
// @Produce     json
// @Param       id  path     string true "Visit id" Format(uuid)
// @Success     200 {object} model.Visit
// @Failure     404 {object} echo.HTTPError
// @Router      /api/visits/{id} [get]
func (h *VisitHTTPHandler) Get(c echo.Context) error {
	v, err := h.visitSvc.FindByID(c.Request().Context(), middleware.Identity(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, v)
}

// Post creates new visit for the caller
// @Summary     Log new visit
// @Tags        visits
// @Security    ApiKeyAuth
// @Accept      json
// @Produce     json
// @Param       newVisit body     newVisit true "Visit data"
// @Success     201      {object} model.Visit
// @Failure     400      {object} echo.HTTPError
// @Router      /api/visits [post]
func (h *VisitHTTPHandler) Post(c echo.Context) error {
	var nv newVisit
	if err := c.Bind(&nv); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&nv); err != nil {
		return err
	}

	v, err := h.visitSvc.Create(c.Request().Context(), middleware.Identity(c), &model.Visit{
		CustomerID:             nv.CustomerID,
		ShopName:               nv.ShopName,
		VisitDate:              nv.VisitDate,
		VisitPurpose:           nv.VisitPurpose,
		ProductVisibilityScore: nv.ProductVisibilityScore,
		ProductsDiscussed:      nv.ProductsDiscussed,
		TrainingProvided:       nv.TrainingProvided,
		CommercialOutcome:      nv.CommercialOutcome,
		CompetitorPresence:     nv.CompetitorPresence,
		OverallSatisfaction:    nv.OverallSatisfaction,
		Notes:                  nv.Notes,
		Photos:                 nv.Photos,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, v)
}

// Put partially updates visit, derived fields are recomputed
// @Summary     Update visit
// @Tags        visits
// @Security    ApiKeyAuth
// @Accept      json
// @Produce     json
// @Param       id          path     string                 true "Visit id" Format(uuid)
// @Param       visitUpdate body     repository.VisitUpdate true "Fields to update"
// @Success     200         {object} model.Visit
// @Failure     404         {object} echo.HTTPError
// @Router      /api/visits/{id} [put]
func (h *VisitHTTPHandler) Put(c echo.Context) error {
	var upd repository.VisitUpdate
	if err := c.Bind(&upd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&upd); err != nil {
		return err
	}

	v, err := h.visitSvc.Update(c.Request().Context(), middleware.Identity(c), c.Param("id"), &upd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, v)
}

// DeleteByID deletes visit by id
// @Summary     Delete visit
// @Tags        visits
// @Security    ApiKeyAuth
// @Param       id path string true "Visit id" Format(uuid)
// @Success     204 "Successful status code"
// @Failure     404 {object} echo.HTTPError
// @Router      /api/visits/{id} [delete]
func (h *VisitHTTPHandler) DeleteByID(c echo.Context) error {
	if err := h.visitSvc.DeleteByID(c.Request().Context(), middleware.Identity(c), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// visitFilter parses order/limit/offset query parameters. Without an order
// parameter listing returns newest visits first. Unknown sort fields fall
// through to the repository default.
func visitFilter(c echo.Context) repository.VisitFilter {
	f := repository.VisitFilter{
		OrderBy:    "created_at",
		Descending: true,
		Limit:      defaultVisitLimit,
	}

	if order := c.QueryParam("order"); order != "" {
		f.Descending = strings.HasPrefix(order, "-")
		f.OrderBy = strings.TrimPrefix(order, "-")
	}

	if limit, err := strconv.Atoi(c.QueryParam("limit")); err == nil && limit > 0 {
		if limit > maxVisitLimit {
			limit = maxVisitLimit
		}
		f.Limit = limit
	}

	if offset, err := strconv.Atoi(c.QueryParam("offset")); err == nil && offset > 0 {
		f.Offset = offset
	}

	return f
}
