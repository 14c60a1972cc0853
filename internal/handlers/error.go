package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/fieldsales/visits/internal/validation"
)

// ErrorHandler maps handler errors to the response taxonomy: validation
// violations to 400 with field details, echo errors as-is, anything else
// to 500 with a generic message and a server-side log entry.
func ErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		var pldErr *validation.PayloadError
		if errors.As(err, &pldErr) {
			if jsonErr := c.JSON(http.StatusBadRequest, pldErr); jsonErr != nil {
				logrus.Errorf("failed to write validation error response - %v", jsonErr)
			}
			return
		}

		var httpErr *echo.HTTPError
		if !errors.As(err, &httpErr) {
			logrus.Errorf("unexpected error on %s %s - %v", c.Request().Method, c.Request().URL.Path, err)
			err = echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
		}

		e.DefaultHTTPErrorHandler(err, c)
	}
}
