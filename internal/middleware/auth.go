package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/fieldsales/visits/internal/auth"
	"github.com/fieldsales/visits/internal/model"
	"github.com/fieldsales/visits/internal/ratelimit"
)

const identityContextKey = "identity"

// Authenticate verifies bearer token from Authorization header and attaches
// caller identity to the request context
func Authenticate(validator *auth.JwtValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHdr := c.Request().Header.Get("Authorization")
			hdrSplit := strings.Split(authHdr, " ")
			if len(hdrSplit) != 2 || !strings.EqualFold(hdrSplit[0], "Bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid Authorization header format")
			}

			claims, err := validator.Verify(hdrSplit[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
			}

			c.Set(identityContextKey, claims.Identity())
			return next(c)
		}
	}
}

// Identity extracts authenticated caller identity attached by Authenticate
func Identity(c echo.Context) auth.Identity {
	if ident, ok := c.Get(identityContextKey).(auth.Identity); ok {
		return ident
	}
	return auth.Identity{}
}

// RequireRole rejects callers whose role is not in the allowed set.
// Must be composed after Authenticate.
func RequireRole(roles ...model.Role) echo.MiddlewareFunc {
	allowed := make(map[model.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ident := Identity(c)
			if _, ok := allowed[ident.Role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient permissions")
			}
			return next(c)
		}
	}
}

// ThrottleLogin limits authentication attempts per source address. The check
// runs before credential verification, so a throttled caller is rejected
// regardless of credential validity.
func ThrottleLogin(limiter ratelimit.AttemptLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ok, err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				// limiter outage must not lock everyone out
				logrus.Errorf("login throttling unavailable - %v", err)
				return next(c)
			}
			if !ok {
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many authentication attempts, please try again later")
			}
			return next(c)
		}
	}
}
