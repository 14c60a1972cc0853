package middleware

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fieldsales/visits/internal/auth"
	"github.com/fieldsales/visits/internal/model"
	"github.com/fieldsales/visits/internal/ratelimit/mocks"
)

var testUser = &model.User{
	ID:    "bdf2f837-75f6-462a-b9ec-5dfb2e8f8792",
	Email: "rep@fieldsales.io",
	Role:  model.RoleUser,
}

func jwtTestPair(t *testing.T) (*auth.JwtIssuer, *auth.JwtValidator) {
	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err, "failed to generate test keypair")

	method := jwt.GetSigningMethod("EdDSA")
	return auth.NewJwtIssuer("test-issuer", method, 3*time.Minute, privateKey),
		auth.NewJwtValidator(method, publicKey)
}

func echoContext(t *testing.T, authHdr string) (echo.Context, *bool) {
	req := httptest.NewRequest(http.MethodGet, "/api/visits", nil)
	if authHdr != "" {
		req.Header.Set("Authorization", authHdr)
	}

	c := echo.New().NewContext(req, httptest.NewRecorder())

	called := false
	return c, &called
}

func passThrough(called *bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		*called = true
		return c.NoContent(http.StatusOK)
	}
}

func TestAuthenticateMissingHeader(t *testing.T) {
	_, validator := jwtTestPair(t)
	c, called := echoContext(t, "")

	err := Authenticate(validator)(passThrough(called))(c)

	require.Error(t, err, "request without token must be rejected")
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr, "error must be echo error")
	require.Equal(t, http.StatusUnauthorized, httpErr.Code, "it must be unauthorized error")
	require.False(t, *called, "handler must not be reached")
}

func TestAuthenticateMalformedToken(t *testing.T) {
	_, validator := jwtTestPair(t)
	c, called := echoContext(t, "Bearer not-even-a-token")

	err := Authenticate(validator)(passThrough(called))(c)

	require.Error(t, err, "garbage token must be rejected")
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr, "error must be echo error")
	require.Equal(t, http.StatusUnauthorized, httpErr.Code, "it must be unauthorized error")
	require.False(t, *called, "handler must not be reached")
}

func TestAuthenticateExpiredToken(t *testing.T) {
	issuer, validator := jwtTestPair(t)

	signed, err := issuer.Sign(testUser, time.Now().UTC().Add(-time.Hour))
	require.NoError(t, err, "failed to sign test token")

	c, called := echoContext(t, fmt.Sprintf("Bearer %s", signed.Signed))

	err = Authenticate(validator)(passThrough(called))(c)

	require.Error(t, err, "expired token must be rejected")
	require.False(t, *called, "handler must not be reached")
}

func TestAuthenticateValidToken(t *testing.T) {
	issuer, validator := jwtTestPair(t)

	signed, err := issuer.Sign(testUser, time.Now().UTC())
	require.NoError(t, err, "failed to sign test token")

	c, called := echoContext(t, fmt.Sprintf("Bearer %s", signed.Signed))

	err = Authenticate(validator)(passThrough(called))(c)

	require.NoError(t, err, "valid token must pass")
	require.True(t, *called, "handler must be reached")

	ident := Identity(c)
	require.Equal(t, testUser.ID, ident.ID, "identity id must come from token claims")
	require.Equal(t, testUser.Email, ident.Email, "identity email must come from token claims")
	require.Equal(t, testUser.Role, ident.Role, "identity role must come from token claims")
}

func TestRequireRoleForbidden(t *testing.T) {
	c, called := echoContext(t, "")
	c.Set("identity", auth.Identity{ID: testUser.ID, Role: model.RoleUser})

	err := RequireRole(model.RoleAdmin)(passThrough(called))(c)

	require.Error(t, err, "regular user must not pass admin gate")
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr, "error must be echo error")
	require.Equal(t, http.StatusForbidden, httpErr.Code, "it must be forbidden error")
	require.False(t, *called, "handler must not be reached")
}

func TestRequireRoleAllowed(t *testing.T) {
	c, called := echoContext(t, "")
	c.Set("identity", auth.Identity{ID: testUser.ID, Role: model.RoleManager})

	err := RequireRole(model.RoleAdmin, model.RoleManager)(passThrough(called))(c)

	require.NoError(t, err, "manager must pass manager gate")
	require.True(t, *called, "handler must be reached")
}

func TestThrottleLoginLimitExceeded(t *testing.T) {
	limiter := mocks.NewAttemptLimiter(t)
	limiter.On("Allow", context.Background(), mock.Anything).Return(false, nil).Once()

	c, called := echoContext(t, "")

	err := ThrottleLogin(limiter)(passThrough(called))(c)

	require.Error(t, err, "throttled caller must be rejected")
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr, "error must be echo error")
	require.Equal(t, http.StatusTooManyRequests, httpErr.Code, "it must be too many requests error")
	require.False(t, *called, "handler must not be reached")
}

func TestThrottleLoginLimiterOutage(t *testing.T) {
	limiter := mocks.NewAttemptLimiter(t)
	limiter.On("Allow", context.Background(), mock.Anything).Return(false, errors.New("redis is down")).Once()

	c, called := echoContext(t, "")

	err := ThrottleLogin(limiter)(passThrough(called))(c)

	require.NoError(t, err, "limiter outage must not lock callers out")
	require.True(t, *called, "handler must be reached")
}

func TestThrottleLoginAllowed(t *testing.T) {
	limiter := mocks.NewAttemptLimiter(t)
	limiter.On("Allow", context.Background(), mock.Anything).Return(true, nil).Once()

	c, called := echoContext(t, "")

	err := ThrottleLogin(limiter)(passThrough(called))(c)

	require.NoError(t, err, "attempt within limit must pass")
	require.True(t, *called, "handler must be reached")
}
