package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/linkup-app/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runAuthMiddleware(authHeader string) (models.Identity, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	var identity models.Identity
	handler := AuthMiddleware(testSecret, nil, nil)(func(c echo.Context) error {
		identity, _ = c.Get(IdentityContextKey).(models.Identity)
		return nil
	})
	err := handler(c)
	return identity, err
}

func TestAuthMiddlewareAcceptsLocalJWT(t *testing.T) {
	token := signToken(t, testSecret, "user-1", models.RoleAdmin)

	identity, err := runAuthMiddleware("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", identity.UserID)
	assert.True(t, identity.IsAdmin())
}

func TestAuthMiddlewareRejectsGarbageWithoutFirebase(t *testing.T) {
	_, err := runAuthMiddleware("Bearer not-a-token")
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	_, err := runAuthMiddleware("")
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}
