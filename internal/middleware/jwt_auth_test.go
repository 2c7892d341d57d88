package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/linkup-app/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret, userID, role string) string {
	t.Helper()
	claims := &models.JwtCustomClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func runMiddleware(authHeader string) (models.Identity, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	var identity models.Identity
	handler := JWTAuthMiddleware(testSecret)(func(c echo.Context) error {
		identity, _ = c.Get(IdentityContextKey).(models.Identity)
		return nil
	})
	err := handler(c)
	return identity, err
}

func TestJWTAuthValidToken(t *testing.T) {
	token := signToken(t, testSecret, "user-1", models.RoleUser)

	identity, err := runMiddleware("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", identity.UserID)
	assert.Equal(t, models.RoleUser, identity.Role)
	assert.False(t, identity.IsAdmin())
}

func TestJWTAuthAdminRole(t *testing.T) {
	token := signToken(t, testSecret, "admin-1", models.RoleAdmin)

	identity, err := runMiddleware("Bearer " + token)
	require.NoError(t, err)
	assert.True(t, identity.IsAdmin())
}

func TestJWTAuthMissingRoleDefaultsToUser(t *testing.T) {
	token := signToken(t, testSecret, "user-1", "")

	identity, err := runMiddleware("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, identity.Role)
}

func TestJWTAuthMissingHeader(t *testing.T) {
	_, err := runMiddleware("")
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestJWTAuthMalformedHeader(t *testing.T) {
	_, err := runMiddleware("Token abc")
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestJWTAuthWrongSecret(t *testing.T) {
	token := signToken(t, "other-secret", "user-1", models.RoleUser)

	_, err := runMiddleware("Bearer " + token)
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestJWTAuthExpiredToken(t *testing.T) {
	claims := &models.JwtCustomClaims{
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, mwErr := runMiddleware("Bearer " + signed)
	var he *echo.HTTPError
	require.ErrorAs(t, mwErr, &he)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}
