package middleware

import (
	"context"
	"net/http"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
	"github.com/linkup-app/backend/internal/models"
	"github.com/linkup-app/backend/internal/repositories"
)

// AuthMiddleware authenticates protected routes. A locally issued JWT is
// tried first; a Firebase ID token is accepted as an alternative when a
// Firebase client is configured. The token's UID is resolved to a local user
// account so the stored role stays authoritative.
func AuthMiddleware(jwtSecret string, authClient *auth.Client, users repositories.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString, err := bearerToken(c)
			if err != nil {
				return err
			}

			if identity, err := jwtIdentity(jwtSecret, tokenString); err == nil {
				c.Set(IdentityContextKey, identity)
				return next(c)
			}

			if authClient == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			}

			identity, err := firebaseIdentity(c.Request().Context(), authClient, users, tokenString)
			if err != nil {
				return err
			}

			c.Set(IdentityContextKey, identity)
			return next(c)
		}
	}
}

// firebaseIdentity verifies a Firebase ID token and maps its UID to a local
// user account.
func firebaseIdentity(ctx context.Context, authClient *auth.Client, users repositories.UserRepository, idToken string) (models.Identity, error) {
	token, err := authClient.VerifyIDToken(ctx, idToken)
	if err != nil {
		return models.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired ID token")
	}

	user, err := users.GetUserByFirebaseUID(token.UID)
	if err != nil {
		return models.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "No account for this Firebase user")
	}

	role := user.Role
	if role == "" {
		role = models.RoleUser
	}
	return models.Identity{UserID: user.ID, Role: role}, nil
}
