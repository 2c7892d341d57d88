package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/linkup-app/backend/internal/middleware"
	"github.com/linkup-app/backend/internal/models"
	"github.com/linkup-app/backend/internal/services"
	"go.uber.org/zap"
)

// currentIdentity returns the authenticated caller placed in the context by
// the JWT middleware. A zero Identity means the request was not authenticated.
func currentIdentity(c echo.Context) models.Identity {
	if id, ok := c.Get(middleware.IdentityContextKey).(models.Identity); ok {
		return id
	}
	return models.Identity{}
}

// serviceHTTPError maps service errors onto HTTP status codes. Unrecognized
// errors are storage faults: logged with detail, reported generically.
func serviceHTTPError(logger *zap.Logger, err error) error {
	switch err {
	case services.ErrProfileNotFound, services.ErrPostNotFound, services.ErrCommentNotFound:
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case services.ErrSelfFollow, services.ErrAlreadyLiked, services.ErrNotLiked,
		services.ErrEmptyComment, services.ErrEmptyPost:
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case services.ErrAlreadyFollowing:
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case services.ErrNotAuthorized:
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	logger.Error("request failed", zap.Error(err))
	return echo.NewHTTPError(http.StatusInternalServerError, "Server Error")
}
