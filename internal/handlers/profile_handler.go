package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/linkup-app/backend/internal/models"
	"github.com/linkup-app/backend/internal/services"
	"go.uber.org/zap"
)

// ProfileHandler handles profile and follow-graph HTTP requests
type ProfileHandler struct {
	profileService services.ProfileService
	graphService   services.GraphService
	logger         *zap.Logger
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profileService services.ProfileService, graphService services.GraphService, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		graphService:   graphService,
		logger:         logger,
	}
}

// RegisterProfileRoutes registers profile-related routes
func (h *ProfileHandler) RegisterProfileRoutes(g *echo.Group) {
	g.GET("/profile/me", h.GetMyProfile)
	g.POST("/profile", h.UpsertProfile)
	g.DELETE("/profile", h.DeleteAccount)
	g.GET("/profiles", h.GetProfiles)
	g.GET("/profiles/user/:user_id", h.GetProfileByUserID)
	g.PUT("/profiles/:user_id/follow", h.FollowUser)
	g.DELETE("/profiles/:user_id/follow", h.UnfollowUser)
}

// GetMyProfile returns the current user's profile
func (h *ProfileHandler) GetMyProfile(c echo.Context) error {
	viewer := currentIdentity(c)

	profile, err := h.profileService.GetProfile(c.Request().Context(), viewer.UserID)
	if err != nil {
		return serviceHTTPError(h.logger, err)
	}
	return c.JSON(http.StatusOK, profile)
}

// UpsertProfile creates or updates the current user's profile
func (h *ProfileHandler) UpsertProfile(c echo.Context) error {
	viewer := currentIdentity(c)

	var req models.UpsertProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	profile, err := h.profileService.UpsertProfile(c.Request().Context(), viewer, req)
	if err != nil {
		return serviceHTTPError(h.logger, err)
	}
	return c.JSON(http.StatusOK, profile)
}

// DeleteAccount removes the current user's posts, profile and account
func (h *ProfileHandler) DeleteAccount(c echo.Context) error {
	viewer := currentIdentity(c)

	if err := h.profileService.DeleteAccount(c.Request().Context(), viewer); err != nil {
		return serviceHTTPError(h.logger, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"msg": "User deleted"})
}

// GetProfiles returns all profiles
func (h *ProfileHandler) GetProfiles(c echo.Context) error {
	profiles, err := h.profileService.GetProfiles(c.Request().Context())
	if err != nil {
		return serviceHTTPError(h.logger, err)
	}
	return c.JSON(http.StatusOK, profiles)
}

// GetProfileByUserID returns a profile by its owning user ID
func (h *ProfileHandler) GetProfileByUserID(c echo.Context) error {
	profile, err := h.profileService.GetProfile(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		return serviceHTTPError(h.logger, err)
	}
	return c.JSON(http.StatusOK, profile)
}

// FollowUser follows the target user and returns their profile
func (h *ProfileHandler) FollowUser(c echo.Context) error {
	viewer := currentIdentity(c)

	profile, err := h.graphService.Follow(c.Request().Context(), viewer, c.Param("user_id"))
	if err != nil {
		return serviceHTTPError(h.logger, err)
	}
	return c.JSON(http.StatusOK, profile)
}

// UnfollowUser unfollows the target user and returns their profile
func (h *ProfileHandler) UnfollowUser(c echo.Context) error {
	viewer := currentIdentity(c)

	profile, err := h.graphService.Unfollow(c.Request().Context(), viewer, c.Param("user_id"))
	if err != nil {
		return serviceHTTPError(h.logger, err)
	}
	return c.JSON(http.StatusOK, profile)
}
