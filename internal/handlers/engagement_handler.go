package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/linkup-app/backend/internal/models"
	"github.com/linkup-app/backend/internal/services"
	"go.uber.org/zap"
)

// EngagementHandler handles like, unlike and comment HTTP requests
type EngagementHandler struct {
	engagementService services.EngagementService
	logger            *zap.Logger
}

// NewEngagementHandler creates a new EngagementHandler
func NewEngagementHandler(engagementService services.EngagementService, logger *zap.Logger) *EngagementHandler {
	return &EngagementHandler{engagementService: engagementService, logger: logger}
}

// RegisterEngagementRoutes registers engagement-related routes
func (h *EngagementHandler) RegisterEngagementRoutes(g *echo.Group) {
	g.PUT("/posts/:id/like", h.LikePost)
	g.PUT("/posts/:id/unlike", h.UnlikePost)
	g.POST("/posts/:id/comments", h.CommentOnPost)
	g.DELETE("/posts/:id/comments/:comment_id", h.DeleteComment)
}

// LikePost likes a post and returns the new likes count
func (h *EngagementHandler) LikePost(c echo.Context) error {
	viewer := currentIdentity(c)

	count, err := h.engagementService.Like(c.Request().Context(), viewer, c.Param("id"))
	if err != nil {
		return serviceHTTPError(h.logger, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"likes_count": count})
}

// UnlikePost removes the current user's like and returns the new likes count
func (h *EngagementHandler) UnlikePost(c echo.Context) error {
	viewer := currentIdentity(c)

	count, err := h.engagementService.Unlike(c.Request().Context(), viewer, c.Param("id"))
	if err != nil {
		return serviceHTTPError(h.logger, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"likes_count": count})
}

// CommentOnPost adds a comment and returns the post's comments
func (h *EngagementHandler) CommentOnPost(c echo.Context) error {
	viewer := currentIdentity(c)

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comments, err := h.engagementService.Comment(c.Request().Context(), viewer, c.Param("id"), req.Text)
	if err != nil {
		return serviceHTTPError(h.logger, err)
	}
	return c.JSON(http.StatusOK, comments)
}

// DeleteComment removes a comment (author only) and returns the remaining comments
func (h *EngagementHandler) DeleteComment(c echo.Context) error {
	viewer := currentIdentity(c)

	comments, err := h.engagementService.DeleteComment(c.Request().Context(), viewer, c.Param("id"), c.Param("comment_id"))
	if err != nil {
		return serviceHTTPError(h.logger, err)
	}
	return c.JSON(http.StatusOK, comments)
}
