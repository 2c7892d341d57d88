package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/linkup-app/backend/internal/services"
	"go.uber.org/zap"
)

// FeedHandler handles feed-related HTTP requests
type FeedHandler struct {
	feedService services.FeedService
	logger      *zap.Logger
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(feedService services.FeedService, logger *zap.Logger) *FeedHandler {
	return &FeedHandler{feedService: feedService, logger: logger}
}

// RegisterFeedRoutes registers feed-related routes
func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/feed", h.GetFeed)
}

// GetFeed returns the personalized feed for the current user
func (h *FeedHandler) GetFeed(c echo.Context) error {
	viewer := currentIdentity(c)

	posts, err := h.feedService.GetFeed(c.Request().Context(), viewer)
	if err != nil {
		return serviceHTTPError(h.logger, err)
	}
	return c.JSON(http.StatusOK, posts)
}
