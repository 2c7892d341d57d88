package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/linkup-app/backend/internal/models"
	"github.com/linkup-app/backend/internal/services"
	"go.uber.org/zap"
)

// PostHandler handles post-related HTTP requests
type PostHandler struct {
	postService services.PostService
	logger      *zap.Logger
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postService services.PostService, logger *zap.Logger) *PostHandler {
	return &PostHandler{postService: postService, logger: logger}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.GET("/posts/:id", h.GetPostByID)
	g.GET("/posts/user/:user_id", h.GetPostsByUser)
	g.DELETE("/posts/:id", h.DeletePost)
}

// CreatePost creates a new post authored by the current user
func (h *PostHandler) CreatePost(c echo.Context) error {
	viewer := currentIdentity(c)

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.postService.CreatePost(c.Request().Context(), viewer, req.Content)
	if err != nil {
		return serviceHTTPError(h.logger, err)
	}
	return c.JSON(http.StatusCreated, post)
}

// GetPostByID returns a single post
func (h *PostHandler) GetPostByID(c echo.Context) error {
	post, err := h.postService.GetPost(c.Request().Context(), c.Param("id"))
	if err != nil {
		return serviceHTTPError(h.logger, err)
	}
	return c.JSON(http.StatusOK, post)
}

// GetPostsByUser returns a user's posts, most recent first
func (h *PostHandler) GetPostsByUser(c echo.Context) error {
	posts, err := h.postService.GetPostsByUser(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		return serviceHTTPError(h.logger, err)
	}
	return c.JSON(http.StatusOK, posts)
}

// DeletePost deletes a post (author or admin only)
func (h *PostHandler) DeletePost(c echo.Context) error {
	viewer := currentIdentity(c)

	if err := h.postService.DeletePost(c.Request().Context(), viewer, c.Param("id")); err != nil {
		return serviceHTTPError(h.logger, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"msg": "Post removed"})
}
