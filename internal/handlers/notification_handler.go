package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/linkup-app/backend/internal/repositories"
	"go.uber.org/zap"
)

// NotificationHandler handles notification HTTP requests
type NotificationHandler struct {
	notificationRepository repositories.NotificationRepository
	logger                 *zap.Logger
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notifRepo repositories.NotificationRepository, logger *zap.Logger) *NotificationHandler {
	return &NotificationHandler{notificationRepository: notifRepo, logger: logger}
}

// RegisterNotificationRoutes registers notification-related routes
func (h *NotificationHandler) RegisterNotificationRoutes(g *echo.Group) {
	g.GET("/notifications", h.GetNotifications)
	g.PUT("/notifications/:id/read", h.MarkRead)
}

// GetNotifications lists the current user's notifications, newest first
func (h *NotificationHandler) GetNotifications(c echo.Context) error {
	viewer := currentIdentity(c)

	notifications, err := h.notificationRepository.GetNotificationsByRecipient(viewer.UserID)
	if err != nil {
		h.logger.Error("failed to list notifications", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Server Error")
	}
	return c.JSON(http.StatusOK, notifications)
}

// MarkRead marks one of the current user's notifications as read
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	viewer := currentIdentity(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid notification ID")
	}

	if err := h.notificationRepository.MarkNotificationRead(uint(id), viewer.UserID); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Notification not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"read": true})
}
