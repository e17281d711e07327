package handlers

import (
	"errors"
	"net/http"

	"github.com/kaxixi6666/foodflow/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// NotificationHandler handles the notification inbox
type NotificationHandler struct {
	notificationService *services.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notificationService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// RegisterNotificationRoutes registers notification-related routes
func (h *NotificationHandler) RegisterNotificationRoutes(g *echo.Group) {
	g.GET("/notifications", h.GetNotifications)
	g.GET("/notifications/unread", h.GetUnreadNotifications)
	g.GET("/notifications/count", h.GetUnreadCount)
	g.POST("/notifications/:id/read", h.MarkAsRead)
	g.POST("/notifications/read-all", h.MarkAllAsRead)
	g.DELETE("/notifications/:id", h.DeleteNotification)
}

// GetNotifications lists the caller's notifications with the unread count
func (h *NotificationHandler) GetNotifications(c echo.Context) error {
	userID := getUserIDFromContext(c)

	items, unread, err := h.notificationService.List(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{
		"notifications": items,
		"unreadCount":   unread,
	})
}

// GetUnreadNotifications lists only the caller's unread notifications
func (h *NotificationHandler) GetUnreadNotifications(c echo.Context) error {
	userID := getUserIDFromContext(c)

	items, err := h.notificationService.ListUnread(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

// GetUnreadCount returns the caller's unread notification count
func (h *NotificationHandler) GetUnreadCount(c echo.Context) error {
	userID := getUserIDFromContext(c)

	count, err := h.notificationService.UnreadCount(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"unreadCount": count})
}

// MarkAsRead marks one of the caller's notifications read
func (h *NotificationHandler) MarkAsRead(c echo.Context) error {
	userID := getUserIDFromContext(c)
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.notificationService.MarkAsRead(id, userID); err != nil {
		return mapNotificationError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// MarkAllAsRead marks all of the caller's notifications read
func (h *NotificationHandler) MarkAllAsRead(c echo.Context) error {
	userID := getUserIDFromContext(c)

	count, err := h.notificationService.MarkAllAsRead(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"markedAsRead": count})
}

// DeleteNotification removes one of the caller's notifications
func (h *NotificationHandler) DeleteNotification(c echo.Context) error {
	userID := getUserIDFromContext(c)
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.notificationService.Delete(id, userID); err != nil {
		return mapNotificationError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func mapNotificationError(err error) error {
	switch {
	case errors.Is(err, services.ErrNotificationNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Notification not found")
	case errors.Is(err, services.ErrNotificationForbidden):
		return echo.NewHTTPError(http.StatusBadRequest, "Notification belongs to another user")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
