package handler

import (
	"net/http"

	"blog-service/internal/application/interfaces"

	"github.com/labstack/echo/v4"
)

type NotificationHandler struct {
	notifications interfaces.NotificationService
}

func NewNotificationHandler(notifications interfaces.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

func (h *NotificationHandler) List(c echo.Context) error {
	page, err := pageQuery(c)
	if err != nil {
		return err
	}

	notifications, err := h.notifications.ListNotifications(c.Request().Context(), IdentityFrom(c).UserID, page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notifications)
}

func (h *NotificationHandler) MarkRead(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	notification, err := h.notifications.MarkRead(c.Request().Context(), id, IdentityFrom(c).UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notification)
}
