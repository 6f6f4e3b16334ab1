package handlers

import (
	"net/http"

	"expenseease/internal/dto"
	"expenseease/internal/errors"
	"expenseease/internal/repositories"
	"expenseease/internal/services"

	"github.com/labstack/echo/v4"
)

// NotificationHandler handles in-app notification HTTP requests
type NotificationHandler struct {
	notifier services.NotifierInterface
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notifier services.NotifierInterface) *NotificationHandler {
	return &NotificationHandler{notifier: notifier}
}

// ListNotifications returns the owner's notifications, newest first
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	ownerID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.OwnerMissing)
	}

	unreadOnly := c.QueryParam("unread") == "true"
	offset := getIntParam(c, "offset", 0)
	limit := getIntParam(c, "limit", defaultPageLimit)
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	notifications, total, err := h.notifier.GetNotifications(ownerID, unreadOnly, offset, limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	responses := make([]dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		responses = append(responses, dto.NotificationResponse{
			ID:        notifications[i].ID,
			Kind:      notifications[i].Kind,
			RefID:     notifications[i].RefID,
			Message:   notifications[i].Message,
			Read:      notifications[i].Read,
			CreatedAt: notifications[i].CreatedAt,
		})
	}

	return c.JSON(http.StatusOK, dto.ListNotificationsResponse{
		Notifications: responses,
		Total:         total,
	})
}

// MarkNotificationRead marks one notification as read
func (h *NotificationHandler) MarkNotificationRead(c echo.Context) error {
	ownerID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.OwnerMissing)
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Notification ID must be a valid UUID"))
	}

	if err := h.notifier.MarkRead(ownerID, id); err != nil {
		if err == repositories.ErrNotificationNotFound {
			return SendError(c, errors.SystemRouteNotFound,
				errors.WithMessage("Notification not found"))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Notification marked as read",
	})
}
