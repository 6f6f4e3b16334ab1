package services

import (
	"log/slog"

	"expenseease/internal/models"
	"expenseease/internal/repositories"

	"github.com/google/uuid"
)

// NotificationService persists engine-raised events so the presentation
// layer can surface them. An event whose kind+ref is already sitting unread
// is not raised again; reading it re-arms the condition.
type NotificationService struct {
	notificationRepo repositories.NotificationRepositoryInterface
	metrics          MetricsRecorderInterface
	logger           *slog.Logger
}

// NewNotificationService creates a new notification service
func NewNotificationService(
	notificationRepo repositories.NotificationRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) NotifierInterface {
	return &NotificationService{
		notificationRepo: notificationRepo,
		metrics:          metrics,
		logger:           logger,
	}
}

// Notify raises a notification. Failures are logged, never propagated: the
// operation that raised the event must not fail because its notification
// could not be written.
func (s *NotificationService) Notify(ownerID uuid.UUID, kind string, refID uuid.UUID, message string) {
	exists, err := s.notificationRepo.ExistsUnread(ownerID, kind, refID)
	if err != nil {
		s.logger.Error("failed to check for duplicate notification",
			"error", err,
			"owner_id", ownerID,
			"kind", kind)
		return
	}
	if exists {
		return
	}

	notification := &models.Notification{
		OwnerID: ownerID,
		Kind:    kind,
		RefID:   refID,
		Message: message,
	}

	if err := s.notificationRepo.Create(notification); err != nil {
		s.logger.Error("failed to create notification",
			"error", err,
			"owner_id", ownerID,
			"kind", kind)
		return
	}

	s.metrics.IncrementCounter("notification.raised", map[string]string{"kind": kind})
	s.logger.Info("notification raised",
		slog.String("owner_id", ownerID.String()),
		slog.String("kind", kind))
}

// GetNotifications lists the owner's notifications, newest first
func (s *NotificationService) GetNotifications(ownerID uuid.UUID, unreadOnly bool, offset, limit int) ([]models.Notification, int64, error) {
	if ownerID == uuid.Nil {
		return nil, 0, ErrInvalidOwnerID
	}
	return s.notificationRepo.GetByOwnerID(ownerID, unreadOnly, offset, limit)
}

// MarkRead flags one notification as read
func (s *NotificationService) MarkRead(ownerID, id uuid.UUID) error {
	if ownerID == uuid.Nil {
		return ErrInvalidOwnerID
	}
	return s.notificationRepo.MarkRead(ownerID, id)
}
