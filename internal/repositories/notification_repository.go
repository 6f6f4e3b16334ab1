package repositories

import (
	"errors"
	"fmt"
	"time"

	"expenseease/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrNotificationNotFound = errors.New("notification not found")
)

// notificationRepository implements NotificationRepositoryInterface
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB) NotificationRepositoryInterface {
	return &notificationRepository{
		db: db,
	}
}

// Create creates a new notification
func (r *notificationRepository) Create(notification *models.Notification) error {
	if err := r.db.Create(notification).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// ExistsUnread reports whether the owner already has an unread notification
// with the same kind and ref. The message is deliberately not part of the
// key: a nearing-limit message carries the running spent figure, so matching
// on it would treat every evaluation as a fresh event.
func (r *notificationRepository) ExistsUnread(ownerID uuid.UUID, kind string, refID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Notification{}).
		Where("owner_id = ? AND kind = ? AND ref_id = ? AND read = ?", ownerID, kind, refID, false).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check for unread notification: %w", err)
	}
	return count > 0, nil
}

// GetByOwnerID retrieves an owner's notifications, newest first
func (r *notificationRepository) GetByOwnerID(ownerID uuid.UUID, unreadOnly bool, offset, limit int) ([]models.Notification, int64, error) {
	var notifications []models.Notification
	var total int64

	query := r.db.Model(&models.Notification{}).Where("owner_id = ?", ownerID)
	if unreadOnly {
		query = query.Where("read = ?", false)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	if limit <= 0 {
		limit = 50
	}

	if err := query.Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&notifications).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get notifications: %w", err)
	}

	return notifications, total, nil
}

// MarkRead flags one notification as read
func (r *notificationRepository) MarkRead(ownerID, id uuid.UUID) error {
	result := r.db.Model(&models.Notification{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Update("read", true)
	if result.Error != nil {
		return fmt.Errorf("failed to mark notification read: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

// DeleteReadOlderThan purges read notifications past the retention window
func (r *notificationRepository) DeleteReadOlderThan(olderThan time.Duration) (int64, error) {
	cutoff := time.Now().Add(-olderThan)

	result := r.db.Where("read = ? AND created_at < ?", true, cutoff).
		Delete(&models.Notification{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete old notifications: %w", result.Error)
	}
	return result.RowsAffected, nil
}
