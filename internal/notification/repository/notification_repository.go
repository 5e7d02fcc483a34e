package repository

import (
	"time"

	"miss-you-backend/internal/notification/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationRepository defines the interface for the notification log
type NotificationRepository interface {
	Record(sourceID, targetID, title, description string) (string, error)
	MarkAsRead(notificationID string) (bool, error)
	ListUnread(targetID string) ([]domain.Notification, error)
}

// notificationRepository implements NotificationRepository interface
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new instance of notificationRepository
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// Record appends an unread notification and returns its id.
func (r *notificationRepository) Record(sourceID, targetID, title, description string) (string, error) {
	notification := &domain.Notification{
		ID:          uuid.New().String(),
		SourceID:    sourceID,
		TargetID:    targetID,
		Title:       title,
		Description: description,
		CreatedAt:   time.Now(),
		IsRead:      false,
	}
	if err := r.db.Create(notification).Error; err != nil {
		return "", err
	}
	return notification.ID, nil
}

// MarkAsRead flips the read flag and reports whether a row actually changed,
// so marking an unknown or already-read notification returns false.
func (r *notificationRepository) MarkAsRead(notificationID string) (bool, error) {
	result := r.db.Model(&domain.Notification{}).
		Where("id = ? AND is_read = ?", notificationID, false).
		Update("is_read", true)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ListUnread returns the unread notifications targeted at the user.
func (r *notificationRepository) ListUnread(targetID string) ([]domain.Notification, error) {
	var notifications []domain.Notification
	err := r.db.Where("target_id = ? AND is_read = ?", targetID, false).Find(&notifications).Error
	if err != nil {
		return nil, err
	}
	return notifications, nil
}
