package repository

import (
	"time"

	"miss-you-backend/internal/directory/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeviceTokenRepository defines the interface for device token operations
type DeviceTokenRepository interface {
	ReplaceToken(userID, token, platform string) error
	GetTokensByUserID(userID string) ([]domain.DeviceToken, error)
	DeleteTokensByUserID(userID string) error
}

// deviceTokenRepository implements DeviceTokenRepository interface
type deviceTokenRepository struct {
	db *gorm.DB
}

// NewDeviceTokenRepository creates a new instance of deviceTokenRepository
func NewDeviceTokenRepository(db *gorm.DB) DeviceTokenRepository {
	return &deviceTokenRepository{
		db: db,
	}
}

// ReplaceToken removes every token registered for the user and stores the
// given one, inside a single transaction. Re-registering the same device is
// therefore idempotent and a user never accumulates stale tokens.
func (r *deviceTokenRepository) ReplaceToken(userID, token, platform string) error {
	deviceToken := &domain.DeviceToken{
		ID:        uuid.New().String(),
		UserID:    userID,
		Token:     token,
		Platform:  platform,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&domain.DeviceToken{}).Error; err != nil {
			return err
		}
		return tx.Create(deviceToken).Error
	})
}

// GetTokensByUserID returns all device tokens for a user
func (r *deviceTokenRepository) GetTokensByUserID(userID string) ([]domain.DeviceToken, error) {
	var tokens []domain.DeviceToken
	err := r.db.Where("user_id = ?", userID).Find(&tokens).Error
	if err != nil {
		return nil, err
	}
	return tokens, nil
}

// DeleteTokensByUserID removes all device tokens for a user
func (r *deviceTokenRepository) DeleteTokensByUserID(userID string) error {
	return r.db.Where("user_id = ?", userID).Delete(&domain.DeviceToken{}).Error
}
