package domain

import "time"

// Device platforms. Unknown values fall back to FCM delivery.
const (
	PlatformIOS     = "ios"
	PlatformAndroid = "android"
	PlatformWeb     = "web"
)

// DeviceToken is a push notification token registered for a user.
// Registration replaces any previous token, so a user has at most one
// live row at a time even though the schema allows more.
type DeviceToken struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"index;not null"`
	Token     string    `json:"-" gorm:"not null"` // Don't expose token in JSON
	Platform  string    `json:"platform"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
