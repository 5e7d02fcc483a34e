package domain

import "time"

// NotificationType is sent in the push data payload so clients can route taps.
const NotificationType = "miss_you_notification"

// Notification is one logged "miss you" message from source to target.
// Only IsRead ever changes after creation.
type Notification struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	SourceID    string    `json:"source_id" gorm:"index;not null"`
	TargetID    string    `json:"target_id" gorm:"index;not null"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	IsRead      bool      `json:"is_read" gorm:"default:false"`
}
