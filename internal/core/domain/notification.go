package domain

import "time"

// Notification is a user-scoped message, unread by default.
type Notification struct {
	NotificationID string    `json:"notificationID" db:"notification_id"`
	UserID         string    `json:"userID" db:"user_id"`
	Title          string    `json:"title" db:"title"`
	Message        string    `json:"message" db:"message"`
	Kind           *string   `json:"kind,omitempty" db:"kind"`
	IsRead         bool      `json:"isRead" db:"is_read"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}
