package dto

import (
	"time"

	"github.com/lucasll37/myfinanceapp-backend/internal/core/domain"
)

// NotificationResponse defines the data returned for a notification.
type NotificationResponse struct {
	NotificationID string    `json:"notificationID"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	Kind           *string   `json:"kind,omitempty"`
	IsRead         bool      `json:"isRead"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ToNotificationResponse converts a domain.Notification to NotificationResponse.
func ToNotificationResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		NotificationID: n.NotificationID,
		Title:          n.Title,
		Message:        n.Message,
		Kind:           n.Kind,
		IsRead:         n.IsRead,
		CreatedAt:      n.CreatedAt,
	}
}

// NotificationEnvelope wraps a single notification under its resource
// key. Message is set on mutations only.
type NotificationEnvelope struct {
	Message      string               `json:"message,omitempty"`
	Notification NotificationResponse `json:"notification"`
}

// ListNotificationsResponse wraps the caller's notifications.
type ListNotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
}

// ToListNotificationsResponse converts domain notifications to the list envelope.
func ToListNotificationsResponse(notifications []domain.Notification) ListNotificationsResponse {
	res := make([]NotificationResponse, len(notifications))
	for i := range notifications {
		res[i] = ToNotificationResponse(&notifications[i])
	}
	return ListNotificationsResponse{Notifications: res}
}
