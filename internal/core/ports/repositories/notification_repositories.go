package repositories

import (
	"context"

	"github.com/lucasll37/myfinanceapp-backend/internal/core/domain"
)

// NotificationRepository persists user notifications.
type NotificationRepository interface {
	SaveNotification(ctx context.Context, notification domain.Notification) error
	ListNotificationsByUserID(ctx context.Context, userID string, limit int) ([]domain.Notification, error)
	// MarkRead flips one of the user's notifications to read and returns
	// it; apperrors.ErrNotFound when it does not exist or belongs to
	// someone else.
	MarkRead(ctx context.Context, notificationID, userID string) (*domain.Notification, error)
	MarkAllRead(ctx context.Context, userID string) error
}
