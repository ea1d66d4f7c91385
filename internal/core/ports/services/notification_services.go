package services

import (
	"context"

	"github.com/lucasll37/myfinanceapp-backend/internal/core/domain"
)

// NotificationSvcFacade manages user-scoped notifications.
type NotificationSvcFacade interface {
	// Notify records a notification for a user. Used by other services
	// (e.g. membership invitations); there is no public create endpoint.
	Notify(ctx context.Context, userID, title, message string, kind string) error
	ListNotifications(ctx context.Context, userID string) ([]domain.Notification, error)
	MarkRead(ctx context.Context, notificationID, userID string) (*domain.Notification, error)
	MarkAllRead(ctx context.Context, userID string) error
}
