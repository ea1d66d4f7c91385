package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/lucasll37/myfinanceapp-backend/internal/apperrors"
	"github.com/lucasll37/myfinanceapp-backend/internal/core/domain"
	portsrepo "github.com/lucasll37/myfinanceapp-backend/internal/core/ports/repositories"
	portssvc "github.com/lucasll37/myfinanceapp-backend/internal/core/ports/services"
)

// notificationListLimit caps the listing to the most recent entries.
const notificationListLimit = 50

// NotificationService handles user-scoped notifications. Other services
// write notifications through Notify; there is no public create endpoint.
type NotificationService struct {
	BaseService
	notificationRepo portsrepo.NotificationRepository
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(nr portsrepo.NotificationRepository) portssvc.NotificationSvcFacade {
	return &NotificationService{notificationRepo: nr}
}

var _ portssvc.NotificationSvcFacade = (*NotificationService)(nil)

func (s *NotificationService) Notify(ctx context.Context, userID, title, message string, kind string) error {
	notification := domain.Notification{
		NotificationID: uuid.NewString(),
		UserID:         userID,
		Title:          title,
		Message:        message,
		CreatedAt:      time.Now(),
	}
	if kind != "" {
		notification.Kind = &kind
	}
	if err := s.notificationRepo.SaveNotification(ctx, notification); err != nil {
		s.LogError(ctx, err, "failed to save notification", slog.String("user_id", userID))
		return fmt.Errorf("failed to save notification: %w", err)
	}
	return nil
}

func (s *NotificationService) ListNotifications(ctx context.Context, userID string) ([]domain.Notification, error) {
	notifications, err := s.notificationRepo.ListNotificationsByUserID(ctx, userID, notificationListLimit)
	if err != nil {
		s.LogError(ctx, err, "failed to list notifications")
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, notificationID, userID string) (*domain.Notification, error) {
	notification, err := s.notificationRepo.MarkRead(ctx, notificationID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		s.LogError(ctx, err, "failed to mark notification read", slog.String("notification_id", notificationID))
		return nil, fmt.Errorf("failed to mark notification read: %w", err)
	}
	return notification, nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID string) error {
	if err := s.notificationRepo.MarkAllRead(ctx, userID); err != nil {
		s.LogError(ctx, err, "failed to mark all notifications read")
		return fmt.Errorf("failed to mark all notifications read: %w", err)
	}
	return nil
}
