package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lucasll37/myfinanceapp-backend/internal/apperrors"
	"github.com/lucasll37/myfinanceapp-backend/internal/core/domain"
	portsrepo "github.com/lucasll37/myfinanceapp-backend/internal/core/ports/repositories"
)

const notificationColumns = `notification_id, user_id, title, message, kind, is_read, created_at`

type PgxNotificationRepository struct {
	BaseRepository
}

func newPgxNotificationRepository(db *pgxpool.Pool) portsrepo.NotificationRepository {
	return &PgxNotificationRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.NotificationRepository = (*PgxNotificationRepository)(nil)

func (r *PgxNotificationRepository) SaveNotification(ctx context.Context, notification domain.Notification) error {
	query := `
		INSERT INTO notifications (` + notificationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		notification.NotificationID,
		notification.UserID,
		notification.Title,
		notification.Message,
		notification.Kind,
		notification.IsRead,
		notification.CreatedAt,
	)
	if err != nil {
		return apperrors.FromPgError(err, "save notification")
	}
	return nil
}

func (r *PgxNotificationRepository) ListNotificationsByUserID(ctx context.Context, userID string, limit int) ([]domain.Notification, error) {
	query := `
		SELECT ` + notificationColumns + `
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2;
	`
	rows, err := r.Pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, apperrors.FromPgError(err, "list notifications")
	}
	notifications, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Notification])
	if err != nil {
		return nil, apperrors.FromPgError(err, "scan notifications")
	}
	return notifications, nil
}

func (r *PgxNotificationRepository) MarkRead(ctx context.Context, notificationID, userID string) (*domain.Notification, error) {
	query := `
		UPDATE notifications SET is_read = TRUE
		WHERE notification_id = $1 AND user_id = $2
		RETURNING ` + notificationColumns + `;
	`
	rows, err := r.Pool.Query(ctx, query, notificationID, userID)
	if err != nil {
		return nil, apperrors.FromPgError(err, "mark notification read")
	}
	notification, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.Notification])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.FromPgError(err, "scan notification")
	}
	return &notification, nil
}

func (r *PgxNotificationRepository) MarkAllRead(ctx context.Context, userID string) error {
	query := `UPDATE notifications SET is_read = TRUE WHERE user_id = $1 AND is_read = FALSE;`
	if _, err := r.Pool.Exec(ctx, query, userID); err != nil {
		return apperrors.FromPgError(err, "mark all notifications read")
	}
	return nil
}
