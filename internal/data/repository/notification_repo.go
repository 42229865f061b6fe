package repository

import (
	"context"
	"fmt"

	"beauty-go/internal/data/entity"
	"beauty-go/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	CreateBatch(ctx context.Context, notifications []*entity.Notification) error
	FindByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Notification, error)
	FindByType(ctx context.Context, notifType entity.NotificationType, limit int) ([]*entity.Notification, error)
	MarkRead(ctx context.Context, id, userID uuid.UUID) error
}

type notificationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewNotificationRepository(db database.PgxIface, log *zap.Logger) NotificationRepository {
	return &notificationRepository{
		db:  db,
		log: log.With(zap.String("repository", "notification")),
	}
}

const notificationColumns = `id, user_id, title, message, type, is_read, data, created_at`

const insertNotificationQuery = `
	INSERT INTO notifications (id, user_id, title, message, type, is_read, data, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

func (r *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	_, err := r.db.Exec(ctx, insertNotificationQuery,
		notification.ID,
		notification.UserID,
		notification.Title,
		notification.Message,
		notification.Type,
		notification.IsRead,
		notification.Data,
		notification.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create notification",
			zap.Error(err),
			zap.String("user_id", notification.UserID.String()),
			zap.String("type", string(notification.Type)),
		)
		return fmt.Errorf("create notification for user %s: %w", notification.UserID.String(), err)
	}

	return nil
}

func (r *notificationRepository) CreateBatch(ctx context.Context, notifications []*entity.Notification) error {
	for _, notification := range notifications {
		if err := r.Create(ctx, notification); err != nil {
			return err
		}
	}
	return nil
}

func (r *notificationRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`

	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		r.log.Error("Failed to find notifications",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find notifications for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	return r.scanRows(rows)
}

func (r *notificationRepository) FindByType(ctx context.Context, notifType entity.NotificationType, limit int) ([]*entity.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE type = $1 ORDER BY created_at DESC LIMIT $2`

	rows, err := r.db.Query(ctx, query, notifType, limit)
	if err != nil {
		r.log.Error("Failed to find notifications by type",
			zap.Error(err),
			zap.String("type", string(notifType)),
		)
		return nil, fmt.Errorf("find notifications by type %s: %w", string(notifType), err)
	}
	defer rows.Close()

	return r.scanRows(rows)
}

func (r *notificationRepository) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	query := `UPDATE notifications SET is_read = TRUE WHERE id = $1 AND user_id = $2`

	result, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		r.log.Error("Failed to mark notification read",
			zap.Error(err),
			zap.String("notification_id", id.String()),
		)
		return fmt.Errorf("mark notification %s read: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("notification %s not found", id.String())
	}

	return nil
}

func (r *notificationRepository) scanRows(rows pgx.Rows) ([]*entity.Notification, error) {
	var notifications []*entity.Notification
	for rows.Next() {
		var notification entity.Notification
		err := rows.Scan(
			&notification.ID,
			&notification.UserID,
			&notification.Title,
			&notification.Message,
			&notification.Type,
			&notification.IsRead,
			&notification.Data,
			&notification.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan notification row", zap.Error(err))
			return nil, fmt.Errorf("scan notification row: %w", err)
		}
		notifications = append(notifications, &notification)
	}

	return notifications, nil
}
