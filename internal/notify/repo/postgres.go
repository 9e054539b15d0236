package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"agri-connect/internal/notify/domain"
)

type NotificationRepo struct {
	db *pgxpool.Pool
}

func NewNotificationRepo(db *pgxpool.Pool) *NotificationRepo {
	return &NotificationRepo{db: db}
}

func (r *NotificationRepo) Insert(ctx context.Context, n domain.Notification) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO notifications (id, user_id, message, type, read, timestamp_ms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, n.ID, n.UserID, n.Message, n.Type, n.Read, n.Timestamp, time.Now())
	if err != nil {
		return fmt.Errorf("insert notification failed: %w", err)
	}
	return nil
}

func (r *NotificationRepo) ListByUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, message, type, read, timestamp_ms
		FROM notifications
		WHERE user_id = $1
		ORDER BY timestamp_ms DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query notifications failed: %w", err)
	}
	defer rows.Close()

	var notifications []domain.Notification
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Message, &n.Type, &n.Read, &n.Timestamp); err != nil {
			return nil, fmt.Errorf("scan notification failed: %w", err)
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}
