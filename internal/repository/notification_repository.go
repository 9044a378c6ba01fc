package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"campus-lostfound/internal/domain"
)

type NotificationRepository interface {
	Create(ctx context.Context, notif *domain.Notification) error
	ListByUser(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) ([]domain.Notification, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.DeliveryStatus) error
}

type notificationRepository struct {
	db *sqlx.DB
}

func NewNotificationRepository(db *sqlx.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, notif *domain.Notification) error {
	query := `
		INSERT INTO notifications (notification_id, case_number, user_id, notification_type, message, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING notification_date`

	return r.db.QueryRowxContext(ctx, query,
		notif.ID, notif.CaseNumber, notif.UserID, notif.Type, notif.Message, notif.Status,
	).Scan(&notif.CreatedAt)
}

func (r *notificationRepository) ListByUser(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) ([]domain.Notification, int64, error) {
	params.Validate()

	var total int64
	countQuery := `SELECT COUNT(*) FROM notifications WHERE user_id = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, userID); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT * FROM notifications
		WHERE user_id = $1
		ORDER BY notification_date DESC
		LIMIT $2 OFFSET $3`

	var notifications []domain.Notification
	err := r.db.SelectContext(ctx, &notifications, query, userID, params.PageSize, params.Offset())
	return notifications, total, err
}

func (r *notificationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.DeliveryStatus) error {
	query := `UPDATE notifications SET status = $2 WHERE notification_id = $1`
	_, err := r.db.ExecContext(ctx, query, id, status)
	return err
}
