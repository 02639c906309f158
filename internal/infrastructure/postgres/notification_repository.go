package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/textil-crm/internal/domain/entity"
	"github.com/tu-usuario/textil-crm/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo implementación de NotificationRepository (usable con pool o tx).
type NotificationRepo struct {
	q Querier
}

// NewNotificationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewNotificationRepository(q Querier) *NotificationRepo {
	return &NotificationRepo{q: q}
}

const notificationColumns = `id, user_id, title, message, type, priority, is_read,
	read_date, entity_type, entity_id, created_at`

// Create persiste una nueva notificación.
func (r *NotificationRepo) Create(n *entity.Notification) error {
	query := `
		INSERT INTO notifications (` + notificationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		n.ID, n.UserID, n.Title, n.Message, n.Type, n.Priority, n.IsRead,
		n.ReadDate, n.EntityType, n.EntityID, n.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// GetByID obtiene una notificación por ID.
func (r *NotificationRepo) GetByID(id string) (*entity.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE id = $1`
	var n entity.Notification
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&n.ID, &n.UserID, &n.Title, &n.Message, &n.Type, &n.Priority, &n.IsRead,
		&n.ReadDate, &n.EntityType, &n.EntityID, &n.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get notification: %w", err)
	}
	return &n, nil
}

// Update actualiza una notificación (flag de lectura).
func (r *NotificationRepo) Update(n *entity.Notification) error {
	query := `UPDATE notifications SET is_read = $2, read_date = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, n.ID, n.IsRead, n.ReadDate)
	if err != nil {
		return fmt.Errorf("update notification: %w", err)
	}
	return nil
}

// Delete elimina una notificación por ID.
func (r *NotificationRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM notifications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}
	return nil
}

// ListByUser lista las notificaciones de un usuario (recientes primero).
func (r *NotificationRepo) ListByUser(userID string) ([]*entity.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()
	return scanNotifications(rows)
}

// ListUnreadByUser lista las notificaciones sin leer de un usuario.
func (r *NotificationRepo) ListUnreadByUser(userID string) ([]*entity.Notification, error) {
	query := `
		SELECT ` + notificationColumns + `
		FROM notifications WHERE user_id = $1 AND is_read = FALSE ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list unread notifications: %w", err)
	}
	defer rows.Close()
	return scanNotifications(rows)
}

// CountUnreadByUser cuenta las notificaciones sin leer de un usuario.
func (r *NotificationRepo) CountUnreadByUser(userID string) (int, error) {
	query := `SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND is_read = FALSE`
	var count int
	if err := r.q.QueryRow(context.Background(), query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count unread notifications: %w", err)
	}
	return count, nil
}

func scanNotifications(rows pgx.Rows) ([]*entity.Notification, error) {
	var list []*entity.Notification
	for rows.Next() {
		var n entity.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.Type, &n.Priority,
			&n.IsRead, &n.ReadDate, &n.EntityType, &n.EntityID, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}
