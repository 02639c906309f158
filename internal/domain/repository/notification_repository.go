package repository

import "github.com/tu-usuario/textil-crm/internal/domain/entity"

// NotificationRepository define el puerto de persistencia para Notification.
type NotificationRepository interface {
	Create(notification *entity.Notification) error
	GetByID(id string) (*entity.Notification, error)
	Update(notification *entity.Notification) error
	Delete(id string) error
	ListByUser(userID string) ([]*entity.Notification, error)
	ListUnreadByUser(userID string) ([]*entity.Notification, error)
	CountUnreadByUser(userID string) (int, error)
}
