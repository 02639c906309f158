package notification

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/textil-crm/internal/application/dto"
	"github.com/tu-usuario/textil-crm/internal/domain"
	"github.com/tu-usuario/textil-crm/internal/domain/entity"
	"github.com/tu-usuario/textil-crm/internal/domain/repository"
)

// UseCase casos de uso de notificaciones in-app.
type UseCase struct {
	repo repository.NotificationRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.NotificationRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Create crea una notificación. Nace sin leer.
func (uc *UseCase) Create(in dto.CreateNotificationRequest) (*dto.NotificationResponse, error) {
	ntype := in.Type
	if ntype == "" {
		ntype = entity.NotificationTypeInfo
	}
	priority := in.Priority
	if priority == "" {
		priority = entity.PriorityNormal
	}
	n := &entity.Notification{
		ID:         uuid.New().String(),
		UserID:     in.UserID,
		Title:      in.Title,
		Message:    in.Message,
		Type:       ntype,
		Priority:   priority,
		IsRead:     false,
		EntityType: in.EntityType,
		EntityID:   in.EntityID,
		CreatedAt:  time.Now(),
	}
	if err := uc.repo.Create(n); err != nil {
		return nil, err
	}
	return toNotificationResponse(n), nil
}

// CreateForUsers crea la misma notificación para varios usuarios.
// Satisface inventory.AlertNotifier.
func (uc *UseCase) CreateForUsers(userIDs []string, title, message, ntype, priority, entityType, entityID string) error {
	for _, userID := range userIDs {
		_, err := uc.Create(dto.CreateNotificationRequest{
			UserID:     userID,
			Title:      title,
			Message:    message,
			Type:       ntype,
			Priority:   priority,
			EntityType: entityType,
			EntityID:   entityID,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// GetByID obtiene una notificación por ID.
func (uc *UseCase) GetByID(id string) (*dto.NotificationResponse, error) {
	n, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, nil
	}
	return toNotificationResponse(n), nil
}

// ListByUser lista las notificaciones de un usuario (recientes primero).
func (uc *UseCase) ListByUser(userID string) ([]dto.NotificationResponse, error) {
	list, err := uc.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	return toNotificationItems(list), nil
}

// ListUnread lista las notificaciones sin leer de un usuario.
func (uc *UseCase) ListUnread(userID string) ([]dto.NotificationResponse, error) {
	list, err := uc.repo.ListUnreadByUser(userID)
	if err != nil {
		return nil, err
	}
	return toNotificationItems(list), nil
}

// UnreadCount devuelve el número de notificaciones sin leer de un usuario.
func (uc *UseCase) UnreadCount(userID string) (int, error) {
	return uc.repo.CountUnreadByUser(userID)
}

// MarkRead marca una notificación como leída. Idempotente: sobre una ya
// leída no toca ReadDate.
func (uc *UseCase) MarkRead(id string) (*dto.NotificationResponse, error) {
	n, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, domain.ErrNotFound
	}
	if !n.IsRead {
		now := time.Now()
		n.IsRead = true
		n.ReadDate = &now
		if err := uc.repo.Update(n); err != nil {
			return nil, err
		}
	}
	return toNotificationResponse(n), nil
}

// MarkAllRead marca como leídas todas las notificaciones pendientes del usuario.
func (uc *UseCase) MarkAllRead(userID string) error {
	list, err := uc.repo.ListUnreadByUser(userID)
	if err != nil {
		return err
	}
	now := time.Now()
	for _, n := range list {
		n.IsRead = true
		n.ReadDate = &now
		if err := uc.repo.Update(n); err != nil {
			return err
		}
	}
	return nil
}

// Delete elimina una notificación.
func (uc *UseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toNotificationResponse(n *entity.Notification) *dto.NotificationResponse {
	if n == nil {
		return nil
	}
	return &dto.NotificationResponse{
		ID:         n.ID,
		UserID:     n.UserID,
		Title:      n.Title,
		Message:    n.Message,
		Type:       n.Type,
		Priority:   n.Priority,
		IsRead:     n.IsRead,
		ReadDate:   n.ReadDate,
		EntityType: n.EntityType,
		EntityID:   n.EntityID,
		CreatedAt:  n.CreatedAt,
	}
}

func toNotificationItems(list []*entity.Notification) []dto.NotificationResponse {
	items := make([]dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		items = append(items, *toNotificationResponse(n))
	}
	return items
}
