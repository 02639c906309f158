package notification

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/textil-crm/internal/application/dto"
	"github.com/tu-usuario/textil-crm/internal/domain"
	"github.com/tu-usuario/textil-crm/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeNotificationRepo struct {
	notifications map[string]*entity.Notification
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{notifications: map[string]*entity.Notification{}}
}

func (r *fakeNotificationRepo) Create(n *entity.Notification) error {
	cp := *n
	r.notifications[n.ID] = &cp
	return nil
}

func (r *fakeNotificationRepo) GetByID(id string) (*entity.Notification, error) {
	n, ok := r.notifications[id]
	if !ok {
		return nil, nil
	}
	cp := *n
	return &cp, nil
}

func (r *fakeNotificationRepo) Update(n *entity.Notification) error {
	if _, ok := r.notifications[n.ID]; !ok {
		return errors.New("notificación inexistente")
	}
	cp := *n
	r.notifications[n.ID] = &cp
	return nil
}

func (r *fakeNotificationRepo) Delete(id string) error {
	delete(r.notifications, id)
	return nil
}

func (r *fakeNotificationRepo) ListByUser(userID string) ([]*entity.Notification, error) {
	var out []*entity.Notification
	for _, n := range r.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *fakeNotificationRepo) ListUnreadByUser(userID string) ([]*entity.Notification, error) {
	var out []*entity.Notification
	for _, n := range r.notifications {
		if n.UserID == userID && !n.IsRead {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *fakeNotificationRepo) CountUnreadByUser(userID string) (int, error) {
	list, _ := r.ListUnreadByUser(userID)
	return len(list), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Casos
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_DefaultsInfoNormal(t *testing.T) {
	uc := NewUseCase(newFakeNotificationRepo())

	out, err := uc.Create(dto.CreateNotificationRequest{
		UserID:  "u1",
		Title:   "Hola",
		Message: "Bienvenido",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.NotificationTypeInfo, out.Type)
	assert.Equal(t, entity.PriorityNormal, out.Priority)
	assert.False(t, out.IsRead)
	assert.Nil(t, out.ReadDate)
}

func TestCreateForUsers_UnaPorUsuario(t *testing.T) {
	repo := newFakeNotificationRepo()
	uc := NewUseCase(repo)

	err := uc.CreateForUsers([]string{"u1", "u2", "u3"}, "Alerta de stock", "quedan 2",
		entity.NotificationTypeStock, entity.PriorityHigh, "Product", "p1")
	require.NoError(t, err)
	assert.Len(t, repo.notifications, 3)

	count, err := uc.UnreadCount("u2")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMarkRead_EsIdempotente(t *testing.T) {
	uc := NewUseCase(newFakeNotificationRepo())

	created, err := uc.Create(dto.CreateNotificationRequest{UserID: "u1", Title: "t", Message: "m"})
	require.NoError(t, err)

	first, err := uc.MarkRead(created.ID)
	require.NoError(t, err)
	assert.True(t, first.IsRead)
	require.NotNil(t, first.ReadDate)

	// La segunda marca no mueve el sello de lectura.
	second, err := uc.MarkRead(created.ID)
	require.NoError(t, err)
	assert.True(t, second.IsRead)
	assert.Equal(t, first.ReadDate.UnixNano(), second.ReadDate.UnixNano())
}

func TestMarkRead_Inexistente(t *testing.T) {
	uc := NewUseCase(newFakeNotificationRepo())

	_, err := uc.MarkRead("no-existe")
	assert.Equal(t, domain.ErrNotFound, err)
}

func TestMarkAllRead_SoloDelUsuario(t *testing.T) {
	uc := NewUseCase(newFakeNotificationRepo())

	for i := 0; i < 3; i++ {
		_, err := uc.Create(dto.CreateNotificationRequest{UserID: "u1", Title: "t", Message: "m"})
		require.NoError(t, err)
	}
	_, err := uc.Create(dto.CreateNotificationRequest{UserID: "u2", Title: "t", Message: "m"})
	require.NoError(t, err)

	require.NoError(t, uc.MarkAllRead("u1"))

	count, err := uc.UnreadCount("u1")
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	// Las bandejas de otros usuarios no se tocan.
	count, err = uc.UnreadCount("u2")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestListUnread_ExcluyeLeidas(t *testing.T) {
	uc := NewUseCase(newFakeNotificationRepo())

	a, err := uc.Create(dto.CreateNotificationRequest{UserID: "u1", Title: "a", Message: "m"})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateNotificationRequest{UserID: "u1", Title: "b", Message: "m"})
	require.NoError(t, err)

	_, err = uc.MarkRead(a.ID)
	require.NoError(t, err)

	unread, err := uc.ListUnread("u1")
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.Equal(t, "b", unread[0].Title)

	all, err := uc.ListByUser("u1")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
