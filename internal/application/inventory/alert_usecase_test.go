package inventory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/textil-crm/internal/application/dto"
	"github.com/tu-usuario/textil-crm/internal/domain"
	"github.com/tu-usuario/textil-crm/internal/domain/entity"
	"github.com/tu-usuario/textil-crm/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeAlertRepo struct {
	alerts map[string]*entity.StockAlert
}

func newFakeAlertRepo() *fakeAlertRepo {
	return &fakeAlertRepo{alerts: map[string]*entity.StockAlert{}}
}

func (r *fakeAlertRepo) Create(a *entity.StockAlert) error {
	cp := *a
	r.alerts[a.ID] = &cp
	return nil
}

func (r *fakeAlertRepo) GetByID(id string) (*entity.StockAlert, error) {
	a, ok := r.alerts[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAlertRepo) Update(a *entity.StockAlert) error {
	if _, ok := r.alerts[a.ID]; !ok {
		return errors.New("alerta inexistente")
	}
	cp := *a
	r.alerts[a.ID] = &cp
	return nil
}

func (r *fakeAlertRepo) Delete(id string) error {
	delete(r.alerts, id)
	return nil
}

func (r *fakeAlertRepo) List(limit, offset int) ([]*entity.StockAlert, error) {
	var out []*entity.StockAlert
	for _, a := range r.alerts {
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeAlertRepo) ListActive() ([]*entity.StockAlert, error) {
	var out []*entity.StockAlert
	for _, a := range r.alerts {
		if a.Status == entity.AlertStatusActive {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAlertRepo) ListByProduct(productID string) ([]*entity.StockAlert, error) {
	var out []*entity.StockAlert
	for _, a := range r.alerts {
		if a.ProductID == productID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAlertRepo) ListByType(alertType string) ([]*entity.StockAlert, error) {
	var out []*entity.StockAlert
	for _, a := range r.alerts {
		if a.AlertType == alertType {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAlertRepo) HasActiveByProduct(productID string) (bool, error) {
	for _, a := range r.alerts {
		if a.ProductID == productID && a.Status == entity.AlertStatusActive {
			return true, nil
		}
	}
	return false, nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: map[string]*entity.Product{}}
	for _, p := range products {
		cp := *p
		r.products[p.ID] = &cp
	}
	return r
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetByCode(code string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Code == code {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return errors.New("producto inexistente")
	}
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) UpdateStock(productID string, quantity int) error {
	p, ok := r.products[productID]
	if !ok {
		return errors.New("producto inexistente")
	}
	p.StockQuantity = quantity
	return nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	return r.ListAll()
}

func (r *fakeProductRepo) ListAll() ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

type fakeUserRepo struct {
	users []*entity.User
}

func (r *fakeUserRepo) Create(u *entity.User) error                      { r.users = append(r.users, u); return nil }
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error)          { return nil, nil }
func (r *fakeUserRepo) GetByUsername(u string) (*entity.User, error)     { return nil, nil }
func (r *fakeUserRepo) GetByEmail(e string) (*entity.User, error)        { return nil, nil }
func (r *fakeUserRepo) Update(u *entity.User) error                      { return nil }
func (r *fakeUserRepo) List(limit, offset int) ([]*entity.User, error)   { return r.users, nil }
func (r *fakeUserRepo) ListByRole(role string) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

// fakeNotifier registra las notificaciones creadas, o falla si se configura.
type fakeNotifier struct {
	fail  bool
	calls int
	users []string
}

func (n *fakeNotifier) CreateForUsers(userIDs []string, title, message, ntype, priority, entityType, entityID string) error {
	n.calls++
	n.users = append(n.users, userIDs...)
	if n.fail {
		return errors.New("bandeja caída")
	}
	return nil
}

type fakeMailer struct {
	fail  bool
	calls int
}

func (m *fakeMailer) SendLowStockAlert(product *entity.Product, alertType string) error {
	m.calls++
	if m.fail {
		return errors.New("smtp caído")
	}
	return nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "test", Level: "error"})
}

func product(id string, stock int) *entity.Product {
	return &entity.Product{ID: id, Code: "P-" + id, Name: "Tela " + id, StockQuantity: stock}
}

func buildAlertUC(alerts *fakeAlertRepo, products *fakeProductRepo, notifier *fakeNotifier, mailer *fakeMailer) *AlertUseCase {
	users := &fakeUserRepo{users: []*entity.User{
		{ID: "admin-1", Role: entity.RoleAdmin},
		{ID: "user-1", Role: entity.RoleUser},
	}}
	return NewAlertUseCase(alerts, products, users, notifier, mailer, testLogger())
}

// ──────────────────────────────────────────────────────────────────────────────
// Clasificación de umbrales
// ──────────────────────────────────────────────────────────────────────────────

func TestClassifyStock_Umbrales(t *testing.T) {
	cases := []struct {
		quantity  int
		alertType string
		ok        bool
	}{
		{0, entity.AlertTypeOutOfStock, true},
		{1, entity.AlertTypeLowStock, true},
		{5, entity.AlertTypeLowStock, true},
		{6, entity.AlertTypeReorderPoint, true},
		{10, entity.AlertTypeReorderPoint, true},
		{11, "", false},
		{100, "", false},
	}
	for _, tc := range cases {
		alertType, _, ok := classifyStock(tc.quantity)
		assert.Equal(t, tc.ok, ok, "quantity=%d", tc.quantity)
		assert.Equal(t, tc.alertType, alertType, "quantity=%d", tc.quantity)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Chequeo de stock
// ──────────────────────────────────────────────────────────────────────────────

func TestCheckProduct_CreaAlertaBajoUmbral(t *testing.T) {
	alerts := newFakeAlertRepo()
	products := newFakeProductRepo(product("p1", 3))
	notifier := &fakeNotifier{}
	mailer := &fakeMailer{}
	uc := buildAlertUC(alerts, products, notifier, mailer)

	out, err := uc.CheckProduct("p1")
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, entity.AlertTypeLowStock, out.AlertType)
	assert.Equal(t, 3, out.CurrentQuantity)
	assert.Equal(t, 5, out.ThresholdQuantity)
	assert.Equal(t, entity.AlertStatusActive, out.Status)

	// Solo los administradores reciben la notificación in-app.
	assert.Equal(t, 1, notifier.calls)
	assert.Equal(t, []string{"admin-1"}, notifier.users)
	assert.Equal(t, 1, mailer.calls)
}

func TestCheckProduct_StockSanoNoCreaNada(t *testing.T) {
	alerts := newFakeAlertRepo()
	uc := buildAlertUC(alerts, newFakeProductRepo(product("p1", 50)), &fakeNotifier{}, &fakeMailer{})

	out, err := uc.CheckProduct("p1")
	require.NoError(t, err)
	assert.Nil(t, out)
	assert.Empty(t, alerts.alerts)
}

func TestCheckProduct_NoDuplicaAlertaActiva(t *testing.T) {
	alerts := newFakeAlertRepo()
	uc := buildAlertUC(alerts, newFakeProductRepo(product("p1", 0)), &fakeNotifier{}, &fakeMailer{})

	first, err := uc.CheckProduct("p1")
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, entity.AlertTypeOutOfStock, first.AlertType)

	// Segundo barrido sin cambios: la alerta activa suprime la nueva.
	second, err := uc.CheckProduct("p1")
	require.NoError(t, err)
	assert.Nil(t, second)
	assert.Len(t, alerts.alerts, 1)
}

func TestCheckProduct_ResueltaPermiteNuevaAlerta(t *testing.T) {
	alerts := newFakeAlertRepo()
	uc := buildAlertUC(alerts, newFakeProductRepo(product("p1", 0)), &fakeNotifier{}, &fakeMailer{})

	first, err := uc.CheckProduct("p1")
	require.NoError(t, err)
	_, err = uc.Resolve(first.ID, dto.ResolveAlertRequest{ResolvedBy: "admin-1"})
	require.NoError(t, err)

	second, err := uc.CheckProduct("p1")
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestCheckProduct_ProductoInexistente(t *testing.T) {
	uc := buildAlertUC(newFakeAlertRepo(), newFakeProductRepo(), &fakeNotifier{}, &fakeMailer{})

	_, err := uc.CheckProduct("no-existe")
	assert.Equal(t, domain.ErrNotFound, err)
}

// Los canales laterales nunca revierten la alerta: aunque notificación y
// correo fallen, la alerta queda creada.
func TestCheckProduct_FallosLateralesNoRevierten(t *testing.T) {
	alerts := newFakeAlertRepo()
	uc := buildAlertUC(alerts, newFakeProductRepo(product("p1", 2)), &fakeNotifier{fail: true}, &fakeMailer{fail: true})

	out, err := uc.CheckProduct("p1")
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Len(t, alerts.alerts, 1)
}

func TestCheckAll_BarreTodoElCatalogo(t *testing.T) {
	alerts := newFakeAlertRepo()
	products := newFakeProductRepo(
		product("agotado", 0),
		product("bajo", 4),
		product("sano", 80),
	)
	uc := buildAlertUC(alerts, products, &fakeNotifier{}, &fakeMailer{})

	created, err := uc.CheckAll()
	require.NoError(t, err)
	assert.Len(t, created, 2)
	assert.Len(t, alerts.alerts, 2)

	// Repetir el barrido no duplica nada.
	created, err = uc.CheckAll()
	require.NoError(t, err)
	assert.Empty(t, created)
	assert.Len(t, alerts.alerts, 2)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ciclo de vida de la alerta
// ──────────────────────────────────────────────────────────────────────────────

func TestResolve_EstampaResueltaPorYFecha(t *testing.T) {
	alerts := newFakeAlertRepo()
	uc := buildAlertUC(alerts, newFakeProductRepo(product("p1", 0)), &fakeNotifier{}, &fakeMailer{})

	created, err := uc.CheckProduct("p1")
	require.NoError(t, err)

	out, err := uc.Resolve(created.ID, dto.ResolveAlertRequest{ResolvedBy: "admin-1", Notes: "reabastecido"})
	require.NoError(t, err)
	assert.Equal(t, entity.AlertStatusResolved, out.Status)
	assert.Equal(t, "admin-1", out.ResolvedBy)
	assert.Equal(t, "reabastecido", out.Notes)
	require.NotNil(t, out.ResolvedDate)

	// Resolver dos veces es un no-op: conserva el primer sello.
	again, err := uc.Resolve(created.ID, dto.ResolveAlertRequest{ResolvedBy: "otro"})
	require.NoError(t, err)
	assert.Equal(t, "admin-1", again.ResolvedBy)
	assert.Equal(t, out.ResolvedDate.Unix(), again.ResolvedDate.Unix())
}

func TestResolve_AlertaInexistente(t *testing.T) {
	uc := buildAlertUC(newFakeAlertRepo(), newFakeProductRepo(), &fakeNotifier{}, &fakeMailer{})

	_, err := uc.Resolve("no-existe", dto.ResolveAlertRequest{ResolvedBy: "admin-1"})
	assert.Equal(t, domain.ErrNotFound, err)
}

func TestCreate_AlertaManual(t *testing.T) {
	uc := buildAlertUC(newFakeAlertRepo(), newFakeProductRepo(product("p1", 900)), &fakeNotifier{}, &fakeMailer{})

	out, err := uc.Create(dto.CreateStockAlertRequest{
		ProductID:         "p1",
		CurrentQuantity:   900,
		ThresholdQuantity: 500,
		AlertType:         entity.AlertTypeOverStock,
		Notes:             "recuento físico",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.AlertTypeOverStock, out.AlertType)
	assert.Equal(t, entity.AlertStatusActive, out.Status)
}

func TestCreate_TipoInvalido(t *testing.T) {
	uc := buildAlertUC(newFakeAlertRepo(), newFakeProductRepo(product("p1", 0)), &fakeNotifier{}, &fakeMailer{})

	_, err := uc.Create(dto.CreateStockAlertRequest{ProductID: "p1", AlertType: "Tsunami"})
	assert.Equal(t, domain.ErrInvalidInput, err)
}

func TestCreate_ProductoInexistente(t *testing.T) {
	uc := buildAlertUC(newFakeAlertRepo(), newFakeProductRepo(), &fakeNotifier{}, &fakeMailer{})

	_, err := uc.Create(dto.CreateStockAlertRequest{ProductID: "fantasma", AlertType: entity.AlertTypeLowStock})
	assert.Equal(t, domain.ErrNotFound, err)
}

func TestUpdateStatus_Ignorada(t *testing.T) {
	alerts := newFakeAlertRepo()
	uc := buildAlertUC(alerts, newFakeProductRepo(product("p1", 0)), &fakeNotifier{}, &fakeMailer{})

	created, err := uc.CheckProduct("p1")
	require.NoError(t, err)

	out, err := uc.UpdateStatus(created.ID, entity.AlertStatusIgnored)
	require.NoError(t, err)
	assert.Equal(t, entity.AlertStatusIgnored, out.Status)

	_, err = uc.UpdateStatus(created.ID, "Cerrada")
	assert.Equal(t, domain.ErrInvalidInput, err)
}
