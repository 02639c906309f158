package crm

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/textil-crm/internal/application/dto"
	"github.com/tu-usuario/textil-crm/internal/domain"
	"github.com/tu-usuario/textil-crm/internal/domain/entity"
	"github.com/tu-usuario/textil-crm/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeOrderRepo struct {
	orders map[string]*entity.Order
	items  map[string][]*entity.OrderItem
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		orders: map[string]*entity.Order{},
		items:  map[string][]*entity.OrderItem{},
	}
}

func (r *fakeOrderRepo) Create(o *entity.Order) error {
	cp := *o
	r.orders[o.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) CreateItem(item *entity.OrderItem) error {
	cp := *item
	r.items[item.OrderID] = append(r.items[item.OrderID], &cp)
	return nil
}

func (r *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOrderRepo) GetItemsByOrderID(orderID string) ([]*entity.OrderItem, error) {
	return r.items[orderID], nil
}

func (r *fakeOrderRepo) Update(o *entity.Order) error {
	if _, ok := r.orders[o.ID]; !ok {
		return errors.New("pedido inexistente")
	}
	cp := *o
	r.orders[o.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) Delete(id string) error {
	delete(r.orders, id)
	delete(r.items, id)
	return nil
}

func (r *fakeOrderRepo) List(limit, offset int) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.orders {
		out = append(out, o)
	}
	return out, nil
}

func (r *fakeOrderRepo) ListByCustomer(customerID string) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.orders {
		if o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	return out, nil
}

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
}

func newFakeCustomerRepo(customers ...*entity.Customer) *fakeCustomerRepo {
	r := &fakeCustomerRepo{customers: map[string]*entity.Customer{}}
	for _, c := range customers {
		cp := *c
		r.customers[c.ID] = &cp
	}
	return r
}

func (r *fakeCustomerRepo) Create(c *entity.Customer) error {
	cp := *c
	r.customers[c.ID] = &cp
	return nil
}

func (r *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCustomerRepo) Update(c *entity.Customer) error {
	cp := *c
	r.customers[c.ID] = &cp
	return nil
}

func (r *fakeCustomerRepo) Delete(id string) error {
	delete(r.customers, id)
	return nil
}

func (r *fakeCustomerRepo) List(limit, offset int) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range r.customers {
		out = append(out, c)
	}
	return out, nil
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

func (r *fakeProductRepo) Create(p *entity.Product) error { return nil }

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetByCode(code string) (*entity.Product, error)  { return nil, nil }
func (r *fakeProductRepo) Update(p *entity.Product) error                  { return nil }
func (r *fakeProductRepo) UpdateStock(productID string, q int) error       { return nil }
func (r *fakeProductRepo) Delete(id string) error                          { return nil }
func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) ListAll() ([]*entity.Product, error)             { return nil, nil }

// fakeTxRunner invoca el callback directamente contra el repo en memoria.
type fakeTxRunner struct {
	orderRepo repository.OrderRepository
	calls     int
}

func (t *fakeTxRunner) RunOrder(ctx context.Context, fn func(repository.OrderRepository) error) error {
	t.calls++
	return fn(t.orderRepo)
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func buildOrderUC(orders *fakeOrderRepo, customers *fakeCustomerRepo, products *fakeProductRepo) (*OrderUseCase, *fakeTxRunner) {
	tx := &fakeTxRunner{orderRepo: orders}
	return NewOrderUseCase(orders, customers, products, tx), tx
}

// ──────────────────────────────────────────────────────────────────────────────
// Creación de pedidos
// ──────────────────────────────────────────────────────────────────────────────

func TestOrderCreate_CalculaTotalDesdeLineas(t *testing.T) {
	orders := newFakeOrderRepo()
	customers := newFakeCustomerRepo(&entity.Customer{ID: "c1", Name: "Textiles Andinos"})
	products := newFakeProductRepo(
		&entity.Product{ID: "p1", Name: "Tela algodón", UnitPrice: dec("25.50")},
		&entity.Product{ID: "p2", Name: "Hilo", UnitPrice: dec("3.20")},
	)
	uc, tx := buildOrderUC(orders, customers, products)

	out, err := uc.Create(dto.CreateOrderRequest{
		CustomerID: "c1",
		Items: []dto.OrderItemRequest{
			{ProductID: "p1", Quantity: 10},
			{ProductID: "p2", Quantity: 5},
		},
	})
	require.NoError(t, err)
	// 10*25.50 + 5*3.20 = 271
	assert.True(t, out.TotalAmount.Equal(dec("271")), "total es %s", out.TotalAmount)
	assert.Equal(t, entity.OrderStatusPending, out.Status)
	assert.Len(t, out.Items, 2)

	// Cabecera y líneas pasan por la transacción.
	assert.Equal(t, 1, tx.calls)
	assert.Len(t, orders.items[out.ID], 2)
}

func TestOrderCreate_PrecioExplicitoGanaAlCatalogo(t *testing.T) {
	orders := newFakeOrderRepo()
	customers := newFakeCustomerRepo(&entity.Customer{ID: "c1"})
	products := newFakeProductRepo(&entity.Product{ID: "p1", UnitPrice: dec("25.50")})
	uc, _ := buildOrderUC(orders, customers, products)

	out, err := uc.Create(dto.CreateOrderRequest{
		CustomerID: "c1",
		Items: []dto.OrderItemRequest{
			{ProductID: "p1", Quantity: 2, UnitPrice: dec("20")},
		},
	})
	require.NoError(t, err)
	assert.True(t, out.TotalAmount.Equal(dec("40")))
	assert.True(t, out.Items[0].UnitPrice.Equal(dec("20")))
}

func TestOrderCreate_SinLineas(t *testing.T) {
	uc, _ := buildOrderUC(newFakeOrderRepo(), newFakeCustomerRepo(&entity.Customer{ID: "c1"}), newFakeProductRepo())

	_, err := uc.Create(dto.CreateOrderRequest{CustomerID: "c1"})
	assert.Equal(t, domain.ErrInvalidInput, err)
}

func TestOrderCreate_CantidadInvalida(t *testing.T) {
	uc, _ := buildOrderUC(
		newFakeOrderRepo(),
		newFakeCustomerRepo(&entity.Customer{ID: "c1"}),
		newFakeProductRepo(&entity.Product{ID: "p1", UnitPrice: dec("10")}),
	)

	_, err := uc.Create(dto.CreateOrderRequest{
		CustomerID: "c1",
		Items:      []dto.OrderItemRequest{{ProductID: "p1", Quantity: 0}},
	})
	assert.Equal(t, domain.ErrInvalidInput, err)
}

func TestOrderCreate_ClienteInexistente(t *testing.T) {
	uc, _ := buildOrderUC(newFakeOrderRepo(), newFakeCustomerRepo(), newFakeProductRepo())

	_, err := uc.Create(dto.CreateOrderRequest{
		CustomerID: "fantasma",
		Items:      []dto.OrderItemRequest{{ProductID: "p1", Quantity: 1}},
	})
	assert.Equal(t, domain.ErrNotFound, err)
}

func TestOrderCreate_ProductoInexistente(t *testing.T) {
	uc, _ := buildOrderUC(newFakeOrderRepo(), newFakeCustomerRepo(&entity.Customer{ID: "c1"}), newFakeProductRepo())

	_, err := uc.Create(dto.CreateOrderRequest{
		CustomerID: "c1",
		Items:      []dto.OrderItemRequest{{ProductID: "fantasma", Quantity: 1}},
	})
	assert.Equal(t, domain.ErrNotFound, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ciclo de vida del pedido
// ──────────────────────────────────────────────────────────────────────────────

func TestOrderUpdateStatus_Transiciones(t *testing.T) {
	orders := newFakeOrderRepo()
	uc, _ := buildOrderUC(
		orders,
		newFakeCustomerRepo(&entity.Customer{ID: "c1"}),
		newFakeProductRepo(&entity.Product{ID: "p1", UnitPrice: dec("10")}),
	)
	created, err := uc.Create(dto.CreateOrderRequest{
		CustomerID: "c1",
		Items:      []dto.OrderItemRequest{{ProductID: "p1", Quantity: 1}},
	})
	require.NoError(t, err)

	out, err := uc.UpdateStatus(created.ID, entity.OrderStatusInProduction)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusInProduction, out.Status)

	_, err = uc.UpdateStatus(created.ID, "Teletransportado")
	assert.Equal(t, domain.ErrInvalidInput, err)

	_, err = uc.UpdateStatus("no-existe", entity.OrderStatusConfirmed)
	assert.Equal(t, domain.ErrNotFound, err)
}

func TestOrderGetByID_IncluyeLineas(t *testing.T) {
	orders := newFakeOrderRepo()
	uc, _ := buildOrderUC(
		orders,
		newFakeCustomerRepo(&entity.Customer{ID: "c1"}),
		newFakeProductRepo(&entity.Product{ID: "p1", UnitPrice: dec("10")}),
	)
	created, err := uc.Create(dto.CreateOrderRequest{
		CustomerID: "c1",
		Items:      []dto.OrderItemRequest{{ProductID: "p1", Quantity: 3}},
	})
	require.NoError(t, err)

	out, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, 3, out.Items[0].Quantity)

	missing, err := uc.GetByID("no-existe")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
