package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/textil-crm/internal/domain/entity"
	"github.com/tu-usuario/textil-crm/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste la cabecera de un pedido.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (id, customer_id, order_date, total_amount, status, notes, delivery_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.CustomerID, order.OrderDate, order.TotalAmount, order.Status,
		order.Notes, order.DeliveryDate, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de pedido.
func (r *OrderRepo) CreateItem(item *entity.OrderItem) error {
	query := `
		INSERT INTO order_items (id, order_id, product_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.OrderID, item.ProductID, item.Quantity, item.UnitPrice,
	)
	if err != nil {
		return fmt.Errorf("insert order item: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de un pedido.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `
		SELECT id, customer_id, order_date, total_amount, status, notes, delivery_date, created_at, updated_at
		FROM orders WHERE id = $1`
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.CustomerID, &o.OrderDate, &o.TotalAmount, &o.Status, &o.Notes,
		&o.DeliveryDate, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

// GetItemsByOrderID devuelve las líneas de un pedido.
func (r *OrderRepo) GetItemsByOrderID(orderID string) ([]*entity.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, quantity, unit_price
		FROM order_items WHERE order_id = $1`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	var list []*entity.OrderItem
	for rows.Next() {
		var item entity.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		list = append(list, &item)
	}
	return list, rows.Err()
}

// Update actualiza la cabecera de un pedido.
func (r *OrderRepo) Update(order *entity.Order) error {
	query := `
		UPDATE orders
		SET total_amount = $2, status = $3, notes = $4, delivery_date = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.TotalAmount, order.Status, order.Notes, order.DeliveryDate, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

// Delete elimina un pedido y sus líneas.
func (r *OrderRepo) Delete(id string) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM order_items WHERE order_id = $1`, id); err != nil {
		return fmt.Errorf("delete order items: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

// List lista pedidos con paginación (recientes primero).
func (r *OrderRepo) List(limit, offset int) ([]*entity.Order, error) {
	query := `
		SELECT id, customer_id, order_date, total_amount, status, notes, delivery_date, created_at, updated_at
		FROM orders ORDER BY order_date DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	return scanOrders(rows)
}

// ListByCustomer lista los pedidos de un cliente.
func (r *OrderRepo) ListByCustomer(customerID string) ([]*entity.Order, error) {
	query := `
		SELECT id, customer_id, order_date, total_amount, status, notes, delivery_date, created_at, updated_at
		FROM orders WHERE customer_id = $1 ORDER BY order_date DESC`
	rows, err := r.q.Query(context.Background(), query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list orders by customer: %w", err)
	}
	defer rows.Close()
	return scanOrders(rows)
}

func scanOrders(rows pgx.Rows) ([]*entity.Order, error) {
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.OrderDate, &o.TotalAmount, &o.Status,
			&o.Notes, &o.DeliveryDate, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}
