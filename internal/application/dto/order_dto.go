package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest línea de pedido en la creación.
type OrderItemRequest struct {
	ProductID string          `json:"product_id" validate:"required"`
	Quantity  int             `json:"quantity" validate:"required,min=1"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreateOrderRequest entrada para crear un pedido.
type CreateOrderRequest struct {
	CustomerID   string             `json:"customer_id" validate:"required"`
	OrderDate    *time.Time         `json:"order_date"`
	DeliveryDate *time.Time         `json:"delivery_date"`
	Notes        string             `json:"notes"`
	Items        []OrderItemRequest `json:"items" validate:"required,min=1"`
}

// UpdateOrderRequest entrada para actualizar un pedido (sin líneas ni estado).
type UpdateOrderRequest struct {
	DeliveryDate *time.Time `json:"delivery_date"`
	Notes        *string    `json:"notes"`
}

// OrderItemResponse línea de pedido en respuestas.
type OrderItemResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID           string              `json:"id"`
	CustomerID   string              `json:"customer_id"`
	OrderDate    time.Time           `json:"order_date"`
	TotalAmount  decimal.Decimal     `json:"total_amount"`
	Status       string              `json:"status"`
	Notes        string              `json:"notes"`
	DeliveryDate *time.Time          `json:"delivery_date,omitempty"`
	Items        []OrderItemResponse `json:"items,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// OrderListResponse lista paginada de pedidos.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
