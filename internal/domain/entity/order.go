package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de un pedido.
const (
	OrderStatusPending      = "Pending"
	OrderStatusConfirmed    = "Confirmed"
	OrderStatusInProduction = "InProduction"
	OrderStatusCompleted    = "Completed"
	OrderStatusDelivered    = "Delivered"
	OrderStatusCancelled    = "Cancelled"
)

// Order representa un pedido de un cliente.
type Order struct {
	ID           string
	CustomerID   string
	OrderDate    time.Time
	TotalAmount  decimal.Decimal
	Status       string
	Notes        string
	DeliveryDate *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OrderItem representa una línea de pedido (producto + cantidad + precio pactado).
type OrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal
}
