package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// TopCustomerResult resultado crudo de la consulta de clientes por facturación.
type TopCustomerResult struct {
	CustomerID   string
	CustomerName string
	InvoiceCount int
	TotalBilled  decimal.Decimal
}

// OrderStatusCount conteo de pedidos agrupado por estado.
type OrderStatusCount struct {
	Status string
	Count  int
}

// ReportRepository define las consultas read-only de agregación del dashboard.
// Sin regla de negocio: solo agrupación y suma.
type ReportRepository interface {
	// GetRevenueMetrics devuelve el total facturado y el total cobrado
	// (pagos Completed) en el rango de fechas dado.
	GetRevenueMetrics(ctx context.Context, start, end time.Time) (invoiced, collected decimal.Decimal, err error)

	// CountOrdersByStatus devuelve el número de pedidos por estado.
	CountOrdersByStatus(ctx context.Context) ([]OrderStatusCount, error)

	// GetTopCustomers devuelve los clientes con mayor facturación en el período.
	GetTopCustomers(ctx context.Context, start, end time.Time, limit int) ([]TopCustomerResult, error)

	// GetOutstandingTotal devuelve la suma pendiente de cobro
	// (facturas no pagadas ni canceladas, descontando pagos Completed).
	GetOutstandingTotal(ctx context.Context) (decimal.Decimal, error)

	// CountActiveAlerts devuelve el número de alertas de stock Active.
	CountActiveAlerts(ctx context.Context) (int, error)
}
