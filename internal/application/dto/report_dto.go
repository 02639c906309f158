package dto

import "github.com/shopspring/decimal"

// TopCustomerDTO cliente destacado por facturación en el período.
type TopCustomerDTO struct {
	CustomerID   string          `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	InvoiceCount int             `json:"invoice_count"`
	TotalBilled  decimal.Decimal `json:"total_billed"`
}

// OrderStatusCountDTO conteo de pedidos por estado.
type OrderStatusCountDTO struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// DashboardSummaryDTO resumen del dashboard de negocio.
type DashboardSummaryDTO struct {
	TodayInvoiced    decimal.Decimal       `json:"today_invoiced"`
	TodayCollected   decimal.Decimal       `json:"today_collected"`
	MonthlyInvoiced  decimal.Decimal       `json:"monthly_invoiced"`
	MonthlyCollected decimal.Decimal       `json:"monthly_collected"`
	OutstandingTotal decimal.Decimal       `json:"outstanding_total"`
	ActiveAlerts     int                   `json:"active_alerts"`
	OrdersByStatus   []OrderStatusCountDTO `json:"orders_by_status"`
	TopCustomers     []TopCustomerDTO      `json:"top_customers"`
}
