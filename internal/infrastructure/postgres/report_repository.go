package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/textil-crm/internal/domain/entity"
	"github.com/tu-usuario/textil-crm/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas read-only de agregación del dashboard.
// Solo agrupación y suma; la regla de negocio vive en el caso de uso.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// GetRevenueMetrics devuelve el total facturado y el total cobrado (pagos
// Completed) en el rango de fechas dado. Las facturas Cancelled no suman.
func (r *ReportRepo) GetRevenueMetrics(ctx context.Context, start, end time.Time) (invoiced, collected decimal.Decimal, err error) {
	invoicedQuery := `
		SELECT COALESCE(SUM(total_amount), 0)
		FROM invoices
		WHERE invoice_date BETWEEN $1 AND $2 AND status <> $3`
	if err = r.q.QueryRow(ctx, invoicedQuery, start, end, entity.InvoiceStatusCancelled).Scan(&invoiced); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("sum invoiced: %w", err)
	}

	collectedQuery := `
		SELECT COALESCE(SUM(amount), 0)
		FROM payments
		WHERE payment_date BETWEEN $1 AND $2 AND status = $3`
	if err = r.q.QueryRow(ctx, collectedQuery, start, end, entity.PaymentStatusCompleted).Scan(&collected); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("sum collected: %w", err)
	}
	return invoiced, collected, nil
}

// CountOrdersByStatus devuelve el número de pedidos por estado.
func (r *ReportRepo) CountOrdersByStatus(ctx context.Context) ([]repository.OrderStatusCount, error) {
	query := `SELECT status, COUNT(*) FROM orders GROUP BY status ORDER BY status`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("count orders by status: %w", err)
	}
	defer rows.Close()
	var list []repository.OrderStatusCount
	for rows.Next() {
		var c repository.OrderStatusCount
		if err := rows.Scan(&c.Status, &c.Count); err != nil {
			return nil, fmt.Errorf("scan order status count: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// GetTopCustomers devuelve los clientes con mayor facturación en el período.
func (r *ReportRepo) GetTopCustomers(ctx context.Context, start, end time.Time, limit int) ([]repository.TopCustomerResult, error) {
	query := `
		SELECT c.id, c.name, COUNT(i.id), COALESCE(SUM(i.total_amount), 0) AS total_billed
		FROM invoices i
		JOIN customers c ON c.id = i.customer_id
		WHERE i.invoice_date BETWEEN $1 AND $2 AND i.status <> $3
		GROUP BY c.id, c.name
		ORDER BY total_billed DESC
		LIMIT $4`
	rows, err := r.q.Query(ctx, query, start, end, entity.InvoiceStatusCancelled, limit)
	if err != nil {
		return nil, fmt.Errorf("top customers: %w", err)
	}
	defer rows.Close()
	var list []repository.TopCustomerResult
	for rows.Next() {
		var c repository.TopCustomerResult
		if err := rows.Scan(&c.CustomerID, &c.CustomerName, &c.InvoiceCount, &c.TotalBilled); err != nil {
			return nil, fmt.Errorf("scan top customer: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// GetOutstandingTotal devuelve la suma pendiente de cobro: facturas no pagadas
// ni canceladas, descontando los pagos Completed ya aplicados.
func (r *ReportRepo) GetOutstandingTotal(ctx context.Context) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(i.total_amount - COALESCE(p.paid, 0)), 0)
		FROM invoices i
		LEFT JOIN (
			SELECT invoice_id, SUM(amount) AS paid
			FROM payments WHERE status = $1 GROUP BY invoice_id
		) p ON p.invoice_id = i.id
		WHERE i.status NOT IN ($2, $3)`
	var total decimal.Decimal
	err := r.q.QueryRow(ctx, query,
		entity.PaymentStatusCompleted, entity.InvoiceStatusPaid, entity.InvoiceStatusCancelled,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("outstanding total: %w", err)
	}
	return total, nil
}

// CountActiveAlerts devuelve el número de alertas de stock Active.
func (r *ReportRepo) CountActiveAlerts(ctx context.Context) (int, error) {
	var count int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM stock_alerts WHERE status = $1`, entity.AlertStatusActive).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count active alerts: %w", err)
	}
	return count, nil
}
