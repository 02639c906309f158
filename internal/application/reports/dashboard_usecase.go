// Package reports contiene los casos de uso read-only de reportes de negocio.
package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/textil-crm/internal/application/dto"
	"github.com/tu-usuario/textil-crm/internal/domain/repository"
)

const dashboardTopCustomers = 5 // número de clientes en el widget del dashboard

// DashboardUseCase genera el resumen de negocio del día y del mes en curso.
//
// Fuente de datos: ReportRepository (consultas read-only). No accede
// directamente a facturas ni pagos; delega todo en el repositorio.
type DashboardUseCase struct {
	reportRepo repository.ReportRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(reportRepo repository.ReportRepository) *DashboardUseCase {
	return &DashboardUseCase{reportRepo: reportRepo}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Cinco llamadas en paralelo:
//  1. GetRevenueMetrics(hoy)  → TodayInvoiced + TodayCollected
//  2. GetRevenueMetrics(mes)  → MonthlyInvoiced + MonthlyCollected
//  3. CountOrdersByStatus     → OrdersByStatus
//  4. GetTopCustomers(mes)    → TopCustomers
//  5. GetOutstandingTotal + CountActiveAlerts (secuencial en la misma goroutine)
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()

	// ── Rangos de fecha ────────────────────────────────────────────────────────
	// Hoy: 00:00:00.000 – 23:59:59.999
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.Add(24*time.Hour - time.Nanosecond)

	// Mes en curso: día 1 a las 00:00 – hoy a las 23:59:59
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := todayEnd

	// ── Goroutines para paralelizar las consultas DB ───────────────────────────
	type revenueResult struct {
		invoiced  decimal.Decimal
		collected decimal.Decimal
		err       error
	}
	type ordersResult struct {
		counts []repository.OrderStatusCount
		err    error
	}
	type customersResult struct {
		customers []repository.TopCustomerResult
		err       error
	}
	type pendingResult struct {
		outstanding decimal.Decimal
		alerts      int
		err         error
	}

	todayCh := make(chan revenueResult, 1)
	monthCh := make(chan revenueResult, 1)
	ordersCh := make(chan ordersResult, 1)
	customersCh := make(chan customersResult, 1)
	pendingCh := make(chan pendingResult, 1)

	go func() {
		invoiced, collected, err := uc.reportRepo.GetRevenueMetrics(ctx, todayStart, todayEnd)
		todayCh <- revenueResult{invoiced, collected, err}
	}()
	go func() {
		invoiced, collected, err := uc.reportRepo.GetRevenueMetrics(ctx, monthStart, monthEnd)
		monthCh <- revenueResult{invoiced, collected, err}
	}()
	go func() {
		counts, err := uc.reportRepo.CountOrdersByStatus(ctx)
		ordersCh <- ordersResult{counts, err}
	}()
	go func() {
		customers, err := uc.reportRepo.GetTopCustomers(ctx, monthStart, monthEnd, dashboardTopCustomers)
		customersCh <- customersResult{customers, err}
	}()
	go func() {
		outstanding, err := uc.reportRepo.GetOutstandingTotal(ctx)
		if err != nil {
			pendingCh <- pendingResult{err: err}
			return
		}
		alerts, err := uc.reportRepo.CountActiveAlerts(ctx)
		pendingCh <- pendingResult{outstanding, alerts, err}
	}()

	today := <-todayCh
	month := <-monthCh
	orders := <-ordersCh
	customers := <-customersCh
	pending := <-pendingCh

	if today.err != nil {
		return nil, fmt.Errorf("dashboard: métricas de hoy: %w", today.err)
	}
	if month.err != nil {
		return nil, fmt.Errorf("dashboard: métricas del mes: %w", month.err)
	}
	if orders.err != nil {
		return nil, fmt.Errorf("dashboard: pedidos por estado: %w", orders.err)
	}
	if customers.err != nil {
		return nil, fmt.Errorf("dashboard: top clientes: %w", customers.err)
	}
	if pending.err != nil {
		return nil, fmt.Errorf("dashboard: pendiente de cobro: %w", pending.err)
	}

	// ── Construir DTO ──────────────────────────────────────────────────────────
	summary := &dto.DashboardSummaryDTO{
		TodayInvoiced:    today.invoiced.Round(2),
		TodayCollected:   today.collected.Round(2),
		MonthlyInvoiced:  month.invoiced.Round(2),
		MonthlyCollected: month.collected.Round(2),
		OutstandingTotal: pending.outstanding.Round(2),
		ActiveAlerts:     pending.alerts,
	}
	for _, c := range orders.counts {
		summary.OrdersByStatus = append(summary.OrdersByStatus, dto.OrderStatusCountDTO{
			Status: c.Status,
			Count:  c.Count,
		})
	}
	for _, c := range customers.customers {
		summary.TopCustomers = append(summary.TopCustomers, dto.TopCustomerDTO{
			CustomerID:   c.CustomerID,
			CustomerName: c.CustomerName,
			InvoiceCount: c.InvoiceCount,
			TotalBilled:  c.TotalBilled.Round(2),
		})
	}
	return summary, nil
}
