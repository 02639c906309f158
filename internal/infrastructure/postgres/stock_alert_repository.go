package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/textil-crm/internal/domain/entity"
	"github.com/tu-usuario/textil-crm/internal/domain/repository"
)

var _ repository.StockAlertRepository = (*StockAlertRepo)(nil)

// StockAlertRepo implementación de StockAlertRepository (usable con pool o tx).
type StockAlertRepo struct {
	q Querier
}

// NewStockAlertRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockAlertRepository(q Querier) *StockAlertRepo {
	return &StockAlertRepo{q: q}
}

const stockAlertColumns = `id, product_id, current_quantity, threshold_quantity, alert_type,
	status, resolved_date, resolved_by, notes, created_at`

// Create persiste una nueva alerta.
func (r *StockAlertRepo) Create(alert *entity.StockAlert) error {
	query := `
		INSERT INTO stock_alerts (` + stockAlertColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		alert.ID, alert.ProductID, alert.CurrentQuantity, alert.ThresholdQuantity,
		alert.AlertType, alert.Status, alert.ResolvedDate, alert.ResolvedBy,
		alert.Notes, alert.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock alert: %w", err)
	}
	return nil
}

// GetByID obtiene una alerta por ID.
func (r *StockAlertRepo) GetByID(id string) (*entity.StockAlert, error) {
	query := `SELECT ` + stockAlertColumns + ` FROM stock_alerts WHERE id = $1`
	var a entity.StockAlert
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.ProductID, &a.CurrentQuantity, &a.ThresholdQuantity, &a.AlertType,
		&a.Status, &a.ResolvedDate, &a.ResolvedBy, &a.Notes, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock alert: %w", err)
	}
	return &a, nil
}

// Update actualiza una alerta.
func (r *StockAlertRepo) Update(alert *entity.StockAlert) error {
	query := `
		UPDATE stock_alerts
		SET current_quantity = $2, status = $3, resolved_date = $4, resolved_by = $5, notes = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		alert.ID, alert.CurrentQuantity, alert.Status, alert.ResolvedDate,
		alert.ResolvedBy, alert.Notes,
	)
	if err != nil {
		return fmt.Errorf("update stock alert: %w", err)
	}
	return nil
}

// Delete elimina una alerta por ID.
func (r *StockAlertRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM stock_alerts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock alert: %w", err)
	}
	return nil
}

// List lista alertas con paginación (recientes primero).
func (r *StockAlertRepo) List(limit, offset int) ([]*entity.StockAlert, error) {
	query := `SELECT ` + stockAlertColumns + ` FROM stock_alerts ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock alerts: %w", err)
	}
	defer rows.Close()
	return scanStockAlerts(rows)
}

// ListActive lista las alertas en estado Active.
func (r *StockAlertRepo) ListActive() ([]*entity.StockAlert, error) {
	query := `SELECT ` + stockAlertColumns + ` FROM stock_alerts WHERE status = $1 ORDER BY created_at DESC`
	return r.listBy(query, entity.AlertStatusActive)
}

// ListByProduct lista las alertas de un producto.
func (r *StockAlertRepo) ListByProduct(productID string) ([]*entity.StockAlert, error) {
	query := `SELECT ` + stockAlertColumns + ` FROM stock_alerts WHERE product_id = $1 ORDER BY created_at DESC`
	return r.listBy(query, productID)
}

// ListByType lista las alertas de un tipo.
func (r *StockAlertRepo) ListByType(alertType string) ([]*entity.StockAlert, error) {
	query := `SELECT ` + stockAlertColumns + ` FROM stock_alerts WHERE alert_type = $1 ORDER BY created_at DESC`
	return r.listBy(query, alertType)
}

// HasActiveByProduct indica si el producto ya tiene una alerta Active.
func (r *StockAlertRepo) HasActiveByProduct(productID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM stock_alerts WHERE product_id = $1 AND status = $2)`
	var exists bool
	err := r.q.QueryRow(context.Background(), query, productID, entity.AlertStatusActive).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check active alert: %w", err)
	}
	return exists, nil
}

func (r *StockAlertRepo) listBy(query string, arg any) ([]*entity.StockAlert, error) {
	rows, err := r.q.Query(context.Background(), query, arg)
	if err != nil {
		return nil, fmt.Errorf("list stock alerts: %w", err)
	}
	defer rows.Close()
	return scanStockAlerts(rows)
}

func scanStockAlerts(rows pgx.Rows) ([]*entity.StockAlert, error) {
	var list []*entity.StockAlert
	for rows.Next() {
		var a entity.StockAlert
		if err := rows.Scan(&a.ID, &a.ProductID, &a.CurrentQuantity, &a.ThresholdQuantity,
			&a.AlertType, &a.Status, &a.ResolvedDate, &a.ResolvedBy, &a.Notes, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock alert: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
