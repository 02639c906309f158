package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/textil-crm/internal/domain"
	"github.com/tu-usuario/textil-crm/internal/domain/entity"
	"github.com/tu-usuario/textil-crm/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implementación de PaymentRepository (usable con pool o tx).
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

const paymentColumns = `id, invoice_id, payment_reference, payment_date, amount,
	payment_method, status, transaction_id, notes, created_at, updated_at`

// Create persiste un nuevo pago. La referencia duplicada devuelve ErrDuplicate.
func (r *PaymentRepo) Create(payment *entity.Payment) error {
	query := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		payment.ID, payment.InvoiceID, payment.PaymentReference, payment.PaymentDate,
		payment.Amount, payment.PaymentMethod, payment.Status, payment.TransactionID,
		payment.Notes, payment.CreatedAt, payment.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// GetByID obtiene un pago por ID.
func (r *PaymentRepo) GetByID(id string) (*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`
	var p entity.Payment
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.InvoiceID, &p.PaymentReference, &p.PaymentDate, &p.Amount,
		&p.PaymentMethod, &p.Status, &p.TransactionID, &p.Notes, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return &p, nil
}

// Update actualiza un pago.
func (r *PaymentRepo) Update(payment *entity.Payment) error {
	query := `
		UPDATE payments
		SET payment_date = $2, amount = $3, payment_method = $4, status = $5,
			transaction_id = $6, notes = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		payment.ID, payment.PaymentDate, payment.Amount, payment.PaymentMethod,
		payment.Status, payment.TransactionID, payment.Notes, payment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update payment: %w", err)
	}
	return nil
}

// Delete elimina un pago por ID.
func (r *PaymentRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}
	return nil
}

// List lista pagos con paginación (recientes primero).
func (r *PaymentRepo) List(limit, offset int) ([]*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments ORDER BY payment_date DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()
	return scanPayments(rows)
}

// ListByInvoice lista los pagos aplicados a una factura.
func (r *PaymentRepo) ListByInvoice(invoiceID string) ([]*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE invoice_id = $1 ORDER BY payment_date`
	return r.listBy(query, invoiceID)
}

// ListByMethod lista los pagos de un método.
func (r *PaymentRepo) ListByMethod(method string) ([]*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE payment_method = $1 ORDER BY payment_date DESC`
	return r.listBy(query, method)
}

// ListByStatus lista los pagos en un estado.
func (r *PaymentRepo) ListByStatus(status string) ([]*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE status = $1 ORDER BY payment_date DESC`
	return r.listBy(query, status)
}

func (r *PaymentRepo) listBy(query string, arg any) ([]*entity.Payment, error) {
	rows, err := r.q.Query(context.Background(), query, arg)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()
	return scanPayments(rows)
}

func scanPayments(rows pgx.Rows) ([]*entity.Payment, error) {
	var list []*entity.Payment
	for rows.Next() {
		var p entity.Payment
		if err := rows.Scan(&p.ID, &p.InvoiceID, &p.PaymentReference, &p.PaymentDate, &p.Amount,
			&p.PaymentMethod, &p.Status, &p.TransactionID, &p.Notes, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
