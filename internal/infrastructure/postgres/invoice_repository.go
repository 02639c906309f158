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

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceColumns = `id, invoice_number, order_id, customer_id, invoice_date, due_date,
	subtotal, tax_amount, discount_amount, total_amount, status, notes, paid_date, created_at, updated_at`

// Create persiste una nueva factura. El número duplicado devuelve ErrDuplicate.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.InvoiceNumber, invoice.OrderID, invoice.CustomerID,
		invoice.InvoiceDate, invoice.DueDate, invoice.Subtotal, invoice.TaxAmount,
		invoice.DiscountAmount, invoice.TotalAmount, invoice.Status, invoice.Notes,
		invoice.PaidDate, invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// GetByID obtiene una factura por ID.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`
	return r.getOne(query, id)
}

// GetByNumber obtiene una factura por número.
func (r *InvoiceRepo) GetByNumber(number string) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE invoice_number = $1`
	return r.getOne(query, number)
}

func (r *InvoiceRepo) getOne(query string, arg any) (*entity.Invoice, error) {
	var inv entity.Invoice
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&inv.ID, &inv.InvoiceNumber, &inv.OrderID, &inv.CustomerID, &inv.InvoiceDate,
		&inv.DueDate, &inv.Subtotal, &inv.TaxAmount, &inv.DiscountAmount, &inv.TotalAmount,
		&inv.Status, &inv.Notes, &inv.PaidDate, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, nil
}

// Update actualiza una factura.
func (r *InvoiceRepo) Update(invoice *entity.Invoice) error {
	query := `
		UPDATE invoices
		SET invoice_number = $2, due_date = $3, subtotal = $4, tax_amount = $5,
			discount_amount = $6, total_amount = $7, status = $8, notes = $9,
			paid_date = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.InvoiceNumber, invoice.DueDate, invoice.Subtotal,
		invoice.TaxAmount, invoice.DiscountAmount, invoice.TotalAmount, invoice.Status,
		invoice.Notes, invoice.PaidDate, invoice.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update invoice: %w", err)
	}
	return nil
}

// Delete elimina una factura por ID.
func (r *InvoiceRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	return nil
}

// List lista facturas con paginación (recientes primero).
func (r *InvoiceRepo) List(limit, offset int) ([]*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices ORDER BY invoice_date DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	return scanInvoices(rows)
}

// ListByCustomer lista las facturas de un cliente.
func (r *InvoiceRepo) ListByCustomer(customerID string) ([]*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE customer_id = $1 ORDER BY invoice_date DESC`
	return r.listBy(query, customerID)
}

// ListByOrder lista las facturas de un pedido.
func (r *InvoiceRepo) ListByOrder(orderID string) ([]*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE order_id = $1 ORDER BY invoice_date DESC`
	return r.listBy(query, orderID)
}

// ListByStatus lista las facturas en un estado.
func (r *InvoiceRepo) ListByStatus(status string) ([]*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE status = $1 ORDER BY invoice_date DESC`
	return r.listBy(query, status)
}

func (r *InvoiceRepo) listBy(query string, arg any) ([]*entity.Invoice, error) {
	rows, err := r.q.Query(context.Background(), query, arg)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	return scanInvoices(rows)
}

func scanInvoices(rows pgx.Rows) ([]*entity.Invoice, error) {
	var list []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		if err := rows.Scan(&inv.ID, &inv.InvoiceNumber, &inv.OrderID, &inv.CustomerID,
			&inv.InvoiceDate, &inv.DueDate, &inv.Subtotal, &inv.TaxAmount, &inv.DiscountAmount,
			&inv.TotalAmount, &inv.Status, &inv.Notes, &inv.PaidDate, &inv.CreatedAt, &inv.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}
