package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Facturas ──────────────────────────────────────────────────────────────────

// CreateInvoiceRequest entrada para crear una factura.
// InvoiceNumber vacío → se genera el consecutivo del período.
type CreateInvoiceRequest struct {
	InvoiceNumber  string          `json:"invoice_number"`
	OrderID        string          `json:"order_id" validate:"required"`
	CustomerID     string          `json:"customer_id" validate:"required"`
	InvoiceDate    *time.Time      `json:"invoice_date"`
	DueDate        *time.Time      `json:"due_date"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	Notes          string          `json:"notes"`
}

// UpdateInvoiceRequest entrada para actualizar una factura.
// Estado y PaidDate se gestionan por reconciliación o por el PATCH de estado.
type UpdateInvoiceRequest struct {
	DueDate        *time.Time       `json:"due_date"`
	Subtotal       *decimal.Decimal `json:"subtotal"`
	TaxAmount      *decimal.Decimal `json:"tax_amount"`
	DiscountAmount *decimal.Decimal `json:"discount_amount"`
	TotalAmount    *decimal.Decimal `json:"total_amount"`
	Notes          *string          `json:"notes"`
}

// InvoiceResponse salida de una factura.
type InvoiceResponse struct {
	ID             string          `json:"id"`
	InvoiceNumber  string          `json:"invoice_number"`
	OrderID        string          `json:"order_id"`
	CustomerID     string          `json:"customer_id"`
	InvoiceDate    time.Time       `json:"invoice_date"`
	DueDate        *time.Time      `json:"due_date,omitempty"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	Status         string          `json:"status"`
	Notes          string          `json:"notes"`
	PaidDate       *time.Time      `json:"paid_date,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// InvoiceBalanceResponse totales de cobro de una factura.
type InvoiceBalanceResponse struct {
	InvoiceID string          `json:"invoice_id"`
	Total     decimal.Decimal `json:"total"`
	Paid      decimal.Decimal `json:"paid"`
	Remaining decimal.Decimal `json:"remaining"`
}

// InvoiceListResponse lista paginada de facturas.
type InvoiceListResponse struct {
	Items []InvoiceResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// ── Pagos ─────────────────────────────────────────────────────────────────────

// CreatePaymentRequest entrada para registrar un pago.
// PaymentReference vacío → se genera el consecutivo anual.
type CreatePaymentRequest struct {
	InvoiceID        string          `json:"invoice_id" validate:"required"`
	PaymentReference string          `json:"payment_reference"`
	PaymentDate      *time.Time      `json:"payment_date"`
	Amount           decimal.Decimal `json:"amount" validate:"required"`
	PaymentMethod    string          `json:"payment_method" validate:"required"`
	Status           string          `json:"status"`
	Notes            string          `json:"notes"`
}

// UpdatePaymentRequest entrada para actualizar un pago.
type UpdatePaymentRequest struct {
	Amount        *decimal.Decimal `json:"amount"`
	PaymentMethod *string          `json:"payment_method"`
	Status        *string          `json:"status"`
	Notes         *string          `json:"notes"`
}

// PaymentResponse salida de un pago.
type PaymentResponse struct {
	ID               string          `json:"id"`
	InvoiceID        string          `json:"invoice_id"`
	PaymentReference string          `json:"payment_reference"`
	PaymentDate      time.Time       `json:"payment_date"`
	Amount           decimal.Decimal `json:"amount"`
	PaymentMethod    string          `json:"payment_method"`
	Status           string          `json:"status"`
	TransactionID    string          `json:"transaction_id,omitempty"`
	Notes            string          `json:"notes"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// PaymentListResponse lista paginada de pagos.
type PaymentListResponse struct {
	Items []PaymentResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
