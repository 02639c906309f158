package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una factura. El paso a Paid/PartiallyPaid lo decide la
// reconciliación contra los pagos completados, nunca el caller directamente.
const (
	InvoiceStatusDraft         = "Draft"
	InvoiceStatusSent          = "Sent"
	InvoiceStatusPartiallyPaid = "PartiallyPaid"
	InvoiceStatusPaid          = "Paid"
	InvoiceStatusOverdue       = "Overdue"
	InvoiceStatusCancelled     = "Cancelled"
)

// Invoice representa la cabecera de una factura emitida sobre un pedido.
type Invoice struct {
	ID             string
	InvoiceNumber  string // único, formato INV-<yyyyMM>-NNNN
	OrderID        string
	CustomerID     string
	InvoiceDate    time.Time
	DueDate        *time.Time
	Subtotal       decimal.Decimal
	TaxAmount      decimal.Decimal
	DiscountAmount decimal.Decimal
	TotalAmount    decimal.Decimal
	Status         string
	Notes          string
	PaidDate       *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
