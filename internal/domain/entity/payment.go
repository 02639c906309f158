package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago aceptados.
const (
	PaymentMethodCash         = "Cash"
	PaymentMethodCreditCard   = "CreditCard"
	PaymentMethodBankTransfer = "BankTransfer"
	PaymentMethodCheck        = "Check"
	PaymentMethodWireTransfer = "WireTransfer"
	PaymentMethodOther        = "Other"
)

// Estados de un pago. Máquina de estados: Pending → Processing → {Completed, Failed}.
// Refunded se asigna por actualización directa sobre un pago Completed.
const (
	PaymentStatusPending    = "Pending"
	PaymentStatusProcessing = "Processing"
	PaymentStatusCompleted  = "Completed"
	PaymentStatusFailed     = "Failed"
	PaymentStatusRefunded   = "Refunded"
)

// Payment representa un pago aplicado contra una factura.
type Payment struct {
	ID               string
	InvoiceID        string
	PaymentReference string // único, formato PAY-<yyyy>-NNNNN
	PaymentDate      time.Time
	Amount           decimal.Decimal
	PaymentMethod    string
	Status           string
	TransactionID    string // asignado por la pasarela al completar
	Notes            string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
