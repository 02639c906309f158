package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/textil-crm/internal/application/dto"
	"github.com/tu-usuario/textil-crm/internal/domain"
	"github.com/tu-usuario/textil-crm/internal/domain/entity"
	"github.com/tu-usuario/textil-crm/internal/domain/repository"
	"github.com/tu-usuario/textil-crm/pkg/logger"
)

// PaymentUseCase casos de uso de pagos y reconciliación de facturas.
//
// Toda mutación de un pago (crear, actualizar, borrar, procesar) termina en
// reconcile(): el estado Paid/PartiallyPaid de la factura es siempre una
// función del total frente a la suma de pagos Completed.
type PaymentUseCase struct {
	paymentRepo repository.PaymentRepository
	invoiceRepo repository.InvoiceRepository
	seqRepo     repository.SequenceRepository
	gateway     PaymentGateway
	log         *logger.Logger
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(
	paymentRepo repository.PaymentRepository,
	invoiceRepo repository.InvoiceRepository,
	seqRepo repository.SequenceRepository,
	gateway PaymentGateway,
	log *logger.Logger,
) *PaymentUseCase {
	return &PaymentUseCase{
		paymentRepo: paymentRepo,
		invoiceRepo: invoiceRepo,
		seqRepo:     seqRepo,
		gateway:     gateway,
		log:         log.Component("payments"),
	}
}

var paymentMethods = map[string]bool{
	entity.PaymentMethodCash:         true,
	entity.PaymentMethodCreditCard:   true,
	entity.PaymentMethodBankTransfer: true,
	entity.PaymentMethodCheck:        true,
	entity.PaymentMethodWireTransfer: true,
	entity.PaymentMethodOther:        true,
}

var paymentStatuses = map[string]bool{
	entity.PaymentStatusPending:    true,
	entity.PaymentStatusProcessing: true,
	entity.PaymentStatusCompleted:  true,
	entity.PaymentStatusFailed:     true,
	entity.PaymentStatusRefunded:   true,
}

// Create registra un pago contra una factura. Con PaymentReference vacío se
// genera el consecutivo anual (PAY-yyyy-NNNNN). Reconciliará la factura
// aunque el pago nazca Pending (no suma hasta estar Completed).
func (uc *PaymentUseCase) Create(in dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	if !paymentMethods[in.PaymentMethod] {
		return nil, domain.ErrInvalidInput
	}
	if !in.Amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.PaymentStatusPending
	}
	if !paymentStatuses[status] {
		return nil, domain.ErrInvalidInput
	}
	invoice, err := uc.invoiceRepo.GetByID(in.InvoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	reference := in.PaymentReference
	if reference == "" {
		reference, err = nextPaymentReference(uc.seqRepo, now)
		if err != nil {
			return nil, err
		}
	}
	paymentDate := now
	if in.PaymentDate != nil {
		paymentDate = *in.PaymentDate
	}

	payment := &entity.Payment{
		ID:               uuid.New().String(),
		InvoiceID:        in.InvoiceID,
		PaymentReference: reference,
		PaymentDate:      paymentDate,
		Amount:           in.Amount,
		PaymentMethod:    in.PaymentMethod,
		Status:           status,
		Notes:            in.Notes,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.paymentRepo.Create(payment); err != nil {
		return nil, err
	}
	if err := uc.reconcile(in.InvoiceID); err != nil {
		return nil, err
	}
	return toPaymentResponse(payment), nil
}

// Update actualiza un pago y reconciliará su factura. Un pago que ya pasó
// por la pasarela (no Pending) es inmutable y devuelve ErrConflict.
func (uc *PaymentUseCase) Update(id string, in dto.UpdatePaymentRequest) (*dto.PaymentResponse, error) {
	payment, err := uc.paymentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, domain.ErrNotFound
	}
	if payment.Status != entity.PaymentStatusPending {
		return nil, domain.ErrConflict
	}
	if in.Amount != nil {
		payment.Amount = *in.Amount
	}
	if in.PaymentMethod != nil {
		if !paymentMethods[*in.PaymentMethod] {
			return nil, domain.ErrInvalidInput
		}
		payment.PaymentMethod = *in.PaymentMethod
	}
	if in.Status != nil {
		if !paymentStatuses[*in.Status] {
			return nil, domain.ErrInvalidInput
		}
		payment.Status = *in.Status
	}
	if in.Notes != nil {
		payment.Notes = *in.Notes
	}
	payment.UpdatedAt = time.Now()
	if err := uc.paymentRepo.Update(payment); err != nil {
		return nil, err
	}
	if err := uc.reconcile(payment.InvoiceID); err != nil {
		return nil, err
	}
	return toPaymentResponse(payment), nil
}

// Delete elimina un pago y reconciliará la factura afectada.
func (uc *PaymentUseCase) Delete(id string) error {
	payment, err := uc.paymentRepo.GetByID(id)
	if err != nil {
		return err
	}
	if payment == nil {
		return domain.ErrNotFound
	}
	invoiceID := payment.InvoiceID
	if err := uc.paymentRepo.Delete(id); err != nil {
		return err
	}
	return uc.reconcile(invoiceID)
}

// Process ejecuta el cargo de un pago Pending contra la pasarela:
// Pending → Processing (persistido) → Completed + TransactionID, o Failed si
// la pasarela rechaza. En ambos casos se reconciliará la factura.
// Un pago que no está Pending devuelve ErrConflict.
func (uc *PaymentUseCase) Process(ctx context.Context, id string) (*dto.PaymentResponse, error) {
	payment, err := uc.paymentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, domain.ErrNotFound
	}
	if payment.Status != entity.PaymentStatusPending {
		return nil, domain.ErrConflict
	}

	payment.Status = entity.PaymentStatusProcessing
	payment.UpdatedAt = time.Now()
	if err := uc.paymentRepo.Update(payment); err != nil {
		return nil, err
	}

	txID, chargeErr := uc.gateway.Charge(ctx, payment)
	if chargeErr != nil {
		uc.log.Warn().Err(chargeErr).
			Str("payment_id", payment.ID).
			Str("reference", payment.PaymentReference).
			Msg("cargo rechazado por la pasarela")
		payment.Status = entity.PaymentStatusFailed
	} else {
		payment.Status = entity.PaymentStatusCompleted
		payment.TransactionID = txID
	}
	payment.UpdatedAt = time.Now()
	if err := uc.paymentRepo.Update(payment); err != nil {
		return nil, err
	}
	if err := uc.reconcile(payment.InvoiceID); err != nil {
		return nil, err
	}
	return toPaymentResponse(payment), nil
}

// reconcile recalcula el estado de cobro de la factura a partir de sus pagos
// Completed y la persiste en cada llamada:
//   - pendiente <= 0            → Paid (+ PaidDate)
//   - 0 < cobrado < total       → PartiallyPaid
//   - cobrado == 0              → si venía Paid/PartiallyPaid vuelve a Sent
//     (el origen dejaba la factura Paid tras borrar su único pago; aquí se
//     corrige la regresión de forma explícita).
func (uc *PaymentUseCase) reconcile(invoiceID string) error {
	invoice, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return err
	}
	if invoice == nil {
		return nil
	}
	payments, err := uc.paymentRepo.ListByInvoice(invoiceID)
	if err != nil {
		return err
	}
	paid := sumCompleted(payments)
	remaining := invoice.TotalAmount.Sub(paid)

	now := time.Now()
	switch {
	case remaining.LessThanOrEqual(decimal.Zero):
		invoice.Status = entity.InvoiceStatusPaid
		invoice.PaidDate = &now
	case paid.GreaterThan(decimal.Zero):
		invoice.Status = entity.InvoiceStatusPartiallyPaid
		invoice.PaidDate = nil
	default:
		if invoice.Status == entity.InvoiceStatusPaid || invoice.Status == entity.InvoiceStatusPartiallyPaid {
			invoice.Status = entity.InvoiceStatusSent
			invoice.PaidDate = nil
		}
	}
	invoice.UpdatedAt = now
	return uc.invoiceRepo.Update(invoice)
}

// GetByID obtiene un pago por ID.
func (uc *PaymentUseCase) GetByID(id string) (*dto.PaymentResponse, error) {
	payment, err := uc.paymentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, nil
	}
	return toPaymentResponse(payment), nil
}

// List lista pagos con paginación.
func (uc *PaymentUseCase) List(limit, offset int) (*dto.PaymentListResponse, error) {
	list, err := uc.paymentRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return &dto.PaymentListResponse{
		Items: toPaymentItems(list),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListByInvoice lista los pagos de una factura.
func (uc *PaymentUseCase) ListByInvoice(invoiceID string) ([]dto.PaymentResponse, error) {
	list, err := uc.paymentRepo.ListByInvoice(invoiceID)
	if err != nil {
		return nil, err
	}
	return toPaymentItems(list), nil
}

// ListByMethod lista pagos por método.
func (uc *PaymentUseCase) ListByMethod(method string) ([]dto.PaymentResponse, error) {
	if !paymentMethods[method] {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.paymentRepo.ListByMethod(method)
	if err != nil {
		return nil, err
	}
	return toPaymentItems(list), nil
}

// ListByStatus lista pagos por estado.
func (uc *PaymentUseCase) ListByStatus(status string) ([]dto.PaymentResponse, error) {
	if !paymentStatuses[status] {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.paymentRepo.ListByStatus(status)
	if err != nil {
		return nil, err
	}
	return toPaymentItems(list), nil
}

func toPaymentResponse(p *entity.Payment) *dto.PaymentResponse {
	if p == nil {
		return nil
	}
	return &dto.PaymentResponse{
		ID:               p.ID,
		InvoiceID:        p.InvoiceID,
		PaymentReference: p.PaymentReference,
		PaymentDate:      p.PaymentDate,
		Amount:           p.Amount,
		PaymentMethod:    p.PaymentMethod,
		Status:           p.Status,
		TransactionID:    p.TransactionID,
		Notes:            p.Notes,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func toPaymentItems(list []*entity.Payment) []dto.PaymentResponse {
	items := make([]dto.PaymentResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPaymentResponse(p))
	}
	return items
}
