package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/textil-crm/internal/application/dto"
	"github.com/tu-usuario/textil-crm/internal/domain"
	"github.com/tu-usuario/textil-crm/internal/domain/entity"
	"github.com/tu-usuario/textil-crm/internal/domain/repository"
)

// InvoiceUseCase casos de uso de facturación. El estado Paid/PartiallyPaid lo
// fija la reconciliación de pagos (PaymentUseCase); aquí solo los cambios
// manuales de workflow (enviar, marcar vencida, cancelar).
type InvoiceUseCase struct {
	invoiceRepo repository.InvoiceRepository
	paymentRepo repository.PaymentRepository
	seqRepo     repository.SequenceRepository
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(
	invoiceRepo repository.InvoiceRepository,
	paymentRepo repository.PaymentRepository,
	seqRepo repository.SequenceRepository,
) *InvoiceUseCase {
	return &InvoiceUseCase{invoiceRepo: invoiceRepo, paymentRepo: paymentRepo, seqRepo: seqRepo}
}

var invoiceStatuses = map[string]bool{
	entity.InvoiceStatusDraft:         true,
	entity.InvoiceStatusSent:          true,
	entity.InvoiceStatusPartiallyPaid: true,
	entity.InvoiceStatusPaid:          true,
	entity.InvoiceStatusOverdue:       true,
	entity.InvoiceStatusCancelled:     true,
}

// Create crea una factura. Con InvoiceNumber vacío se genera el consecutivo
// del mes (INV-yyyyMM-NNNN); la primera factura de un mes nuevo es la 0001.
func (uc *InvoiceUseCase) Create(in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.OrderID == "" || in.CustomerID == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()

	number := in.InvoiceNumber
	if number == "" {
		var err error
		number, err = nextInvoiceNumber(uc.seqRepo, now)
		if err != nil {
			return nil, err
		}
	} else {
		existing, err := uc.invoiceRepo.GetByNumber(number)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}

	invoiceDate := now
	if in.InvoiceDate != nil {
		invoiceDate = *in.InvoiceDate
	}

	invoice := &entity.Invoice{
		ID:             uuid.New().String(),
		InvoiceNumber:  number,
		OrderID:        in.OrderID,
		CustomerID:     in.CustomerID,
		InvoiceDate:    invoiceDate,
		DueDate:        in.DueDate,
		Subtotal:       in.Subtotal,
		TaxAmount:      in.TaxAmount,
		DiscountAmount: in.DiscountAmount,
		TotalAmount:    in.TotalAmount,
		Status:         entity.InvoiceStatusDraft,
		Notes:          in.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.invoiceRepo.Create(invoice); err != nil {
		return nil, err
	}
	return toInvoiceResponse(invoice), nil
}

// GetByID obtiene una factura por ID.
func (uc *InvoiceUseCase) GetByID(id string) (*dto.InvoiceResponse, error) {
	invoice, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, nil
	}
	return toInvoiceResponse(invoice), nil
}

// GetByNumber obtiene una factura por su número de documento.
func (uc *InvoiceUseCase) GetByNumber(number string) (*dto.InvoiceResponse, error) {
	invoice, err := uc.invoiceRepo.GetByNumber(number)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, nil
	}
	return toInvoiceResponse(invoice), nil
}

// Update actualiza campos editables de una factura.
func (uc *InvoiceUseCase) Update(id string, in dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	invoice, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	if in.DueDate != nil {
		invoice.DueDate = in.DueDate
	}
	if in.Subtotal != nil {
		invoice.Subtotal = *in.Subtotal
	}
	if in.TaxAmount != nil {
		invoice.TaxAmount = *in.TaxAmount
	}
	if in.DiscountAmount != nil {
		invoice.DiscountAmount = *in.DiscountAmount
	}
	if in.TotalAmount != nil {
		invoice.TotalAmount = *in.TotalAmount
	}
	if in.Notes != nil {
		invoice.Notes = *in.Notes
	}
	invoice.UpdatedAt = time.Now()
	if err := uc.invoiceRepo.Update(invoice); err != nil {
		return nil, err
	}
	return toInvoiceResponse(invoice), nil
}

// UpdateStatus cambio manual de estado (PATCH de workflow). Al marcar Paid a
// mano se estampa PaidDate, igual que hace la reconciliación.
func (uc *InvoiceUseCase) UpdateStatus(id, status string) (*dto.InvoiceResponse, error) {
	if !invoiceStatuses[status] {
		return nil, domain.ErrInvalidInput
	}
	invoice, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	invoice.Status = status
	if status == entity.InvoiceStatusPaid {
		now := time.Now()
		invoice.PaidDate = &now
	}
	invoice.UpdatedAt = time.Now()
	if err := uc.invoiceRepo.Update(invoice); err != nil {
		return nil, err
	}
	return toInvoiceResponse(invoice), nil
}

// Delete elimina una factura.
func (uc *InvoiceUseCase) Delete(id string) error {
	return uc.invoiceRepo.Delete(id)
}

// List lista facturas con paginación.
func (uc *InvoiceUseCase) List(limit, offset int) (*dto.InvoiceListResponse, error) {
	list, err := uc.invoiceRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return toInvoiceList(list, limit, offset), nil
}

// ListByCustomer lista las facturas de un cliente.
func (uc *InvoiceUseCase) ListByCustomer(customerID string) ([]dto.InvoiceResponse, error) {
	list, err := uc.invoiceRepo.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	return toInvoiceItems(list), nil
}

// ListByOrder lista las facturas de un pedido.
func (uc *InvoiceUseCase) ListByOrder(orderID string) ([]dto.InvoiceResponse, error) {
	list, err := uc.invoiceRepo.ListByOrder(orderID)
	if err != nil {
		return nil, err
	}
	return toInvoiceItems(list), nil
}

// ListByStatus lista facturas por estado.
func (uc *InvoiceUseCase) ListByStatus(status string) ([]dto.InvoiceResponse, error) {
	if !invoiceStatuses[status] {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.invoiceRepo.ListByStatus(status)
	if err != nil {
		return nil, err
	}
	return toInvoiceItems(list), nil
}

// Balance devuelve total, cobrado y pendiente de una factura. Cobrado es la
// suma de pagos Completed; los demás estados no cuentan.
func (uc *InvoiceUseCase) Balance(invoiceID string) (*dto.InvoiceBalanceResponse, error) {
	invoice, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	payments, err := uc.paymentRepo.ListByInvoice(invoiceID)
	if err != nil {
		return nil, err
	}
	paid := sumCompleted(payments)
	return &dto.InvoiceBalanceResponse{
		InvoiceID: invoice.ID,
		Total:     invoice.TotalAmount,
		Paid:      paid,
		Remaining: invoice.TotalAmount.Sub(paid),
	}, nil
}

// sumCompleted suma los importes de los pagos en estado Completed.
func sumCompleted(payments []*entity.Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		if p.Status == entity.PaymentStatusCompleted {
			total = total.Add(p.Amount)
		}
	}
	return total
}

func toInvoiceResponse(i *entity.Invoice) *dto.InvoiceResponse {
	if i == nil {
		return nil
	}
	return &dto.InvoiceResponse{
		ID:             i.ID,
		InvoiceNumber:  i.InvoiceNumber,
		OrderID:        i.OrderID,
		CustomerID:     i.CustomerID,
		InvoiceDate:    i.InvoiceDate,
		DueDate:        i.DueDate,
		Subtotal:       i.Subtotal,
		TaxAmount:      i.TaxAmount,
		DiscountAmount: i.DiscountAmount,
		TotalAmount:    i.TotalAmount,
		Status:         i.Status,
		Notes:          i.Notes,
		PaidDate:       i.PaidDate,
		CreatedAt:      i.CreatedAt,
		UpdatedAt:      i.UpdatedAt,
	}
}

func toInvoiceItems(list []*entity.Invoice) []dto.InvoiceResponse {
	items := make([]dto.InvoiceResponse, 0, len(list))
	for _, i := range list {
		items = append(items, *toInvoiceResponse(i))
	}
	return items
}

func toInvoiceList(list []*entity.Invoice, limit, offset int) *dto.InvoiceListResponse {
	return &dto.InvoiceListResponse{
		Items: toInvoiceItems(list),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}
