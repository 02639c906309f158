package billing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/textil-crm/internal/application/dto"
	"github.com/tu-usuario/textil-crm/internal/domain"
	"github.com/tu-usuario/textil-crm/internal/domain/entity"
	"github.com/tu-usuario/textil-crm/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeInvoiceRepo struct {
	invoices map[string]*entity.Invoice
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{invoices: map[string]*entity.Invoice{}}
}

func (r *fakeInvoiceRepo) Create(i *entity.Invoice) error {
	cp := *i
	r.invoices[i.ID] = &cp
	return nil
}

func (r *fakeInvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	i, ok := r.invoices[id]
	if !ok {
		return nil, nil
	}
	cp := *i
	return &cp, nil
}

func (r *fakeInvoiceRepo) GetByNumber(number string) (*entity.Invoice, error) {
	for _, i := range r.invoices {
		if i.InvoiceNumber == number {
			cp := *i
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeInvoiceRepo) Update(i *entity.Invoice) error {
	if _, ok := r.invoices[i.ID]; !ok {
		return errors.New("factura inexistente")
	}
	cp := *i
	r.invoices[i.ID] = &cp
	return nil
}

func (r *fakeInvoiceRepo) Delete(id string) error {
	delete(r.invoices, id)
	return nil
}

func (r *fakeInvoiceRepo) List(limit, offset int) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, i := range r.invoices {
		out = append(out, i)
	}
	return out, nil
}

func (r *fakeInvoiceRepo) ListByCustomer(customerID string) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, i := range r.invoices {
		if i.CustomerID == customerID {
			out = append(out, i)
		}
	}
	return out, nil
}

func (r *fakeInvoiceRepo) ListByOrder(orderID string) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, i := range r.invoices {
		if i.OrderID == orderID {
			out = append(out, i)
		}
	}
	return out, nil
}

func (r *fakeInvoiceRepo) ListByStatus(status string) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, i := range r.invoices {
		if i.Status == status {
			out = append(out, i)
		}
	}
	return out, nil
}

type fakePaymentRepo struct {
	payments map[string]*entity.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: map[string]*entity.Payment{}}
}

func (r *fakePaymentRepo) Create(p *entity.Payment) error {
	cp := *p
	r.payments[p.ID] = &cp
	return nil
}

func (r *fakePaymentRepo) GetByID(id string) (*entity.Payment, error) {
	p, ok := r.payments[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakePaymentRepo) Update(p *entity.Payment) error {
	if _, ok := r.payments[p.ID]; !ok {
		return errors.New("pago inexistente")
	}
	cp := *p
	r.payments[p.ID] = &cp
	return nil
}

func (r *fakePaymentRepo) Delete(id string) error {
	delete(r.payments, id)
	return nil
}

func (r *fakePaymentRepo) List(limit, offset int) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, p := range r.payments {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakePaymentRepo) ListByInvoice(invoiceID string) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, p := range r.payments {
		if p.InvoiceID == invoiceID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) ListByMethod(method string) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, p := range r.payments {
		if p.PaymentMethod == method {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) ListByStatus(status string) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, p := range r.payments {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out, nil
}

// fakeSequenceRepo emula el contador atómico por prefijo.
type fakeSequenceRepo struct {
	counters map[string]int
}

func newFakeSequenceRepo() *fakeSequenceRepo {
	return &fakeSequenceRepo{counters: map[string]int{}}
}

func (r *fakeSequenceRepo) Next(prefix string) (int, error) {
	r.counters[prefix]++
	return r.counters[prefix], nil
}

// fakeGateway responde con un txID fijo o rechaza según se configure.
type fakeGateway struct {
	txID    string
	fail    bool
	charges int
}

func (g *fakeGateway) Charge(ctx context.Context, p *entity.Payment) (string, error) {
	g.charges++
	if g.fail {
		return "", errors.New("fondos insuficientes")
	}
	return g.txID, nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "test", Level: "error"})
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

// seedInvoice crea una factura Sent con el total indicado y devuelve su ID.
func seedInvoice(t *testing.T, uc *InvoiceUseCase, total string) string {
	t.Helper()
	out, err := uc.Create(dto.CreateInvoiceRequest{
		OrderID:     "order-1",
		CustomerID:  "customer-1",
		Subtotal:    dec(total),
		TotalAmount: dec(total),
	})
	require.NoError(t, err)
	_, err = uc.UpdateStatus(out.ID, entity.InvoiceStatusSent)
	require.NoError(t, err)
	return out.ID
}

// ──────────────────────────────────────────────────────────────────────────────
// Numeración de documentos
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoiceCreate_GeneraConsecutivoMensual(t *testing.T) {
	invoiceRepo := newFakeInvoiceRepo()
	seq := newFakeSequenceRepo()
	uc := NewInvoiceUseCase(invoiceRepo, newFakePaymentRepo(), seq)

	first, err := uc.Create(dto.CreateInvoiceRequest{OrderID: "o1", CustomerID: "c1"})
	require.NoError(t, err)
	second, err := uc.Create(dto.CreateInvoiceRequest{OrderID: "o2", CustomerID: "c1"})
	require.NoError(t, err)

	// La primera factura del período es la 0001 y el consecutivo avanza de uno en uno.
	assert.Regexp(t, `^INV-\d{6}-0001$`, first.InvoiceNumber)
	assert.Regexp(t, `^INV-\d{6}-0002$`, second.InvoiceNumber)
	assert.Equal(t, entity.InvoiceStatusDraft, first.Status)
}

func TestInvoiceCreate_NumeroExplicitoDuplicado(t *testing.T) {
	uc := NewInvoiceUseCase(newFakeInvoiceRepo(), newFakePaymentRepo(), newFakeSequenceRepo())

	_, err := uc.Create(dto.CreateInvoiceRequest{InvoiceNumber: "INV-X-1", OrderID: "o1", CustomerID: "c1"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateInvoiceRequest{InvoiceNumber: "INV-X-1", OrderID: "o2", CustomerID: "c1"})
	assert.Equal(t, domain.ErrDuplicate, err)
}

func TestInvoiceCreate_SinOrderNiCustomer(t *testing.T) {
	uc := NewInvoiceUseCase(newFakeInvoiceRepo(), newFakePaymentRepo(), newFakeSequenceRepo())

	_, err := uc.Create(dto.CreateInvoiceRequest{})
	assert.Equal(t, domain.ErrInvalidInput, err)
}

func TestPaymentCreate_GeneraReferenciaAnual(t *testing.T) {
	invoiceRepo := newFakeInvoiceRepo()
	seq := newFakeSequenceRepo()
	invoiceUC := NewInvoiceUseCase(invoiceRepo, newFakePaymentRepo(), seq)
	invoiceID := seedInvoice(t, invoiceUC, "100")

	paymentRepo := newFakePaymentRepo()
	uc := NewPaymentUseCase(paymentRepo, invoiceRepo, seq, &fakeGateway{txID: "TX"}, testLogger())

	out, err := uc.Create(dto.CreatePaymentRequest{
		InvoiceID:     invoiceID,
		Amount:        dec("100"),
		PaymentMethod: entity.PaymentMethodCash,
	})
	require.NoError(t, err)
	assert.Regexp(t, `^PAY-\d{4}-00001$`, out.PaymentReference)
	assert.Equal(t, entity.PaymentStatusPending, out.Status)
}

func TestInvoiceUpdateStatus_PaidEstampaFecha(t *testing.T) {
	uc := NewInvoiceUseCase(newFakeInvoiceRepo(), newFakePaymentRepo(), newFakeSequenceRepo())

	created, err := uc.Create(dto.CreateInvoiceRequest{OrderID: "o1", CustomerID: "c1"})
	require.NoError(t, err)

	out, err := uc.UpdateStatus(created.ID, entity.InvoiceStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusPaid, out.Status)
	require.NotNil(t, out.PaidDate)

	_, err = uc.UpdateStatus(created.ID, "Quemada")
	assert.Equal(t, domain.ErrInvalidInput, err)

	_, err = uc.UpdateStatus("no-existe", entity.InvoiceStatusSent)
	assert.Equal(t, domain.ErrNotFound, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reconciliación de facturas
// ──────────────────────────────────────────────────────────────────────────────

// Escenario completo sobre una factura de 1000: un pago parcial de 400 la deja
// PartiallyPaid, el resto la deja Paid y borrar los pagos la devuelve a Sent.
func TestReconciliacion_PagoParcialYTotal(t *testing.T) {
	invoiceRepo := newFakeInvoiceRepo()
	paymentRepo := newFakePaymentRepo()
	seq := newFakeSequenceRepo()
	invoiceUC := NewInvoiceUseCase(invoiceRepo, paymentRepo, seq)
	paymentUC := NewPaymentUseCase(paymentRepo, invoiceRepo, seq, &fakeGateway{txID: "TX-1"}, testLogger())

	invoiceID := seedInvoice(t, invoiceUC, "1000")

	// Pago de 400, completado vía pasarela → PartiallyPaid, pendiente 600.
	p1, err := paymentUC.Create(dto.CreatePaymentRequest{
		InvoiceID:     invoiceID,
		Amount:        dec("400"),
		PaymentMethod: entity.PaymentMethodBankTransfer,
	})
	require.NoError(t, err)
	_, err = paymentUC.Process(context.Background(), p1.ID)
	require.NoError(t, err)

	balance, err := invoiceUC.Balance(invoiceID)
	require.NoError(t, err)
	assert.True(t, balance.Paid.Equal(dec("400")), "cobrado debe ser 400, es %s", balance.Paid)
	assert.True(t, balance.Remaining.Equal(dec("600")), "pendiente debe ser 600, es %s", balance.Remaining)

	invoice, err := invoiceUC.GetByID(invoiceID)
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusPartiallyPaid, invoice.Status)
	assert.Nil(t, invoice.PaidDate)

	// Pago de 600 → Paid con PaidDate.
	p2, err := paymentUC.Create(dto.CreatePaymentRequest{
		InvoiceID:     invoiceID,
		Amount:        dec("600"),
		PaymentMethod: entity.PaymentMethodBankTransfer,
	})
	require.NoError(t, err)
	_, err = paymentUC.Process(context.Background(), p2.ID)
	require.NoError(t, err)

	invoice, err = invoiceUC.GetByID(invoiceID)
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusPaid, invoice.Status)
	require.NotNil(t, invoice.PaidDate, "Paid debe estampar PaidDate")

	// Borrar ambos pagos devuelve la factura a Sent, nunca la deja Paid.
	require.NoError(t, paymentUC.Delete(p1.ID))
	require.NoError(t, paymentUC.Delete(p2.ID))

	invoice, err = invoiceUC.GetByID(invoiceID)
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusSent, invoice.Status)
	assert.Nil(t, invoice.PaidDate)
}

func TestReconciliacion_PagoPendingNoSuma(t *testing.T) {
	invoiceRepo := newFakeInvoiceRepo()
	paymentRepo := newFakePaymentRepo()
	seq := newFakeSequenceRepo()
	invoiceUC := NewInvoiceUseCase(invoiceRepo, paymentRepo, seq)
	paymentUC := NewPaymentUseCase(paymentRepo, invoiceRepo, seq, &fakeGateway{txID: "TX"}, testLogger())

	invoiceID := seedInvoice(t, invoiceUC, "500")

	_, err := paymentUC.Create(dto.CreatePaymentRequest{
		InvoiceID:     invoiceID,
		Amount:        dec("500"),
		PaymentMethod: entity.PaymentMethodCash,
	})
	require.NoError(t, err)

	// Sin procesar, el pago sigue Pending y la factura no cambia de estado.
	invoice, err := invoiceUC.GetByID(invoiceID)
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusSent, invoice.Status)

	balance, err := invoiceUC.Balance(invoiceID)
	require.NoError(t, err)
	assert.True(t, balance.Paid.IsZero())
}

func TestReconciliacion_SobrepagoEsPaid(t *testing.T) {
	invoiceRepo := newFakeInvoiceRepo()
	paymentRepo := newFakePaymentRepo()
	seq := newFakeSequenceRepo()
	invoiceUC := NewInvoiceUseCase(invoiceRepo, paymentRepo, seq)
	paymentUC := NewPaymentUseCase(paymentRepo, invoiceRepo, seq, &fakeGateway{txID: "TX"}, testLogger())

	invoiceID := seedInvoice(t, invoiceUC, "100")

	p, err := paymentUC.Create(dto.CreatePaymentRequest{
		InvoiceID:     invoiceID,
		Amount:        dec("150"),
		PaymentMethod: entity.PaymentMethodCash,
	})
	require.NoError(t, err)
	_, err = paymentUC.Process(context.Background(), p.ID)
	require.NoError(t, err)

	invoice, err := invoiceUC.GetByID(invoiceID)
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusPaid, invoice.Status, "pendiente <= 0 siempre gana")
}

// ──────────────────────────────────────────────────────────────────────────────
// Procesamiento contra la pasarela
// ──────────────────────────────────────────────────────────────────────────────

func TestProcess_CargoAceptado(t *testing.T) {
	invoiceRepo := newFakeInvoiceRepo()
	paymentRepo := newFakePaymentRepo()
	seq := newFakeSequenceRepo()
	invoiceUC := NewInvoiceUseCase(invoiceRepo, paymentRepo, seq)
	gw := &fakeGateway{txID: "ABCDEF0123456789"}
	paymentUC := NewPaymentUseCase(paymentRepo, invoiceRepo, seq, gw, testLogger())

	invoiceID := seedInvoice(t, invoiceUC, "200")
	p, err := paymentUC.Create(dto.CreatePaymentRequest{
		InvoiceID:     invoiceID,
		Amount:        dec("200"),
		PaymentMethod: entity.PaymentMethodCreditCard,
	})
	require.NoError(t, err)

	out, err := paymentUC.Process(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusCompleted, out.Status)
	assert.Equal(t, "ABCDEF0123456789", out.TransactionID)
	assert.Equal(t, 1, gw.charges)
}

func TestProcess_CargoRechazadoDejaFailed(t *testing.T) {
	invoiceRepo := newFakeInvoiceRepo()
	paymentRepo := newFakePaymentRepo()
	seq := newFakeSequenceRepo()
	invoiceUC := NewInvoiceUseCase(invoiceRepo, paymentRepo, seq)
	paymentUC := NewPaymentUseCase(paymentRepo, invoiceRepo, seq, &fakeGateway{fail: true}, testLogger())

	invoiceID := seedInvoice(t, invoiceUC, "200")
	p, err := paymentUC.Create(dto.CreatePaymentRequest{
		InvoiceID:     invoiceID,
		Amount:        dec("200"),
		PaymentMethod: entity.PaymentMethodCreditCard,
	})
	require.NoError(t, err)

	out, err := paymentUC.Process(context.Background(), p.ID)
	require.NoError(t, err, "el rechazo de la pasarela no es un error del caso de uso")
	assert.Equal(t, entity.PaymentStatusFailed, out.Status)
	assert.Empty(t, out.TransactionID)

	// La factura no se cobra con un pago Failed.
	invoice, err := invoiceUC.GetByID(invoiceID)
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusSent, invoice.Status)
}

func TestProcess_SoloPagosPending(t *testing.T) {
	invoiceRepo := newFakeInvoiceRepo()
	paymentRepo := newFakePaymentRepo()
	seq := newFakeSequenceRepo()
	invoiceUC := NewInvoiceUseCase(invoiceRepo, paymentRepo, seq)
	paymentUC := NewPaymentUseCase(paymentRepo, invoiceRepo, seq, &fakeGateway{txID: "TX"}, testLogger())

	invoiceID := seedInvoice(t, invoiceUC, "200")
	p, err := paymentUC.Create(dto.CreatePaymentRequest{
		InvoiceID:     invoiceID,
		Amount:        dec("200"),
		PaymentMethod: entity.PaymentMethodCash,
	})
	require.NoError(t, err)

	_, err = paymentUC.Process(context.Background(), p.ID)
	require.NoError(t, err)

	// Reprocesar un pago ya completado es un conflicto.
	_, err = paymentUC.Process(context.Background(), p.ID)
	assert.Equal(t, domain.ErrConflict, err)
}

func TestProcess_PagoInexistente(t *testing.T) {
	paymentUC := NewPaymentUseCase(newFakePaymentRepo(), newFakeInvoiceRepo(), newFakeSequenceRepo(), &fakeGateway{}, testLogger())

	_, err := paymentUC.Process(context.Background(), "no-existe")
	assert.Equal(t, domain.ErrNotFound, err)
}

func TestPaymentUpdate_CompletadoEsInmutable(t *testing.T) {
	invoiceRepo := newFakeInvoiceRepo()
	paymentRepo := newFakePaymentRepo()
	seq := newFakeSequenceRepo()
	invoiceUC := NewInvoiceUseCase(invoiceRepo, paymentRepo, seq)
	paymentUC := NewPaymentUseCase(paymentRepo, invoiceRepo, seq, &fakeGateway{txID: "TX"}, testLogger())

	invoiceID := seedInvoice(t, invoiceUC, "200")
	p, err := paymentUC.Create(dto.CreatePaymentRequest{
		InvoiceID:     invoiceID,
		Amount:        dec("200"),
		PaymentMethod: entity.PaymentMethodCash,
	})
	require.NoError(t, err)
	_, err = paymentUC.Process(context.Background(), p.ID)
	require.NoError(t, err)

	newAmount := dec("50")
	_, err = paymentUC.Update(p.ID, dto.UpdatePaymentRequest{Amount: &newAmount})
	assert.Equal(t, domain.ErrConflict, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Prefijos de período
// ──────────────────────────────────────────────────────────────────────────────

func TestNumeracion_PrefijosPorPeriodo(t *testing.T) {
	seq := newFakeSequenceRepo()

	enero := mustTime(t, "2026-01-15")
	febrero := mustTime(t, "2026-02-01")

	n1, err := nextInvoiceNumber(seq, enero)
	require.NoError(t, err)
	n2, err := nextInvoiceNumber(seq, enero)
	require.NoError(t, err)
	n3, err := nextInvoiceNumber(seq, febrero)
	require.NoError(t, err)

	assert.Equal(t, "INV-202601-0001", n1)
	assert.Equal(t, "INV-202601-0002", n2)
	assert.Equal(t, "INV-202602-0001", n3, "un mes nuevo reinicia el consecutivo")

	r1, err := nextPaymentReference(seq, enero)
	require.NoError(t, err)
	r2, err := nextPaymentReference(seq, febrero)
	require.NoError(t, err)

	assert.Equal(t, "PAY-2026-00001", r1)
	assert.Equal(t, "PAY-2026-00002", r2, "la referencia de pago es anual, no mensual")
}

func mustTime(t *testing.T, day string) time.Time {
	t.Helper()
	out, err := time.Parse("2006-01-02", day)
	require.NoError(t, err)
	return out
}
