package notification

import (
	"fmt"

	"github.com/tu-usuario/textil-crm/internal/domain"
	"github.com/tu-usuario/textil-crm/internal/domain/entity"
	"github.com/tu-usuario/textil-crm/internal/domain/repository"
	"github.com/tu-usuario/textil-crm/pkg/logger"
)

// EmailUseCase compone y envía los correos transaccionales del sistema.
// Satisface inventory.AlertMailer.
type EmailUseCase struct {
	sender       EmailSender
	pdfGenerator InvoicePDFGenerator
	customerRepo repository.CustomerRepository
	invoiceRepo  repository.InvoiceRepository
	orderRepo    repository.OrderRepository
	paymentRepo  repository.PaymentRepository
	userRepo     repository.UserRepository
	log          *logger.Logger
}

// NewEmailUseCase construye el caso de uso de correo.
func NewEmailUseCase(
	sender EmailSender,
	pdfGenerator InvoicePDFGenerator,
	customerRepo repository.CustomerRepository,
	invoiceRepo repository.InvoiceRepository,
	orderRepo repository.OrderRepository,
	paymentRepo repository.PaymentRepository,
	userRepo repository.UserRepository,
	log *logger.Logger,
) *EmailUseCase {
	return &EmailUseCase{
		sender:       sender,
		pdfGenerator: pdfGenerator,
		customerRepo: customerRepo,
		invoiceRepo:  invoiceRepo,
		orderRepo:    orderRepo,
		paymentRepo:  paymentRepo,
		userRepo:     userRepo,
		log:          log.Component("mail"),
	}
}

// SendOrderConfirmation envía al cliente la confirmación de su pedido.
func (uc *EmailUseCase) SendOrderConfirmation(orderID string) error {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	customer, err := uc.customerRepo.GetByID(order.CustomerID)
	if err != nil {
		return err
	}
	if customer == nil || customer.Email == "" {
		return domain.ErrNotFound
	}

	subject := fmt.Sprintf("Confirmación de pedido %s", order.ID)
	body := fmt.Sprintf(
		"<h2>Pedido confirmado</h2>"+
			"<p>Estimado/a %s,</p>"+
			"<p>Hemos registrado su pedido con fecha %s por un total de <b>%s</b>.</p>"+
			"<p>Le avisaremos cuando entre en producción.</p>",
		customer.Name,
		order.OrderDate.Format("02/01/2006"),
		order.TotalAmount.StringFixed(2),
	)
	return uc.send(customer.Email, subject, body)
}

// SendInvoice envía la factura al cliente, con el PDF adjunto cuando hay
// generador configurado.
func (uc *EmailUseCase) SendInvoice(invoiceID string) error {
	invoice, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return err
	}
	if invoice == nil {
		return domain.ErrNotFound
	}
	customer, err := uc.customerRepo.GetByID(invoice.CustomerID)
	if err != nil {
		return err
	}
	if customer == nil || customer.Email == "" {
		return domain.ErrNotFound
	}

	subject := fmt.Sprintf("Factura %s", invoice.InvoiceNumber)
	body := fmt.Sprintf(
		"<h2>Factura %s</h2>"+
			"<p>Estimado/a %s,</p>"+
			"<p>Adjuntamos su factura por un total de <b>%s</b>.</p>",
		invoice.InvoiceNumber,
		customer.Name,
		invoice.TotalAmount.StringFixed(2),
	)
	if invoice.DueDate != nil {
		body += fmt.Sprintf("<p>Fecha de vencimiento: %s.</p>", invoice.DueDate.Format("02/01/2006"))
	}

	if uc.pdfGenerator != nil {
		pdf, err := uc.pdfGenerator.Generate(invoice, customer)
		if err != nil {
			// El PDF no bloquea el envío de la factura.
			uc.log.Warn().Err(err).Str("invoice_id", invoice.ID).Msg("no se pudo generar el PDF de la factura")
		} else {
			filename := fmt.Sprintf("%s.pdf", invoice.InvoiceNumber)
			return uc.sender.SendWithAttachment(customer.Email, subject, body, filename, pdf)
		}
	}
	return uc.send(customer.Email, subject, body)
}

// SendPaymentConfirmation confirma al cliente la recepción de un pago.
func (uc *EmailUseCase) SendPaymentConfirmation(paymentID string) error {
	payment, err := uc.paymentRepo.GetByID(paymentID)
	if err != nil {
		return err
	}
	if payment == nil {
		return domain.ErrNotFound
	}
	invoice, err := uc.invoiceRepo.GetByID(payment.InvoiceID)
	if err != nil {
		return err
	}
	if invoice == nil {
		return domain.ErrNotFound
	}
	customer, err := uc.customerRepo.GetByID(invoice.CustomerID)
	if err != nil {
		return err
	}
	if customer == nil || customer.Email == "" {
		return domain.ErrNotFound
	}

	subject := fmt.Sprintf("Pago recibido %s", payment.PaymentReference)
	body := fmt.Sprintf(
		"<h2>Pago recibido</h2>"+
			"<p>Estimado/a %s,</p>"+
			"<p>Hemos recibido su pago <b>%s</b> de <b>%s</b> sobre la factura %s.</p>",
		customer.Name,
		payment.PaymentReference,
		payment.Amount.StringFixed(2),
		invoice.InvoiceNumber,
	)
	return uc.send(customer.Email, subject, body)
}

// SendLowStockAlert avisa por correo a los administradores de un producto
// con stock bajo o agotado.
func (uc *EmailUseCase) SendLowStockAlert(product *entity.Product, alertType string) error {
	if product == nil {
		return domain.ErrNotFound
	}
	admins, err := uc.userRepo.ListByRole(entity.RoleAdmin)
	if err != nil {
		return err
	}

	var subject string
	if alertType == entity.AlertTypeOutOfStock {
		subject = fmt.Sprintf("Producto agotado: %s", product.Name)
	} else {
		subject = fmt.Sprintf("Stock bajo: %s", product.Name)
	}
	body := fmt.Sprintf(
		"<h2>Alerta de inventario</h2>"+
			"<p>El producto <b>%s</b> (código %s) tiene un stock actual de <b>%d</b> unidades.</p>"+
			"<p>Revise el inventario y genere una orden de reposición si procede.</p>",
		product.Name,
		product.Code,
		product.StockQuantity,
	)

	for _, admin := range admins {
		if admin.Email == "" {
			continue
		}
		if err := uc.send(admin.Email, subject, body); err != nil {
			return err
		}
	}
	return nil
}

func (uc *EmailUseCase) send(to, subject, body string) error {
	if err := uc.sender.Send(to, subject, body); err != nil {
		return err
	}
	uc.log.Info().Str("to", to).Str("subject", subject).Msg("correo enviado")
	return nil
}
