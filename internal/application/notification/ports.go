package notification

import "github.com/tu-usuario/textil-crm/internal/domain/entity"

// EmailSender puerto de salida hacia el servidor de correo.
type EmailSender interface {
	// Send envía un correo HTML simple.
	Send(to, subject, htmlBody string) error
	// SendWithAttachment envía un correo HTML con un adjunto en memoria.
	SendWithAttachment(to, subject, htmlBody, filename string, data []byte) error
}

// InvoicePDFGenerator genera la representación PDF de una factura.
type InvoicePDFGenerator interface {
	Generate(invoice *entity.Invoice, customer *entity.Customer) ([]byte, error)
}
