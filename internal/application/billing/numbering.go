package billing

import (
	"fmt"
	"time"

	"github.com/tu-usuario/textil-crm/internal/domain/repository"
)

// Numeración de documentos: consecutivos legibles por período.
//   - Facturas:  INV-<yyyyMM>-NNNN   (reinicia cada mes)
//   - Pagos:     PAY-<yyyy>-NNNNN    (reinicia cada año)
//
// El contador por prefijo vive en SequenceRepository y es atómico, así que
// dos peticiones simultáneas nunca obtienen el mismo número. El reinicio por
// período es implícito: un prefijo nuevo arranca en 1.

func invoicePrefix(t time.Time) string {
	return fmt.Sprintf("INV-%04d%02d-", t.Year(), int(t.Month()))
}

func paymentPrefix(t time.Time) string {
	return fmt.Sprintf("PAY-%04d-", t.Year())
}

// nextInvoiceNumber genera el siguiente número de factura del mes en curso.
func nextInvoiceNumber(seq repository.SequenceRepository, now time.Time) (string, error) {
	prefix := invoicePrefix(now)
	n, err := seq.Next(prefix)
	if err != nil {
		return "", fmt.Errorf("consecutivo de factura: %w", err)
	}
	return fmt.Sprintf("%s%04d", prefix, n), nil
}

// nextPaymentReference genera la siguiente referencia de pago del año en curso.
func nextPaymentReference(seq repository.SequenceRepository, now time.Time) (string, error) {
	prefix := paymentPrefix(now)
	n, err := seq.Next(prefix)
	if err != nil {
		return "", fmt.Errorf("consecutivo de pago: %w", err)
	}
	return fmt.Sprintf("%s%05d", prefix, n), nil
}
