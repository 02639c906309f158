package billing

import (
	"context"

	"github.com/tu-usuario/textil-crm/internal/domain/entity"
)

// PaymentGateway puerto hacia la pasarela de pagos externa.
//
// Charge bloquea hasta que la pasarela responde (es el único punto de
// suspensión del procesamiento de pagos) y devuelve el ID de transacción
// asignado. Un error significa cargo rechazado: el pago pasa a Failed.
type PaymentGateway interface {
	Charge(ctx context.Context, payment *entity.Payment) (transactionID string, err error)
}
