package crm

import (
	"context"

	"github.com/tu-usuario/textil-crm/internal/domain/repository"
)

// TxRunner ejecuta callbacks dentro de una transacción de base de datos.
// La cabecera del pedido y sus líneas se insertan de forma atómica.
type TxRunner interface {
	RunOrder(ctx context.Context, fn func(orderRepo repository.OrderRepository) error) error
}
