// Package gateway contiene la pasarela de pagos simulada.
package gateway

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/textil-crm/internal/application/billing"
	"github.com/tu-usuario/textil-crm/internal/domain/entity"
	"github.com/tu-usuario/textil-crm/pkg/config"
)

var _ billing.PaymentGateway = (*SimulatedGateway)(nil)

// SimulatedGateway emula una pasarela externa: latencia configurable y un
// porcentaje de cargos rechazados. Con FailureRate 0 el cargo siempre aprueba.
type SimulatedGateway struct {
	delay       time.Duration
	failureRate int
}

// NewSimulatedGateway construye la pasarela desde configuración.
func NewSimulatedGateway(cfg config.GatewayConfig) *SimulatedGateway {
	return &SimulatedGateway{
		delay:       time.Duration(cfg.DelayMs) * time.Millisecond,
		failureRate: cfg.FailureRate,
	}
}

// Charge simula el cargo. Respeta la cancelación del contexto durante la
// latencia simulada. Devuelve un ID de transacción de 16 caracteres en
// mayúsculas cuando aprueba.
func (g *SimulatedGateway) Charge(ctx context.Context, payment *entity.Payment) (string, error) {
	if g.delay > 0 {
		select {
		case <-time.After(g.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if g.failureRate > 0 && rand.Intn(100) < g.failureRate {
		return "", fmt.Errorf("gateway: cargo rechazado para %s", payment.PaymentReference)
	}

	txID := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))[:16]
	return txID, nil
}
