package gateway

import (
	"context"
	"time"

	"github.com/tu-usuario/customer-portal/internal/application/ports"
	"github.com/tu-usuario/customer-portal/pkg/logger"
)

var _ ports.SubscriptionProviderGateway = (*SubscriptionProviderStub)(nil)

// SubscriptionProviderStub simula al proveedor de suscripciones. Confirma
// toda mutación salvo que Fail esté definido; respeta la cancelación del
// contexto durante la latencia simulada.
type SubscriptionProviderStub struct {
	log     *logger.Logger
	latency time.Duration

	// Fail, si no es nil, se devuelve en lugar de confirmar.
	Fail error
}

func NewSubscriptionProviderStub(log *logger.Logger, latency time.Duration) *SubscriptionProviderStub {
	return &SubscriptionProviderStub{log: log, latency: latency}
}

// Confirm acepta la mutación propuesta.
func (g *SubscriptionProviderStub) Confirm(ctx context.Context, change ports.SubscriptionChange) error {
	if err := sleep(ctx, g.latency); err != nil {
		return err
	}
	if g.Fail != nil {
		return g.Fail
	}
	if g.log != nil {
		g.log.Info().
			Str("subscription_id", change.SubscriptionID).
			Str("action", change.Action).
			Str("frequency", change.Frequency).
			Msg("mutación de suscripción confirmada")
	}
	return nil
}
