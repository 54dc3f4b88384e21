package gateway

import (
	"context"
	"time"

	"github.com/tu-usuario/customer-portal/internal/application/ports"
	"github.com/tu-usuario/customer-portal/internal/domain/entity"
	"github.com/tu-usuario/customer-portal/pkg/logger"
)

var _ ports.CartGateway = (*CartStub)(nil)

// CartStub simula el servicio de carrito. Latency modela la latencia de la
// llamada externa y respeta la cancelación del contexto; Fail permite forzar
// el fallo en tests.
type CartStub struct {
	log     *logger.Logger
	latency time.Duration

	// Fail, si no es nil, se devuelve en lugar de aceptar los ítems.
	Fail error
}

func NewCartStub(log *logger.Logger, latency time.Duration) *CartStub {
	return &CartStub{log: log, latency: latency}
}

// AddItems acepta los ítems en el carrito del cliente.
func (g *CartStub) AddItems(ctx context.Context, customerID string, items []entity.OrderItem) error {
	if err := sleep(ctx, g.latency); err != nil {
		return err
	}
	if g.Fail != nil {
		return g.Fail
	}
	if g.log != nil {
		g.log.Info().
			Str("customer_id", customerID).
			Int("items", len(items)).
			Msg("ítems añadidos al carrito")
	}
	return nil
}

// sleep espera la latencia configurada o hasta que el contexto se cancele.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
