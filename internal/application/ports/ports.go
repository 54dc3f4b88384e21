package ports

import (
	"context"

	"github.com/tu-usuario/customer-portal/internal/domain/entity"
)

// AnalyticsEvent evento fire-and-forget hacia el sink de analítica.
// Value es opcional (nil cuando el evento no lleva valor monetario).
type AnalyticsEvent struct {
	Name     string
	Category string
	Label    string
	Value    *float64
}

// AnalyticsSink puerto de emisión de eventos. La ausencia del sink nunca
// afecta el comportamiento funcional: los use cases aceptan nil.
type AnalyticsSink interface {
	Emit(event AnalyticsEvent)
}

// CartGateway puerto hacia el servicio de carrito: un reorder es una
// solicitud externa, nunca una mutación del ledger de pedidos.
type CartGateway interface {
	AddItems(ctx context.Context, customerID string, items []entity.OrderItem) error
}

// TrackingGateway puerto hacia el transportador: construye la URL de
// seguimiento de una guía.
type TrackingGateway interface {
	TrackingURL(trackingNumber string) string
}

// SubscriptionChange describe la mutación a confirmar con el proveedor de
// suscripciones antes de persistirla.
type SubscriptionChange struct {
	SubscriptionID string
	Action         string // pause | resume | cancel | frequency
	Frequency      string // solo para action=frequency
}

// SubscriptionProviderGateway confirma mutaciones de suscripción. Si la
// confirmación falla, el estado canónico queda intacto y el error se
// reporta al cliente (no hay overlay optimista sin reconciliar).
type SubscriptionProviderGateway interface {
	Confirm(ctx context.Context, change SubscriptionChange) error
}
