package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una suscripción de entrega recurrente.
// cancelled es terminal: no admite más transiciones ni cambio de frecuencia.
const (
	SubscriptionActive    = "active"
	SubscriptionPaused    = "paused"
	SubscriptionCancelled = "cancelled"
)

// Frecuencias de entrega soportadas.
const (
	FrequencyWeekly    = "weekly"
	FrequencyBiWeekly  = "bi-weekly"
	FrequencyMonthly   = "monthly"
	FrequencyQuarterly = "quarterly"
)

// Subscription representa una entrega recurrente del cliente.
type Subscription struct {
	ID           string
	CustomerID   string
	ProductName  string
	Status       string
	Frequency    string
	NextDelivery time.Time
	LastDelivery time.Time
	Price        decimal.Decimal
	Quantity     int
	Created      time.Time
	UpdatedAt    time.Time
}

// Terminal indica si la suscripción llegó a su estado final.
func (s *Subscription) Terminal() bool {
	return s.Status == SubscriptionCancelled
}

// NormalizeFrequency valida la frecuencia; entradas no reconocidas caen a
// monthly (política de fallback, no un no-op silencioso).
func NormalizeFrequency(f string) string {
	switch f {
	case FrequencyWeekly, FrequencyBiWeekly, FrequencyMonthly, FrequencyQuarterly:
		return f
	default:
		return FrequencyMonthly
	}
}

// NextDeliveryFrom calcula la próxima entrega a partir del instante dado.
// Siempre se recalcula desde "now" (el instante del cambio), nunca desde la
// NextDelivery anterior: weekly +7d, bi-weekly +14d, monthly +1 mes
// calendario, quarterly +3 meses calendario.
func NextDeliveryFrom(from time.Time, frequency string) time.Time {
	switch NormalizeFrequency(frequency) {
	case FrequencyWeekly:
		return from.AddDate(0, 0, 7)
	case FrequencyBiWeekly:
		return from.AddDate(0, 0, 14)
	case FrequencyQuarterly:
		return from.AddDate(0, 3, 0)
	default:
		return from.AddDate(0, 1, 0)
	}
}
