package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SubscriptionResponse suscripción en respuestas.
type SubscriptionResponse struct {
	ID           string          `json:"id"`
	ProductName  string          `json:"product_name"`
	Status       string          `json:"status"`
	Frequency    string          `json:"frequency"`
	NextDelivery time.Time       `json:"next_delivery"`
	LastDelivery time.Time       `json:"last_delivery"`
	Price        decimal.Decimal `json:"price"`
	Quantity     int             `json:"quantity"`
	Created      time.Time       `json:"created"`
}

// SubscriptionSummary agregados derivados en vivo: los conteos y el total
// mensual (suma de price de las activas) nunca se almacenan.
type SubscriptionSummary struct {
	Active       int             `json:"active"`
	Paused       int             `json:"paused"`
	MonthlyTotal decimal.Decimal `json:"monthly_total"`
}

// SubscriptionListResponse listado + resumen.
type SubscriptionListResponse struct {
	Subscriptions []SubscriptionResponse `json:"subscriptions"`
	Summary       SubscriptionSummary    `json:"summary"`
}

// ChangeFrequencyRequest entrada para cambio de frecuencia.
type ChangeFrequencyRequest struct {
	Frequency string `json:"frequency" validate:"required"`
}

// SubscriptionActionResponse resultado de una mutación (pause/resume/cancel/
// frequency). Command refleja el estado del comando: solo committed llega
// aquí; un rechazo del proveedor se reporta como error sin tocar el estado
// canónico.
type SubscriptionActionResponse struct {
	Command      string               `json:"command"`
	Subscription SubscriptionResponse `json:"subscription"`
}
