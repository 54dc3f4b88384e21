package gateway

import (
	"fmt"

	"github.com/tu-usuario/customer-portal/internal/application/ports"
)

var _ ports.TrackingGateway = (*CanadaPostTracking)(nil)

// CanadaPostTracking construye URLs de seguimiento del transportador.
type CanadaPostTracking struct{}

func NewCanadaPostTracking() *CanadaPostTracking {
	return &CanadaPostTracking{}
}

// TrackingURL devuelve la URL pública de seguimiento de la guía.
func (CanadaPostTracking) TrackingURL(trackingNumber string) string {
	return fmt.Sprintf("https://www.canadapost.ca/track-reperage/en#/search?searchFor=%s", trackingNumber)
}
