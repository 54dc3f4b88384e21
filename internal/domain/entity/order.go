package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un pedido histórico.
const (
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// OrderItem línea de un pedido.
type OrderItem struct {
	ID       string
	OrderID  string
	Name     string
	Quantity int
	Price    decimal.Decimal
	Image    string // ruta opcional de la imagen del producto
}

// Order representa un pedido histórico del cliente. Inmutable dentro del
// portal salvo la cancelación (processing → cancelled); "reorder" es una
// solicitud al carrito, nunca una mutación del pedido.
type Order struct {
	ID                string
	CustomerID        string
	OrderNumber       string // único y estable (ej: "PUR-2024-001")
	Date              time.Time
	Status            string
	Total             decimal.Decimal
	Items             []OrderItem
	TrackingNumber    string     // vacío si aún no hay guía
	EstimatedDelivery *time.Time // nil si no aplica
	CreatedAt         time.Time
}

// Cancellable indica si el pedido admite cancelación (solo en processing).
func (o *Order) Cancellable() bool {
	return o.Status == OrderStatusProcessing
}

// Matches evalúa el predicado conjuntivo del listado: el filtro de estado
// ("all" pasa todo) Y el término de búsqueda (case-insensitive sobre el
// número de pedido o el nombre de cualquier ítem; vacío pasa todo).
func (o *Order) Matches(statusFilter, searchTerm string) bool {
	if statusFilter != "" && statusFilter != "all" && o.Status != statusFilter {
		return false
	}
	term := strings.ToLower(strings.TrimSpace(searchTerm))
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(o.OrderNumber), term) {
		return true
	}
	for _, it := range o.Items {
		if strings.Contains(strings.ToLower(it.Name), term) {
			return true
		}
	}
	return false
}
