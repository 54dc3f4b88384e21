package repository

import "github.com/tu-usuario/customer-portal/internal/domain/entity"

// OrderRepository define el puerto de lectura del historial de pedidos.
// El portal no crea pedidos; solo los lee y, excepcionalmente, cancela
// uno en processing.
type OrderRepository interface {
	GetByID(id string) (*entity.Order, error)
	GetByNumber(orderNumber string) (*entity.Order, error)
	// ListByCustomer devuelve los pedidos con sus ítems, del más reciente
	// al más antiguo (orden estable del ledger).
	ListByCustomer(customerID string) ([]*entity.Order, error)
	// UpdateStatus transiciona el estado del pedido (solo cancelación).
	UpdateStatus(id, status string) error
}
