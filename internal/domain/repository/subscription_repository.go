package repository

import "github.com/tu-usuario/customer-portal/internal/domain/entity"

// SubscriptionRepository define el puerto de persistencia para suscripciones.
type SubscriptionRepository interface {
	GetByID(id string) (*entity.Subscription, error)
	ListByCustomer(customerID string) ([]*entity.Subscription, error)
	// Update persiste status, frequency, next_delivery y updated_at.
	Update(sub *entity.Subscription) error
}
