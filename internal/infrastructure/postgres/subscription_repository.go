package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/customer-portal/internal/domain/entity"
	"github.com/tu-usuario/customer-portal/internal/domain/repository"
)

var _ repository.SubscriptionRepository = (*SubscriptionRepo)(nil)

// SubscriptionRepo implementación de SubscriptionRepository.
type SubscriptionRepo struct {
	q Querier
}

func NewSubscriptionRepository(q Querier) *SubscriptionRepo {
	return &SubscriptionRepo{q: q}
}

const subscriptionColumns = `
	id, customer_id, product_name, status, frequency,
	next_delivery, last_delivery, price, quantity, created, updated_at`

// GetByID obtiene una suscripción por ID.
func (r *SubscriptionRepo) GetByID(id string) (*entity.Subscription, error) {
	query := `SELECT ` + subscriptionColumns + ` FROM subscriptions WHERE id = $1`
	var s entity.Subscription
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.CustomerID, &s.ProductName, &s.Status, &s.Frequency,
		&s.NextDelivery, &s.LastDelivery, &s.Price, &s.Quantity, &s.Created, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subscription: %w", err)
	}
	return &s, nil
}

// ListByCustomer devuelve las suscripciones del cliente, de la más reciente
// a la más antigua.
func (r *SubscriptionRepo) ListByCustomer(customerID string) ([]*entity.Subscription, error) {
	query := `
		SELECT ` + subscriptionColumns + `
		FROM subscriptions
		WHERE customer_id = $1
		ORDER BY created DESC`
	rows, err := r.q.Query(context.Background(), query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}
	defer rows.Close()

	var subs []*entity.Subscription
	for rows.Next() {
		var s entity.Subscription
		if err := rows.Scan(
			&s.ID, &s.CustomerID, &s.ProductName, &s.Status, &s.Frequency,
			&s.NextDelivery, &s.LastDelivery, &s.Price, &s.Quantity, &s.Created, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan subscription: %w", err)
		}
		subs = append(subs, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}
	return subs, nil
}

// Update persiste el resultado de un comando ya confirmado por el proveedor.
func (r *SubscriptionRepo) Update(sub *entity.Subscription) error {
	query := `
		UPDATE subscriptions
		SET status = $2, frequency = $3, next_delivery = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		sub.ID, sub.Status, sub.Frequency, sub.NextDelivery, sub.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update subscription: %w", err)
	}
	return nil
}
