package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/customer-portal/internal/domain/entity"
	"github.com/tu-usuario/customer-portal/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository. Los ítems se cargan siempre
// junto con el pedido (el portal nunca muestra un pedido sin sus líneas).
type OrderRepo struct {
	q Querier
}

func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `
	id, customer_id, order_number, order_date, status, total,
	tracking_number, estimated_delivery, created_at`

// GetByID obtiene un pedido con sus ítems.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	return r.getOne(`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
}

// GetByNumber obtiene un pedido por su número estable (ej: "PUR-2024-001").
func (r *OrderRepo) GetByNumber(orderNumber string) (*entity.Order, error) {
	return r.getOne(`SELECT `+orderColumns+` FROM orders WHERE order_number = $1`, orderNumber)
}

func (r *OrderRepo) getOne(query string, arg any) (*entity.Order, error) {
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&o.ID, &o.CustomerID, &o.OrderNumber, &o.Date, &o.Status, &o.Total,
		&o.TrackingNumber, &o.EstimatedDelivery, &o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	items, err := r.itemsFor([]string{o.ID})
	if err != nil {
		return nil, err
	}
	o.Items = items[o.ID]
	return &o, nil
}

// ListByCustomer devuelve los pedidos del cliente con sus ítems, del más
// reciente al más antiguo.
func (r *OrderRepo) ListByCustomer(customerID string) ([]*entity.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE customer_id = $1
		ORDER BY order_date DESC, order_number DESC`
	rows, err := r.q.Query(context.Background(), query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var orders []*entity.Order
	var ids []string
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(
			&o.ID, &o.CustomerID, &o.OrderNumber, &o.Date, &o.Status, &o.Total,
			&o.TrackingNumber, &o.EstimatedDelivery, &o.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, &o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	if len(orders) == 0 {
		return orders, nil
	}

	items, err := r.itemsFor(ids)
	if err != nil {
		return nil, err
	}
	for _, o := range orders {
		o.Items = items[o.ID]
	}
	return orders, nil
}

// itemsFor carga en una sola consulta los ítems de los pedidos indicados.
func (r *OrderRepo) itemsFor(orderIDs []string) (map[string][]entity.OrderItem, error) {
	query := `
		SELECT id, order_id, name, quantity, price, image
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY order_id, id`
	rows, err := r.q.Query(context.Background(), query, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()

	items := make(map[string][]entity.OrderItem)
	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.Name, &it.Quantity, &it.Price, &it.Image); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items[it.OrderID] = append(items[it.OrderID], it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	return items, nil
}

// UpdateStatus transiciona el estado del pedido (el caso de uso ya validó
// la transición; aquí solo se persiste).
func (r *OrderRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE orders SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}
