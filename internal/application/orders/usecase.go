package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/customer-portal/internal/application/dto"
	"github.com/tu-usuario/customer-portal/internal/application/ports"
	"github.com/tu-usuario/customer-portal/internal/domain"
	"github.com/tu-usuario/customer-portal/internal/domain/entity"
	"github.com/tu-usuario/customer-portal/internal/domain/repository"
)

// UseCase vista del ledger de pedidos: listado filtrado con conteos
// derivados, reorder vía carrito, cancelación, factura y seguimiento.
type UseCase struct {
	orders    repository.OrderRepository
	cart      ports.CartGateway
	tracking  ports.TrackingGateway
	analytics ports.AnalyticsSink
	timeout   time.Duration
}

// NewUseCase construye el caso de uso. analytics puede ser nil.
func NewUseCase(orders repository.OrderRepository, cart ports.CartGateway, tracking ports.TrackingGateway, analytics ports.AnalyticsSink, timeout time.Duration) *UseCase {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &UseCase{orders: orders, cart: cart, tracking: tracking, analytics: analytics, timeout: timeout}
}

// List devuelve la vista filtrada del ledger preservando el orden, más los
// conteos por estado sobre el conjunto sin filtrar. El filtro es conjuntivo:
// estado Y término de búsqueda (ver entity.Order.Matches).
func (uc *UseCase) List(customerID string, in dto.OrderListRequest) (*dto.OrderListResponse, error) {
	all, err := uc.orders.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	out := &dto.OrderListResponse{Orders: []dto.OrderResponse{}}
	for _, o := range all {
		out.Counts.All++
		switch o.Status {
		case entity.OrderStatusProcessing:
			out.Counts.Processing++
		case entity.OrderStatusShipped:
			out.Counts.Shipped++
		case entity.OrderStatusDelivered:
			out.Counts.Delivered++
		case entity.OrderStatusCancelled:
			out.Counts.Cancelled++
		}
		if o.Matches(in.Status, in.Search) {
			out.Orders = append(out.Orders, toOrderResponse(o))
		}
	}
	return out, nil
}

// Reorder solicita al carrito el pedido completo o una sola línea (ItemID).
// Emite el evento de analítica con el total como valor y nunca muta el
// ledger. Un fallo del gateway se reporta como ErrGatewayUnavailable.
func (uc *UseCase) Reorder(ctx context.Context, customerID, orderID string, in dto.ReorderRequest) (*dto.ReorderResponse, error) {
	order, err := uc.ownedOrder(customerID, orderID)
	if err != nil {
		return nil, err
	}
	items := order.Items
	if in.ItemID != "" {
		items = nil
		for _, it := range order.Items {
			if it.ID == in.ItemID {
				items = []entity.OrderItem{it}
				break
			}
		}
		if items == nil {
			return nil, domain.ErrNotFound
		}
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()
	if err := uc.cart.AddItems(ctx, customerID, items); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrGatewayUnavailable, err)
	}

	total, _ := order.Total.Float64()
	uc.emit(ports.AnalyticsEvent{
		Name:     "reorder",
		Category: "ecommerce",
		Label:    order.OrderNumber,
		Value:    &total,
	})
	return &dto.ReorderResponse{
		OrderNumber: order.OrderNumber,
		Items:       len(items),
		Total:       order.Total,
		Message:     fmt.Sprintf("Order %s has been added to your cart", order.OrderNumber),
	}, nil
}

// Cancel transiciona processing → cancelled. Cualquier otro estado es un
// conflicto: los pedidos históricos son inmutables fuera de esa transición.
func (uc *UseCase) Cancel(customerID, orderID string) (*dto.OrderResponse, error) {
	order, err := uc.ownedOrder(customerID, orderID)
	if err != nil {
		return nil, err
	}
	if !order.Cancellable() {
		return nil, domain.ErrConflict
	}
	if err := uc.orders.UpdateStatus(order.ID, entity.OrderStatusCancelled); err != nil {
		return nil, err
	}
	order.Status = entity.OrderStatusCancelled
	resp := toOrderResponse(order)
	return &resp, nil
}

// Tracking construye el enlace de seguimiento con el gateway del
// transportador. Pedidos sin guía producen entrada inválida.
func (uc *UseCase) Tracking(customerID, orderID string) (*dto.TrackingResponse, error) {
	order, err := uc.ownedOrder(customerID, orderID)
	if err != nil {
		return nil, err
	}
	if order.TrackingNumber == "" {
		return nil, fmt.Errorf("%w: el pedido aún no tiene guía de seguimiento", domain.ErrInvalidInput)
	}
	return &dto.TrackingResponse{
		TrackingNumber:    order.TrackingNumber,
		URL:               uc.tracking.TrackingURL(order.TrackingNumber),
		EstimatedDelivery: order.EstimatedDelivery,
	}, nil
}

// ownedOrder carga el pedido y verifica que pertenezca al cliente de la sesión.
func (uc *UseCase) ownedOrder(customerID, orderID string) (*entity.Order, error) {
	order, err := uc.orders.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.CustomerID != customerID {
		return nil, domain.ErrForbidden
	}
	return order, nil
}

func (uc *UseCase) emit(ev ports.AnalyticsEvent) {
	if uc.analytics != nil {
		uc.analytics.Emit(ev)
	}
}

func toOrderResponse(o *entity.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemResponse{
			ID:       it.ID,
			Name:     it.Name,
			Quantity: it.Quantity,
			Price:    it.Price,
			Image:    it.Image,
		})
	}
	return dto.OrderResponse{
		ID:                o.ID,
		OrderNumber:       o.OrderNumber,
		Date:              o.Date,
		Status:            o.Status,
		Total:             o.Total,
		Items:             items,
		TrackingNumber:    o.TrackingNumber,
		EstimatedDelivery: o.EstimatedDelivery,
	}
}
