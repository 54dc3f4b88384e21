package portal

import (
	"github.com/tu-usuario/customer-portal/internal/application/dto"
	"github.com/tu-usuario/customer-portal/internal/application/orders"
	"github.com/tu-usuario/customer-portal/internal/application/profile"
	"github.com/tu-usuario/customer-portal/internal/application/subscriptions"
)

// recentOrdersLimit pedidos recientes que muestra el dashboard.
const recentOrdersLimit = 3

// Tabs lista ordenada de pestañas que el shell expone al host. La pestaña
// activa es estado del cliente; cambiar de pestaña no descarta borradores
// de las demás porque el servidor no guarda borradores.
var Tabs = []dto.TabDescriptor{
	{ID: "dashboard", Label: "Dashboard", Icon: "user"},
	{ID: "orders", Label: "Orders", Icon: "package"},
	{ID: "subscriptions", Label: "Subscriptions", Icon: "calendar"},
	{ID: "support", Label: "Support", Icon: "message-circle"},
	{ID: "profile", Label: "Profile", Icon: "settings"},
}

// UseCase shell del portal: compone perfil, ledger y suscripciones en el
// snapshot canónico que se obtiene una sola vez por carga y alimenta todas
// las pestañas.
type UseCase struct {
	profile       *profile.UseCase
	orders        *orders.UseCase
	subscriptions *subscriptions.UseCase
}

// NewUseCase construye el caso de uso.
func NewUseCase(profileUC *profile.UseCase, ordersUC *orders.UseCase, subsUC *subscriptions.UseCase) *UseCase {
	return &UseCase{profile: profileUC, orders: ordersUC, subscriptions: subsUC}
}

// Overview arma el snapshot del shell: perfil con contadores agregados,
// pedidos recientes, resumen de suscripciones y descriptores de pestañas.
func (uc *UseCase) Overview(customerID string) (*dto.PortalOverviewResponse, error) {
	customer, err := uc.profile.Get(customerID)
	if err != nil {
		return nil, err
	}
	ledger, err := uc.orders.List(customerID, dto.OrderListRequest{})
	if err != nil {
		return nil, err
	}
	recent := ledger.Orders
	if len(recent) > recentOrdersLimit {
		recent = recent[:recentOrdersLimit]
	}
	summary, err := uc.subscriptions.Summary(customerID)
	if err != nil {
		return nil, err
	}
	return &dto.PortalOverviewResponse{
		Customer:      *customer,
		RecentOrders:  recent,
		Subscriptions: *summary,
		Tabs:          Tabs,
	}, nil
}
