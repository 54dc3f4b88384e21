package dto

// TabDescriptor pestaña del shell expuesta al host: lista ordenada de
// {id, label, icon}; la pestaña activa es estado del cliente.
type TabDescriptor struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// PortalOverviewResponse snapshot canónico del shell: se obtiene una vez por
// sesión/carga y alimenta todas las pestañas.
type PortalOverviewResponse struct {
	Customer      CustomerResponse    `json:"customer"`
	RecentOrders  []OrderResponse     `json:"recent_orders"`
	Subscriptions SubscriptionSummary `json:"subscriptions"`
	Tabs          []TabDescriptor     `json:"tabs"`
}
