package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderListRequest filtros del historial de pedidos.
type OrderListRequest struct {
	Search string `query:"search"`
	Status string `query:"status"` // all | processing | shipped | delivered | cancelled
}

// OrderItemResponse línea de pedido en respuestas.
type OrderItemResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image,omitempty"`
}

// OrderResponse pedido en respuestas.
type OrderResponse struct {
	ID                string              `json:"id"`
	OrderNumber       string              `json:"order_number"`
	Date              time.Time           `json:"date"`
	Status            string              `json:"status"`
	Total             decimal.Decimal     `json:"total"`
	Items             []OrderItemResponse `json:"items"`
	TrackingNumber    string              `json:"tracking_number,omitempty"`
	EstimatedDelivery *time.Time          `json:"estimated_delivery,omitempty"`
}

// OrderStatusCounts conteos derivados por estado sobre el conjunto sin filtrar.
// Siempre: Processing+Shipped+Delivered+Cancelled == All.
type OrderStatusCounts struct {
	All        int `json:"all"`
	Processing int `json:"processing"`
	Shipped    int `json:"shipped"`
	Delivered  int `json:"delivered"`
	Cancelled  int `json:"cancelled"`
}

// OrderListResponse vista filtrada del ledger, preservando el orden, más los
// conteos derivados (nunca almacenados).
type OrderListResponse struct {
	Orders []OrderResponse   `json:"orders"`
	Counts OrderStatusCounts `json:"counts"`
}

// ReorderRequest cuerpo opcional de reorder: si ItemID viene, se reordena
// solo esa línea; si no, el pedido completo.
type ReorderRequest struct {
	ItemID string `json:"item_id"`
}

// ReorderResponse confirmación de la solicitud al carrito.
type ReorderResponse struct {
	OrderNumber string          `json:"order_number"`
	Items       int             `json:"items"`
	Total       decimal.Decimal `json:"total"`
	Message     string          `json:"message"`
}

// TrackingResponse enlace de seguimiento construido por el gateway de transporte.
type TrackingResponse struct {
	TrackingNumber    string     `json:"tracking_number"`
	URL               string     `json:"url"`
	EstimatedDelivery *time.Time `json:"estimated_delivery,omitempty"`
}
