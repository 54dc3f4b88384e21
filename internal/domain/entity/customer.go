package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Address dirección de envío del cliente.
type Address struct {
	Street     string
	City       string
	Province   string
	PostalCode string
	Country    string
}

// Customer representa un cliente del portal de autoservicio.
// TotalOrders y TotalSpent son contadores agregados; se actualizan fuera del
// portal (el portal solo los lee). PasswordHash nunca viaja en respuestas.
type Customer struct {
	ID           string
	Email        string
	FirstName    string
	LastName     string
	Phone        string
	Address      Address
	PasswordHash string // bcrypt, nunca plano en dominio después de persistir
	TotalOrders  int
	TotalSpent   decimal.Decimal
	MemberSince  time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NotificationPreferences toggles de notificación del cliente.
// Cada toggle se confirma de forma independiente e inmediata (sin borrador).
type NotificationPreferences struct {
	CustomerID         string
	EmailNotifications bool
	SMSNotifications   bool
	MarketingEmails    bool
	OrderUpdates       bool
	UpdatedAt          time.Time
}

// Claves válidas de preferencias (deben coincidir con las columnas de la tabla).
const (
	PrefEmailNotifications = "email_notifications"
	PrefSMSNotifications   = "sms_notifications"
	PrefMarketingEmails    = "marketing_emails"
	PrefOrderUpdates       = "order_updates"
)

// DefaultPreferences valores iniciales cuando el cliente aún no tiene fila propia.
func DefaultPreferences(customerID string) *NotificationPreferences {
	return &NotificationPreferences{
		CustomerID:         customerID,
		EmailNotifications: true,
		SMSNotifications:   false,
		MarketingEmails:    true,
		OrderUpdates:       true,
	}
}
