package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomerResponse perfil completo del cliente (sin hash de contraseña).
type CustomerResponse struct {
	ID          string          `json:"id"`
	Email       string          `json:"email"`
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
	Phone       string          `json:"phone,omitempty"`
	Address     AddressRequest  `json:"address"`
	TotalOrders int             `json:"total_orders"`
	TotalSpent  decimal.Decimal `json:"total_spent"`
	MemberSince time.Time       `json:"member_since"`
}

// UpdateProfileRequest commit atómico de los campos personales: o se
// persisten los cuatro o ninguno.
type UpdateProfileRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"omitempty,max=30"`
}

// UpdateAddressRequest commit atómico de la dirección de envío.
type UpdateAddressRequest struct {
	Street     string `json:"street" validate:"required"`
	City       string `json:"city" validate:"required"`
	Province   string `json:"province" validate:"required"`
	PostalCode string `json:"postal_code" validate:"required"`
	Country    string `json:"country" validate:"required"`
}

// ChangePasswordRequest cambio de contraseña: new y confirm deben coincidir
// antes de invocar el commit; el mismatch no borra ningún campo del cliente.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

// PreferencesResponse toggles de notificación.
type PreferencesResponse struct {
	EmailNotifications bool `json:"email_notifications"`
	SMSNotifications   bool `json:"sms_notifications"`
	MarketingEmails    bool `json:"marketing_emails"`
	OrderUpdates       bool `json:"order_updates"`
}

// UpdatePreferenceRequest toggle individual: cada uno se confirma de forma
// independiente e inmediata, sin borrador.
type UpdatePreferenceRequest struct {
	Enabled bool `json:"enabled"`
}
