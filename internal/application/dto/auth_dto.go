package dto

import "time"

// LoginRequest entrada para login del cliente.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest entrada para registro de cliente (password en texto, se
// hashea en el use case; confirm_password debe coincidir).
type RegisterRequest struct {
	FirstName       string         `json:"first_name" validate:"required,max=100"`
	LastName        string         `json:"last_name" validate:"required,max=100"`
	Email           string         `json:"email" validate:"required,email"`
	Phone           string         `json:"phone" validate:"omitempty,max=30"`
	Password        string         `json:"password" validate:"required,min=6"`
	ConfirmPassword string         `json:"confirm_password" validate:"required"`
	Address         AddressRequest `json:"address"`
}

// AddressRequest dirección de envío en requests.
type AddressRequest struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	Province   string `json:"province"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// SessionResponse salida de login/registro: token de sesión + referencia al cliente.
type SessionResponse struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	Customer  CustomerRef `json:"customer"`
}

// CustomerRef referencia mínima del cliente en la sesión.
type CustomerRef struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
