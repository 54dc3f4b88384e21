package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound              = errors.New("recurso no encontrado")
	ErrInvalidInput          = errors.New("entrada inválida")
	ErrDuplicate             = errors.New("recurso duplicado")
	ErrUnauthorized          = errors.New("no autorizado")
	ErrForbidden             = errors.New("acceso denegado")
	ErrConflict              = errors.New("conflicto con el estado actual")
	ErrSessionExpired        = errors.New("sesión expirada o inexistente")
	ErrEmailAlreadyExists    = errors.New("el email ya está registrado")
	ErrPasswordMismatch      = errors.New("las contraseñas no coinciden")
	ErrSubscriptionCancelled = errors.New("la suscripción está cancelada (estado terminal)")
	ErrTicketClosed          = errors.New("el ticket está cerrado y no acepta mensajes")
	ErrGatewayUnavailable    = errors.New("servicio externo no disponible")
)
