package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/customer-portal/internal/application/dto"
	"github.com/tu-usuario/customer-portal/internal/domain"
)

// fail traduce los errores centinela del dominio a respuestas HTTP. El mapeo
// es único para toda la API; los handlers nunca eligen códigos a mano.
func fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrPasswordMismatch):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "PASSWORD_MISMATCH", Message: "las contraseñas no coinciden"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrSessionExpired):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "SESSION_EXPIRED", Message: "sesión expirada o inválida"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el recurso no pertenece a la sesión"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
	case errors.Is(err, domain.ErrSubscriptionCancelled):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SUBSCRIPTION_CANCELLED", Message: "la suscripción está cancelada y no admite cambios"})
	case errors.Is(err, domain.ErrTicketClosed):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "TICKET_CLOSED", Message: "el ticket está cerrado y no admite mensajes"})
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "la operación entra en conflicto con el estado actual"})
	case errors.Is(err, domain.ErrGatewayUnavailable):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "GATEWAY_UNAVAILABLE", Message: "el servicio externo no confirmó la operación; el estado no cambió"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
