package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/customer-portal/internal/application/dto"
	"github.com/tu-usuario/customer-portal/internal/application/subscriptions"
)

// SubscriptionHandler maneja la máquina de estados de suscripciones.
type SubscriptionHandler struct {
	uc *subscriptions.UseCase
}

// NewSubscriptionHandler construye el handler de suscripciones.
func NewSubscriptionHandler(uc *subscriptions.UseCase) *SubscriptionHandler {
	return &SubscriptionHandler{uc: uc}
}

// List godoc
// @Summary      Listar suscripciones con resumen derivado
// @Tags         subscriptions
// @Produce      json
// @Success      200  {object}  dto.SubscriptionListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/subscriptions [get]
func (h *SubscriptionHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetCustomerID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Summary godoc
// @Summary      Resumen de suscripciones (conteos + total mensual)
// @Tags         subscriptions
// @Produce      json
// @Success      200  {object}  dto.SubscriptionSummary
// @Router       /api/subscriptions/summary [get]
func (h *SubscriptionHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(GetCustomerID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Pause godoc
// @Summary      Pausar una suscripción activa
// @Tags         subscriptions
// @Produce      json
// @Param        id  path  string  true  "ID de la suscripción"
// @Success      200  {object}  dto.SubscriptionActionResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/subscriptions/{id}/pause [post]
func (h *SubscriptionHandler) Pause(c *fiber.Ctx) error {
	out, err := h.uc.Pause(c.Context(), GetCustomerID(c), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Resume godoc
// @Summary      Reanudar una suscripción pausada
// @Tags         subscriptions
// @Produce      json
// @Param        id  path  string  true  "ID de la suscripción"
// @Success      200  {object}  dto.SubscriptionActionResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/subscriptions/{id}/resume [post]
func (h *SubscriptionHandler) Resume(c *fiber.Ctx) error {
	out, err := h.uc.Resume(c.Context(), GetCustomerID(c), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Cancel godoc
// @Summary      Cancelar una suscripción (terminal)
// @Tags         subscriptions
// @Produce      json
// @Param        id  path  string  true  "ID de la suscripción"
// @Success      200  {object}  dto.SubscriptionActionResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/subscriptions/{id}/cancel [post]
func (h *SubscriptionHandler) Cancel(c *fiber.Ctx) error {
	out, err := h.uc.Cancel(c.Context(), GetCustomerID(c), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// ChangeFrequency godoc
// @Summary      Cambiar la frecuencia de entrega
// @Tags         subscriptions
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID de la suscripción"
// @Param        body  body  dto.ChangeFrequencyRequest true  "weekly | bi-weekly | monthly | quarterly"
// @Success      200  {object}  dto.SubscriptionActionResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/subscriptions/{id}/frequency [put]
func (h *SubscriptionHandler) ChangeFrequency(c *fiber.Ctx) error {
	var in dto.ChangeFrequencyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ChangeFrequency(c.Context(), GetCustomerID(c), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
