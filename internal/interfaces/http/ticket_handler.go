package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/customer-portal/internal/application/dto"
	"github.com/tu-usuario/customer-portal/internal/application/support"
)

// TicketHandler maneja los tickets de soporte.
type TicketHandler struct {
	uc *support.UseCase
}

// NewTicketHandler construye el handler de soporte.
func NewTicketHandler(uc *support.UseCase) *TicketHandler {
	return &TicketHandler{uc: uc}
}

// Create godoc
// @Summary      Crear un ticket de soporte
// @Tags         support
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTicketRequest  true  "subject, description, category, priority"
// @Success      201  {object}  dto.TicketResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/support/tickets [post]
func (h *TicketHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTicketRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(GetCustomerID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar tickets (vista de listado con preview)
// @Tags         support
// @Produce      json
// @Success      200  {array}  dto.TicketListItem
// @Router       /api/support/tickets [get]
func (h *TicketHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetCustomerID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Ver un ticket con su hilo completo
// @Tags         support
// @Produce      json
// @Param        id  path  string  true  "ID del ticket"
// @Success      200  {object}  dto.TicketResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/support/tickets/{id} [get]
func (h *TicketHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(GetCustomerID(c), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// AddMessage godoc
// @Summary      Responder en el hilo del ticket
// @Tags         support
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID del ticket"
// @Param        body  body  dto.AddMessageRequest  true  "content"
// @Success      201  {object}  dto.TicketResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/support/tickets/{id}/messages [post]
func (h *TicketHandler) AddMessage(c *fiber.Ctx) error {
	var in dto.AddMessageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.AddMessage(GetCustomerID(c), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
