package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/customer-portal/internal/application/portal"
)

// PortalHandler expone el snapshot del shell del portal.
type PortalHandler struct {
	uc *portal.UseCase
}

// NewPortalHandler construye el handler del shell.
func NewPortalHandler(uc *portal.UseCase) *PortalHandler {
	return &PortalHandler{uc: uc}
}

// Overview godoc
// @Summary      Snapshot del portal: perfil, pedidos recientes, suscripciones y pestañas
// @Tags         portal
// @Produce      json
// @Success      200  {object}  dto.PortalOverviewResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/portal [get]
func (h *PortalHandler) Overview(c *fiber.Ctx) error {
	out, err := h.uc.Overview(GetCustomerID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
