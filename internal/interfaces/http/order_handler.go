package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/customer-portal/internal/application/dto"
	"github.com/tu-usuario/customer-portal/internal/application/orders"
)

// OrderHandler maneja la vista del historial de pedidos.
type OrderHandler struct {
	uc  *orders.UseCase
	pdf *orders.PDFUseCase
}

// NewOrderHandler construye el handler de pedidos.
func NewOrderHandler(uc *orders.UseCase, pdf *orders.PDFUseCase) *OrderHandler {
	return &OrderHandler{uc: uc, pdf: pdf}
}

// List godoc
// @Summary      Listar pedidos con filtros y conteos por estado
// @Tags         orders
// @Produce      json
// @Param        search  query  string  false  "término de búsqueda (número o producto)"
// @Param        status  query  string  false  "all | processing | shipped | delivered | cancelled"
// @Success      200  {object}  dto.OrderListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	var in dto.OrderListRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
	}
	out, err := h.uc.List(GetCustomerID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Reorder godoc
// @Summary      Reordenar el pedido completo o una sola línea
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id    path  string             true   "ID del pedido"
// @Param        body  body  dto.ReorderRequest false  "item_id opcional"
// @Success      200  {object}  dto.ReorderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/reorder [post]
func (h *OrderHandler) Reorder(c *fiber.Ctx) error {
	var in dto.ReorderRequest
	// El cuerpo es opcional: sin body se reordena el pedido completo.
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	out, err := h.uc.Reorder(c.Context(), GetCustomerID(c), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Cancel godoc
// @Summary      Cancelar un pedido en processing
// @Tags         orders
// @Produce      json
// @Param        id  path  string  true  "ID del pedido"
// @Success      200  {object}  dto.OrderResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/cancel [post]
func (h *OrderHandler) Cancel(c *fiber.Ctx) error {
	out, err := h.uc.Cancel(GetCustomerID(c), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Tracking godoc
// @Summary      Obtener el enlace de seguimiento del pedido
// @Tags         orders
// @Produce      json
// @Param        id  path  string  true  "ID del pedido"
// @Success      200  {object}  dto.TrackingResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/tracking [get]
func (h *OrderHandler) Tracking(c *fiber.Ctx) error {
	out, err := h.uc.Tracking(GetCustomerID(c), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Invoice godoc
// @Summary      Descargar la factura del pedido en PDF
// @Tags         orders
// @Produce      application/pdf
// @Param        number  path  string  true  "número de pedido (ej: PUR-2024-001)"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{number}/invoice [get]
func (h *OrderHandler) Invoice(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.pdf.DownloadInvoice(c.Context(), GetCustomerID(c), c.Params("number"))
	if err != nil {
		return fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
