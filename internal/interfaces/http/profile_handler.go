package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/customer-portal/internal/application/dto"
	"github.com/tu-usuario/customer-portal/internal/application/profile"
)

// ProfileHandler maneja perfil, seguridad y preferencias de notificación.
type ProfileHandler struct {
	uc *profile.UseCase
}

// NewProfileHandler construye el handler de perfil.
func NewProfileHandler(uc *profile.UseCase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

// Get godoc
// @Summary      Ver el perfil del cliente
// @Tags         profile
// @Produce      json
// @Success      200  {object}  dto.CustomerResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/profile [get]
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(GetCustomerID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// UpdateProfile godoc
// @Summary      Actualizar los datos personales (commit atómico)
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateProfileRequest  true  "first_name, last_name, email, phone"
// @Success      200  {object}  dto.CustomerResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/profile [put]
func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	var in dto.UpdateProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateProfile(GetCustomerID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// UpdateAddress godoc
// @Summary      Actualizar la dirección de envío (commit atómico)
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateAddressRequest  true  "dirección completa"
// @Success      200  {object}  dto.CustomerResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/profile/address [put]
func (h *ProfileHandler) UpdateAddress(c *fiber.Ctx) error {
	var in dto.UpdateAddressRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateAddress(GetCustomerID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// ChangePassword godoc
// @Summary      Cambiar la contraseña
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChangePasswordRequest  true  "current, new, confirm"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/profile/password [put]
func (h *ProfileHandler) ChangePassword(c *fiber.Ctx) error {
	var in dto.ChangePasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.ChangePassword(GetCustomerID(c), in); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetPreferences godoc
// @Summary      Ver las preferencias de notificación
// @Tags         profile
// @Produce      json
// @Success      200  {object}  dto.PreferencesResponse
// @Router       /api/profile/preferences [get]
func (h *ProfileHandler) GetPreferences(c *fiber.Ctx) error {
	out, err := h.uc.GetPreferences(GetCustomerID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// UpdatePreference godoc
// @Summary      Conmutar un toggle de notificación individual
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        key   path  string                       true  "email_notifications | sms_notifications | marketing_emails | order_updates"
// @Param        body  body  dto.UpdatePreferenceRequest  true  "enabled"
// @Success      200  {object}  dto.PreferencesResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/profile/preferences/{key} [put]
func (h *ProfileHandler) UpdatePreference(c *fiber.Ctx) error {
	var in dto.UpdatePreferenceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdatePreference(GetCustomerID(c), c.Params("key"), in.Enabled)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
