package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/customer-portal/internal/application/dto"
	"github.com/tu-usuario/customer-portal/internal/application/session"
)

// Locals keys para CustomerID y Email en Fiber.
const (
	LocalCustomerID = "customer_id"
	LocalEmail      = "email"
)

// SessionMiddleware valida el Bearer Token contra el session store y extrae
// CustomerID y Email a c.Locals. Un token válido con sesión purgada (logout o
// expiración) recibe el mismo 401 que un token malformado.
func SessionMiddleware(uc *session.UseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, ok := bearerToken(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "formato: Bearer <token>"})
		}
		sess, err := uc.Check(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "SESSION_EXPIRED", Message: "sesión expirada o inválida"})
		}
		c.Locals(LocalCustomerID, sess.CustomerID)
		c.Locals(LocalEmail, sess.Email)
		return c.Next()
	}
}

// bearerToken extrae el token del header Authorization.
func bearerToken(c *fiber.Ctx) (string, bool) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	tokenString := strings.TrimSpace(parts[1])
	if tokenString == "" {
		return "", false
	}
	return tokenString, true
}

// GetCustomerID devuelve el CustomerID del contexto (después del middleware de sesión).
func GetCustomerID(c *fiber.Ctx) string {
	v := c.Locals(LocalCustomerID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetEmail devuelve el Email del contexto (después del middleware de sesión).
func GetEmail(c *fiber.Ctx) string {
	v := c.Locals(LocalEmail)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
