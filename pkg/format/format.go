// Package format reúne los colaboradores puros de presentación que el host
// inyecta en cada pestaña: fecha, moneda y token de estilo por estado.
// Ninguna función tiene efectos secundarios ni estado.
package format

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.MustParse("en-CA"))

// Date formatea una fecha en el formato largo en-CA (ej: "January 15, 2024").
func Date(t time.Time) string {
	return t.Format("January 2, 2006")
}

// Currency formatea un monto en dólares canadienses (ej: "$19.99").
// Formatea desde los dígitos del propio decimal, sin pasar por float64:
// el separador de miles lo pone el printer en-CA y los centavos vienen
// fijos a dos decimales.
func Currency(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)
	neg := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")
	entero, centavos, _ := strings.Cut(fixed, ".")
	n, _ := strconv.ParseInt(entero, 10, 64)
	out := printer.Sprintf("$%d.%s", n, centavos)
	if neg {
		return "-" + out
	}
	return out
}

// StatusColor devuelve el token de estilo asociado a un estado de pedido,
// suscripción o ticket. Estados no reconocidos caen al token neutro.
func StatusColor(status string) string {
	switch status {
	case "processing", "paused", "in-progress":
		return "yellow"
	case "shipped", "open":
		return "blue"
	case "delivered", "active", "resolved":
		return "green"
	case "cancelled":
		return "red"
	default:
		return "gray"
	}
}

// PriorityColor devuelve el token de estilo de una prioridad de ticket.
func PriorityColor(priority string) string {
	switch priority {
	case "low":
		return "gray"
	case "high":
		return "orange"
	case "urgent":
		return "red"
	default: // medium y no reconocidas
		return "yellow"
	}
}
