package format_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/customer-portal/pkg/format"
)

func TestDate_FormatoLargoEnCA(t *testing.T) {
	d := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "January 15, 2024", format.Date(d))
}

func TestCurrency_DolaresCanadienses(t *testing.T) {
	got := format.Currency(decimal.NewFromFloat(19.99))
	assert.Contains(t, got, "19.99")
	assert.Contains(t, got, "$")
}

func TestCurrency_SeparadorDeMilesYNegativos(t *testing.T) {
	assert.Equal(t, "$1,234,567.89", format.Currency(decimal.RequireFromString("1234567.89")))
	assert.Equal(t, "-$1,234.50", format.Currency(decimal.RequireFromString("-1234.5")))
	assert.Equal(t, "$0.05", format.Currency(decimal.RequireFromString("0.05")))
}

func TestCurrency_SinPerdidaDePrecision(t *testing.T) {
	// Un monto que float64 no representa exacto: los centavos salen del decimal.
	got := format.Currency(decimal.RequireFromString("9007199254740993.11"))
	assert.Equal(t, "$9,007,199,254,740,993.11", got)
}

func TestStatusColor(t *testing.T) {
	assert.Equal(t, "yellow", format.StatusColor("processing"))
	assert.Equal(t, "blue", format.StatusColor("shipped"))
	assert.Equal(t, "green", format.StatusColor("delivered"))
	assert.Equal(t, "green", format.StatusColor("active"))
	assert.Equal(t, "red", format.StatusColor("cancelled"))
	assert.Equal(t, "gray", format.StatusColor("desconocido"), "estado no reconocido cae al token neutro")
}

func TestPriorityColor(t *testing.T) {
	assert.Equal(t, "gray", format.PriorityColor("low"))
	assert.Equal(t, "yellow", format.PriorityColor("medium"))
	assert.Equal(t, "orange", format.PriorityColor("high"))
	assert.Equal(t, "red", format.PriorityColor("urgent"))
	assert.Equal(t, "yellow", format.PriorityColor("otra"))
}
