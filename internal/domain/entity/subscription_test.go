package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/customer-portal/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// NextDeliveryFrom — cálculo de la próxima entrega
// ──────────────────────────────────────────────────────────────────────────────

func TestNextDeliveryFrom_DesdeElInstanteDelCambio(t *testing.T) {
	// Lunes 29 de enero de 2024: el cambio de frecuencia recalcula siempre
	// desde "now", nunca desde la NextDelivery anterior.
	from := time.Date(2024, time.January, 29, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		frequency string
		want      time.Time
	}{
		{entity.FrequencyWeekly, time.Date(2024, time.February, 5, 0, 0, 0, 0, time.UTC)},
		{entity.FrequencyBiWeekly, time.Date(2024, time.February, 12, 0, 0, 0, 0, time.UTC)},
		{entity.FrequencyMonthly, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)},
		{entity.FrequencyQuarterly, time.Date(2024, time.April, 29, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		got := entity.NextDeliveryFrom(from, tc.frequency)
		assert.Equal(t, tc.want, got, "frecuencia %s", tc.frequency)
	}
}

func TestNextDeliveryFrom_FrecuenciaDesconocidaCaeAMonthly(t *testing.T) {
	from := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	got := entity.NextDeliveryFrom(from, "cada-luna-llena")
	assert.Equal(t, time.Date(2024, time.April, 15, 0, 0, 0, 0, time.UTC), got,
		"una frecuencia no reconocida debe tratarse como monthly")
}

func TestNormalizeFrequency(t *testing.T) {
	assert.Equal(t, entity.FrequencyWeekly, entity.NormalizeFrequency("weekly"))
	assert.Equal(t, entity.FrequencyBiWeekly, entity.NormalizeFrequency("bi-weekly"))
	assert.Equal(t, entity.FrequencyQuarterly, entity.NormalizeFrequency("quarterly"))
	assert.Equal(t, entity.FrequencyMonthly, entity.NormalizeFrequency(""),
		"vacío cae a monthly")
	assert.Equal(t, entity.FrequencyMonthly, entity.NormalizeFrequency("daily"),
		"valor no soportado cae a monthly")
}

// ──────────────────────────────────────────────────────────────────────────────
// Terminal — cancelled no admite más transiciones
// ──────────────────────────────────────────────────────────────────────────────

func TestTerminal_SoloCancelled(t *testing.T) {
	sub := &entity.Subscription{Status: entity.SubscriptionActive}
	assert.False(t, sub.Terminal())

	sub.Status = entity.SubscriptionPaused
	assert.False(t, sub.Terminal())

	sub.Status = entity.SubscriptionCancelled
	assert.True(t, sub.Terminal(), "cancelled es terminal")
}
