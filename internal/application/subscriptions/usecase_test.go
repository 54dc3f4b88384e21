package subscriptions_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/customer-portal/internal/application/dto"
	"github.com/tu-usuario/customer-portal/internal/application/subscriptions"
	"github.com/tu-usuario/customer-portal/internal/domain"
	"github.com/tu-usuario/customer-portal/internal/domain/entity"
	"github.com/tu-usuario/customer-portal/internal/infrastructure/gateway"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const testCustomerID = "cust-1"

// fakeSubscriptionRepo repositorio en memoria; Updates cuenta las persistencias
// para verificar que un rechazo del proveedor no toca el estado canónico.
type fakeSubscriptionRepo struct {
	subs    map[string]*entity.Subscription
	Updates int
}

func newFakeSubscriptionRepo(subs ...*entity.Subscription) *fakeSubscriptionRepo {
	r := &fakeSubscriptionRepo{subs: make(map[string]*entity.Subscription)}
	for _, s := range subs {
		r.subs[s.ID] = s
	}
	return r
}

func (r *fakeSubscriptionRepo) GetByID(id string) (*entity.Subscription, error) {
	s, ok := r.subs[id]
	if !ok {
		return nil, nil
	}
	copia := *s
	return &copia, nil
}

func (r *fakeSubscriptionRepo) ListByCustomer(customerID string) ([]*entity.Subscription, error) {
	var out []*entity.Subscription
	for _, s := range r.subs {
		if s.CustomerID == customerID {
			copia := *s
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (r *fakeSubscriptionRepo) Update(sub *entity.Subscription) error {
	r.Updates++
	copia := *sub
	r.subs[sub.ID] = &copia
	return nil
}

func activeSub(id string) *entity.Subscription {
	return &entity.Subscription{
		ID: id, CustomerID: testCustomerID, ProductName: "Organic Coffee Beans",
		Status: entity.SubscriptionActive, Frequency: entity.FrequencyMonthly,
		Price: decimal.NewFromFloat(24.99), Quantity: 1,
	}
}

func buildUseCase(repo *fakeSubscriptionRepo, provider *gateway.SubscriptionProviderStub) *subscriptions.UseCase {
	if provider == nil {
		provider = gateway.NewSubscriptionProviderStub(nil, 0)
	}
	return subscriptions.NewUseCase(repo, provider, nil, time.Second)
}

// ──────────────────────────────────────────────────────────────────────────────
// Transiciones de estado
// ──────────────────────────────────────────────────────────────────────────────

func TestPause_ActiveAPaused(t *testing.T) {
	repo := newFakeSubscriptionRepo(activeSub("s-1"))
	uc := buildUseCase(repo, nil)

	out, err := uc.Pause(context.Background(), testCustomerID, "s-1")
	require.NoError(t, err)
	assert.Equal(t, dto.CommandCommitted, out.Command)
	assert.Equal(t, entity.SubscriptionPaused, out.Subscription.Status)
}

func TestPause_PausedEsConflicto(t *testing.T) {
	s := activeSub("s-1")
	s.Status = entity.SubscriptionPaused
	uc := buildUseCase(newFakeSubscriptionRepo(s), nil)

	_, err := uc.Pause(context.Background(), testCustomerID, "s-1")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestResume_PausedAActive(t *testing.T) {
	s := activeSub("s-1")
	s.Status = entity.SubscriptionPaused
	uc := buildUseCase(newFakeSubscriptionRepo(s), nil)

	out, err := uc.Resume(context.Background(), testCustomerID, "s-1")
	require.NoError(t, err)
	assert.Equal(t, entity.SubscriptionActive, out.Subscription.Status)
}

func TestCancel_EsTerminal(t *testing.T) {
	repo := newFakeSubscriptionRepo(activeSub("s-1"))
	uc := buildUseCase(repo, nil)

	out, err := uc.Cancel(context.Background(), testCustomerID, "s-1")
	require.NoError(t, err)
	assert.Equal(t, entity.SubscriptionCancelled, out.Subscription.Status)

	// Ninguna acción posterior puede revivir la suscripción.
	_, err = uc.Resume(context.Background(), testCustomerID, "s-1")
	assert.ErrorIs(t, err, domain.ErrSubscriptionCancelled)

	_, err = uc.ChangeFrequency(context.Background(), testCustomerID, "s-1",
		dto.ChangeFrequencyRequest{Frequency: "weekly"})
	assert.ErrorIs(t, err, domain.ErrSubscriptionCancelled)
}

func TestMutate_SuscripcionAjena(t *testing.T) {
	uc := buildUseCase(newFakeSubscriptionRepo(activeSub("s-1")), nil)
	_, err := uc.Pause(context.Background(), "otro-cliente", "s-1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestMutate_SuscripcionInexistente(t *testing.T) {
	uc := buildUseCase(newFakeSubscriptionRepo(), nil)
	_, err := uc.Pause(context.Background(), testCustomerID, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Rechazo del proveedor — nada se persiste
// ──────────────────────────────────────────────────────────────────────────────

func TestMutate_RechazoDelProveedorNoPersiste(t *testing.T) {
	repo := newFakeSubscriptionRepo(activeSub("s-1"))
	provider := gateway.NewSubscriptionProviderStub(nil, 0)
	provider.Fail = errors.New("provider rejected the change")
	uc := buildUseCase(repo, provider)

	_, err := uc.Pause(context.Background(), testCustomerID, "s-1")
	assert.ErrorIs(t, err, domain.ErrGatewayUnavailable)

	assert.Zero(t, repo.Updates, "un rechazo no debe tocar el estado canónico")
	stored, _ := repo.GetByID("s-1")
	assert.Equal(t, entity.SubscriptionActive, stored.Status,
		"la suscripción sigue activa tras el rechazo")
}

// ──────────────────────────────────────────────────────────────────────────────
// ChangeFrequency — recalcula NextDelivery desde el instante del cambio
// ──────────────────────────────────────────────────────────────────────────────

func TestChangeFrequency_RecalculaDesdeAhora(t *testing.T) {
	s := activeSub("s-1")
	s.NextDelivery = time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	repo := newFakeSubscriptionRepo(s)
	uc := buildUseCase(repo, nil)

	// Lunes 29 de enero de 2024, monthly → weekly ⇒ próxima entrega el 5 de febrero.
	ahora := time.Date(2024, time.January, 29, 10, 0, 0, 0, time.UTC)
	uc.SetNow(func() time.Time { return ahora })

	out, err := uc.ChangeFrequency(context.Background(), testCustomerID, "s-1",
		dto.ChangeFrequencyRequest{Frequency: "weekly"})
	require.NoError(t, err)
	assert.Equal(t, entity.FrequencyWeekly, out.Subscription.Frequency)
	assert.Equal(t, time.Date(2024, time.February, 5, 10, 0, 0, 0, time.UTC),
		out.Subscription.NextDelivery,
		"la próxima entrega se calcula desde el instante del cambio, no desde la anterior")
}

func TestChangeFrequency_DesconocidaCaeAMonthly(t *testing.T) {
	repo := newFakeSubscriptionRepo(activeSub("s-1"))
	uc := buildUseCase(repo, nil)

	out, err := uc.ChangeFrequency(context.Background(), testCustomerID, "s-1",
		dto.ChangeFrequencyRequest{Frequency: "daily"})
	require.NoError(t, err)
	assert.Equal(t, entity.FrequencyMonthly, out.Subscription.Frequency)
}

// ──────────────────────────────────────────────────────────────────────────────
// List / Summary — agregados derivados en vivo
// ──────────────────────────────────────────────────────────────────────────────

func TestList_ResumenDerivado(t *testing.T) {
	s1 := activeSub("s-1")
	s2 := activeSub("s-2")
	s2.Price = decimal.NewFromFloat(10.01)
	s3 := activeSub("s-3")
	s3.Status = entity.SubscriptionPaused
	s4 := activeSub("s-4")
	s4.Status = entity.SubscriptionCancelled

	uc := buildUseCase(newFakeSubscriptionRepo(s1, s2, s3, s4), nil)

	out, err := uc.List(testCustomerID)
	require.NoError(t, err)
	assert.Len(t, out.Subscriptions, 4)
	assert.Equal(t, 2, out.Summary.Active)
	assert.Equal(t, 1, out.Summary.Paused)
	assert.True(t, decimal.NewFromFloat(35.00).Equal(out.Summary.MonthlyTotal),
		"el total mensual suma solo las activas: got %s", out.Summary.MonthlyTotal)
}
