package subscriptions

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/customer-portal/internal/application/dto"
	"github.com/tu-usuario/customer-portal/internal/application/ports"
	"github.com/tu-usuario/customer-portal/internal/domain"
	"github.com/tu-usuario/customer-portal/internal/domain/entity"
	"github.com/tu-usuario/customer-portal/internal/domain/repository"
)

// Acciones del proveedor de suscripciones.
const (
	actionPause     = "pause"
	actionResume    = "resume"
	actionCancel    = "cancel"
	actionFrequency = "frequency"
)

// UseCase máquina de estados de suscripciones: active ⇄ paused, y
// active|paused → cancelled (terminal). Cada mutación es un comando que
// primero se confirma con el proveedor y solo entonces se persiste: un
// rechazo deja el estado canónico intacto (no hay overlay optimista sin
// reconciliar). Las mutaciones sobre una misma suscripción se serializan
// con un lock por ID: política last-writer-wins en orden de llegada.
type UseCase struct {
	subs      repository.SubscriptionRepository
	provider  ports.SubscriptionProviderGateway
	analytics ports.AnalyticsSink
	timeout   time.Duration

	locks sync.Map // subscriptionID -> *sync.Mutex

	// now es inyectable para los tests de cálculo de NextDelivery.
	now func() time.Time
}

// NewUseCase construye el caso de uso. analytics puede ser nil.
func NewUseCase(subs repository.SubscriptionRepository, provider ports.SubscriptionProviderGateway, analytics ports.AnalyticsSink, timeout time.Duration) *UseCase {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &UseCase{subs: subs, provider: provider, analytics: analytics, timeout: timeout, now: time.Now}
}

// List devuelve las suscripciones del cliente con el resumen derivado en
// vivo: conteos active/paused y total mensual (suma de price de las activas).
func (uc *UseCase) List(customerID string) (*dto.SubscriptionListResponse, error) {
	list, err := uc.subs.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	out := &dto.SubscriptionListResponse{
		Subscriptions: make([]dto.SubscriptionResponse, 0, len(list)),
		Summary:       dto.SubscriptionSummary{MonthlyTotal: decimal.Zero},
	}
	for _, s := range list {
		out.Subscriptions = append(out.Subscriptions, toSubscriptionResponse(s))
		switch s.Status {
		case entity.SubscriptionActive:
			out.Summary.Active++
			out.Summary.MonthlyTotal = out.Summary.MonthlyTotal.Add(s.Price)
		case entity.SubscriptionPaused:
			out.Summary.Paused++
		}
	}
	return out, nil
}

// Summary calcula solo los agregados (para el dashboard del shell).
func (uc *UseCase) Summary(customerID string) (*dto.SubscriptionSummary, error) {
	list, err := uc.List(customerID)
	if err != nil {
		return nil, err
	}
	return &list.Summary, nil
}

// Pause transiciona active → paused.
func (uc *UseCase) Pause(ctx context.Context, customerID, id string) (*dto.SubscriptionActionResponse, error) {
	return uc.mutate(ctx, customerID, id, actionPause, "", func(s *entity.Subscription) error {
		if s.Status != entity.SubscriptionActive {
			return domain.ErrConflict
		}
		s.Status = entity.SubscriptionPaused
		return nil
	})
}

// Resume transiciona paused → active.
func (uc *UseCase) Resume(ctx context.Context, customerID, id string) (*dto.SubscriptionActionResponse, error) {
	return uc.mutate(ctx, customerID, id, actionResume, "", func(s *entity.Subscription) error {
		if s.Status != entity.SubscriptionPaused {
			return domain.ErrConflict
		}
		s.Status = entity.SubscriptionActive
		return nil
	})
}

// Cancel transiciona active|paused → cancelled. La cancelación es de una
// sola vía: ninguna acción posterior puede cambiar status ni frequency.
func (uc *UseCase) Cancel(ctx context.Context, customerID, id string) (*dto.SubscriptionActionResponse, error) {
	return uc.mutate(ctx, customerID, id, actionCancel, "", func(s *entity.Subscription) error {
		s.Status = entity.SubscriptionCancelled
		return nil
	})
}

// ChangeFrequency cambia la frecuencia y recalcula NextDelivery desde el
// instante del cambio (nunca desde la NextDelivery anterior). Entradas no
// reconocidas caen a monthly: política de fallback, no un no-op.
func (uc *UseCase) ChangeFrequency(ctx context.Context, customerID, id string, in dto.ChangeFrequencyRequest) (*dto.SubscriptionActionResponse, error) {
	freq := entity.NormalizeFrequency(in.Frequency)
	return uc.mutate(ctx, customerID, id, actionFrequency, freq, func(s *entity.Subscription) error {
		s.Frequency = freq
		s.NextDelivery = entity.NextDeliveryFrom(uc.now(), freq)
		return nil
	})
}

// mutate ejecuta el ciclo completo del comando: lock por suscripción, carga,
// validación de terminalidad, aplicación en memoria, confirmación con el
// proveedor y persistencia. El orden importa: si el proveedor rechaza, nada
// se persiste y el estado canónico queda como estaba.
func (uc *UseCase) mutate(ctx context.Context, customerID, id, action, freq string, apply func(*entity.Subscription) error) (*dto.SubscriptionActionResponse, error) {
	mu := uc.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	sub, err := uc.subs.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, domain.ErrNotFound
	}
	if sub.CustomerID != customerID {
		return nil, domain.ErrForbidden
	}
	if sub.Terminal() {
		return nil, domain.ErrSubscriptionCancelled
	}
	if err := apply(sub); err != nil {
		return nil, err
	}

	confirmCtx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()
	change := ports.SubscriptionChange{SubscriptionID: id, Action: action, Frequency: freq}
	if err := uc.provider.Confirm(confirmCtx, change); err != nil {
		// Comando rechazado: el overlay en memoria se descarta sin persistir.
		return nil, fmt.Errorf("%w: %v", domain.ErrGatewayUnavailable, err)
	}

	sub.UpdatedAt = uc.now()
	if err := uc.subs.Update(sub); err != nil {
		return nil, err
	}
	uc.emit(ports.AnalyticsEvent{Name: "subscription_action", Category: "subscription", Label: action})
	return &dto.SubscriptionActionResponse{
		Command:      dto.CommandCommitted,
		Subscription: toSubscriptionResponse(sub),
	}, nil
}

// SetNow reemplaza el reloj del caso de uso, para tests de cálculo de
// NextDelivery.
func (uc *UseCase) SetNow(now func() time.Time) {
	uc.now = now
}

// lockFor devuelve el mutex de la suscripción, creándolo si no existe.
func (uc *UseCase) lockFor(id string) *sync.Mutex {
	v, _ := uc.locks.LoadOrStore(id, &sync.Mutex{})
	return v.(*sync.Mutex)
}

func (uc *UseCase) emit(ev ports.AnalyticsEvent) {
	if uc.analytics != nil {
		uc.analytics.Emit(ev)
	}
}

func toSubscriptionResponse(s *entity.Subscription) dto.SubscriptionResponse {
	return dto.SubscriptionResponse{
		ID:           s.ID,
		ProductName:  s.ProductName,
		Status:       s.Status,
		Frequency:    s.Frequency,
		NextDelivery: s.NextDelivery,
		LastDelivery: s.LastDelivery,
		Price:        s.Price,
		Quantity:     s.Quantity,
		Created:      s.Created,
	}
}
