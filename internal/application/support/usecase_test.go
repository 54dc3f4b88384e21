package support_test

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/customer-portal/internal/application/dto"
	"github.com/tu-usuario/customer-portal/internal/application/support"
	"github.com/tu-usuario/customer-portal/internal/domain"
	"github.com/tu-usuario/customer-portal/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const testCustomerID = "cust-1"

// fakeTicketRepo repositorio de tickets en memoria para los tests.
type fakeTicketRepo struct {
	tickets map[string]*entity.SupportTicket
}

func newFakeTicketRepo() *fakeTicketRepo {
	return &fakeTicketRepo{tickets: make(map[string]*entity.SupportTicket)}
}

func (r *fakeTicketRepo) Create(t *entity.SupportTicket) error {
	copia := *t
	r.tickets[t.ID] = &copia
	return nil
}

func (r *fakeTicketRepo) GetByID(id string) (*entity.SupportTicket, error) {
	t, ok := r.tickets[id]
	if !ok {
		return nil, nil
	}
	copia := *t
	return &copia, nil
}

func (r *fakeTicketRepo) ListByCustomer(customerID string) ([]*entity.SupportTicket, error) {
	var out []*entity.SupportTicket
	for _, t := range r.tickets {
		if t.CustomerID == customerID {
			copia := *t
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (r *fakeTicketRepo) AppendMessage(ticketID string, msg *entity.TicketMessage) error {
	t, ok := r.tickets[ticketID]
	if !ok {
		return domain.ErrNotFound
	}
	t.Messages = append(t.Messages, *msg)
	t.Updated = msg.Timestamp
	return nil
}

func buildUseCase() (*support.UseCase, *fakeTicketRepo) {
	repo := newFakeTicketRepo()
	return support.NewUseCase(repo, nil, nil), repo
}

// ──────────────────────────────────────────────────────────────────────────────
// Create — validación y siembra del hilo
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_SiembraElPrimerMensaje(t *testing.T) {
	uc, _ := buildUseCase()

	out, err := uc.Create(testCustomerID, dto.CreateTicketRequest{
		Subject:     "Missing item in order",
		Description: "My last order arrived without the mug.",
		Category:    "order-issue",
		Priority:    "high",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.TicketOpen, out.Status, "todo ticket nace en open")
	assert.Equal(t, "high", out.Priority)
	assert.Equal(t, "order-issue", out.Category)
	assert.Equal(t, out.Created, out.Updated, "al crear, created == updated")
	require.Len(t, out.Messages, 1, "el hilo nace sembrado con un mensaje del cliente")
	assert.Equal(t, entity.SenderCustomer, out.Messages[0].Sender)
	assert.Equal(t, out.Description, out.Messages[0].Content)
}

func TestCreate_SubjectSoloEspaciosEsInerte(t *testing.T) {
	uc, repo := buildUseCase()

	_, err := uc.Create(testCustomerID, dto.CreateTicketRequest{
		Subject:     "   ",
		Description: "algo",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, repo.tickets, "la acción inválida no crea nada")
}

func TestCreate_DescriptionVaciaEsInerte(t *testing.T) {
	uc, _ := buildUseCase()
	_, err := uc.Create(testCustomerID, dto.CreateTicketRequest{
		Subject:     "Tema",
		Description: "",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_PrioridadYCategoriaCaenADefaults(t *testing.T) {
	uc, _ := buildUseCase()
	out, err := uc.Create(testCustomerID, dto.CreateTicketRequest{
		Subject:     "Tema",
		Description: "Descripción",
		Priority:    "critical",
		Category:    "complaints",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PriorityMedium, out.Priority)
	assert.Equal(t, entity.CategoryOther, out.Category)
}

// ──────────────────────────────────────────────────────────────────────────────
// AddMessage — hilo append-only
// ──────────────────────────────────────────────────────────────────────────────

func TestAddMessage_ApendeYActualizaUpdated(t *testing.T) {
	uc, _ := buildUseCase()
	created, err := uc.Create(testCustomerID, dto.CreateTicketRequest{
		Subject: "Tema", Description: "Descripción",
	})
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	out, err := uc.AddMessage(testCustomerID, created.ID, dto.AddMessageRequest{Content: "¿Alguna novedad?"})
	require.NoError(t, err)

	require.Len(t, out.Messages, 2)
	assert.Equal(t, "¿Alguna novedad?", out.Messages[1].Content)
	assert.True(t, out.Updated.After(created.Updated), "cada mensaje actualiza updated")
}

func TestAddMessage_TicketCerradoRechaza(t *testing.T) {
	uc, repo := buildUseCase()
	created, err := uc.Create(testCustomerID, dto.CreateTicketRequest{
		Subject: "Tema", Description: "Descripción",
	})
	require.NoError(t, err)

	repo.tickets[created.ID].Status = entity.TicketClosed

	_, err = uc.AddMessage(testCustomerID, created.ID, dto.AddMessageRequest{Content: "hola"})
	assert.ErrorIs(t, err, domain.ErrTicketClosed)

	stored, _ := repo.GetByID(created.ID)
	assert.Len(t, stored.Messages, 1, "el hilo del ticket cerrado queda intacto")
}

func TestAddMessage_ContenidoVacioEsInerte(t *testing.T) {
	uc, _ := buildUseCase()
	created, err := uc.Create(testCustomerID, dto.CreateTicketRequest{
		Subject: "Tema", Description: "Descripción",
	})
	require.NoError(t, err)

	_, err = uc.AddMessage(testCustomerID, created.ID, dto.AddMessageRequest{Content: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAddMessage_TicketAjeno(t *testing.T) {
	uc, _ := buildUseCase()
	created, err := uc.Create(testCustomerID, dto.CreateTicketRequest{
		Subject: "Tema", Description: "Descripción",
	})
	require.NoError(t, err)

	_, err = uc.AddMessage("otro-cliente", created.ID, dto.AddMessageRequest{Content: "hola"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// List — preview truncado
// ──────────────────────────────────────────────────────────────────────────────

func TestList_PreviewTruncado(t *testing.T) {
	uc, _ := buildUseCase()
	larga := strings.Repeat("palabra ", 40) // > 120 caracteres
	_, err := uc.Create(testCustomerID, dto.CreateTicketRequest{
		Subject: "Tema", Description: larga,
	})
	require.NoError(t, err)

	items, err := uc.List(testCustomerID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, strings.HasSuffix(items[0].Preview, "…"),
		"el preview largo termina en elipsis")
	assert.LessOrEqual(t, len([]rune(items[0].Preview)), 121)
	assert.Equal(t, 1, items[0].Messages)
}

func TestList_PreviewNoParteCaracteresMultibyte(t *testing.T) {
	uc, _ := buildUseCase()
	// "é" ocupa los bytes 119-120: un corte por bytes lo partiría a la mitad.
	larga := strings.Repeat("a", 119) + "équipe de support, merci de répondre rapidement"
	_, err := uc.Create(testCustomerID, dto.CreateTicketRequest{
		Subject: "Accents", Description: larga,
	})
	require.NoError(t, err)

	items, err := uc.List(testCustomerID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, utf8.ValidString(items[0].Preview),
		"el preview sigue siendo UTF-8 válido")
	assert.Equal(t, strings.Repeat("a", 119)+"…", items[0].Preview,
		"el corte retrocede al límite de runa anterior")
}

func TestGet_HiloCompleto(t *testing.T) {
	uc, _ := buildUseCase()
	created, err := uc.Create(testCustomerID, dto.CreateTicketRequest{
		Subject: "Tema", Description: "Descripción",
	})
	require.NoError(t, err)

	out, err := uc.Get(testCustomerID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, out.ID)
	assert.Len(t, out.Messages, 1)
}
