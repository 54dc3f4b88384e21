package support

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/tu-usuario/customer-portal/internal/application/dto"
	"github.com/tu-usuario/customer-portal/internal/application/ports"
	"github.com/tu-usuario/customer-portal/internal/domain"
	"github.com/tu-usuario/customer-portal/internal/domain/entity"
	"github.com/tu-usuario/customer-portal/internal/domain/repository"
)

// previewLen longitud máxima del preview de descripción en el listado.
const previewLen = 120

// UseCase tickets de soporte: creación validada, hilo append-only y las dos
// vistas excluyentes (listado / detalle).
type UseCase struct {
	tickets   repository.TicketRepository
	customers repository.CustomerRepository
	analytics ports.AnalyticsSink
}

// NewUseCase construye el caso de uso. analytics puede ser nil.
func NewUseCase(tickets repository.TicketRepository, customers repository.CustomerRepository, analytics ports.AnalyticsSink) *UseCase {
	return &UseCase{tickets: tickets, customers: customers, analytics: analytics}
}

// Create crea un ticket en open sembrado con un primer mensaje del cliente.
// Subject y description deben ser no vacíos después de trim; si no, la
// acción es inerte (ErrInvalidInput). Priority/category no reconocidas caen
// a medium/other. Created == Updated == now.
func (uc *UseCase) Create(customerID string, in dto.CreateTicketRequest) (*dto.TicketResponse, error) {
	subject := strings.TrimSpace(in.Subject)
	description := strings.TrimSpace(in.Description)
	if subject == "" || description == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	ticket := &entity.SupportTicket{
		ID:          uuid.New().String(),
		CustomerID:  customerID,
		Subject:     subject,
		Description: description,
		Status:      entity.TicketOpen,
		Priority:    entity.NormalizePriority(in.Priority),
		Category:    entity.NormalizeCategory(in.Category),
		Created:     now,
		Updated:     now,
		Messages: []entity.TicketMessage{{
			ID:         uuid.New().String(),
			Sender:     entity.SenderCustomer,
			SenderName: uc.senderName(customerID),
			Content:    description,
			Timestamp:  now,
		}},
	}
	ticket.Messages[0].TicketID = ticket.ID
	if err := uc.tickets.Create(ticket); err != nil {
		return nil, err
	}
	uc.emit(ports.AnalyticsEvent{Name: "support_ticket_created", Category: "support", Label: ticket.Category})
	resp := toTicketResponse(ticket)
	return &resp, nil
}

// AddMessage añade un mensaje al hilo y actualiza updated = now. Un ticket
// closed rechaza mensajes nuevos; el hilo nunca se reordena ni se poda.
func (uc *UseCase) AddMessage(customerID, ticketID string, in dto.AddMessageRequest) (*dto.TicketResponse, error) {
	content := strings.TrimSpace(in.Content)
	if content == "" {
		return nil, domain.ErrInvalidInput
	}
	ticket, err := uc.ownedTicket(customerID, ticketID)
	if err != nil {
		return nil, err
	}
	if !ticket.AcceptsMessages() {
		return nil, domain.ErrTicketClosed
	}
	now := time.Now()
	msg := &entity.TicketMessage{
		ID:         uuid.New().String(),
		TicketID:   ticket.ID,
		Sender:     entity.SenderCustomer,
		SenderName: uc.senderName(customerID),
		Content:    content,
		Timestamp:  now,
	}
	if err := uc.tickets.AppendMessage(ticket.ID, msg); err != nil {
		return nil, err
	}
	ticket.Messages = append(ticket.Messages, *msg)
	ticket.Updated = now
	resp := toTicketResponse(ticket)
	return &resp, nil
}

// List devuelve la vista de listado: tags de estado/prioridad/categoría y
// preview truncado, del ticket más recientemente actualizado al más antiguo.
func (uc *UseCase) List(customerID string) ([]dto.TicketListItem, error) {
	tickets, err := uc.tickets.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TicketListItem, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, dto.TicketListItem{
			ID:       t.ID,
			Subject:  t.Subject,
			Preview:  truncate(t.Description, previewLen),
			Status:   t.Status,
			Priority: t.Priority,
			Category: t.Category,
			Messages: len(t.Messages),
			Created:  t.Created,
			Updated:  t.Updated,
		})
	}
	return out, nil
}

// Get devuelve el hilo completo, del mensaje más antiguo al más reciente.
func (uc *UseCase) Get(customerID, ticketID string) (*dto.TicketResponse, error) {
	ticket, err := uc.ownedTicket(customerID, ticketID)
	if err != nil {
		return nil, err
	}
	resp := toTicketResponse(ticket)
	return &resp, nil
}

func (uc *UseCase) ownedTicket(customerID, ticketID string) (*entity.SupportTicket, error) {
	ticket, err := uc.tickets.GetByID(ticketID)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, domain.ErrNotFound
	}
	if ticket.CustomerID != customerID {
		return nil, domain.ErrForbidden
	}
	return ticket, nil
}

// senderName resuelve el nombre visible del cliente; si el perfil no está
// disponible se degrada al remitente genérico.
func (uc *UseCase) senderName(customerID string) string {
	if uc.customers == nil {
		return "Customer"
	}
	c, err := uc.customers.GetByID(customerID)
	if err != nil || c == nil {
		return "Customer"
	}
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

func (uc *UseCase) emit(ev ports.AnalyticsEvent) {
	if uc.analytics != nil {
		uc.analytics.Emit(ev)
	}
}

// truncate corta s en max bytes retrocediendo al inicio de runa más cercano,
// para no partir un carácter UTF-8 a la mitad.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return strings.TrimSpace(s[:max]) + "…"
}

func toTicketResponse(t *entity.SupportTicket) dto.TicketResponse {
	msgs := make([]dto.TicketMessageResponse, 0, len(t.Messages))
	for _, m := range t.Messages {
		msgs = append(msgs, dto.TicketMessageResponse{
			ID:         m.ID,
			Sender:     m.Sender,
			SenderName: m.SenderName,
			Content:    m.Content,
			Timestamp:  m.Timestamp,
		})
	}
	return dto.TicketResponse{
		ID:          t.ID,
		Subject:     t.Subject,
		Description: t.Description,
		Status:      t.Status,
		Priority:    t.Priority,
		Category:    t.Category,
		Created:     t.Created,
		Updated:     t.Updated,
		Messages:    msgs,
	}
}
