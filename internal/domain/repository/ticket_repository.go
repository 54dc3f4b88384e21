package repository

import "github.com/tu-usuario/customer-portal/internal/domain/entity"

// TicketRepository define el puerto de persistencia para tickets de soporte.
// El hilo de mensajes es append-only: el puerto no expone borrado ni edición
// de mensajes.
type TicketRepository interface {
	Create(ticket *entity.SupportTicket) error
	// GetByID devuelve el ticket con su hilo completo, del más antiguo al
	// más reciente.
	GetByID(id string) (*entity.SupportTicket, error)
	// ListByCustomer devuelve los tickets (con hilo) del más recientemente
	// actualizado al más antiguo.
	ListByCustomer(customerID string) ([]*entity.SupportTicket, error)
	// AppendMessage añade un mensaje al hilo y actualiza updated del ticket.
	AppendMessage(ticketID string, msg *entity.TicketMessage) error
}
