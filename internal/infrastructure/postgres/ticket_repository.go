package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/customer-portal/internal/domain/entity"
	"github.com/tu-usuario/customer-portal/internal/domain/repository"
)

var _ repository.TicketRepository = (*TicketRepo)(nil)

// TicketRepo implementación de TicketRepository. Los mensajes viven en
// ticket_messages y solo se insertan, nunca se editan ni borran.
type TicketRepo struct {
	q Querier
}

func NewTicketRepository(q Querier) *TicketRepo {
	return &TicketRepo{q: q}
}

const ticketColumns = `
	id, customer_id, subject, description, status, priority, category, created, updated`

// Create persiste el ticket y su mensaje inicial.
func (r *TicketRepo) Create(ticket *entity.SupportTicket) error {
	query := `
		INSERT INTO support_tickets (` + ticketColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		ticket.ID, ticket.CustomerID, ticket.Subject, ticket.Description,
		ticket.Status, ticket.Priority, ticket.Category, ticket.Created, ticket.Updated,
	)
	if err != nil {
		return fmt.Errorf("insert ticket: %w", err)
	}
	for i := range ticket.Messages {
		if err := r.insertMessage(&ticket.Messages[i]); err != nil {
			return err
		}
	}
	return nil
}

// GetByID devuelve el ticket con su hilo completo (más antiguo primero).
func (r *TicketRepo) GetByID(id string) (*entity.SupportTicket, error) {
	query := `SELECT ` + ticketColumns + ` FROM support_tickets WHERE id = $1`
	var t entity.SupportTicket
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.CustomerID, &t.Subject, &t.Description,
		&t.Status, &t.Priority, &t.Category, &t.Created, &t.Updated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ticket: %w", err)
	}
	msgs, err := r.messagesFor([]string{t.ID})
	if err != nil {
		return nil, err
	}
	t.Messages = msgs[t.ID]
	return &t, nil
}

// ListByCustomer devuelve los tickets del cliente con su hilo, del más
// recientemente actualizado al más antiguo.
func (r *TicketRepo) ListByCustomer(customerID string) ([]*entity.SupportTicket, error) {
	query := `
		SELECT ` + ticketColumns + `
		FROM support_tickets
		WHERE customer_id = $1
		ORDER BY updated DESC`
	rows, err := r.q.Query(context.Background(), query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	defer rows.Close()

	var tickets []*entity.SupportTicket
	var ids []string
	for rows.Next() {
		var t entity.SupportTicket
		if err := rows.Scan(
			&t.ID, &t.CustomerID, &t.Subject, &t.Description,
			&t.Status, &t.Priority, &t.Category, &t.Created, &t.Updated,
		); err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		tickets = append(tickets, &t)
		ids = append(ids, t.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	if len(tickets) == 0 {
		return tickets, nil
	}

	msgs, err := r.messagesFor(ids)
	if err != nil {
		return nil, err
	}
	for _, t := range tickets {
		t.Messages = msgs[t.ID]
	}
	return tickets, nil
}

// AppendMessage inserta el mensaje y actualiza updated del ticket.
func (r *TicketRepo) AppendMessage(ticketID string, msg *entity.TicketMessage) error {
	if err := r.insertMessage(msg); err != nil {
		return err
	}
	_, err := r.q.Exec(context.Background(),
		`UPDATE support_tickets SET updated = $2 WHERE id = $1`,
		ticketID, msg.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("bump ticket updated: %w", err)
	}
	return nil
}

func (r *TicketRepo) insertMessage(msg *entity.TicketMessage) error {
	query := `
		INSERT INTO ticket_messages (id, ticket_id, sender, sender_name, content, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		msg.ID, msg.TicketID, msg.Sender, msg.SenderName, msg.Content, msg.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert ticket message: %w", err)
	}
	return nil
}

// messagesFor carga en una sola consulta los hilos de los tickets indicados.
func (r *TicketRepo) messagesFor(ticketIDs []string) (map[string][]entity.TicketMessage, error) {
	query := `
		SELECT id, ticket_id, sender, sender_name, content, timestamp
		FROM ticket_messages
		WHERE ticket_id = ANY($1)
		ORDER BY timestamp ASC, id ASC`
	rows, err := r.q.Query(context.Background(), query, ticketIDs)
	if err != nil {
		return nil, fmt.Errorf("list ticket messages: %w", err)
	}
	defer rows.Close()

	msgs := make(map[string][]entity.TicketMessage)
	for rows.Next() {
		var m entity.TicketMessage
		if err := rows.Scan(&m.ID, &m.TicketID, &m.Sender, &m.SenderName, &m.Content, &m.Timestamp); err != nil {
			return nil, fmt.Errorf("scan ticket message: %w", err)
		}
		msgs[m.TicketID] = append(msgs[m.TicketID], m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list ticket messages: %w", err)
	}
	return msgs, nil
}
