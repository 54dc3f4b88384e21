package dto

import "time"

// CreateTicketRequest entrada para crear un ticket de soporte.
// Subject y Description son obligatorios después de trim; priority y
// category no reconocidas caen a medium/other.
type CreateTicketRequest struct {
	Subject     string `json:"subject" validate:"required"`
	Description string `json:"description" validate:"required"`
	Category    string `json:"category"`
	Priority    string `json:"priority"`
}

// AddMessageRequest entrada para responder en un hilo.
type AddMessageRequest struct {
	Content string `json:"content" validate:"required"`
}

// TicketMessageResponse mensaje del hilo en respuestas.
type TicketMessageResponse struct {
	ID         string    `json:"id"`
	Sender     string    `json:"sender"`
	SenderName string    `json:"sender_name"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
}

// TicketResponse ticket con hilo completo (vista de detalle).
type TicketResponse struct {
	ID          string                  `json:"id"`
	Subject     string                  `json:"subject"`
	Description string                  `json:"description"`
	Status      string                  `json:"status"`
	Priority    string                  `json:"priority"`
	Category    string                  `json:"category"`
	Created     time.Time               `json:"created"`
	Updated     time.Time               `json:"updated"`
	Messages    []TicketMessageResponse `json:"messages"`
}

// TicketListItem vista de listado: tags + preview truncado, sin hilo.
type TicketListItem struct {
	ID       string    `json:"id"`
	Subject  string    `json:"subject"`
	Preview  string    `json:"preview"`
	Status   string    `json:"status"`
	Priority string    `json:"priority"`
	Category string    `json:"category"`
	Messages int       `json:"messages"`
	Created  time.Time `json:"created"`
	Updated  time.Time `json:"updated"`
}
