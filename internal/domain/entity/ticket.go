package entity

import "time"

// Estados de un ticket de soporte.
const (
	TicketOpen       = "open"
	TicketInProgress = "in-progress"
	TicketResolved   = "resolved"
	TicketClosed     = "closed"
)

// Prioridades de un ticket.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Categorías de un ticket.
const (
	CategoryOrderIssue      = "order-issue"
	CategorySubscription    = "subscription"
	CategoryProductQuestion = "product-question"
	CategoryBilling         = "billing"
	CategoryTechnical       = "technical"
	CategoryOther           = "other"
)

// Remitentes de un mensaje del hilo.
const (
	SenderCustomer = "customer"
	SenderSupport  = "support"
)

// TicketMessage mensaje de un hilo de soporte. El hilo es append-only:
// los mensajes nunca se reordenan, editan ni eliminan.
type TicketMessage struct {
	ID         string
	TicketID   string
	Sender     string // customer | support
	SenderName string
	Content    string
	Timestamp  time.Time
}

// SupportTicket ticket de soporte con hilo de mensajes.
// Invariante: Updated >= Created y se actualiza con cada mensaje añadido.
// Un ticket closed rechaza mensajes nuevos.
type SupportTicket struct {
	ID          string
	CustomerID  string
	Subject     string
	Description string
	Status      string
	Priority    string
	Category    string
	Created     time.Time
	Updated     time.Time
	Messages    []TicketMessage // orden cronológico (más antiguo primero)
}

// AcceptsMessages indica si el ticket admite mensajes nuevos.
func (t *SupportTicket) AcceptsMessages() bool {
	return t.Status != TicketClosed
}

// NormalizePriority valida la prioridad; valores no reconocidos caen a medium.
func NormalizePriority(p string) string {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return p
	default:
		return PriorityMedium
	}
}

// NormalizeCategory valida la categoría; valores no reconocidos caen a other.
func NormalizeCategory(c string) string {
	switch c {
	case CategoryOrderIssue, CategorySubscription, CategoryProductQuestion,
		CategoryBilling, CategoryTechnical, CategoryOther:
		return c
	default:
		return CategoryOther
	}
}
