package entity

import "time"

// Session representa la sesión persistida de un cliente autenticado.
// Válida solo mientras now < ExpiresAt; una sesión expirada se trata como
// ausente y se purga en la lectura.
type Session struct {
	ID         string
	CustomerID string
	Email      string
	CreatedAt  time.Time
	ExpiresAt  time.Time
}

// Valid indica si la sesión sigue vigente en el instante dado.
func (s *Session) Valid(now time.Time) bool {
	return now.Before(s.ExpiresAt)
}
