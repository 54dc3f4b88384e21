package repository

import "github.com/tu-usuario/customer-portal/internal/domain/entity"

// SessionRepository define el puerto de persistencia para sesiones.
// Envuelve el único slot compartido de sesión detrás de get/set/clear tipados,
// de modo que el almacenamiento sea sustituible (in-memory en tests).
type SessionRepository interface {
	Create(session *entity.Session) error
	GetByID(id string) (*entity.Session, error)
	Delete(id string) error
	// DeleteExpired purga sesiones vencidas; retorna cuántas eliminó.
	DeleteExpired() (int, error)
}
