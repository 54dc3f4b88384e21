package memory

import (
	"sync"
	"time"

	"github.com/tu-usuario/customer-portal/internal/domain/entity"
	"github.com/tu-usuario/customer-portal/internal/domain/repository"
)

var _ repository.SessionRepository = (*SessionStore)(nil)

// SessionStore implementación en memoria de SessionRepository. Pensada para
// tests y entornos sin Postgres; el comportamiento observable es el mismo
// que el del adaptador SQL (nil cuando la sesión no existe).
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]entity.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]entity.Session)}
}

// Create guarda la sesión (copia por valor para aislar al llamador).
func (s *SessionStore) Create(session *entity.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = *session
	return nil
}

// GetByID devuelve la sesión o nil si no existe.
func (s *SessionStore) GetByID(id string) (*entity.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, nil
	}
	return &sess, nil
}

// Delete elimina la sesión; es idempotente.
func (s *SessionStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// DeleteExpired purga las sesiones vencidas y retorna cuántas eliminó.
func (s *SessionStore) DeleteExpired() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	removed := 0
	for id, sess := range s.sessions {
		if !sess.Valid(now) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed, nil
}
