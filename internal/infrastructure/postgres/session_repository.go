package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/customer-portal/internal/domain/entity"
	"github.com/tu-usuario/customer-portal/internal/domain/repository"
)

var _ repository.SessionRepository = (*SessionRepo)(nil)

// SessionRepo implementación de SessionRepository (usable con pool o tx).
type SessionRepo struct {
	q Querier
}

// NewSessionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSessionRepository(q Querier) *SessionRepo {
	return &SessionRepo{q: q}
}

// Create persiste una sesión nueva.
func (r *SessionRepo) Create(session *entity.Session) error {
	query := `
		INSERT INTO sessions (id, customer_id, email, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		session.ID, session.CustomerID, session.Email, session.CreatedAt, session.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// GetByID obtiene una sesión por ID.
func (r *SessionRepo) GetByID(id string) (*entity.Session, error) {
	query := `
		SELECT id, customer_id, email, created_at, expires_at
		FROM sessions WHERE id = $1`
	var s entity.Session
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.CustomerID, &s.Email, &s.CreatedAt, &s.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return &s, nil
}

// Delete elimina una sesión por ID (logout o purga de expirada).
func (r *SessionRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM sessions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// DeleteExpired purga todas las sesiones vencidas.
func (r *SessionRepo) DeleteExpired() (int, error) {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM sessions WHERE expires_at <= $1`, time.Now())
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	return int(tag.RowsAffected()), nil
}
