package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/customer-portal/internal/domain/entity"
	"github.com/tu-usuario/customer-portal/internal/domain/repository"
)

var _ repository.PreferencesRepository = (*PreferencesRepo)(nil)

// PreferencesRepo implementación de PreferencesRepository.
type PreferencesRepo struct {
	q Querier
}

func NewPreferencesRepository(q Querier) *PreferencesRepo {
	return &PreferencesRepo{q: q}
}

// Get obtiene las preferencias del cliente. Devuelve nil si no hay fila;
// el caso de uso responde con los valores por defecto sin crearla.
func (r *PreferencesRepo) Get(customerID string) (*entity.NotificationPreferences, error) {
	query := `
		SELECT customer_id, email_notifications, sms_notifications,
		       marketing_emails, order_updates, updated_at
		FROM notification_preferences
		WHERE customer_id = $1`
	var p entity.NotificationPreferences
	err := r.q.QueryRow(context.Background(), query, customerID).Scan(
		&p.CustomerID, &p.EmailNotifications, &p.SMSNotifications,
		&p.MarketingEmails, &p.OrderUpdates, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get preferences: %w", err)
	}
	return &p, nil
}

// Upsert crea o reemplaza la fila completa de preferencias.
func (r *PreferencesRepo) Upsert(prefs *entity.NotificationPreferences) error {
	query := `
		INSERT INTO notification_preferences
			(customer_id, email_notifications, sms_notifications, marketing_emails, order_updates, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (customer_id) DO UPDATE
		SET email_notifications = EXCLUDED.email_notifications,
		    sms_notifications   = EXCLUDED.sms_notifications,
		    marketing_emails    = EXCLUDED.marketing_emails,
		    order_updates       = EXCLUDED.order_updates,
		    updated_at          = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		prefs.CustomerID, prefs.EmailNotifications, prefs.SMSNotifications,
		prefs.MarketingEmails, prefs.OrderUpdates, prefs.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert preferences: %w", err)
	}
	return nil
}
