package repository

import "github.com/tu-usuario/customer-portal/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	GetByEmail(email string) (*entity.Customer, error)
	// UpdateProfile persiste nombre, apellido, email y teléfono (todo o nada).
	UpdateProfile(customer *entity.Customer) error
	// UpdateAddress persiste la dirección completa (todo o nada).
	UpdateAddress(customer *entity.Customer) error
	// UpdatePassword persiste únicamente el hash de contraseña.
	UpdatePassword(id, passwordHash string) error
}

// PreferencesRepository puerto de persistencia para toggles de notificación.
type PreferencesRepository interface {
	Get(customerID string) (*entity.NotificationPreferences, error)
	// Upsert crea o actualiza la fila completa de preferencias del cliente.
	Upsert(prefs *entity.NotificationPreferences) error
}
