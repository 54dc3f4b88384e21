package profile

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/customer-portal/internal/application/dto"
	"github.com/tu-usuario/customer-portal/internal/application/ports"
	"github.com/tu-usuario/customer-portal/internal/domain"
	"github.com/tu-usuario/customer-portal/internal/domain/entity"
	"github.com/tu-usuario/customer-portal/internal/domain/repository"
)

// UseCase perfil y seguridad: commits atómicos por área (datos personales,
// dirección, contraseña) y toggles de preferencias de confirmación
// inmediata e independiente. El borrador y su cancelación son estado del
// cliente; aquí vive el contrato del commit: todo o nada por formulario.
type UseCase struct {
	customers   repository.CustomerRepository
	preferences repository.PreferencesRepository
	analytics   ports.AnalyticsSink
}

// NewUseCase construye el caso de uso. analytics puede ser nil.
func NewUseCase(customers repository.CustomerRepository, preferences repository.PreferencesRepository, analytics ports.AnalyticsSink) *UseCase {
	return &UseCase{customers: customers, preferences: preferences, analytics: analytics}
}

// Get devuelve el perfil completo del cliente.
func (uc *UseCase) Get(customerID string) (*dto.CustomerResponse, error) {
	customer, err := uc.ownedCustomer(customerID)
	if err != nil {
		return nil, err
	}
	resp := toCustomerResponse(customer)
	return &resp, nil
}

// UpdateProfile aplica el commit de los cuatro campos personales. El email
// debe seguir siendo único; ningún campo se persiste si la validación falla.
func (uc *UseCase) UpdateProfile(customerID string, in dto.UpdateProfileRequest) (*dto.CustomerResponse, error) {
	firstName := strings.TrimSpace(in.FirstName)
	lastName := strings.TrimSpace(in.LastName)
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if firstName == "" || lastName == "" || email == "" {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.ownedCustomer(customerID)
	if err != nil {
		return nil, err
	}
	if email != customer.Email {
		existing, err := uc.customers.GetByEmail(email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrEmailAlreadyExists
		}
	}
	customer.FirstName = firstName
	customer.LastName = lastName
	customer.Email = email
	customer.Phone = strings.TrimSpace(in.Phone)
	customer.UpdatedAt = time.Now()
	if err := uc.customers.UpdateProfile(customer); err != nil {
		return nil, err
	}
	uc.emit(ports.AnalyticsEvent{Name: "profile_updated", Category: "account", Label: "profile_information"})
	resp := toCustomerResponse(customer)
	return &resp, nil
}

// UpdateAddress aplica el commit de la dirección completa (todo o nada).
func (uc *UseCase) UpdateAddress(customerID string, in dto.UpdateAddressRequest) (*dto.CustomerResponse, error) {
	if strings.TrimSpace(in.Street) == "" || strings.TrimSpace(in.City) == "" ||
		strings.TrimSpace(in.Province) == "" || strings.TrimSpace(in.PostalCode) == "" ||
		strings.TrimSpace(in.Country) == "" {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.ownedCustomer(customerID)
	if err != nil {
		return nil, err
	}
	customer.Address = entity.Address{
		Street:     strings.TrimSpace(in.Street),
		City:       strings.TrimSpace(in.City),
		Province:   strings.TrimSpace(in.Province),
		PostalCode: strings.TrimSpace(in.PostalCode),
		Country:    strings.TrimSpace(in.Country),
	}
	customer.UpdatedAt = time.Now()
	if err := uc.customers.UpdateAddress(customer); err != nil {
		return nil, err
	}
	uc.emit(ports.AnalyticsEvent{Name: "profile_updated", Category: "account", Label: "shipping_address"})
	resp := toCustomerResponse(customer)
	return &resp, nil
}

// ChangePassword valida que new y confirm coincidan antes de tocar nada: un
// mismatch bloquea el envío sin invocar el commit ni borrar campos. La
// contraseña actual se verifica con bcrypt; el éxito re-hashea y persiste.
func (uc *UseCase) ChangePassword(customerID string, in dto.ChangePasswordRequest) error {
	if in.NewPassword != in.ConfirmPassword {
		return domain.ErrPasswordMismatch
	}
	if len(in.NewPassword) < 6 {
		return domain.ErrInvalidInput
	}
	customer, err := uc.ownedCustomer(customerID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(in.CurrentPassword)); err != nil {
		return domain.ErrUnauthorized
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := uc.customers.UpdatePassword(customerID, string(hash)); err != nil {
		return err
	}
	uc.emit(ports.AnalyticsEvent{Name: "password_changed", Category: "account", Label: customerID})
	return nil
}

// GetPreferences devuelve los toggles; si el cliente aún no tiene fila se
// responden los valores por defecto sin crearla.
func (uc *UseCase) GetPreferences(customerID string) (*dto.PreferencesResponse, error) {
	prefs, err := uc.preferences.Get(customerID)
	if err != nil {
		return nil, err
	}
	if prefs == nil {
		prefs = entity.DefaultPreferences(customerID)
	}
	return toPreferencesResponse(prefs), nil
}

// UpdatePreference conmuta un toggle individual: cada uno se confirma de
// inmediato en su propio round trip, sin borrador ni commit agrupado.
// Claves no reconocidas son entrada inválida.
func (uc *UseCase) UpdatePreference(customerID, key string, enabled bool) (*dto.PreferencesResponse, error) {
	prefs, err := uc.preferences.Get(customerID)
	if err != nil {
		return nil, err
	}
	if prefs == nil {
		prefs = entity.DefaultPreferences(customerID)
	}
	switch key {
	case entity.PrefEmailNotifications:
		prefs.EmailNotifications = enabled
	case entity.PrefSMSNotifications:
		prefs.SMSNotifications = enabled
	case entity.PrefMarketingEmails:
		prefs.MarketingEmails = enabled
	case entity.PrefOrderUpdates:
		prefs.OrderUpdates = enabled
	default:
		return nil, domain.ErrInvalidInput
	}
	prefs.UpdatedAt = time.Now()
	if err := uc.preferences.Upsert(prefs); err != nil {
		return nil, err
	}
	return toPreferencesResponse(prefs), nil
}

func (uc *UseCase) ownedCustomer(customerID string) (*entity.Customer, error) {
	customer, err := uc.customers.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return customer, nil
}

func (uc *UseCase) emit(ev ports.AnalyticsEvent) {
	if uc.analytics != nil {
		uc.analytics.Emit(ev)
	}
}

func toPreferencesResponse(p *entity.NotificationPreferences) *dto.PreferencesResponse {
	return &dto.PreferencesResponse{
		EmailNotifications: p.EmailNotifications,
		SMSNotifications:   p.SMSNotifications,
		MarketingEmails:    p.MarketingEmails,
		OrderUpdates:       p.OrderUpdates,
	}
}

func toCustomerResponse(c *entity.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:        c.ID,
		Email:     c.Email,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Phone:     c.Phone,
		Address: dto.AddressRequest{
			Street:     c.Address.Street,
			City:       c.Address.City,
			Province:   c.Address.Province,
			PostalCode: c.Address.PostalCode,
			Country:    c.Address.Country,
		},
		TotalOrders: c.TotalOrders,
		TotalSpent:  c.TotalSpent,
		MemberSince: c.MemberSince,
	}
}
