package session

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/customer-portal/internal/application/dto"
	"github.com/tu-usuario/customer-portal/internal/application/ports"
	"github.com/tu-usuario/customer-portal/internal/domain"
	"github.com/tu-usuario/customer-portal/internal/domain/entity"
	"github.com/tu-usuario/customer-portal/internal/domain/repository"
	"github.com/tu-usuario/customer-portal/pkg/token"
)

// Config parámetros de la sesión del portal.
type Config struct {
	Secret string
	TTL    time.Duration
	Issuer string
}

// UseCase casos de uso del session store: login, registro, verificación y
// logout. La sesión persistida es la fuente de verdad; el token firmado solo
// la referencia, así un logout la invalida aunque el exp siga vigente.
type UseCase struct {
	sessions  repository.SessionRepository
	customers repository.CustomerRepository
	analytics ports.AnalyticsSink
	cfg       Config
}

// NewUseCase construye el caso de uso. analytics puede ser nil.
func NewUseCase(sessions repository.SessionRepository, customers repository.CustomerRepository, analytics ports.AnalyticsSink, cfg Config) *UseCase {
	if cfg.TTL <= 0 {
		cfg.TTL = 24 * time.Hour
	}
	return &UseCase{sessions: sessions, customers: customers, analytics: analytics, cfg: cfg}
}

// Login verifica email/password, crea la sesión con expiresAt = now + TTL,
// firma el token y emite el evento customer_login.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.SessionResponse, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customers.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return uc.createSession(customer)
}

// Register crea el cliente (email único, password >= 6 y confirmación
// coincidente) y abre sesión de inmediato. La verificación de identidad
// queda fuera de alcance: solo se almacena el hash.
func (uc *UseCase) Register(in dto.RegisterRequest) (*dto.SessionResponse, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" || strings.TrimSpace(in.FirstName) == "" || strings.TrimSpace(in.LastName) == "" {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Password) < 6 {
		return nil, domain.ErrInvalidInput
	}
	if in.Password != in.ConfirmPassword {
		return nil, domain.ErrPasswordMismatch
	}
	existing, err := uc.customers.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		Email:     email,
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Phone:     strings.TrimSpace(in.Phone),
		Address: entity.Address{
			Street:     in.Address.Street,
			City:       in.Address.City,
			Province:   in.Address.Province,
			PostalCode: in.Address.PostalCode,
			Country:    in.Address.Country,
		},
		PasswordHash: string(hash),
		TotalSpent:   decimal.Zero,
		MemberSince:  now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.customers.Create(customer); err != nil {
		return nil, err
	}
	return uc.createSession(customer)
}

// Check valida el token y la sesión persistida. Una sesión expirada se purga
// y se reporta como ausente (ErrSessionExpired); datos malformados o firmas
// inválidas reciben el mismo trato, nunca un error interno.
func (uc *UseCase) Check(tokenString string) (*entity.Session, error) {
	sessionID, _, _, err := token.Parse(uc.cfg.Secret, tokenString)
	if err != nil {
		return nil, domain.ErrSessionExpired
	}
	sess, err := uc.sessions.GetByID(sessionID)
	if err != nil {
		// Fila malformada o ilegible: se trata como ausencia y se purga.
		_ = uc.sessions.Delete(sessionID)
		return nil, domain.ErrSessionExpired
	}
	if sess == nil {
		return nil, domain.ErrSessionExpired
	}
	if !sess.Valid(time.Now()) {
		_ = uc.sessions.Delete(sess.ID)
		return nil, domain.ErrSessionExpired
	}
	return sess, nil
}

// Logout purga la sesión y emite customer_logout. Idempotente: un token ya
// inválido no produce error.
func (uc *UseCase) Logout(tokenString string) error {
	sessionID, customerID, _, err := token.Parse(uc.cfg.Secret, tokenString)
	if err != nil {
		return nil
	}
	if err := uc.sessions.Delete(sessionID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return err
	}
	uc.emit(ports.AnalyticsEvent{Name: "customer_logout", Category: "account", Label: customerID})
	return nil
}

func (uc *UseCase) createSession(customer *entity.Customer) (*dto.SessionResponse, error) {
	now := time.Now()
	sess := &entity.Session{
		ID:         uuid.New().String(),
		CustomerID: customer.ID,
		Email:      customer.Email,
		CreatedAt:  now,
		ExpiresAt:  now.Add(uc.cfg.TTL),
	}
	if err := uc.sessions.Create(sess); err != nil {
		return nil, err
	}
	signed, err := token.Generate(uc.cfg.Secret, sess.ID, customer.ID, customer.Email, uc.cfg.Issuer, sess.ExpiresAt)
	if err != nil {
		return nil, err
	}
	uc.emit(ports.AnalyticsEvent{Name: "customer_login", Category: "account", Label: customer.ID})
	return &dto.SessionResponse{
		Token:     signed,
		ExpiresAt: sess.ExpiresAt,
		Customer:  dto.CustomerRef{ID: customer.ID, Email: customer.Email},
	}, nil
}

func (uc *UseCase) emit(ev ports.AnalyticsEvent) {
	if uc.analytics != nil {
		uc.analytics.Emit(ev)
	}
}
