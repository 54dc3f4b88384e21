package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/customer-portal/internal/domain"
	"github.com/tu-usuario/customer-portal/internal/domain/entity"
	"github.com/tu-usuario/customer-portal/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

const customerColumns = `
	id, email, first_name, last_name, phone,
	address_street, address_city, address_province, address_postal_code, address_country,
	password_hash, total_orders, total_spent, member_since, created_at, updated_at`

// Create persiste un cliente nuevo.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (` + customerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.Email, customer.FirstName, customer.LastName, customer.Phone,
		customer.Address.Street, customer.Address.City, customer.Address.Province,
		customer.Address.PostalCode, customer.Address.Country,
		customer.PasswordHash, customer.TotalOrders, customer.TotalSpent,
		customer.MemberSince, customer.CreatedAt, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return r.getOne(`SELECT `+customerColumns+` FROM customers WHERE id = $1`, id)
}

// GetByEmail obtiene un cliente por email (normalizado en minúsculas).
func (r *CustomerRepo) GetByEmail(email string) (*entity.Customer, error) {
	return r.getOne(`SELECT `+customerColumns+` FROM customers WHERE email = $1`, email)
}

func (r *CustomerRepo) getOne(query string, arg any) (*entity.Customer, error) {
	var c entity.Customer
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&c.ID, &c.Email, &c.FirstName, &c.LastName, &c.Phone,
		&c.Address.Street, &c.Address.City, &c.Address.Province,
		&c.Address.PostalCode, &c.Address.Country,
		&c.PasswordHash, &c.TotalOrders, &c.TotalSpent,
		&c.MemberSince, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// UpdateProfile persiste los campos personales en un solo UPDATE (todo o nada).
func (r *CustomerRepo) UpdateProfile(customer *entity.Customer) error {
	query := `
		UPDATE customers
		SET first_name = $2, last_name = $3, email = $4, phone = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.FirstName, customer.LastName, customer.Email, customer.Phone, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update customer profile: %w", err)
	}
	return nil
}

// UpdateAddress persiste la dirección completa en un solo UPDATE.
func (r *CustomerRepo) UpdateAddress(customer *entity.Customer) error {
	query := `
		UPDATE customers
		SET address_street = $2, address_city = $3, address_province = $4,
		    address_postal_code = $5, address_country = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.Address.Street, customer.Address.City, customer.Address.Province,
		customer.Address.PostalCode, customer.Address.Country, customer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update customer address: %w", err)
	}
	return nil
}

// UpdatePassword persiste únicamente el hash nuevo.
func (r *CustomerRepo) UpdatePassword(id, passwordHash string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE customers SET password_hash = $2, updated_at = now() WHERE id = $1`,
		id, passwordHash,
	)
	if err != nil {
		return fmt.Errorf("update customer password: %w", err)
	}
	return nil
}
