package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"opsboard/internal/db"
	"opsboard/internal/repository"
)

type CustomerRepo struct {
	db db.DB
}

func NewCustomerRepo(db db.DB) *CustomerRepo {
	return &CustomerRepo{db: db}
}

func (r *CustomerRepo) Create(ctx context.Context, c *repository.Customer) error {
	err := r.db.Get(ctx, &c.ID, `
        INSERT INTO customers (
            company_name, contact_name, email, phone, address, city, country,
            currency_code, payment_terms, preferred_language, portal_access, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        RETURNING id
    `, c.CompanyName, c.ContactName, c.Email, c.Phone, c.Address, c.City, c.Country,
		c.CurrencyCode, c.PaymentTerms, c.PreferredLanguage, c.PortalAccess, c.CreatedAt)
	return repository.TranslateError(err)
}

func (r *CustomerRepo) GetByID(ctx context.Context, id int64) (*repository.Customer, error) {
	var c repository.Customer
	err := r.db.Get(ctx, &c, "SELECT * FROM customers WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, repository.TranslateError(err)
	}
	return &c, nil
}

func (r *CustomerRepo) Update(ctx context.Context, c *repository.Customer) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE customers
        SET company_name = $1, contact_name = $2, email = $3, phone = $4,
            address = $5, city = $6, country = $7, currency_code = $8,
            payment_terms = $9, preferred_language = $10, portal_access = $11
        WHERE id = $12
    `, c.CompanyName, c.ContactName, c.Email, c.Phone,
		c.Address, c.City, c.Country, c.CurrencyCode,
		c.PaymentTerms, c.PreferredLanguage, c.PortalAccess, c.ID)
	if err != nil {
		return repository.TranslateError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *CustomerRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM customers WHERE id = $1", id)
	if err != nil {
		return repository.TranslateError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *CustomerRepo) List(ctx context.Context, search string) ([]repository.Customer, error) {
	query := "SELECT * FROM customers"
	var args []interface{}
	if search != "" {
		args = append(args, "%"+search+"%")
		query += " WHERE contact_name ILIKE $1 OR company_name ILIKE $1 OR email ILIKE $1"
	}
	query += " ORDER BY contact_name ASC"

	var customers []repository.Customer
	err := r.db.Select(ctx, &customers, query, args...)
	if err != nil {
		return nil, repository.TranslateError(err)
	}
	return customers, nil
}
