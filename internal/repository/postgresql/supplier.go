package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"opsboard/internal/db"
	"opsboard/internal/repository"
)

type SupplierRepo struct {
	db db.DB
}

func NewSupplierRepo(db db.DB) *SupplierRepo {
	return &SupplierRepo{db: db}
}

func (r *SupplierRepo) Create(ctx context.Context, s *repository.Supplier) error {
	err := r.db.Get(ctx, &s.ID, `
        INSERT INTO suppliers (
            name, contact_person, email, phone, address, city, country,
            status, rating, payment_terms, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING id
    `, s.Name, s.ContactPerson, s.Email, s.Phone, s.Address, s.City, s.Country,
		s.Status, s.Rating, s.PaymentTerms, s.CreatedAt)
	return repository.TranslateError(err)
}

func (r *SupplierRepo) GetByID(ctx context.Context, id int64) (*repository.Supplier, error) {
	var s repository.Supplier
	err := r.db.Get(ctx, &s, "SELECT * FROM suppliers WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, repository.TranslateError(err)
	}
	return &s, nil
}

func (r *SupplierRepo) Update(ctx context.Context, s *repository.Supplier) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE suppliers
        SET name = $1, contact_person = $2, email = $3, phone = $4, address = $5,
            city = $6, country = $7, status = $8, rating = $9, payment_terms = $10
        WHERE id = $11
    `, s.Name, s.ContactPerson, s.Email, s.Phone, s.Address,
		s.City, s.Country, s.Status, s.Rating, s.PaymentTerms, s.ID)
	if err != nil {
		return repository.TranslateError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *SupplierRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM suppliers WHERE id = $1", id)
	if err != nil {
		return repository.TranslateError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *SupplierRepo) List(ctx context.Context, search string) ([]repository.Supplier, error) {
	query := "SELECT * FROM suppliers"
	var args []interface{}
	if search != "" {
		args = append(args, "%"+search+"%")
		query += " WHERE name ILIKE $1 OR contact_person ILIKE $1"
	}
	query += " ORDER BY name ASC"

	var suppliers []repository.Supplier
	err := r.db.Select(ctx, &suppliers, query, args...)
	if err != nil {
		return nil, repository.TranslateError(err)
	}
	return suppliers, nil
}
