package storage

import (
	"context"
	"fmt"
	"time"

	"opsboard/internal/repository"
)

func (s *PostgresStorage) CreateCustomer(ctx context.Context, c *repository.Customer) error {
	if c.ContactName == "" {
		return fmt.Errorf("contact name is required: %w", ErrInvalidInput)
	}
	if c.Email == "" {
		return fmt.Errorf("email is required: %w", ErrInvalidInput)
	}
	if c.CurrencyCode == "" {
		c.CurrencyCode = "INR"
	}
	if c.PreferredLanguage == "" {
		c.PreferredLanguage = "en"
	}
	c.CreatedAt = time.Now().UTC()
	return s.customers.Create(ctx, c)
}

func (s *PostgresStorage) GetCustomer(ctx context.Context, id int64) (*repository.Customer, error) {
	return s.customers.GetByID(ctx, id)
}

func (s *PostgresStorage) UpdateCustomer(ctx context.Context, c *repository.Customer) error {
	return s.customers.Update(ctx, c)
}

func (s *PostgresStorage) DeleteCustomer(ctx context.Context, id int64) error {
	return s.customers.Delete(ctx, id)
}

func (s *PostgresStorage) ListCustomers(ctx context.Context, search string) ([]repository.Customer, error) {
	return s.customers.List(ctx, search)
}

func (s *PostgresStorage) CreateSupplier(ctx context.Context, sup *repository.Supplier) error {
	if sup.Name == "" {
		return fmt.Errorf("supplier name is required: %w", ErrInvalidInput)
	}
	if sup.Rating != nil && (*sup.Rating < 1 || *sup.Rating > 5) {
		return fmt.Errorf("rating must be between 1 and 5: %w", ErrInvalidInput)
	}
	if sup.Status == "" {
		sup.Status = "active"
	}
	sup.CreatedAt = time.Now().UTC()
	return s.suppliers.Create(ctx, sup)
}

func (s *PostgresStorage) GetSupplier(ctx context.Context, id int64) (*repository.Supplier, error) {
	return s.suppliers.GetByID(ctx, id)
}

func (s *PostgresStorage) UpdateSupplier(ctx context.Context, sup *repository.Supplier) error {
	if sup.Rating != nil && (*sup.Rating < 1 || *sup.Rating > 5) {
		return fmt.Errorf("rating must be between 1 and 5: %w", ErrInvalidInput)
	}
	return s.suppliers.Update(ctx, sup)
}

func (s *PostgresStorage) DeleteSupplier(ctx context.Context, id int64) error {
	return s.suppliers.Delete(ctx, id)
}

func (s *PostgresStorage) ListSuppliers(ctx context.Context, search string) ([]repository.Supplier, error) {
	return s.suppliers.List(ctx, search)
}
