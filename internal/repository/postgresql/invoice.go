package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v4"
	"github.com/shopspring/decimal"

	"opsboard/internal/db"
	"opsboard/internal/repository"
)

type InvoiceRepo struct {
	db db.DB
}

func NewInvoiceRepo(db db.DB) *InvoiceRepo {
	return &InvoiceRepo{db: db}
}

func (r *InvoiceRepo) Create(ctx context.Context, inv *repository.Invoice) error {
	err := r.db.Get(ctx, &inv.ID, `
        INSERT INTO invoices (
            invoice_number, customer_id, invoice_type, status, issue_date, due_date,
            currency_code, exchange_rate, subtotal, tax_amount, discount_amount,
            shipping_amount, total_amount, paid_amount, balance_due,
            notes, terms_and_conditions, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
        RETURNING id
    `, inv.InvoiceNumber, inv.CustomerID, inv.InvoiceType, inv.Status, inv.IssueDate, inv.DueDate,
		inv.CurrencyCode, inv.ExchangeRate, inv.Subtotal, inv.TaxAmount, inv.DiscountAmount,
		inv.ShippingAmount, inv.TotalAmount, inv.PaidAmount, inv.BalanceDue,
		inv.Notes, inv.TermsAndConditions, inv.CreatedAt)
	return repository.TranslateError(err)
}

func (r *InvoiceRepo) GetByID(ctx context.Context, id int64) (*repository.Invoice, error) {
	var inv repository.Invoice
	err := r.db.Get(ctx, &inv, "SELECT * FROM invoices WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, repository.TranslateError(err)
	}
	return &inv, nil
}

func (r *InvoiceRepo) GetByIDTx(ctx context.Context, tx db.Tx, id int64) (*repository.Invoice, error) {
	var inv repository.Invoice
	err := tx.Get(ctx, &inv, "SELECT * FROM invoices WHERE id = $1 FOR UPDATE", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, repository.TranslateError(err)
	}
	return &inv, nil
}

// RecordPaymentTx adds to paid_amount, recomputes balance_due and flips status
// to paid when the balance reaches zero.
func (r *InvoiceRepo) RecordPaymentTx(ctx context.Context, tx db.Tx, id int64, amount decimal.Decimal, status string, paidAt *time.Time) error {
	tag, err := tx.Exec(ctx, `
        UPDATE invoices
        SET paid_amount = paid_amount + $1,
            balance_due = total_amount - (paid_amount + $1),
            status = $2,
            payment_date = $3
        WHERE id = $4
    `, amount, status, paidAt, id)
	if err != nil {
		return repository.TranslateError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *InvoiceRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	tag, err := r.db.Exec(ctx, "UPDATE invoices SET status = $1 WHERE id = $2", status, id)
	if err != nil {
		return repository.TranslateError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *InvoiceRepo) List(ctx context.Context, status string, customerID int64) ([]repository.Invoice, error) {
	query := "SELECT * FROM invoices"
	var args []interface{}
	var conds []string
	if status != "" {
		args = append(args, status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if customerID != 0 {
		args = append(args, customerID)
		conds = append(conds, fmt.Sprintf("customer_id = $%d", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY issue_date DESC"

	var invoices []repository.Invoice
	err := r.db.Select(ctx, &invoices, query, args...)
	if err != nil {
		return nil, repository.TranslateError(err)
	}
	return invoices, nil
}

func (r *InvoiceRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	var n int64
	err := r.db.Get(ctx, &n, "SELECT COUNT(*) FROM invoices WHERE status = $1", status)
	if err != nil {
		return 0, repository.TranslateError(err)
	}
	return n, nil
}
