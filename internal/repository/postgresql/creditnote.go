package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
	"github.com/shopspring/decimal"

	"opsboard/internal/db"
	"opsboard/internal/repository"
)

type CreditNoteRepo struct {
	db db.DB
}

func NewCreditNoteRepo(db db.DB) *CreditNoteRepo {
	return &CreditNoteRepo{db: db}
}

func (r *CreditNoteRepo) Create(ctx context.Context, cn *repository.CreditNote) error {
	err := r.db.Get(ctx, &cn.ID, `
        INSERT INTO credit_notes (
            credit_note_number, customer_id, invoice_id, issue_date, reason,
            currency_code, amount, applied_amount, balance, status, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING id
    `, cn.CreditNoteNumber, cn.CustomerID, cn.InvoiceID, cn.IssueDate, cn.Reason,
		cn.CurrencyCode, cn.Amount, cn.AppliedAmount, cn.Balance, cn.Status, cn.CreatedAt)
	return repository.TranslateError(err)
}

func (r *CreditNoteRepo) CreateTx(ctx context.Context, tx db.Tx, cn *repository.CreditNote) error {
	err := tx.Get(ctx, &cn.ID, `
        INSERT INTO credit_notes (
            credit_note_number, customer_id, invoice_id, issue_date, reason,
            currency_code, amount, applied_amount, balance, status, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING id
    `, cn.CreditNoteNumber, cn.CustomerID, cn.InvoiceID, cn.IssueDate, cn.Reason,
		cn.CurrencyCode, cn.Amount, cn.AppliedAmount, cn.Balance, cn.Status, cn.CreatedAt)
	return repository.TranslateError(err)
}

func (r *CreditNoteRepo) GetByID(ctx context.Context, id int64) (*repository.CreditNote, error) {
	var cn repository.CreditNote
	err := r.db.Get(ctx, &cn, "SELECT * FROM credit_notes WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, repository.TranslateError(err)
	}
	return &cn, nil
}

func (r *CreditNoteRepo) GetByIDTx(ctx context.Context, tx db.Tx, id int64) (*repository.CreditNote, error) {
	var cn repository.CreditNote
	err := tx.Get(ctx, &cn, "SELECT * FROM credit_notes WHERE id = $1 FOR UPDATE", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, repository.TranslateError(err)
	}
	return &cn, nil
}

// ApplyTx draws down a credit note's balance. The guard on balance keeps a
// concurrent application from pushing it negative.
func (r *CreditNoteRepo) ApplyTx(ctx context.Context, tx db.Tx, id int64, amount decimal.Decimal, status string) error {
	tag, err := tx.Exec(ctx, `
        UPDATE credit_notes
        SET applied_amount = applied_amount + $1,
            balance = balance - $1,
            status = $2
        WHERE id = $3 AND balance >= $1
    `, amount, status, id)
	if err != nil {
		return repository.TranslateError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrStatusConflict
	}
	return nil
}

func (r *CreditNoteRepo) List(ctx context.Context, customerID int64) ([]repository.CreditNote, error) {
	query := "SELECT * FROM credit_notes"
	var args []interface{}
	if customerID != 0 {
		args = append(args, customerID)
		query += " WHERE customer_id = $1"
	}
	query += " ORDER BY issue_date DESC"

	var notes []repository.CreditNote
	err := r.db.Select(ctx, &notes, query, args...)
	if err != nil {
		return nil, repository.TranslateError(err)
	}
	return notes, nil
}
