package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4"

	"opsboard/internal/db"
	"opsboard/internal/repository"
)

type ReturnRepo struct {
	db db.DB
}

func NewReturnRepo(db db.DB) *ReturnRepo {
	return &ReturnRepo{db: db}
}

var returnStampColumns = map[repository.ReturnStatus]string{
	repository.ReturnStatusPickedUp:  "picked_up_at",
	repository.ReturnStatusReceived:  "received_at",
	repository.ReturnStatusInspected: "inspected_at",
	repository.ReturnStatusRefunded:  "refunded_at",
	repository.ReturnStatusCompleted: "completed_at",
}

func (r *ReturnRepo) CreateTx(ctx context.Context, tx db.Tx, ret *repository.Return) error {
	err := tx.Get(ctx, &ret.ID, `
        INSERT INTO returns (
            return_number, order_id, customer_id, return_type, status,
            reason, refund_amount, pickup_address, tracking_number, carrier, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING id
    `, ret.ReturnNumber, ret.OrderID, ret.CustomerID, ret.ReturnType, ret.Status,
		ret.Reason, ret.RefundAmount, ret.PickupAddress, ret.TrackingNumber, ret.Carrier, ret.CreatedAt)
	return repository.TranslateError(err)
}

func (r *ReturnRepo) GetByID(ctx context.Context, id int64) (*repository.Return, error) {
	var ret repository.Return
	err := r.db.Get(ctx, &ret, "SELECT * FROM returns WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, repository.TranslateError(err)
	}
	return &ret, nil
}

func (r *ReturnRepo) GetByIDTx(ctx context.Context, tx db.Tx, id int64) (*repository.Return, error) {
	var ret repository.Return
	err := tx.Get(ctx, &ret, "SELECT * FROM returns WHERE id = $1 FOR UPDATE", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, repository.TranslateError(err)
	}
	return &ret, nil
}

// SetDecisionTx records the approve/reject outcome, guarded on the return
// still being in "requested". The decision stamps no timestamp.
func (r *ReturnRepo) SetDecisionTx(ctx context.Context, tx db.Tx, id int64, decision repository.ReturnStatus) error {
	tag, err := tx.Exec(ctx, `
        UPDATE returns
        SET status = $1
        WHERE id = $2 AND status = $3
    `, decision, id, repository.ReturnStatusRequested)
	if err != nil {
		return repository.TranslateError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrStatusConflict
	}
	return nil
}

// MarkPickedUpTx moves an approved return to picked_up as part of pickup
// scheduling. pickup_scheduled_at carries the operator-chosen pickup date,
// picked_up_at the time of the status change itself.
func (r *ReturnRepo) MarkPickedUpTx(ctx context.Context, tx db.Tx, id int64, carrier string, scheduledAt, now time.Time) error {
	tag, err := tx.Exec(ctx, `
        UPDATE returns
        SET status = $1, carrier = $2, pickup_scheduled_at = $3, picked_up_at = $4
        WHERE id = $5 AND status = $6 AND pickup_scheduled_at IS NULL
    `, repository.ReturnStatusPickedUp, carrier, scheduledAt.UTC(), now.UTC(), id, repository.ReturnStatusApproved)
	if err != nil {
		return repository.TranslateError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrStatusConflict
	}
	return nil
}

// AdvanceTx mirrors OrderRepo.AdvanceTx for the post-pickup path.
func (r *ReturnRepo) AdvanceTx(ctx context.Context, tx db.Tx, id int64, from, to repository.ReturnStatus, now time.Time) error {
	col, ok := returnStampColumns[to]
	if !ok {
		return fmt.Errorf("no stamp column for return status %q", to)
	}

	query := fmt.Sprintf(`
        UPDATE returns
        SET status = $1, %s = $2
        WHERE id = $3 AND status = $4 AND %s IS NULL
    `, col, col)

	tag, err := tx.Exec(ctx, query, to, now.UTC(), id, from)
	if err != nil {
		return repository.TranslateError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrStatusConflict
	}
	return nil
}

func (r *ReturnRepo) List(ctx context.Context, status repository.ReturnStatus, search string) ([]*repository.Return, error) {
	query := "SELECT * FROM returns"
	var args []interface{}

	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(" WHERE status = $%d", len(args))
	}
	if search != "" {
		args = append(args, "%"+search+"%")
		cond := fmt.Sprintf("return_number ILIKE $%d", len(args))
		if len(args) == 1 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY created_at DESC"

	var returns []*repository.Return
	err := r.db.Select(ctx, &returns, query, args...)
	if err != nil {
		return nil, repository.TranslateError(err)
	}
	return returns, nil
}

func (r *ReturnRepo) CountByStatus(ctx context.Context) (map[repository.ReturnStatus]int, error) {
	var rows []struct {
		Status repository.ReturnStatus `db:"status"`
		Count  int                     `db:"count"`
	}
	err := r.db.Select(ctx, &rows, "SELECT status, COUNT(*) AS count FROM returns GROUP BY status")
	if err != nil {
		return nil, repository.TranslateError(err)
	}
	counts := make(map[repository.ReturnStatus]int, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
