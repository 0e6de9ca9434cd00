package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"opsboard/internal/db"
	"opsboard/internal/repository"
)

type ReversePickupRepo struct {
	db db.DB
}

func NewReversePickupRepo(db db.DB) *ReversePickupRepo {
	return &ReversePickupRepo{db: db}
}

// CreateTx inserts the pickup inside the same transaction that moves the
// return to picked_up. The unique index on return_id makes the one-pickup-
// per-return rule a database constraint, not just application discipline.
func (r *ReversePickupRepo) CreateTx(ctx context.Context, tx db.Tx, pickup *repository.ReversePickup) error {
	err := tx.Get(ctx, &pickup.ID, `
        INSERT INTO reverse_pickups (
            return_id, carrier, pickup_date, pickup_time_slot,
            pickup_address, contact_name, contact_phone, instructions, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id
    `, pickup.ReturnID, pickup.Carrier, pickup.PickupDate, pickup.PickupTimeSlot,
		pickup.PickupAddress, pickup.ContactName, pickup.ContactPhone, pickup.Instructions, pickup.CreatedAt)
	return repository.TranslateError(err)
}

func (r *ReversePickupRepo) GetByReturnID(ctx context.Context, returnID int64) (*repository.ReversePickup, error) {
	var pickup repository.ReversePickup
	err := r.db.Get(ctx, &pickup, "SELECT * FROM reverse_pickups WHERE return_id = $1", returnID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, repository.TranslateError(err)
	}
	return &pickup, nil
}
