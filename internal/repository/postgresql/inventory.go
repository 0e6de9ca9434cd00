package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"opsboard/internal/db"
	"opsboard/internal/repository"
)

type InventoryRepo struct {
	db db.DB
}

func NewInventoryRepo(db db.DB) *InventoryRepo {
	return &InventoryRepo{db: db}
}

func (r *InventoryRepo) Create(ctx context.Context, item *repository.InventoryItem) error {
	err := r.db.Get(ctx, &item.ID, `
        INSERT INTO inventory (
            name, barcode, category, quantity, min_quantity, price, description, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id
    `, item.Name, item.Barcode, item.Category, item.Quantity, item.MinQuantity,
		item.Price, item.Description, item.CreatedAt)
	return repository.TranslateError(err)
}

func (r *InventoryRepo) GetByID(ctx context.Context, id int64) (*repository.InventoryItem, error) {
	var item repository.InventoryItem
	err := r.db.Get(ctx, &item, "SELECT * FROM inventory WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, repository.TranslateError(err)
	}
	return &item, nil
}

func (r *InventoryRepo) GetByBarcode(ctx context.Context, barcode string) (*repository.InventoryItem, error) {
	var item repository.InventoryItem
	err := r.db.Get(ctx, &item, "SELECT * FROM inventory WHERE barcode = $1", barcode)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, repository.TranslateError(err)
	}
	return &item, nil
}

func (r *InventoryRepo) Update(ctx context.Context, item *repository.InventoryItem) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE inventory
        SET name = $1, barcode = $2, category = $3, quantity = $4,
            min_quantity = $5, price = $6, description = $7
        WHERE id = $8
    `, item.Name, item.Barcode, item.Category, item.Quantity,
		item.MinQuantity, item.Price, item.Description, item.ID)
	if err != nil {
		return repository.TranslateError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *InventoryRepo) UpdateQuantity(ctx context.Context, id int64, quantity int) error {
	tag, err := r.db.Exec(ctx, "UPDATE inventory SET quantity = $1 WHERE id = $2", quantity, id)
	if err != nil {
		return repository.TranslateError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *InventoryRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM inventory WHERE id = $1", id)
	if err != nil {
		return repository.TranslateError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *InventoryRepo) List(ctx context.Context) ([]repository.InventoryItem, error) {
	var items []repository.InventoryItem
	err := r.db.Select(ctx, &items, "SELECT * FROM inventory ORDER BY name ASC")
	if err != nil {
		return nil, repository.TranslateError(err)
	}
	return items, nil
}
