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

type OrderRepo struct {
	db db.DB
}

func NewOrderRepo(db db.DB) *OrderRepo {
	return &OrderRepo{db: db}
}

// orderStampColumns names the timestamp column stamped by each advance
// target. Column names are fixed identifiers, never caller input.
var orderStampColumns = map[repository.OrderStatus]string{
	repository.OrderStatusConfirmed: "confirmed_at",
	repository.OrderStatusPicked:    "picked_at",
	repository.OrderStatusPacked:    "packed_at",
	repository.OrderStatusShipped:   "shipped_at",
	repository.OrderStatusDelivered: "delivered_at",
}

func (r *OrderRepo) CreateTx(ctx context.Context, tx db.Tx, order *repository.Order) error {
	err := tx.Get(ctx, &order.ID, `
        INSERT INTO orders (
            order_number, customer_name, customer_email, customer_phone,
            status, payment_status, total_amount, currency_code,
            shipping_address, shipping_city, shipping_state,
            tracking_number, carrier, channel_id, order_date, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
        RETURNING id
    `, order.OrderNumber, order.CustomerName, order.CustomerEmail, order.CustomerPhone,
		order.Status, order.PaymentStatus, order.TotalAmount, order.CurrencyCode,
		order.ShippingAddress, order.ShippingCity, order.ShippingState,
		order.TrackingNumber, order.Carrier, order.ChannelID, order.OrderDate, order.CreatedAt)
	return repository.TranslateError(err)
}

func (r *OrderRepo) GetByID(ctx context.Context, id int64) (*repository.Order, error) {
	var order repository.Order
	err := r.db.Get(ctx, &order, "SELECT * FROM orders WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, repository.TranslateError(err)
	}
	return &order, nil
}

// GetByIDTx locks the row for the duration of the transaction so an
// in-flight advance cannot race another writer.
func (r *OrderRepo) GetByIDTx(ctx context.Context, tx db.Tx, id int64) (*repository.Order, error) {
	var order repository.Order
	err := tx.Get(ctx, &order, "SELECT * FROM orders WHERE id = $1 FOR UPDATE", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, repository.TranslateError(err)
	}
	return &order, nil
}

// AdvanceTx performs the one-step stage move as a single conditional
// UPDATE: the status write and the timestamp stamp land together, and only
// if the row still sits at the expected source status with that stamp
// unset. Zero rows affected means somebody advanced the order first.
func (r *OrderRepo) AdvanceTx(ctx context.Context, tx db.Tx, id int64, from, to repository.OrderStatus, now time.Time) error {
	col, ok := orderStampColumns[to]
	if !ok {
		return fmt.Errorf("no stamp column for order status %q", to)
	}

	query := fmt.Sprintf(`
        UPDATE orders
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

// List returns orders newest-first, optionally narrowed to one status and
// a case-insensitive match on order number or customer name.
func (r *OrderRepo) List(ctx context.Context, status repository.OrderStatus, search string) ([]*repository.Order, error) {
	query := "SELECT * FROM orders"
	var conds []string
	var args []interface{}

	if status != "" {
		args = append(args, status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if search != "" {
		args = append(args, "%"+search+"%")
		conds = append(conds, fmt.Sprintf("(order_number ILIKE $%d OR customer_name ILIKE $%d)", len(args), len(args)))
	}
	for i, cond := range conds {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY order_date DESC"

	var orders []*repository.Order
	err := r.db.Select(ctx, &orders, query, args...)
	if err != nil {
		return nil, repository.TranslateError(err)
	}
	return orders, nil
}

func (r *OrderRepo) CountByStatus(ctx context.Context) (map[repository.OrderStatus]int, error) {
	var rows []struct {
		Status repository.OrderStatus `db:"status"`
		Count  int                    `db:"count"`
	}
	err := r.db.Select(ctx, &rows, "SELECT status, COUNT(*) AS count FROM orders GROUP BY status")
	if err != nil {
		return nil, repository.TranslateError(err)
	}
	counts := make(map[repository.OrderStatus]int, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
