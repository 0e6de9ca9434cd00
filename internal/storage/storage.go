package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"opsboard/internal/db"
	"opsboard/internal/repository"
)

// ChangesTopic receives one message per committed row mutation. Consumers
// key off the table and record id inside the payload.
const ChangesTopic = "opsboard.record-changes"

var (
	// ErrPickupPartialState reports a pickup scheduling commit failure:
	// neither the status move nor the pickup record is guaranteed durable.
	ErrPickupPartialState = errors.New("pickup scheduling did not commit")

	ErrInvalidInput = errors.New("invalid input")
)

type OrderRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, order *repository.Order) error
	GetByID(ctx context.Context, id int64) (*repository.Order, error)
	GetByIDTx(ctx context.Context, tx db.Tx, id int64) (*repository.Order, error)
	AdvanceTx(ctx context.Context, tx db.Tx, id int64, from, to repository.OrderStatus, now time.Time) error
	List(ctx context.Context, status repository.OrderStatus, search string) ([]*repository.Order, error)
	CountByStatus(ctx context.Context) (map[repository.OrderStatus]int, error)
}

type ReturnRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, ret *repository.Return) error
	GetByID(ctx context.Context, id int64) (*repository.Return, error)
	GetByIDTx(ctx context.Context, tx db.Tx, id int64) (*repository.Return, error)
	SetDecisionTx(ctx context.Context, tx db.Tx, id int64, decision repository.ReturnStatus) error
	MarkPickedUpTx(ctx context.Context, tx db.Tx, id int64, carrier string, scheduledAt, now time.Time) error
	AdvanceTx(ctx context.Context, tx db.Tx, id int64, from, to repository.ReturnStatus, now time.Time) error
	List(ctx context.Context, status repository.ReturnStatus, search string) ([]*repository.Return, error)
	CountByStatus(ctx context.Context) (map[repository.ReturnStatus]int, error)
}

type ReversePickupRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, pickup *repository.ReversePickup) error
	GetByReturnID(ctx context.Context, returnID int64) (*repository.ReversePickup, error)
}

type InventoryRepository interface {
	Create(ctx context.Context, item *repository.InventoryItem) error
	GetByID(ctx context.Context, id int64) (*repository.InventoryItem, error)
	GetByBarcode(ctx context.Context, barcode string) (*repository.InventoryItem, error)
	Update(ctx context.Context, item *repository.InventoryItem) error
	UpdateQuantity(ctx context.Context, id int64, quantity int) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]repository.InventoryItem, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, c *repository.Customer) error
	GetByID(ctx context.Context, id int64) (*repository.Customer, error)
	Update(ctx context.Context, c *repository.Customer) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, search string) ([]repository.Customer, error)
}

type SupplierRepository interface {
	Create(ctx context.Context, s *repository.Supplier) error
	GetByID(ctx context.Context, id int64) (*repository.Supplier, error)
	Update(ctx context.Context, s *repository.Supplier) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, search string) ([]repository.Supplier, error)
}

type InvoiceRepository interface {
	Create(ctx context.Context, inv *repository.Invoice) error
	GetByID(ctx context.Context, id int64) (*repository.Invoice, error)
	GetByIDTx(ctx context.Context, tx db.Tx, id int64) (*repository.Invoice, error)
	RecordPaymentTx(ctx context.Context, tx db.Tx, id int64, amount decimal.Decimal, status string, paidAt *time.Time) error
	UpdateStatus(ctx context.Context, id int64, status string) error
	List(ctx context.Context, status string, customerID int64) ([]repository.Invoice, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}

type CreditNoteRepository interface {
	Create(ctx context.Context, cn *repository.CreditNote) error
	CreateTx(ctx context.Context, tx db.Tx, cn *repository.CreditNote) error
	GetByID(ctx context.Context, id int64) (*repository.CreditNote, error)
	GetByIDTx(ctx context.Context, tx db.Tx, id int64) (*repository.CreditNote, error)
	ApplyTx(ctx context.Context, tx db.Tx, id int64, amount decimal.Decimal, status string) error
	List(ctx context.Context, customerID int64) ([]repository.CreditNote, error)
}

type ChannelRepository interface {
	Create(ctx context.Context, ch *repository.Channel) error
	GetByID(ctx context.Context, id int64) (*repository.Channel, error)
	Update(ctx context.Context, ch *repository.Channel) error
	SetSyncEnabled(ctx context.Context, id int64, enabled bool) error
	MarkSynced(ctx context.Context, id int64, at time.Time) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]repository.Channel, error)
	ListSyncDue(ctx context.Context, olderThan time.Time) ([]repository.Channel, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, username, password string) error
	ValidateUser(ctx context.Context, username, password string) (bool, error)
	EnsureUser(ctx context.Context, username, password string) error
}

type OutboxTaskRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, task *repository.OutboxTask) error
	GetProcessableTasks(ctx context.Context, db db.DB, limit int) ([]*repository.OutboxTask, error)
	UpdateTaskStatusTx(ctx context.Context, tx db.Tx, id uuid.UUID, status repository.TaskStatus, attempts int, lastError *string, completedAt *time.Time) error
	UpdateTaskStatus(ctx context.Context, db db.DB, id uuid.UUID, status repository.TaskStatus, attempts int, lastError *string, completedAt *time.Time) error
}

// PostgresStorage is the service layer. Lifecycle mutations run in a single
// transaction together with their outbox task so the change feed never
// observes a state the database did not commit.
type PostgresStorage struct {
	db          db.DB
	orders      OrderRepository
	returns     ReturnRepository
	pickups     ReversePickupRepository
	inventory   InventoryRepository
	customers   CustomerRepository
	suppliers   SupplierRepository
	invoices    InvoiceRepository
	creditNotes CreditNoteRepository
	channels    ChannelRepository
	users       UserRepository
	outbox      OutboxTaskRepository
}

func NewPostgresStorage(
	database db.DB,
	orders OrderRepository,
	returns ReturnRepository,
	pickups ReversePickupRepository,
	inventory InventoryRepository,
	customers CustomerRepository,
	suppliers SupplierRepository,
	invoices InvoiceRepository,
	creditNotes CreditNoteRepository,
	channels ChannelRepository,
	users UserRepository,
	outbox OutboxTaskRepository,
) *PostgresStorage {
	return &PostgresStorage{
		db:          database,
		orders:      orders,
		returns:     returns,
		pickups:     pickups,
		inventory:   inventory,
		customers:   customers,
		suppliers:   suppliers,
		invoices:    invoices,
		creditNotes: creditNotes,
		channels:    channels,
		users:       users,
		outbox:      outbox,
	}
}

// enqueueChange writes a change event into the outbox inside the caller's
// transaction. record may be nil for deletes.
func (s *PostgresStorage) enqueueChange(ctx context.Context, tx db.Tx, table string, recordID int64, action repository.ChangeAction, record interface{}) error {
	event := repository.ChangeEvent{
		Table:     table,
		RecordID:  recordID,
		Action:    action,
		Timestamp: time.Now().UTC(),
	}
	if record != nil {
		raw, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("failed to marshal change record: %w", err)
		}
		event.Record = raw
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal change event: %w", err)
	}

	task := &repository.OutboxTask{
		Payload: payload,
		Topic:   ChangesTopic,
	}
	return s.outbox.CreateTx(ctx, tx, task)
}

func (s *PostgresStorage) EnsureUser(ctx context.Context, username, password string) error {
	return s.users.EnsureUser(ctx, username, password)
}

func (s *PostgresStorage) ValidateUser(ctx context.Context, username, password string) (bool, error) {
	return s.users.ValidateUser(ctx, username, password)
}
