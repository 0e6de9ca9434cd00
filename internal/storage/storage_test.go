package storage

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/shopspring/decimal"

	"opsboard/internal/db"
	"opsboard/internal/repository"
)

// fakeTx satisfies db.Tx. Commit can be made to fail to exercise
// commit-failure paths.
type fakeTx struct {
	commitErr  error
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Commit(ctx context.Context) error {
	if t.commitErr != nil {
		return t.commitErr
	}
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	if !t.committed {
		t.rolledBack = true
	}
	return nil
}

func (t *fakeTx) Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error) {
	return pgconn.CommandTag("UPDATE 1"), nil
}

func (t *fakeTx) Get(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return nil
}

func (t *fakeTx) Select(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return nil
}

type fakeDB struct {
	tx       *fakeTx
	beginErr error
}

func (d *fakeDB) BeginTx(ctx context.Context) (db.Tx, error) {
	if d.beginErr != nil {
		return nil, d.beginErr
	}
	if d.tx == nil {
		d.tx = &fakeTx{}
	}
	return d.tx, nil
}

func (d *fakeDB) Get(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return pgx.ErrNoRows
}

func (d *fakeDB) Select(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return nil
}

func (d *fakeDB) Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error) {
	return pgconn.CommandTag(""), nil
}

func (d *fakeDB) ExecQueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row {
	return nil
}

// stubOrderRepo keeps one order in memory and records advances.
type stubOrderRepo struct {
	order      *repository.Order
	getErr     error
	advanceErr error
	advances   []repository.OrderStatus
	counts     map[repository.OrderStatus]int
}

func (r *stubOrderRepo) CreateTx(ctx context.Context, tx db.Tx, order *repository.Order) error {
	order.ID = 1
	r.order = order
	return nil
}

func (r *stubOrderRepo) GetByID(ctx context.Context, id int64) (*repository.Order, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	if r.order == nil || r.order.ID != id {
		return nil, repository.ErrObjectNotFound
	}
	cp := *r.order
	return &cp, nil
}

func (r *stubOrderRepo) GetByIDTx(ctx context.Context, tx db.Tx, id int64) (*repository.Order, error) {
	return r.GetByID(ctx, id)
}

func (r *stubOrderRepo) AdvanceTx(ctx context.Context, tx db.Tx, id int64, from, to repository.OrderStatus, now time.Time) error {
	if r.advanceErr != nil {
		return r.advanceErr
	}
	if r.order == nil || r.order.Status != from {
		return repository.ErrStatusConflict
	}
	r.advances = append(r.advances, to)
	return nil
}

func (r *stubOrderRepo) List(ctx context.Context, status repository.OrderStatus, search string) ([]*repository.Order, error) {
	if r.order == nil {
		return nil, nil
	}
	return []*repository.Order{r.order}, nil
}

func (r *stubOrderRepo) CountByStatus(ctx context.Context) (map[repository.OrderStatus]int, error) {
	return r.counts, nil
}

type stubReturnRepo struct {
	ret         *repository.Return
	decisionErr error
	pickupErr   error
	advanceErr  error
	decisions   []repository.ReturnStatus
	advances    []repository.ReturnStatus
	pickedUp    bool
}

func (r *stubReturnRepo) CreateTx(ctx context.Context, tx db.Tx, ret *repository.Return) error {
	ret.ID = 1
	r.ret = ret
	return nil
}

func (r *stubReturnRepo) GetByID(ctx context.Context, id int64) (*repository.Return, error) {
	if r.ret == nil || r.ret.ID != id {
		return nil, repository.ErrObjectNotFound
	}
	cp := *r.ret
	return &cp, nil
}

func (r *stubReturnRepo) GetByIDTx(ctx context.Context, tx db.Tx, id int64) (*repository.Return, error) {
	return r.GetByID(ctx, id)
}

func (r *stubReturnRepo) SetDecisionTx(ctx context.Context, tx db.Tx, id int64, decision repository.ReturnStatus) error {
	if r.decisionErr != nil {
		return r.decisionErr
	}
	if r.ret == nil || r.ret.Status != repository.ReturnStatusRequested {
		return repository.ErrStatusConflict
	}
	r.decisions = append(r.decisions, decision)
	return nil
}

func (r *stubReturnRepo) MarkPickedUpTx(ctx context.Context, tx db.Tx, id int64, carrier string, scheduledAt, now time.Time) error {
	if r.pickupErr != nil {
		return r.pickupErr
	}
	if r.ret == nil || r.ret.Status != repository.ReturnStatusApproved {
		return repository.ErrStatusConflict
	}
	r.pickedUp = true
	return nil
}

func (r *stubReturnRepo) AdvanceTx(ctx context.Context, tx db.Tx, id int64, from, to repository.ReturnStatus, now time.Time) error {
	if r.advanceErr != nil {
		return r.advanceErr
	}
	if r.ret == nil || r.ret.Status != from {
		return repository.ErrStatusConflict
	}
	r.advances = append(r.advances, to)
	return nil
}

func (r *stubReturnRepo) List(ctx context.Context, status repository.ReturnStatus, search string) ([]*repository.Return, error) {
	if r.ret == nil {
		return nil, nil
	}
	return []*repository.Return{r.ret}, nil
}

func (r *stubReturnRepo) CountByStatus(ctx context.Context) (map[repository.ReturnStatus]int, error) {
	return nil, nil
}

type stubPickupRepo struct {
	pickup    *repository.ReversePickup
	createErr error
}

func (r *stubPickupRepo) CreateTx(ctx context.Context, tx db.Tx, pickup *repository.ReversePickup) error {
	if r.createErr != nil {
		return r.createErr
	}
	pickup.ID = 1
	r.pickup = pickup
	return nil
}

func (r *stubPickupRepo) GetByReturnID(ctx context.Context, returnID int64) (*repository.ReversePickup, error) {
	if r.pickup == nil || r.pickup.ReturnID != returnID {
		return nil, repository.ErrObjectNotFound
	}
	return r.pickup, nil
}

// stubCustomerRepo knows a single customer.
type stubCustomerRepo struct {
	customer *repository.Customer
}

func (r *stubCustomerRepo) Create(ctx context.Context, c *repository.Customer) error {
	r.customer = c
	return nil
}

func (r *stubCustomerRepo) GetByID(ctx context.Context, id int64) (*repository.Customer, error) {
	if r.customer == nil || r.customer.ID != id {
		return nil, repository.ErrObjectNotFound
	}
	return r.customer, nil
}

func (r *stubCustomerRepo) Update(ctx context.Context, c *repository.Customer) error {
	return nil
}

func (r *stubCustomerRepo) Delete(ctx context.Context, id int64) error {
	return nil
}

func (r *stubCustomerRepo) List(ctx context.Context, search string) ([]repository.Customer, error) {
	return nil, nil
}

type stubCreditNoteRepo struct {
	notes     []*repository.CreditNote
	createErr error
}

func (r *stubCreditNoteRepo) Create(ctx context.Context, cn *repository.CreditNote) error {
	return r.CreateTx(ctx, nil, cn)
}

func (r *stubCreditNoteRepo) CreateTx(ctx context.Context, tx db.Tx, cn *repository.CreditNote) error {
	if r.createErr != nil {
		return r.createErr
	}
	cn.ID = int64(len(r.notes) + 1)
	r.notes = append(r.notes, cn)
	return nil
}

func (r *stubCreditNoteRepo) GetByID(ctx context.Context, id int64) (*repository.CreditNote, error) {
	for _, cn := range r.notes {
		if cn.ID == id {
			return cn, nil
		}
	}
	return nil, repository.ErrObjectNotFound
}

func (r *stubCreditNoteRepo) GetByIDTx(ctx context.Context, tx db.Tx, id int64) (*repository.CreditNote, error) {
	return r.GetByID(ctx, id)
}

func (r *stubCreditNoteRepo) ApplyTx(ctx context.Context, tx db.Tx, id int64, amount decimal.Decimal, status string) error {
	return nil
}

func (r *stubCreditNoteRepo) List(ctx context.Context, customerID int64) ([]repository.CreditNote, error) {
	return nil, nil
}

type stubOutboxRepo struct {
	tasks     []*repository.OutboxTask
	createErr error
}

func (r *stubOutboxRepo) CreateTx(ctx context.Context, tx db.Tx, task *repository.OutboxTask) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.tasks = append(r.tasks, task)
	return nil
}

func (r *stubOutboxRepo) GetProcessableTasks(ctx context.Context, database db.DB, limit int) ([]*repository.OutboxTask, error) {
	return r.tasks, nil
}

func (r *stubOutboxRepo) UpdateTaskStatusTx(ctx context.Context, tx db.Tx, id uuid.UUID, status repository.TaskStatus, attempts int, lastError *string, completedAt *time.Time) error {
	return nil
}

func (r *stubOutboxRepo) UpdateTaskStatus(ctx context.Context, database db.DB, id uuid.UUID, status repository.TaskStatus, attempts int, lastError *string, completedAt *time.Time) error {
	return nil
}

func newLifecycleStorage(orders *stubOrderRepo, returns *stubReturnRepo, pickups *stubPickupRepo, outbox *stubOutboxRepo, database db.DB) *PostgresStorage {
	customers := &stubCustomerRepo{customer: &repository.Customer{ID: 1}}
	return NewPostgresStorage(database, orders, returns, pickups, nil, customers, nil, nil, nil, nil, nil, outbox)
}
