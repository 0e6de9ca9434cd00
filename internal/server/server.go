//go:generate mockgen -source ./server.go -destination=./mocks/server.go -package=mock_server
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"opsboard/internal/lifecycle"
	"opsboard/internal/repository"
	"opsboard/internal/stock"
	"opsboard/internal/storage"
)

type Storage interface {
	CreateOrder(ctx context.Context, order *repository.Order) error
	GetOrder(ctx context.Context, id int64) (*repository.Order, error)
	ListOrders(ctx context.Context, status repository.OrderStatus, search string) ([]*repository.Order, error)
	GetOrderStats(ctx context.Context) (*storage.OrderStats, error)
	AdvanceOrder(ctx context.Context, id int64, target repository.OrderStatus) (*repository.Order, error)

	CreateReturn(ctx context.Context, ret *repository.Return) error
	GetReturn(ctx context.Context, id int64) (*repository.Return, error)
	ListReturns(ctx context.Context, status repository.ReturnStatus, search string) ([]*repository.Return, error)
	GetReturnStats(ctx context.Context) (*storage.ReturnStats, error)
	ApproveReturn(ctx context.Context, id int64) (*repository.Return, error)
	RejectReturn(ctx context.Context, id int64) (*repository.Return, error)
	SchedulePickup(ctx context.Context, returnID int64, pickup *repository.ReversePickup) (*repository.Return, error)
	GetPickup(ctx context.Context, returnID int64) (*repository.ReversePickup, error)
	AdvanceReturn(ctx context.Context, id int64, target repository.ReturnStatus) (*repository.Return, error)

	CreateItem(ctx context.Context, item *repository.InventoryItem) error
	GetItem(ctx context.Context, id int64) (*repository.InventoryItem, error)
	GetItemByBarcode(ctx context.Context, barcode string) (*repository.InventoryItem, error)
	UpdateItem(ctx context.Context, item *repository.InventoryItem) error
	AdjustQuantity(ctx context.Context, id int64, quantity int) error
	DeleteItem(ctx context.Context, id int64) error
	ListItems(ctx context.Context) ([]storage.StockItem, error)
	LowStockItems(ctx context.Context) ([]storage.StockItem, error)
	GetInventoryStats(ctx context.Context) (*stock.Stats, error)

	CreateCustomer(ctx context.Context, c *repository.Customer) error
	GetCustomer(ctx context.Context, id int64) (*repository.Customer, error)
	UpdateCustomer(ctx context.Context, c *repository.Customer) error
	DeleteCustomer(ctx context.Context, id int64) error
	ListCustomers(ctx context.Context, search string) ([]repository.Customer, error)

	CreateSupplier(ctx context.Context, sup *repository.Supplier) error
	GetSupplier(ctx context.Context, id int64) (*repository.Supplier, error)
	UpdateSupplier(ctx context.Context, sup *repository.Supplier) error
	DeleteSupplier(ctx context.Context, id int64) error
	ListSuppliers(ctx context.Context, search string) ([]repository.Supplier, error)

	CreateInvoice(ctx context.Context, inv *repository.Invoice) error
	GetInvoice(ctx context.Context, id int64) (*repository.Invoice, error)
	ListInvoices(ctx context.Context, status string, customerID int64) ([]repository.Invoice, error)
	UpdateInvoiceStatus(ctx context.Context, id int64, status string) error
	RecordPayment(ctx context.Context, id int64, amount decimal.Decimal) (*repository.Invoice, error)

	CreateCreditNote(ctx context.Context, cn *repository.CreditNote) error
	GetCreditNote(ctx context.Context, id int64) (*repository.CreditNote, error)
	ListCreditNotes(ctx context.Context, customerID int64) ([]repository.CreditNote, error)
	ApplyCreditNote(ctx context.Context, noteID, invoiceID int64, amount decimal.Decimal) error

	CreateChannel(ctx context.Context, ch *repository.Channel) error
	GetChannel(ctx context.Context, id int64) (*repository.Channel, error)
	UpdateChannel(ctx context.Context, ch *repository.Channel) error
	DeleteChannel(ctx context.Context, id int64) error
	ListChannels(ctx context.Context) ([]repository.Channel, error)
	SetChannelSync(ctx context.Context, id int64, enabled bool) error
	SyncChannelNow(ctx context.Context, id int64) (*repository.Channel, error)
}

type UserRepo interface {
	ValidateUser(ctx context.Context, username, password string) (bool, error)
}

type Server struct {
	storage      Storage
	userRepo     UserRepo
	server       *http.Server
	AuditManager *AuditManager
}

func New(storage Storage, userRepo UserRepo, auditSink AuditSink) *Server {
	auditManager := NewAuditManager(2, 5, 500*time.Millisecond, auditSink)
	return &Server{
		storage:      storage,
		userRepo:     userRepo,
		AuditManager: auditManager,
	}
}

func (s *Server) Run(ctx context.Context, port string) error {
	router := s.setupRoutes()

	s.server = &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	s.AuditManager.Start(ctx)

	zap.S().Infow("server starting", "port", port)
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	zap.S().Info("shutting down server")

	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	zap.S().Info("http server shutdown completed")

	s.AuditManager.Shutdown(ctx)
	zap.S().Info("server shutdown completed")

	return nil
}

func (s *Server) setupRoutes() http.Handler {
	router := mux.NewRouter()

	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := router.PathPrefix("/").Subrouter()
	api.Use(s.auditLogMiddleware, s.basicAuthMiddleware)

	api.HandleFunc("/orders", s.handleCreateOrder).Methods(http.MethodPost)
	api.HandleFunc("/orders", s.handleListOrders).Methods(http.MethodGet)
	api.HandleFunc("/orders/stats", s.handleOrderStats).Methods(http.MethodGet)
	api.HandleFunc("/orders/{id:[0-9]+}", s.handleGetOrder).Methods(http.MethodGet)
	api.HandleFunc("/orders/{id:[0-9]+}/advance", s.handleAdvanceOrder).Methods(http.MethodPost)

	api.HandleFunc("/returns", s.handleCreateReturn).Methods(http.MethodPost)
	api.HandleFunc("/returns", s.handleListReturns).Methods(http.MethodGet)
	api.HandleFunc("/returns/stats", s.handleReturnStats).Methods(http.MethodGet)
	api.HandleFunc("/returns/{id:[0-9]+}", s.handleGetReturn).Methods(http.MethodGet)
	api.HandleFunc("/returns/{id:[0-9]+}/approve", s.handleApproveReturn).Methods(http.MethodPost)
	api.HandleFunc("/returns/{id:[0-9]+}/reject", s.handleRejectReturn).Methods(http.MethodPost)
	api.HandleFunc("/returns/{id:[0-9]+}/pickup", s.handleSchedulePickup).Methods(http.MethodPost)
	api.HandleFunc("/returns/{id:[0-9]+}/pickup", s.handleGetPickup).Methods(http.MethodGet)
	api.HandleFunc("/returns/{id:[0-9]+}/advance", s.handleAdvanceReturn).Methods(http.MethodPost)

	api.HandleFunc("/inventory", s.handleCreateItem).Methods(http.MethodPost)
	api.HandleFunc("/inventory", s.handleListItems).Methods(http.MethodGet)
	api.HandleFunc("/inventory/low-stock", s.handleLowStock).Methods(http.MethodGet)
	api.HandleFunc("/inventory/stats", s.handleInventoryStats).Methods(http.MethodGet)
	api.HandleFunc("/inventory/barcode/{barcode}", s.handleGetItemByBarcode).Methods(http.MethodGet)
	api.HandleFunc("/inventory/{id:[0-9]+}", s.handleGetItem).Methods(http.MethodGet)
	api.HandleFunc("/inventory/{id:[0-9]+}", s.handleUpdateItem).Methods(http.MethodPut)
	api.HandleFunc("/inventory/{id:[0-9]+}/quantity", s.handleAdjustQuantity).Methods(http.MethodPut)
	api.HandleFunc("/inventory/{id:[0-9]+}", s.handleDeleteItem).Methods(http.MethodDelete)

	api.HandleFunc("/customers", s.handleCreateCustomer).Methods(http.MethodPost)
	api.HandleFunc("/customers", s.handleListCustomers).Methods(http.MethodGet)
	api.HandleFunc("/customers/{id:[0-9]+}", s.handleGetCustomer).Methods(http.MethodGet)
	api.HandleFunc("/customers/{id:[0-9]+}", s.handleUpdateCustomer).Methods(http.MethodPut)
	api.HandleFunc("/customers/{id:[0-9]+}", s.handleDeleteCustomer).Methods(http.MethodDelete)

	api.HandleFunc("/suppliers", s.handleCreateSupplier).Methods(http.MethodPost)
	api.HandleFunc("/suppliers", s.handleListSuppliers).Methods(http.MethodGet)
	api.HandleFunc("/suppliers/{id:[0-9]+}", s.handleGetSupplier).Methods(http.MethodGet)
	api.HandleFunc("/suppliers/{id:[0-9]+}", s.handleUpdateSupplier).Methods(http.MethodPut)
	api.HandleFunc("/suppliers/{id:[0-9]+}", s.handleDeleteSupplier).Methods(http.MethodDelete)

	api.HandleFunc("/invoices", s.handleCreateInvoice).Methods(http.MethodPost)
	api.HandleFunc("/invoices", s.handleListInvoices).Methods(http.MethodGet)
	api.HandleFunc("/invoices/{id:[0-9]+}", s.handleGetInvoice).Methods(http.MethodGet)
	api.HandleFunc("/invoices/{id:[0-9]+}/status", s.handleUpdateInvoiceStatus).Methods(http.MethodPut)
	api.HandleFunc("/invoices/{id:[0-9]+}/payments", s.handleRecordPayment).Methods(http.MethodPost)

	api.HandleFunc("/credit-notes", s.handleCreateCreditNote).Methods(http.MethodPost)
	api.HandleFunc("/credit-notes", s.handleListCreditNotes).Methods(http.MethodGet)
	api.HandleFunc("/credit-notes/{id:[0-9]+}", s.handleGetCreditNote).Methods(http.MethodGet)
	api.HandleFunc("/credit-notes/{id:[0-9]+}/apply", s.handleApplyCreditNote).Methods(http.MethodPost)

	api.HandleFunc("/channels", s.handleCreateChannel).Methods(http.MethodPost)
	api.HandleFunc("/channels", s.handleListChannels).Methods(http.MethodGet)
	api.HandleFunc("/channels/{id:[0-9]+}", s.handleGetChannel).Methods(http.MethodGet)
	api.HandleFunc("/channels/{id:[0-9]+}", s.handleUpdateChannel).Methods(http.MethodPut)
	api.HandleFunc("/channels/{id:[0-9]+}", s.handleDeleteChannel).Methods(http.MethodDelete)
	api.HandleFunc("/channels/{id:[0-9]+}/sync", s.handleSyncChannel).Methods(http.MethodPost)
	api.HandleFunc("/channels/{id:[0-9]+}/sync-enabled", s.handleSetChannelSync).Methods(http.MethodPut)

	return router
}

func (s *Server) basicAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		if !ok {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		valid, err := s.userRepo.ValidateUser(r.Context(), username, password)
		if err != nil || !valid {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondStorageError maps service errors to HTTP statuses. Lifecycle rule
// violations and concurrent-update losses are conflicts, not server faults.
func respondStorageError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrObjectNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, storage.ErrInvalidInput), errors.Is(err, lifecycle.ErrUnknownStatus):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, lifecycle.ErrTerminalStatus),
		errors.Is(err, lifecycle.ErrNotSuccessor),
		errors.Is(err, repository.ErrStatusConflict),
		errors.Is(err, storage.ErrSyncDisabled):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, repository.ErrSchemaNotProvisioned):
		respondError(w, http.StatusServiceUnavailable,
			"database schema is not provisioned yet; run the migrations and retry")
	case errors.Is(err, storage.ErrPickupPartialState):
		respondError(w, http.StatusInternalServerError,
			"pickup scheduling did not commit; verify the return before retrying")
	case errors.Is(err, lifecycle.ErrStageMismatch), errors.Is(err, lifecycle.ErrTimestampOrder):
		respondError(w, http.StatusInternalServerError, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, err.Error())
	}
}
