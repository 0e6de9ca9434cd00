package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"opsboard/internal/lifecycle"
	"opsboard/internal/repository"
	mock_server "opsboard/internal/server/mocks"
	"opsboard/internal/storage"
)

func newTestServer(t *testing.T) (*Server, *mock_server.MockStorage, http.Handler) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockStorage := mock_server.NewMockStorage(ctrl)
	mockUserRepo := mock_server.NewMockUserRepo(ctrl)
	mockUserRepo.EXPECT().
		ValidateUser(gomock.Any(), "admin", "secret").
		Return(true, nil).
		AnyTimes()
	mockUserRepo.EXPECT().
		ValidateUser(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(false, nil).
		AnyTimes()

	srv := New(mockStorage, mockUserRepo, nil)
	return srv, mockStorage, srv.setupRoutes()
}

func authedRequest(method, target string, body []byte) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth("admin", "secret")
	return req
}

func TestBasicAuth(t *testing.T) {
	_, mockStorage, router := newTestServer(t)

	t.Run("missing credentials", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/orders", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, `Basic realm="Restricted"`, rr.Header().Get("WWW-Authenticate"))
	})

	t.Run("wrong credentials", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/orders", nil)
		req.SetBasicAuth("admin", "wrong")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("valid credentials pass through", func(t *testing.T) {
		mockStorage.EXPECT().
			ListOrders(gomock.Any(), repository.OrderStatus(""), "").
			Return([]*repository.Order{}, nil)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, authedRequest(http.MethodGet, "/orders", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("metrics endpoint is open", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestHandleCreateOrder(t *testing.T) {
	_, mockStorage, router := newTestServer(t)

	t.Run("successful creation", func(t *testing.T) {
		mockStorage.EXPECT().
			CreateOrder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, order *repository.Order) error {
				assert.Equal(t, "ORD-1001", order.OrderNumber)
				assert.Equal(t, "Asha Rao", order.CustomerName)
				assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), order.OrderDate)
				order.ID = 42
				return nil
			})

		body, _ := json.Marshal(map[string]interface{}{
			"order_number":   "ORD-1001",
			"customer_name":  "Asha Rao",
			"customer_email": "asha@example.com",
			"total_amount":   "1499.00",
			"order_date":     "2026-03-01",
		})

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, authedRequest(http.MethodPost, "/orders", body))

		require.Equal(t, http.StatusCreated, rr.Code)
		var created repository.Order
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
		assert.Equal(t, int64(42), created.ID)
	})

	t.Run("malformed body", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, authedRequest(http.MethodPost, "/orders", []byte("{not json")))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("bad date format", func(t *testing.T) {
		body, _ := json.Marshal(map[string]interface{}{
			"order_number": "ORD-1002",
			"order_date":   "01/03/2026",
		})

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, authedRequest(http.MethodPost, "/orders", body))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("validation failure maps to 400", func(t *testing.T) {
		mockStorage.EXPECT().
			CreateOrder(gomock.Any(), gomock.Any()).
			Return(fmt.Errorf("carrier %q: %w", "pigeon", storage.ErrInvalidInput))

		body, _ := json.Marshal(map[string]interface{}{
			"order_number": "ORD-1003",
			"carrier":      "pigeon",
		})

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, authedRequest(http.MethodPost, "/orders", body))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestHandleAdvanceOrder(t *testing.T) {
	_, mockStorage, router := newTestServer(t)

	advance := func(id string, target string) *httptest.ResponseRecorder {
		body, _ := json.Marshal(map[string]string{"status": target})
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, authedRequest(http.MethodPost, "/orders/"+id+"/advance", body))
		return rr
	}

	t.Run("successful advance", func(t *testing.T) {
		now := time.Now().UTC()
		mockStorage.EXPECT().
			AdvanceOrder(gomock.Any(), int64(5), repository.OrderStatusConfirmed).
			Return(&repository.Order{ID: 5, Status: repository.OrderStatusConfirmed, ConfirmedAt: &now}, nil)

		rr := advance("5", "confirmed")
		require.Equal(t, http.StatusOK, rr.Code)

		var order repository.Order
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &order))
		assert.Equal(t, repository.OrderStatusConfirmed, order.Status)
		assert.NotNil(t, order.ConfirmedAt)
	})

	t.Run("stage skip is a conflict", func(t *testing.T) {
		mockStorage.EXPECT().
			AdvanceOrder(gomock.Any(), int64(5), repository.OrderStatusShipped).
			Return(nil, fmt.Errorf("order ORD-1001 at \"received\": %w", lifecycle.ErrNotSuccessor))

		assert.Equal(t, http.StatusConflict, advance("5", "shipped").Code)
	})

	t.Run("lost race is a conflict", func(t *testing.T) {
		mockStorage.EXPECT().
			AdvanceOrder(gomock.Any(), int64(5), repository.OrderStatusConfirmed).
			Return(nil, repository.ErrStatusConflict)

		assert.Equal(t, http.StatusConflict, advance("5", "confirmed").Code)
	})

	t.Run("terminal status is a conflict", func(t *testing.T) {
		mockStorage.EXPECT().
			AdvanceOrder(gomock.Any(), int64(5), repository.OrderStatusDelivered).
			Return(nil, lifecycle.ErrTerminalStatus)

		assert.Equal(t, http.StatusConflict, advance("5", "delivered").Code)
	})

	t.Run("unknown status is a bad request", func(t *testing.T) {
		mockStorage.EXPECT().
			AdvanceOrder(gomock.Any(), int64(5), repository.OrderStatus("teleported")).
			Return(nil, lifecycle.ErrUnknownStatus)

		assert.Equal(t, http.StatusBadRequest, advance("5", "teleported").Code)
	})

	t.Run("unknown order", func(t *testing.T) {
		mockStorage.EXPECT().
			AdvanceOrder(gomock.Any(), int64(404), repository.OrderStatusConfirmed).
			Return(nil, repository.ErrObjectNotFound)

		assert.Equal(t, http.StatusNotFound, advance("404", "confirmed").Code)
	})

	t.Run("missing schema", func(t *testing.T) {
		mockStorage.EXPECT().
			AdvanceOrder(gomock.Any(), int64(5), repository.OrderStatusConfirmed).
			Return(nil, repository.ErrSchemaNotProvisioned)

		assert.Equal(t, http.StatusServiceUnavailable, advance("5", "confirmed").Code)
	})

	t.Run("broken record is a server fault", func(t *testing.T) {
		mockStorage.EXPECT().
			AdvanceOrder(gomock.Any(), int64(5), repository.OrderStatusConfirmed).
			Return(nil, lifecycle.ErrStageMismatch)

		assert.Equal(t, http.StatusInternalServerError, advance("5", "confirmed").Code)
	})
}

func TestHandleGetOrder(t *testing.T) {
	_, mockStorage, router := newTestServer(t)

	t.Run("found", func(t *testing.T) {
		mockStorage.EXPECT().
			GetOrder(gomock.Any(), int64(7)).
			Return(&repository.Order{ID: 7, OrderNumber: "ORD-7"}, nil)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, authedRequest(http.MethodGet, "/orders/7", nil))

		require.Equal(t, http.StatusOK, rr.Code)
		var order repository.Order
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &order))
		assert.Equal(t, "ORD-7", order.OrderNumber)
	})

	t.Run("not found", func(t *testing.T) {
		mockStorage.EXPECT().
			GetOrder(gomock.Any(), int64(404)).
			Return(nil, repository.ErrObjectNotFound)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, authedRequest(http.MethodGet, "/orders/404", nil))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("non-numeric id misses the route", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, authedRequest(http.MethodGet, "/orders/abc", nil))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestHandleSchedulePickup(t *testing.T) {
	_, mockStorage, router := newTestServer(t)

	validBody := func() []byte {
		body, _ := json.Marshal(map[string]interface{}{
			"carrier":          "bluedart",
			"pickup_date":      "2026-03-10",
			"pickup_time_slot": "9:00 AM - 12:00 PM",
			"pickup_address":   "12 MG Road, Bengaluru",
			"contact_name":     "Asha Rao",
			"contact_phone":    "+91 98765 43210",
		})
		return body
	}

	t.Run("successful scheduling", func(t *testing.T) {
		mockStorage.EXPECT().
			SchedulePickup(gomock.Any(), int64(3), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, pickup *repository.ReversePickup) (*repository.Return, error) {
				assert.Equal(t, "bluedart", pickup.Carrier)
				assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), pickup.PickupDate)
				pickup.ID = 11
				return &repository.Return{ID: 3, Status: repository.ReturnStatusPickedUp}, nil
			})

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, authedRequest(http.MethodPost, "/returns/3/pickup", validBody()))

		require.Equal(t, http.StatusOK, rr.Code)

		var resp struct {
			Return *repository.Return        `json:"return"`
			Pickup *repository.ReversePickup `json:"pickup"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, repository.ReturnStatusPickedUp, resp.Return.Status)
		assert.Equal(t, int64(11), resp.Pickup.ID)
	})

	t.Run("pickup before approval is a conflict", func(t *testing.T) {
		mockStorage.EXPECT().
			SchedulePickup(gomock.Any(), int64(3), gomock.Any()).
			Return(nil, lifecycle.ErrNotSuccessor)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, authedRequest(http.MethodPost, "/returns/3/pickup", validBody()))

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("commit failure reports partial state", func(t *testing.T) {
		mockStorage.EXPECT().
			SchedulePickup(gomock.Any(), int64(3), gomock.Any()).
			Return(nil, fmt.Errorf("%w: %v", storage.ErrPickupPartialState, errors.New("broken pipe")))

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, authedRequest(http.MethodPost, "/returns/3/pickup", validBody()))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Contains(t, rr.Body.String(), "did not commit")
	})

	t.Run("bad pickup date", func(t *testing.T) {
		body, _ := json.Marshal(map[string]interface{}{
			"carrier":     "bluedart",
			"pickup_date": "next tuesday",
		})

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, authedRequest(http.MethodPost, "/returns/3/pickup", body))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestHandleSyncChannel(t *testing.T) {
	_, mockStorage, router := newTestServer(t)

	t.Run("sync disabled is a conflict", func(t *testing.T) {
		mockStorage.EXPECT().
			SyncChannelNow(gomock.Any(), int64(2)).
			Return(nil, storage.ErrSyncDisabled)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, authedRequest(http.MethodPost, "/channels/2/sync", nil))

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("successful sync", func(t *testing.T) {
		now := time.Now().UTC()
		mockStorage.EXPECT().
			SyncChannelNow(gomock.Any(), int64(2)).
			Return(&repository.Channel{ID: 2, LastSyncAt: &now}, nil)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, authedRequest(http.MethodPost, "/channels/2/sync", nil))

		require.Equal(t, http.StatusOK, rr.Code)
		var ch repository.Channel
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ch))
		assert.NotNil(t, ch.LastSyncAt)
	})
}

func TestHandleRecordPayment(t *testing.T) {
	_, mockStorage, router := newTestServer(t)

	t.Run("payment accepted", func(t *testing.T) {
		mockStorage.EXPECT().
			RecordPayment(gomock.Any(), int64(9), gomock.Any()).
			Return(&repository.Invoice{ID: 9, Status: "partially_paid"}, nil)

		body := []byte(`{"amount": "500.00"}`)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, authedRequest(http.MethodPost, "/invoices/9/payments", body))

		require.Equal(t, http.StatusOK, rr.Code)
		var inv repository.Invoice
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &inv))
		assert.Equal(t, "partially_paid", inv.Status)
	})

	t.Run("overpayment rejected", func(t *testing.T) {
		mockStorage.EXPECT().
			RecordPayment(gomock.Any(), int64(9), gomock.Any()).
			Return(nil, fmt.Errorf("payment exceeds balance due: %w", storage.ErrInvalidInput))

		body := []byte(`{"amount": "999999.00"}`)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, authedRequest(http.MethodPost, "/invoices/9/payments", body))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
