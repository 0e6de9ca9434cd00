package server

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"time"
)

func (s *Server) auditLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		entry := AuditLogEntry{
			Timestamp: time.Now().UTC(),
			Method:    r.Method,
			Path:      r.URL.Path,
			Handler:   handlerName(r.URL.Path, r.Method),
		}

		if username, _, ok := r.BasicAuth(); ok {
			entry.Username = username
		}

		entry.Entity, entry.RecordID = entityFromPath(r.URL.Path)

		if r.Body != nil {
			requestBody, _ := io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewBuffer(requestBody))
			entry.Request = string(requestBody)
		}

		wrw := newResponseWriterWrapper(w)
		next.ServeHTTP(wrw, r)

		entry.StatusCode = wrw.statusCode
		entry.Response = wrw.buffer.String()

		s.AuditManager.LogEntry(r.Context(), entry)
	})
}

// entityFromPath pulls the collection name and record id out of paths
// shaped like /orders/42/advance.
func entityFromPath(path string) (entity, recordID string) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) == 0 || parts[0] == "" {
		return "", ""
	}
	entity = parts[0]
	if len(parts) > 1 && parts[1] != "stats" && parts[1] != "low-stock" && parts[1] != "barcode" {
		recordID = parts[1]
	}
	return entity, recordID
}

func handlerName(path, method string) string {
	entity, recordID := entityFromPath(path)
	if entity == "" {
		return "unknown"
	}

	var action string
	switch {
	case strings.HasSuffix(path, "/advance"):
		action = "advance"
	case strings.HasSuffix(path, "/approve"):
		action = "approve"
	case strings.HasSuffix(path, "/reject"):
		action = "reject"
	case strings.HasSuffix(path, "/pickup") && method == http.MethodPost:
		action = "schedulePickup"
	case strings.HasSuffix(path, "/pickup"):
		action = "getPickup"
	case strings.HasSuffix(path, "/payments"):
		action = "recordPayment"
	case strings.HasSuffix(path, "/apply"):
		action = "apply"
	case strings.HasSuffix(path, "/sync"):
		action = "sync"
	case strings.HasSuffix(path, "/sync-enabled"):
		action = "setSync"
	case strings.HasSuffix(path, "/status"):
		action = "updateStatus"
	case strings.HasSuffix(path, "/quantity"):
		action = "adjustQuantity"
	case strings.HasSuffix(path, "/stats"):
		action = "stats"
	case strings.HasSuffix(path, "/low-stock"):
		action = "lowStock"
	case strings.Contains(path, "/barcode/"):
		action = "getByBarcode"
	case method == http.MethodPost:
		action = "create"
	case method == http.MethodPut:
		action = "update"
	case method == http.MethodDelete:
		action = "delete"
	case recordID != "":
		action = "get"
	default:
		action = "list"
	}

	return entity + "." + action
}
