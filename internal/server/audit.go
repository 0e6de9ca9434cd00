package server

import (
	"time"
)

// AuditLogEntry records one authenticated API call. Entity and RecordID are
// filled for routes that address a single record.
type AuditLogEntry struct {
	Timestamp  time.Time `json:"timestamp"`
	Handler    string    `json:"handler"`
	Method     string    `json:"method"`
	Path       string    `json:"path"`
	StatusCode int       `json:"status_code"`
	Username   string    `json:"username,omitempty"`
	Entity     string    `json:"entity,omitempty"`
	RecordID   string    `json:"record_id,omitempty"`
	Request    string    `json:"request,omitempty"`
	Response   string    `json:"response,omitempty"`
}
