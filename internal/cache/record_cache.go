package cache

import (
	"encoding/json"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"opsboard/internal/metrics"
	"opsboard/internal/repository"
)

// RecordCache mirrors the change feed: each entry is the latest published
// copy of one row, keyed by table and record id. Apply only ever touches
// the single record an event names.
type RecordCache struct {
	mu    sync.RWMutex
	cache map[string]json.RawMessage
}

func NewRecordCache() *RecordCache {
	return &RecordCache{
		cache: make(map[string]json.RawMessage),
	}
}

func key(table string, recordID int64) string {
	return fmt.Sprintf("%s/%d", table, recordID)
}

func (c *RecordCache) Apply(event repository.ChangeEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()

	k := key(event.Table, event.RecordID)
	switch event.Action {
	case repository.ChangeActionInsert, repository.ChangeActionUpdate:
		c.cache[k] = event.Record
	case repository.ChangeActionDelete:
		delete(c.cache, k)
	default:
		zap.S().Warnw("ignoring change event with unknown action", "action", event.Action)
		return
	}

	metrics.RecordCacheItems.Set(float64(len(c.cache)))
	zap.S().Debugw("cache applied change event",
		"table", event.Table, "record_id", event.RecordID, "action", event.Action)
}

func (c *RecordCache) Get(table string, recordID int64) (json.RawMessage, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	record, found := c.cache[key(table, recordID)]
	if !found {
		return nil, false
	}
	cp := make(json.RawMessage, len(record))
	copy(cp, record)
	return cp, true
}

func (c *RecordCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cache)
}
