package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"opsboard/internal/server"
)

// AuditSink forwards audit batches to a broker topic, one message per entry.
type AuditSink struct {
	producer Producer
	topic    string
}

func NewAuditSink(producer Producer, topic string) *AuditSink {
	return &AuditSink{producer: producer, topic: topic}
}

func (s *AuditSink) WriteBatch(ctx context.Context, batch []server.AuditLogEntry) error {
	for _, entry := range batch {
		value, err := json.Marshal(entry)
		if err != nil {
			return fmt.Errorf("failed to marshal audit entry: %w", err)
		}
		key := []byte(entry.Handler)
		if err := s.producer.SendMessage(ctx, s.topic, key, value); err != nil {
			return err
		}
	}
	return nil
}
