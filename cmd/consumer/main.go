package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"opsboard/internal/cache"
	"opsboard/internal/logger"
	"opsboard/internal/repository"
	"opsboard/internal/storage"
)

const groupID = "opsboard-cache-consumer"

func main() {
	zl := logger.New()
	defer zl.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	brokers := os.Getenv("KAFKA_BROKERS")
	if brokers == "" {
		brokers = "localhost:9092"
	}

	log.Println("Starting change feed consumer...")

	r := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        strings.Split(brokers, ","),
		GroupID:        groupID,
		Topic:          storage.ChangesTopic,
		MinBytes:       10e3,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
		MaxWait:        3 * time.Second,
	})
	defer func() {
		log.Println("Closing Kafka reader...")
		if err := r.Close(); err != nil {
			log.Printf("Error closing Kafka reader: %v", err)
		}
	}()

	log.Printf("Consumer connected to topic '%s' on brokers %s", storage.ChangesTopic, brokers)

	recordCache := cache.NewRecordCache()

	for {
		m, err := r.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Println("Shutdown signal received, stopping consumer.")
				return
			}
			log.Printf("Error reading message: %v", err)
			time.Sleep(5 * time.Second)
			continue
		}

		var event repository.ChangeEvent
		if err := json.Unmarshal(m.Value, &event); err != nil {
			log.Printf("Skipping malformed change event at offset %d: %v", m.Offset, err)
			continue
		}

		recordCache.Apply(event)
		log.Printf("Applied %s on %s/%d (cache size %d)",
			event.Action, event.Table, event.RecordID, recordCache.Len())
	}
}
