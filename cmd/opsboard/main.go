package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"opsboard/internal/db"
	"opsboard/internal/kafka"
	"opsboard/internal/logger"
	"opsboard/internal/repository/postgresql"
	"opsboard/internal/server"
	"opsboard/internal/storage"
)

const auditTopic = "opsboard.audit-logs"

func main() {
	zl := logger.New()
	defer zl.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	dbPool, err := db.NewDb(ctx)
	if err != nil {
		log.Fatalf("Database init error: %v", err)
	}
	defer dbPool.GetPool().Close()

	orderRepo := postgresql.NewOrderRepo(dbPool)
	returnRepo := postgresql.NewReturnRepo(dbPool)
	pickupRepo := postgresql.NewReversePickupRepo(dbPool)
	inventoryRepo := postgresql.NewInventoryRepo(dbPool)
	customerRepo := postgresql.NewCustomerRepo(dbPool)
	supplierRepo := postgresql.NewSupplierRepo(dbPool)
	invoiceRepo := postgresql.NewInvoiceRepo(dbPool)
	creditNoteRepo := postgresql.NewCreditNoteRepo(dbPool)
	channelRepo := postgresql.NewChannelRepo(dbPool)
	userRepo := postgresql.NewUserRepo(dbPool)
	outboxRepo := postgresql.NewOutboxTaskRepo()

	stg := storage.NewPostgresStorage(dbPool,
		orderRepo, returnRepo, pickupRepo,
		inventoryRepo, customerRepo, supplierRepo,
		invoiceRepo, creditNoteRepo, channelRepo,
		userRepo, outboxRepo)

	if username := os.Getenv("ADMIN_USERNAME"); username != "" {
		if err := stg.EnsureUser(ctx, username, os.Getenv("ADMIN_PASSWORD")); err != nil {
			log.Fatalf("Failed to seed admin user: %v", err)
		}
	}

	producer := newProducer()

	srv := server.New(stg, userRepo, kafka.NewAuditSink(producer, auditTopic))

	publisher := kafka.NewPublisher(dbPool, outboxRepo, producer, kafka.PublisherConfig{
		PollInterval: 2 * time.Second,
		BatchSize:    50,
		MaxAttempts:  5,
	})

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "9000"
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(gCtx, port)
	})
	g.Go(func() error {
		publisher.Run(gCtx)
		return nil
	})
	g.Go(func() error {
		runChannelSyncer(gCtx, stg)
		return nil
	})

	log.Printf("Server started on port %s", port)

	<-gCtx.Done()
	log.Println("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown failed: %v", err)
	}
	publisher.Shutdown()

	if err := g.Wait(); err != nil {
		log.Printf("Run finished with error: %v", err)
	}
	log.Println("Stopped")
}

// runChannelSyncer stamps sync-enabled channels whose sync_frequency has
// elapsed, so dashboards see fresh last_sync_at values without manual
// "sync now" calls.
func runChannelSyncer(ctx context.Context, stg *storage.PostgresStorage) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			due, err := stg.ChannelsDueForSync(ctx)
			if err != nil {
				log.Printf("Channel sync sweep failed: %v", err)
				continue
			}
			for _, ch := range due {
				if _, err := stg.SyncChannelNow(ctx, ch.ID); err != nil {
					log.Printf("Channel %d sync failed: %v", ch.ID, err)
				}
			}
		}
	}
}

// newProducer picks the broker-backed producer when KAFKA_BROKERS is set
// and falls back to logging messages locally otherwise.
func newProducer() kafka.Producer {
	brokers := os.Getenv("KAFKA_BROKERS")
	if brokers == "" {
		log.Println("KAFKA_BROKERS not set, using console producer")
		return kafka.NewConsoleProducer()
	}
	return kafka.NewWriterProducer(strings.Split(brokers, ","))
}
