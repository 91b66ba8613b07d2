package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"ledgerly.io/financemail/internal/core/domain"
	"ledgerly.io/financemail/internal/core/service"
	"ledgerly.io/financemail/internal/handler"
	"ledgerly.io/financemail/internal/infrastructure/amqp"
	"ledgerly.io/financemail/internal/storage"
)

const (
	numReviewWorkers = 4
	jobQueueSize     = 100
)

func main() {
	// Initialize logger
	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(log.InfoLevel)

	_ = godotenv.Load()

	// Get configuration from environment
	amqpURL := os.Getenv("AMQP_URL")
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")

	// Create AMQP client
	amqpClient, err := amqp.NewClient(amqpURL)
	if err != nil {
		log.Fatalf("Failed to create AMQP client: %v", err)
	}
	defer amqpClient.Close()

	ctx := context.Background()
	db, err := storage.NewPostgresDB(ctx, dbHost, dbPort, dbUser, dbPassword, dbName)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	financeStorage := storage.NewFinanceStorage(db)

	// Set up topology (exchanges, queues, bindings)
	topologyManager := amqp.NewTopologyManager(amqpClient)
	if err := topologyManager.Setup(); err != nil {
		log.Fatalf("Failed to setup AMQP topology: %v", err)
	}

	validate := validator.New()
	reviewService := service.NewDuplicateReviewService(financeStorage)
	messageHandler := handler.NewAMQPConsumer(
		reviewService,
		validate,
		numReviewWorkers,
		jobQueueSize,
	)

	consumer := amqp.NewConsumer(amqpClient, messageHandler)

	workerCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	messageHandler.Start(workerCtx)

	if err := consumer.Consume(workerCtx, domain.DuplicateReviewQueue); err != nil {
		log.Fatalf("Failed to start consumer: %v", err)
	}

	log.Info("Duplicate review worker started successfully")
	log.Infof("Consuming messages from queue: %s", domain.DuplicateReviewQueue)

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info("Shutting down duplicate review worker...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	messageHandler.Stop(shutdownCtx)
}
