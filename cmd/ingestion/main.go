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

	"ledgerly.io/financemail/internal/client"
	"ledgerly.io/financemail/internal/core/service"
	"ledgerly.io/financemail/internal/infrastructure/amqp"
	"ledgerly.io/financemail/internal/server"
	"ledgerly.io/financemail/internal/storage"
)

func main() {
	// Initialize logger
	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(log.InfoLevel)

	_ = godotenv.Load()

	// Get configuration from environment
	amqpURL := os.Getenv("AMQP_URL")
	httpAddr := os.Getenv("HTTP_ADDR")
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")
	graphBaseURL := os.Getenv("GRAPH_BASE_URL")
	graphUserID := os.Getenv("GRAPH_USER_ID")
	tokenURL := os.Getenv("OAUTH_TOKEN_URL")
	clientID := os.Getenv("OAUTH_CLIENT_ID")
	clientSecret := os.Getenv("OAUTH_CLIENT_SECRET")
	tokenScope := os.Getenv("OAUTH_SCOPE")

	// Create AMQP client
	amqpClient, err := amqp.NewClient(amqpURL)
	if err != nil {
		log.Fatalf("Failed to create AMQP client: %v", err)
	}
	defer amqpClient.Close()
	publisher := amqp.NewPublisher(amqpClient)
	notifier := client.NewAMQPNotifier(publisher)

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

	tokens := client.NewClientCredentialsTokenSource(tokenURL, clientID, clientSecret, tokenScope)
	mailbox := client.NewGraphMailbox(graphBaseURL, graphUserID, tokens)

	ingestionService := service.NewIngestionService(financeStorage, mailbox, tokens, notifier)

	validate := validator.New()
	httpServer := server.NewHTTPServer(ingestionService, validate)

	// Start HTTP server in a goroutine
	go func() {
		if err := httpServer.Start(httpAddr); err != nil {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	log.Info("Finance email ingestion service started successfully")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info("Shutting down ingestion service...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Error shutting down HTTP server: %v", err)
	}
}
