package handler

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"

	"ledgerly.io/financemail/internal/core/domain"
	"ledgerly.io/financemail/internal/core/port"
)

type reviewJob struct {
	message domain.DuplicateDetectedMessage
}

// AMQPConsumer feeds duplicate-detected events into a worker pool running the
// review service.
type AMQPConsumer struct {
	reviewService port.DuplicateReviewService
	validate      *validator.Validate
	jobQueue      chan reviewJob
	wg            sync.WaitGroup
	numWorkers    int
}

func NewAMQPConsumer(
	reviewService port.DuplicateReviewService,
	validate *validator.Validate,
	numWorkers int,
	queueSize int,
) *AMQPConsumer {
	return &AMQPConsumer{
		reviewService: reviewService,
		validate:      validate,
		jobQueue:      make(chan reviewJob, queueSize),
		numWorkers:    numWorkers,
	}
}

// Start launches the worker pool. Call this before consuming messages.
func (c *AMQPConsumer) Start(ctx context.Context) {
	for i := range c.numWorkers {
		c.wg.Add(1)
		go c.worker(ctx, i)
	}
	log.Infof("Started %d duplicate review workers", c.numWorkers)
}

// Stop gracefully shuts down workers after draining the queue.
func (c *AMQPConsumer) Stop(ctx context.Context) {
	close(c.jobQueue)

	workersDone := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(workersDone)
	}()

	select {
	case <-workersDone:
		log.Info("All duplicate review workers stopped after draining")
	case <-ctx.Done():
		log.Warn("Shutdown deadline reached before workers drained")
	}
}

func (c *AMQPConsumer) worker(ctx context.Context, workerID int) {
	defer c.wg.Done()
	for {
		select {
		case <-ctx.Done():
			log.Warnf("[ReviewWorker %d] Context cancelled, stopping", workerID)
			return
		case job, ok := <-c.jobQueue:
			if !ok {
				log.Infof("[ReviewWorker %d] Queue closed, stopping", workerID)
				return
			}
			jobCtx, cancel := context.WithTimeout(ctx, time.Minute)
			if err := c.reviewService.Review(jobCtx, job.message); err != nil {
				log.WithError(err).WithField("duplicateKey", job.message.DuplicateKey).Error("Duplicate review failed")
			}
			cancel()
		}
	}
}

func (c *AMQPConsumer) Handle(ctx context.Context, delivery *amqp.Delivery) {
	var err error

	switch delivery.RoutingKey {
	case domain.RoutingKeyDuplicateDetected:
		err = c.handleDuplicateDetectedMessage(ctx, delivery)
	default:
		log.Errorf("unsupported routing key %s", delivery.RoutingKey)
	}

	if err != nil {
		delivery.Nack(false, false) // Send to a retry / dead-letter queue instead
		return
	}
	delivery.Ack(false)
}

func (c *AMQPConsumer) handleDuplicateDetectedMessage(_ context.Context, delivery *amqp.Delivery) error {
	var message domain.DuplicateDetectedMessage

	if err := json.Unmarshal(delivery.Body, &message); err != nil {
		log.Errorf("failed to unmarshal duplicate event: %v", err)
		return err
	}

	if err := c.validate.Struct(message); err != nil {
		log.Errorf("duplicate event validation failed: %v", err)
		return err
	}

	log.WithFields(log.Fields{
		"duplicateKey":  message.DuplicateKey,
		"invoiceNumber": message.InvoiceNumber,
		"confidence":    message.Confidence,
		"detectedAt":    message.DetectedAt,
	}).Info("Received duplicate candidate for review")

	// Submit to worker pool (blocks if queue is full, providing backpressure)
	c.jobQueue <- reviewJob{message: message}

	return nil
}
