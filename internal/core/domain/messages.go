package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	FinanceExchange = "finance"

	DuplicateReviewQueue = "finance.duplicate.review"

	RoutingKeyRunCompleted      = "finance.run.completed"
	RoutingKeyDuplicateDetected = "finance.duplicate.detected"
)

type RunCompletedMessage struct {
	RunID                uuid.UUID `json:"run_id" validate:"required"`
	Folder               string    `json:"folder" validate:"required"`
	Scanned              int       `json:"scanned"`
	CreatedMessages      int       `json:"created_messages"`
	CreatedDocuments     int       `json:"created_documents"`
	CreatedLedgerEntries int       `json:"created_ledger_entries"`
	DuplicateCandidates  int       `json:"duplicate_candidates"`
	FailureCount         int       `json:"failure_count"`
	CompletedAt          time.Time `json:"completed_at" validate:"required"`
}

type DuplicateDetectedMessage struct {
	DuplicateKey  string    `json:"duplicate_key" validate:"required"`
	SupplierName  string    `json:"supplier_name"`
	InvoiceNumber string    `json:"invoice_number" validate:"required"`
	Confidence    float64   `json:"confidence" validate:"gte=0,lte=1"`
	DetectedAt    time.Time `json:"detected_at" validate:"required"`
}
