package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DocumentSourceEmail = "email"
	DocumentTypeInvoice = "invoice"

	LedgerDirectionExpense = "expense"
	LedgerCreatedFromEmail = "email_ingest"
	PaymentStatusUnpaid    = "unpaid"
	DefaultCurrency        = "GBP"
)

type ApprovalStatus string

const (
	ApprovalStatusApproved      ApprovalStatus = "approved"
	ApprovalStatusNeedsApproval ApprovalStatus = "needs_approval"
)

type DuplicateStatus string

const (
	DuplicateStatusPendingReview   DuplicateStatus = "pending_review"
	DuplicateStatusLikelyDuplicate DuplicateStatus = "likely_duplicate"
)

// IngestedMessage is the persisted snapshot of a mailbox message. MessageKey
// is the natural key ("m365:" + provider message id); at most one row exists
// per key. Only AttachmentIDs is updated after creation.
type IngestedMessage struct {
	ID            uuid.UUID
	MessageKey    string
	Subject       string
	FromAddress   string
	ToAddresses   []string
	ReceivedAt    time.Time
	Folder        string
	BodyExcerpt   string
	Headers       map[string]string
	AttachmentIDs []string
	CreatedAt     time.Time
}

// FinanceDocument is one ingested attachment. DocumentKey carries identity
// ("m365:{messageID}:{attachmentID}"); FileHashSHA256 is only used for change
// detection. Immutable once created.
type FinanceDocument struct {
	ID             uuid.UUID
	DocumentKey    string
	DocType        string
	Filename       string
	MimeType       string
	FileHashSHA256 string
	StorageLocator string
	Source         string
	SourceRef      string
	SupplierName   string
	Amount         *decimal.Decimal
	InvoiceNumber  *string
	CreatedAt      time.Time
}

type FinanceDuplicateCandidate struct {
	ID                 uuid.UUID
	DuplicateKey       string
	SupplierName       string
	InvoiceNumber      string
	Amount             *decimal.Decimal
	Status             DuplicateStatus
	Reasons            []string
	Confidence         float64
	SourceDocumentID   *uuid.UUID
	ExistingDocumentID uuid.UUID
	CreatedAt          time.Time
}

// FinanceLedgerEntry has a soft natural key (CreatedFrom, Description,
// GrossAmount) protecting against re-posting the same message across runs.
type FinanceLedgerEntry struct {
	ID             uuid.UUID
	EntryDate      time.Time
	Direction      string
	Description    string
	GrossAmount    decimal.Decimal
	Currency       string
	PaymentStatus  string
	ApprovalStatus ApprovalStatus
	CreatedFrom    string
	DocumentIDs    uuid.UUIDs
	CategoryID     *uuid.UUID
	CreatedAt      time.Time
}

type FinanceCounterparty struct {
	ID              uuid.UUID
	Name            string
	Aliases         []string
	TrustedSupplier bool
}

type FinanceCategory struct {
	ID   uuid.UUID
	Name string
}

// FinanceAuditLog is one append-only record per ingestion run.
type FinanceAuditLog struct {
	ID                   uuid.UUID
	RunID                uuid.UUID
	Folder               string
	MaxMessages          int
	Scanned              int
	CreatedMessages      int
	CreatedDocuments     int
	CreatedLedgerEntries int
	DuplicateCandidates  int
	Failures             []RunFailure
	CreatedAt            time.Time
}

type RunFailure struct {
	MessageKey string `json:"message_key"`
	Error      string `json:"error"`
}

type RunParams struct {
	MaxMessages int
	Folder      string
}

const (
	DefaultMaxMessages = 30
	MaxMessagesLimit   = 100
	DefaultFolder      = "Inbox"
)

// Normalized clamps MaxMessages into [1,100] (default 30) and defaults the
// folder to Inbox.
func (p RunParams) Normalized() RunParams {
	if p.MaxMessages <= 0 {
		p.MaxMessages = DefaultMaxMessages
	}
	if p.MaxMessages > MaxMessagesLimit {
		p.MaxMessages = MaxMessagesLimit
	}
	if p.Folder == "" {
		p.Folder = DefaultFolder
	}
	return p
}

type RunSummary struct {
	RunID                uuid.UUID    `json:"run_id"`
	Scanned              int          `json:"scanned"`
	CreatedMessages      int          `json:"created_messages"`
	CreatedDocuments     int          `json:"created_documents"`
	CreatedLedgerEntries int          `json:"created_ledger_entries"`
	DuplicateCandidates  int          `json:"duplicate_candidates"`
	Failures             []RunFailure `json:"failures,omitempty"`
}
