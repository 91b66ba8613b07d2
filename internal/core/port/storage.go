package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"ledgerly.io/financemail/internal/core/domain"
)

// FinanceStorage is the persistence collaborator. Lookups return (nil, nil)
// when no row matches; Create methods report whether a row was actually
// inserted, so a natural-key conflict reads as "already exists" rather than
// an error.
type FinanceStorage interface {
	GetMessageByKey(ctx context.Context, messageKey string) (*domain.IngestedMessage, error)
	CreateMessage(ctx context.Context, message *domain.IngestedMessage) (bool, error)
	UpdateMessageAttachments(ctx context.Context, messageID uuid.UUID, attachmentIDs []string) error

	GetDocumentByKey(ctx context.Context, documentKey string) (*domain.FinanceDocument, error)
	GetDocumentByID(ctx context.Context, documentID uuid.UUID) (*domain.FinanceDocument, error)
	CreateDocument(ctx context.Context, document *domain.FinanceDocument) (bool, error)
	// FindDocumentByInvoiceNumber narrows by supplier when supplierName is
	// non-empty and never returns documents sourced from excludeSourceRef.
	FindDocumentByInvoiceNumber(ctx context.Context, invoiceNumber, supplierName, excludeSourceRef string) (*domain.FinanceDocument, error)

	GetDuplicateCandidateByKey(ctx context.Context, duplicateKey string) (*domain.FinanceDuplicateCandidate, error)
	CreateDuplicateCandidate(ctx context.Context, candidate *domain.FinanceDuplicateCandidate) (bool, error)
	UpdateDuplicateCandidateStatus(ctx context.Context, candidateID uuid.UUID, status domain.DuplicateStatus) error

	FindLedgerEntry(ctx context.Context, createdFrom, description string, grossAmount decimal.Decimal) (*domain.FinanceLedgerEntry, error)
	CreateLedgerEntry(ctx context.Context, entry *domain.FinanceLedgerEntry) (bool, error)

	ListEnabledRules(ctx context.Context, scope domain.RuleScope) ([]domain.FinanceRule, error)
	GetCategoryByName(ctx context.Context, name string) (*domain.FinanceCategory, error)
	// IsTrustedSupplier matches the sender against counterparty names exactly
	// or against alias containment.
	IsTrustedSupplier(ctx context.Context, sender string) (bool, error)

	AppendAuditLog(ctx context.Context, auditLog *domain.FinanceAuditLog) error
}
