package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"ledgerly.io/financemail/internal/core/domain"
	"ledgerly.io/financemail/internal/core/port"
)

const (
	messageKeyPrefix         = "m365:"
	maxAttachmentsPerMessage = 15

	duplicateConfidenceSupplierMatch = 0.98
	duplicateConfidenceNumberOnly    = 0.90

	defaultLedgerDescription = "Email ingested document"
)

// invoiceHintKeywords gate messages without attachments. Precision filter,
// not a correctness gate.
var invoiceHintKeywords = []string{"invoice", "receipt", "vat", "statement"}

type IngestionService struct {
	storage  port.FinanceStorage
	mailbox  port.MailboxClient
	tokens   port.TokenSource
	notifier port.NotifierClient
}

func NewIngestionService(
	storage port.FinanceStorage,
	mailbox port.MailboxClient,
	tokens port.TokenSource,
	notifier port.NotifierClient,
) *IngestionService {
	return &IngestionService{
		storage:  storage,
		mailbox:  mailbox,
		tokens:   tokens,
		notifier: notifier,
	}
}

// Run executes one ingestion pass: list candidate messages newest-first,
// persist each behind its natural keys, evaluate rules, detect duplicate
// invoices, post ledger entries, then append a single audit record. Failures
// of individual messages are collected into the summary; the batch continues.
// Credential or mailbox-listing failures abort before any audit record is
// written.
func (i *IngestionService) Run(ctx context.Context, params domain.RunParams) (*domain.RunSummary, error) {
	params = params.Normalized()

	if _, err := i.tokens.Token(ctx); err != nil {
		return nil, fmt.Errorf("mailbox credential unavailable: %w", err)
	}

	folderID, err := i.resolveFolder(ctx, params.Folder)
	if err != nil {
		return nil, err
	}

	messages, err := i.mailbox.ListMessages(ctx, folderID, params.MaxMessages)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	summary := &domain.RunSummary{RunID: uuid.New()}

	for _, msg := range messages {
		summary.Scanned++

		if !isIngestable(msg) {
			continue
		}

		if err := i.ingestOne(ctx, msg, params.Folder, summary); err != nil {
			key := messageKeyPrefix + msg.ID
			log.WithError(err).WithFields(log.Fields{
				"runID":      summary.RunID,
				"messageKey": key,
			}).Error("Failed to ingest message")
			summary.Failures = append(summary.Failures, domain.RunFailure{
				MessageKey: key,
				Error:      err.Error(),
			})
		}
	}

	auditLog := &domain.FinanceAuditLog{
		ID:                   uuid.New(),
		RunID:                summary.RunID,
		Folder:               params.Folder,
		MaxMessages:          params.MaxMessages,
		Scanned:              summary.Scanned,
		CreatedMessages:      summary.CreatedMessages,
		CreatedDocuments:     summary.CreatedDocuments,
		CreatedLedgerEntries: summary.CreatedLedgerEntries,
		DuplicateCandidates:  summary.DuplicateCandidates,
		Failures:             summary.Failures,
		CreatedAt:            time.Now(),
	}
	if err := i.storage.AppendAuditLog(ctx, auditLog); err != nil {
		return nil, fmt.Errorf("failed to append audit log: %w", err)
	}

	if err := i.notifier.NotifyRunCompleted(ctx, &domain.RunCompletedMessage{
		RunID:                summary.RunID,
		Folder:               params.Folder,
		Scanned:              summary.Scanned,
		CreatedMessages:      summary.CreatedMessages,
		CreatedDocuments:     summary.CreatedDocuments,
		CreatedLedgerEntries: summary.CreatedLedgerEntries,
		DuplicateCandidates:  summary.DuplicateCandidates,
		FailureCount:         len(summary.Failures),
		CompletedAt:          time.Now(),
	}); err != nil {
		log.WithError(err).WithField("runID", summary.RunID).Warn("Failed to publish run completion event")
	}

	log.WithFields(log.Fields{
		"runID":               summary.RunID,
		"scanned":             summary.Scanned,
		"createdMessages":     summary.CreatedMessages,
		"createdDocuments":    summary.CreatedDocuments,
		"createdLedger":       summary.CreatedLedgerEntries,
		"duplicateCandidates": summary.DuplicateCandidates,
		"failures":            len(summary.Failures),
	}).Info("Ingestion run completed")

	return summary, nil
}

// resolveFolder matches the display name case-insensitively against the
// mailbox folder list, falling back to the well-known inbox.
func (i *IngestionService) resolveFolder(ctx context.Context, folderName string) (string, error) {
	folders, err := i.mailbox.ListFolders(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list mail folders: %w", err)
	}

	for _, folder := range folders {
		if strings.EqualFold(folder.DisplayName, folderName) {
			return folder.ID, nil
		}
	}

	log.WithField("folder", folderName).Debug("Folder not resolved, falling back to inbox")
	return "inbox", nil
}

func isIngestable(msg domain.MailMessage) bool {
	if msg.HasAttachments {
		return true
	}
	text := strings.ToLower(msg.Subject + " " + msg.BodyPreview)
	for _, keyword := range invoiceHintKeywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

func (i *IngestionService) ingestOne(ctx context.Context, msg domain.MailMessage, folder string, summary *domain.RunSummary) error {
	record, err := i.ensureMessage(ctx, msg, folder, summary)
	if err != nil {
		return err
	}

	documentIDs, err := i.ingestAttachments(ctx, msg, record, summary)
	if err != nil {
		return err
	}

	invoiceNumber, hasInvoiceNumber := ExtractInvoiceNumber(msg.Subject, msg.BodyPreview)
	amount, hasAmount := ExtractAmount(msg.Subject, msg.BodyPreview)
	var amountRef *decimal.Decimal
	if hasAmount {
		amountRef = &amount
	}

	rctx := domain.RuleContext{
		Subject:     msg.Subject,
		BodyExcerpt: msg.BodyPreview,
		FromAddress: msg.FromAddress,
		Amount:      amountRef,
	}

	categoryID, err := i.resolveCategory(ctx, rctx)
	if err != nil {
		return err
	}

	autoApprove, err := i.decideApproval(ctx, rctx)
	if err != nil {
		return err
	}

	if hasInvoiceNumber {
		isDuplicate, err := i.detectDuplicate(ctx, msg, invoiceNumber, amountRef, documentIDs, summary)
		if err != nil {
			return err
		}
		if isDuplicate {
			// Duplicate handling takes priority over ledger posting.
			return nil
		}
	}

	return i.postLedgerEntry(ctx, msg, amountRef, autoApprove, categoryID, documentIDs, summary)
}

// ensureMessage creates the IngestedMessage behind its natural key, reusing
// the existing row when the provider message was seen before.
func (i *IngestionService) ensureMessage(ctx context.Context, msg domain.MailMessage, folder string, summary *domain.RunSummary) (*domain.IngestedMessage, error) {
	key := messageKeyPrefix + msg.ID

	existing, err := i.storage.GetMessageByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	record := &domain.IngestedMessage{
		ID:          uuid.New(),
		MessageKey:  key,
		Subject:     msg.Subject,
		FromAddress: msg.FromAddress,
		ToAddresses: msg.ToAddresses,
		ReceivedAt:  msg.ReceivedAt,
		Folder:      folder,
		BodyExcerpt: msg.BodyPreview,
		Headers:     msg.Headers,
		CreatedAt:   time.Now(),
	}
	inserted, err := i.storage.CreateMessage(ctx, record)
	if err != nil {
		return nil, err
	}
	if inserted {
		summary.CreatedMessages++
	}
	return record, nil
}

func (i *IngestionService) ingestAttachments(ctx context.Context, msg domain.MailMessage, record *domain.IngestedMessage, summary *domain.RunSummary) (uuid.UUIDs, error) {
	if !msg.HasAttachments {
		return nil, nil
	}

	attachments, err := i.mailbox.ListAttachments(ctx, msg.ID, maxAttachmentsPerMessage)
	if err != nil {
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}

	var documentIDs uuid.UUIDs
	attachmentIDs := make([]string, 0, len(attachments))

	for _, att := range attachments {
		attachmentIDs = append(attachmentIDs, att.ID)
		docKey := fmt.Sprintf("%s%s:%s", messageKeyPrefix, msg.ID, att.ID)

		existing, err := i.storage.GetDocumentByKey(ctx, docKey)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			documentIDs = append(documentIDs, existing.ID)
			continue
		}

		doc := i.buildDocument(msg, att, docKey)
		inserted, err := i.storage.CreateDocument(ctx, doc)
		if err != nil {
			return nil, err
		}
		if inserted {
			summary.CreatedDocuments++
		}
		documentIDs = append(documentIDs, doc.ID)
	}

	// Last write wins: the full set discovered this pass replaces the list.
	if err := i.storage.UpdateMessageAttachments(ctx, record.ID, attachmentIDs); err != nil {
		return nil, err
	}

	return documentIDs, nil
}

// buildDocument extracts invoice fields from the message subject/body, not
// the attachment content.
func (i *IngestionService) buildDocument(msg domain.MailMessage, att domain.MailAttachment, docKey string) *domain.FinanceDocument {
	doc := &domain.FinanceDocument{
		ID:             uuid.New(),
		DocumentKey:    docKey,
		DocType:        domain.DocumentTypeInvoice,
		Filename:       att.Name,
		MimeType:       att.ContentType,
		FileHashSHA256: HashAttachment(msg.ID, att.ID, att.Name, att.ContentBase64),
		Source:         domain.DocumentSourceEmail,
		SourceRef:      msg.ID,
		SupplierName:   msg.FromAddress,
		CreatedAt:      time.Now(),
	}
	if number, ok := ExtractInvoiceNumber(msg.Subject, msg.BodyPreview); ok {
		doc.InvoiceNumber = &number
	}
	if amount, ok := ExtractAmount(msg.Subject, msg.BodyPreview); ok {
		doc.Amount = &amount
	}
	return doc
}

// resolveCategory takes the top categorisation match's setCategoryName and
// resolves it by name. An unresolved name means no category link, not an
// error.
func (i *IngestionService) resolveCategory(ctx context.Context, rctx domain.RuleContext) (*uuid.UUID, error) {
	rules, err := i.storage.ListEnabledRules(ctx, domain.RuleScopeCategorisation)
	if err != nil {
		return nil, err
	}

	results := EvaluateRules(rules, rctx)
	if len(results) == 0 || results[0].Actions.SetCategoryName == "" {
		return nil, nil
	}

	category, err := i.storage.GetCategoryByName(ctx, results[0].Actions.SetCategoryName)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	return &category.ID, nil
}

// decideApproval ORs two signals: any matched approval rule with autoApprove,
// or a trusted-supplier counterparty for the sender.
func (i *IngestionService) decideApproval(ctx context.Context, rctx domain.RuleContext) (bool, error) {
	rules, err := i.storage.ListEnabledRules(ctx, domain.RuleScopeApproval)
	if err != nil {
		return false, err
	}

	for _, result := range EvaluateRules(rules, rctx) {
		if result.Actions.AutoApprove {
			return true, nil
		}
	}

	return i.storage.IsTrustedSupplier(ctx, rctx.FromAddress)
}

// detectDuplicate looks for a pre-existing document with the same invoice
// number, trying a supplier-narrowed match first. On a hit it records a
// reviewable candidate (write-once per duplicate key) and suppresses ledger
// posting for this message.
func (i *IngestionService) detectDuplicate(ctx context.Context, msg domain.MailMessage, invoiceNumber string, amount *decimal.Decimal, documentIDs uuid.UUIDs, summary *domain.RunSummary) (bool, error) {
	supplierMatched := false
	var match *domain.FinanceDocument
	var err error

	if msg.FromAddress != "" {
		match, err = i.storage.FindDocumentByInvoiceNumber(ctx, invoiceNumber, msg.FromAddress, msg.ID)
		if err != nil {
			return false, err
		}
		supplierMatched = match != nil
	}
	if match == nil {
		match, err = i.storage.FindDocumentByInvoiceNumber(ctx, invoiceNumber, "", msg.ID)
		if err != nil {
			return false, err
		}
	}
	if match == nil {
		return false, nil
	}

	duplicateKey := fmt.Sprintf("dup:%s:%s", msg.FromAddress, invoiceNumber)

	existing, err := i.storage.GetDuplicateCandidateByKey(ctx, duplicateKey)
	if err != nil {
		return true, err
	}
	if existing != nil {
		return true, nil
	}

	reasons := []string{"invoice_number_match"}
	confidence := duplicateConfidenceNumberOnly
	if supplierMatched {
		reasons = append(reasons, "supplier_match")
		confidence = duplicateConfidenceSupplierMatch
	} else {
		reasons = append(reasons, "invoice_number_only")
	}

	candidate := &domain.FinanceDuplicateCandidate{
		ID:                 uuid.New(),
		DuplicateKey:       duplicateKey,
		SupplierName:       msg.FromAddress,
		InvoiceNumber:      invoiceNumber,
		Amount:             amount,
		Status:             domain.DuplicateStatusPendingReview,
		Reasons:            reasons,
		Confidence:         confidence,
		ExistingDocumentID: match.ID,
		CreatedAt:          time.Now(),
	}
	if len(documentIDs) > 0 {
		sourceID := documentIDs[0]
		candidate.SourceDocumentID = &sourceID
	}

	inserted, err := i.storage.CreateDuplicateCandidate(ctx, candidate)
	if err != nil {
		return true, err
	}
	if inserted {
		summary.DuplicateCandidates++

		if err := i.notifier.NotifyDuplicateDetected(ctx, &domain.DuplicateDetectedMessage{
			DuplicateKey:  duplicateKey,
			SupplierName:  msg.FromAddress,
			InvoiceNumber: invoiceNumber,
			Confidence:    confidence,
			DetectedAt:    time.Now(),
		}); err != nil {
			log.WithError(err).WithField("duplicateKey", duplicateKey).Warn("Failed to publish duplicate event")
		}
	}

	return true, nil
}

func (i *IngestionService) postLedgerEntry(ctx context.Context, msg domain.MailMessage, amount *decimal.Decimal, autoApprove bool, categoryID *uuid.UUID, documentIDs uuid.UUIDs, summary *domain.RunSummary) error {
	description := msg.Subject
	if description == "" {
		description = defaultLedgerDescription
	}
	gross := decimal.Zero
	if amount != nil {
		gross = *amount
	}

	existing, err := i.storage.FindLedgerEntry(ctx, domain.LedgerCreatedFromEmail, description, gross)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	status := domain.ApprovalStatusNeedsApproval
	if autoApprove {
		status = domain.ApprovalStatusApproved
	}

	entry := &domain.FinanceLedgerEntry{
		ID:             uuid.New(),
		EntryDate:      msg.ReceivedAt,
		Direction:      domain.LedgerDirectionExpense,
		Description:    description,
		GrossAmount:    gross,
		Currency:       domain.DefaultCurrency,
		PaymentStatus:  domain.PaymentStatusUnpaid,
		ApprovalStatus: status,
		CreatedFrom:    domain.LedgerCreatedFromEmail,
		DocumentIDs:    documentIDs,
		CategoryID:     categoryID,
		CreatedAt:      time.Now(),
	}
	inserted, err := i.storage.CreateLedgerEntry(ctx, entry)
	if err != nil {
		return err
	}
	if inserted {
		summary.CreatedLedgerEntries++
	}
	return nil
}
