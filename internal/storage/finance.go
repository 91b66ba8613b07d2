package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"ledgerly.io/financemail/internal/core/domain"
)

// FinanceStorage persists the ingestion entities. Every create targets the
// entity's natural-key unique index with ON CONFLICT DO NOTHING, so a lost
// check-then-create race degrades to "already exists" instead of a duplicate
// row or an error.
type FinanceStorage struct {
	db *PostgresDB
}

func NewFinanceStorage(db *PostgresDB) *FinanceStorage {
	return &FinanceStorage{
		db: db,
	}
}

func (s *FinanceStorage) GetMessageByKey(ctx context.Context, messageKey string) (*domain.IngestedMessage, error) {
	var msg domain.IngestedMessage
	err := s.db.QueryRow(ctx,
		`SELECT id, message_key, subject, from_address, to_addresses, received_at,
		        folder, body_excerpt, headers, attachment_ids, created_at
		 FROM ingested_messages
		 WHERE message_key = $1`,
		messageKey,
	).Scan(
		&msg.ID,
		&msg.MessageKey,
		&msg.Subject,
		&msg.FromAddress,
		&msg.ToAddresses,
		&msg.ReceivedAt,
		&msg.Folder,
		&msg.BodyExcerpt,
		&msg.Headers,
		&msg.AttachmentIDs,
		&msg.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

func (s *FinanceStorage) CreateMessage(ctx context.Context, message *domain.IngestedMessage) (bool, error) {
	tag, err := s.db.Exec(ctx,
		`INSERT INTO ingested_messages
		     (id, message_key, subject, from_address, to_addresses, received_at,
		      folder, body_excerpt, headers, attachment_ids, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 ON CONFLICT (message_key) DO NOTHING`,
		message.ID,
		message.MessageKey,
		message.Subject,
		message.FromAddress,
		message.ToAddresses,
		message.ReceivedAt,
		message.Folder,
		message.BodyExcerpt,
		message.Headers,
		message.AttachmentIDs,
		message.CreatedAt,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (s *FinanceStorage) UpdateMessageAttachments(ctx context.Context, messageID uuid.UUID, attachmentIDs []string) error {
	_, err := s.db.Exec(ctx,
		`UPDATE ingested_messages SET attachment_ids = $2 WHERE id = $1`,
		messageID,
		attachmentIDs,
	)
	return err
}

const documentColumns = `id, document_key, doc_type, filename, mime_type, file_hash_sha256,
	storage_locator, source, source_ref, supplier_name, amount, invoice_number, created_at`

func (s *FinanceStorage) GetDocumentByKey(ctx context.Context, documentKey string) (*domain.FinanceDocument, error) {
	return s.queryDocument(ctx,
		`SELECT `+documentColumns+` FROM finance_documents WHERE document_key = $1`,
		documentKey,
	)
}

func (s *FinanceStorage) GetDocumentByID(ctx context.Context, documentID uuid.UUID) (*domain.FinanceDocument, error) {
	return s.queryDocument(ctx,
		`SELECT `+documentColumns+` FROM finance_documents WHERE id = $1`,
		documentID,
	)
}

// FindDocumentByInvoiceNumber returns the oldest document carrying the
// invoice number, optionally narrowed by supplier, never one sourced from
// excludeSourceRef (a message must not collide with its own attachments).
func (s *FinanceStorage) FindDocumentByInvoiceNumber(ctx context.Context, invoiceNumber, supplierName, excludeSourceRef string) (*domain.FinanceDocument, error) {
	query := `SELECT ` + documentColumns + `
		 FROM finance_documents
		 WHERE invoice_number = $1 AND source_ref <> $2`
	args := []any{invoiceNumber, excludeSourceRef}
	if supplierName != "" {
		query += ` AND LOWER(supplier_name) = LOWER($3)`
		args = append(args, supplierName)
	}
	query += ` ORDER BY created_at ASC LIMIT 1`

	return s.queryDocument(ctx, query, args...)
}

func (s *FinanceStorage) queryDocument(ctx context.Context, query string, args ...any) (*domain.FinanceDocument, error) {
	var doc domain.FinanceDocument
	var amount decimal.NullDecimal
	var invoiceNumber *string

	err := s.db.QueryRow(ctx, query, args...).Scan(
		&doc.ID,
		&doc.DocumentKey,
		&doc.DocType,
		&doc.Filename,
		&doc.MimeType,
		&doc.FileHashSHA256,
		&doc.StorageLocator,
		&doc.Source,
		&doc.SourceRef,
		&doc.SupplierName,
		&amount,
		&invoiceNumber,
		&doc.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if amount.Valid {
		doc.Amount = &amount.Decimal
	}
	doc.InvoiceNumber = invoiceNumber
	return &doc, nil
}

func (s *FinanceStorage) CreateDocument(ctx context.Context, document *domain.FinanceDocument) (bool, error) {
	tag, err := s.db.Exec(ctx,
		`INSERT INTO finance_documents
		     (id, document_key, doc_type, filename, mime_type, file_hash_sha256,
		      storage_locator, source, source_ref, supplier_name, amount, invoice_number, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		 ON CONFLICT (document_key) DO NOTHING`,
		document.ID,
		document.DocumentKey,
		document.DocType,
		document.Filename,
		document.MimeType,
		document.FileHashSHA256,
		document.StorageLocator,
		document.Source,
		document.SourceRef,
		document.SupplierName,
		nullDecimal(document.Amount),
		document.InvoiceNumber,
		document.CreatedAt,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (s *FinanceStorage) GetDuplicateCandidateByKey(ctx context.Context, duplicateKey string) (*domain.FinanceDuplicateCandidate, error) {
	var cand domain.FinanceDuplicateCandidate
	var amount decimal.NullDecimal
	var sourceDocID uuid.NullUUID

	err := s.db.QueryRow(ctx,
		`SELECT id, duplicate_key, supplier_name, invoice_number, amount, status,
		        reasons, confidence, source_document_id, existing_document_id, created_at
		 FROM finance_duplicate_candidates
		 WHERE duplicate_key = $1`,
		duplicateKey,
	).Scan(
		&cand.ID,
		&cand.DuplicateKey,
		&cand.SupplierName,
		&cand.InvoiceNumber,
		&amount,
		&cand.Status,
		&cand.Reasons,
		&cand.Confidence,
		&sourceDocID,
		&cand.ExistingDocumentID,
		&cand.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if amount.Valid {
		cand.Amount = &amount.Decimal
	}
	if sourceDocID.Valid {
		cand.SourceDocumentID = &sourceDocID.UUID
	}
	return &cand, nil
}

func (s *FinanceStorage) CreateDuplicateCandidate(ctx context.Context, candidate *domain.FinanceDuplicateCandidate) (bool, error) {
	tag, err := s.db.Exec(ctx,
		`INSERT INTO finance_duplicate_candidates
		     (id, duplicate_key, supplier_name, invoice_number, amount, status,
		      reasons, confidence, source_document_id, existing_document_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 ON CONFLICT (duplicate_key) DO NOTHING`,
		candidate.ID,
		candidate.DuplicateKey,
		candidate.SupplierName,
		candidate.InvoiceNumber,
		nullDecimal(candidate.Amount),
		candidate.Status,
		candidate.Reasons,
		candidate.Confidence,
		nullUUID(candidate.SourceDocumentID),
		candidate.ExistingDocumentID,
		candidate.CreatedAt,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (s *FinanceStorage) UpdateDuplicateCandidateStatus(ctx context.Context, candidateID uuid.UUID, status domain.DuplicateStatus) error {
	_, err := s.db.Exec(ctx,
		`UPDATE finance_duplicate_candidates SET status = $2 WHERE id = $1`,
		candidateID,
		status,
	)
	return err
}

func (s *FinanceStorage) FindLedgerEntry(ctx context.Context, createdFrom, description string, grossAmount decimal.Decimal) (*domain.FinanceLedgerEntry, error) {
	var entry domain.FinanceLedgerEntry
	var documentIDs []string
	var categoryID uuid.NullUUID

	err := s.db.QueryRow(ctx,
		`SELECT id, entry_date, direction, description, gross_amount, currency,
		        payment_status, approval_status, created_from, document_ids, category_id, created_at
		 FROM finance_ledger_entries
		 WHERE created_from = $1 AND description = $2 AND gross_amount = $3`,
		createdFrom,
		description,
		grossAmount,
	).Scan(
		&entry.ID,
		&entry.EntryDate,
		&entry.Direction,
		&entry.Description,
		&entry.GrossAmount,
		&entry.Currency,
		&entry.PaymentStatus,
		&entry.ApprovalStatus,
		&entry.CreatedFrom,
		&documentIDs,
		&categoryID,
		&entry.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	entry.DocumentIDs, err = parseUUIDs(documentIDs)
	if err != nil {
		return nil, fmt.Errorf("corrupt document_ids on ledger entry %s: %w", entry.ID, err)
	}
	if categoryID.Valid {
		entry.CategoryID = &categoryID.UUID
	}
	return &entry, nil
}

func (s *FinanceStorage) CreateLedgerEntry(ctx context.Context, entry *domain.FinanceLedgerEntry) (bool, error) {
	tag, err := s.db.Exec(ctx,
		`INSERT INTO finance_ledger_entries
		     (id, entry_date, direction, description, gross_amount, currency,
		      payment_status, approval_status, created_from, document_ids, category_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 ON CONFLICT (created_from, description, gross_amount) DO NOTHING`,
		entry.ID,
		entry.EntryDate,
		entry.Direction,
		entry.Description,
		entry.GrossAmount,
		entry.Currency,
		entry.PaymentStatus,
		entry.ApprovalStatus,
		entry.CreatedFrom,
		entry.DocumentIDs.Strings(),
		nullUUID(entry.CategoryID),
		entry.CreatedAt,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (s *FinanceStorage) ListEnabledRules(ctx context.Context, scope domain.RuleScope) ([]domain.FinanceRule, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, name, scope, priority, enabled, conditions, actions, stop_processing
		 FROM finance_rules
		 WHERE scope = $1 AND enabled
		 ORDER BY priority ASC NULLS LAST, created_at ASC`,
		scope,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rules []domain.FinanceRule
	for rows.Next() {
		var rule domain.FinanceRule
		var conditions, actions []byte
		err := rows.Scan(
			&rule.ID,
			&rule.Name,
			&rule.Scope,
			&rule.Priority,
			&rule.Enabled,
			&conditions,
			&actions,
			&rule.StopProcessing,
		)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(conditions, &rule.Conditions); err != nil {
			return nil, fmt.Errorf("corrupt conditions on rule %s: %w", rule.ID, err)
		}
		if err := json.Unmarshal(actions, &rule.Actions); err != nil {
			return nil, fmt.Errorf("corrupt actions on rule %s: %w", rule.ID, err)
		}
		rules = append(rules, rule)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return rules, nil
}

func (s *FinanceStorage) GetCategoryByName(ctx context.Context, name string) (*domain.FinanceCategory, error) {
	var category domain.FinanceCategory
	err := s.db.QueryRow(ctx,
		`SELECT id, name FROM finance_categories WHERE LOWER(name) = LOWER($1)`,
		name,
	).Scan(&category.ID, &category.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *FinanceStorage) IsTrustedSupplier(ctx context.Context, sender string) (bool, error) {
	if sender == "" {
		return false, nil
	}

	var trusted bool
	err := s.db.QueryRow(ctx,
		`SELECT EXISTS (
		     SELECT 1 FROM finance_counterparties
		     WHERE trusted_supplier
		       AND (LOWER(name) = LOWER($1)
		            OR EXISTS (
		                SELECT 1 FROM unnest(aliases) AS alias
		                WHERE alias <> '' AND POSITION(LOWER(alias) IN LOWER($1)) > 0
		            ))
		 )`,
		sender,
	).Scan(&trusted)
	if err != nil {
		return false, err
	}
	return trusted, nil
}

func (s *FinanceStorage) AppendAuditLog(ctx context.Context, auditLog *domain.FinanceAuditLog) error {
	failures, err := json.Marshal(auditLog.Failures)
	if err != nil {
		return fmt.Errorf("failed to marshal run failures: %w", err)
	}

	_, err = s.db.Exec(ctx,
		`INSERT INTO finance_audit_logs
		     (id, run_id, folder, max_messages, scanned, created_messages,
		      created_documents, created_ledger_entries, duplicate_candidates, failures, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		auditLog.ID,
		auditLog.RunID,
		auditLog.Folder,
		auditLog.MaxMessages,
		auditLog.Scanned,
		auditLog.CreatedMessages,
		auditLog.CreatedDocuments,
		auditLog.CreatedLedgerEntries,
		auditLog.DuplicateCandidates,
		failures,
		auditLog.CreatedAt,
	)
	return err
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func nullUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}

func parseUUIDs(values []string) (uuid.UUIDs, error) {
	ids := make(uuid.UUIDs, 0, len(values))
	for _, value := range values {
		id, err := uuid.Parse(value)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
