package port

import (
	"context"

	"ledgerly.io/financemail/internal/core/domain"
)

// MailboxClient is the mail-provider collaborator.
type MailboxClient interface {
	ListFolders(ctx context.Context) ([]domain.MailFolder, error)
	// ListMessages returns up to top messages from the folder, newest first,
	// with a bounded field projection.
	ListMessages(ctx context.Context, folderID string, top int) ([]domain.MailMessage, error)
	ListAttachments(ctx context.Context, messageID string, top int) ([]domain.MailAttachment, error)
}

// TokenSource supplies a valid bearer token, refreshing transparently when
// the cached one is within 60s of expiry.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

type NotifierClient interface {
	NotifyRunCompleted(ctx context.Context, message *domain.RunCompletedMessage) error
	NotifyDuplicateDetected(ctx context.Context, message *domain.DuplicateDetectedMessage) error
}
