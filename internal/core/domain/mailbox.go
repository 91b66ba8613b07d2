package domain

import "time"

// MailFolder, MailMessage and MailAttachment are the normalized shapes the
// mailbox collaborator returns; the pipeline never sees provider payloads.

type MailFolder struct {
	ID          string
	DisplayName string
}

type MailMessage struct {
	ID                string
	InternetMessageID string
	Subject           string
	FromAddress       string
	ToAddresses       []string
	ReceivedAt        time.Time
	BodyPreview       string
	HasAttachments    bool
	Headers           map[string]string
}

type MailAttachment struct {
	ID            string
	Name          string
	ContentType   string
	Size          int
	ContentBase64 string
}
