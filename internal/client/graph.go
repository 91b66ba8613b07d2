package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"time"

	log "github.com/sirupsen/logrus"

	"ledgerly.io/financemail/internal/core/domain"
	"ledgerly.io/financemail/internal/core/port"
)

const (
	defaultGraphBaseURL = "https://graph.microsoft.com/v1.0"

	messageSelectFields    = "id,subject,from,toRecipients,receivedDateTime,bodyPreview,hasAttachments,internetMessageId"
	attachmentSelectFields = "id,name,contentType,size,contentBytes"

	graphMaxAttempts    = 3
	graphInitialBackoff = 500 * time.Millisecond
	graphRequestTimeout = 30 * time.Second
)

// GraphMailbox adapts the Microsoft Graph REST API to the mailbox port.
// Transient responses (429 and 5xx) are retried with exponential backoff and
// jitter; everything else surfaces immediately.
type GraphMailbox struct {
	httpClient *http.Client
	baseURL    string
	userID     string
	tokens     port.TokenSource
}

func NewGraphMailbox(baseURL, userID string, tokens port.TokenSource) *GraphMailbox {
	if baseURL == "" {
		baseURL = defaultGraphBaseURL
	}
	return &GraphMailbox{
		httpClient: &http.Client{Timeout: graphRequestTimeout},
		baseURL:    baseURL,
		userID:     userID,
		tokens:     tokens,
	}
}

type graphListResponse[T any] struct {
	Value []T `json:"value"`
}

type graphFolder struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
}

type graphEmailAddress struct {
	EmailAddress struct {
		Address string `json:"address"`
	} `json:"emailAddress"`
}

type graphMessage struct {
	ID                string              `json:"id"`
	Subject           string              `json:"subject"`
	From              *graphEmailAddress  `json:"from"`
	ToRecipients      []graphEmailAddress `json:"toRecipients"`
	ReceivedDateTime  time.Time           `json:"receivedDateTime"`
	BodyPreview       string              `json:"bodyPreview"`
	HasAttachments    bool                `json:"hasAttachments"`
	InternetMessageID string              `json:"internetMessageId"`
}

type graphAttachment struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ContentType  string `json:"contentType"`
	Size         int    `json:"size"`
	ContentBytes string `json:"contentBytes"`
}

func (g *GraphMailbox) ListFolders(ctx context.Context) ([]domain.MailFolder, error) {
	endpoint := fmt.Sprintf("%s/users/%s/mailFolders?%s", g.baseURL, url.PathEscape(g.userID),
		url.Values{"$select": {"id,displayName"}}.Encode())

	var resp graphListResponse[graphFolder]
	if err := g.get(ctx, endpoint, &resp); err != nil {
		return nil, err
	}

	folders := make([]domain.MailFolder, 0, len(resp.Value))
	for _, f := range resp.Value {
		folders = append(folders, domain.MailFolder{ID: f.ID, DisplayName: f.DisplayName})
	}
	return folders, nil
}

func (g *GraphMailbox) ListMessages(ctx context.Context, folderID string, top int) ([]domain.MailMessage, error) {
	query := url.Values{
		"$top":     {fmt.Sprintf("%d", top)},
		"$orderby": {"receivedDateTime desc"},
		"$select":  {messageSelectFields},
	}
	endpoint := fmt.Sprintf("%s/users/%s/mailFolders/%s/messages?%s",
		g.baseURL, url.PathEscape(g.userID), url.PathEscape(folderID), query.Encode())

	var resp graphListResponse[graphMessage]
	if err := g.get(ctx, endpoint, &resp); err != nil {
		return nil, err
	}

	messages := make([]domain.MailMessage, 0, len(resp.Value))
	for _, m := range resp.Value {
		messages = append(messages, normalizeGraphMessage(m))
	}
	return messages, nil
}

func (g *GraphMailbox) ListAttachments(ctx context.Context, messageID string, top int) ([]domain.MailAttachment, error) {
	query := url.Values{
		"$top":    {fmt.Sprintf("%d", top)},
		"$select": {attachmentSelectFields},
	}
	endpoint := fmt.Sprintf("%s/users/%s/messages/%s/attachments?%s",
		g.baseURL, url.PathEscape(g.userID), url.PathEscape(messageID), query.Encode())

	var resp graphListResponse[graphAttachment]
	if err := g.get(ctx, endpoint, &resp); err != nil {
		return nil, err
	}

	attachments := make([]domain.MailAttachment, 0, len(resp.Value))
	for _, a := range resp.Value {
		attachments = append(attachments, domain.MailAttachment{
			ID:            a.ID,
			Name:          a.Name,
			ContentType:   a.ContentType,
			Size:          a.Size,
			ContentBase64: a.ContentBytes,
		})
	}
	return attachments, nil
}

func normalizeGraphMessage(m graphMessage) domain.MailMessage {
	msg := domain.MailMessage{
		ID:                m.ID,
		InternetMessageID: m.InternetMessageID,
		Subject:           m.Subject,
		ReceivedAt:        m.ReceivedDateTime,
		BodyPreview:       m.BodyPreview,
		HasAttachments:    m.HasAttachments,
	}
	if m.From != nil {
		msg.FromAddress = m.From.EmailAddress.Address
	}
	for _, r := range m.ToRecipients {
		msg.ToAddresses = append(msg.ToAddresses, r.EmailAddress.Address)
	}
	return msg
}

func (g *GraphMailbox) get(ctx context.Context, endpoint string, out any) error {
	var lastErr error

	for attempt := 0; attempt < graphMaxAttempts; attempt++ {
		if attempt > 0 {
			backoff := graphInitialBackoff << (attempt - 1)
			jitter := time.Duration(rand.Int63n(int64(backoff / 2)))
			select {
			case <-time.After(backoff + jitter):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		token, err := g.tokens.Token(ctx)
		if err != nil {
			return fmt.Errorf("failed to obtain access token: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Accept", "application/json")

		resp, err := g.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("graph request failed with status %d", resp.StatusCode)
			log.WithFields(log.Fields{
				"status":  resp.StatusCode,
				"attempt": attempt + 1,
			}).Warn("Transient Graph API failure, retrying")
			continue
		}
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("graph request failed with status %d: %s", resp.StatusCode, body)
		}

		return json.Unmarshal(body, out)
	}

	return fmt.Errorf("graph request failed after %d attempts: %w", graphMaxAttempts, lastErr)
}
