package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"ledgerly.io/financemail/mocks"
)

func newTokenMock(t *testing.T) *mocks.TokenSource {
	tokens := &mocks.TokenSource{}
	tokens.EXPECT().Token(mock.Anything).Return("test-token", nil).Maybe()
	t.Cleanup(func() { tokens.AssertExpectations(t) })
	return tokens
}

func TestGraphMailbox_ListFolders(t *testing.T) {
	var authHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		assert.Equal(t, "/users/finance@ledgerly.io/mailFolders", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"value":[{"id":"f1","displayName":"Inbox"},{"id":"f2","displayName":"Archive"}]}`))
	}))
	defer server.Close()

	mailbox := NewGraphMailbox(server.URL, "finance@ledgerly.io", newTokenMock(t))

	folders, err := mailbox.ListFolders(context.Background())

	require.NoError(t, err)
	require.Len(t, folders, 2)
	assert.Equal(t, "f1", folders[0].ID)
	assert.Equal(t, "Inbox", folders[0].DisplayName)
	assert.Equal(t, "Bearer test-token", authHeader)
}

func TestGraphMailbox_ListMessagesNormalizes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "25", r.URL.Query().Get("$top"))
		assert.Equal(t, "receivedDateTime desc", r.URL.Query().Get("$orderby"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"value":[{
			"id":"msg-1",
			"subject":"Invoice INV-4821",
			"from":{"emailAddress":{"address":"billing@acme.co.uk"}},
			"toRecipients":[{"emailAddress":{"address":"accounts@ledgerly.io"}}],
			"receivedDateTime":"2026-08-29T10:00:00Z",
			"bodyPreview":"Total due £123.45",
			"hasAttachments":true,
			"internetMessageId":"<abc@acme.co.uk>"
		}]}`))
	}))
	defer server.Close()

	mailbox := NewGraphMailbox(server.URL, "finance@ledgerly.io", newTokenMock(t))

	messages, err := mailbox.ListMessages(context.Background(), "folder-1", 25)

	require.NoError(t, err)
	require.Len(t, messages, 1)
	msg := messages[0]
	assert.Equal(t, "msg-1", msg.ID)
	assert.Equal(t, "Invoice INV-4821", msg.Subject)
	assert.Equal(t, "billing@acme.co.uk", msg.FromAddress)
	assert.Equal(t, []string{"accounts@ledgerly.io"}, msg.ToAddresses)
	assert.Equal(t, time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC), msg.ReceivedAt)
	assert.True(t, msg.HasAttachments)
	assert.Equal(t, "<abc@acme.co.uk>", msg.InternetMessageID)
}

func TestGraphMailbox_ListAttachments(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/finance@ledgerly.io/messages/msg-1/attachments", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"value":[{"id":"att-1","name":"inv.pdf","contentType":"application/pdf","size":1024,"contentBytes":"JVBERi0xLjQK"}]}`))
	}))
	defer server.Close()

	mailbox := NewGraphMailbox(server.URL, "finance@ledgerly.io", newTokenMock(t))

	attachments, err := mailbox.ListAttachments(context.Background(), "msg-1", 15)

	require.NoError(t, err)
	require.Len(t, attachments, 1)
	assert.Equal(t, "att-1", attachments[0].ID)
	assert.Equal(t, "inv.pdf", attachments[0].Name)
	assert.Equal(t, "application/pdf", attachments[0].ContentType)
	assert.Equal(t, 1024, attachments[0].Size)
	assert.Equal(t, "JVBERi0xLjQK", attachments[0].ContentBase64)
}

func TestGraphMailbox_RetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"value":[]}`))
	}))
	defer server.Close()

	mailbox := NewGraphMailbox(server.URL, "finance@ledgerly.io", newTokenMock(t))

	folders, err := mailbox.ListFolders(context.Background())

	require.NoError(t, err)
	assert.Empty(t, folders)
	assert.Equal(t, int32(3), calls.Load())
}

func TestGraphMailbox_GivesUpAfterMaxAttempts(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	mailbox := NewGraphMailbox(server.URL, "finance@ledgerly.io", newTokenMock(t))

	_, err := mailbox.ListFolders(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 3 attempts")
	assert.Equal(t, int32(3), calls.Load())
}

func TestGraphMailbox_NonTransientFailsFast(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	mailbox := NewGraphMailbox(server.URL, "finance@ledgerly.io", newTokenMock(t))

	_, err := mailbox.ListFolders(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
	assert.Equal(t, int32(1), calls.Load())
}
