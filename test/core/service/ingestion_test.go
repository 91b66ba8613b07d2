package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"ledgerly.io/financemail/internal/core/domain"
	"ledgerly.io/financemail/internal/core/service"
	"ledgerly.io/financemail/internal/storage"
	"ledgerly.io/financemail/mocks"
	"ledgerly.io/financemail/test"
)

func TestIngestion(t *testing.T) {
	suite.Run(t, new(IngestionSuite))
}

type IngestionSuite struct {
	suite.Suite
	dockerPool       *dockertest.Pool
	postgresResource *dockertest.Resource
	postgresDB       *sql.DB
	storage          *storage.FinanceStorage
	mailboxClient    *mocks.MailboxClient
	tokenSource      *mocks.TokenSource
	notifier         *mocks.NotifierClient
	ingestionService *service.IngestionService
}

func (suite *IngestionSuite) SetupSuite() {
	pool, err := dockertest.NewPool("")
	if err != nil {
		suite.T().Fatalf("Could not connect to docker: %s", err)
	}
	suite.dockerPool = pool
	db, port, postgresResource := test.SetupPostgresDB(suite.T(), pool)
	suite.postgresDB = db
	suite.postgresResource = postgresResource

	if !suite.T().Failed() {
		ctx := context.Background()
		postgresDB, err := storage.NewPostgresDB(ctx, test.PostgresHost, port, test.PostgresUser, test.PostgresPassword, test.PostgresDB)
		if err != nil {
			suite.T().Fatalf("Failed to connect to database: %v", err)
		}

		suite.storage = storage.NewFinanceStorage(postgresDB)
	}
}

func (suite *IngestionSuite) SetupTest() {
	test.ExecFile(suite.T(), suite.postgresDB, "../../sql/create_tables.sql")
	test.ExecFile(suite.T(), suite.postgresDB, "../../sql/fixtures.sql")

	if suite.T().Failed() {
		suite.T().FailNow()
	}

	suite.mailboxClient = &mocks.MailboxClient{}
	suite.tokenSource = &mocks.TokenSource{}
	suite.notifier = &mocks.NotifierClient{}
	suite.tokenSource.EXPECT().Token(mock.Anything).Return("test-token", nil).Maybe()
	suite.notifier.EXPECT().NotifyRunCompleted(mock.Anything, mock.Anything).Return(nil).Maybe()
	suite.notifier.EXPECT().NotifyDuplicateDetected(mock.Anything, mock.Anything).Return(nil).Maybe()

	suite.ingestionService = service.NewIngestionService(suite.storage, suite.mailboxClient, suite.tokenSource, suite.notifier)
}

func (suite *IngestionSuite) TearDownSuite() {
	if suite.postgresDB != nil {
		_ = suite.postgresDB.Close()
	}
	if suite.dockerPool != nil {
		if suite.postgresResource != nil {
			_ = suite.dockerPool.Purge(suite.postgresResource)
		}
	}
}

func (suite *IngestionSuite) stubInbox(messages []domain.MailMessage) {
	suite.mailboxClient.EXPECT().ListFolders(mock.Anything).Return([]domain.MailFolder{
		{ID: "folder-inbox", DisplayName: "Inbox"},
	}, nil)
	suite.mailboxClient.EXPECT().ListMessages(mock.Anything, "folder-inbox", mock.Anything).Return(messages, nil)
}

func (suite *IngestionSuite) TestRun_EndToEnd() {
	ctx := context.Background()

	messages := []domain.MailMessage{
		{
			ID:             "msg-e2e-1",
			Subject:        "Invoice INV-4821 from Acme Ltd",
			FromAddress:    "billing@acme.co.uk",
			ToAddresses:    []string{"accounts@ledgerly.io"},
			ReceivedAt:     time.Now().UTC().Add(-1 * time.Hour),
			BodyPreview:    "Please find attached. Total due £123.45",
			HasAttachments: true,
		},
	}
	suite.stubInbox(messages)
	suite.mailboxClient.EXPECT().ListAttachments(mock.Anything, "msg-e2e-1", mock.Anything).Return([]domain.MailAttachment{
		{ID: "att-1", Name: "inv-4821.pdf", ContentType: "application/pdf", ContentBase64: "JVBERi0xLjQK"},
	}, nil)

	summary, err := suite.ingestionService.Run(ctx, domain.RunParams{})

	suite.NoError(err)
	suite.Equal(1, summary.Scanned)
	suite.Equal(1, summary.CreatedMessages)
	suite.Equal(1, summary.CreatedDocuments)
	suite.Equal(1, summary.CreatedLedgerEntries)
	suite.Empty(summary.Failures)

	var approvalStatus string
	var grossAmount string
	err = suite.postgresDB.QueryRow(
		"SELECT approval_status, gross_amount::text FROM finance_ledger_entries WHERE description = $1",
		"Invoice INV-4821 from Acme Ltd",
	).Scan(&approvalStatus, &grossAmount)
	suite.NoError(err)
	suite.Equal("needs_approval", approvalStatus)
	suite.Equal("123.45", grossAmount)

	var auditCount int
	err = suite.postgresDB.QueryRow("SELECT COUNT(*) FROM finance_audit_logs").Scan(&auditCount)
	suite.NoError(err)
	suite.Equal(1, auditCount)
}

func (suite *IngestionSuite) TestRun_SecondPassCreatesNothing() {
	ctx := context.Background()

	messages := []domain.MailMessage{
		{
			ID:             "msg-e2e-2",
			Subject:        "Invoice INV-7001 cleaning services",
			FromAddress:    "office@cleanco.uk",
			ReceivedAt:     time.Now().UTC(),
			BodyPreview:    "Amount payable £80.00",
			HasAttachments: true,
		},
	}
	attachments := []domain.MailAttachment{
		{ID: "att-1", Name: "inv-7001.pdf", ContentType: "application/pdf", ContentBase64: "JVBERi0xLjQK"},
	}
	suite.stubInbox(messages)
	suite.mailboxClient.EXPECT().ListAttachments(mock.Anything, "msg-e2e-2", mock.Anything).Return(attachments, nil)

	first, err := suite.ingestionService.Run(ctx, domain.RunParams{})
	suite.NoError(err)
	suite.Equal(1, first.CreatedLedgerEntries)

	// Same mailbox contents on the next pass.
	suite.stubInbox(messages)
	suite.mailboxClient.EXPECT().ListAttachments(mock.Anything, "msg-e2e-2", mock.Anything).Return(attachments, nil)

	second, err := suite.ingestionService.Run(ctx, domain.RunParams{})
	suite.NoError(err)
	suite.Equal(1, second.Scanned)
	suite.Equal(0, second.CreatedMessages)
	suite.Equal(0, second.CreatedDocuments)
	suite.Equal(0, second.CreatedLedgerEntries)
	suite.Equal(0, second.DuplicateCandidates)

	var messageCount, documentCount, entryCount int
	suite.NoError(suite.postgresDB.QueryRow("SELECT COUNT(*) FROM ingested_messages").Scan(&messageCount))
	suite.NoError(suite.postgresDB.QueryRow("SELECT COUNT(*) FROM finance_documents WHERE source_ref = 'msg-e2e-2'").Scan(&documentCount))
	suite.NoError(suite.postgresDB.QueryRow("SELECT COUNT(*) FROM finance_ledger_entries").Scan(&entryCount))
	suite.Equal(1, messageCount)
	suite.Equal(1, documentCount)
	suite.Equal(1, entryCount)
}

func (suite *IngestionSuite) TestRun_DetectsDuplicateAgainstPriorDocument() {
	ctx := context.Background()

	// INV-1000 already exists as a fixture document from msg-prior.
	messages := []domain.MailMessage{
		{
			ID:          "msg-e2e-3",
			Subject:     "Invoice INV-1000 resend",
			FromAddress: "billing@acme.co.uk",
			ReceivedAt:  time.Now().UTC(),
			BodyPreview: "Resending, total £250.00",
		},
	}
	suite.stubInbox(messages)

	summary, err := suite.ingestionService.Run(ctx, domain.RunParams{})

	suite.NoError(err)
	suite.Equal(1, summary.DuplicateCandidates)
	suite.Equal(0, summary.CreatedLedgerEntries)

	var status string
	var confidence float64
	err = suite.postgresDB.QueryRow(
		"SELECT status, confidence FROM finance_duplicate_candidates WHERE duplicate_key = $1",
		"dup:billing@acme.co.uk:INV-1000",
	).Scan(&status, &confidence)
	suite.NoError(err)
	suite.Equal("pending_review", status)
	suite.Equal(0.98, confidence)

	var entryCount int
	suite.NoError(suite.postgresDB.QueryRow("SELECT COUNT(*) FROM finance_ledger_entries").Scan(&entryCount))
	suite.Equal(0, entryCount)
}

func (suite *IngestionSuite) TestRun_ApprovalAndCategorisationRules() {
	ctx := context.Background()

	messages := []domain.MailMessage{
		{
			ID:          "msg-e2e-4",
			Subject:     "Invoice SUB-2100 subscription renewal",
			FromAddress: "billing@saasco.com",
			ReceivedAt:  time.Now().UTC(),
			BodyPreview: "Renewal charge £15.00",
		},
	}
	suite.stubInbox(messages)

	summary, err := suite.ingestionService.Run(ctx, domain.RunParams{})

	suite.NoError(err)
	suite.Equal(1, summary.CreatedLedgerEntries)

	var approvalStatus string
	var categoryID sql.NullString
	err = suite.postgresDB.QueryRow(
		"SELECT approval_status, category_id FROM finance_ledger_entries WHERE description = $1",
		"Invoice SUB-2100 subscription renewal",
	).Scan(&approvalStatus, &categoryID)
	suite.NoError(err)
	suite.Equal("approved", approvalStatus)
	suite.True(categoryID.Valid)
	suite.Equal("11111111-1111-1111-1111-111111111111", categoryID.String)
}

func (suite *IngestionSuite) TestRun_TrustedSupplierReview() {
	ctx := context.Background()

	messages := []domain.MailMessage{
		{
			ID:          "msg-e2e-5",
			Subject:     "Receipt for hosting",
			FromAddress: "no-reply@hostify.io",
			ReceivedAt:  time.Now().UTC(),
			BodyPreview: "Monthly hosting charge £42.00",
		},
	}
	suite.stubInbox(messages)

	summary, err := suite.ingestionService.Run(ctx, domain.RunParams{})

	suite.NoError(err)
	suite.Equal(1, summary.CreatedLedgerEntries)

	var approvalStatus string
	var categoryID sql.NullString
	err = suite.postgresDB.QueryRow(
		"SELECT approval_status, category_id FROM finance_ledger_entries WHERE description = $1",
		"Receipt for hosting",
	).Scan(&approvalStatus, &categoryID)
	suite.NoError(err)
	suite.Equal("approved", approvalStatus)
	// "hosting" in the body matches the Hosting categorisation rule.
	suite.True(categoryID.Valid)
	suite.Equal("22222222-2222-2222-2222-222222222222", categoryID.String)
}
