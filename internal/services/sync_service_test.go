package services

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"expenseease/internal/database"
	"expenseease/internal/dto"
	"expenseease/internal/models"
	"expenseease/internal/plaid"
	"expenseease/internal/repositories"
	"expenseease/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type SyncServiceTestSuite struct {
	suite.Suite
	db       *database.DB
	ctrl     *gomock.Controller
	feed     *service_mocks.MockBankFeedClientInterface
	notifier *service_mocks.MockNotifierInterface
	metrics  *service_mocks.MockMetricsRecorderInterface

	itemRepo        repositories.ItemRepositoryInterface
	bankAccountRepo repositories.BankAccountRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface

	service SyncServiceInterface
	owner   *models.User
}

func (s *SyncServiceTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.ctrl = gomock.NewController(s.T())
	s.feed = service_mocks.NewMockBankFeedClientInterface(s.ctrl)
	s.notifier = service_mocks.NewMockNotifierInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)

	s.metrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()
	s.metrics.EXPECT().RecordProcessingTime(gomock.Any(), gomock.Any()).AnyTimes()
	s.metrics.EXPECT().RecordGauge(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	s.itemRepo = repositories.NewItemRepository(s.db.DB)
	s.bankAccountRepo = repositories.NewBankAccountRepository(s.db.DB)
	s.transactionRepo = repositories.NewTransactionRepository(s.db.DB)
	categoryRepo := repositories.NewCategoryRepository(s.db.DB)

	s.service = NewSyncService(
		s.itemRepo, s.bankAccountRepo, s.transactionRepo, categoryRepo,
		s.feed, s.notifier, s.metrics,
		NewCircuitBreaker(DefaultCircuitBreakerConfig()),
		3, 2, slog.Default())

	s.owner = database.CreateTestUser(s.T(), s.db, "sync@example.com")
}

func (s *SyncServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
	database.CleanupTestDB(s.T(), s.db)
}

func TestSyncServiceSuite(t *testing.T) {
	suite.Run(t, new(SyncServiceTestSuite))
}

func (s *SyncServiceTestSuite) createItem(itemID, token string) *models.Item {
	item := &models.Item{
		OwnerID:         s.owner.ID,
		ItemID:          itemID,
		AccessToken:     token,
		InstitutionID:   "ins_1",
		InstitutionName: "First Test Bank",
	}
	s.Require().NoError(s.itemRepo.Create(item))
	return item
}

func feedTxn(id string, amount float64, name string) plaid.FeedTransaction {
	return plaid.FeedTransaction{
		TransactionID:   id,
		AccountID:       "acc_1",
		Amount:          decimal.NewFromFloat(amount),
		Date:            time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		Name:            name,
		Category:        "Food",
		ISOCurrencyCode: "USD",
	}
}

func lastPage(cursor string, added ...plaid.FeedTransaction) *plaid.SyncPage {
	return &plaid.SyncPage{Added: added, NextCursor: cursor, HasMore: false}
}

var retryableErr = &plaid.Error{Code: plaid.ErrCodeRateLimitExceeded, Message: "slow down"}

func (s *SyncServiceTestSuite) TestSyncItem_SinglePage() {
	item := s.createItem("item-1", "tok-1")

	s.feed.EXPECT().
		SyncTransactions(gomock.Any(), "tok-1", "").
		Return(lastPage("cursor-1",
			feedTxn("txn-1", 25.00, "Coffee Shop"),
			feedTxn("txn-2", -1200.00, "Salary"),
		), nil)

	result, err := s.service.SyncItem(context.Background(), item)

	s.NoError(err)
	s.Equal(2, result.Added)
	s.Equal(models.ItemStatusGood, result.Status)

	reloaded, err := s.itemRepo.GetByID(item.ID)
	s.Require().NoError(err)
	s.Equal("cursor-1", reloaded.TransactionsCursor)
	s.NotNil(reloaded.LastSuccessfulSyncAt)

	transactions, total, err := s.transactionRepo.GetByOwnerID(s.owner.ID, repositories.TransactionFilters{})
	s.Require().NoError(err)
	s.Equal(int64(2), total)

	byRef := map[string]models.Transaction{}
	for _, txn := range transactions {
		s.Require().NotNil(txn.ExternalRef)
		byRef[*txn.ExternalRef] = txn
	}

	// Positive feed amounts are outgoing money, negative incoming; both are
	// stored positive with an explicit type.
	s.Equal(models.TransactionTypeDebit, byRef["txn-1"].TransactionType)
	s.True(byRef["txn-1"].Amount.Equal(decimal.NewFromInt(25)))
	s.Equal(models.TransactionTypeCredit, byRef["txn-2"].TransactionType)
	s.True(byRef["txn-2"].Amount.Equal(decimal.NewFromInt(1200)))
	s.Equal(models.TransactionSourceBankSync, byRef["txn-1"].Source)
	s.Equal("First Test Bank", byRef["txn-1"].Bank)
}

func (s *SyncServiceTestSuite) TestSyncItem_MultiPageCommitsCursorPerPage() {
	item := s.createItem("item-1", "tok-1")

	gomock.InOrder(
		s.feed.EXPECT().
			SyncTransactions(gomock.Any(), "tok-1", "").
			Return(&plaid.SyncPage{
				Added:      []plaid.FeedTransaction{feedTxn("txn-1", 10, "One")},
				NextCursor: "cursor-1",
				HasMore:    true,
			}, nil),
		s.feed.EXPECT().
			SyncTransactions(gomock.Any(), "tok-1", "cursor-1").
			Return(lastPage("cursor-2", feedTxn("txn-2", 20, "Two")), nil),
	)

	result, err := s.service.SyncItem(context.Background(), item)

	s.NoError(err)
	s.Equal(2, result.Added)

	reloaded, err := s.itemRepo.GetByID(item.ID)
	s.Require().NoError(err)
	s.Equal("cursor-2", reloaded.TransactionsCursor)
}

func (s *SyncServiceTestSuite) TestSyncItem_RetryResumesFromCommittedCursor() {
	item := s.createItem("item-1", "tok-1")

	gomock.InOrder(
		s.feed.EXPECT().
			SyncTransactions(gomock.Any(), "tok-1", "").
			Return(&plaid.SyncPage{
				Added:      []plaid.FeedTransaction{feedTxn("txn-1", 10, "One")},
				NextCursor: "cursor-1",
				HasMore:    true,
			}, nil),
		s.feed.EXPECT().
			SyncTransactions(gomock.Any(), "tok-1", "cursor-1").
			Return(nil, retryableErr),
		// The retry reuses the last committed cursor, not a fresh pull.
		s.feed.EXPECT().
			SyncTransactions(gomock.Any(), "tok-1", "cursor-1").
			Return(lastPage("cursor-2", feedTxn("txn-2", 20, "Two")), nil),
	)

	result, err := s.service.SyncItem(context.Background(), item)

	s.NoError(err)
	s.Equal(2, result.Added)
	s.Equal(models.ItemStatusGood, result.Status)
}

func (s *SyncServiceTestSuite) TestSyncItem_ExhaustedRetriesDegradeItem() {
	item := s.createItem("item-1", "tok-1")

	s.feed.EXPECT().
		SyncTransactions(gomock.Any(), "tok-1", "").
		Return(nil, retryableErr).
		Times(3)
	s.notifier.EXPECT().
		Notify(s.owner.ID, models.NotificationKindItemDegraded, item.ID, gomock.Any()).
		Times(1)

	_, err := s.service.SyncItem(context.Background(), item)

	s.Error(err)

	reloaded, err := s.itemRepo.GetByID(item.ID)
	s.Require().NoError(err)
	s.Equal(models.ItemStatusBad, reloaded.Status)
	// The cursor stays where the last successful pull left it.
	s.Equal("", reloaded.TransactionsCursor)
}

func (s *SyncServiceTestSuite) TestSyncItem_TerminalErrorDegradesImmediately() {
	item := s.createItem("item-1", "tok-1")

	s.feed.EXPECT().
		SyncTransactions(gomock.Any(), "tok-1", "").
		Return(nil, &plaid.Error{Code: plaid.ErrCodeInvalidAccessToken}).
		Times(1)
	s.notifier.EXPECT().
		Notify(s.owner.ID, models.NotificationKindItemDegraded, item.ID, gomock.Any()).
		Times(1)

	_, err := s.service.SyncItem(context.Background(), item)

	s.Error(err)

	reloaded, err := s.itemRepo.GetByID(item.ID)
	s.Require().NoError(err)
	s.Equal(models.ItemStatusBad, reloaded.Status)
}

func (s *SyncServiceTestSuite) TestSyncItem_SkipsDegradedItem() {
	item := s.createItem("item-1", "tok-1")
	s.Require().NoError(s.itemRepo.UpdateStatus(item.ID, models.ItemStatusBad))
	item.Status = models.ItemStatusBad

	_, err := s.service.SyncItem(context.Background(), item)
	s.ErrorIs(err, ErrItemDegraded)
}

func (s *SyncServiceTestSuite) TestSyncItem_AppliesModifiedAndRemoved() {
	item := s.createItem("item-1", "tok-1")

	s.feed.EXPECT().
		SyncTransactions(gomock.Any(), "tok-1", "").
		Return(lastPage("cursor-1",
			feedTxn("txn-1", 25, "Coffee"),
			feedTxn("txn-2", 40, "Groceries"),
		), nil)
	_, err := s.service.SyncItem(context.Background(), item)
	s.Require().NoError(err)

	modified := feedTxn("txn-1", 27.50, "Coffee (settled)")
	s.feed.EXPECT().
		SyncTransactions(gomock.Any(), "tok-1", "cursor-1").
		Return(&plaid.SyncPage{
			Modified:   []plaid.FeedTransaction{modified},
			Removed:    []plaid.RemovedTransaction{{TransactionID: "txn-2"}},
			NextCursor: "cursor-2",
			HasMore:    false,
		}, nil)

	result, err := s.service.SyncItem(context.Background(), item)

	s.NoError(err)
	s.Equal(1, result.Updated)
	s.Equal(1, result.Removed)

	transactions, total, err := s.transactionRepo.GetByOwnerID(s.owner.ID, repositories.TransactionFilters{})
	s.Require().NoError(err)
	s.Equal(int64(1), total)
	s.True(transactions[0].Amount.Equal(decimal.NewFromFloat(27.50)))
	s.Equal("Coffee (settled)", transactions[0].Description)
}

func (s *SyncServiceTestSuite) TestSyncAll_ItemsFailIndependently() {
	bad := s.createItem("item-bad", "tok-bad")
	good := s.createItem("item-good", "tok-good")

	s.feed.EXPECT().
		SyncTransactions(gomock.Any(), "tok-bad", "").
		Return(nil, &plaid.Error{Code: plaid.ErrCodeInvalidAccessToken})
	s.feed.EXPECT().
		SyncTransactions(gomock.Any(), "tok-good", "").
		Return(lastPage("cursor-1", feedTxn("txn-1", 10, "One")), nil)
	s.notifier.EXPECT().
		Notify(s.owner.ID, models.NotificationKindItemDegraded, bad.ID, gomock.Any()).
		Times(1)

	err := s.service.SyncAll(context.Background())
	s.NoError(err)

	reloadedBad, err := s.itemRepo.GetByID(bad.ID)
	s.Require().NoError(err)
	s.Equal(models.ItemStatusBad, reloadedBad.Status)

	reloadedGood, err := s.itemRepo.GetByID(good.ID)
	s.Require().NoError(err)
	s.Equal(models.ItemStatusGood, reloadedGood.Status)
	s.Equal("cursor-1", reloadedGood.TransactionsCursor)
}

func (s *SyncServiceTestSuite) TestRefreshAccounts() {
	item := s.createItem("item-1", "tok-1")

	s.feed.EXPECT().
		GetAccounts(gomock.Any(), "tok-1").
		Return([]plaid.FeedAccount{{
			AccountID:      "acc_1",
			Name:           "Checking",
			Mask:           "1234",
			CurrentBalance: decimal.NewFromInt(1000),
			Type:           "depository",
			Subtype:        "checking",
		}}, nil)

	s.Require().NoError(s.service.RefreshAccounts(context.Background(), item))

	// A later snapshot refreshes balances in place.
	s.feed.EXPECT().
		GetAccounts(gomock.Any(), "tok-1").
		Return([]plaid.FeedAccount{{
			AccountID:      "acc_1",
			Name:           "Checking",
			Mask:           "1234",
			CurrentBalance: decimal.NewFromInt(750),
			Type:           "depository",
			Subtype:        "checking",
		}}, nil)

	s.Require().NoError(s.service.RefreshAccounts(context.Background(), item))

	accounts, err := s.service.GetBankAccounts(s.owner.ID)
	s.Require().NoError(err)
	s.Require().Len(accounts, 1)
	s.True(accounts[0].CurrentBalance.Equal(decimal.NewFromInt(750)))
}

func (s *SyncServiceTestSuite) TestHandleWebhook_SyncUpdatesAvailable() {
	item := s.createItem("item-1", "tok-1")

	s.feed.EXPECT().
		SyncTransactions(gomock.Any(), "tok-1", "").
		Return(lastPage("cursor-1"), nil)

	err := s.service.HandleWebhook(context.Background(), &dto.WebhookPayload{
		WebhookType: "TRANSACTIONS",
		WebhookCode: "SYNC_UPDATES_AVAILABLE",
		ItemID:      "item-1",
	})

	s.NoError(err)

	reloaded, err := s.itemRepo.GetByID(item.ID)
	s.Require().NoError(err)
	s.Equal("cursor-1", reloaded.TransactionsCursor)
}

func (s *SyncServiceTestSuite) TestHandleWebhook_LoginRepaired() {
	item := s.createItem("item-1", "tok-1")
	s.Require().NoError(s.itemRepo.UpdateStatus(item.ID, models.ItemStatusBad))

	err := s.service.HandleWebhook(context.Background(), &dto.WebhookPayload{
		WebhookType: "ITEM",
		WebhookCode: "LOGIN_REPAIRED",
		ItemID:      "item-1",
	})

	s.NoError(err)

	reloaded, err := s.itemRepo.GetByID(item.ID)
	s.Require().NoError(err)
	s.Equal(models.ItemStatusGood, reloaded.Status)
}

func (s *SyncServiceTestSuite) TestHandleWebhook_UnknownCodeIgnored() {
	s.createItem("item-1", "tok-1")

	err := s.service.HandleWebhook(context.Background(), &dto.WebhookPayload{
		WebhookType: "ITEM",
		WebhookCode: "WEBHOOK_UPDATE_ACKNOWLEDGED",
		ItemID:      "item-1",
	})

	s.NoError(err)
}

func (s *SyncServiceTestSuite) TestHandleWebhook_UnknownItem() {
	err := s.service.HandleWebhook(context.Background(), &dto.WebhookPayload{
		WebhookCode: "SYNC_UPDATES_AVAILABLE",
		ItemID:      "missing",
	})

	s.ErrorIs(err, repositories.ErrItemNotFound)
}
