package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"expenseease/internal/dto"
	"expenseease/internal/models"
	"expenseease/internal/plaid"
	"expenseease/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrItemDegraded = errors.New("item is degraded and needs user attention")
)

// SyncService reconciles linked bank feed items: it pulls incremental
// transaction deltas page by page, applies them through the transaction
// store, and durably advances the item's cursor after every page so a crash
// resumes from the last committed page instead of reprocessing or skipping.
type SyncService struct {
	itemRepo        repositories.ItemRepositoryInterface
	bankAccountRepo repositories.BankAccountRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	feed            BankFeedClientInterface
	notifier        NotifierInterface
	metrics         MetricsRecorderInterface
	circuitBreaker  CircuitBreakerInterface
	maxAttempts     int
	maxConcurrent   int
	logger          *slog.Logger
}

// NewSyncService creates a new sync service
func NewSyncService(
	itemRepo repositories.ItemRepositoryInterface,
	bankAccountRepo repositories.BankAccountRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	feed BankFeedClientInterface,
	notifier NotifierInterface,
	metrics MetricsRecorderInterface,
	circuitBreaker CircuitBreakerInterface,
	maxAttempts int,
	maxConcurrent int,
	logger *slog.Logger,
) SyncServiceInterface {
	if maxAttempts <= 0 {
		maxAttempts = 3
	}
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}
	return &SyncService{
		itemRepo:        itemRepo,
		bankAccountRepo: bankAccountRepo,
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		feed:            feed,
		notifier:        notifier,
		metrics:         metrics,
		circuitBreaker:  circuitBreaker,
		maxAttempts:     maxAttempts,
		maxConcurrent:   maxConcurrent,
		logger:          logger,
	}
}

// LinkItem registers a bank feed login and pulls its accounts snapshot
func (s *SyncService) LinkItem(ctx context.Context, ownerID uuid.UUID, req *dto.LinkItemRequest) (*models.Item, error) {
	if ownerID == uuid.Nil {
		return nil, ErrInvalidOwnerID
	}

	item := &models.Item{
		OwnerID:         ownerID,
		ItemID:          req.ItemID,
		AccessToken:     req.AccessToken,
		InstitutionID:   req.InstitutionID,
		InstitutionName: req.InstitutionName,
	}

	if err := s.itemRepo.Create(item); err != nil {
		return nil, err
	}

	// The accounts snapshot is best-effort at link time; the next sync or
	// webhook refreshes it anyway.
	if err := s.RefreshAccounts(ctx, item); err != nil {
		s.logger.Warn("failed to fetch accounts for newly linked item",
			"error", err,
			"item_id", item.ItemID)
	}

	s.logger.Info("item linked",
		slog.String("owner_id", ownerID.String()),
		slog.String("item_id", item.ItemID),
		slog.String("institution", item.InstitutionName))

	return item, nil
}

// SyncItem runs one full pull for an item. On a retryable upstream error the
// whole pull restarts from the last committed cursor, up to a bounded number
// of attempts; once exhausted, or on a terminal error, the item is marked
// degraded and its cursor stays at the last committed page.
func (s *SyncService) SyncItem(ctx context.Context, item *models.Item) (*dto.SyncResultResponse, error) {
	if !item.IsHealthy() {
		return nil, ErrItemDegraded
	}
	if s.circuitBreaker.IsOpen() {
		return nil, ErrCircuitBreakerOpen
	}

	start := time.Now()
	result := &dto.SyncResultResponse{
		ItemID: item.ItemID,
		Status: models.ItemStatusGood,
	}

	committed := item.TransactionsCursor
	cursor := committed
	attempts := 0

	for {
		page, err := s.feed.SyncTransactions(ctx, item.AccessToken, cursor)
		if err != nil {
			s.circuitBreaker.RecordFailure()
			attempts++

			if plaid.IsRetryable(err) && attempts < s.maxAttempts {
				s.metrics.IncrementCounter("sync.pull.retry", nil)
				s.logger.Warn("retrying sync pull from last committed cursor",
					"error", err,
					"item_id", item.ItemID,
					"attempt", attempts)
				cursor = committed
				continue
			}

			s.degradeItem(item, err)
			result.Status = models.ItemStatusBad
			return result, err
		}
		s.circuitBreaker.RecordSuccess()

		added, updated, removed, err := s.applyPage(item, page)
		if err != nil {
			return result, err
		}
		result.Added += added
		result.Updated += updated
		result.Removed += removed

		// Commit the cursor before fetching the next page. This is the only
		// safe resumption boundary.
		if err := s.itemRepo.UpdateCursor(item.ID, page.NextCursor); err != nil {
			return result, fmt.Errorf("failed to commit cursor: %w", err)
		}
		committed = page.NextCursor
		cursor = page.NextCursor
		item.TransactionsCursor = page.NextCursor
		s.metrics.IncrementCounter("sync.page.applied", nil)

		if !page.HasMore {
			break
		}
	}

	if err := s.itemRepo.TouchLastSync(item.ID, time.Now()); err != nil {
		s.logger.Warn("failed to record sync time", "error", err, "item_id", item.ItemID)
	}

	s.metrics.RecordProcessingTime("sync.item", time.Since(start))
	s.logger.Info("item synced",
		slog.String("item_id", item.ItemID),
		slog.Int("added", result.Added),
		slog.Int("updated", result.Updated),
		slog.Int("removed", result.Removed))

	return result, nil
}

func (s *SyncService) degradeItem(item *models.Item, cause error) {
	if err := s.itemRepo.UpdateStatus(item.ID, models.ItemStatusBad); err != nil {
		s.logger.Error("failed to mark item degraded", "error", err, "item_id", item.ItemID)
	}
	item.Status = models.ItemStatusBad

	s.metrics.IncrementCounter("sync.item.degraded", nil)
	s.notifier.Notify(item.OwnerID, models.NotificationKindItemDegraded, item.ID,
		fmt.Sprintf("Your %s connection needs attention", item.InstitutionName))
	s.logger.Error("item degraded after sync failure",
		"error", cause,
		"item_id", item.ItemID)
}

func (s *SyncService) applyPage(item *models.Item, page *plaid.SyncPage) (added, updated, removed int, err error) {
	for i := range page.Added {
		outcome, err := s.applyFeedTransaction(item, &page.Added[i])
		if err != nil {
			return added, updated, removed, err
		}
		if outcome == repositories.PutUpdated {
			updated++
		} else {
			added++
		}
	}

	for i := range page.Modified {
		outcome, err := s.applyFeedTransaction(item, &page.Modified[i])
		if err != nil {
			return added, updated, removed, err
		}
		if outcome == repositories.PutUpdated {
			updated++
		} else {
			added++
		}
	}

	if len(page.Removed) > 0 {
		refs := make([]string, 0, len(page.Removed))
		for _, r := range page.Removed {
			refs = append(refs, r.TransactionID)
		}
		deleted, err := s.transactionRepo.DeleteByExternalRefs(item.OwnerID, refs)
		if err != nil {
			return added, updated, removed, fmt.Errorf("failed to delete removed transactions: %w", err)
		}
		removed += int(deleted)
	}

	return added, updated, removed, nil
}

func (s *SyncService) applyFeedTransaction(item *models.Item, ft *plaid.FeedTransaction) (repositories.PutOutcome, error) {
	transaction, ok := s.feedToTransaction(item, ft)
	if !ok {
		return repositories.PutDuplicateIgnored, nil
	}

	if transaction.Category != models.CategoryUncategorized {
		if _, err := s.categoryRepo.EnsureExists(item.OwnerID, transaction.Category); err != nil {
			return repositories.PutDuplicateIgnored, fmt.Errorf("failed to ensure category: %w", err)
		}
	}

	outcome, err := s.transactionRepo.UpsertByExternalRef(transaction)
	if err != nil {
		return outcome, fmt.Errorf("failed to apply feed transaction %s: %w", ft.TransactionID, err)
	}
	return outcome, nil
}

// feedToTransaction maps one feed descriptor to a stored transaction. The
// feed reports outgoing money as positive and incoming as negative; both are
// stored with a positive amount and an explicit type.
func (s *SyncService) feedToTransaction(item *models.Item, ft *plaid.FeedTransaction) (*models.Transaction, bool) {
	if ft.Amount.IsZero() {
		s.logger.Warn("skipping zero-amount feed transaction",
			"transaction_id", ft.TransactionID,
			"item_id", item.ItemID)
		return nil, false
	}

	amount := ft.Amount
	transactionType := models.TransactionTypeDebit
	if amount.IsNegative() {
		transactionType = models.TransactionTypeCredit
		amount = amount.Abs()
	}

	category := ft.Category
	if category == "" {
		category = models.CategoryUncategorized
	}

	description := ft.Name
	if description == "" {
		description = ft.MerchantName
	}
	if description == "" {
		description = "Bank transaction"
	}

	externalRef := ft.TransactionID
	return &models.Transaction{
		OwnerID:         item.OwnerID,
		Amount:          amount,
		TransactionType: transactionType,
		Description:     description,
		Category:        category,
		OccurredAt:      ft.Date,
		ExternalRef:     &externalRef,
		Bank:            item.InstitutionName,
		Source:          models.TransactionSourceBankSync,
		Pending:         ft.Pending,
		MerchantName:    ft.MerchantName,
		ISOCurrencyCode: ft.ISOCurrencyCode,
	}, true
}

// SyncAll pulls every healthy item. Items run concurrently and fail
// independently; cancellation is honored between items, never mid-page.
func (s *SyncService) SyncAll(ctx context.Context) error {
	items, err := s.itemRepo.GetSyncable()
	if err != nil {
		return err
	}

	sem := make(chan struct{}, s.maxConcurrent)
	var wg sync.WaitGroup

	for i := range items {
		if ctx.Err() != nil {
			break
		}

		sem <- struct{}{}
		wg.Add(1)
		go func(item models.Item) {
			defer wg.Done()
			defer func() { <-sem }()

			if _, err := s.SyncItem(ctx, &item); err != nil {
				s.logger.Error("item sync failed",
					"error", err,
					"item_id", item.ItemID)
			}
		}(items[i])
	}

	wg.Wait()
	return ctx.Err()
}

// RefreshAccounts replaces the item's accounts snapshot with the feed's
// current one
func (s *SyncService) RefreshAccounts(ctx context.Context, item *models.Item) error {
	feedAccounts, err := s.feed.GetAccounts(ctx, item.AccessToken)
	if err != nil {
		return err
	}

	accounts := make([]models.BankAccount, 0, len(feedAccounts))
	for _, fa := range feedAccounts {
		accounts = append(accounts, models.BankAccount{
			ItemRowID:        item.ID,
			AccountID:        fa.AccountID,
			Name:             fa.Name,
			OfficialName:     fa.OfficialName,
			Mask:             fa.Mask,
			AvailableBalance: fa.AvailableBalance,
			CurrentBalance:   fa.CurrentBalance,
			CreditLimit:      fa.CreditLimit,
			ISOCurrencyCode:  fa.ISOCurrencyCode,
			AccountType:      fa.Type,
			AccountSubtype:   fa.Subtype,
		})
	}

	if err := s.bankAccountRepo.UpsertAccounts(accounts); err != nil {
		return err
	}

	return s.itemRepo.SetNewAccountsDetected(item.ID, false)
}

// HandleWebhook reacts to a feed-pushed event for one item
func (s *SyncService) HandleWebhook(ctx context.Context, payload *dto.WebhookPayload) error {
	s.metrics.IncrementCounter("webhook.received", map[string]string{
		"code": payload.WebhookCode,
	})

	item, err := s.itemRepo.GetByItemID(payload.ItemID)
	if err != nil {
		return err
	}

	switch payload.WebhookCode {
	case "SYNC_UPDATES_AVAILABLE", "INITIAL_UPDATE", "HISTORICAL_UPDATE", "DEFAULT_UPDATE":
		_, err := s.SyncItem(ctx, item)
		return err

	case "NEW_ACCOUNTS_AVAILABLE":
		if err := s.itemRepo.SetNewAccountsDetected(item.ID, true); err != nil {
			return err
		}
		return s.RefreshAccounts(ctx, item)

	case "ERROR", "PENDING_EXPIRATION", "USER_PERMISSION_REVOKED":
		s.degradeItem(item, fmt.Errorf("webhook %s", payload.WebhookCode))
		return nil

	case "LOGIN_REPAIRED":
		item.Status = models.ItemStatusGood
		return s.itemRepo.UpdateStatus(item.ID, models.ItemStatusGood)

	default:
		s.logger.Debug("ignoring webhook",
			"code", payload.WebhookCode,
			"item_id", payload.ItemID)
		return nil
	}
}

// GetItems lists the owner's linked items
func (s *SyncService) GetItems(ownerID uuid.UUID) ([]models.Item, error) {
	if ownerID == uuid.Nil {
		return nil, ErrInvalidOwnerID
	}
	return s.itemRepo.GetByOwnerID(ownerID)
}

// GetBankAccounts lists the owner's linked bank accounts
func (s *SyncService) GetBankAccounts(ownerID uuid.UUID) ([]models.BankAccount, error) {
	if ownerID == uuid.Nil {
		return nil, ErrInvalidOwnerID
	}
	return s.bankAccountRepo.GetByOwnerID(ownerID)
}
