package services

import (
	"context"
	"time"

	"expenseease/internal/dto"
	"expenseease/internal/models"
	"expenseease/internal/plaid"
	"expenseease/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IngestionServiceInterface defines the contract for transaction intake from
// every source: bank sync, OCR receipt scans, SMS parses and manual entry.
type IngestionServiceInterface interface {
	Ingest(ownerID uuid.UUID, req *dto.IngestTransactionRequest) (*models.Transaction, repositories.PutOutcome, error)
	GetTransactions(ownerID uuid.UUID, filters repositories.TransactionFilters) ([]models.Transaction, int64, error)
	DeleteTransaction(ownerID, id uuid.UUID) error
	DeleteAllTransactions(ownerID uuid.UUID) (int64, error)
}

// CategoryServiceInterface defines the contract for category management
type CategoryServiceInterface interface {
	EnsureCategory(ownerID uuid.UUID, name string) (*models.BudgetCategory, error)
	GetCategories(ownerID uuid.UUID) ([]models.BudgetCategory, error)

	// BulkRecategorize retags all of the owner's transactions whose
	// description matches case-insensitively, returning the affected count.
	BulkRecategorize(ownerID uuid.UUID, description, category string) (int64, error)
}

// BudgetServiceInterface defines the contract for budget computation,
// adjustment and generation
type BudgetServiceInterface interface {
	CreateBudget(ownerID uuid.UUID, req *dto.CreateBudgetRequest) (*models.Budget, error)

	// CreateDefaultBudget bootstraps the one budget every new account starts
	// with. Called exactly once, by the registration flow.
	CreateDefaultBudget(ownerID uuid.UUID) (*models.Budget, error)

	GetBudgetSummaries(ownerID uuid.UUID) ([]dto.BudgetSummaryResponse, error)
	SpentAmount(budget *models.Budget) (decimal.Decimal, error)
	PreviousWeekSpent(ownerID uuid.UUID, category string) (decimal.Decimal, error)

	// AdjustBudget applies the overspend ratchet. The bool reports whether
	// the amount actually changed.
	AdjustBudget(ownerID, budgetID uuid.UUID) (*models.Budget, bool, error)

	DeleteBudget(ownerID, budgetID uuid.UUID) error
	GenerateDynamicBudgets(ownerID uuid.UUID, period string) ([]models.DynamicBudget, error)
	GetDynamicBudgets(ownerID uuid.UUID, period string) ([]models.DynamicBudget, error)

	// AutoCreateBudgets tops up weekly budgets for every category without a
	// covering budget today. Returns how many budgets were created.
	AutoCreateBudgets(ownerID uuid.UUID) (int, error)
}

// GoalServiceInterface defines the contract for savings goal operations
type GoalServiceInterface interface {
	CreateGoal(ownerID uuid.UUID, req *dto.CreateGoalRequest) (*models.Goal, error)
	GetGoals(ownerID uuid.UUID) ([]models.Goal, error)
	UpdateGoalProgress(ownerID, id uuid.UUID, progress decimal.Decimal) (*models.Goal, error)
	DeleteGoal(ownerID, id uuid.UUID) error
}

// NotifierInterface is the sink for engine-raised events. Notify never fails
// the caller: delivery problems are logged and swallowed. refID names the
// entity the event is about and dedups repeats while one is still unread.
type NotifierInterface interface {
	Notify(ownerID uuid.UUID, kind string, refID uuid.UUID, message string)
	GetNotifications(ownerID uuid.UUID, unreadOnly bool, offset, limit int) ([]models.Notification, int64, error)
	MarkRead(ownerID, id uuid.UUID) error
}

// BankFeedClientInterface is the account-sync connector: one page of
// incremental deltas per call, plus an accounts snapshot.
type BankFeedClientInterface interface {
	SyncTransactions(ctx context.Context, accessToken, cursor string) (*plaid.SyncPage, error)
	GetAccounts(ctx context.Context, accessToken string) ([]plaid.FeedAccount, error)
}

// SyncServiceInterface defines the contract for bank feed reconciliation
type SyncServiceInterface interface {
	LinkItem(ctx context.Context, ownerID uuid.UUID, req *dto.LinkItemRequest) (*models.Item, error)
	SyncItem(ctx context.Context, item *models.Item) (*dto.SyncResultResponse, error)
	SyncAll(ctx context.Context) error
	RefreshAccounts(ctx context.Context, item *models.Item) error
	HandleWebhook(ctx context.Context, payload *dto.WebhookPayload) error
	GetItems(ownerID uuid.UUID) ([]models.Item, error)
	GetBankAccounts(ownerID uuid.UUID) ([]models.BankAccount, error)
}

// UserServiceInterface defines the contract for account registration
type UserServiceInterface interface {
	Register(email, name string) (*models.User, error)
	GetUser(id uuid.UUID) (*models.User, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
