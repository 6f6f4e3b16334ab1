package repositories

import (
	"time"

	"expenseease/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PutOutcome reports what the store did with an ingested transaction.
type PutOutcome int

const (
	PutInserted PutOutcome = iota
	PutUpdated
	PutDuplicateIgnored
)

func (o PutOutcome) String() string {
	switch o {
	case PutInserted:
		return "inserted"
	case PutUpdated:
		return "updated"
	case PutDuplicateIgnored:
		return "duplicate"
	default:
		return "unknown"
	}
}

// CategorySpend is one row of a per-category spend aggregation.
type CategorySpend struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Count    int64           `json:"count"`
}

// TransactionFilters narrows transaction listings.
type TransactionFilters struct {
	Category  string
	Source    string
	Type      string
	StartDate *time.Time
	EndDate   *time.Time
	Offset    int
	Limit     int
}

// TransactionRepositoryInterface defines the contract for transaction storage
type TransactionRepositoryInterface interface {
	// Put inserts the transaction unless its dedup key already exists for the
	// owner, in which case the existing row is left untouched.
	Put(transaction *models.Transaction) (PutOutcome, error)
	// UpsertByExternalRef inserts or overwrites the row keyed by
	// (owner_id, external_ref). Used by bank sync where the feed re-sends
	// modified transactions.
	UpsertByExternalRef(transaction *models.Transaction) (PutOutcome, error)
	Create(transaction *models.Transaction) error
	GetByID(id uuid.UUID) (*models.Transaction, error)
	GetByRefNumber(ownerID uuid.UUID, refNumber string) (*models.Transaction, error)
	GetByOwnerID(ownerID uuid.UUID, filters TransactionFilters) ([]models.Transaction, int64, error)
	Update(transaction *models.Transaction) error
	Delete(ownerID, id uuid.UUID) error
	DeleteAll(ownerID uuid.UUID) (int64, error)
	DeleteByExternalRefs(ownerID uuid.UUID, externalRefs []string) (int64, error)
	// BulkRecategorize sets the category on all of the owner's transactions
	// whose description matches case-insensitively. Zero matches is fine.
	BulkRecategorize(ownerID uuid.UUID, matchDescription, newCategory string) (int64, error)
	SumDebitsByCategorySince(ownerID uuid.UUID, since time.Time) ([]CategorySpend, error)
	SumDebitsForCategoryBetween(ownerID uuid.UUID, category string, start, end time.Time) (decimal.Decimal, error)
	DistinctCategoriesSince(ownerID uuid.UUID, since time.Time) ([]string, error)
}

// BudgetRepositoryInterface defines the contract for budget storage
type BudgetRepositoryInterface interface {
	Create(budget *models.Budget) error
	GetByID(ownerID, id uuid.UUID) (*models.Budget, error)
	GetByOwnerID(ownerID uuid.UUID) ([]models.Budget, error)
	// GetCovering returns the owner's budget for the category whose
	// [start_date, end_date] window contains the given date.
	GetCovering(ownerID, categoryID uuid.UUID, date time.Time) (*models.Budget, error)
	Update(budget *models.Budget) error
	UpdateAmountWithOptimisticLock(id uuid.UUID, amount decimal.Decimal, expectedVersion int) error
	Delete(ownerID, id uuid.UUID) error
	ExistsCovering(ownerID, categoryID uuid.UUID, date time.Time) (bool, error)
	CountByOwnerID(ownerID uuid.UUID) (int64, error)
}

// CategoryRepositoryInterface defines the contract for budget category storage
type CategoryRepositoryInterface interface {
	Create(category *models.BudgetCategory) error
	// EnsureExists returns the owner's category with the given name, creating
	// it first if absent.
	EnsureExists(ownerID uuid.UUID, name string) (*models.BudgetCategory, error)
	GetByID(ownerID, id uuid.UUID) (*models.BudgetCategory, error)
	GetByName(ownerID uuid.UUID, name string) (*models.BudgetCategory, error)
	GetByOwnerID(ownerID uuid.UUID) ([]models.BudgetCategory, error)
}

// DynamicBudgetRepositoryInterface defines the contract for dynamic budget snapshots
type DynamicBudgetRepositoryInterface interface {
	// ReplaceForPeriod atomically swaps the owner's snapshot for one period.
	ReplaceForPeriod(ownerID uuid.UUID, period string, budgets []models.DynamicBudget) error
	GetByOwnerAndPeriod(ownerID uuid.UUID, period string) ([]models.DynamicBudget, error)
}

// GoalRepositoryInterface defines the contract for savings goal storage
type GoalRepositoryInterface interface {
	Create(goal *models.Goal) error
	GetByID(ownerID, id uuid.UUID) (*models.Goal, error)
	GetByOwnerID(ownerID uuid.UUID) ([]models.Goal, error)
	Update(goal *models.Goal) error
	UpdateProgress(ownerID, id uuid.UUID, progress decimal.Decimal) error
	Delete(ownerID, id uuid.UUID) error
}

// ItemRepositoryInterface defines the contract for bank feed item storage
type ItemRepositoryInterface interface {
	Create(item *models.Item) error
	GetByID(id uuid.UUID) (*models.Item, error)
	GetByItemID(itemID string) (*models.Item, error)
	GetByOwnerID(ownerID uuid.UUID) ([]models.Item, error)
	GetSyncable() ([]models.Item, error)
	UpdateCursor(id uuid.UUID, cursor string) error
	UpdateStatus(id uuid.UUID, status string) error
	SetNewAccountsDetected(id uuid.UUID, detected bool) error
	TouchLastSync(id uuid.UUID, at time.Time) error
	Delete(ownerID, id uuid.UUID) error
}

// BankAccountRepositoryInterface defines the contract for linked account storage
type BankAccountRepositoryInterface interface {
	UpsertAccounts(accounts []models.BankAccount) error
	GetByItemRowID(itemRowID uuid.UUID) ([]models.BankAccount, error)
	GetByOwnerID(ownerID uuid.UUID) ([]models.BankAccount, error)
}

// NotificationRepositoryInterface defines the contract for notification storage
type NotificationRepositoryInterface interface {
	Create(notification *models.Notification) error
	// ExistsUnread reports whether the owner already has an unread
	// notification with the same kind and ref. Used to avoid repeats while
	// the earlier one is still sitting unread.
	ExistsUnread(ownerID uuid.UUID, kind string, refID uuid.UUID) (bool, error)
	GetByOwnerID(ownerID uuid.UUID, unreadOnly bool, offset, limit int) ([]models.Notification, int64, error)
	MarkRead(ownerID, id uuid.UUID) error
	DeleteReadOlderThan(olderThan time.Duration) (int64, error)
}

// UserRepositoryInterface defines the contract for user storage
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	List(offset, limit int) ([]models.User, int64, error)
}
