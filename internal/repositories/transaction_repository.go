package repositories

import (
	"errors"
	"fmt"
	"time"

	"expenseease/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Put inserts the transaction unless a row with the same dedup key already
// exists for the owner. The decision is made by the database via the unique
// indexes on (owner_id, external_ref) and (owner_id, ref_number), so two
// concurrent writers cannot both insert.
func (r *transactionRepository) Put(transaction *models.Transaction) (PutOutcome, error) {
	result := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(transaction)
	if result.Error != nil {
		return PutDuplicateIgnored, fmt.Errorf("failed to put transaction: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return PutDuplicateIgnored, nil
	}
	return PutInserted, nil
}

// UpsertByExternalRef overwrites the row keyed by (owner_id, external_ref)
// or inserts it when absent. The insert goes first and lets the unique index
// pick the winner, so two concurrent syncs of the same item (a webhook pull
// racing the scheduler) never surface a duplicate error: the loser's insert
// is a no-op and it falls through to updating the winner's row.
func (r *transactionRepository) UpsertByExternalRef(transaction *models.Transaction) (PutOutcome, error) {
	if transaction.ExternalRef == nil || *transaction.ExternalRef == "" {
		return PutDuplicateIgnored, errors.New("external reference is required for upsert")
	}

	result := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(transaction)
	if result.Error != nil {
		return PutDuplicateIgnored, fmt.Errorf("failed to upsert transaction: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		return PutInserted, nil
	}

	update := r.db.Model(&models.Transaction{}).
		Where("owner_id = ? AND external_ref = ?", transaction.OwnerID, *transaction.ExternalRef).
		Updates(map[string]interface{}{
			"amount":            transaction.Amount,
			"transaction_type":  transaction.TransactionType,
			"description":       transaction.Description,
			"category":          transaction.Category,
			"occurred_at":       transaction.OccurredAt,
			"pending":           transaction.Pending,
			"merchant_name":     transaction.MerchantName,
			"iso_currency_code": transaction.ISOCurrencyCode,
			"updated_at":        time.Now(),
		})
	if update.Error != nil {
		return PutDuplicateIgnored, fmt.Errorf("failed to update transaction by external ref: %w", update.Error)
	}

	return PutUpdated, nil
}

// Create creates a new transaction
func (r *transactionRepository) Create(transaction *models.Transaction) error {
	if err := r.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// GetByID retrieves a transaction by ID
func (r *transactionRepository) GetByID(id uuid.UUID) (*models.Transaction, error) {
	transaction := &models.Transaction{}
	if err := r.db.First(transaction, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return transaction, nil
}

// GetByRefNumber retrieves the owner's transaction carrying the given
// reference number.
func (r *transactionRepository) GetByRefNumber(ownerID uuid.UUID, refNumber string) (*models.Transaction, error) {
	transaction := &models.Transaction{}
	if err := r.db.First(transaction, "owner_id = ? AND ref_number = ?", ownerID, refNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction by ref number: %w", err)
	}
	return transaction, nil
}

// GetByOwnerID retrieves an owner's transactions with filters and pagination
func (r *transactionRepository) GetByOwnerID(ownerID uuid.UUID, filters TransactionFilters) ([]models.Transaction, int64, error) {
	var transactions []models.Transaction
	var total int64

	query := r.db.Model(&models.Transaction{}).Where("owner_id = ?", ownerID)

	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}
	if filters.Source != "" {
		query = query.Where("source = ?", filters.Source)
	}
	if filters.Type != "" {
		query = query.Where("transaction_type = ?", filters.Type)
	}
	if filters.StartDate != nil {
		query = query.Where("occurred_at >= ?", *filters.StartDate)
	}
	if filters.EndDate != nil {
		query = query.Where("occurred_at <= ?", *filters.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 50
	}

	if err := query.Offset(filters.Offset).Limit(limit).
		Order("occurred_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get transactions: %w", err)
	}

	return transactions, total, nil
}

// Update persists changes to an existing transaction
func (r *transactionRepository) Update(transaction *models.Transaction) error {
	result := r.db.Model(&models.Transaction{}).
		Where("id = ? AND owner_id = ?", transaction.ID, transaction.OwnerID).
		Updates(map[string]interface{}{
			"amount":           transaction.Amount,
			"transaction_type": transaction.TransactionType,
			"description":      transaction.Description,
			"category":         transaction.Category,
			"occurred_at":      transaction.OccurredAt,
			"updated_at":       time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// Delete removes one transaction owned by the given user
func (r *transactionRepository) Delete(ownerID, id uuid.UUID) error {
	result := r.db.Where("id = ? AND owner_id = ?", id, ownerID).Delete(&models.Transaction{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// DeleteAll removes every transaction for an owner and reports how many went
func (r *transactionRepository) DeleteAll(ownerID uuid.UUID) (int64, error) {
	result := r.db.Where("owner_id = ?", ownerID).Delete(&models.Transaction{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete transactions: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// DeleteByExternalRefs removes feed transactions the upstream marked removed
func (r *transactionRepository) DeleteByExternalRefs(ownerID uuid.UUID, externalRefs []string) (int64, error) {
	if len(externalRefs) == 0 {
		return 0, nil
	}

	result := r.db.Where("owner_id = ? AND external_ref IN ?", ownerID, externalRefs).
		Delete(&models.Transaction{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete transactions by external refs: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// BulkRecategorize sets the category on every transaction of the owner whose
// description matches case-insensitively. Zero matches is a no-op, not an
// error; other owners' identical descriptions are never touched.
func (r *transactionRepository) BulkRecategorize(ownerID uuid.UUID, matchDescription, newCategory string) (int64, error) {
	result := r.db.Model(&models.Transaction{}).
		Where("owner_id = ? AND LOWER(description) = LOWER(?)", ownerID, matchDescription).
		Updates(map[string]interface{}{
			"category":   newCategory,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to recategorize transactions: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// SumDebitsByCategorySince aggregates debit spend per category from the given
// instant forward. Credits never count toward spend.
func (r *transactionRepository) SumDebitsByCategorySince(ownerID uuid.UUID, since time.Time) ([]CategorySpend, error) {
	var spends []CategorySpend

	query := `
		SELECT
			category,
			COALESCE(SUM(amount), 0) as total,
			COUNT(*) as count
		FROM transactions
		WHERE owner_id = ?
			AND transaction_type = ?
			AND occurred_at >= ?
		GROUP BY category
		ORDER BY total DESC
	`

	if err := r.db.Raw(query, ownerID, models.TransactionTypeDebit, since).
		Scan(&spends).Error; err != nil {
		return nil, fmt.Errorf("failed to sum spend by category: %w", err)
	}

	return spends, nil
}

// SumDebitsForCategoryBetween totals debit spend for one category inside a
// closed date range.
func (r *transactionRepository) SumDebitsForCategoryBetween(ownerID uuid.UUID, category string, start, end time.Time) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal
	}

	if err := r.db.Model(&models.Transaction{}).
		Select("COALESCE(SUM(amount), 0) as total").
		Where("owner_id = ? AND category = ? AND transaction_type = ? AND occurred_at BETWEEN ? AND ?",
			ownerID, category, models.TransactionTypeDebit, start, end).
		Scan(&row).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum spend for category: %w", err)
	}

	return row.Total, nil
}

// DistinctCategoriesSince lists categories with at least one debit since the
// given instant.
func (r *transactionRepository) DistinctCategoriesSince(ownerID uuid.UUID, since time.Time) ([]string, error) {
	var categories []string

	if err := r.db.Model(&models.Transaction{}).
		Distinct("category").
		Where("owner_id = ? AND transaction_type = ? AND occurred_at >= ?",
			ownerID, models.TransactionTypeDebit, since).
		Pluck("category", &categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list distinct categories: %w", err)
	}

	return categories, nil
}
