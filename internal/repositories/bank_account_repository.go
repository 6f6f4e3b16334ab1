package repositories

import (
	"fmt"
	"time"

	"expenseease/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// bankAccountRepository implements BankAccountRepositoryInterface
type bankAccountRepository struct {
	db *gorm.DB
}

// NewBankAccountRepository creates a new bank account repository
func NewBankAccountRepository(db *gorm.DB) BankAccountRepositoryInterface {
	return &bankAccountRepository{
		db: db,
	}
}

// UpsertAccounts inserts new accounts and refreshes balances on ones already
// known, keyed by the feed's account_id.
func (r *bankAccountRepository) UpsertAccounts(accounts []models.BankAccount) error {
	if len(accounts) == 0 {
		return nil
	}

	now := time.Now()
	for i := range accounts {
		accounts[i].UpdatedAt = now
	}

	if err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "account_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name",
			"official_name",
			"mask",
			"available_balance",
			"current_balance",
			"credit_limit",
			"iso_currency_code",
			"account_type",
			"account_subtype",
			"updated_at",
		}),
	}).Create(&accounts).Error; err != nil {
		return fmt.Errorf("failed to upsert bank accounts: %w", err)
	}

	return nil
}

// GetByItemRowID retrieves the accounts linked to one item
func (r *bankAccountRepository) GetByItemRowID(itemRowID uuid.UUID) ([]models.BankAccount, error) {
	var accounts []models.BankAccount
	if err := r.db.Where("item_row_id = ?", itemRowID).
		Order("name ASC").
		Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to get bank accounts: %w", err)
	}
	return accounts, nil
}

// GetByOwnerID retrieves every account across the owner's items
func (r *bankAccountRepository) GetByOwnerID(ownerID uuid.UUID) ([]models.BankAccount, error) {
	var accounts []models.BankAccount
	if err := r.db.
		Joins("JOIN items ON items.id = bank_accounts.item_row_id").
		Where("items.owner_id = ?", ownerID).
		Order("bank_accounts.name ASC").
		Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to get bank accounts for owner: %w", err)
	}
	return accounts, nil
}
