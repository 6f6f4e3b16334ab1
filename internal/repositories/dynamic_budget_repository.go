package repositories

import (
	"fmt"

	"expenseease/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// dynamicBudgetRepository implements DynamicBudgetRepositoryInterface
type dynamicBudgetRepository struct {
	db *gorm.DB
}

// NewDynamicBudgetRepository creates a new dynamic budget repository
func NewDynamicBudgetRepository(db *gorm.DB) DynamicBudgetRepositoryInterface {
	return &dynamicBudgetRepository{
		db: db,
	}
}

// ReplaceForPeriod swaps the owner's whole snapshot for one period inside a
// single transaction, so readers never observe a half-written generation.
func (r *dynamicBudgetRepository) ReplaceForPeriod(ownerID uuid.UUID, period string, budgets []models.DynamicBudget) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("owner_id = ? AND period = ?", ownerID, period).
			Delete(&models.DynamicBudget{}).Error; err != nil {
			return fmt.Errorf("failed to clear dynamic budgets: %w", err)
		}

		if len(budgets) == 0 {
			return nil
		}

		if err := tx.Create(&budgets).Error; err != nil {
			return fmt.Errorf("failed to create dynamic budgets: %w", err)
		}
		return nil
	})
}

// GetByOwnerAndPeriod retrieves the owner's current snapshot for a period
func (r *dynamicBudgetRepository) GetByOwnerAndPeriod(ownerID uuid.UUID, period string) ([]models.DynamicBudget, error) {
	var budgets []models.DynamicBudget
	if err := r.db.Where("owner_id = ? AND period = ?", ownerID, period).
		Order("category ASC").
		Find(&budgets).Error; err != nil {
		return nil, fmt.Errorf("failed to get dynamic budgets: %w", err)
	}
	return budgets, nil
}
