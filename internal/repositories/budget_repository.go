package repositories

import (
	"errors"
	"fmt"
	"time"

	"expenseease/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrBudgetNotFound = errors.New("budget not found")
)

// budgetRepository implements BudgetRepositoryInterface
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository
func NewBudgetRepository(db *gorm.DB) BudgetRepositoryInterface {
	return &budgetRepository{
		db: db,
	}
}

// Create creates a new budget
func (r *budgetRepository) Create(budget *models.Budget) error {
	if err := r.db.Create(budget).Error; err != nil {
		return fmt.Errorf("failed to create budget: %w", err)
	}
	return nil
}

// GetByID retrieves one budget owned by the given user
func (r *budgetRepository) GetByID(ownerID, id uuid.UUID) (*models.Budget, error) {
	budget := &models.Budget{}
	if err := r.db.Preload("Category").
		First(budget, "id = ? AND owner_id = ?", id, ownerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}
	return budget, nil
}

// GetByOwnerID retrieves all budgets for an owner, newest window first
func (r *budgetRepository) GetByOwnerID(ownerID uuid.UUID) ([]models.Budget, error) {
	var budgets []models.Budget
	if err := r.db.Preload("Category").
		Where("owner_id = ?", ownerID).
		Order("start_date DESC").
		Find(&budgets).Error; err != nil {
		return nil, fmt.Errorf("failed to get budgets: %w", err)
	}
	return budgets, nil
}

// GetCovering returns the budget whose window contains the given date.
// Windows for one category are not expected to overlap; if they ever do the
// most recently started one wins.
func (r *budgetRepository) GetCovering(ownerID, categoryID uuid.UUID, date time.Time) (*models.Budget, error) {
	day := models.TruncateToDay(date)

	budget := &models.Budget{}
	if err := r.db.Preload("Category").
		Where("owner_id = ? AND category_id = ? AND start_date <= ? AND end_date >= ?",
			ownerID, categoryID, day, day).
		Order("start_date DESC").
		First(budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to get covering budget: %w", err)
	}
	return budget, nil
}

// Update persists changes to an existing budget
func (r *budgetRepository) Update(budget *models.Budget) error {
	result := r.db.Model(&models.Budget{}).
		Where("id = ? AND owner_id = ?", budget.ID, budget.OwnerID).
		Updates(map[string]interface{}{
			"amount":     budget.Amount,
			"period":     budget.Period,
			"start_date": budget.StartDate,
			"end_date":   budget.EndDate,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update budget: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBudgetNotFound
	}
	return nil
}

// UpdateAmountWithOptimisticLock raises the budget amount only if nobody else
// wrote the row since it was read. The version check makes concurrent
// adjustments serialize instead of clobbering each other.
func (r *budgetRepository) UpdateAmountWithOptimisticLock(id uuid.UUID, amount decimal.Decimal, expectedVersion int) error {
	result := r.db.Model(&models.Budget{}).
		Where("id = ? AND version = ?", id, expectedVersion).
		Updates(map[string]interface{}{
			"amount":     amount,
			"version":    expectedVersion + 1,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update budget amount: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return models.ErrOptimisticLockConflict
	}
	return nil
}

// Delete removes one budget owned by the given user
func (r *budgetRepository) Delete(ownerID, id uuid.UUID) error {
	result := r.db.Where("id = ? AND owner_id = ?", id, ownerID).Delete(&models.Budget{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete budget: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBudgetNotFound
	}
	return nil
}

// ExistsCovering reports whether any budget window for the category contains
// the given date.
func (r *budgetRepository) ExistsCovering(ownerID, categoryID uuid.UUID, date time.Time) (bool, error) {
	day := models.TruncateToDay(date)

	var count int64
	if err := r.db.Model(&models.Budget{}).
		Where("owner_id = ? AND category_id = ? AND start_date <= ? AND end_date >= ?",
			ownerID, categoryID, day, day).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check covering budget: %w", err)
	}
	return count > 0, nil
}

// CountByOwnerID counts the owner's budgets
func (r *budgetRepository) CountByOwnerID(ownerID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Budget{}).
		Where("owner_id = ?", ownerID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count budgets: %w", err)
	}
	return count, nil
}
