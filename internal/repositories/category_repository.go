package repositories

import (
	"errors"
	"fmt"

	"expenseease/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
)

// categoryRepository implements CategoryRepositoryInterface
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) CategoryRepositoryInterface {
	return &categoryRepository{
		db: db,
	}
}

// Create creates a new budget category
func (r *categoryRepository) Create(category *models.BudgetCategory) error {
	if err := r.db.Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// EnsureExists returns the named category, creating it on first reference.
// A concurrent creator losing the race falls back to reading the winner's row.
func (r *categoryRepository) EnsureExists(ownerID uuid.UUID, name string) (*models.BudgetCategory, error) {
	category := &models.BudgetCategory{}

	err := r.db.Where("owner_id = ? AND name = ?", ownerID, name).First(category).Error
	if err == nil {
		return category, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up category: %w", err)
	}

	category = &models.BudgetCategory{
		OwnerID: ownerID,
		Name:    name,
	}
	if err := r.db.Create(category).Error; err != nil {
		// lost the race, fetch the existing row
		var existing models.BudgetCategory
		if lookupErr := r.db.Where("owner_id = ? AND name = ?", ownerID, name).
			First(&existing).Error; lookupErr == nil {
			return &existing, nil
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return category, nil
}

// GetByID retrieves one category owned by the given user
func (r *categoryRepository) GetByID(ownerID, id uuid.UUID) (*models.BudgetCategory, error) {
	category := &models.BudgetCategory{}
	if err := r.db.First(category, "id = ? AND owner_id = ?", id, ownerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return category, nil
}

// GetByName retrieves an owner's category by name
func (r *categoryRepository) GetByName(ownerID uuid.UUID, name string) (*models.BudgetCategory, error) {
	category := &models.BudgetCategory{}
	if err := r.db.Where("owner_id = ? AND name = ?", ownerID, name).First(category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category by name: %w", err)
	}
	return category, nil
}

// GetByOwnerID retrieves all categories for an owner
func (r *categoryRepository) GetByOwnerID(ownerID uuid.UUID) ([]models.BudgetCategory, error) {
	var categories []models.BudgetCategory
	if err := r.db.Where("owner_id = ?", ownerID).
		Order("name ASC").
		Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	return categories, nil
}
