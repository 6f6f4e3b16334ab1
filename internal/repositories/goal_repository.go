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
	ErrGoalNotFound = errors.New("goal not found")
)

// goalRepository implements GoalRepositoryInterface
type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new goal repository
func NewGoalRepository(db *gorm.DB) GoalRepositoryInterface {
	return &goalRepository{
		db: db,
	}
}

// Create creates a new goal
func (r *goalRepository) Create(goal *models.Goal) error {
	if err := r.db.Create(goal).Error; err != nil {
		return fmt.Errorf("failed to create goal: %w", err)
	}
	return nil
}

// GetByID retrieves one goal owned by the given user
func (r *goalRepository) GetByID(ownerID, id uuid.UUID) (*models.Goal, error) {
	goal := &models.Goal{}
	if err := r.db.First(goal, "id = ? AND owner_id = ?", id, ownerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}
	return goal, nil
}

// GetByOwnerID retrieves all goals for an owner
func (r *goalRepository) GetByOwnerID(ownerID uuid.UUID) ([]models.Goal, error) {
	var goals []models.Goal
	if err := r.db.Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&goals).Error; err != nil {
		return nil, fmt.Errorf("failed to get goals: %w", err)
	}
	return goals, nil
}

// Update persists changes to an existing goal
func (r *goalRepository) Update(goal *models.Goal) error {
	result := r.db.Model(&models.Goal{}).
		Where("id = ? AND owner_id = ?", goal.ID, goal.OwnerID).
		Updates(map[string]interface{}{
			"title":         goal.Title,
			"icon":          goal.Icon,
			"target_amount": goal.TargetAmount,
			"progress":      goal.Progress,
			"updated_at":    time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update goal: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrGoalNotFound
	}
	return nil
}

// UpdateProgress sets the saved amount for a goal
func (r *goalRepository) UpdateProgress(ownerID, id uuid.UUID, progress decimal.Decimal) error {
	result := r.db.Model(&models.Goal{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Updates(map[string]interface{}{
			"progress":   progress,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update goal progress: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrGoalNotFound
	}
	return nil
}

// Delete removes one goal owned by the given user
func (r *goalRepository) Delete(ownerID, id uuid.UUID) error {
	result := r.db.Where("id = ? AND owner_id = ?", id, ownerID).Delete(&models.Goal{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete goal: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrGoalNotFound
	}
	return nil
}
