package repositories

import (
	"errors"
	"fmt"
	"time"

	"expenseease/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrItemNotFound = errors.New("item not found")
)

// itemRepository implements ItemRepositoryInterface
type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository creates a new item repository
func NewItemRepository(db *gorm.DB) ItemRepositoryInterface {
	return &itemRepository{
		db: db,
	}
}

// Create creates a new item
func (r *itemRepository) Create(item *models.Item) error {
	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}
	return nil
}

// GetByID retrieves an item by row ID
func (r *itemRepository) GetByID(id uuid.UUID) (*models.Item, error) {
	item := &models.Item{}
	if err := r.db.First(item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return item, nil
}

// GetByItemID retrieves an item by the feed's identifier
func (r *itemRepository) GetByItemID(itemID string) (*models.Item, error) {
	item := &models.Item{}
	if err := r.db.Where("item_id = ?", itemID).First(item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get item by item ID: %w", err)
	}
	return item, nil
}

// GetByOwnerID retrieves all items for an owner
func (r *itemRepository) GetByOwnerID(ownerID uuid.UUID) ([]models.Item, error) {
	var items []models.Item
	if err := r.db.Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to get items: %w", err)
	}
	return items, nil
}

// GetSyncable retrieves every healthy item across all owners
func (r *itemRepository) GetSyncable() ([]models.Item, error) {
	var items []models.Item
	if err := r.db.Where("status = ?", models.ItemStatusGood).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to get syncable items: %w", err)
	}
	return items, nil
}

// UpdateCursor stores the feed's resumption token for the item
func (r *itemRepository) UpdateCursor(id uuid.UUID, cursor string) error {
	return r.updateFields(id, map[string]interface{}{
		"transactions_cursor": cursor,
	})
}

// UpdateStatus flips the item between GOOD and BAD
func (r *itemRepository) UpdateStatus(id uuid.UUID, status string) error {
	if status != models.ItemStatusGood && status != models.ItemStatusBad {
		return models.ErrInvalidItemStatus
	}
	return r.updateFields(id, map[string]interface{}{
		"status": status,
	})
}

// SetNewAccountsDetected records that the feed reported unseen accounts
func (r *itemRepository) SetNewAccountsDetected(id uuid.UUID, detected bool) error {
	return r.updateFields(id, map[string]interface{}{
		"new_accounts_detected": detected,
	})
}

// TouchLastSync records the instant of the last completed sync
func (r *itemRepository) TouchLastSync(id uuid.UUID, at time.Time) error {
	return r.updateFields(id, map[string]interface{}{
		"last_successful_sync_at": at,
	})
}

// Delete removes one item owned by the given user
func (r *itemRepository) Delete(ownerID, id uuid.UUID) error {
	result := r.db.Where("id = ? AND owner_id = ?", id, ownerID).Delete(&models.Item{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (r *itemRepository) updateFields(id uuid.UUID, fields map[string]interface{}) error {
	fields["updated_at"] = time.Now()

	result := r.db.Model(&models.Item{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return fmt.Errorf("failed to update item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}
