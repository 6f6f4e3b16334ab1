package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrCategoryNameRequired = errors.New("category name is required")
)

// BudgetCategory is an owner-scoped spending category. Rows are materialized
// lazily the first time a budget or recategorization names them; the
// (owner_id, name) pair is the identity.
type BudgetCategory struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uniq_category_owner_name,priority:1" json:"owner_id"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex:uniq_category_owner_name,priority:2" json:"name"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`

	Owner User `gorm:"foreignKey:OwnerID" json:"-"`
}

func (c *BudgetCategory) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}

	return c.Validate()
}

func (c *BudgetCategory) Validate() error {
	if c.OwnerID == uuid.Nil {
		return errors.New("owner ID is required")
	}

	if c.Name == "" {
		return ErrCategoryNameRequired
	}

	return nil
}

func (c *BudgetCategory) TableName() string {
	return "budget_categories"
}
