package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DynamicBudget is a derived suggestion computed from trailing spend. The
// whole (owner, period) set is replaced on every generation run; rows carry
// no history and nothing else references them.
type DynamicBudget struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"owner_id"`
	Period      string          `gorm:"type:varchar(10);not null" json:"period"`
	Category    string          `gorm:"type:varchar(100);not null" json:"category"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	GeneratedAt time.Time       `gorm:"not null" json:"generated_at"`

	Owner User `gorm:"foreignKey:OwnerID" json:"-"`
}

func (d *DynamicBudget) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}

	if d.GeneratedAt.IsZero() {
		d.GeneratedAt = time.Now()
	}

	return d.Validate()
}

func (d *DynamicBudget) Validate() error {
	if d.OwnerID == uuid.Nil {
		return errors.New("owner ID is required")
	}

	if !IsValidBudgetPeriod(d.Period) {
		return ErrInvalidBudgetPeriod
	}

	if d.Category == "" {
		return ErrCategoryNameRequired
	}

	if d.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidBudgetAmount
	}

	return nil
}

func (d *DynamicBudget) TableName() string {
	return "dynamic_budgets"
}
