package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInvalidGoalTarget = errors.New("goal target amount must be positive")
)

// Goal is a simple savings tracker, independent of budgets and transactions.
type Goal struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"owner_id"`
	Title        string          `gorm:"type:varchar(255);not null" json:"title"`
	Icon         string          `gorm:"type:varchar(100)" json:"icon,omitempty"`
	TargetAmount decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"target_amount"`
	Progress     decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"progress"`
	CreatedAt    time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"not null" json:"updated_at"`

	Owner User `gorm:"foreignKey:OwnerID" json:"-"`
}

func (g *Goal) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}

	now := time.Now()
	if g.CreatedAt.IsZero() {
		g.CreatedAt = now
	}
	if g.UpdatedAt.IsZero() {
		g.UpdatedAt = now
	}

	return g.Validate()
}

func (g *Goal) Validate() error {
	if g.OwnerID == uuid.Nil {
		return errors.New("owner ID is required")
	}

	if g.Title == "" {
		return errors.New("goal title is required")
	}

	if g.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidGoalTarget
	}

	if g.Progress.IsNegative() {
		return errors.New("goal progress cannot be negative")
	}

	return nil
}

// IsReached reports whether saved progress meets the target.
func (g *Goal) IsReached() bool {
	return g.Progress.GreaterThanOrEqual(g.TargetAmount)
}

func (g *Goal) TableName() string {
	return "goals"
}
