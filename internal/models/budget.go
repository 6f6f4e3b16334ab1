package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	BudgetPeriodWeekly  = "weekly"
	BudgetPeriodMonthly = "monthly"

	// NearingLimitRatio marks a budget as nearing its limit once spend
	// reaches this share of the budgeted amount.
	NearingLimitRatio = 0.8
)

var (
	ErrInvalidBudgetPeriod    = errors.New("invalid budget period")
	ErrInvalidBudgetAmount    = errors.New("budget amount must be positive")
	ErrInvalidBudgetDateRange = errors.New("budget start date must not be after end date")
	ErrOptimisticLockConflict = errors.New("optimistic lock conflict: version mismatch")
)

// Budget is a per-owner, per-category spending target over a date range.
// Status is never stored: a budget is active while today falls inside
// [StartDate, EndDate] and expired afterwards. Spent/remaining are derived
// live from the transaction store. Version serializes the adjust ratchet
// against concurrent writers.
type Budget struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"owner_id"`
	CategoryID uuid.UUID       `gorm:"type:uuid;not null;index" json:"category_id"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Period     string          `gorm:"type:varchar(10);not null" json:"period"`
	StartDate  time.Time       `gorm:"not null" json:"start_date"`
	EndDate    time.Time       `gorm:"not null" json:"end_date"`
	Version    int             `gorm:"default:1" json:"version"`
	CreatedAt  time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"not null" json:"updated_at"`

	Owner    User           `gorm:"foreignKey:OwnerID" json:"-"`
	Category BudgetCategory `gorm:"foreignKey:CategoryID" json:"-"`
}

func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}

	now := time.Now()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = now
	}

	return b.Validate()
}

func (b *Budget) BeforeUpdate(tx *gorm.DB) error {
	if tx != nil && tx.Statement != nil && tx.Statement.Dest != nil {
		if _, ok := tx.Statement.Dest.(map[string]interface{}); ok {
			return nil
		}
	}

	b.UpdatedAt = time.Now()
	return b.Validate()
}

func (b *Budget) Validate() error {
	if b.OwnerID == uuid.Nil {
		return errors.New("owner ID is required")
	}

	if b.CategoryID == uuid.Nil {
		return errors.New("category ID is required")
	}

	if !IsValidBudgetPeriod(b.Period) {
		return ErrInvalidBudgetPeriod
	}

	if b.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidBudgetAmount
	}

	if b.StartDate.After(b.EndDate) {
		return ErrInvalidBudgetDateRange
	}

	return nil
}

// Covers reports whether the given date falls inside the budget's range.
func (b *Budget) Covers(date time.Time) bool {
	d := TruncateToDay(date)
	return !d.Before(TruncateToDay(b.StartDate)) && !d.After(TruncateToDay(b.EndDate))
}

// IsExpired reports whether the budget window has passed as of the given time.
func (b *Budget) IsExpired(asOf time.Time) bool {
	return TruncateToDay(asOf).After(TruncateToDay(b.EndDate))
}

// IsActive reports whether the budget window covers the given time.
func (b *Budget) IsActive(asOf time.Time) bool {
	return b.Covers(asOf)
}

func (b *Budget) TableName() string {
	return "budgets"
}

// IsValidBudgetPeriod checks if the budget period is valid
func IsValidBudgetPeriod(period string) bool {
	switch period {
	case BudgetPeriodWeekly, BudgetPeriodMonthly:
		return true
	default:
		return false
	}
}

// TruncateToDay drops the time-of-day component in the value's location.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WeekStart returns the Monday of the calendar week containing t.
func WeekStart(t time.Time) time.Time {
	d := TruncateToDay(t)
	weekday := int(d.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return d.AddDate(0, 0, -(weekday - 1))
}
