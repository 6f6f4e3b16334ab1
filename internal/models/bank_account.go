package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BankAccount mirrors one account reported by the bank feed for an item.
// Balances are refreshed wholesale on every account pull; AccountID is the
// feed's stable identifier and drives the upsert.
type BankAccount struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	ItemRowID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"item_row_id"`
	AccountID        string          `gorm:"type:varchar(255);uniqueIndex;not null" json:"account_id"`
	Name             string          `gorm:"type:varchar(255);not null" json:"name"`
	OfficialName     string          `gorm:"type:varchar(255)" json:"official_name,omitempty"`
	Mask             string          `gorm:"type:varchar(8)" json:"mask,omitempty"`
	AvailableBalance decimal.Decimal `gorm:"type:decimal(15,2)" json:"available_balance"`
	CurrentBalance   decimal.Decimal `gorm:"type:decimal(15,2)" json:"current_balance"`
	CreditLimit      decimal.Decimal `gorm:"type:decimal(15,2)" json:"credit_limit"`
	ISOCurrencyCode  string          `gorm:"type:varchar(3)" json:"iso_currency_code,omitempty"`
	AccountType      string          `gorm:"type:varchar(50);not null" json:"account_type"`
	AccountSubtype   string          `gorm:"type:varchar(50)" json:"account_subtype,omitempty"`
	CreatedAt        time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"not null" json:"updated_at"`

	Item Item `gorm:"foreignKey:ItemRowID" json:"-"`
}

func (a *BankAccount) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}

	return a.Validate()
}

func (a *BankAccount) BeforeUpdate(tx *gorm.DB) error {
	if tx != nil && tx.Statement != nil && tx.Statement.Dest != nil {
		if _, ok := tx.Statement.Dest.(map[string]interface{}); ok {
			return nil
		}
	}

	a.UpdatedAt = time.Now()
	return a.Validate()
}

func (a *BankAccount) Validate() error {
	if a.ItemRowID == uuid.Nil {
		return errors.New("item row ID is required")
	}

	if a.AccountID == "" {
		return errors.New("account ID is required")
	}

	if a.Name == "" {
		return errors.New("account name is required")
	}

	if a.AccountType == "" {
		return errors.New("account type is required")
	}

	return nil
}

func (a *BankAccount) TableName() string {
	return "bank_accounts"
}
