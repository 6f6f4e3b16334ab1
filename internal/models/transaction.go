package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionTypeCredit = "credit"
	TransactionTypeDebit  = "debit"

	TransactionSourceSMS      = "sms"
	TransactionSourceOCR      = "ocr"
	TransactionSourceManual   = "manual"
	TransactionSourceBankSync = "bank_sync"

	// CategoryUncategorized is assigned when the caller supplies no category.
	CategoryUncategorized = "Uncategorized"
)

var (
	ErrInvalidTransactionType   = errors.New("invalid transaction type")
	ErrInvalidTransactionSource = errors.New("invalid transaction source")
	ErrInvalidAmount            = errors.New("transaction amount must be positive")
)

// Transaction is the canonical record of one movement of money, regardless of
// which source produced it. Dedup keys: (owner_id, external_ref) for bank-sync
// records and (owner_id, ref_number) for SMS-derived ones. OCR and manual
// entries without a reference are always inserted as new.
type Transaction struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID         uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:uniq_txn_owner_external_ref,priority:1;uniqueIndex:uniq_txn_owner_ref_number,priority:1" json:"owner_id"`
	Amount          decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	TransactionType string          `gorm:"type:varchar(20);not null" json:"transaction_type"`
	Description     string          `gorm:"type:varchar(255);not null" json:"description"`
	Category        string          `gorm:"type:varchar(100);not null;default:'Uncategorized'" json:"category"`
	OccurredAt      time.Time       `gorm:"not null;index" json:"occurred_at"`
	ExternalRef     *string         `gorm:"type:varchar(255);uniqueIndex:uniq_txn_owner_external_ref,priority:2" json:"external_ref,omitempty"`
	RefNumber       *string         `gorm:"type:varchar(100);uniqueIndex:uniq_txn_owner_ref_number,priority:2" json:"ref_number,omitempty"`
	Bank            string          `gorm:"type:varchar(100)" json:"bank,omitempty"`
	Source          string          `gorm:"type:varchar(20);not null" json:"source"`
	Pending         bool            `gorm:"not null;default:false" json:"pending"`
	MerchantName    string          `gorm:"type:varchar(255)" json:"merchant_name,omitempty"`
	ISOCurrencyCode string          `gorm:"type:varchar(10);not null;default:'USD'" json:"iso_currency_code"`
	CreatedAt       time.Time       `gorm:"not null;index" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"not null" json:"updated_at"`

	Owner User `gorm:"foreignKey:OwnerID" json:"-"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now()

	if t.Category == "" {
		t.Category = CategoryUncategorized
	}
	if t.ISOCurrencyCode == "" {
		t.ISOCurrencyCode = "USD"
	}
	if t.OccurredAt.IsZero() {
		t.OccurredAt = now
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

// BeforeUpdate hook for Transaction
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	// Map-based updates (bulk recategorization, sync corrections) carry an
	// empty struct; skip struct validation for those.
	if tx != nil && tx.Statement != nil && tx.Statement.Dest != nil {
		if _, ok := tx.Statement.Dest.(map[string]interface{}); ok {
			return nil
		}
	}

	t.UpdatedAt = time.Now()
	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.OwnerID == uuid.Nil {
		return errors.New("owner ID is required")
	}

	if !IsValidTransactionType(t.TransactionType) {
		return ErrInvalidTransactionType
	}

	if !IsValidTransactionSource(t.Source) {
		return ErrInvalidTransactionSource
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if t.Description == "" {
		return errors.New("transaction description is required")
	}

	if t.Source == TransactionSourceBankSync && (t.ExternalRef == nil || *t.ExternalRef == "") {
		return errors.New("bank_sync transactions require an external reference")
	}

	return nil
}

// IsDebit returns true for outgoing money
func (t *Transaction) IsDebit() bool {
	return t.TransactionType == TransactionTypeDebit
}

// IsCredit returns true for incoming money
func (t *Transaction) IsCredit() bool {
	return t.TransactionType == TransactionTypeCredit
}

// HasDedupKey reports whether the record carries any reference usable as a
// dedup fingerprint.
func (t *Transaction) HasDedupKey() bool {
	return (t.ExternalRef != nil && *t.ExternalRef != "") ||
		(t.RefNumber != nil && *t.RefNumber != "")
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeCredit, TransactionTypeDebit:
		return true
	default:
		return false
	}
}

// IsValidTransactionSource checks if the transaction source is valid
func IsValidTransactionSource(source string) bool {
	switch source {
	case TransactionSourceSMS, TransactionSourceOCR, TransactionSourceManual, TransactionSourceBankSync:
		return true
	default:
		return false
	}
}
