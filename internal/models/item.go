package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ItemStatusGood = "GOOD"
	ItemStatusBad  = "BAD"
)

var (
	ErrInvalidItemStatus = errors.New("invalid item status")
)

// Item represents one login at a financial institution. The transactions
// cursor is an opaque resumption token owned by the bank feed; it is stored
// verbatim and passed back unchanged on the next pull. A BAD status means the
// feed signalled that the login needs user attention; sync skips BAD items.
type Item struct {
	ID                   uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID              uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	ItemID               string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"item_id"`
	AccessToken          string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"-"`
	InstitutionID        string    `gorm:"type:varchar(255);not null" json:"institution_id"`
	InstitutionName      string    `gorm:"type:varchar(255);not null" json:"institution_name"`
	Status               string    `gorm:"type:varchar(4);not null;default:'GOOD'" json:"status"`
	NewAccountsDetected  bool      `gorm:"not null;default:false" json:"new_accounts_detected"`
	TransactionsCursor   string    `gorm:"type:text" json:"-"`
	LastSuccessfulSyncAt *time.Time `json:"last_successful_sync_at,omitempty"`
	CreatedAt            time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt            time.Time  `gorm:"not null" json:"updated_at"`

	Owner    User          `gorm:"foreignKey:OwnerID" json:"-"`
	Accounts []BankAccount `gorm:"foreignKey:ItemRowID" json:"-"`
}

func (i *Item) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}

	now := time.Now()
	if i.Status == "" {
		i.Status = ItemStatusGood
	}
	if i.CreatedAt.IsZero() {
		i.CreatedAt = now
	}
	if i.UpdatedAt.IsZero() {
		i.UpdatedAt = now
	}

	return i.Validate()
}

func (i *Item) BeforeUpdate(tx *gorm.DB) error {
	if tx != nil && tx.Statement != nil && tx.Statement.Dest != nil {
		if _, ok := tx.Statement.Dest.(map[string]interface{}); ok {
			return nil
		}
	}

	i.UpdatedAt = time.Now()
	return i.Validate()
}

func (i *Item) Validate() error {
	if i.OwnerID == uuid.Nil {
		return errors.New("owner ID is required")
	}

	if i.ItemID == "" {
		return errors.New("item ID is required")
	}

	if i.AccessToken == "" {
		return errors.New("access token is required")
	}

	if i.Status != ItemStatusGood && i.Status != ItemStatusBad {
		return ErrInvalidItemStatus
	}

	return nil
}

// IsHealthy reports whether the item can be synced.
func (i *Item) IsHealthy() bool {
	return i.Status == ItemStatusGood
}

func (i *Item) TableName() string {
	return "items"
}
