package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	NotificationKindBudgetNearingLimit = "budget_nearing_limit"
	NotificationKindAutoBudgetCreated  = "auto_budget_created"
	NotificationKindBudgetAdjusted     = "budget_adjusted"
	NotificationKindItemDegraded       = "item_degraded"
)

// Notification is an in-app message raised by the budget engine or the sync
// pipeline. Notifications are append-only; only the read flag changes after
// creation. RefID points at the entity the event is about (a budget, an
// item) and keys the unread-duplicate check, so a recurring condition is
// raised once per read cycle rather than once per evaluation.
type Notification struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	Kind      string    `gorm:"type:varchar(50);not null" json:"kind"`
	RefID     uuid.UUID `gorm:"type:uuid;not null;index" json:"ref_id"`
	Message   string    `gorm:"type:varchar(500);not null" json:"message"`
	Read      bool      `gorm:"not null;default:false" json:"read"`
	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`

	Owner User `gorm:"foreignKey:OwnerID" json:"-"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}

	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}

	return n.Validate()
}

func (n *Notification) Validate() error {
	if n.OwnerID == uuid.Nil {
		return errors.New("owner ID is required")
	}

	if n.Kind == "" {
		return errors.New("notification kind is required")
	}

	if n.RefID == uuid.Nil {
		return errors.New("notification ref ID is required")
	}

	if n.Message == "" {
		return errors.New("notification message is required")
	}

	return nil
}

func (n *Notification) TableName() string {
	return "notifications"
}
