package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateBudgetRequest creates a budget; the category is materialized lazily
type CreateBudgetRequest struct {
	Category  string `json:"category" validate:"required,min=1,max=100"`
	Amount    string `json:"amount" validate:"required,money_amount"`
	Period    string `json:"period" validate:"required,budget_period"`
	StartDate string `json:"startDate" validate:"required"`
	EndDate   string `json:"endDate" validate:"required"`
}

// BudgetResponse is the stored shape of one budget
type BudgetResponse struct {
	ID         uuid.UUID `json:"id"`
	CategoryID uuid.UUID `json:"categoryId"`
	Amount     string    `json:"amount"`
	Period     string    `json:"period"`
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`
	Version    int       `json:"version"`
}

// BudgetSummaryResponse is one row of the owner's budget overview
type BudgetSummaryResponse struct {
	ID             uuid.UUID `json:"id"`
	Category       string    `json:"category"`
	Amount         string    `json:"amount"`
	Spent          string    `json:"spent"`
	Remaining      string    `json:"remaining"`
	Period         string    `json:"period"`
	StartDate      time.Time `json:"startDate"`
	EndDate        time.Time `json:"endDate"`
	IsNearingLimit bool      `json:"isNearingLimit"`
	IsActive       bool      `json:"isActive"`
}

// AdjustBudgetResponse reports the ratchet outcome
type AdjustBudgetResponse struct {
	ID       uuid.UUID `json:"id"`
	Amount   string    `json:"amount"`
	Adjusted bool      `json:"adjusted"`
}

// GenerateDynamicBudgetsRequest selects which period snapshot to regenerate
type GenerateDynamicBudgetsRequest struct {
	Period string `json:"period" validate:"required,budget_period"`
}

// DynamicBudgetResponse is one suggested budget row
type DynamicBudgetResponse struct {
	Category    string    `json:"category"`
	Amount      string    `json:"amount"`
	Period      string    `json:"period"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// NotificationResponse is one in-app notification
type NotificationResponse struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	RefID     uuid.UUID `json:"refId"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListNotificationsResponse is a paginated notification listing
type ListNotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Total         int64                  `json:"total"`
}
