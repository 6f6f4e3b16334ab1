package dto

import (
	"time"

	"github.com/google/uuid"
)

// LinkItemRequest registers a bank feed login with the engine
type LinkItemRequest struct {
	ItemID          string `json:"itemId" validate:"required"`
	AccessToken     string `json:"accessToken" validate:"required"`
	InstitutionID   string `json:"institutionId,omitempty"`
	InstitutionName string `json:"institutionName,omitempty"`
}

// ItemResponse is one linked item in API responses; the access token and
// cursor never leave the server
type ItemResponse struct {
	ID                   uuid.UUID  `json:"id"`
	ItemID               string     `json:"itemId"`
	InstitutionName      string     `json:"institutionName"`
	Status               string     `json:"status"`
	NewAccountsDetected  bool       `json:"newAccountsDetected"`
	LastSuccessfulSyncAt *time.Time `json:"lastSuccessfulSyncAt,omitempty"`
}

// BankAccountResponse is one linked bank account in API responses
type BankAccountResponse struct {
	ID               uuid.UUID `json:"id"`
	AccountID        string    `json:"accountId"`
	Name             string    `json:"name"`
	Mask             string    `json:"mask,omitempty"`
	AvailableBalance string    `json:"availableBalance"`
	CurrentBalance   string    `json:"currentBalance"`
	Type             string    `json:"type"`
	Subtype          string    `json:"subtype,omitempty"`
}

// SyncResultResponse summarizes one manual refresh
type SyncResultResponse struct {
	ItemID  string `json:"itemId"`
	Status  string `json:"status"`
	Added   int    `json:"added"`
	Updated int    `json:"updated"`
	Removed int    `json:"removed"`
}

// WebhookPayload is the body Plaid posts to the webhook endpoint
type WebhookPayload struct {
	WebhookType string `json:"webhook_type"`
	WebhookCode string `json:"webhook_code"`
	ItemID      string `json:"item_id"`
}
