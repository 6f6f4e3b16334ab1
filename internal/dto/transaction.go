package dto

import (
	"time"

	"github.com/google/uuid"
)

// IngestTransactionRequest is the normalized payload every source submits.
// Source decides the dedup behavior downstream.
type IngestTransactionRequest struct {
	Amount      string  `json:"amount" validate:"required,money_amount"`
	Type        string  `json:"type" validate:"required,transaction_type"`
	Description string  `json:"description" validate:"required,min=1,max=255"`
	Category    string  `json:"category,omitempty" validate:"omitempty,max=100"`
	Date        string  `json:"date,omitempty"`
	Source      string  `json:"source" validate:"required,transaction_source"`
	RefNumber   *string `json:"refNumber,omitempty"`
	ExternalRef *string `json:"externalRef,omitempty"`
	Bank        string  `json:"bank,omitempty"`
}

// BulkRecategorizeRequest retags every transaction whose description matches
type BulkRecategorizeRequest struct {
	Description string `json:"description" validate:"required,min=1,max=255"`
	Category    string `json:"category" validate:"required,min=1,max=100"`
}

// BulkRecategorizeResponse reports how many rows were retagged
type BulkRecategorizeResponse struct {
	Updated int64 `json:"updated"`
}

// TransactionResponse is one transaction in API responses
type TransactionResponse struct {
	ID              uuid.UUID `json:"id"`
	Amount          string    `json:"amount"`
	Type            string    `json:"type"`
	Description     string    `json:"description"`
	Category        string    `json:"category"`
	OccurredAt      time.Time `json:"occurredAt"`
	Source          string    `json:"source"`
	Bank            string    `json:"bank,omitempty"`
	Pending         bool      `json:"pending"`
	MerchantName    string    `json:"merchantName,omitempty"`
	ISOCurrencyCode string    `json:"isoCurrencyCode"`
	CreatedAt       time.Time `json:"createdAt"`
}

// IngestTransactionResponse wraps the stored record plus what happened to it
type IngestTransactionResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	Outcome     string              `json:"outcome"`
}

// ListTransactionsResponse is a paginated transaction listing
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int64                 `json:"total"`
	Offset       int                   `json:"offset"`
	Limit        int                   `json:"limit"`
}

// DeleteAllResponse reports the size of an idempotent wipe
type DeleteAllResponse struct {
	Deleted int64 `json:"deleted"`
}
