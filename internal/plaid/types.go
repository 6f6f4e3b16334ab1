package plaid

import (
	"time"

	"github.com/shopspring/decimal"
)

// FeedTransaction is one transaction descriptor as the feed reports it.
// Amount follows the feed's sign convention: positive means money leaving the
// account, negative means money coming in.
type FeedTransaction struct {
	TransactionID   string          `json:"transaction_id"`
	AccountID       string          `json:"account_id"`
	Amount          decimal.Decimal `json:"amount"`
	Date            time.Time       `json:"-"`
	Name            string          `json:"name"`
	MerchantName    string          `json:"merchant_name"`
	Category        string          `json:"-"`
	Pending         bool            `json:"pending"`
	ISOCurrencyCode string          `json:"iso_currency_code"`
}

// RemovedTransaction identifies a transaction the feed retracted.
type RemovedTransaction struct {
	TransactionID string `json:"transaction_id"`
}

// SyncPage is one page of incremental deltas. NextCursor must be stored
// verbatim and passed back on the next call; it is opaque.
type SyncPage struct {
	Added      []FeedTransaction
	Modified   []FeedTransaction
	Removed    []RemovedTransaction
	NextCursor string
	HasMore    bool
}

// FeedAccount is one account in the feed's accounts snapshot.
type FeedAccount struct {
	AccountID        string
	Name             string
	OfficialName     string
	Mask             string
	AvailableBalance decimal.Decimal
	CurrentBalance   decimal.Decimal
	CreditLimit      decimal.Decimal
	ISOCurrencyCode  string
	Type             string
	Subtype          string
}
