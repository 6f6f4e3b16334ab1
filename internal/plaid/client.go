package plaid

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"expenseease/internal/config"

	"github.com/shopspring/decimal"
)

const syncPageSize = 100

// Client talks to a Plaid-style REST API. All calls are bounded by the
// configured request timeout plus whatever deadline the caller's context
// carries.
type Client struct {
	baseURL    string
	clientID   string
	secret     string
	httpClient *http.Client
}

// NewClient creates a feed client from configuration
func NewClient(cfg *config.PlaidConfig) *Client {
	return &Client{
		baseURL:  cfg.BaseURL,
		clientID: cfg.ClientID,
		secret:   cfg.Secret,
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
	}
}

type syncRequest struct {
	ClientID    string `json:"client_id"`
	Secret      string `json:"secret"`
	AccessToken string `json:"access_token"`
	Cursor      string `json:"cursor,omitempty"`
	Count       int    `json:"count"`
}

type wireTransaction struct {
	TransactionID   string          `json:"transaction_id"`
	AccountID       string          `json:"account_id"`
	Amount          decimal.Decimal `json:"amount"`
	Date            string          `json:"date"`
	Name            string          `json:"name"`
	MerchantName    string          `json:"merchant_name"`
	Pending         bool            `json:"pending"`
	ISOCurrencyCode string          `json:"iso_currency_code"`
	PersonalFinanceCategory struct {
		Primary string `json:"primary"`
	} `json:"personal_finance_category"`
}

type syncResponse struct {
	Added      []wireTransaction    `json:"added"`
	Modified   []wireTransaction    `json:"modified"`
	Removed    []RemovedTransaction `json:"removed"`
	NextCursor string               `json:"next_cursor"`
	HasMore    bool                 `json:"has_more"`
}

// SyncTransactions pulls one page of incremental deltas. An empty cursor
// means "from the beginning of history".
func (c *Client) SyncTransactions(ctx context.Context, accessToken, cursor string) (*SyncPage, error) {
	body := syncRequest{
		ClientID:    c.clientID,
		Secret:      c.secret,
		AccessToken: accessToken,
		Cursor:      cursor,
		Count:       syncPageSize,
	}

	var resp syncResponse
	if err := c.post(ctx, "/transactions/sync", body, &resp); err != nil {
		return nil, err
	}

	page := &SyncPage{
		Removed:    resp.Removed,
		NextCursor: resp.NextCursor,
		HasMore:    resp.HasMore,
	}

	var err error
	if page.Added, err = convertTransactions(resp.Added); err != nil {
		return nil, err
	}
	if page.Modified, err = convertTransactions(resp.Modified); err != nil {
		return nil, err
	}

	return page, nil
}

func convertTransactions(wire []wireTransaction) ([]FeedTransaction, error) {
	out := make([]FeedTransaction, 0, len(wire))
	for _, w := range wire {
		date, err := time.Parse("2006-01-02", w.Date)
		if err != nil {
			return nil, fmt.Errorf("plaid: invalid transaction date %q: %w", w.Date, err)
		}

		out = append(out, FeedTransaction{
			TransactionID:   w.TransactionID,
			AccountID:       w.AccountID,
			Amount:          w.Amount,
			Date:            date,
			Name:            w.Name,
			MerchantName:    w.MerchantName,
			Category:        w.PersonalFinanceCategory.Primary,
			Pending:         w.Pending,
			ISOCurrencyCode: w.ISOCurrencyCode,
		})
	}
	return out, nil
}

type accountsRequest struct {
	ClientID    string `json:"client_id"`
	Secret      string `json:"secret"`
	AccessToken string `json:"access_token"`
}

type wireAccount struct {
	AccountID    string `json:"account_id"`
	Name         string `json:"name"`
	OfficialName string `json:"official_name"`
	Mask         string `json:"mask"`
	Balances     struct {
		Available       decimal.Decimal `json:"available"`
		Current         decimal.Decimal `json:"current"`
		Limit           decimal.Decimal `json:"limit"`
		ISOCurrencyCode string          `json:"iso_currency_code"`
	} `json:"balances"`
	Type    string `json:"type"`
	Subtype string `json:"subtype"`
}

type accountsResponse struct {
	Accounts []wireAccount `json:"accounts"`
}

// GetAccounts fetches the current accounts snapshot for an item
func (c *Client) GetAccounts(ctx context.Context, accessToken string) ([]FeedAccount, error) {
	body := accountsRequest{
		ClientID:    c.clientID,
		Secret:      c.secret,
		AccessToken: accessToken,
	}

	var resp accountsResponse
	if err := c.post(ctx, "/accounts/get", body, &resp); err != nil {
		return nil, err
	}

	accounts := make([]FeedAccount, 0, len(resp.Accounts))
	for _, w := range resp.Accounts {
		accounts = append(accounts, FeedAccount{
			AccountID:        w.AccountID,
			Name:             w.Name,
			OfficialName:     w.OfficialName,
			Mask:             w.Mask,
			AvailableBalance: w.Balances.Available,
			CurrentBalance:   w.Balances.Current,
			CreditLimit:      w.Balances.Limit,
			ISOCurrencyCode:  w.Balances.ISOCurrencyCode,
			Type:             w.Type,
			Subtype:          w.Subtype,
		})
	}

	return accounts, nil
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("plaid: failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("plaid: failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("plaid: request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("plaid: failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := &Error{}
		if jsonErr := json.Unmarshal(raw, apiErr); jsonErr == nil && apiErr.Code != "" {
			return apiErr
		}
		return fmt.Errorf("plaid: unexpected status %d from %s", resp.StatusCode, path)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("plaid: failed to decode response: %w", err)
	}

	return nil
}
