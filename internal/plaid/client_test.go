package plaid

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"expenseease/internal/config"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(&config.PlaidConfig{
		BaseURL:        server.URL,
		ClientID:       "client-id",
		Secret:         "secret",
		RequestTimeout: 5 * time.Second,
	})
	return client, server
}

func TestSyncTransactions_ParsesPage(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/transactions/sync", r.URL.Path)

		var req syncRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "client-id", req.ClientID)
		assert.Equal(t, "access-token", req.AccessToken)
		assert.Equal(t, "cursor-1", req.Cursor)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"added": [{
				"transaction_id": "txn-1",
				"account_id": "acc-1",
				"amount": 12.34,
				"date": "2025-06-15",
				"name": "Coffee Shop",
				"merchant_name": "Blue Bottle",
				"pending": false,
				"iso_currency_code": "USD",
				"personal_finance_category": {"primary": "FOOD_AND_DRINK"}
			}],
			"modified": [],
			"removed": [{"transaction_id": "txn-gone"}],
			"next_cursor": "cursor-2",
			"has_more": true
		}`))
	}))

	page, err := client.SyncTransactions(context.Background(), "access-token", "cursor-1")
	require.NoError(t, err)

	require.Len(t, page.Added, 1)
	added := page.Added[0]
	assert.Equal(t, "txn-1", added.TransactionID)
	assert.True(t, added.Amount.Equal(decimal.NewFromFloat(12.34)))
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), added.Date)
	assert.Equal(t, "FOOD_AND_DRINK", added.Category)

	require.Len(t, page.Removed, 1)
	assert.Equal(t, "txn-gone", page.Removed[0].TransactionID)
	assert.Equal(t, "cursor-2", page.NextCursor)
	assert.True(t, page.HasMore)
}

func TestSyncTransactions_CodedError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{
			"error_code": "ITEM_LOGIN_REQUIRED",
			"error_type": "ITEM_ERROR",
			"error_message": "the login details of this item have changed"
		}`))
	}))

	_, err := client.SyncTransactions(context.Background(), "access-token", "")
	require.Error(t, err)

	assert.True(t, IsRetryable(err))

	var pe *Error
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, ErrCodeItemLoginRequired, pe.Code)
}

func TestSyncTransactions_TerminalError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{
			"error_code": "INVALID_ACCESS_TOKEN",
			"error_type": "INVALID_INPUT",
			"error_message": "the access token is not valid"
		}`))
	}))

	_, err := client.SyncTransactions(context.Background(), "bad-token", "")
	require.Error(t, err)
	assert.False(t, IsRetryable(err))
}

func TestGetAccounts(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/accounts/get", r.URL.Path)
		w.Write([]byte(`{
			"accounts": [{
				"account_id": "acc-1",
				"name": "Checking",
				"official_name": "Everyday Checking",
				"mask": "4321",
				"balances": {
					"available": 800.25,
					"current": 1000.50,
					"limit": 0,
					"iso_currency_code": "USD"
				},
				"type": "depository",
				"subtype": "checking"
			}]
		}`))
	}))

	accounts, err := client.GetAccounts(context.Background(), "access-token")
	require.NoError(t, err)

	require.Len(t, accounts, 1)
	assert.Equal(t, "acc-1", accounts[0].AccountID)
	assert.Equal(t, "Checking", accounts[0].Name)
	assert.True(t, accounts[0].CurrentBalance.Equal(decimal.NewFromFloat(1000.50)))
	assert.Equal(t, "depository", accounts[0].Type)
}

func TestErrorRetryableClassification(t *testing.T) {
	tests := []struct {
		code      string
		retryable bool
	}{
		{ErrCodeItemLoginRequired, true},
		{ErrCodeItemLocked, true},
		{ErrCodeRateLimitExceeded, true},
		{ErrCodeSyncMutationMidPaging, true},
		{ErrCodeInvalidAccessToken, false},
		{"SOMETHING_ELSE", false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			err := &Error{Code: tt.code}
			assert.Equal(t, tt.retryable, err.Retryable())
		})
	}

	assert.False(t, IsRetryable(context.Canceled))
}
