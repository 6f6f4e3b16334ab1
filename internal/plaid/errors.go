package plaid

import (
	"errors"
	"fmt"
)

// Error codes the feed returns. Retryable codes mean the same pull can be
// reattempted with the last committed cursor; anything else is terminal for
// the item until a human intervenes.
const (
	ErrCodeItemLoginRequired     = "ITEM_LOGIN_REQUIRED"
	ErrCodeItemLocked            = "ITEM_LOCKED"
	ErrCodeRateLimitExceeded     = "RATE_LIMIT_EXCEEDED"
	ErrCodeSyncMutationMidPaging = "TRANSACTIONS_SYNC_MUTATION_DURING_PAGINATION"
	ErrCodeInvalidAccessToken    = "INVALID_ACCESS_TOKEN"
)

// Error is a coded failure from the feed API.
type Error struct {
	Code      string `json:"error_code"`
	ErrorType string `json:"error_type"`
	Message   string `json:"error_message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("plaid: %s (%s)", e.Code, e.Message)
}

// Retryable reports whether the same pull may be attempted again.
func (e *Error) Retryable() bool {
	switch e.Code {
	case ErrCodeItemLoginRequired, ErrCodeItemLocked,
		ErrCodeRateLimitExceeded, ErrCodeSyncMutationMidPaging:
		return true
	default:
		return false
	}
}

// IsRetryable classifies any error from the connector.
func IsRetryable(err error) bool {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Retryable()
	}
	return false
}
