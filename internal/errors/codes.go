package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
	ValidationInvalidAmount ErrorCode = "VALIDATION_006"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound         ErrorCode = "TRANSACTION_001"
	TransactionInvalidAmount    ErrorCode = "TRANSACTION_002"
	TransactionInvalidType      ErrorCode = "TRANSACTION_003"
	TransactionInvalidSource    ErrorCode = "TRANSACTION_004"
	TransactionValidationFailed ErrorCode = "TRANSACTION_005"
)

// Budget error codes (BUDGET_*)
const (
	BudgetNotFound      ErrorCode = "BUDGET_001"
	BudgetInvalidPeriod ErrorCode = "BUDGET_002"
	BudgetInvalidRange  ErrorCode = "BUDGET_003"
	BudgetInvalidAmount ErrorCode = "BUDGET_004"
)

// Category error codes (CATEGORY_*)
const (
	CategoryNotFound    ErrorCode = "CATEGORY_001"
	CategoryNameMissing ErrorCode = "CATEGORY_002"
)

// Goal error codes (GOAL_*)
const (
	GoalNotFound      ErrorCode = "GOAL_001"
	GoalInvalidTarget ErrorCode = "GOAL_002"
)

// Item / bank-sync error codes (ITEM_*, SYNC_*)
const (
	ItemNotFound      ErrorCode = "ITEM_001"
	ItemDegraded      ErrorCode = "ITEM_002"
	SyncUpstreamError ErrorCode = "SYNC_001"
	SyncRetryExceeded ErrorCode = "SYNC_002"
	WebhookRejected   ErrorCode = "SYNC_003"
)

// Owner error codes (OWNER_*)
const (
	OwnerNotFound      ErrorCode = "OWNER_001"
	OwnerAlreadyExists ErrorCode = "OWNER_002"
	OwnerMissing       ErrorCode = "OWNER_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemRouteNotFound      ErrorCode = "SYSTEM_007"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",
	ValidationInvalidAmount: "Invalid monetary amount",

	// Transaction errors
	TransactionNotFound:         "Transaction not found",
	TransactionInvalidAmount:    "Invalid transaction amount",
	TransactionInvalidType:      "Transaction type must be debit or credit",
	TransactionInvalidSource:    "Unknown transaction source",
	TransactionValidationFailed: "Transaction validation failed",

	// Budget errors
	BudgetNotFound:      "Budget not found",
	BudgetInvalidPeriod: "Budget period must be weekly or monthly",
	BudgetInvalidRange:  "Budget start date must not be after end date",
	BudgetInvalidAmount: "Budget amount must be positive",

	// Category errors
	CategoryNotFound:    "Budget category not found",
	CategoryNameMissing: "Category name is required",

	// Goal errors
	GoalNotFound:      "Goal not found",
	GoalInvalidTarget: "Goal target amount must be positive",

	// Item / sync errors
	ItemNotFound:      "Linked institution item not found",
	ItemDegraded:      "Linked institution item requires re-authentication",
	SyncUpstreamError: "Bank feed is temporarily unavailable",
	SyncRetryExceeded: "Bank feed sync failed after maximum retries",
	WebhookRejected:   "Webhook signature verification failed",

	// Owner errors
	OwnerNotFound:      "User not found",
	OwnerAlreadyExists: "A user with this email already exists",
	OwnerMissing:       "User identifier header is required",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemRouteNotFound:      "Requested resource not found",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
