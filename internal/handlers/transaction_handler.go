package handlers

import (
	"net/http"
	"time"

	"expenseease/internal/dto"
	"expenseease/internal/errors"
	"expenseease/internal/models"
	"expenseease/internal/repositories"
	"expenseease/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	ingestionService services.IngestionServiceInterface
	categoryService  services.CategoryServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(
	ingestionService services.IngestionServiceInterface,
	categoryService services.CategoryServiceInterface,
) *TransactionHandler {
	return &TransactionHandler{
		ingestionService: ingestionService,
		categoryService:  categoryService,
	}
}

// CreateTransaction ingests one normalized transaction from any source
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	ownerID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.OwnerMissing)
	}

	var req dto.IngestTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	transaction, outcome, err := h.ingestionService.Ingest(ownerID, &req)
	if err != nil {
		switch err {
		case services.ErrInvalidAmountFormat, models.ErrInvalidAmount:
			return SendError(c, errors.TransactionInvalidAmount)
		case services.ErrInvalidDateFormat:
			return SendError(c, errors.ValidationInvalidDate)
		case services.ErrExternalRefRequired:
			return SendError(c, errors.TransactionValidationFailed,
				errors.WithDetails("bank_sync transactions require an external reference"))
		case models.ErrInvalidTransactionType:
			return SendError(c, errors.TransactionInvalidType)
		case models.ErrInvalidTransactionSource:
			return SendError(c, errors.TransactionInvalidSource)
		}
		return SendSystemError(c, err)
	}

	status := http.StatusCreated
	if outcome == repositories.PutDuplicateIgnored {
		// Idempotent replay: the caller gets the original record back.
		status = http.StatusOK
	}

	return c.JSON(status, dto.IngestTransactionResponse{
		Transaction: toTransactionResponse(transaction),
		Outcome:     outcome.String(),
	})
}

// ListTransactions retrieves the owner's transactions, newest first
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	ownerID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.OwnerMissing)
	}

	filters, err := parseTransactionFilters(c)
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	transactions, total, err := h.ingestionService.GetTransactions(ownerID, filters)
	if err != nil {
		return SendSystemError(c, err)
	}

	responses := make([]dto.TransactionResponse, 0, len(transactions))
	for i := range transactions {
		responses = append(responses, toTransactionResponse(&transactions[i]))
	}

	return c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Transactions: responses,
		Total:        total,
		Offset:       filters.Offset,
		Limit:        filters.Limit,
	})
}

// BulkRecategorize retags every transaction whose description matches
func (h *TransactionHandler) BulkRecategorize(c echo.Context) error {
	ownerID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.OwnerMissing)
	}

	var req dto.BulkRecategorizeRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	updated, err := h.categoryService.BulkRecategorize(ownerID, req.Description, req.Category)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.BulkRecategorizeResponse{Updated: updated})
}

// DeleteTransaction removes a single transaction by id
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	ownerID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.OwnerMissing)
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Transaction ID must be a valid UUID"))
	}

	if err := h.ingestionService.DeleteTransaction(ownerID, id); err != nil {
		if err == repositories.ErrTransactionNotFound {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeleteAllTransactions wipes the owner's transaction history. Idempotent.
func (h *TransactionHandler) DeleteAllTransactions(c echo.Context) error {
	ownerID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.OwnerMissing)
	}

	deleted, err := h.ingestionService.DeleteAllTransactions(ownerID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.DeleteAllResponse{Deleted: deleted})
}

// parseTransactionFilters parses and validates transaction filter parameters
func parseTransactionFilters(c echo.Context) (repositories.TransactionFilters, error) {
	filters := repositories.TransactionFilters{
		Offset: getIntParam(c, "offset", 0),
		Limit:  getIntParam(c, "limit", defaultPageLimit),
	}

	if filters.Offset < 0 {
		filters.Offset = 0
	}
	if filters.Limit < 1 {
		filters.Limit = defaultPageLimit
	}
	if filters.Limit > maxPageLimit {
		filters.Limit = maxPageLimit
	}

	if startDateStr := c.QueryParam("start_date"); startDateStr != "" {
		startDate, err := time.Parse("2006-01-02", startDateStr)
		if err != nil {
			return filters, errInvalidDateParam("start_date")
		}
		filters.StartDate = &startDate
	}

	if endDateStr := c.QueryParam("end_date"); endDateStr != "" {
		endDate, err := time.Parse("2006-01-02", endDateStr)
		if err != nil {
			return filters, errInvalidDateParam("end_date")
		}
		// Inclusive end of day
		endOfDay := endDate.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
		filters.EndDate = &endOfDay
	}

	if txnType := c.QueryParam("type"); txnType != "" {
		if !models.IsValidTransactionType(txnType) {
			return filters, errInvalidEnumParam("type", "credit, debit")
		}
		filters.Type = txnType
	}

	if source := c.QueryParam("source"); source != "" {
		if !models.IsValidTransactionSource(source) {
			return filters, errInvalidEnumParam("source", "manual, ocr, sms, bank_sync")
		}
		filters.Source = source
	}

	if category := c.QueryParam("category"); category != "" {
		filters.Category = category
	}

	return filters, nil
}

// toTransactionResponse converts a transaction model to its API shape
func toTransactionResponse(t *models.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:              t.ID,
		Amount:          t.Amount.StringFixed(2),
		Type:            t.TransactionType,
		Description:     t.Description,
		Category:        t.Category,
		OccurredAt:      t.OccurredAt,
		Source:          t.Source,
		Bank:            t.Bank,
		Pending:         t.Pending,
		MerchantName:    t.MerchantName,
		ISOCurrencyCode: t.ISOCurrencyCode,
		CreatedAt:       t.CreatedAt,
	}
}
