package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"expenseease/internal/dto"
	"expenseease/internal/errors"
	"expenseease/internal/models"
	"expenseease/internal/plaid"
	"expenseease/internal/repositories"
	"expenseease/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// PlaidVerificationHeader carries the signed JWT Plaid attaches to webhooks
const PlaidVerificationHeader = "Plaid-Verification"

// ItemHandler handles linked bank item HTTP requests, including the
// feed's webhook endpoint.
type ItemHandler struct {
	syncService services.SyncServiceInterface
	verifier    *plaid.WebhookVerifier
}

// NewItemHandler creates a new item handler. A nil verifier disables webhook
// signature verification (sandbox only).
func NewItemHandler(syncService services.SyncServiceInterface, verifier *plaid.WebhookVerifier) *ItemHandler {
	return &ItemHandler{
		syncService: syncService,
		verifier:    verifier,
	}
}

// LinkItem registers a bank feed login and pulls its initial accounts snapshot
func (h *ItemHandler) LinkItem(c echo.Context) error {
	ownerID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.OwnerMissing)
	}

	var req dto.LinkItemRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	item, err := h.syncService.LinkItem(c.Request().Context(), ownerID, &req)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, toItemResponse(item))
}

// ListItems returns the owner's linked items
func (h *ItemHandler) ListItems(c echo.Context) error {
	ownerID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.OwnerMissing)
	}

	items, err := h.syncService.GetItems(ownerID)
	if err != nil {
		return SendSystemError(c, err)
	}

	responses := make([]dto.ItemResponse, 0, len(items))
	for i := range items {
		responses = append(responses, toItemResponse(&items[i]))
	}

	return c.JSON(http.StatusOK, responses)
}

// SyncItem triggers a manual refresh of one linked item
func (h *ItemHandler) SyncItem(c echo.Context) error {
	ownerID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.OwnerMissing)
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Item ID must be a valid UUID"))
	}

	item, err := h.findOwnedItem(ownerID, id)
	if err != nil {
		if err == repositories.ErrItemNotFound {
			return SendError(c, errors.ItemNotFound)
		}
		return SendSystemError(c, err)
	}

	result, err := h.syncService.SyncItem(c.Request().Context(), item)
	if err != nil {
		switch {
		case err == services.ErrItemDegraded:
			return SendError(c, errors.ItemDegraded)
		case err == services.ErrCircuitBreakerOpen:
			return SendError(c, errors.SyncUpstreamError)
		case plaid.IsRetryable(err):
			return SendError(c, errors.SyncRetryExceeded)
		}
		return SendError(c, errors.SyncUpstreamError)
	}

	return c.JSON(http.StatusOK, result)
}

// ListBankAccounts returns the owner's linked bank accounts
func (h *ItemHandler) ListBankAccounts(c echo.Context) error {
	ownerID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.OwnerMissing)
	}

	accounts, err := h.syncService.GetBankAccounts(ownerID)
	if err != nil {
		return SendSystemError(c, err)
	}

	responses := make([]dto.BankAccountResponse, 0, len(accounts))
	for i := range accounts {
		responses = append(responses, dto.BankAccountResponse{
			ID:               accounts[i].ID,
			AccountID:        accounts[i].AccountID,
			Name:             accounts[i].Name,
			Mask:             accounts[i].Mask,
			AvailableBalance: accounts[i].AvailableBalance.StringFixed(2),
			CurrentBalance:   accounts[i].CurrentBalance.StringFixed(2),
			Type:             accounts[i].AccountType,
			Subtype:          accounts[i].AccountSubtype,
		})
	}

	return c.JSON(http.StatusOK, responses)
}

// Webhook receives feed notifications. Unauthenticated: trust comes from the
// signed JWT in the Plaid-Verification header, never from the caller.
func (h *ItemHandler) Webhook(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Unable to read request body"))
	}

	if h.verifier != nil {
		signedJWT := c.Request().Header.Get(PlaidVerificationHeader)
		if signedJWT == "" {
			slog.Warn("webhook without verification header", slog.String("remote", getClientIP(c)))
			return SendError(c, errors.WebhookRejected, errors.WithDetails("Missing verification header"))
		}
		if err := h.verifier.Verify(c.Request().Context(), signedJWT, body); err != nil {
			slog.Warn("webhook signature rejected",
				slog.String("remote", getClientIP(c)),
				slog.Any("error", err))
			return SendError(c, errors.WebhookRejected)
		}
	}

	var payload dto.WebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid webhook payload"))
	}

	if err := h.syncService.HandleWebhook(c.Request().Context(), &payload); err != nil {
		if err == repositories.ErrItemNotFound {
			return SendError(c, errors.ItemNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.NoContent(http.StatusOK)
}

// findOwnedItem resolves an item id within the owner's linked items, so one
// user can never trigger a sync of another user's item.
func (h *ItemHandler) findOwnedItem(ownerID, id uuid.UUID) (*models.Item, error) {
	items, err := h.syncService.GetItems(ownerID)
	if err != nil {
		return nil, err
	}

	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}

	return nil, repositories.ErrItemNotFound
}

func toItemResponse(item *models.Item) dto.ItemResponse {
	return dto.ItemResponse{
		ID:                   item.ID,
		ItemID:               item.ItemID,
		InstitutionName:      item.InstitutionName,
		Status:               item.Status,
		NewAccountsDetected:  item.NewAccountsDetected,
		LastSuccessfulSyncAt: item.LastSuccessfulSyncAt,
	}
}
