package handlers

import (
	"net/http"

	"expenseease/internal/dto"
	"expenseease/internal/errors"
	"expenseease/internal/models"
	"expenseease/internal/repositories"
	"expenseease/internal/services"

	"github.com/labstack/echo/v4"
)

// BudgetHandler handles budget-related HTTP requests
type BudgetHandler struct {
	budgetService services.BudgetServiceInterface
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(budgetService services.BudgetServiceInterface) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// CreateBudget creates a budget, materializing its category if needed
func (h *BudgetHandler) CreateBudget(c echo.Context) error {
	ownerID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.OwnerMissing)
	}

	var req dto.CreateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	budget, err := h.budgetService.CreateBudget(ownerID, &req)
	if err != nil {
		switch err {
		case services.ErrInvalidAmountFormat, models.ErrInvalidBudgetAmount:
			return SendError(c, errors.BudgetInvalidAmount)
		case services.ErrInvalidDateFormat:
			return SendError(c, errors.ValidationInvalidDate)
		case models.ErrInvalidBudgetPeriod:
			return SendError(c, errors.BudgetInvalidPeriod)
		case models.ErrInvalidBudgetDateRange:
			return SendError(c, errors.BudgetInvalidRange)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, toBudgetResponse(budget))
}

// ListBudgets returns the owner's budgets with live spend figures
func (h *BudgetHandler) ListBudgets(c echo.Context) error {
	ownerID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.OwnerMissing)
	}

	summaries, err := h.budgetService.GetBudgetSummaries(ownerID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, summaries)
}

// AdjustBudget applies the overspend ratchet to one budget
func (h *BudgetHandler) AdjustBudget(c echo.Context) error {
	ownerID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.OwnerMissing)
	}

	budgetID, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Budget ID must be a valid UUID"))
	}

	budget, adjusted, err := h.budgetService.AdjustBudget(ownerID, budgetID)
	if err != nil {
		switch err {
		case repositories.ErrBudgetNotFound:
			return SendError(c, errors.BudgetNotFound)
		case services.ErrBudgetContention:
			return SendError(c, errors.SystemServiceUnavailable,
				errors.WithDetails("Budget is being adjusted concurrently, try again"))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.AdjustBudgetResponse{
		ID:       budget.ID,
		Amount:   budget.Amount.StringFixed(2),
		Adjusted: adjusted,
	})
}

// DeleteBudget removes one budget
func (h *BudgetHandler) DeleteBudget(c echo.Context) error {
	ownerID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.OwnerMissing)
	}

	budgetID, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Budget ID must be a valid UUID"))
	}

	if err := h.budgetService.DeleteBudget(ownerID, budgetID); err != nil {
		if err == repositories.ErrBudgetNotFound {
			return SendError(c, errors.BudgetNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GenerateDynamicBudgets regenerates the suggested-budget snapshot for a period
func (h *BudgetHandler) GenerateDynamicBudgets(c echo.Context) error {
	ownerID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.OwnerMissing)
	}

	var req dto.GenerateDynamicBudgetsRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	budgets, err := h.budgetService.GenerateDynamicBudgets(ownerID, req.Period)
	if err != nil {
		if err == models.ErrInvalidBudgetPeriod {
			return SendError(c, errors.BudgetInvalidPeriod)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, toDynamicBudgetResponses(budgets))
}

// ListDynamicBudgets returns the current suggested-budget snapshot
func (h *BudgetHandler) ListDynamicBudgets(c echo.Context) error {
	ownerID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.OwnerMissing)
	}

	period := c.QueryParam("period")
	if period == "" {
		period = models.BudgetPeriodMonthly
	}

	budgets, err := h.budgetService.GetDynamicBudgets(ownerID, period)
	if err != nil {
		if err == models.ErrInvalidBudgetPeriod {
			return SendError(c, errors.BudgetInvalidPeriod)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, toDynamicBudgetResponses(budgets))
}

// AutoCreateBudgets tops up weekly budgets for uncovered categories
func (h *BudgetHandler) AutoCreateBudgets(c echo.Context) error {
	ownerID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.OwnerMissing)
	}

	created, err := h.budgetService.AutoCreateBudgets(ownerID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]int{"created": created})
}

func toBudgetResponse(b *models.Budget) dto.BudgetResponse {
	return dto.BudgetResponse{
		ID:         b.ID,
		CategoryID: b.CategoryID,
		Amount:     b.Amount.StringFixed(2),
		Period:     b.Period,
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
		Version:    b.Version,
	}
}

func toDynamicBudgetResponses(budgets []models.DynamicBudget) []dto.DynamicBudgetResponse {
	responses := make([]dto.DynamicBudgetResponse, 0, len(budgets))
	for i := range budgets {
		responses = append(responses, dto.DynamicBudgetResponse{
			Category:    budgets[i].Category,
			Amount:      budgets[i].Amount.StringFixed(2),
			Period:      budgets[i].Period,
			GeneratedAt: budgets[i].GeneratedAt,
		})
	}
	return responses
}
