package handlers

import (
	"net/http"

	"expenseease/internal/dto"
	"expenseease/internal/errors"
	"expenseease/internal/models"
	"expenseease/internal/repositories"
	"expenseease/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// GoalHandler handles savings goal HTTP requests
type GoalHandler struct {
	goalService services.GoalServiceInterface
}

// NewGoalHandler creates a new goal handler
func NewGoalHandler(goalService services.GoalServiceInterface) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

// CreateGoal creates a savings goal
func (h *GoalHandler) CreateGoal(c echo.Context) error {
	ownerID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.OwnerMissing)
	}

	var req dto.CreateGoalRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	goal, err := h.goalService.CreateGoal(ownerID, &req)
	if err != nil {
		switch err {
		case services.ErrInvalidAmountFormat, models.ErrInvalidGoalTarget:
			return SendError(c, errors.GoalInvalidTarget)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, toGoalResponse(goal))
}

// ListGoals returns the owner's goals
func (h *GoalHandler) ListGoals(c echo.Context) error {
	ownerID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.OwnerMissing)
	}

	goals, err := h.goalService.GetGoals(ownerID)
	if err != nil {
		return SendSystemError(c, err)
	}

	responses := make([]dto.GoalResponse, 0, len(goals))
	for i := range goals {
		responses = append(responses, toGoalResponse(&goals[i]))
	}

	return c.JSON(http.StatusOK, responses)
}

// UpdateGoalProgress sets the saved amount on a goal
func (h *GoalHandler) UpdateGoalProgress(c echo.Context) error {
	ownerID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.OwnerMissing)
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Goal ID must be a valid UUID"))
	}

	var req dto.UpdateGoalProgressRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	progress, err := decimal.NewFromString(req.Progress)
	if err != nil {
		return SendError(c, errors.ValidationInvalidAmount)
	}

	goal, err := h.goalService.UpdateGoalProgress(ownerID, id, progress)
	if err != nil {
		switch err {
		case repositories.ErrGoalNotFound:
			return SendError(c, errors.GoalNotFound)
		case models.ErrInvalidAmount:
			return SendError(c, errors.ValidationInvalidAmount,
				errors.WithDetails("Progress must not be negative"))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, toGoalResponse(goal))
}

// DeleteGoal removes one goal
func (h *GoalHandler) DeleteGoal(c echo.Context) error {
	ownerID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.OwnerMissing)
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Goal ID must be a valid UUID"))
	}

	if err := h.goalService.DeleteGoal(ownerID, id); err != nil {
		if err == repositories.ErrGoalNotFound {
			return SendError(c, errors.GoalNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func toGoalResponse(g *models.Goal) dto.GoalResponse {
	return dto.GoalResponse{
		ID:           g.ID,
		Title:        g.Title,
		Icon:         g.Icon,
		TargetAmount: g.TargetAmount.StringFixed(2),
		Progress:     g.Progress.StringFixed(2),
		IsReached:    g.IsReached(),
	}
}
