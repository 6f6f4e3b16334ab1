package dto

import "github.com/google/uuid"

// CreateGoalRequest creates a savings goal
type CreateGoalRequest struct {
	Title        string `json:"title" validate:"required,min=1,max=255"`
	Icon         string `json:"icon,omitempty" validate:"omitempty,max=100"`
	TargetAmount string `json:"targetAmount" validate:"required,money_amount"`
}

// UpdateGoalProgressRequest sets the saved amount on a goal
type UpdateGoalProgressRequest struct {
	Progress string `json:"progress" validate:"required"`
}

// GoalResponse is one goal in API responses
type GoalResponse struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Icon         string    `json:"icon,omitempty"`
	TargetAmount string    `json:"targetAmount"`
	Progress     string    `json:"progress"`
	IsReached    bool      `json:"isReached"`
}
