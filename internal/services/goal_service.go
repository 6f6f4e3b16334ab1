package services

import (
	"log/slog"

	"expenseease/internal/dto"
	"expenseease/internal/models"
	"expenseease/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalService manages savings goals. Goals are independent of budgets and
// transactions; progress is whatever the owner reports.
type GoalService struct {
	goalRepo repositories.GoalRepositoryInterface
	logger   *slog.Logger
}

// NewGoalService creates a new goal service
func NewGoalService(goalRepo repositories.GoalRepositoryInterface, logger *slog.Logger) GoalServiceInterface {
	return &GoalService{
		goalRepo: goalRepo,
		logger:   logger,
	}
}

// CreateGoal creates a savings goal for the owner
func (s *GoalService) CreateGoal(ownerID uuid.UUID, req *dto.CreateGoalRequest) (*models.Goal, error) {
	if ownerID == uuid.Nil {
		return nil, ErrInvalidOwnerID
	}

	target, err := decimal.NewFromString(req.TargetAmount)
	if err != nil {
		return nil, ErrInvalidAmountFormat
	}

	goal := &models.Goal{
		OwnerID:      ownerID,
		Title:        req.Title,
		Icon:         req.Icon,
		TargetAmount: target,
		Progress:     decimal.Zero,
	}

	if err := s.goalRepo.Create(goal); err != nil {
		return nil, err
	}

	s.logger.Info("goal created",
		slog.String("owner_id", ownerID.String()),
		slog.String("goal_id", goal.ID.String()))

	return goal, nil
}

// GetGoals lists the owner's goals
func (s *GoalService) GetGoals(ownerID uuid.UUID) ([]models.Goal, error) {
	if ownerID == uuid.Nil {
		return nil, ErrInvalidOwnerID
	}
	return s.goalRepo.GetByOwnerID(ownerID)
}

// UpdateGoalProgress sets the saved amount on one goal
func (s *GoalService) UpdateGoalProgress(ownerID, id uuid.UUID, progress decimal.Decimal) (*models.Goal, error) {
	if ownerID == uuid.Nil {
		return nil, ErrInvalidOwnerID
	}
	if progress.IsNegative() {
		return nil, models.ErrInvalidAmount
	}

	if err := s.goalRepo.UpdateProgress(ownerID, id, progress); err != nil {
		return nil, err
	}

	return s.goalRepo.GetByID(ownerID, id)
}

// DeleteGoal removes one goal owned by the given user
func (s *GoalService) DeleteGoal(ownerID, id uuid.UUID) error {
	if ownerID == uuid.Nil {
		return ErrInvalidOwnerID
	}
	return s.goalRepo.Delete(ownerID, id)
}
