package services

import (
	"fmt"
	"log/slog"

	"expenseease/internal/models"
	"expenseease/internal/repositories"

	"github.com/google/uuid"
)

// UserService registers owner accounts. Registration synchronously
// bootstraps the default budget so every account starts with one active
// budget; nothing else ever creates it.
type UserService struct {
	userRepo      repositories.UserRepositoryInterface
	budgetService BudgetServiceInterface
	logger        *slog.Logger
}

// NewUserService creates a new user service
func NewUserService(
	userRepo repositories.UserRepositoryInterface,
	budgetService BudgetServiceInterface,
	logger *slog.Logger,
) UserServiceInterface {
	return &UserService{
		userRepo:      userRepo,
		budgetService: budgetService,
		logger:        logger,
	}
}

// Register creates an owner account and its bootstrap budget
func (s *UserService) Register(email, name string) (*models.User, error) {
	user := &models.User{
		Email: email,
		Name:  name,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	if _, err := s.budgetService.CreateDefaultBudget(user.ID); err != nil {
		return nil, fmt.Errorf("failed to bootstrap default budget: %w", err)
	}

	s.logger.Info("user registered",
		slog.String("user_id", user.ID.String()),
		slog.String("email", user.Email))

	return user, nil
}

// GetUser retrieves one user by ID
func (s *UserService) GetUser(id uuid.UUID) (*models.User, error) {
	if id == uuid.Nil {
		return nil, ErrInvalidOwnerID
	}
	return s.userRepo.GetByID(id)
}
