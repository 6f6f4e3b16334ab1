package services

import (
	"fmt"
	"log/slog"
	"strings"

	"expenseease/internal/models"
	"expenseease/internal/repositories"

	"github.com/google/uuid"
)

// CategoryService manages the per-owner category namespace. Categories are
// materialized lazily: the first transaction or budget naming one creates it.
type CategoryService struct {
	categoryRepo    repositories.CategoryRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	logger          *slog.Logger
}

// NewCategoryService creates a new category service
func NewCategoryService(
	categoryRepo repositories.CategoryRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	logger *slog.Logger,
) CategoryServiceInterface {
	return &CategoryService{
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
		logger:          logger,
	}
}

// EnsureCategory returns the owner's category with the given name, creating
// it if absent
func (s *CategoryService) EnsureCategory(ownerID uuid.UUID, name string) (*models.BudgetCategory, error) {
	if ownerID == uuid.Nil {
		return nil, ErrInvalidOwnerID
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, models.ErrCategoryNameRequired
	}

	return s.categoryRepo.EnsureExists(ownerID, name)
}

// GetCategories lists the owner's categories
func (s *CategoryService) GetCategories(ownerID uuid.UUID) ([]models.BudgetCategory, error) {
	if ownerID == uuid.Nil {
		return nil, ErrInvalidOwnerID
	}
	return s.categoryRepo.GetByOwnerID(ownerID)
}

// BulkRecategorize retags every transaction of the owner whose description
// matches case-insensitively. Matching zero rows is fine.
func (s *CategoryService) BulkRecategorize(ownerID uuid.UUID, description, category string) (int64, error) {
	if ownerID == uuid.Nil {
		return 0, ErrInvalidOwnerID
	}

	description = strings.TrimSpace(description)
	if description == "" {
		return 0, fmt.Errorf("description is required")
	}

	if _, err := s.EnsureCategory(ownerID, category); err != nil {
		return 0, err
	}

	updated, err := s.transactionRepo.BulkRecategorize(ownerID, description, category)
	if err != nil {
		return 0, err
	}

	s.logger.Info("transactions recategorized",
		slog.String("owner_id", ownerID.String()),
		slog.String("category", category),
		slog.Int64("updated", updated))

	return updated, nil
}
