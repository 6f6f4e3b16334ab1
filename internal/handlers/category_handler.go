package handlers

import (
	"net/http"

	"expenseease/internal/errors"
	"expenseease/internal/models"
	"expenseease/internal/services"

	"github.com/labstack/echo/v4"
)

// CategoryHandler handles budget category HTTP requests
type CategoryHandler struct {
	categoryService services.CategoryServiceInterface
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService services.CategoryServiceInterface) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

type createCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// CreateCategory materializes a category for the owner. Idempotent.
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	ownerID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.OwnerMissing)
	}

	var req createCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	category, err := h.categoryService.EnsureCategory(ownerID, req.Name)
	if err != nil {
		if err == models.ErrCategoryNameRequired {
			return SendError(c, errors.CategoryNameMissing)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, category)
}

// ListCategories returns the owner's categories
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	ownerID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.OwnerMissing)
	}

	categories, err := h.categoryService.GetCategories(ownerID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, categories)
}
