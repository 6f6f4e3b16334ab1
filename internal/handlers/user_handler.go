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

// UserHandler handles account registration and profile requests
type UserHandler struct {
	userService services.UserServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService services.UserServiceInterface) *UserHandler {
	return &UserHandler{userService: userService}
}

// Register creates a user account and its bootstrap budget
func (h *UserHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userService.Register(req.Email, req.Name)
	if err != nil {
		if err == repositories.ErrUserAlreadyExists {
			return SendError(c, errors.OwnerAlreadyExists)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, toUserResponse(user))
}

// GetMe returns the calling user's profile
func (h *UserHandler) GetMe(c echo.Context) error {
	ownerID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.OwnerMissing)
	}

	user, err := h.userService.GetUser(ownerID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return SendError(c, errors.OwnerNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, toUserResponse(user))
}

func toUserResponse(u *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}
