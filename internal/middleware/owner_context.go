package middleware

import (
	"expenseease/internal/errors"
	"expenseease/internal/handlers"
	"expenseease/internal/repositories"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// OwnerIDHeader carries the authenticated user's id, set by the edge
	// gateway that terminates authentication upstream of this service.
	OwnerIDHeader = "X-User-ID"

	// OwnerIDContextKey is the context key the handlers read the owner from
	OwnerIDContextKey = "user_id"
)

// OwnerContext resolves the X-User-ID header into a verified owner and stores
// it in the request context. Requests without a resolvable owner never reach
// the handlers.
func OwnerContext(userRepo repositories.UserRepositoryInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(OwnerIDHeader)
			if header == "" {
				return handlers.SendError(c, errors.OwnerMissing)
			}

			ownerID, err := uuid.Parse(header)
			if err != nil {
				return handlers.SendError(c, errors.OwnerMissing,
					errors.WithDetails("X-User-ID must be a valid UUID"))
			}

			user, err := userRepo.GetByID(ownerID)
			if err != nil {
				if err == repositories.ErrUserNotFound {
					return handlers.SendError(c, errors.OwnerNotFound)
				}
				return handlers.SendSystemError(c, err)
			}

			c.Set(OwnerIDContextKey, user.ID)
			c.Set("user_email", user.Email)

			return next(c)
		}
	}
}
