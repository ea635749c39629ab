package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"task-manager.com/task-manager/internal/auth"
	apperrors "task-manager.com/task-manager/internal/errors"
)

const userIDKey = "user_id"

// Authenticate guards protected routes: it verifies the bearer token and
// stores the asserted user id in the request context. A missing or
// non-bearer header is rejected before any verification happens.
func Authenticate(tokens *auth.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, "Bearer ") {
				return echo.NewHTTPError(apperrors.ErrMissingToken.StatusCode, apperrors.ErrMissingToken.Message)
			}

			userID, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				return echo.NewHTTPError(apperrors.ErrInvalidToken.StatusCode, apperrors.ErrInvalidToken.Message)
			}

			c.Set(userIDKey, userID)
			return next(c)
		}
	}
}

func UserID(c echo.Context) string {
	id, _ := c.Get(userIDKey).(string)
	return id
}
