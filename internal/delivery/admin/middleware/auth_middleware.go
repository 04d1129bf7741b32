package middleware

import (
	"pharmacy/internal/delivery/response"
	domainerrors "pharmacy/internal/domain/errors"
	"pharmacy/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware guards back-office routes behind the operator session flag.
type AuthMiddleware struct {
	adminUC usecase.AdminUsecase
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(adminUC usecase.AdminUsecase) *AuthMiddleware {
	return &AuthMiddleware{adminUC: adminUC}
}

// Authenticate rejects requests while no operator session is active.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.adminUC.LoggedIn(c.Request().Context()) {
			return response.Unauthorized(c,
				domainerrors.ErrNotLoggedIn.ErrorCode(),
				domainerrors.ErrNotLoggedIn.Message(),
			)
		}

		return next(c)
	}
}
