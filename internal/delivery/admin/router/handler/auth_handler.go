package handler

import (
	"log/slog"
	"net/http"

	"pharmacy/internal/delivery/response"
	"pharmacy/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
	Logger  *slog.Logger
}

// AuthHandler manages the operator session.
type AuthHandler struct {
	adminUC usecase.AdminUsecase
	logger  *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		adminUC: params.AdminUC,
		logger:  params.Logger,
	}
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ChangePasswordRequest represents the request body for changing the password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

// Login handles operator login
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.adminUC.Login(c.Request().Context(), req.Username, req.Password); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"loggedIn": true})
}

// Logout handles operator logout
func (h *AuthHandler) Logout(c echo.Context) error {
	h.adminUC.Logout(c.Request().Context())

	return response.Success(c, http.StatusOK, map[string]bool{"loggedIn": false})
}

// Session reports the current session state
func (h *AuthHandler) Session(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]bool{
		"loggedIn": h.adminUC.LoggedIn(c.Request().Context()),
	})
}

// ChangePassword handles updating the operator password
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.adminUC.ChangePassword(c.Request().Context(), req.CurrentPassword, req.NewPassword); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil)
}
