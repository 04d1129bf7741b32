package handler

import (
	"log/slog"
	"net/http"

	"pharmacy/internal/delivery/response"
	"pharmacy/internal/domain/entity"
	"pharmacy/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
	Logger  *slog.Logger
}

// OrderHandler manages orders from the back-office.
type OrderHandler struct {
	adminUC usecase.AdminUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		adminUC: params.AdminUC,
		logger:  params.Logger,
	}
}

// UpdateStatusRequest represents the request body for an order status change
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ListOrders handles listing every stored order
func (h *OrderHandler) ListOrders(c echo.Context) error {
	orders, err := h.adminUC.Orders(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// UpdateStatus handles moving an order between pending and delivered
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	err := h.adminUC.UpdateOrderStatus(c.Request().Context(), c.Param("id"), entity.OrderStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil)
}

// DeleteOrder handles removing an order
func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	if err := h.adminUC.DeleteOrder(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil)
}

// Statistics handles the dashboard summary
func (h *OrderHandler) Statistics(c echo.Context) error {
	stats, err := h.adminUC.Statistics(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}
