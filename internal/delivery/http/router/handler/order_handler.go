package handler

import (
	"log/slog"
	"net/http"

	"pharmacy/internal/delivery/response"
	domainerrors "pharmacy/internal/domain/errors"
	"pharmacy/internal/errors"
	"pharmacy/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC   usecase.OrderUsecase
	ContactUC usecase.ContactUsecase
	Logger    *slog.Logger
}

// OrderHandler drives the direct-order form and the chat contact surface.
type OrderHandler struct {
	orderUC   usecase.OrderUsecase
	contactUC usecase.ContactUsecase
	logger    *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC:   params.OrderUC,
		contactUC: params.ContactUC,
		logger:    params.Logger,
	}
}

// OpenOrderRequest represents the request body for opening an order form
type OpenOrderRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

// SetQuantityRequest represents the request body for changing the quantity
type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// SubmitOrderRequest represents the request body for submitting the form
type SubmitOrderRequest struct {
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	Address       string `json:"address"`
}

// Open handles opening a direct-order form for a product
func (h *OrderHandler) Open(c echo.Context) error {
	var req OpenOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	form, err := h.orderUC.Open(c.Request().Context(), req.ProductID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, form)
}

// GetForm handles reading the open form
func (h *OrderHandler) GetForm(c echo.Context) error {
	form, err := h.orderUC.Form(c.Request().Context())
	if errors.Is(err, domainerrors.ErrNoOpenOrderForm) {
		// No open form is a normal storefront state, not a failure.
		return response.Success(c, http.StatusOK, &usecase.OrderForm{State: usecase.FormIdle})
	}
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, form)
}

// SetQuantity handles changing the form quantity
func (h *OrderHandler) SetQuantity(c echo.Context) error {
	var req SetQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	form, err := h.orderUC.SetQuantity(c.Request().Context(), req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, form)
}

// CaptureLocation handles attaching the device position to the form
func (h *OrderHandler) CaptureLocation(c echo.Context) error {
	form, err := h.orderUC.CaptureLocation(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, form)
}

// Submit handles validating and storing the order
func (h *OrderHandler) Submit(c echo.Context) error {
	var req SubmitOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	receipt, err := h.orderUC.Submit(c.Request().Context(), usecase.SubmitOrderInput{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Address:       req.Address,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, receipt)
}

// Cancel handles discarding the open form
func (h *OrderHandler) Cancel(c echo.Context) error {
	if err := h.orderUC.Cancel(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil)
}

// ContactLink returns the plain chat deep link
func (h *OrderHandler) ContactLink(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"link": h.contactUC.Link()})
}

// ContactQR renders the chat link as a PNG
func (h *OrderHandler) ContactQR(c echo.Context) error {
	png, err := h.contactUC.QR()
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
