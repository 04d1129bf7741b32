package handler

import (
	"log/slog"
	"net/http"

	"pharmacy/internal/delivery/response"
	"pharmacy/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler serves the cart, favorites and display settings.
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// AddCartItemRequest represents the request body for adding to the cart
type AddCartItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity"`
}

// UpdateCartItemRequest represents the request body for setting a quantity
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// GetCart handles reading the current cart
func (h *CartHandler) GetCart(c echo.Context) error {
	view, err := h.cartUC.View(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// AddItem handles adding a product to the cart
func (h *CartHandler) AddItem(c echo.Context) error {
	var req AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	view, err := h.cartUC.Add(c.Request().Context(), req.ProductID, req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// UpdateItem handles setting a line's quantity
func (h *CartHandler) UpdateItem(c echo.Context) error {
	var req UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}

	view, err := h.cartUC.UpdateQuantity(c.Request().Context(), c.Param("productId"), req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// RemoveItem handles removing a line
func (h *CartHandler) RemoveItem(c echo.Context) error {
	view, err := h.cartUC.Remove(c.Request().Context(), c.Param("productId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// ClearCart handles emptying the cart
func (h *CartHandler) ClearCart(c echo.Context) error {
	view, err := h.cartUC.Clear(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// ToggleFavorite handles flipping a product's favorite mark
func (h *CartHandler) ToggleFavorite(c echo.Context) error {
	favored, err := h.cartUC.ToggleFavorite(c.Request().Context(), c.Param("productId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"favorited": favored})
}

// ListFavorites handles reading the favorite product identifiers
func (h *CartHandler) ListFavorites(c echo.Context) error {
	favorites, err := h.cartUC.Favorites(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, favorites)
}

// GetSettings handles reading the display settings
func (h *CartHandler) GetSettings(c echo.Context) error {
	darkMode, lang, err := h.cartUC.Settings(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"darkMode": darkMode,
		"language": lang,
	})
}

// ToggleDarkMode handles flipping the dark mode flag
func (h *CartHandler) ToggleDarkMode(c echo.Context) error {
	darkMode, err := h.cartUC.ToggleDarkMode(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"darkMode": darkMode})
}

// ToggleLanguage handles flipping the storefront language
func (h *CartHandler) ToggleLanguage(c echo.Context) error {
	lang, err := h.cartUC.ToggleLanguage(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"language": string(lang)})
}
