package usecase

import (
	"context"

	"pharmacy/internal/domain/entity"
)

// CartView is the cart as the storefront renders it.
type CartView struct {
	Lines []entity.CartLine `json:"lines"`
	Count int               `json:"count"`
	Total float64           `json:"total"`
}

// CartUsecase manages the shopper's cart, favorites and display settings.
// Every mutation is persisted synchronously to the on-device record before
// it returns.
type CartUsecase interface {
	// View returns the current cart.
	View(ctx context.Context) (*CartView, error)

	// Add merges quantity into the product's line, creating it on first add.
	Add(ctx context.Context, productID string, quantity int) (*CartView, error)

	// UpdateQuantity sets the line's quantity. Zero or negative removes the
	// line; an unknown product identifier is a no-op.
	UpdateQuantity(ctx context.Context, productID string, quantity int) (*CartView, error)

	// Remove drops the product's line.
	Remove(ctx context.Context, productID string) (*CartView, error)

	// Clear empties the cart. Clearing an empty cart succeeds.
	Clear(ctx context.Context) (*CartView, error)

	// ToggleFavorite flips the product's favorite mark and reports the new
	// state.
	ToggleFavorite(ctx context.Context, productID string) (bool, error)

	// Favorites lists the favorited product identifiers.
	Favorites(ctx context.Context) ([]string, error)

	// ToggleDarkMode flips the dark mode flag and reports the new state.
	ToggleDarkMode(ctx context.Context) (bool, error)

	// ToggleLanguage flips the storefront language and reports the new one.
	ToggleLanguage(ctx context.Context) (entity.Language, error)

	// Settings returns the current display settings.
	Settings(ctx context.Context) (darkMode bool, lang entity.Language, err error)
}
