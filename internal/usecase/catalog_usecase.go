package usecase

import (
	"context"

	"pharmacy/internal/domain/entity"
)

// SortKey selects the catalog ordering.
type SortKey string

const (
	SortByName      SortKey = "name"
	SortByPriceLow  SortKey = "price-low"
	SortByPriceHigh SortKey = "price-high"
	SortByRating    SortKey = "rating"
)

// Valid reports whether k is a recognized sort key.
func (k SortKey) Valid() bool {
	switch k {
	case SortByName, SortByPriceLow, SortByPriceHigh, SortByRating:
		return true
	}

	return false
}

// BrowseQuery narrows and orders the storefront catalog view. The zero
// value means every available product sorted by name.
type BrowseQuery struct {
	Category entity.Category `json:"category"`
	Search   string          `json:"search"`
	Sort     SortKey         `json:"sort"`
	Language entity.Language `json:"language"`
}

// CategoryView is one storefront filter entry with its localized label.
type CategoryView struct {
	ID    entity.Category `json:"id"`
	Label string          `json:"label"`
}

// CatalogUsecase serves the storefront's read-only product view. The view is
// a locally cached mirror of the remote collection, refreshed by push.
type CatalogUsecase interface {
	// Browse returns available products matching the query, ordered by the
	// requested sort key.
	Browse(ctx context.Context, query BrowseQuery) ([]*entity.Product, error)

	// Product returns one product by identifier, available or not.
	Product(ctx context.Context, id string) (*entity.Product, error)

	// Categories lists the filter entries, "all" first, localized.
	Categories(lang entity.Language) []CategoryView

	// Run blocks and keeps the local mirror synchronized with the remote
	// collection until ctx is cancelled.
	Run(ctx context.Context) error
}
