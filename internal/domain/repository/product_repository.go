// Package repository defines the persistence contracts the usecase layer
// depends on. Implementations live under internal/infra.
package repository

import (
	"context"

	"pharmacy/internal/domain/entity"
)

// ProductSnapshot is one full-replace push from the remote store. Err is
// non-nil when the subscription failed; Products is then meaningless and the
// consumer must degrade to an empty catalog.
type ProductSnapshot struct {
	Products []*entity.Product
	Err      error
}

// ProductRepository gives read/write access to the remote `products`
// collection. Writes are fire-and-forget relative to any cache; caches
// re-sync through Watch.
type ProductRepository interface {
	// List performs a one-shot fetch of the whole collection.
	List(ctx context.Context) ([]*entity.Product, error)

	// Watch blocks, delivering every collection snapshot to fn until ctx is
	// cancelled or the subscription fails. Each delivery carries the entire
	// current collection, never a delta.
	Watch(ctx context.Context, fn func(ProductSnapshot)) error

	// Create stores a new product and returns it with the store-assigned ID.
	Create(ctx context.Context, product *entity.Product) (*entity.Product, error)

	// Update overwrites the product's stored fields by identifier.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes the product by identifier.
	Delete(ctx context.Context, id string) error
}
