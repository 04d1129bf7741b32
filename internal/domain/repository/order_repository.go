package repository

import (
	"context"

	"pharmacy/internal/domain/entity"
)

// OrderSnapshot is one full-replace push of the `orders` collection.
type OrderSnapshot struct {
	Orders []*entity.Order
	Err    error
}

// OrderRepository gives access to the remote `orders` collection.
type OrderRepository interface {
	// List performs a one-shot fetch of the whole collection.
	List(ctx context.Context) ([]*entity.Order, error)

	// Watch blocks, delivering every collection snapshot to fn until ctx is
	// cancelled or the subscription fails.
	Watch(ctx context.Context, fn func(OrderSnapshot)) error

	// Create stores a new order and returns it with the store-assigned ID.
	Create(ctx context.Context, order *entity.Order) (*entity.Order, error)

	// UpdateStatus sets the order's status by identifier.
	UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) error

	// Delete removes the order by identifier.
	Delete(ctx context.Context, id string) error
}
