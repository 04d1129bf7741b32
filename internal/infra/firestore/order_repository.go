package firestoredb

import (
	"context"
	"log/slog"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"pharmacy/internal/domain/entity"
	"pharmacy/internal/domain/repository"
	"pharmacy/internal/errors"
)

type orderRepository struct {
	client *firestore.Client
	logger *slog.Logger
}

// NewOrderRepository builds the document-store backed order repository.
// Returns nil when no client is available.
func NewOrderRepository(client *firestore.Client, logger *slog.Logger) repository.OrderRepository {
	if client == nil {
		return nil
	}

	return &orderRepository{client: client, logger: logger}
}

func (r *orderRepository) List(ctx context.Context) ([]*entity.Order, error) {
	iter := r.client.Collection(ordersCollection).Documents(ctx)
	defer iter.Stop()

	orders := make([]*entity.Order, 0)
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "iterate orders")
		}

		var doc orderDoc
		if err := snap.DataTo(&doc); err != nil {
			r.logger.Warn("skip malformed order document",
				slog.String("id", snap.Ref.ID), slog.Any("error", err))

			continue
		}
		orders = append(orders, doc.toEntity(snap.Ref.ID))
	}

	return orders, nil
}

func (r *orderRepository) Watch(ctx context.Context, fn func(repository.OrderSnapshot)) error {
	snapshots := r.client.Collection(ordersCollection).Snapshots(ctx)
	defer snapshots.Stop()

	for {
		snap, err := snapshots.Next()
		if errors.Is(err, iterator.Done) {
			return nil
		}
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			fn(repository.OrderSnapshot{Err: err})

			return errors.Wrap(err, "watch orders")
		}

		docs, err := snap.Documents.GetAll()
		if err != nil {
			fn(repository.OrderSnapshot{Err: err})

			continue
		}

		orders := make([]*entity.Order, 0, len(docs))
		for _, docSnap := range docs {
			var doc orderDoc
			if err := docSnap.DataTo(&doc); err != nil {
				r.logger.Warn("skip malformed order document",
					slog.String("id", docSnap.Ref.ID), slog.Any("error", err))

				continue
			}
			orders = append(orders, doc.toEntity(docSnap.Ref.ID))
		}
		fn(repository.OrderSnapshot{Orders: orders})
	}
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now

	ref, _, err := r.client.Collection(ordersCollection).Add(ctx, orderDocFromEntity(order))
	if err != nil {
		return nil, errors.Wrap(err, "create order")
	}

	created := *order
	created.ID = ref.ID

	return &created, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) error {
	_, err := r.client.Collection(ordersCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: string(status)},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		return errors.Wrap(err, "update order status")
	}

	return nil
}

func (r *orderRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(ordersCollection).Doc(id).Delete(ctx)
	if err != nil {
		return errors.Wrap(err, "delete order")
	}

	return nil
}
