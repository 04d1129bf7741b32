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

type productRepository struct {
	client *firestore.Client
	logger *slog.Logger
}

// NewProductRepository builds the document-store backed product repository.
// Returns nil when no client is available.
func NewProductRepository(client *firestore.Client, logger *slog.Logger) repository.ProductRepository {
	if client == nil {
		return nil
	}

	return &productRepository{client: client, logger: logger}
}

func (r *productRepository) List(ctx context.Context) ([]*entity.Product, error) {
	iter := r.client.Collection(productsCollection).Documents(ctx)
	defer iter.Stop()

	products := make([]*entity.Product, 0)
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "iterate products")
		}

		var doc productDoc
		if err := snap.DataTo(&doc); err != nil {
			r.logger.Warn("skip malformed product document",
				slog.String("id", snap.Ref.ID), slog.Any("error", err))

			continue
		}
		products = append(products, doc.toEntity(snap.Ref.ID))
	}

	return products, nil
}

func (r *productRepository) Watch(ctx context.Context, fn func(repository.ProductSnapshot)) error {
	snapshots := r.client.Collection(productsCollection).Snapshots(ctx)
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
			fn(repository.ProductSnapshot{Err: err})

			return errors.Wrap(err, "watch products")
		}

		docs, err := snap.Documents.GetAll()
		if err != nil {
			fn(repository.ProductSnapshot{Err: err})

			continue
		}

		products := make([]*entity.Product, 0, len(docs))
		for _, docSnap := range docs {
			var doc productDoc
			if err := docSnap.DataTo(&doc); err != nil {
				r.logger.Warn("skip malformed product document",
					slog.String("id", docSnap.Ref.ID), slog.Any("error", err))

				continue
			}
			products = append(products, doc.toEntity(docSnap.Ref.ID))
		}
		fn(repository.ProductSnapshot{Products: products})
	}
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	ref, _, err := r.client.Collection(productsCollection).Add(ctx, productDocFromEntity(product))
	if err != nil {
		return nil, errors.Wrap(err, "create product")
	}

	created := *product
	created.ID = ref.ID

	return &created, nil
}

func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	product.UpdatedAt = time.Now()

	_, err := r.client.Collection(productsCollection).Doc(product.ID).
		Set(ctx, productDocFromEntity(product))
	if err != nil {
		return errors.Wrap(err, "update product")
	}

	return nil
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(productsCollection).Doc(id).Delete(ctx)
	if err != nil {
		return errors.Wrap(err, "delete product")
	}

	return nil
}
