// Package firestoredb wires the hosted document store behind the domain
// repository interfaces.
package firestoredb

import (
	"context"
	"log/slog"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"

	"pharmacy/config"
	"pharmacy/internal/errors"
)

const (
	productsCollection = "products"
	ordersCollection   = "orders"
)

// NewClient connects to the hosted document store. It returns nil when no
// remote store is configured, in which case the storefront falls back to the
// built-in seed catalog.
func NewClient(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*firestore.Client, error) {
	if cfg.Firestore == nil || cfg.Firestore.ProjectID == "" {
		logger.Warn("firestore not configured, serving seed catalog only")

		return nil, nil
	}

	var opts []option.ClientOption
	if cfg.Firestore.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firestore.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firestore.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "firebase.NewApp")
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "app.Firestore")
	}

	logger.Info("connected to firestore", slog.String("projectId", cfg.Firestore.ProjectID))

	return client, nil
}
