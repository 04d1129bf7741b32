// Package worker hosts the background catalog watcher that keeps the
// storefront mirror synchronized with the remote collection.
package worker

import (
	"context"
	"log/slog"

	"pharmacy/internal/delivery"
	"pharmacy/internal/usecase"

	"go.uber.org/fx"
)

type catalogWatcher struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
	cancel    context.CancelFunc
}

// WatcherParams holds dependencies for the catalog watcher, injected by Fx.
type WatcherParams struct {
	fx.In

	Lc        fx.Lifecycle
	Logger    *slog.Logger
	CatalogUC usecase.CatalogUsecase
}

// NewCatalogWatcher creates the push-subscription delivery.
func NewCatalogWatcher(params WatcherParams) delivery.Delivery {
	w := &catalogWatcher{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}

	params.Lc.Append(fx.Hook{
		OnStop: w.stop,
	})

	return w
}

// Serve blocks on the catalog subscription until shutdown.
func (w *catalogWatcher) Serve(ctx context.Context) error {
	ctx, w.cancel = context.WithCancel(ctx)

	w.logger.Info("Starting catalog watcher")

	return w.catalogUC.Run(ctx)
}

func (w *catalogWatcher) stop(ctx context.Context) error {
	w.logger.Info("Shutting down catalog watcher")
	if w.cancel != nil {
		w.cancel()
	}

	return nil
}
