package main

import (
	"context"
	"log/slog"
	"os"

	"pharmacy/config"
	"pharmacy/internal/delivery"
	"pharmacy/internal/delivery/http"
	"pharmacy/internal/delivery/http/router/handler"
	"pharmacy/internal/delivery/worker"
	firestoredb "pharmacy/internal/infra/firestore"
	"pharmacy/internal/infra/geo"
	"pharmacy/internal/infra/localstore"
	logs "pharmacy/internal/infra/log"
	"pharmacy/internal/infra/notify"
	"pharmacy/internal/infra/qrcode"
	"pharmacy/internal/infra/upload"
	"pharmacy/internal/infra/whatsapp"
	"pharmacy/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		firestoredb.NewClient,
		localstore.NewBucket,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			firestoredb.NewProductRepository,
			firestoredb.NewOrderRepository,
			localstore.NewPreferenceRepository,
			localstore.NewPosterRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			whatsapp.NewMessenger,
			geo.NewHTTPLocator,
			qrcode.New,
			notify.NewLogNotifier,
			upload.NewImageUploader,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			impl.NewCartService,
			impl.NewOrderService,
			impl.NewPosterService,
			impl.NewContactService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCatalogHandler,
			handler.NewCartHandler,
			handler.NewOrderHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewCatalogWatcher,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
