package main

import (
	"context"
	"log/slog"
	"os"

	"stampshop/config"
	"stampshop/internal/delivery"
	"stampshop/internal/delivery/api"
	"stampshop/internal/delivery/api/middleware"
	"stampshop/internal/delivery/api/router/handler"
	"stampshop/internal/domain/service"
	"stampshop/internal/infra/auth"
	"stampshop/internal/infra/email"
	logs "stampshop/internal/infra/log"
	"stampshop/internal/infra/metrics"
	"stampshop/internal/infra/payment/stripe"
	"stampshop/internal/infra/persistence/postgres"
	"stampshop/internal/infra/pubsub"
	"stampshop/internal/infra/qrcode"
	"stampshop/internal/infra/storage"
	"stampshop/internal/usecase"
	"stampshop/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		metrics.Module,
		storage.Module,
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewOrderRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			auth.NewTOTPVerifier,
			email.NewComposer,
			email.NewEmailSender,
			stripe.NewPaymentGateway,
			qrcode.NewQRCodeService,
			// The inline publisher hands order events straight to the notifier.
			func(uc usecase.NotificationUsecase) service.OrderEventHandler {
				return uc
			},
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewOrderService,
			impl.NewPaymentService,
			impl.NewTrackingService,
			impl.NewAdminService,
			impl.NewUploadService,
			impl.NewNotificationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAdminAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewOrderHandler,
			handler.NewPaymentHandler,
			handler.NewUploadHandler,
			handler.NewAdminHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
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

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
