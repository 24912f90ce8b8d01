package main

import (
	"context"
	"log/slog"
	"os"

	"blog/config"
	"blog/internal/delivery"
	"blog/internal/delivery/api"
	"blog/internal/delivery/api/middleware"
	"blog/internal/delivery/api/router/handler"
	"blog/internal/infra/auth"
	logs "blog/internal/infra/log"
	"blog/internal/infra/persistence/database"
	"blog/internal/infra/persistence/gormrepo"
	"blog/internal/infra/pubsub"
	"blog/internal/infra/qrcode"
	"blog/internal/usecase/impl"

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
		injectMiddleware(),
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
		database.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			gormrepo.NewUserRepository,
			gormrepo.NewPostRepository,
			gormrepo.NewCommentRepository,
			gormrepo.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeService,
		),
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewIdentityService,
			impl.NewPostService,
			impl.NewCommentService,
			impl.NewUserService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewPostHandler,
			handler.NewCommentHandler,
			handler.NewUserHandler,
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
				os.Exit(1)
			}
		}()
	}
}
