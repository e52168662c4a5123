package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/PradyunT/kaizen-task/config"
	"github.com/PradyunT/kaizen-task/internal/delivery"
	"github.com/PradyunT/kaizen-task/internal/delivery/http"
	"github.com/PradyunT/kaizen-task/internal/delivery/http/middleware"
	"github.com/PradyunT/kaizen-task/internal/delivery/http/router/handler"
	"github.com/PradyunT/kaizen-task/internal/domain/service"
	"github.com/PradyunT/kaizen-task/internal/infra/auth"
	"github.com/PradyunT/kaizen-task/internal/infra/event"
	logs "github.com/PradyunT/kaizen-task/internal/infra/log"
	"github.com/PradyunT/kaizen-task/internal/infra/persistence/postgres"
	"github.com/PradyunT/kaizen-task/internal/usecase/impl"

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
			startAuthEventConsumer,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewTaskRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewArgon2Hasher,
			auth.NewJWTService,
			event.NewChannelPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewTaskService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewTaskHandler,
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
		),
	)
}

// startAuthEventConsumer drains the auth event stream. The desktop shell used
// to watch a shared logged-in flag; here the events land in the structured
// log where a UI bridge or audit sink can pick them up.
func startAuthEventConsumer(lc fx.Lifecycle, publisher service.AuthEventPublisher, logger *slog.Logger) {
	go func() {
		for evt := range publisher.Events() {
			logger.Info("Auth event",
				slog.String("type", string(evt.Type)),
				slog.String("email", evt.Email),
				slog.Time("at", evt.At),
			)
		}
	}()

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return publisher.Close()
		},
	})
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
