package main

import (
	"context"
	"log/slog"
	"os"

	"pantry/config"
	"pantry/internal/delivery"
	"pantry/internal/delivery/http"
	httpmiddleware "pantry/internal/delivery/http/middleware"
	"pantry/internal/delivery/http/router/handler"
	deliverymiddleware "pantry/internal/delivery/middleware"
	"pantry/internal/infra/auth"
	"pantry/internal/infra/events"
	logs "pantry/internal/infra/log"
	"pantry/internal/infra/persistence/postgres"
	"pantry/internal/usecase/impl"

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
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAccountRepository,
			postgres.NewProfileRepository,
			postgres.NewRecipeRepository,
			postgres.NewReferenceRepository,
			postgres.NewEngagementRepository,
			postgres.NewMealPlanRepository,
			postgres.NewShoppingListRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			events.NewSessionBus,
			postgres.NewConnectivityProbe,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewConnectivityService,
			impl.NewEngagementService,
			impl.NewRecipeService,
			impl.NewReferenceService,
			impl.NewMealPlanService,
			impl.NewShoppingService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			httpmiddleware.NewAuthMiddleware,
			httpmiddleware.NewErrorMiddleware,
			deliverymiddleware.NewRequestIDMiddleware,
			deliverymiddleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewRecipeHandler,
			handler.NewReferenceHandler,
			handler.NewEngagementHandler,
			handler.NewMealPlanHandler,
			handler.NewShoppingListHandler,
			handler.NewHealthHandler,
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
