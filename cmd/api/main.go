package main

import (
	"context"

	"github.com/elab-development/internet-tehnologije-2025-vebaplikacijazaonlineaukcije-2021-0356/internal/api"
	v1 "github.com/elab-development/internet-tehnologije-2025-vebaplikacijazaonlineaukcije-2021-0356/internal/api/v1"
	"github.com/elab-development/internet-tehnologije-2025-vebaplikacijazaonlineaukcije-2021-0356/internal/config"
	"github.com/elab-development/internet-tehnologije-2025-vebaplikacijazaonlineaukcije-2021-0356/internal/database"
	"github.com/elab-development/internet-tehnologije-2025-vebaplikacijazaonlineaukcije-2021-0356/internal/repository"
	"github.com/elab-development/internet-tehnologije-2025-vebaplikacijazaonlineaukcije-2021-0356/internal/service"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,
			database.NewConnection,
			NewFiber,

			repository.NewUserRepository,
			repository.NewAuctionRepository,
			repository.NewBidRepository,
			repository.NewCartItemRepository,
			repository.NewCategoryRepository,
			repository.NewTransactionManager,

			service.NewBidService,
			service.NewAuctionService,
			service.NewCartService,

			v1.NewHandler,
		),
		fx.Invoke(startServer),
	).Run()
}

func NewFiber() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: api.ErrorHandler()})
}

func startServer(app *fiber.App, handler *v1.Handler, cfg *config.Config, logger *zap.Logger, lc fx.Lifecycle) {
	api.SetupRoutes(app, handler)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := app.Listen(cfg.API.Port); err != nil {
					logger.Error("server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.ShutdownWithContext(ctx)
		},
	})
}
