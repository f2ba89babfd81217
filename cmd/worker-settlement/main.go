package main

import (
	"context"
	"time"

	"github.com/elab-development/internet-tehnologije-2025-vebaplikacijazaonlineaukcije-2021-0356/internal/config"
	"github.com/elab-development/internet-tehnologije-2025-vebaplikacijazaonlineaukcije-2021-0356/internal/publishers"
	"github.com/elab-development/internet-tehnologije-2025-vebaplikacijazaonlineaukcije-2021-0356/internal/repository"
	"github.com/elab-development/internet-tehnologije-2025-vebaplikacijazaonlineaukcije-2021-0356/internal/service"
	"github.com/elab-development/internet-tehnologije-2025-vebaplikacijazaonlineaukcije-2021-0356/pkg/mq"
	"github.com/elab-development/internet-tehnologije-2025-vebaplikacijazaonlineaukcije-2021-0356/pkg/mysql"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,

			NewConnectionDB,
			NewMQConnection,
			NewMQPublisher,

			repository.NewAuctionRepository,
			repository.NewBidRepository,
			repository.NewCartItemRepository,
			repository.NewTransactionManager,

			publishers.NewSettledPublisher,

			NewSettlementService,
		),
		fx.Invoke(runSettlementSweeper),
	).Run()
}

// runSettlementSweeper drives the sweep on a fixed interval. Overlapping runs
// are safe: per-auction idempotency lives in the settlement service, so the
// ticker needs no lock around it.
func runSettlementSweeper(cfg *config.Config, settlement service.SettlementService, logger *zap.Logger,
	rabbit *mq.RabbitMQ, lc fx.Lifecycle) {
	appCtx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rabbit.DeclareTopology([]string{publishers.SettledQueue}); err != nil {
				logger.Error("declare topology failed", zap.Error(err))
				return err
			}

			logger.Info("queue declared", zap.String("queue", publishers.SettledQueue))

			go func() {
				ticker := time.NewTicker(cfg.Settlement.Interval)
				defer ticker.Stop()

				for {
					select {
					case <-ticker.C:
						result, err := settlement.SettleEndedAuctions(appCtx)
						if err != nil {
							logger.Error("settlement sweep failed", zap.Error(err))
							continue
						}
						if result.Processed > 0 {
							logger.Info("settlement sweep processed auctions",
								zap.Int("processed", result.Processed))
						}
					case <-appCtx.Done():
						logger.Info("sweeper context cancelled")
						return
					}
				}
			}()

			logger.Info("settlement sweeper started",
				zap.Duration("interval", cfg.Settlement.Interval),
				zap.Int("batchSize", cfg.Settlement.BatchSize))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping settlement sweeper")
			cancel()
			return rabbit.Close()
		},
	})
}

func NewConnectionDB(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	ctx := context.Background()
	return mysql.NewConnection(ctx, cfg.Database, logger)
}

func NewMQConnection(cfg *config.Config, logger *zap.Logger) (*mq.RabbitMQ, error) {
	return mq.NewConnection(cfg.RabbitMQ, logger)
}

func NewMQPublisher(rabbitMQ *mq.RabbitMQ) (mq.Publisher, error) {
	return rabbitMQ.CreatePublisher()
}

func NewSettlementService(cfg *config.Config, auctionRepo repository.AuctionRepository,
	bidRepo repository.BidRepository, cartItemRepo repository.CartItemRepository,
	txManager repository.TxManager, publisher publishers.SettledPublisher,
	logger *zap.Logger) service.SettlementService {
	return service.NewSettlementService(auctionRepo, bidRepo, cartItemRepo, txManager, publisher,
		cfg.Settlement.BatchSize, logger)
}
