package service

import (
	"context"
	"errors"
	"time"

	"github.com/elab-development/internet-tehnologije-2025-vebaplikacijazaonlineaukcije-2021-0356/internal/model"
	"github.com/elab-development/internet-tehnologije-2025-vebaplikacijazaonlineaukcije-2021-0356/internal/publishers"
	"github.com/elab-development/internet-tehnologije-2025-vebaplikacijazaonlineaukcije-2021-0356/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SettlementService interface {
	SettleEndedAuctions(ctx context.Context) (SettlementResult, error)
}

type settlement struct {
	auctionRepo  repository.AuctionRepository
	bidRepo      repository.BidRepository
	cartItemRepo repository.CartItemRepository
	txManager    repository.TxManager
	publisher    publishers.SettledPublisher
	batchSize    int
	logger       *zap.Logger
}

func NewSettlementService(auctionRepo repository.AuctionRepository, bidRepo repository.BidRepository,
	cartItemRepo repository.CartItemRepository, txManager repository.TxManager,
	publisher publishers.SettledPublisher, batchSize int, logger *zap.Logger) SettlementService {
	return &settlement{
		auctionRepo:  auctionRepo,
		bidRepo:      bidRepo,
		cartItemRepo: cartItemRepo,
		txManager:    txManager,
		publisher:    publisher,
		batchSize:    batchSize,
		logger:       logger,
	}
}

// SettleEndedAuctions finalizes a bounded batch of ended auctions. Each
// auction is settled in its own transaction, so one bad auction cannot block
// the rest of the batch, and overlapping sweep ticks cannot double-settle:
// only the tick that wins the active -> finished transition counts it.
func (s *settlement) SettleEndedAuctions(ctx context.Context) (SettlementResult, error) {
	now := time.Now()

	candidates, err := s.auctionRepo.FindEndedActive(ctx, now, s.batchSize)
	if err != nil {
		s.logger.Error("Failed to find ended auctions", zap.Error(err))
		return SettlementResult{}, NewServiceError(ErrCodeDatabase, err)
	}

	if len(candidates) == 0 {
		return SettlementResult{}, nil
	}

	processed := 0
	for _, candidate := range candidates {
		outcome, err := s.settleAuction(ctx, candidate.ID, now)
		if err != nil {
			s.logger.Error("Failed to settle auction",
				zap.Int64("auctionID", candidate.ID),
				zap.Error(err))
			continue
		}

		if outcome.skipped {
			continue
		}

		processed++

		if outcome.winner != nil {
			s.publishSettled(ctx, candidate.ID, outcome.winner)
		}
	}

	if processed > 0 {
		s.logger.Info("Settlement sweep finished",
			zap.Int("processed", processed),
			zap.Int("candidates", len(candidates)))
	}

	return SettlementResult{Processed: processed}, nil
}

type settleOutcome struct {
	skipped bool
	winner  *model.Bid
}

func (s *settlement) settleAuction(ctx context.Context, auctionID int64, now time.Time) (settleOutcome, error) {
	var outcome settleOutcome

	err := s.txManager.WithTx(ctx, func(ctx context.Context) error {
		auction, err := s.auctionRepo.GetByID(ctx, auctionID)
		if err != nil {
			if errors.Is(err, repository.ErrAuctionNotFound) {
				outcome.skipped = true
				return nil
			}
			return err
		}

		if auction.Status != model.AuctionStatusActive || auction.EndTime.After(now) {
			outcome.skipped = true
			return nil
		}

		if err := s.auctionRepo.FinishAuction(ctx, auctionID, now); err != nil {
			if errors.Is(err, repository.ErrNoRowsAffected) {
				// another sweep won the transition between our read and write
				outcome.skipped = true
				return nil
			}
			return err
		}

		if !auction.HasBids() {
			return nil
		}

		winner, err := s.bidRepo.FindWinning(ctx, auctionID)
		if err != nil {
			if errors.Is(err, repository.ErrBidNotFound) {
				s.logger.Warn("Auction has a current price but no bids",
					zap.Int64("auctionID", auctionID),
					zap.String("currentPrice", auction.CurrentPrice.Decimal.String()))
				return nil
			}
			return err
		}

		item := model.CartItem{
			AuctionID:  auctionID,
			UserID:     winner.UserID,
			FinalPrice: winner.Amount,
			AddedAt:    now,
		}

		if err := s.cartItemRepo.Upsert(ctx, &item); err != nil {
			return err
		}

		outcome.winner = winner
		return nil
	})

	return outcome, err
}

// publishSettled hands the winner to downstream order processing. Settlement
// is already committed at this point, so a publish failure is logged and the
// sweep moves on rather than unwinding the finished auction.
func (s *settlement) publishSettled(ctx context.Context, auctionID int64, winner *model.Bid) {
	event := publishers.SettledEvent{
		EventID:    uuid.New().String(),
		AuctionID:  auctionID,
		WinnerID:   winner.UserID,
		FinalPrice: winner.Amount.String(),
		SettledAt:  time.Now().UTC(),
	}

	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Error("Failed to publish settled event",
			zap.Int64("auctionID", auctionID),
			zap.Error(err))
	}
}
