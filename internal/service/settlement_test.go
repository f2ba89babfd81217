package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/elab-development/internet-tehnologije-2025-vebaplikacijazaonlineaukcije-2021-0356/internal/mocks"
	"github.com/elab-development/internet-tehnologije-2025-vebaplikacijazaonlineaukcije-2021-0356/internal/model"
	"github.com/elab-development/internet-tehnologije-2025-vebaplikacijazaonlineaukcije-2021-0356/internal/publishers"
	"github.com/elab-development/internet-tehnologije-2025-vebaplikacijazaonlineaukcije-2021-0356/internal/repository"
	"github.com/elab-development/internet-tehnologije-2025-vebaplikacijazaonlineaukcije-2021-0356/internal/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

const sweepBatchSize = 50

type settlementFixture struct {
	auctionRepo  *mocks.AuctionRepository
	bidRepo      *mocks.BidRepository
	cartItemRepo *mocks.CartItemRepository
	txManager    *mocks.TxManager
	publisher    *mocks.SettledPublisher
	svc          service.SettlementService
}

func newSettlementFixture() *settlementFixture {
	f := &settlementFixture{
		auctionRepo:  &mocks.AuctionRepository{},
		bidRepo:      &mocks.BidRepository{},
		cartItemRepo: &mocks.CartItemRepository{},
		txManager:    &mocks.TxManager{},
		publisher:    &mocks.SettledPublisher{},
	}
	f.svc = service.NewSettlementService(f.auctionRepo, f.bidRepo, f.cartItemRepo, f.txManager,
		f.publisher, sweepBatchSize, zap.NewNop())
	return f
}

func endedAuction(id int64, price int64) *model.Auction {
	auction := &model.Auction{
		ID:            id,
		StartingPrice: decimal.NewFromInt(100),
		StartTime:     time.Now().Add(-2 * time.Hour),
		EndTime:       time.Now().Add(-time.Minute),
		Status:        model.AuctionStatusActive,
		SellerID:      42,
	}
	if price > 0 {
		auction.CurrentPrice = decimal.NewNullDecimal(decimal.NewFromInt(price))
	}
	return auction
}

func TestSettlement_SettleEndedAuctions(t *testing.T) {
	t.Run("returns zero when nothing has ended", func(t *testing.T) {
		f := newSettlementFixture()

		f.auctionRepo.On("FindEndedActive", context.Background(),
			mock.AnythingOfType("time.Time"), sweepBatchSize).Return([]model.Auction{}, nil)

		result, err := f.svc.SettleEndedAuctions(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 0, result.Processed)
		f.txManager.AssertNotCalled(t, "WithTx")
	})

	t.Run("settles ended auction and records the winner", func(t *testing.T) {
		f := newSettlementFixture()

		candidate := endedAuction(1, 200)

		f.auctionRepo.On("FindEndedActive", context.Background(),
			mock.AnythingOfType("time.Time"), sweepBatchSize).Return([]model.Auction{*candidate}, nil)

		f.txManager.On("WithTx", context.Background(),
			mock.AnythingOfType("func(context.Context) error")).Return(nil)

		f.auctionRepo.On("GetByID", mock.AnythingOfType("*context.valueCtx"), int64(1)).
			Return(candidate, nil)
		f.auctionRepo.On("FinishAuction", mock.AnythingOfType("*context.valueCtx"), int64(1),
			mock.AnythingOfType("time.Time")).Return(nil)

		winner := &model.Bid{ID: 9, UserID: 2, AuctionID: 1, Amount: decimal.NewFromInt(200)}
		f.bidRepo.On("FindWinning", mock.AnythingOfType("*context.valueCtx"), int64(1)).
			Return(winner, nil)

		f.cartItemRepo.On("Upsert", mock.AnythingOfType("*context.valueCtx"),
			mock.MatchedBy(func(item *model.CartItem) bool {
				return item.AuctionID == 1 && item.UserID == 2 &&
					item.FinalPrice.Equal(decimal.NewFromInt(200))
			})).Return(nil)

		f.publisher.On("Publish", context.Background(),
			mock.MatchedBy(func(event publishers.SettledEvent) bool {
				return event.AuctionID == 1 && event.WinnerID == 2 &&
					event.FinalPrice == "200" && event.EventID != ""
			})).Return(nil)

		result, err := f.svc.SettleEndedAuctions(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 1, result.Processed)

		f.auctionRepo.AssertExpectations(t)
		f.bidRepo.AssertExpectations(t)
		f.cartItemRepo.AssertExpectations(t)
		f.publisher.AssertExpectations(t)
	})

	t.Run("finishes no-bid auction without a holding record", func(t *testing.T) {
		f := newSettlementFixture()

		candidate := endedAuction(1, 0)

		f.auctionRepo.On("FindEndedActive", context.Background(),
			mock.AnythingOfType("time.Time"), sweepBatchSize).Return([]model.Auction{*candidate}, nil)
		f.txManager.On("WithTx", context.Background(),
			mock.AnythingOfType("func(context.Context) error")).Return(nil)
		f.auctionRepo.On("GetByID", mock.AnythingOfType("*context.valueCtx"), int64(1)).
			Return(candidate, nil)
		f.auctionRepo.On("FinishAuction", mock.AnythingOfType("*context.valueCtx"), int64(1),
			mock.AnythingOfType("time.Time")).Return(nil)

		result, err := f.svc.SettleEndedAuctions(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 1, result.Processed)

		f.bidRepo.AssertNotCalled(t, "FindWinning")
		f.cartItemRepo.AssertNotCalled(t, "Upsert")
		f.publisher.AssertNotCalled(t, "Publish")
	})

	t.Run("skips auction already settled by an earlier tick", func(t *testing.T) {
		f := newSettlementFixture()

		candidate := endedAuction(1, 200)
		settled := *candidate
		settled.Status = model.AuctionStatusFinished

		f.auctionRepo.On("FindEndedActive", context.Background(),
			mock.AnythingOfType("time.Time"), sweepBatchSize).Return([]model.Auction{*candidate}, nil)
		f.txManager.On("WithTx", context.Background(),
			mock.AnythingOfType("func(context.Context) error")).Return(nil)
		f.auctionRepo.On("GetByID", mock.AnythingOfType("*context.valueCtx"), int64(1)).
			Return(&settled, nil)

		result, err := f.svc.SettleEndedAuctions(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 0, result.Processed)

		f.auctionRepo.AssertNotCalled(t, "FinishAuction")
		f.cartItemRepo.AssertNotCalled(t, "Upsert")
	})

	t.Run("skips auction when another sweep wins the finish race", func(t *testing.T) {
		f := newSettlementFixture()

		candidate := endedAuction(1, 200)

		f.auctionRepo.On("FindEndedActive", context.Background(),
			mock.AnythingOfType("time.Time"), sweepBatchSize).Return([]model.Auction{*candidate}, nil)
		f.txManager.On("WithTx", context.Background(),
			mock.AnythingOfType("func(context.Context) error")).Return(nil)
		f.auctionRepo.On("GetByID", mock.AnythingOfType("*context.valueCtx"), int64(1)).
			Return(candidate, nil)
		f.auctionRepo.On("FinishAuction", mock.AnythingOfType("*context.valueCtx"), int64(1),
			mock.AnythingOfType("time.Time")).Return(repository.ErrNoRowsAffected)

		result, err := f.svc.SettleEndedAuctions(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 0, result.Processed)

		f.bidRepo.AssertNotCalled(t, "FindWinning")
	})

	t.Run("tolerates priced auction without bids", func(t *testing.T) {
		f := newSettlementFixture()

		candidate := endedAuction(1, 200)

		f.auctionRepo.On("FindEndedActive", context.Background(),
			mock.AnythingOfType("time.Time"), sweepBatchSize).Return([]model.Auction{*candidate}, nil)
		f.txManager.On("WithTx", context.Background(),
			mock.AnythingOfType("func(context.Context) error")).Return(nil)
		f.auctionRepo.On("GetByID", mock.AnythingOfType("*context.valueCtx"), int64(1)).
			Return(candidate, nil)
		f.auctionRepo.On("FinishAuction", mock.AnythingOfType("*context.valueCtx"), int64(1),
			mock.AnythingOfType("time.Time")).Return(nil)
		f.bidRepo.On("FindWinning", mock.AnythingOfType("*context.valueCtx"), int64(1)).
			Return(nil, repository.ErrBidNotFound)

		result, err := f.svc.SettleEndedAuctions(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 1, result.Processed)

		f.cartItemRepo.AssertNotCalled(t, "Upsert")
		f.publisher.AssertNotCalled(t, "Publish")
	})

	t.Run("publish failure does not unwind settlement", func(t *testing.T) {
		f := newSettlementFixture()

		candidate := endedAuction(1, 200)

		f.auctionRepo.On("FindEndedActive", context.Background(),
			mock.AnythingOfType("time.Time"), sweepBatchSize).Return([]model.Auction{*candidate}, nil)
		f.txManager.On("WithTx", context.Background(),
			mock.AnythingOfType("func(context.Context) error")).Return(nil)
		f.auctionRepo.On("GetByID", mock.AnythingOfType("*context.valueCtx"), int64(1)).
			Return(candidate, nil)
		f.auctionRepo.On("FinishAuction", mock.AnythingOfType("*context.valueCtx"), int64(1),
			mock.AnythingOfType("time.Time")).Return(nil)
		f.bidRepo.On("FindWinning", mock.AnythingOfType("*context.valueCtx"), int64(1)).
			Return(&model.Bid{ID: 9, UserID: 2, AuctionID: 1, Amount: decimal.NewFromInt(200)}, nil)
		f.cartItemRepo.On("Upsert", mock.AnythingOfType("*context.valueCtx"),
			mock.AnythingOfType("*model.CartItem")).Return(nil)
		f.publisher.On("Publish", context.Background(),
			mock.AnythingOfType("publishers.SettledEvent")).Return(errors.New("broker unavailable"))

		result, err := f.svc.SettleEndedAuctions(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 1, result.Processed)
	})

	t.Run("one failing auction does not block the rest of the batch", func(t *testing.T) {
		f := newSettlementFixture()

		broken := endedAuction(1, 200)
		healthy := endedAuction(2, 0)

		f.auctionRepo.On("FindEndedActive", context.Background(),
			mock.AnythingOfType("time.Time"), sweepBatchSize).
			Return([]model.Auction{*broken, *healthy}, nil)
		f.txManager.On("WithTx", context.Background(),
			mock.AnythingOfType("func(context.Context) error")).Return(nil)

		f.auctionRepo.On("GetByID", mock.AnythingOfType("*context.valueCtx"), int64(1)).
			Return(nil, errors.New("connection reset"))
		f.auctionRepo.On("GetByID", mock.AnythingOfType("*context.valueCtx"), int64(2)).
			Return(healthy, nil)
		f.auctionRepo.On("FinishAuction", mock.AnythingOfType("*context.valueCtx"), int64(2),
			mock.AnythingOfType("time.Time")).Return(nil)

		result, err := f.svc.SettleEndedAuctions(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 1, result.Processed)
	})

	t.Run("winner with equal amounts is the earliest bid", func(t *testing.T) {
		f := newSettlementFixture()

		candidate := endedAuction(1, 200)

		f.auctionRepo.On("FindEndedActive", context.Background(),
			mock.AnythingOfType("time.Time"), sweepBatchSize).Return([]model.Auction{*candidate}, nil)
		f.txManager.On("WithTx", context.Background(),
			mock.AnythingOfType("func(context.Context) error")).Return(nil)
		f.auctionRepo.On("GetByID", mock.AnythingOfType("*context.valueCtx"), int64(1)).
			Return(candidate, nil)
		f.auctionRepo.On("FinishAuction", mock.AnythingOfType("*context.valueCtx"), int64(1),
			mock.AnythingOfType("time.Time")).Return(nil)

		// user B reached 200 before user C; FindWinning orders by amount then time
		first := &model.Bid{ID: 5, UserID: 20, AuctionID: 1, Amount: decimal.NewFromInt(200),
			CreatedAt: time.Now().Add(-10 * time.Minute)}
		f.bidRepo.On("FindWinning", mock.AnythingOfType("*context.valueCtx"), int64(1)).
			Return(first, nil)

		f.cartItemRepo.On("Upsert", mock.AnythingOfType("*context.valueCtx"),
			mock.MatchedBy(func(item *model.CartItem) bool {
				return item.UserID == 20 && item.FinalPrice.Equal(decimal.NewFromInt(200))
			})).Return(nil)
		f.publisher.On("Publish", context.Background(),
			mock.AnythingOfType("publishers.SettledEvent")).Return(nil)

		result, err := f.svc.SettleEndedAuctions(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 1, result.Processed)
		f.cartItemRepo.AssertExpectations(t)
	})
}
