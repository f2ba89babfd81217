package mocks

import (
	"context"
	"time"

	"github.com/elab-development/internet-tehnologije-2025-vebaplikacijazaonlineaukcije-2021-0356/internal/model"
	"github.com/elab-development/internet-tehnologije-2025-vebaplikacijazaonlineaukcije-2021-0356/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type AuctionRepository struct {
	mock.Mock
}

func (m *AuctionRepository) Create(ctx context.Context, auction *model.Auction) error {
	args := m.Called(ctx, auction)
	return args.Error(0)
}

func (m *AuctionRepository) GetByID(ctx context.Context, id int64) (*model.Auction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Auction), args.Error(1)
}

func (m *AuctionRepository) List(ctx context.Context, query repository.AuctionQuery) ([]model.Auction, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.Auction), args.Get(1).(int64), args.Error(2)
}

func (m *AuctionRepository) RaiseCurrentPrice(ctx context.Context, auctionID int64, amount decimal.Decimal, now time.Time) error {
	args := m.Called(ctx, auctionID, amount, now)
	return args.Error(0)
}

func (m *AuctionRepository) FindEndedActive(ctx context.Context, now time.Time, limit int) ([]model.Auction, error) {
	args := m.Called(ctx, now, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Auction), args.Error(1)
}

func (m *AuctionRepository) FinishAuction(ctx context.Context, auctionID int64, now time.Time) error {
	args := m.Called(ctx, auctionID, now)
	return args.Error(0)
}

func (m *AuctionRepository) ArchiveIfUnbid(ctx context.Context, auctionID int64, now time.Time) error {
	args := m.Called(ctx, auctionID, now)
	return args.Error(0)
}

func (m *AuctionRepository) Archive(ctx context.Context, auctionID int64, now time.Time) error {
	args := m.Called(ctx, auctionID, now)
	return args.Error(0)
}
