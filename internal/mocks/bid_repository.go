package mocks

import (
	"context"

	"github.com/elab-development/internet-tehnologije-2025-vebaplikacijazaonlineaukcije-2021-0356/internal/model"
	"github.com/stretchr/testify/mock"
)

type BidRepository struct {
	mock.Mock
}

func (m *BidRepository) Upsert(ctx context.Context, bid *model.Bid) error {
	args := m.Called(ctx, bid)
	return args.Error(0)
}

func (m *BidRepository) GetByUserAndAuction(ctx context.Context, userID, auctionID int64) (*model.Bid, error) {
	args := m.Called(ctx, userID, auctionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Bid), args.Error(1)
}

func (m *BidRepository) GetByAuctionID(ctx context.Context, auctionID int64) ([]model.Bid, error) {
	args := m.Called(ctx, auctionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Bid), args.Error(1)
}

func (m *BidRepository) FindWinning(ctx context.Context, auctionID int64) (*model.Bid, error) {
	args := m.Called(ctx, auctionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Bid), args.Error(1)
}
