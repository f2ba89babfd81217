package mocks

import (
	"context"

	"github.com/elab-development/internet-tehnologije-2025-vebaplikacijazaonlineaukcije-2021-0356/internal/model"
	"github.com/stretchr/testify/mock"
)

type CartItemRepository struct {
	mock.Mock
}

func (m *CartItemRepository) Upsert(ctx context.Context, item *model.CartItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *CartItemRepository) GetByAuctionID(ctx context.Context, auctionID int64) (*model.CartItem, error) {
	args := m.Called(ctx, auctionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CartItem), args.Error(1)
}

func (m *CartItemRepository) GetByUserID(ctx context.Context, userID int64, limit, offset int) ([]model.CartItem, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CartItem), args.Error(1)
}
