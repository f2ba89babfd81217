package service

import (
	"context"

	"github.com/elab-development/internet-tehnologije-2025-vebaplikacijazaonlineaukcije-2021-0356/internal/repository"
	"go.uber.org/zap"
)

// CartService exposes the won-auction holding records a buyer has waiting for
// purchase completion.
type CartService interface {
	ListMyItems(ctx context.Context, query ListCartItemsQuery) ([]CartItemView, error)
}

type cart struct {
	cartItemRepo repository.CartItemRepository
	logger       *zap.Logger
}

func NewCartService(cartItemRepo repository.CartItemRepository, logger *zap.Logger) CartService {
	return &cart{cartItemRepo: cartItemRepo, logger: logger}
}

func (c *cart) ListMyItems(ctx context.Context, query ListCartItemsQuery) ([]CartItemView, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}

	limit := query.Limit
	if limit < 1 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	items, err := c.cartItemRepo.GetByUserID(ctx, query.UserID, limit, (page-1)*limit)
	if err != nil {
		return nil, NewServiceError(ErrCodeDatabase, err)
	}

	views := make([]CartItemView, 0, len(items))
	for _, item := range items {
		views = append(views, CartItemView{
			AuctionID:  item.AuctionID,
			FinalPrice: item.FinalPrice,
			AddedAt:    item.AddedAt,
		})
	}

	return views, nil
}
