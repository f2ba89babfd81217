package repository

import (
	"context"
	"errors"

	"github.com/elab-development/internet-tehnologije-2025-vebaplikacijazaonlineaukcije-2021-0356/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrCartItemNotFound = errors.New("CART_ITEM_NOT_FOUND")

type CartItemRepository interface {
	Upsert(ctx context.Context, item *model.CartItem) error
	GetByAuctionID(ctx context.Context, auctionID int64) (*model.CartItem, error)
	GetByUserID(ctx context.Context, userID int64, limit, offset int) ([]model.CartItem, error)
}

type CartItem struct {
	db *gorm.DB
}

func NewCartItemRepository(db *gorm.DB) CartItemRepository {
	return &CartItem{db: db}
}

// Upsert is keyed by auction_id so re-settling an auction rewrites the same
// row instead of creating a second winner record.
func (c *CartItem) Upsert(ctx context.Context, item *model.CartItem) error {
	db := GetTx(ctx, c.db)
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "auction_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"user_id", "final_price", "added_at"}),
	}).Create(item).Error
}

func (c *CartItem) GetByAuctionID(ctx context.Context, auctionID int64) (*model.CartItem, error) {
	var item model.CartItem

	db := GetTx(ctx, c.db)
	err := db.Where("auction_id = ?", auctionID).First(&item).Error
	if err == nil {
		return &item, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCartItemNotFound
	}

	return nil, err
}

func (c *CartItem) GetByUserID(ctx context.Context, userID int64, limit, offset int) ([]model.CartItem, error) {
	var items []model.CartItem

	db := GetTx(ctx, c.db)
	err := db.Where("user_id = ?", userID).
		Order("added_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	return items, nil
}
