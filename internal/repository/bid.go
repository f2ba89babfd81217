package repository

import (
	"context"
	"errors"

	"github.com/elab-development/internet-tehnologije-2025-vebaplikacijazaonlineaukcije-2021-0356/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrBidNotFound = errors.New("BID_NOT_FOUND")

type BidRepository interface {
	Upsert(ctx context.Context, bid *model.Bid) error
	GetByUserAndAuction(ctx context.Context, userID, auctionID int64) (*model.Bid, error)
	GetByAuctionID(ctx context.Context, auctionID int64) ([]model.Bid, error)
	FindWinning(ctx context.Context, auctionID int64) (*model.Bid, error)
}

type Bid struct {
	db *gorm.DB
}

func NewBidRepository(db *gorm.DB) BidRepository {
	return &Bid{db: db}
}

// Upsert keeps at most one bid row per (user, auction): a rebid overwrites the
// amount and the timestamp in place.
func (b *Bid) Upsert(ctx context.Context, bid *model.Bid) error {
	db := GetTx(ctx, b.db)
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "auction_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount", "created_at"}),
	}).Create(bid).Error
}

func (b *Bid) GetByUserAndAuction(ctx context.Context, userID, auctionID int64) (*model.Bid, error) {
	var bid model.Bid

	db := GetTx(ctx, b.db)
	err := db.Where("user_id = ? AND auction_id = ?", userID, auctionID).First(&bid).Error
	if err == nil {
		return &bid, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBidNotFound
	}

	return nil, err
}

func (b *Bid) GetByAuctionID(ctx context.Context, auctionID int64) ([]model.Bid, error) {
	var bids []model.Bid

	db := GetTx(ctx, b.db)
	err := db.Where("auction_id = ?", auctionID).
		Order("amount DESC").
		Find(&bids).Error
	if err != nil {
		return nil, err
	}

	return bids, nil
}

// FindWinning returns the highest bid; among equal amounts the earliest one
// wins, so the first bidder to reach a price keeps it.
func (b *Bid) FindWinning(ctx context.Context, auctionID int64) (*model.Bid, error) {
	var bid model.Bid

	db := GetTx(ctx, b.db)
	err := db.Where("auction_id = ?", auctionID).
		Order("amount DESC, created_at ASC").
		First(&bid).Error
	if err == nil {
		return &bid, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBidNotFound
	}

	return nil, err
}
