package repository

import (
	"context"
	"errors"
	"time"

	"github.com/elab-development/internet-tehnologije-2025-vebaplikacijazaonlineaukcije-2021-0356/internal/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrAuctionNotFound = errors.New("AUCTION_NOT_FOUND")
var ErrNoRowsAffected = errors.New("NO_ROWS_AFFECTED")

type AuctionQuery struct {
	Status     model.AuctionStatus
	CategoryID int64
	SellerID   int64
	SortBy     string
	SortOrder  string
	Limit      int
	Offset     int
}

type AuctionRepository interface {
	Create(ctx context.Context, auction *model.Auction) error
	GetByID(ctx context.Context, id int64) (*model.Auction, error)
	List(ctx context.Context, query AuctionQuery) ([]model.Auction, int64, error)
	RaiseCurrentPrice(ctx context.Context, auctionID int64, amount decimal.Decimal, now time.Time) error
	FindEndedActive(ctx context.Context, now time.Time, limit int) ([]model.Auction, error)
	FinishAuction(ctx context.Context, auctionID int64, now time.Time) error
	ArchiveIfUnbid(ctx context.Context, auctionID int64, now time.Time) error
	Archive(ctx context.Context, auctionID int64, now time.Time) error
}

type Auction struct {
	db *gorm.DB
}

func NewAuctionRepository(db *gorm.DB) AuctionRepository {
	return &Auction{db: db}
}

func (a *Auction) Create(ctx context.Context, auction *model.Auction) error {
	db := GetTx(ctx, a.db)
	return db.Create(auction).Error
}

func (a *Auction) GetByID(ctx context.Context, id int64) (*model.Auction, error) {
	var auction model.Auction

	db := GetTx(ctx, a.db)
	err := db.Where("id = ?", id).First(&auction).Error
	if err == nil {
		return &auction, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAuctionNotFound
	}

	return nil, err
}

func (a *Auction) List(ctx context.Context, query AuctionQuery) ([]model.Auction, int64, error) {
	var auctions []model.Auction
	var total int64

	db := GetTx(ctx, a.db).Model(&model.Auction{})

	if query.Status != "" {
		db = db.Where("status = ?", query.Status)
	}
	if query.CategoryID != 0 {
		db = db.Where("category_id = ?", query.CategoryID)
	}
	if query.SellerID != 0 {
		db = db.Where("seller_id = ?", query.SellerID)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Order(query.SortBy + " " + query.SortOrder).
		Limit(query.Limit).
		Offset(query.Offset).
		Find(&auctions).Error
	if err != nil {
		return nil, 0, err
	}

	return auctions, total, nil
}

// RaiseCurrentPrice is the compare-and-swap at the heart of bid placement. The
// WHERE clause re-asserts every precondition so that a concurrent bid that
// already raised the price makes this update touch zero rows instead of
// overwriting a higher amount.
func (a *Auction) RaiseCurrentPrice(ctx context.Context, auctionID int64, amount decimal.Decimal, now time.Time) error {
	db := GetTx(ctx, a.db)
	result := db.Model(&model.Auction{}).
		Where("id = ? AND status = ? AND start_time <= ? AND end_time >= ?",
			auctionID, model.AuctionStatusActive, now, now).
		Where("(current_price IS NULL AND starting_price < ?) OR current_price < ?", amount, amount).
		Updates(map[string]interface{}{"current_price": amount, "updated_at": now})

	if result.RowsAffected == 0 {
		return ErrNoRowsAffected
	}

	return result.Error
}

func (a *Auction) FindEndedActive(ctx context.Context, now time.Time, limit int) ([]model.Auction, error) {
	var auctions []model.Auction

	db := GetTx(ctx, a.db)
	err := db.Where("status = ? AND end_time <= ?", model.AuctionStatusActive, now).
		Order("end_time ASC").
		Limit(limit).
		Find(&auctions).Error
	if err != nil {
		return nil, err
	}

	return auctions, nil
}

// FinishAuction moves active -> finished. Guarding on status means only one of
// any racing sweep ticks wins the transition; losers see ErrNoRowsAffected.
func (a *Auction) FinishAuction(ctx context.Context, auctionID int64, now time.Time) error {
	db := GetTx(ctx, a.db)
	result := db.Model(&model.Auction{}).
		Where("id = ? AND status = ? AND end_time <= ?", auctionID, model.AuctionStatusActive, now).
		Updates(map[string]interface{}{"status": model.AuctionStatusFinished, "updated_at": now})

	if result.RowsAffected == 0 {
		return ErrNoRowsAffected
	}

	return result.Error
}

// ArchiveIfUnbid archives only while no bid has been placed. The current_price
// IS NULL condition protects against a first bid landing concurrently.
func (a *Auction) ArchiveIfUnbid(ctx context.Context, auctionID int64, now time.Time) error {
	db := GetTx(ctx, a.db)
	result := db.Model(&model.Auction{}).
		Where("id = ? AND status = ? AND current_price IS NULL", auctionID, model.AuctionStatusActive).
		Updates(map[string]interface{}{"status": model.AuctionStatusArchived, "updated_at": now})

	if result.RowsAffected == 0 {
		return ErrNoRowsAffected
	}

	return result.Error
}

func (a *Auction) Archive(ctx context.Context, auctionID int64, now time.Time) error {
	db := GetTx(ctx, a.db)
	result := db.Model(&model.Auction{}).
		Where("id = ?", auctionID).
		Updates(map[string]interface{}{"status": model.AuctionStatusArchived, "updated_at": now})

	if result.RowsAffected == 0 {
		return ErrNoRowsAffected
	}

	return result.Error
}
