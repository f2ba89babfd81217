package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type AuctionStatus string

const (
	AuctionStatusActive   AuctionStatus = "active"
	AuctionStatusFinished AuctionStatus = "finished"
	AuctionStatusArchived AuctionStatus = "archived"
)

type Auction struct {
	ID            int64               `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	Title         string              `gorm:"column:title"`
	Description   string              `gorm:"column:description"`
	ImageURL      string              `gorm:"column:image_url"`
	StartingPrice decimal.Decimal     `gorm:"column:starting_price;type:decimal(10,2)"`
	CurrentPrice  decimal.NullDecimal `gorm:"column:current_price;type:decimal(10,2)"`
	StartTime     time.Time           `gorm:"column:start_time"`
	EndTime       time.Time           `gorm:"column:end_time;index:idx_status_end_time,priority:2"`
	Status        AuctionStatus       `gorm:"column:status;index:idx_status_end_time,priority:1"`
	SellerID      int64               `gorm:"column:seller_id;index"`
	CategoryID    int64               `gorm:"column:category_id;index"`
	CreatedAt     time.Time           `gorm:"column:created_at"`
	UpdatedAt     time.Time           `gorm:"column:updated_at"`
}

// MinNextBid is the price a new bid must strictly exceed: the current price
// once bidding started, the starting price before that.
func (a *Auction) MinNextBid() decimal.Decimal {
	if a.CurrentPrice.Valid {
		return a.CurrentPrice.Decimal
	}
	return a.StartingPrice
}

func (a *Auction) HasBids() bool {
	return a.CurrentPrice.Valid
}
