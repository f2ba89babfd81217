package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem records that a user won an auction at a final price and is awaiting
// purchase completion. One row per auction, written only by settlement.
type CartItem struct {
	ID         int64           `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	AuctionID  int64           `gorm:"column:auction_id;uniqueIndex"`
	UserID     int64           `gorm:"column:user_id;index"`
	FinalPrice decimal.Decimal `gorm:"column:final_price;type:decimal(10,2)"`
	AddedAt    time.Time       `gorm:"column:added_at"`
}
