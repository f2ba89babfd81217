package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bid is a user's standing offer for one auction. The unique (user, auction)
// pair means a rebid overwrites amount and created_at instead of adding a row.
type Bid struct {
	ID        int64           `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	UserID    int64           `gorm:"column:user_id;index:idx_user_auction,unique"`
	AuctionID int64           `gorm:"column:auction_id;index:idx_user_auction,unique"`
	Amount    decimal.Decimal `gorm:"column:amount;type:decimal(10,2)"`
	CreatedAt time.Time       `gorm:"column:created_at"`
}
