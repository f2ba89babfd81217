package v1

import (
	"time"

	"github.com/shopspring/decimal"
)

type PlaceBidRequest struct {
	AuctionID int64           `json:"auction_id"`
	Amount    decimal.Decimal `json:"amount"`
}

type CreateAuctionRequest struct {
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	ImageURL      string          `json:"image_url"`
	StartingPrice decimal.Decimal `json:"starting_price"`
	StartTime     time.Time       `json:"start_time"`
	EndTime       time.Time       `json:"end_time"`
	CategoryID    int64           `json:"category_id"`
}
