package service

import (
	"time"

	"github.com/elab-development/internet-tehnologije-2025-vebaplikacijazaonlineaukcije-2021-0356/internal/model"
	"github.com/shopspring/decimal"
)

type PlaceBidResponse struct {
	BidID        int64           `json:"bid_id"`
	CurrentPrice decimal.Decimal `json:"current_price"`
}

type BidView struct {
	BidID     int64           `json:"bid_id"`
	UserID    int64           `json:"user_id"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}

// AuctionBidsResponse carries the auction's seller and status alongside the
// bids so the HTTP layer can decide whether the requesting caller may see them.
type AuctionBidsResponse struct {
	AuctionID int64               `json:"auction_id"`
	SellerID  int64               `json:"seller_id"`
	Status    model.AuctionStatus `json:"status"`
	Bids      []BidView           `json:"bids"`
}

type AuctionResponse struct {
	AuctionID     int64               `json:"auction_id"`
	Title         string              `json:"title"`
	Description   string              `json:"description"`
	ImageURL      string              `json:"image_url"`
	StartingPrice decimal.Decimal     `json:"starting_price"`
	CurrentPrice  decimal.NullDecimal `json:"current_price"`
	StartTime     time.Time           `json:"start_time"`
	EndTime       time.Time           `json:"end_time"`
	Status        model.AuctionStatus `json:"status"`
	SellerID      int64               `json:"seller_id"`
	CategoryID    int64               `json:"category_id"`
	CreatedAt     time.Time           `json:"created_at"`
}

type ListAuctionsResponse struct {
	Auctions []AuctionResponse `json:"auctions"`
	Total    int64             `json:"total"`
}

type CartItemView struct {
	AuctionID  int64           `json:"auction_id"`
	FinalPrice decimal.Decimal `json:"final_price"`
	AddedAt    time.Time       `json:"added_at"`
}

type SettlementResult struct {
	Processed int `json:"processed"`
}
