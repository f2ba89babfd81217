package service

import (
	"time"

	"github.com/elab-development/internet-tehnologije-2025-vebaplikacijazaonlineaukcije-2021-0356/internal/model"
	"github.com/shopspring/decimal"
)

type PlaceBidCommand struct {
	UserID    int64
	AuctionID int64
	Amount    decimal.Decimal
}

type CreateAuctionCommand struct {
	SellerID      int64
	CategoryID    int64
	Title         string
	Description   string
	ImageURL      string
	StartingPrice decimal.Decimal
	StartTime     time.Time
	EndTime       time.Time
}

type ArchiveAuctionCommand struct {
	AuctionID  int64
	CallerID   int64
	CallerRole model.UserRole
}

type ListAuctionsQuery struct {
	Page       int
	Limit      int
	SortBy     string
	SortOrder  string
	Status     model.AuctionStatus
	CategoryID int64
	SellerID   int64
}

type ListCartItemsQuery struct {
	UserID int64
	Page   int
	Limit  int
}
