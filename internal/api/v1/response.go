package v1

type PlaceBidResponse struct {
	BidID        int64  `json:"bid_id"`
	AuctionID    int64  `json:"auction_id"`
	CurrentPrice string `json:"current_price"`
}

type CategoryResponse struct {
	CategoryID int64  `json:"category_id"`
	Name       string `json:"name"`
}
