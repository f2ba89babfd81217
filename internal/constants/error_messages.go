package constants

const (
	ErrCodeBidderNotActive   = "BIDDER_NOT_ACTIVE"
	ErrCodeSellerNotActive   = "SELLER_NOT_ACTIVE"
	ErrCodeUserNotFound      = "USER_NOT_FOUND"
	ErrCodeAuctionNotFound   = "AUCTION_NOT_FOUND"
	ErrCodeAuctionNotActive  = "AUCTION_NOT_ACTIVE"
	ErrCodeAuctionNotRunning = "AUCTION_NOT_RUNNING"
	ErrCodeBidTooLow         = "BID_TOO_LOW"
	ErrCodeBidConflict       = "BID_CONFLICT"
	ErrCodeForbidden         = "FORBIDDEN"
	ErrCodeArchiveAfterBids  = "ARCHIVE_AFTER_BIDS"
	ErrCodeInvalidTimeWindow = "INVALID_TIME_WINDOW"
	ErrCodeInvalidPrice      = "INVALID_PRICE"
	ErrCodeInternalError     = "INTERNAL_ERROR"
	ErrCodeInvalidRequest    = "INVALID_REQUEST"
)

const (
	ErrMsgBidderNotActive   = "bidder account is not active"
	ErrMsgSellerNotActive   = "seller account is not active"
	ErrMsgUserNotFound      = "user not found"
	ErrMsgAuctionNotFound   = "auction not found"
	ErrMsgAuctionNotActive  = "auction is not active"
	ErrMsgAuctionNotRunning = "auction is not currently running"
	ErrMsgBidTooLow         = "bid amount is too low"
	ErrMsgBidConflict       = "current price changed, retry with a higher amount"
	ErrMsgForbidden         = "forbidden"
	ErrMsgArchiveAfterBids  = "cannot archive auction after bidding started"
	ErrMsgInvalidTimeWindow = "start time must be before end time"
	ErrMsgInvalidPrice      = "starting price must be greater than 0"
	ErrMsgInternalError     = "internal server error"
	ErrMsgInvalidRequest    = "failed to parse request"
)

var errorMessages = map[string]string{
	ErrCodeBidderNotActive:   ErrMsgBidderNotActive,
	ErrCodeSellerNotActive:   ErrMsgSellerNotActive,
	ErrCodeUserNotFound:      ErrMsgUserNotFound,
	ErrCodeAuctionNotFound:   ErrMsgAuctionNotFound,
	ErrCodeAuctionNotActive:  ErrMsgAuctionNotActive,
	ErrCodeAuctionNotRunning: ErrMsgAuctionNotRunning,
	ErrCodeBidTooLow:         ErrMsgBidTooLow,
	ErrCodeBidConflict:       ErrMsgBidConflict,
	ErrCodeForbidden:         ErrMsgForbidden,
	ErrCodeArchiveAfterBids:  ErrMsgArchiveAfterBids,
	ErrCodeInvalidTimeWindow: ErrMsgInvalidTimeWindow,
	ErrCodeInvalidPrice:      ErrMsgInvalidPrice,
	ErrCodeInternalError:     ErrMsgInternalError,
	ErrCodeInvalidRequest:    ErrMsgInvalidRequest,
}

func GetErrorMessage(code string) string {
	if msg, exists := errorMessages[code]; exists {
		return msg
	}
	return ErrMsgInternalError
}

func GetHTTPStatus(code string) int {
	switch code {
	case ErrCodeInvalidRequest, ErrCodeAuctionNotActive, ErrCodeAuctionNotRunning,
		ErrCodeBidTooLow, ErrCodeArchiveAfterBids, ErrCodeInvalidTimeWindow, ErrCodeInvalidPrice:
		return 400
	case ErrCodeBidderNotActive, ErrCodeSellerNotActive, ErrCodeForbidden:
		return 403
	case ErrCodeUserNotFound, ErrCodeAuctionNotFound:
		return 404
	case ErrCodeBidConflict:
		return 409
	case ErrCodeInternalError:
		return 500
	default:
		return 500
	}
}
