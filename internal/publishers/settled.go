package publishers

import (
	"context"
	"encoding/json"
	"time"

	"github.com/elab-development/internet-tehnologije-2025-vebaplikacijazaonlineaukcije-2021-0356/pkg/mq"
	"go.uber.org/zap"
)

const SettledQueue = "auction.settled"

// SettledEvent is the handoff to downstream order processing: who won which
// auction at what price. The queue consumer turns it into a purchase flow.
type SettledEvent struct {
	EventID    string    `json:"event_id"`
	AuctionID  int64     `json:"auction_id"`
	WinnerID   int64     `json:"winner_id"`
	FinalPrice string    `json:"final_price"`
	SettledAt  time.Time `json:"settled_at"`
}

type SettledPublisher interface {
	Publish(ctx context.Context, event SettledEvent) error
}

type settledPublisher struct {
	publisher mq.Publisher
	logger    *zap.Logger
}

func NewSettledPublisher(publisher mq.Publisher, logger *zap.Logger) SettledPublisher {
	return &settledPublisher{publisher: publisher, logger: logger}
}

func (s *settledPublisher) Publish(ctx context.Context, event SettledEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if err := s.publisher.Publish(ctx, "", SettledQueue, body); err != nil {
		return err
	}

	s.logger.Info("Published settled event",
		zap.String("eventID", event.EventID),
		zap.Int64("auctionID", event.AuctionID),
		zap.Int64("winnerID", event.WinnerID),
		zap.String("finalPrice", event.FinalPrice))

	return nil
}
