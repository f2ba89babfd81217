package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/elab-development/internet-tehnologije-2025-vebaplikacijazaonlineaukcije-2021-0356/internal/constants"
	"github.com/elab-development/internet-tehnologije-2025-vebaplikacijazaonlineaukcije-2021-0356/internal/model"
	"github.com/elab-development/internet-tehnologije-2025-vebaplikacijazaonlineaukcije-2021-0356/internal/repository"
	"go.uber.org/zap"
)

type BidService interface {
	PlaceBid(ctx context.Context, cmd PlaceBidCommand) (PlaceBidResponse, error)
	GetBidsForAuction(ctx context.Context, auctionID int64) (AuctionBidsResponse, error)
	GetMyBid(ctx context.Context, userID, auctionID int64) (*BidView, error)
}

type bid struct {
	auctionRepo repository.AuctionRepository
	bidRepo     repository.BidRepository
	userRepo    repository.UserRepository
	txManager   repository.TxManager
	logger      *zap.Logger
}

func NewBidService(auctionRepo repository.AuctionRepository, bidRepo repository.BidRepository,
	userRepo repository.UserRepository, txManager repository.TxManager, logger *zap.Logger) BidService {
	return &bid{auctionRepo: auctionRepo, bidRepo: bidRepo, userRepo: userRepo, txManager: txManager, logger: logger}
}

// PlaceBid validates the bid against a fresh read, then applies it as one
// transaction: a conditional price update that re-asserts every precondition,
// followed by the caller's bid row upsert. Zero rows affected means another
// bid won the race; the caller gets a conflict and may retry higher.
func (b *bid) PlaceBid(ctx context.Context, cmd PlaceBidCommand) (PlaceBidResponse, error) {
	user, err := b.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return PlaceBidResponse{}, NewServiceError(constants.ErrCodeUserNotFound, err)
		}

		b.logger.Error("Failed to load bidder", zap.Int64("userID", cmd.UserID), zap.Error(err))
		return PlaceBidResponse{}, NewServiceError(ErrCodeDatabase, err)
	}

	if !user.IsActive() {
		return PlaceBidResponse{}, NewServiceError(constants.ErrCodeBidderNotActive,
			errors.New(constants.ErrMsgBidderNotActive))
	}

	auction, err := b.auctionRepo.GetByID(ctx, cmd.AuctionID)
	if err != nil {
		if errors.Is(err, repository.ErrAuctionNotFound) {
			return PlaceBidResponse{}, NewServiceError(constants.ErrCodeAuctionNotFound, err)
		}

		b.logger.Error("Failed to load auction", zap.Int64("auctionID", cmd.AuctionID), zap.Error(err))
		return PlaceBidResponse{}, NewServiceError(ErrCodeDatabase, err)
	}

	now := time.Now()

	if auction.Status != model.AuctionStatusActive {
		return PlaceBidResponse{}, NewServiceError(constants.ErrCodeAuctionNotActive,
			errors.New(constants.ErrMsgAuctionNotActive))
	}

	if now.Before(auction.StartTime) || now.After(auction.EndTime) {
		return PlaceBidResponse{}, NewServiceError(constants.ErrCodeAuctionNotRunning,
			errors.New(constants.ErrMsgAuctionNotRunning))
	}

	min := auction.MinNextBid()
	if cmd.Amount.LessThanOrEqual(min) {
		return PlaceBidResponse{}, NewServiceError(constants.ErrCodeBidTooLow,
			fmt.Errorf("bid amount must be greater than %s", min))
	}

	placed := model.Bid{
		UserID:    cmd.UserID,
		AuctionID: cmd.AuctionID,
		Amount:    cmd.Amount,
		CreatedAt: now,
	}

	err = b.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := b.auctionRepo.RaiseCurrentPrice(ctx, cmd.AuctionID, cmd.Amount, now); err != nil {
			if errors.Is(err, repository.ErrNoRowsAffected) {
				return NewServiceError(constants.ErrCodeBidConflict,
					errors.New(constants.ErrMsgBidConflict))
			}
			return NewServiceError(ErrCodeDatabase, err)
		}

		if err := b.bidRepo.Upsert(ctx, &placed); err != nil {
			return NewServiceError(ErrCodeDatabase, err)
		}

		stored, err := b.bidRepo.GetByUserAndAuction(ctx, cmd.UserID, cmd.AuctionID)
		if err != nil {
			return NewServiceError(ErrCodeDatabase, err)
		}

		placed.ID = stored.ID
		return nil
	})
	if err != nil {
		var serviceErr Error
		if errors.As(err, &serviceErr) && serviceErr.Code == constants.ErrCodeBidConflict {
			b.logger.Info("Bid lost the price race",
				zap.Int64("userID", cmd.UserID),
				zap.Int64("auctionID", cmd.AuctionID),
				zap.String("amount", cmd.Amount.String()))
			return PlaceBidResponse{}, err
		}

		b.logger.Error("Bid transaction failed",
			zap.Int64("userID", cmd.UserID),
			zap.Int64("auctionID", cmd.AuctionID),
			zap.Error(err))
		return PlaceBidResponse{}, err
	}

	b.logger.Info("Bid placed",
		zap.Int64("bidID", placed.ID),
		zap.Int64("userID", cmd.UserID),
		zap.Int64("auctionID", cmd.AuctionID),
		zap.String("amount", cmd.Amount.String()))

	return PlaceBidResponse{BidID: placed.ID, CurrentPrice: cmd.Amount}, nil
}

func (b *bid) GetBidsForAuction(ctx context.Context, auctionID int64) (AuctionBidsResponse, error) {
	auction, err := b.auctionRepo.GetByID(ctx, auctionID)
	if err != nil {
		if errors.Is(err, repository.ErrAuctionNotFound) {
			return AuctionBidsResponse{}, NewServiceError(constants.ErrCodeAuctionNotFound, err)
		}
		return AuctionBidsResponse{}, NewServiceError(ErrCodeDatabase, err)
	}

	bids, err := b.bidRepo.GetByAuctionID(ctx, auctionID)
	if err != nil {
		return AuctionBidsResponse{}, NewServiceError(ErrCodeDatabase, err)
	}

	views := make([]BidView, 0, len(bids))
	for _, record := range bids {
		views = append(views, BidView{
			BidID:     record.ID,
			UserID:    record.UserID,
			Amount:    record.Amount,
			CreatedAt: record.CreatedAt,
		})
	}

	return AuctionBidsResponse{
		AuctionID: auction.ID,
		SellerID:  auction.SellerID,
		Status:    auction.Status,
		Bids:      views,
	}, nil
}

func (b *bid) GetMyBid(ctx context.Context, userID, auctionID int64) (*BidView, error) {
	if _, err := b.auctionRepo.GetByID(ctx, auctionID); err != nil {
		if errors.Is(err, repository.ErrAuctionNotFound) {
			return nil, NewServiceError(constants.ErrCodeAuctionNotFound, err)
		}
		return nil, NewServiceError(ErrCodeDatabase, err)
	}

	record, err := b.bidRepo.GetByUserAndAuction(ctx, userID, auctionID)
	if err != nil {
		if errors.Is(err, repository.ErrBidNotFound) {
			return nil, nil
		}
		return nil, NewServiceError(ErrCodeDatabase, err)
	}

	return &BidView{
		BidID:     record.ID,
		UserID:    record.UserID,
		Amount:    record.Amount,
		CreatedAt: record.CreatedAt,
	}, nil
}
