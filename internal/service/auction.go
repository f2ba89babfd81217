package service

import (
	"context"
	"errors"
	"time"

	"github.com/elab-development/internet-tehnologije-2025-vebaplikacijazaonlineaukcije-2021-0356/internal/constants"
	"github.com/elab-development/internet-tehnologije-2025-vebaplikacijazaonlineaukcije-2021-0356/internal/model"
	"github.com/elab-development/internet-tehnologije-2025-vebaplikacijazaonlineaukcije-2021-0356/internal/repository"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	defaultListLimit = 12
	maxListLimit     = 50
)

var allowedSortFields = map[string]bool{
	"title":          true,
	"starting_price": true,
	"start_time":     true,
	"end_time":       true,
	"created_at":     true,
}

type AuctionService interface {
	CreateAuction(ctx context.Context, cmd CreateAuctionCommand) (AuctionResponse, error)
	GetAuction(ctx context.Context, auctionID int64) (AuctionResponse, error)
	ListAuctions(ctx context.Context, query ListAuctionsQuery) (ListAuctionsResponse, error)
	ArchiveAuction(ctx context.Context, cmd ArchiveAuctionCommand) (AuctionResponse, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
}

type auction struct {
	auctionRepo  repository.AuctionRepository
	userRepo     repository.UserRepository
	categoryRepo repository.CategoryRepository
	logger       *zap.Logger
}

func NewAuctionService(auctionRepo repository.AuctionRepository, userRepo repository.UserRepository,
	categoryRepo repository.CategoryRepository, logger *zap.Logger) AuctionService {
	return &auction{auctionRepo: auctionRepo, userRepo: userRepo, categoryRepo: categoryRepo, logger: logger}
}

func (a *auction) CreateAuction(ctx context.Context, cmd CreateAuctionCommand) (AuctionResponse, error) {
	seller, err := a.userRepo.GetByID(ctx, cmd.SellerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return AuctionResponse{}, NewServiceError(constants.ErrCodeUserNotFound, err)
		}
		return AuctionResponse{}, NewServiceError(ErrCodeDatabase, err)
	}

	if seller.Role != model.UserRoleSeller || !seller.IsActive() {
		return AuctionResponse{}, NewServiceError(constants.ErrCodeSellerNotActive,
			errors.New(constants.ErrMsgSellerNotActive))
	}

	if cmd.StartingPrice.LessThanOrEqual(decimal.Zero) {
		return AuctionResponse{}, NewServiceError(constants.ErrCodeInvalidPrice,
			errors.New(constants.ErrMsgInvalidPrice))
	}

	if !cmd.StartTime.Before(cmd.EndTime) {
		return AuctionResponse{}, NewServiceError(constants.ErrCodeInvalidTimeWindow,
			errors.New(constants.ErrMsgInvalidTimeWindow))
	}

	now := time.Now()
	record := model.Auction{
		Title:         cmd.Title,
		Description:   cmd.Description,
		ImageURL:      cmd.ImageURL,
		StartingPrice: cmd.StartingPrice,
		CurrentPrice:  decimal.NullDecimal{},
		StartTime:     cmd.StartTime,
		EndTime:       cmd.EndTime,
		Status:        model.AuctionStatusActive,
		SellerID:      cmd.SellerID,
		CategoryID:    cmd.CategoryID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := a.auctionRepo.Create(ctx, &record); err != nil {
		a.logger.Error("Failed to create auction",
			zap.Int64("sellerID", cmd.SellerID),
			zap.Error(err))
		return AuctionResponse{}, NewServiceError(ErrCodeDatabase, err)
	}

	a.logger.Info("Auction created",
		zap.Int64("auctionID", record.ID),
		zap.Int64("sellerID", cmd.SellerID),
		zap.String("startingPrice", cmd.StartingPrice.String()))

	return toAuctionResponse(&record), nil
}

func (a *auction) GetAuction(ctx context.Context, auctionID int64) (AuctionResponse, error) {
	record, err := a.auctionRepo.GetByID(ctx, auctionID)
	if err != nil {
		if errors.Is(err, repository.ErrAuctionNotFound) {
			return AuctionResponse{}, NewServiceError(constants.ErrCodeAuctionNotFound, err)
		}
		return AuctionResponse{}, NewServiceError(ErrCodeDatabase, err)
	}

	return toAuctionResponse(record), nil
}

func (a *auction) ListAuctions(ctx context.Context, query ListAuctionsQuery) (ListAuctionsResponse, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}

	limit := query.Limit
	if limit < 1 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	sortBy := query.SortBy
	if !allowedSortFields[sortBy] {
		sortBy = "created_at"
	}

	sortOrder := "DESC"
	if query.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	records, total, err := a.auctionRepo.List(ctx, repository.AuctionQuery{
		Status:     query.Status,
		CategoryID: query.CategoryID,
		SellerID:   query.SellerID,
		SortBy:     sortBy,
		SortOrder:  sortOrder,
		Limit:      limit,
		Offset:     (page - 1) * limit,
	})
	if err != nil {
		return ListAuctionsResponse{}, NewServiceError(ErrCodeDatabase, err)
	}

	auctions := make([]AuctionResponse, 0, len(records))
	for i := range records {
		auctions = append(auctions, toAuctionResponse(&records[i]))
	}

	return ListAuctionsResponse{Auctions: auctions, Total: total}, nil
}

// ArchiveAuction pulls a listing off the marketplace. The seller-owner may do
// this only while no bid has been placed; the archive is guarded by the same
// conditional-update primitive as bidding, so a first bid racing the archive
// cannot slip through. An admin may archive at any status as a moderation
// action.
func (a *auction) ArchiveAuction(ctx context.Context, cmd ArchiveAuctionCommand) (AuctionResponse, error) {
	record, err := a.auctionRepo.GetByID(ctx, cmd.AuctionID)
	if err != nil {
		if errors.Is(err, repository.ErrAuctionNotFound) {
			return AuctionResponse{}, NewServiceError(constants.ErrCodeAuctionNotFound, err)
		}
		return AuctionResponse{}, NewServiceError(ErrCodeDatabase, err)
	}

	now := time.Now()

	switch {
	case cmd.CallerRole == model.UserRoleAdmin:
		if err := a.auctionRepo.Archive(ctx, cmd.AuctionID, now); err != nil {
			if errors.Is(err, repository.ErrNoRowsAffected) {
				break
			}
			return AuctionResponse{}, NewServiceError(ErrCodeDatabase, err)
		}

	case cmd.CallerRole == model.UserRoleSeller && cmd.CallerID == record.SellerID:
		if err := a.auctionRepo.ArchiveIfUnbid(ctx, cmd.AuctionID, now); err != nil {
			if errors.Is(err, repository.ErrNoRowsAffected) {
				return AuctionResponse{}, NewServiceError(constants.ErrCodeArchiveAfterBids,
					errors.New(constants.ErrMsgArchiveAfterBids))
			}
			return AuctionResponse{}, NewServiceError(ErrCodeDatabase, err)
		}

	default:
		return AuctionResponse{}, NewServiceError(constants.ErrCodeForbidden,
			errors.New(constants.ErrMsgForbidden))
	}

	a.logger.Info("Auction archived",
		zap.Int64("auctionID", cmd.AuctionID),
		zap.Int64("callerID", cmd.CallerID),
		zap.String("callerRole", string(cmd.CallerRole)))

	record.Status = model.AuctionStatusArchived
	record.UpdatedAt = now
	return toAuctionResponse(record), nil
}

func (a *auction) ListCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := a.categoryRepo.List(ctx)
	if err != nil {
		return nil, NewServiceError(ErrCodeDatabase, err)
	}

	return categories, nil
}

func toAuctionResponse(record *model.Auction) AuctionResponse {
	return AuctionResponse{
		AuctionID:     record.ID,
		Title:         record.Title,
		Description:   record.Description,
		ImageURL:      record.ImageURL,
		StartingPrice: record.StartingPrice,
		CurrentPrice:  record.CurrentPrice,
		StartTime:     record.StartTime,
		EndTime:       record.EndTime,
		Status:        record.Status,
		SellerID:      record.SellerID,
		CategoryID:    record.CategoryID,
		CreatedAt:     record.CreatedAt,
	}
}
