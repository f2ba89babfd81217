package v1

import (
	"errors"
	"strconv"

	"github.com/elab-development/internet-tehnologije-2025-vebaplikacijazaonlineaukcije-2021-0356/internal/constants"
	"github.com/elab-development/internet-tehnologije-2025-vebaplikacijazaonlineaukcije-2021-0356/internal/model"
	"github.com/elab-development/internet-tehnologije-2025-vebaplikacijazaonlineaukcije-2021-0356/internal/service"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler translates HTTP requests into service calls. Caller identity arrives
// pre-authenticated in X-User-ID / X-User-Role headers; session issuance lives
// outside this service.
type Handler struct {
	logger   *zap.Logger
	bids     service.BidService
	auctions service.AuctionService
	carts    service.CartService
}

func NewHandler(logger *zap.Logger, bids service.BidService, auctions service.AuctionService,
	carts service.CartService) *Handler {
	return &Handler{logger: logger, bids: bids, auctions: auctions, carts: carts}
}

func (h *Handler) Pong(c *fiber.Ctx) error {
	return c.SendString("pong")
}

func (h *Handler) PlaceBid(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var request PlaceBidRequest
	if err := c.BodyParser(&request); err != nil {
		h.logger.Warn("Failed to parse bid request",
			zap.Error(err),
			zap.String("body", string(c.Body())))
		return badRequest()
	}

	if request.AuctionID <= 0 {
		return badRequest()
	}

	cmd := service.PlaceBidCommand{
		UserID:    userID,
		AuctionID: request.AuctionID,
		Amount:    request.Amount,
	}

	resp, err := h.bids.PlaceBid(ctx, cmd)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(PlaceBidResponse{
		BidID:        resp.BidID,
		AuctionID:    request.AuctionID,
		CurrentPrice: resp.CurrentPrice.String(),
	})
}

// ListBidsForAuction is admin-or-owner: admins see every auction's bids at any
// time, the selling owner only once the auction is finished or archived.
func (h *Handler) ListBidsForAuction(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userID, err := callerID(c)
	if err != nil {
		return err
	}
	role := callerRole(c)

	auctionID, err := strconv.ParseInt(c.Query("auction_id"), 10, 64)
	if err != nil || auctionID <= 0 {
		return badRequest()
	}

	resp, err := h.bids.GetBidsForAuction(ctx, auctionID)
	if err != nil {
		return err
	}

	switch role {
	case model.UserRoleAdmin:

	case model.UserRoleSeller:
		if resp.SellerID != userID {
			return forbidden()
		}
		if resp.Status == model.AuctionStatusActive {
			return service.NewServiceError(constants.ErrCodeForbidden,
				errors.New("bids are not visible while the auction is active"))
		}

	default:
		return forbidden()
	}

	return c.JSON(resp)
}

func (h *Handler) GetMyBid(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userID, err := callerID(c)
	if err != nil {
		return err
	}

	auctionID, err := strconv.ParseInt(c.Query("auction_id"), 10, 64)
	if err != nil || auctionID <= 0 {
		return badRequest()
	}

	bid, err := h.bids.GetMyBid(ctx, userID, auctionID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"bid": bid})
}

func (h *Handler) CreateAuction(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var request CreateAuctionRequest
	if err := c.BodyParser(&request); err != nil {
		h.logger.Warn("Failed to parse auction request",
			zap.Error(err),
			zap.String("body", string(c.Body())))
		return badRequest()
	}

	if request.Title == "" || request.Description == "" || request.CategoryID <= 0 {
		return badRequest()
	}

	cmd := service.CreateAuctionCommand{
		SellerID:      userID,
		CategoryID:    request.CategoryID,
		Title:         request.Title,
		Description:   request.Description,
		ImageURL:      request.ImageURL,
		StartingPrice: request.StartingPrice,
		StartTime:     request.StartTime,
		EndTime:       request.EndTime,
	}

	resp, err := h.auctions.CreateAuction(ctx, cmd)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *Handler) GetAuction(c *fiber.Ctx) error {
	ctx := c.UserContext()

	auctionID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || auctionID <= 0 {
		return badRequest()
	}

	resp, err := h.auctions.GetAuction(ctx, auctionID)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

func (h *Handler) ListAuctions(c *fiber.Ctx) error {
	ctx := c.UserContext()

	query := service.ListAuctionsQuery{
		Page:       c.QueryInt("page", 1),
		Limit:      c.QueryInt("limit", 0),
		SortBy:     c.Query("sort_by"),
		SortOrder:  c.Query("sort_order"),
		Status:     model.AuctionStatus(c.Query("status")),
		CategoryID: int64(c.QueryInt("category_id", 0)),
		SellerID:   int64(c.QueryInt("seller_id", 0)),
	}

	resp, err := h.auctions.ListAuctions(ctx, query)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

func (h *Handler) ArchiveAuction(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userID, err := callerID(c)
	if err != nil {
		return err
	}

	auctionID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || auctionID <= 0 {
		return badRequest()
	}

	cmd := service.ArchiveAuctionCommand{
		AuctionID:  auctionID,
		CallerID:   userID,
		CallerRole: callerRole(c),
	}

	resp, err := h.auctions.ArchiveAuction(ctx, cmd)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

func (h *Handler) ListCartItems(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userID, err := callerID(c)
	if err != nil {
		return err
	}

	query := service.ListCartItemsQuery{
		UserID: userID,
		Page:   c.QueryInt("page", 1),
		Limit:  c.QueryInt("limit", 0),
	}

	items, err := h.carts.ListMyItems(ctx, query)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"items": items})
}

func (h *Handler) ListCategories(c *fiber.Ctx) error {
	ctx := c.UserContext()

	categories, err := h.auctions.ListCategories(ctx)
	if err != nil {
		return err
	}

	responses := make([]CategoryResponse, 0, len(categories))
	for _, category := range categories {
		responses = append(responses, CategoryResponse{CategoryID: category.ID, Name: category.Name})
	}

	return c.JSON(fiber.Map{"categories": responses})
}

func callerID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Get("X-User-ID"), 10, 64)
	if err != nil || id <= 0 {
		return 0, service.NewServiceError(constants.ErrCodeInvalidRequest,
			errors.New("missing or invalid X-User-ID header"))
	}
	return id, nil
}

func callerRole(c *fiber.Ctx) model.UserRole {
	return model.UserRole(c.Get("X-User-Role"))
}

func badRequest() error {
	return service.NewServiceError(constants.ErrCodeInvalidRequest,
		errors.New(constants.ErrMsgInvalidRequest))
}

func forbidden() error {
	return service.NewServiceError(constants.ErrCodeForbidden,
		errors.New(constants.ErrMsgForbidden))
}
