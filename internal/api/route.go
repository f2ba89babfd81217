package api

import (
	v1 "github.com/elab-development/internet-tehnologije-2025-vebaplikacijazaonlineaukcije-2021-0356/internal/api/v1"
	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, handler *v1.Handler) {
	app.Get("/ping", handler.Pong)

	app.Post("/v1/bids", handler.PlaceBid)
	app.Get("/v1/bids", handler.ListBidsForAuction)
	app.Get("/v1/bids/me", handler.GetMyBid)

	app.Post("/v1/auctions", handler.CreateAuction)
	app.Get("/v1/auctions", handler.ListAuctions)
	app.Get("/v1/auctions/:id", handler.GetAuction)
	app.Post("/v1/auctions/:id/archive", handler.ArchiveAuction)

	app.Get("/v1/cart-items", handler.ListCartItems)
	app.Get("/v1/categories", handler.ListCategories)
}
