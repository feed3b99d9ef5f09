package api

import (
	"context"
	"log/slog"

	"github.com/footycards/card-market/cardmarket"
	"github.com/footycards/card-market/cardmarket/api/handlers"
	"github.com/footycards/card-market/cardmarket/api/middleware"
	"github.com/footycards/card-market/cardmarket/api/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewApp builds the fiber app with global middleware and every route mounted.
// The rate limiter's sweeper stops when ctx is done.
func NewApp(ctx context.Context, cfg *cardmarket.Config, webApp *handlers.WebApp) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Card Market API",
		ServerHeader: "CardMarket",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	app.Use(recover.New())
	app.Use(middleware.SecurityHeaders())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Web.AllowOrigins,
		AllowMethods: "GET,POST,DELETE,PATCH,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,X-User-ID",
	}))
	app.Use(middleware.LoggingMiddleware())

	limiter := middleware.NewRateLimiter(ctx, cfg.RateLimit.Limit, cfg.RateLimit.Window.Duration)
	SetupRoutes(app, webApp, limiter)
	return app
}

// SetupRoutes configures all application routes
func SetupRoutes(app *fiber.App, webApp *handlers.WebApp, limiter *middleware.RateLimiter) {
	app.Get("/health", handlers.HealthCheck(webApp))

	authed := []fiber.Handler{middleware.UserRequired(), middleware.RateLimit(limiter)}

	packs := app.Group("/packs", authed...)
	packs.Get("/", handlers.PacksList(webApp))
	packs.Get("/free/status", handlers.FreePackStatus(webApp))
	packs.Get("/openings", handlers.PackOpenings(webApp))
	packs.Post("/:id/open", handlers.PacksOpen(webApp))

	market := app.Group("/market", authed...)
	market.Get("/listings", handlers.ListingsBrowse(webApp))
	market.Get("/listings/mine", handlers.ListingsMine(webApp))
	market.Get("/listings/:id", handlers.ListingsDetail(webApp))
	market.Post("/listings", handlers.ListingsCreate(webApp))
	market.Patch("/listings/:id", handlers.ListingsUpdatePrice(webApp))
	market.Delete("/listings/:id", handlers.ListingsRemove(webApp))
	market.Post("/listings/:id/buy", handlers.ListingsBuy(webApp))
	market.Get("/history", handlers.MarketHistory(webApp))
	market.Get("/cards/:userCardId/history", handlers.CopyHistory(webApp))
	market.Get("/stats", handlers.MarketStats(webApp))

	cards := app.Group("/cards", authed...)
	cards.Get("/search", handlers.CardsSearch(webApp))

	inv := app.Group("/inventory", authed...)
	inv.Get("/", handlers.InventoryList(webApp))
	inv.Get("/:cardId", handlers.InventoryCard(webApp))
	inv.Post("/copies/:id/lock", handlers.CopyLock(webApp))
	inv.Post("/copies/:id/favorite", handlers.CopyFavorite(webApp))

	accounts := app.Group("/accounts", authed...)
	accounts.Get("/me", handlers.AccountsMe(webApp))
	accounts.Get("/leaderboard", handlers.Leaderboard(webApp))
	accounts.Post("/", handlers.AccountsCreate(webApp))

	app.Use(func(c *fiber.Ctx) error {
		slog.Warn("No route matched for request",
			slog.String("type", "http"),
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.String("ip", c.IP()),
		)
		return utils.SendNotFound(c, "Route not found")
	})
}
