package handlers

import (
	"context"
	"strconv"

	"github.com/footycards/card-market/cardmarket/api/utils"
	"github.com/footycards/card-market/cardmarket/database/models"
	"github.com/footycards/card-market/cardmarket/database/repositories"
	"github.com/footycards/card-market/cardmarket/economy/market"
	"github.com/footycards/card-market/cardmarket/economy/packs"
	"github.com/footycards/card-market/cardmarket/economy/pricing"
	"github.com/footycards/card-market/internal/domain/inventory"
	"github.com/gofiber/fiber/v2"
)

type PackService interface {
	ListAvailablePacks(ctx context.Context) ([]*models.Pack, error)
	OpenPack(ctx context.Context, packID string, userID int64) (*packs.OpenResult, error)
	FreePackStatus(ctx context.Context, userID int64) (*packs.FreePackStatus, error)
	Openings(ctx context.Context, userID int64, limit int) ([]*models.PackOpening, error)
}

type MarketService interface {
	CreateListing(ctx context.Context, sellerID, userCardID, price int64) (int64, error)
	RemoveListing(ctx context.Context, listingID, sellerID int64) error
	UpdateListingPrice(ctx context.Context, listingID, sellerID, price int64) error
	BuyListing(ctx context.Context, listingID, buyerID int64) (*models.TradeRecord, error)
	Browse(ctx context.Context, filter repositories.ListingFilter) ([]*models.ListingView, int, error)
	GetListing(ctx context.Context, listingID int64) (*models.ListingView, error)
	MyListings(ctx context.Context, sellerID int64) ([]*models.ListingView, error)
	CopyHistory(ctx context.Context, userCardID int64) ([]*models.TradeRecord, error)
	UserHistory(ctx context.Context, userID int64) (*market.History, error)
}

type StatsService interface {
	GetMany(ctx context.Context, cardIDs []int64) (map[int64]pricing.CardStats, error)
	Invalidate(cardID int64)
}

type AccountService interface {
	CreateAccount(ctx context.Context, userID int64, username string) (*models.User, error)
	GetAccount(ctx context.Context, userID int64) (*models.User, error)
	Leaderboard(ctx context.Context, limit int) ([]*models.User, error)
}

type InventoryService interface {
	GetInventory(ctx context.Context, userID int64, filter inventory.Filter) (*inventory.Inventory, error)
	GetCardDetail(ctx context.Context, userID, cardID int64) (*inventory.CardDetail, error)
	SetLocked(ctx context.Context, userID, userCardID int64, locked bool) error
	SetFavorite(ctx context.Context, userID, userCardID int64, favorite bool) error
	Search(ctx context.Context, query string) ([]inventory.Stack, error)
}

// WebApp represents the web application with all dependencies
type WebApp struct {
	Packs     PackService
	Market    MarketService
	Stats     StatsService
	Accounts  AccountService
	Inventory InventoryService
	Version   string
	Commit    string
}

func parseInt64(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

// paramID reads a positive numeric route parameter.
func paramID(c *fiber.Ctx, name string) (int64, bool) {
	id, err := parseInt64(c.Params(name))
	return id, err == nil && id > 0
}

func invalidID(c *fiber.Ctx, name string) error {
	return utils.SendBadRequest(c, "Invalid "+name, map[string]string{
		name: c.Params(name),
	})
}

// requester returns the id placed by the identity middleware. Routes are
// only mounted behind it, so a missing id is a wiring error.
func requester(c *fiber.Ctx) int64 {
	id, _ := utils.UserID(c)
	return id
}

func HealthCheck(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return utils.SendSuccess(c, fiber.Map{
			"status":  "healthy",
			"version": webApp.Version,
			"commit":  webApp.Commit,
		}, "Health check successful")
	}
}
