package handlers

import (
	"log/slog"
	"strconv"
	"strings"

	apimodels "github.com/footycards/card-market/cardmarket/api/models"
	"github.com/footycards/card-market/cardmarket/api/utils"
	"github.com/footycards/card-market/cardmarket/config"
	"github.com/footycards/card-market/cardmarket/database/repositories"
	"github.com/footycards/card-market/cardmarket/economy/rarity"
	"github.com/gofiber/fiber/v2"
)

func ListingsBrowse(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()
		page, limit := utils.PageParams(c)

		filter := repositories.ListingFilter{Page: page, Limit: limit}
		if raw := c.Query("rarity"); raw != "" {
			r, err := rarity.Parse(raw)
			if err != nil {
				return utils.SendBadRequest(c, "Invalid rarity", map[string]string{"rarity": raw})
			}
			filter.Rarity = &r
		}
		if raw := c.Query("card_id"); raw != "" {
			cardID, err := parseInt64(raw)
			if err != nil || cardID <= 0 {
				return utils.SendBadRequest(c, "Invalid card id", map[string]string{"card_id": raw})
			}
			filter.CardID = &cardID
		}
		if c.QueryBool("exclude_mine") {
			userID := requester(c)
			filter.ExcludeSeller = &userID
		}

		listings, total, err := webApp.Market.Browse(ctx, filter)
		if err != nil {
			return utils.SendDomainError(c, err)
		}

		cardIDs := make([]int64, 0, len(listings))
		for _, l := range listings {
			cardIDs = append(cardIDs, l.CardID)
		}
		stats, err := webApp.Stats.GetMany(ctx, cardIDs)
		if err != nil {
			// listings are still useful without stats
			slog.Warn("Failed to load market stats",
				slog.String("type", "http"),
				slog.String("error", err.Error()))
		}

		items := make([]apimodels.ListingResponse, 0, len(listings))
		for _, l := range listings {
			item := apimodels.ListingResponse{ListingView: l}
			if s, ok := stats[l.CardID]; ok {
				item.Stats = &s
			}
			items = append(items, item)
		}

		return utils.SendPaginated(c, items, apimodels.NewPaginationInfo(page, limit, int64(total)), "Listings retrieved successfully")
	}
}

func ListingsDetail(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		listingID, ok := paramID(c, "id")
		if !ok {
			return invalidID(c, "id")
		}

		listing, err := webApp.Market.GetListing(c.UserContext(), listingID)
		if err != nil {
			return utils.SendDomainError(c, err)
		}
		return utils.SendSuccess(c, listing, "Listing retrieved successfully")
	}
}

func ListingsMine(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		listings, err := webApp.Market.MyListings(c.UserContext(), requester(c))
		if err != nil {
			return utils.SendDomainError(c, err)
		}
		return utils.SendSuccess(c, listings, "Listings retrieved successfully")
	}
}

func ListingsCreate(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req apimodels.CreateListingRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "Invalid request body", map[string]string{
				"error": err.Error(),
			})
		}
		if req.UserCardID <= 0 {
			return utils.SendBadRequest(c, "user_card_id is required", nil)
		}

		listingID, err := webApp.Market.CreateListing(c.UserContext(), requester(c), req.UserCardID, req.Price)
		if err != nil {
			return utils.SendDomainError(c, err)
		}
		return utils.SendCreated(c, fiber.Map{"listing_id": listingID}, "Listing created successfully")
	}
}

func ListingsUpdatePrice(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		listingID, ok := paramID(c, "id")
		if !ok {
			return invalidID(c, "id")
		}

		var req apimodels.UpdatePriceRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "Invalid request body", map[string]string{
				"error": err.Error(),
			})
		}

		if err := webApp.Market.UpdateListingPrice(c.UserContext(), listingID, requester(c), req.Price); err != nil {
			return utils.SendDomainError(c, err)
		}
		return utils.SendSuccess(c, fiber.Map{"listing_id": listingID, "price": req.Price}, "Listing price updated successfully")
	}
}

func ListingsRemove(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		listingID, ok := paramID(c, "id")
		if !ok {
			return invalidID(c, "id")
		}

		if err := webApp.Market.RemoveListing(c.UserContext(), listingID, requester(c)); err != nil {
			return utils.SendDomainError(c, err)
		}
		return utils.SendNoContent(c)
	}
}

func ListingsBuy(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		listingID, ok := paramID(c, "id")
		if !ok {
			return invalidID(c, "id")
		}

		record, err := webApp.Market.BuyListing(c.UserContext(), listingID, requester(c))
		if err != nil {
			return utils.SendDomainError(c, err)
		}
		webApp.Stats.Invalidate(record.CardID)

		return utils.SendCreated(c, record, "Listing purchased successfully")
	}
}

func MarketHistory(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		history, err := webApp.Market.UserHistory(c.UserContext(), requester(c))
		if err != nil {
			return utils.SendDomainError(c, err)
		}
		return utils.SendSuccess(c, history, "Trade history retrieved successfully")
	}
}

func CopyHistory(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userCardID, ok := paramID(c, "userCardId")
		if !ok {
			return invalidID(c, "userCardId")
		}

		records, err := webApp.Market.CopyHistory(c.UserContext(), userCardID)
		if err != nil {
			return utils.SendDomainError(c, err)
		}
		return utils.SendSuccess(c, records, "Copy history retrieved successfully")
	}
}

// MarketStats serves sale stats for a comma separated card_ids query.
func MarketStats(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Query("card_ids")
		if raw == "" {
			return utils.SendBadRequest(c, "card_ids is required", nil)
		}

		parts := strings.Split(raw, ",")
		if len(parts) > config.MaxPageSize {
			return utils.SendBadRequest(c, "Too many card ids", map[string]string{
				"max": strconv.Itoa(config.MaxPageSize),
			})
		}

		cardIDs := make([]int64, 0, len(parts))
		for _, p := range parts {
			id, err := parseInt64(strings.TrimSpace(p))
			if err != nil || id <= 0 {
				return utils.SendBadRequest(c, "Invalid card id", map[string]string{"card_id": p})
			}
			cardIDs = append(cardIDs, id)
		}

		stats, err := webApp.Stats.GetMany(c.UserContext(), cardIDs)
		if err != nil {
			return utils.SendDomainError(c, err)
		}
		return utils.SendSuccess(c, stats, "Market stats retrieved successfully")
	}
}
