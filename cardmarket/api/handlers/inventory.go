package handlers

import (
	"context"

	apimodels "github.com/footycards/card-market/cardmarket/api/models"
	"github.com/footycards/card-market/cardmarket/api/utils"
	"github.com/footycards/card-market/cardmarket/economy/rarity"
	"github.com/footycards/card-market/internal/domain/inventory"
	"github.com/gofiber/fiber/v2"
)

func InventoryList(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter := inventory.Filter{Name: c.Query("name")}
		if raw := c.Query("rarity"); raw != "" {
			r, err := rarity.Parse(raw)
			if err != nil {
				return utils.SendBadRequest(c, "Invalid rarity", map[string]string{"rarity": raw})
			}
			filter.Rarity = &r
		}

		inv, err := webApp.Inventory.GetInventory(c.UserContext(), requester(c), filter)
		if err != nil {
			return utils.SendDomainError(c, err)
		}
		return utils.SendSuccess(c, inv, "Inventory retrieved successfully")
	}
}

func InventoryCard(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cardID, ok := paramID(c, "cardId")
		if !ok {
			return invalidID(c, "cardId")
		}

		detail, err := webApp.Inventory.GetCardDetail(c.UserContext(), requester(c), cardID)
		if err != nil {
			return utils.SendDomainError(c, err)
		}
		return utils.SendSuccess(c, detail, "Card retrieved successfully")
	}
}

func CopyLock(webApp *WebApp) fiber.Handler {
	return toggleCopy(webApp.Inventory.SetLocked, "is_locked")
}

func CopyFavorite(webApp *WebApp) fiber.Handler {
	return toggleCopy(webApp.Inventory.SetFavorite, "is_favorite")
}

type copyToggle func(ctx context.Context, userID, userCardID int64, value bool) error

func toggleCopy(set copyToggle, field string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userCardID, ok := paramID(c, "id")
		if !ok {
			return invalidID(c, "id")
		}

		var req apimodels.ToggleRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "Invalid request body", map[string]string{
				"error": err.Error(),
			})
		}

		if err := set(c.UserContext(), requester(c), userCardID, req.Value); err != nil {
			return utils.SendDomainError(c, err)
		}
		return utils.SendSuccess(c, fiber.Map{"user_card_id": userCardID, field: req.Value}, "Copy updated successfully")
	}
}

func CardsSearch(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := c.Query("q")
		if query == "" {
			return utils.SendBadRequest(c, "q is required", nil)
		}

		results, err := webApp.Inventory.Search(c.UserContext(), query)
		if err != nil {
			return utils.SendDomainError(c, err)
		}
		return utils.SendSuccess(c, results, "Search completed successfully")
	}
}
