package handlers

import (
	"log/slog"

	"github.com/footycards/card-market/cardmarket/api/utils"
	"github.com/footycards/card-market/cardmarket/config"
	"github.com/gofiber/fiber/v2"
)

func PacksList(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		available, err := webApp.Packs.ListAvailablePacks(c.UserContext())
		if err != nil {
			return utils.SendDomainError(c, err)
		}
		return utils.SendSuccess(c, available, "Packs retrieved successfully")
	}
}

func PacksOpen(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := requester(c)
		packID := c.Params("id")
		if packID == "" {
			return utils.SendBadRequest(c, "Missing pack id", nil)
		}

		result, err := webApp.Packs.OpenPack(c.UserContext(), packID, userID)
		if err != nil {
			slog.Warn("Pack open rejected",
				slog.String("type", "http"),
				slog.String("pack_id", packID),
				slog.Int64("user_id", userID),
				slog.String("error", err.Error()))
			return utils.SendDomainError(c, err)
		}

		message := "Pack opened successfully"
		if result.Degraded {
			message = "Pack opened with fewer cards than requested"
		}
		return utils.SendCreated(c, result, message)
	}
}

func FreePackStatus(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		status, err := webApp.Packs.FreePackStatus(c.UserContext(), requester(c))
		if err != nil {
			return utils.SendDomainError(c, err)
		}
		return utils.SendSuccess(c, status, "Free pack status retrieved successfully")
	}
}

func PackOpenings(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		openings, err := webApp.Packs.Openings(c.UserContext(), requester(c), config.HistoryLimit)
		if err != nil {
			return utils.SendDomainError(c, err)
		}
		return utils.SendSuccess(c, openings, "Pack openings retrieved successfully")
	}
}
