package handlers

import (
	apimodels "github.com/footycards/card-market/cardmarket/api/models"
	"github.com/footycards/card-market/cardmarket/api/utils"
	"github.com/gofiber/fiber/v2"
)

func AccountsCreate(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req apimodels.CreateAccountRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "Invalid request body", map[string]string{
				"error": err.Error(),
			})
		}

		user, err := webApp.Accounts.CreateAccount(c.UserContext(), requester(c), req.Username)
		if err != nil {
			return utils.SendDomainError(c, err)
		}
		return utils.SendCreated(c, user, "Account created successfully")
	}
}

func AccountsMe(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := webApp.Accounts.GetAccount(c.UserContext(), requester(c))
		if err != nil {
			return utils.SendDomainError(c, err)
		}
		return utils.SendSuccess(c, user, "Account retrieved successfully")
	}
}

func Leaderboard(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, limit := utils.PageParams(c)
		users, err := webApp.Accounts.Leaderboard(c.UserContext(), limit)
		if err != nil {
			return utils.SendDomainError(c, err)
		}
		return utils.SendSuccess(c, users, "Leaderboard retrieved successfully")
	}
}

