package middleware

import (
	"strconv"
	"strings"

	"github.com/footycards/card-market/cardmarket/api/utils"
	"github.com/footycards/card-market/cardmarket/config"
	"github.com/gofiber/fiber/v2"
)

// UserRequired reads the requester id set by the trusted gateway.
func UserRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Get(config.UserIDHeader))
		if raw == "" {
			return utils.SendUnauthorized(c, "Missing "+config.UserIDHeader+" header")
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			return utils.SendUnauthorized(c, "Invalid "+config.UserIDHeader+" header")
		}

		utils.SetUserID(c, userID)
		return c.Next()
	}
}
