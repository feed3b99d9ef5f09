package middleware

import (
	"errors"
	"log/slog"

	"github.com/footycards/card-market/cardmarket/api/utils"
	"github.com/gofiber/fiber/v2"
)

// CustomErrorHandler renders errors that escaped the handlers
func CustomErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code := "HTTP_ERROR"
		switch fe.Code {
		case fiber.StatusNotFound:
			code = "NOT_FOUND"
		case fiber.StatusMethodNotAllowed:
			code = "METHOD_NOT_ALLOWED"
		case fiber.StatusBadRequest:
			code = "BAD_REQUEST"
		}
		return utils.SendError(c, fe.Code, code, fe.Message, nil)
	}

	slog.Error("Unhandled error",
		slog.String("type", "http"),
		slog.String("path", c.Path()),
		slog.Any("error", err))
	return utils.SendDomainError(c, err)
}

// SecurityHeaders adds security headers to responses
func SecurityHeaders() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		return c.Next()
	}
}
