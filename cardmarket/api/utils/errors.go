package utils

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/footycards/card-market/cardmarket/economy"
	"github.com/gofiber/fiber/v2"
)

type errorMapping struct {
	target error
	status int
	code   string
}

// order matters: the first match wins
var errorMappings = []errorMapping{
	{economy.ErrInsufficientFunds, http.StatusPaymentRequired, "INSUFFICIENT_FUNDS"},
	{economy.ErrCooldownActive, http.StatusTooManyRequests, "COOLDOWN_ACTIVE"},
	{economy.ErrCardPoolExhausted, http.StatusGone, "CARD_POOL_EXHAUSTED"},
	{economy.ErrDuplicateListing, http.StatusConflict, "DUPLICATE_LISTING"},
	{economy.ErrAlreadySold, http.StatusConflict, "ALREADY_SOLD"},
	{economy.ErrAccountExists, http.StatusConflict, "ACCOUNT_EXISTS"},
	{economy.ErrCardListed, http.StatusConflict, "CARD_LISTED"},
	{economy.ErrNotOwner, http.StatusForbidden, "NOT_OWNER"},
	{economy.ErrCardLocked, http.StatusLocked, "CARD_LOCKED"},
	{economy.ErrInvalidPrice, http.StatusUnprocessableEntity, "INVALID_PRICE"},
	{economy.ErrSelfPurchase, http.StatusUnprocessableEntity, "SELF_PURCHASE"},
	{economy.ErrPackNotFound, http.StatusNotFound, "PACK_NOT_FOUND"},
	{economy.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
}

// StatusFor maps a domain error to its HTTP status and error code.
func StatusFor(err error) (int, string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.status, m.code
		}
	}
	return http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"
}

// SendDomainError writes err as an API error. Unknown errors are logged and hidden.
func SendDomainError(c *fiber.Ctx, err error) error {
	status, code := StatusFor(err)
	if status == http.StatusInternalServerError {
		slog.Error("Request failed",
			slog.String("type", "http"),
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.Any("error", err))
		return SendInternalServerError(c, "Internal Server Error")
	}

	var details map[string]string
	var cooldown *economy.CooldownError
	if errors.As(err, &cooldown) {
		details = map[string]string{"remaining": cooldown.Remaining.Round(time.Second).String()}
	}
	return SendError(c, status, code, err.Error(), details)
}
