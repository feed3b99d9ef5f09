package utils

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/footycards/card-market/cardmarket/economy"
	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
		wantCode   string
	}{
		{economy.ErrInsufficientFunds, http.StatusPaymentRequired, "INSUFFICIENT_FUNDS"},
		{&economy.CooldownError{Remaining: time.Hour}, http.StatusTooManyRequests, "COOLDOWN_ACTIVE"},
		{economy.ErrCardPoolExhausted, http.StatusGone, "CARD_POOL_EXHAUSTED"},
		{fmt.Errorf("wrapped: %w", economy.ErrDuplicateListing), http.StatusConflict, "DUPLICATE_LISTING"},
		{economy.ErrAlreadySold, http.StatusConflict, "ALREADY_SOLD"},
		{economy.ErrNotOwner, http.StatusForbidden, "NOT_OWNER"},
		{economy.ErrInvalidPrice, http.StatusUnprocessableEntity, "INVALID_PRICE"},
		{economy.ErrPackNotFound, http.StatusNotFound, "PACK_NOT_FOUND"},
		{economy.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{fmt.Errorf("boom"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	seen := make(map[string]bool)
	for _, tt := range tests {
		t.Run(tt.wantCode, func(t *testing.T) {
			status, code := StatusFor(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, code)
		})
		assert.False(t, seen[tt.wantCode], "duplicate code %s", tt.wantCode)
		seen[tt.wantCode] = true
	}
}
