package economy

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrCooldownActive    = errors.New("free pack cooldown active")
	ErrCardPoolExhausted = errors.New("card pool exhausted")
	ErrDuplicateListing  = errors.New("card is already listed")
	ErrAlreadySold       = errors.New("listing already sold")
	ErrNotOwner          = errors.New("not the owner")
	ErrInvalidPrice      = errors.New("invalid price")
	ErrNotFound          = errors.New("not found")
	ErrPackNotFound      = errors.New("pack not found")
	ErrCardLocked        = errors.New("card is locked")
	ErrSelfPurchase      = errors.New("cannot buy your own listing")
	ErrAccountExists     = errors.New("account already exists")
	ErrCardListed        = errors.New("card is listed on the market")
)

// CooldownError reports how long until the next free pack.
type CooldownError struct {
	Remaining time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("%s: %s remaining", ErrCooldownActive, e.Remaining.Round(time.Second))
}

func (e *CooldownError) Unwrap() error {
	return ErrCooldownActive
}
