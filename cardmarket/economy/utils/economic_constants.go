package utils

import "time"

// Transaction constants
const (
	DefaultTxTimeout = 30 * time.Second

	// serialization failures on the trade path are retried within this window
	RetryInitialInterval = 20 * time.Millisecond
	RetryMaxInterval     = 500 * time.Millisecond
	RetryMaxElapsed      = 5 * time.Second
)

// Account constants
const (
	DefaultStartingBalance int64 = 100
	MinPrice               int64 = 1
	DefaultMaxPrice        int64 = 1_000_000
)

// Pack constants
const (
	DefaultFreePackCooldown   = 3 * time.Hour
	DefaultFreePackTimezone   = "Europe/Moscow"
	DefaultCollectionPackCost = int64(500)
	DefaultCollectionPackSize = 3
	CollectionPackPrefix      = "collection_"
	FreePackID                = "free"
)
