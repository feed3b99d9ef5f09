package config

import "time"

// Database and Performance Constants
const (
	DefaultQueryTimeout = 10 * time.Second
	SearchTimeout       = 5 * time.Second
	MarketQueryTimeout  = 10 * time.Second
	StatsQueryTimeout   = 10 * time.Second
	BatchQueryTimeout   = 30 * time.Second

	// Cache settings
	CardCacheSize        = 10000
	MarketStatsCacheSize = 1000
	MarketStatsTTL       = 5 * time.Minute
	MarketStatsWindow    = 24 * time.Hour

	// Concurrency
	MaxConcurrentStatsQueries = 4
)

// Pagination
const (
	DefaultPageSize = 10
	MaxPageSize     = 50
	HistoryLimit    = 20
	SearchLimit     = 25
)

// Web
const (
	DefaultWebHost         = "0.0.0.0"
	DefaultWebPort         = 8080
	DefaultShutdownTimeout = 15 * time.Second
	DefaultRateLimit       = 100
	DefaultRateWindow      = time.Minute
	UserIDHeader           = "X-User-ID"
)
