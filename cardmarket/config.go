package cardmarket

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/footycards/card-market/cardmarket/config"
	"github.com/footycards/card-market/cardmarket/database"
	"github.com/footycards/card-market/cardmarket/economy/rarity"
	"github.com/footycards/card-market/cardmarket/economy/utils"
	"github.com/pelletier/go-toml/v2"
)

func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	cfg := DefaultConfig()
	if err = toml.NewDecoder(file).Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

type Config struct {
	Log       LogConfig         `toml:"log"`
	DB        database.DBConfig `toml:"db"`
	Web       WebConfig         `toml:"web"`
	Economy   EconomyConfig     `toml:"economy"`
	RateLimit RateLimitConfig   `toml:"ratelimit"`
}

type LogConfig struct {
	Level slog.Level `toml:"level"`
	Name  string     `toml:"name"`
}

type WebConfig struct {
	Host            string   `toml:"host"`
	Port            int      `toml:"port"`
	AllowOrigins    string   `toml:"allow_origins"`
	ShutdownTimeout Duration `toml:"shutdown_timeout"`
}

type RateLimitConfig struct {
	Limit  int      `toml:"limit"`
	Window Duration `toml:"window"`
}

type EconomyConfig struct {
	StartingBalance  int64                `toml:"starting_balance"`
	MaxListingPrice  int64                `toml:"max_listing_price"`
	FreePackCooldown Duration             `toml:"free_pack_cooldown"`
	Timezone         string               `toml:"timezone"`
	RandomSeed       uint64               `toml:"random_seed"`
	CollectionPack   CollectionPackConfig `toml:"collection_pack"`
	Scores           ScoreConfig          `toml:"scores"`
}

type CollectionPackConfig struct {
	Cost        int64        `toml:"cost"`
	CardsAmount int          `toml:"cards_amount"`
	Table       rarity.Table `toml:"table"`
}

// ScoreRange is an inclusive score range awarded per drawn card.
type ScoreRange struct {
	Min int `toml:"min"`
	Max int `toml:"max"`
}

type ScoreConfig struct {
	Common    ScoreRange `toml:"common"`
	Rare      ScoreRange `toml:"rare"`
	Epic      ScoreRange `toml:"epic"`
	Legendary ScoreRange `toml:"legendary"`
}

func (s ScoreConfig) For(r rarity.Rarity) ScoreRange {
	switch r {
	case rarity.Rare:
		return s.Rare
	case rarity.Epic:
		return s.Epic
	case rarity.Legendary:
		return s.Legendary
	default:
		return s.Common
	}
}

// Duration decodes TOML strings such as "3h" or "90s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{Level: slog.LevelInfo, Name: "cardmarket"},
		DB: database.DBConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Database: "cardmarket",
			PoolSize: 20,
		},
		Web: WebConfig{
			Host:            config.DefaultWebHost,
			Port:            config.DefaultWebPort,
			AllowOrigins:    "*",
			ShutdownTimeout: Duration{config.DefaultShutdownTimeout},
		},
		Economy: EconomyConfig{
			StartingBalance:  utils.DefaultStartingBalance,
			MaxListingPrice:  utils.DefaultMaxPrice,
			FreePackCooldown: Duration{utils.DefaultFreePackCooldown},
			Timezone:         utils.DefaultFreePackTimezone,
			CollectionPack: CollectionPackConfig{
				Cost:        utils.DefaultCollectionPackCost,
				CardsAmount: utils.DefaultCollectionPackSize,
				Table:       rarity.EventTable,
			},
			Scores: ScoreConfig{
				Common:    ScoreRange{Min: 5, Max: 10},
				Rare:      ScoreRange{Min: 10, Max: 15},
				Epic:      ScoreRange{Min: 15, Max: 20},
				Legendary: ScoreRange{Min: 20, Max: 25},
			},
		},
		RateLimit: RateLimitConfig{
			Limit:  config.DefaultRateLimit,
			Window: Duration{config.DefaultRateWindow},
		},
	}
}

func (c *Config) Validate() error {
	var errs []error

	if c.Web.Port <= 0 || c.Web.Port > 65535 {
		errs = append(errs, fmt.Errorf("web.port %d out of range", c.Web.Port))
	}
	if c.Economy.StartingBalance < 0 {
		errs = append(errs, errors.New("economy.starting_balance must not be negative"))
	}
	if c.Economy.MaxListingPrice < utils.MinPrice {
		errs = append(errs, errors.New("economy.max_listing_price must be positive"))
	}
	if c.Economy.FreePackCooldown.Duration < 0 {
		errs = append(errs, errors.New("economy.free_pack_cooldown must not be negative"))
	}
	if _, err := time.LoadLocation(c.Economy.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("economy.timezone: %w", err))
	}
	if c.Economy.CollectionPack.CardsAmount <= 0 {
		errs = append(errs, errors.New("economy.collection_pack.cards_amount must be positive"))
	}
	if c.Economy.CollectionPack.Cost < 0 {
		errs = append(errs, errors.New("economy.collection_pack.cost must not be negative"))
	}
	if err := c.Economy.CollectionPack.Table.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("economy.collection_pack.table: %w", err))
	}
	for _, r := range rarity.Order {
		if s := c.Economy.Scores.For(r); s.Min < 0 || s.Max < s.Min {
			errs = append(errs, fmt.Errorf("economy.scores.%s: invalid range %d-%d", r, s.Min, s.Max))
		}
	}
	if c.RateLimit.Limit < 0 {
		errs = append(errs, errors.New("ratelimit.limit must not be negative"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Location returns the reference timezone for cooldowns.
func (c EconomyConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
