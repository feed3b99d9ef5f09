package cardmarket

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/footycards/card-market/cardmarket/economy/rarity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
[log]
level = "debug"

[db]
host = "db.internal"
port = 6543
user = "cards"
password = "secret"
database = "market"

[web]
port = 9090

[economy]
starting_balance = 250
free_pack_cooldown = "2h30m"
timezone = "UTC"

[economy.collection_pack]
cost = 700
cards_amount = 4
table = { common = 25, rare = 25, epic = 25, legendary = 25 }

[ratelimit]
limit = 10
window = "30s"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, slog.LevelDebug, cfg.Log.Level)
	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, 6543, cfg.DB.Port)
	assert.Equal(t, 9090, cfg.Web.Port)
	assert.Equal(t, int64(250), cfg.Economy.StartingBalance)
	assert.Equal(t, 150*time.Minute, cfg.Economy.FreePackCooldown.Duration)
	assert.Equal(t, int64(700), cfg.Economy.CollectionPack.Cost)
	assert.Equal(t, 4, cfg.Economy.CollectionPack.CardsAmount)
	assert.Equal(t, rarity.Table{Common: 25, Rare: 25, Epic: 25, Legendary: 25}, cfg.Economy.CollectionPack.Table)
	assert.Equal(t, 30*time.Second, cfg.RateLimit.Window.Duration)

	// untouched sections keep their defaults
	assert.Equal(t, ScoreRange{Min: 20, Max: 25}, cfg.Economy.Scores.Legendary)
	assert.Equal(t, int64(1_000_000), cfg.Economy.MaxListingPrice)
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, 3*time.Hour, cfg.Economy.FreePackCooldown.Duration)
	assert.Equal(t, "Europe/Moscow", cfg.Economy.Timezone)
	assert.Equal(t, rarity.EventTable, cfg.Economy.CollectionPack.Table)
	assert.Equal(t, 3, cfg.Economy.CollectionPack.CardsAmount)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad table", "[economy.collection_pack]\ntable = { common = 50, rare = 10, epic = 0, legendary = 0 }\n"},
		{"bad duration", "[economy]\nfree_pack_cooldown = \"soon\"\n"},
		{"bad timezone", "[economy]\ntimezone = \"Mars/Olympus\"\n"},
		{"bad port", "[web]\nport = 0\n"},
		{"bad score range", "[economy.scores.rare]\nmin = 10\nmax = 5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorContains(t, err, "failed to open config")
}
