package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/footycards/card-market/cardmarket"
	"github.com/footycards/card-market/cardmarket/database"
	"github.com/footycards/card-market/cardmarket/logger"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:          "cardmarket-admin",
	Short:        "Administrative tasks for the card market database",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.toml", "path to config")
}

func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// connect loads the config, installs the logger and opens the database.
func connect(ctx context.Context) (*cardmarket.Config, *database.DB, error) {
	cfg, err := cardmarket.LoadConfig(configPath)
	if err != nil {
		return nil, nil, err
	}
	logger.Setup(cfg.Log.Name, cfg.Log.Level)

	db, err := database.New(ctx, cfg.DB)
	if err != nil {
		slog.Error("Failed to connect to database", slog.Any("error", err))
		return nil, nil, err
	}
	return cfg, db, nil
}
