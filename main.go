package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/footycards/card-market/cardmarket"
	"github.com/footycards/card-market/cardmarket/api"
	"github.com/footycards/card-market/cardmarket/api/handlers"
	"github.com/footycards/card-market/cardmarket/database"
	"github.com/footycards/card-market/cardmarket/database/repositories"
	"github.com/footycards/card-market/cardmarket/economy"
	"github.com/footycards/card-market/cardmarket/economy/accounts"
	"github.com/footycards/card-market/cardmarket/economy/market"
	"github.com/footycards/card-market/cardmarket/economy/packs"
	"github.com/footycards/card-market/cardmarket/economy/pricing"
	"github.com/footycards/card-market/cardmarket/economy/utils"
	"github.com/footycards/card-market/cardmarket/logger"
	"github.com/footycards/card-market/internal/domain/inventory"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	path := flag.String("config", "config.toml", "path to config")
	flag.Parse()

	cfg, err := cardmarket.LoadConfig(*path)
	if err != nil {
		logger.Setup("cardmarket", slog.LevelInfo)
		slog.Error("Failed to load configuration", slog.Any("error", err))
		os.Exit(-1)
	}
	logger.Setup(cfg.Log.Name, cfg.Log.Level)

	slog.Info("Starting card market",
		slog.String("version", version),
		slog.String("commit", commit))

	slog.Info("Initializing database connection...")
	dbStartTime := time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	db, err := database.New(ctx, cfg.DB)
	if err != nil {
		cancel()
		slog.Error("Database connection failed",
			slog.String("error", err.Error()),
			slog.Duration("attempted_for", time.Since(dbStartTime)))
		os.Exit(-1)
	}
	defer db.Close()

	if err = db.InitializeSchema(ctx); err != nil {
		cancel()
		slog.Error("Failed to initialize schema", slog.String("error", err.Error()))
		os.Exit(-1)
	}
	cancel()

	slog.Info("Database connected successfully",
		slog.String("database", cfg.DB.Database),
		slog.Duration("took", time.Since(dbStartTime)))

	bunDB := db.BunDB()
	userRepo := repositories.NewUserRepository(bunDB)
	cardRepo := repositories.NewCardRepository(bunDB)
	collectionRepo := repositories.NewCollectionRepository(bunDB)
	packRepo := repositories.NewPackRepository(bunDB)
	userCardRepo := repositories.NewUserCardRepository(bunDB)
	listingRepo := repositories.NewListingRepository(bunDB)
	tradeRepo := repositories.NewTradeRepository(bunDB, userRepo, userCardRepo)

	txManager := utils.NewTransactionManager(bunDB)
	src := utils.NewLockedSource(cfg.Economy.RandomSeed)
	clock := economy.SystemClock{}

	webApp := &handlers.WebApp{
		Packs:     packs.NewService(txManager, packRepo, cardRepo, userCardRepo, collectionRepo, userRepo, src, clock, cfg.Economy),
		Market:    market.NewService(txManager, listingRepo, tradeRepo, clock, cfg.Economy.MaxListingPrice),
		Stats:     pricing.NewMarketStats(tradeRepo, clock),
		Accounts:  accounts.NewService(userRepo, clock, cfg.Economy.StartingBalance),
		Inventory: inventory.NewService(inventory.NewRepository(cardRepo, userCardRepo), clock),
		Version:   version,
		Commit:    commit,
	}

	appCtx, stop := context.WithCancel(context.Background())
	defer stop()
	app := api.NewApp(appCtx, cfg, webApp)

	address := fmt.Sprintf("%s:%d", cfg.Web.Host, cfg.Web.Port)
	slog.Info("Starting HTTP server", slog.String("address", address))

	go func() {
		if err := app.Listen(address); err != nil {
			slog.Error("Failed to start server", slog.String("error", err.Error()))
		}
	}()

	s := make(chan os.Signal, 1)
	signal.Notify(s, syscall.SIGINT, syscall.SIGTERM)
	<-s

	slog.Info("Shutting down server...")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.Web.ShutdownTimeout.Duration)
	defer cancelShutdown()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		slog.Error("Server shutdown error", slog.String("error", err.Error()))
	}
	slog.Info("Shutdown complete")
}
