package pricing

import (
	"context"
	"fmt"
	"time"

	"github.com/footycards/card-market/cardmarket/config"
	"github.com/footycards/card-market/cardmarket/database/repositories"
	"github.com/footycards/card-market/cardmarket/economy"
	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

const maxBatchSize = 50

// CardStats summarizes the recent sales of a catalog card.
type CardStats struct {
	CardID     int64     `json:"card_id"`
	Sales      int       `json:"sales"`
	MinPrice   int64     `json:"min_price"`
	MaxPrice   int64     `json:"max_price"`
	AvgPrice   float64   `json:"avg_price"`
	ComputedAt time.Time `json:"computed_at"`
}

type cachedStats struct {
	stats   CardStats
	expires time.Time
}

// MarketStats serves per-card sale statistics over a trailing window from
// trade records, with a short-lived cache in front.
type MarketStats struct {
	trades repositories.TradeRepository
	cache  *lru.Cache
	clock  economy.Clock
	window time.Duration
	ttl    time.Duration
	sem    *semaphore.Weighted
}

func NewMarketStats(trades repositories.TradeRepository, clock economy.Clock) *MarketStats {
	cache, _ := lru.New(config.MarketStatsCacheSize)
	return &MarketStats{
		trades: trades,
		cache:  cache,
		clock:  clock,
		window: config.MarketStatsWindow,
		ttl:    config.MarketStatsTTL,
		sem:    semaphore.NewWeighted(config.MaxConcurrentStatsQueries),
	}
}

// Get returns stats for a single card. Cards without sales get zero stats.
func (ms *MarketStats) Get(ctx context.Context, cardID int64) (CardStats, error) {
	stats, err := ms.GetMany(ctx, []int64{cardID})
	if err != nil {
		return CardStats{}, err
	}
	return stats[cardID], nil
}

// GetMany returns stats for every requested card, querying only the ones not cached.
func (ms *MarketStats) GetMany(ctx context.Context, cardIDs []int64) (map[int64]CardStats, error) {
	now := ms.clock.Now()
	statsMap := make(map[int64]CardStats, len(cardIDs))

	missing := make([]int64, 0, len(cardIDs))
	for _, id := range cardIDs {
		if _, seen := statsMap[id]; seen {
			continue
		}
		if cached, ok := ms.cache.Get(id); ok {
			entry := cached.(cachedStats)
			if now.Before(entry.expires) {
				statsMap[id] = entry.stats
				continue
			}
			ms.cache.Remove(id)
		}
		statsMap[id] = CardStats{CardID: id, ComputedAt: now}
		missing = append(missing, id)
	}
	if len(missing) == 0 {
		return statsMap, nil
	}

	batches := make([][]int64, 0, len(missing)/maxBatchSize+1)
	for i := 0; i < len(missing); i += maxBatchSize {
		end := min(i+maxBatchSize, len(missing))
		batches = append(batches, missing[i:end])
	}

	g, gctx := errgroup.WithContext(ctx)
	resultChan := make(chan []*repositories.SaleStats, len(batches))

	for _, batch := range batches {
		g.Go(func() error {
			if err := ms.sem.Acquire(gctx, 1); err != nil {
				return err
			}
			defer ms.sem.Release(1)

			queryCtx, cancel := context.WithTimeout(gctx, config.StatsQueryTimeout)
			defer cancel()

			rows, err := ms.trades.GetStats(queryCtx, batch, now.Add(-ms.window))
			if err != nil {
				return fmt.Errorf("batch stats error: %w", err)
			}
			resultChan <- rows
			return nil
		})
	}

	err := g.Wait()
	close(resultChan)
	if err != nil {
		return nil, fmt.Errorf("error processing stats batches: %w", err)
	}

	for rows := range resultChan {
		for _, row := range rows {
			statsMap[row.CardID] = CardStats{
				CardID:     row.CardID,
				Sales:      row.Sales,
				MinPrice:   row.MinPrice,
				MaxPrice:   row.MaxPrice,
				AvgPrice:   row.AvgPrice,
				ComputedAt: now,
			}
		}
	}
	for _, id := range missing {
		ms.cache.Add(id, cachedStats{stats: statsMap[id], expires: now.Add(ms.ttl)})
	}
	return statsMap, nil
}

// Invalidate drops a card's cached stats after a sale.
func (ms *MarketStats) Invalidate(cardID int64) {
	ms.cache.Remove(cardID)
}
