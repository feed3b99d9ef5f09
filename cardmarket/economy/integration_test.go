package economy_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/footycards/card-market/cardmarket"
	"github.com/footycards/card-market/cardmarket/database"
	"github.com/footycards/card-market/cardmarket/database/dbtest"
	"github.com/footycards/card-market/cardmarket/database/models"
	"github.com/footycards/card-market/cardmarket/database/repositories"
	"github.com/footycards/card-market/cardmarket/economy"
	"github.com/footycards/card-market/cardmarket/economy/market"
	"github.com/footycards/card-market/cardmarket/economy/packs"
	"github.com/footycards/card-market/cardmarket/economy/rarity"
	"github.com/footycards/card-market/cardmarket/economy/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var harness *dbtest.Harness

func TestMain(m *testing.M) {
	ctx := context.Background()

	var err error
	harness, err = dbtest.Start(ctx)
	if err != nil {
		fmt.Printf("Failed to start test database: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()
	if harness != nil {
		harness.Close(ctx)
	}
	os.Exit(code)
}

type world struct {
	users       repositories.UserRepository
	cards       repositories.CardRepository
	collections repositories.CollectionRepository
	packRepo    repositories.PackRepository
	userCards   repositories.UserCardRepository
	listings    repositories.ListingRepository
	trades      repositories.TradeRepository
	packs       *packs.Service
	market      *market.Service
	cfg         cardmarket.EconomyConfig
}

func newWorld(t *testing.T, db *database.DB) *world {
	t.Helper()
	bunDB := db.BunDB()
	w := &world{
		users:       repositories.NewUserRepository(bunDB),
		cards:       repositories.NewCardRepository(bunDB),
		collections: repositories.NewCollectionRepository(bunDB),
		packRepo:    repositories.NewPackRepository(bunDB),
		userCards:   repositories.NewUserCardRepository(bunDB),
		listings:    repositories.NewListingRepository(bunDB),
		cfg:         cardmarket.DefaultConfig().Economy,
	}
	w.trades = repositories.NewTradeRepository(bunDB, w.users, w.userCards)

	tx := utils.NewTransactionManager(bunDB)
	clock := economy.SystemClock{}
	w.packs = packs.NewService(tx, w.packRepo, w.cards, w.userCards, w.collections, w.users, utils.NewLockedSource(7), clock, w.cfg)
	w.market = market.NewService(tx, w.listings, w.trades, clock, w.cfg.MaxListingPrice)
	return w
}

func (w *world) user(t *testing.T, id, balance int64) {
	t.Helper()
	require.NoError(t, w.users.Create(context.Background(), &models.User{UserID: id, Username: fmt.Sprintf("user%d", id), Balance: balance}, time.Now()))
}

func (w *world) card(t *testing.T, name string, r rarity.Rarity, collectionID *int64) *models.Card {
	t.Helper()
	c := &models.Card{PlayerName: name, Rarity: r, UniqName: fmt.Sprintf("%s_%s", r, name), Weight: 1, CollectionID: collectionID}
	require.NoError(t, w.cards.Create(context.Background(), c))
	return c
}

func (w *world) balance(t *testing.T, id int64) int64 {
	t.Helper()
	b, err := w.users.GetBalance(context.Background(), id)
	require.NoError(t, err)
	return b
}

func TestOpenPack_Premium(t *testing.T) {
	w := newWorld(t, dbtest.Require(t, harness))
	ctx := context.Background()

	w.user(t, 1, 250)
	for i := range 4 {
		w.card(t, fmt.Sprintf("player%d", i), rarity.Common, nil)
	}
	pack := &models.Pack{ID: "premium", Name: "Premium", PackType: models.PackPremium, Cost: 100, CardsAmount: 3, UniqueItems: true, IsAlwaysAvailable: true}
	pack.SetTable(rarity.Table{Common: 100})
	require.NoError(t, w.packRepo.Upsert(ctx, pack))

	result, err := w.packs.OpenPack(ctx, "premium", 1)
	require.NoError(t, err)
	require.Len(t, result.Cards, 3)
	assert.False(t, result.Degraded)
	assert.Equal(t, int64(150), w.balance(t, 1))

	seen := map[int64]bool{}
	for _, c := range result.Cards {
		assert.False(t, seen[c.CardID], "unique pack drew card %d twice", c.CardID)
		seen[c.CardID] = true
		assert.Equal(t, int64(1), c.SerialNumber)
		assert.GreaterOrEqual(t, c.Score, int64(w.cfg.Scores.Common.Min))
		assert.LessOrEqual(t, c.Score, int64(w.cfg.Scores.Common.Max))
	}

	user, err := w.users.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, result.TotalScore, user.Score)

	openings, err := w.packs.Openings(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, openings, 1)
	assert.Equal(t, result.OpeningID, openings[0].ID)

	t.Run("insufficient funds leaves nothing behind", func(t *testing.T) {
		w.user(t, 2, 99)
		_, err := w.packs.OpenPack(ctx, "premium", 2)
		assert.ErrorIs(t, err, economy.ErrInsufficientFunds)
		assert.Equal(t, int64(99), w.balance(t, 2))

		owned, err := w.userCards.GetAllByUserID(ctx, 2)
		require.NoError(t, err)
		assert.Empty(t, owned)
	})
}

func TestOpenPack_ShortCollection(t *testing.T) {
	w := newWorld(t, dbtest.Require(t, harness))
	ctx := context.Background()

	col := &models.Collection{Name: "finale", TotalCards: 50, CardsOpened: 48, IsActive: true, StartDate: time.Now().Add(-time.Hour)}
	require.NoError(t, w.collections.Create(ctx, col))
	for _, r := range rarity.Order {
		w.card(t, "finale_"+string(r), r, &col.ID)
	}
	w.user(t, 1, 10_000)

	result, err := w.packs.OpenPack(ctx, packs.CollectionPackID(col.ID), 1)
	require.NoError(t, err)
	assert.Len(t, result.Cards, 2)
	assert.Equal(t, w.cfg.CollectionPack.CardsAmount, result.Requested)
	assert.True(t, result.Degraded)
	assert.Equal(t, 10_000-w.cfg.CollectionPack.Cost, w.balance(t, 1))

	got, err := w.collections.GetByID(ctx, col.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, got.CardsOpened)

	_, err = w.packs.OpenPack(ctx, packs.CollectionPackID(col.ID), 1)
	assert.ErrorIs(t, err, economy.ErrPackNotFound)
}

func TestOpenPack_ConcurrentCollectionCap(t *testing.T) {
	w := newWorld(t, dbtest.Require(t, harness))
	ctx := context.Background()

	col := &models.Collection{Name: "scarce", TotalCards: 6, IsActive: true, StartDate: time.Now().Add(-time.Hour)}
	require.NoError(t, w.collections.Create(ctx, col))
	for _, r := range rarity.Order {
		w.card(t, "scarce_"+string(r), r, &col.ID)
	}
	packID := packs.CollectionPackID(col.ID)

	const openers = 4
	for i := range openers {
		w.user(t, int64(i+1), 10_000)
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		issued    int
		exhausted []int64
	)
	for i := range openers {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			result, err := w.packs.OpenPack(ctx, packID, userID)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				issued += len(result.Cards)
			case errors.Is(err, economy.ErrCardPoolExhausted), errors.Is(err, economy.ErrPackNotFound):
				exhausted = append(exhausted, userID)
			default:
				t.Errorf("unexpected error for user %d: %v", userID, err)
			}
		}(int64(i + 1))
	}
	wg.Wait()

	assert.Equal(t, 6, issued)
	got, err := w.collections.GetByID(ctx, col.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, got.CardsOpened)

	for _, userID := range exhausted {
		assert.Equal(t, int64(10_000), w.balance(t, userID), "user %d was charged for a failed open", userID)
	}
}

func TestOpenPack_FreeCooldown(t *testing.T) {
	w := newWorld(t, dbtest.Require(t, harness))
	ctx := context.Background()

	w.user(t, 1, 0)
	w.card(t, "free_common", rarity.Common, nil)
	pack := &models.Pack{ID: "free", Name: "Free", PackType: models.PackFree, CardsAmount: 1, IsAlwaysAvailable: true}
	pack.SetTable(rarity.Table{Common: 100})
	require.NoError(t, w.packRepo.Upsert(ctx, pack))

	_, err := w.packs.OpenPack(ctx, "free", 1)
	require.NoError(t, err)

	_, err = w.packs.OpenPack(ctx, "free", 1)
	var cooldown *economy.CooldownError
	require.ErrorAs(t, err, &cooldown)
	assert.Greater(t, cooldown.Remaining, time.Duration(0))

	status, err := w.packs.FreePackStatus(ctx, 1)
	require.NoError(t, err)
	assert.False(t, status.Available)
}

func TestBuyListing(t *testing.T) {
	w := newWorld(t, dbtest.Require(t, harness))
	ctx := context.Background()

	w.user(t, 1, 0)
	w.user(t, 2, 100)
	w.user(t, 3, 100)
	w.user(t, 4, 10)
	card := w.card(t, "striker", rarity.Legendary, nil)
	owned, err := w.userCards.IssueCopy(ctx, nil, card.ID, 1, time.Now())
	require.NoError(t, err)

	listingID, err := w.market.CreateListing(ctx, 1, owned.ID, 50)
	require.NoError(t, err)

	t.Run("insufficient funds", func(t *testing.T) {
		_, err := w.market.BuyListing(ctx, listingID, 4)
		assert.ErrorIs(t, err, economy.ErrInsufficientFunds)
		assert.Equal(t, int64(10), w.balance(t, 4))

		listing, err := w.listings.GetByID(ctx, listingID)
		require.NoError(t, err)
		assert.Equal(t, models.ListingActive, listing.Status)
	})

	t.Run("self purchase", func(t *testing.T) {
		_, err := w.market.BuyListing(ctx, listingID, 1)
		assert.ErrorIs(t, err, economy.ErrSelfPurchase)
	})

	t.Run("double buy has one winner", func(t *testing.T) {
		var wg sync.WaitGroup
		results := make(chan error, 2)
		for _, buyer := range []int64{2, 3} {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := w.market.BuyListing(ctx, listingID, buyer)
				results <- err
			}()
		}
		wg.Wait()
		close(results)

		var won, lost int
		for err := range results {
			if err == nil {
				won++
				continue
			}
			assert.ErrorIs(t, err, economy.ErrAlreadySold)
			lost++
		}
		assert.Equal(t, 1, won)
		assert.Equal(t, 1, lost)

		assert.Equal(t, int64(50), w.balance(t, 1))
		assert.Equal(t, int64(150), w.balance(t, 2)+w.balance(t, 3))
	})

	t.Run("owner trail grows with each sale", func(t *testing.T) {
		held, err := w.userCards.GetByID(ctx, owned.ID)
		require.NoError(t, err)
		buyer := held.UserID
		next := int64(2)
		if buyer == 2 {
			next = 3
		}

		relist, err := w.market.CreateListing(ctx, buyer, owned.ID, 40)
		require.NoError(t, err)
		_, err = w.market.BuyListing(ctx, relist, next)
		require.NoError(t, err)

		history, err := w.market.CopyHistory(ctx, owned.ID)
		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.Equal(t, []int64{1, buyer}, history[0].PreviousOwners)
		assert.Equal(t, []int64{1}, history[1].PreviousOwners)
	})
}

func TestBuyListing_RemovedListing(t *testing.T) {
	w := newWorld(t, dbtest.Require(t, harness))
	ctx := context.Background()

	w.user(t, 1, 0)
	w.user(t, 2, 100)
	card := w.card(t, "playmaker", rarity.Epic, nil)
	owned, err := w.userCards.IssueCopy(ctx, nil, card.ID, 1, time.Now())
	require.NoError(t, err)

	listingID, err := w.market.CreateListing(ctx, 1, owned.ID, 50)
	require.NoError(t, err)
	require.NoError(t, w.market.RemoveListing(ctx, listingID, 1))

	_, err = w.market.BuyListing(ctx, listingID, 2)
	assert.ErrorIs(t, err, economy.ErrNotFound)

	assert.Equal(t, int64(0), w.balance(t, 1))
	assert.Equal(t, int64(100), w.balance(t, 2))
	held, err := w.userCards.GetByID(ctx, owned.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), held.UserID)

	history, err := w.market.CopyHistory(ctx, owned.ID)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestExhaustedCollection(t *testing.T) {
	w := newWorld(t, dbtest.Require(t, harness))
	ctx := context.Background()

	col := &models.Collection{Name: "sold_out", TotalCards: 3, CardsOpened: 3, IsActive: true, StartDate: time.Now().Add(-time.Hour)}
	require.NoError(t, w.collections.Create(ctx, col))
	for _, r := range rarity.Order {
		w.card(t, "sold_out_"+string(r), r, &col.ID)
	}
	w.user(t, 1, 10_000)

	t.Run("sample", func(t *testing.T) {
		for _, r := range rarity.Order {
			_, err := w.cards.Sample(ctx, nil, r, &col.ID, utils.NewLockedSource(1))
			assert.ErrorIs(t, err, economy.ErrNotFound, "tier %s", r)
		}
	})

	t.Run("open", func(t *testing.T) {
		_, err := w.packs.OpenPack(ctx, packs.CollectionPackID(col.ID), 1)
		assert.ErrorIs(t, err, economy.ErrPackNotFound)
		assert.Equal(t, int64(10_000), w.balance(t, 1))
	})
}
