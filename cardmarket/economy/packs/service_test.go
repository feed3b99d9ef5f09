package packs

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/footycards/card-market/cardmarket"
	"github.com/footycards/card-market/cardmarket/database/models"
	"github.com/footycards/card-market/cardmarket/database/repositories"
	"github.com/footycards/card-market/cardmarket/database/repositories/mock"
	"github.com/footycards/card-market/cardmarket/economy"
	"github.com/footycards/card-market/cardmarket/economy/rarity"
	"github.com/footycards/card-market/cardmarket/economy/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"go.uber.org/mock/gomock"
)

// inlineTx runs the function once against a zero transaction; the mocks never touch it.
type inlineTx struct {
	calls int
	opts  *utils.TransactionOptions
}

func (f *inlineTx) WithTransaction(ctx context.Context, opts *utils.TransactionOptions, fn func(context.Context, bun.Tx) error) error {
	f.calls++
	f.opts = opts
	return fn(ctx, bun.Tx{})
}

type fixture struct {
	tx          *inlineTx
	packs       *mock.MockPackRepository
	cards       *mock.MockCardRepository
	userCards   *mock.MockUserCardRepository
	collections *mock.MockCollectionRepository
	users       *mock.MockUserRepository
	svc         *Service
}

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newFixture(t *testing.T, src rarity.Source) *fixture {
	ctrl := gomock.NewController(t)
	cfg := cardmarket.DefaultConfig().Economy
	cfg.Scores = cardmarket.ScoreConfig{
		Common:    cardmarket.ScoreRange{Min: 5, Max: 5},
		Rare:      cardmarket.ScoreRange{Min: 10, Max: 10},
		Epic:      cardmarket.ScoreRange{Min: 15, Max: 15},
		Legendary: cardmarket.ScoreRange{Min: 20, Max: 20},
	}

	f := &fixture{
		tx:          &inlineTx{},
		packs:       mock.NewMockPackRepository(ctrl),
		cards:       mock.NewMockCardRepository(ctrl),
		userCards:   mock.NewMockUserCardRepository(ctrl),
		collections: mock.NewMockCollectionRepository(ctrl),
		users:       mock.NewMockUserRepository(ctrl),
	}
	f.svc = NewService(f.tx, f.packs, f.cards, f.userCards, f.collections, f.users,
		src, economy.FixedClock{T: testNow}, cfg)
	return f
}

func issued(serial int64) func(context.Context, bun.IDB, int64, int64, time.Time) (*models.UserCard, error) {
	return func(_ context.Context, _ bun.IDB, cardID, ownerID int64, at time.Time) (*models.UserCard, error) {
		return &models.UserCard{ID: 100 + serial, CardID: cardID, UserID: ownerID, SerialNumber: serial, ObtainedAt: at}, nil
	}
}

func TestService_OpenPack_Premium(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, &stubSource{rolls: []float64{10, 60}})

	pack := newPack(2, rarity.PremiumTable)
	pool := []*models.Card{card(1, rarity.Common, nil), card(2, rarity.Rare, nil)}

	gomock.InOrder(
		f.packs.EXPECT().GetByID(ctx, "test").Return(pack, nil),
		f.users.EXPECT().Debit(gomock.Any(), gomock.Any(), int64(42), int64(10), testNow).Return(nil),
		f.cards.EXPECT().
			Pools(gomock.Any(), gomock.Any(), []rarity.Rarity{rarity.Common, rarity.Rare}, (*int64)(nil)).
			Return(pool, nil),
		f.userCards.EXPECT().IssueCopy(gomock.Any(), gomock.Any(), int64(1), int64(42), testNow).DoAndReturn(issued(1)),
		f.userCards.EXPECT().IssueCopy(gomock.Any(), gomock.Any(), int64(2), int64(42), testNow).DoAndReturn(issued(4)),
		f.users.EXPECT().AddScore(gomock.Any(), gomock.Any(), int64(42), int64(15)).Return(nil),
		f.packs.EXPECT().LogOpening(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ bun.IDB, o *models.PackOpening) error {
				assert.Equal(t, []int64{1, 2}, o.CardIDs)
				assert.Equal(t, 2, o.CardsRequested)
				o.ID = 555
				return nil
			}),
	)

	got, err := f.svc.OpenPack(ctx, "test", 42)
	require.NoError(t, err)

	assert.Equal(t, int64(555), got.OpeningID)
	assert.Equal(t, int64(10), got.CostPaid)
	assert.Equal(t, int64(15), got.TotalScore)
	assert.False(t, got.Degraded)
	require.Len(t, got.Cards, 2)
	assert.Equal(t, int64(1), got.Cards[0].SerialNumber)
	assert.Equal(t, int64(4), got.Cards[1].SerialNumber)
	assert.Equal(t, rarity.Rare, got.Cards[1].Rarity)
}

func TestService_OpenPack_IssuesSerialsInCardOrder(t *testing.T) {
	ctx := context.Background()
	// rare first, then common
	f := newFixture(t, &stubSource{rolls: []float64{60, 10}})

	pack := newPack(2, rarity.PremiumTable)
	pool := []*models.Card{card(1, rarity.Common, nil), card(2, rarity.Rare, nil)}

	f.packs.EXPECT().GetByID(ctx, "test").Return(pack, nil)
	f.users.EXPECT().Debit(gomock.Any(), gomock.Any(), int64(42), int64(10), testNow).Return(nil)
	f.cards.EXPECT().Pools(gomock.Any(), gomock.Any(), []rarity.Rarity{rarity.Common, rarity.Rare}, (*int64)(nil)).Return(pool, nil)

	var locked []int64
	record := func(serial int64) func(context.Context, bun.IDB, int64, int64, time.Time) (*models.UserCard, error) {
		return func(ctx context.Context, idb bun.IDB, cardID, ownerID int64, at time.Time) (*models.UserCard, error) {
			locked = append(locked, cardID)
			return issued(serial)(ctx, idb, cardID, ownerID, at)
		}
	}
	gomock.InOrder(
		f.userCards.EXPECT().IssueCopy(gomock.Any(), gomock.Any(), int64(1), int64(42), testNow).DoAndReturn(record(3)),
		f.userCards.EXPECT().IssueCopy(gomock.Any(), gomock.Any(), int64(2), int64(42), testNow).DoAndReturn(record(8)),
	)
	f.users.EXPECT().AddScore(gomock.Any(), gomock.Any(), int64(42), int64(15)).Return(nil)
	f.packs.EXPECT().LogOpening(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ bun.IDB, o *models.PackOpening) error {
			assert.Equal(t, []int64{2, 1}, o.CardIDs)
			return nil
		})

	got, err := f.svc.OpenPack(ctx, "test", 42)
	require.NoError(t, err)

	assert.Equal(t, []int64{1, 2}, locked)
	require.Len(t, got.Cards, 2)
	assert.Equal(t, int64(2), got.Cards[0].CardID)
	assert.Equal(t, int64(8), got.Cards[0].SerialNumber)
	assert.Equal(t, int64(1), got.Cards[1].CardID)
	assert.Equal(t, int64(3), got.Cards[1].SerialNumber)

	require.NotNil(t, f.tx.opts)
	assert.True(t, f.tx.opts.Retry)
	assert.Equal(t, sql.LevelReadCommitted, f.tx.opts.IsolationLevel)
}

func TestService_OpenPack_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("insufficient funds stops before drawing", func(t *testing.T) {
		f := newFixture(t, &stubSource{})
		f.packs.EXPECT().GetByID(ctx, "test").Return(newPack(3, commonOnly), nil)
		f.users.EXPECT().Debit(gomock.Any(), gomock.Any(), int64(1), int64(10), testNow).Return(economy.ErrInsufficientFunds)

		_, err := f.svc.OpenPack(ctx, "test", 1)
		assert.ErrorIs(t, err, economy.ErrInsufficientFunds)
	})

	t.Run("unknown pack", func(t *testing.T) {
		f := newFixture(t, &stubSource{})
		f.packs.EXPECT().GetByID(ctx, "nope").Return(nil, &repositories.NotFoundError{Entity: "pack", ID: "nope"})

		_, err := f.svc.OpenPack(ctx, "nope", 1)
		assert.ErrorIs(t, err, economy.ErrPackNotFound)
		assert.Zero(t, f.tx.calls)
	})

	t.Run("free pack on cooldown", func(t *testing.T) {
		f := newFixture(t, &stubSource{})
		free := newPack(1, rarity.FreeTable)
		free.PackType = models.PackFree
		f.packs.EXPECT().GetByID(ctx, utils.FreePackID).Return(free, nil)
		f.users.EXPECT().
			ClaimFreePack(gomock.Any(), gomock.Any(), int64(1), testNow, 3*time.Hour).
			Return(&economy.CooldownError{Remaining: time.Hour})

		_, err := f.svc.OpenPack(ctx, utils.FreePackID, 1)
		assert.ErrorIs(t, err, economy.ErrCooldownActive)
	})

	t.Run("empty pool rolls back", func(t *testing.T) {
		f := newFixture(t, &stubSource{})
		f.packs.EXPECT().GetByID(ctx, "test").Return(newPack(2, commonOnly), nil)
		f.users.EXPECT().Debit(gomock.Any(), gomock.Any(), int64(1), int64(10), testNow).Return(nil)
		f.cards.EXPECT().Pools(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		_, err := f.svc.OpenPack(ctx, "test", 1)
		assert.ErrorIs(t, err, economy.ErrCardPoolExhausted)
	})
}

func TestService_OpenPack_CollectionShort(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, &stubSource{})
	f.svc.cfg.CollectionPack.CardsAmount = 5
	f.svc.cfg.CollectionPack.Table = commonOnly

	col := &models.Collection{ID: 7, Name: "Legends", TotalCards: 50, CardsOpened: 48, IsActive: true}
	pool := []*models.Card{card(1, rarity.Common, col), card(2, rarity.Common, col)}

	f.collections.EXPECT().GetByID(ctx, int64(7)).Return(col, nil)
	f.users.EXPECT().Debit(gomock.Any(), gomock.Any(), int64(9), utils.DefaultCollectionPackCost, testNow).Return(nil)
	f.collections.EXPECT().GetForUpdate(gomock.Any(), gomock.Any(), int64(7)).Return(col, nil)
	f.cards.EXPECT().Pools(gomock.Any(), gomock.Any(), []rarity.Rarity{rarity.Common}, &col.ID).Return(pool, nil)
	f.userCards.EXPECT().IssueCopy(gomock.Any(), gomock.Any(), int64(1), int64(9), testNow).DoAndReturn(issued(49)).Times(2)
	f.collections.EXPECT().Advance(gomock.Any(), gomock.Any(), int64(7), 2).Return(50, 50, nil)
	f.users.EXPECT().AddScore(gomock.Any(), gomock.Any(), int64(9), int64(10)).Return(nil)
	f.packs.EXPECT().LogOpening(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	got, err := f.svc.OpenPack(ctx, CollectionPackID(7), 9)
	require.NoError(t, err)

	assert.Len(t, got.Cards, 2)
	assert.Equal(t, 5, got.Requested)
	assert.True(t, got.Degraded)
}

func TestService_ListAvailablePacks(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, &stubSource{})

	base := []*models.Pack{newPack(3, rarity.PremiumTable)}
	cols := []*models.Collection{{ID: 4, Name: "Derby", TotalCards: 10, IsActive: true}}

	f.packs.EXPECT().GetAlwaysAvailable(gomock.Any()).Return(base, nil)
	f.collections.EXPECT().GetOpen(gomock.Any(), testNow).Return(cols, nil)

	got, err := f.svc.ListAvailablePacks(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "test", got[0].ID)
	assert.Equal(t, "collection_4", got[1].ID)
	assert.Equal(t, models.PackCollection, got[1].PackType)
	assert.Equal(t, rarity.EventTable, got[1].Table())
	assert.Equal(t, utils.DefaultCollectionPackCost, got[1].Cost)
}

func TestService_FreePackStatus(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, &stubSource{})

	f.users.EXPECT().
		CheckFreePackEligible(ctx, int64(3), testNow, 3*time.Hour, gomock.Any()).
		Return(false, time.Hour, nil)

	got, err := f.svc.FreePackStatus(ctx, 3)
	require.NoError(t, err)
	assert.False(t, got.Available)
	assert.Equal(t, time.Hour, got.Remaining)
	assert.True(t, got.NextAt.Equal(testNow.Add(time.Hour)))
}

func TestParseCollectionPackID(t *testing.T) {
	tests := []struct {
		in     string
		want   int64
		wantOK bool
	}{
		{"collection_12", 12, true},
		{"collection_", 0, false},
		{"collection_x", 0, false},
		{"collection_-1", 0, false},
		{"premium", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parseCollectionPackID(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
