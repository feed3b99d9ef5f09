package pricing

import (
	"context"
	"testing"
	"time"

	"github.com/footycards/card-market/cardmarket/database/repositories"
	"github.com/footycards/card-market/cardmarket/database/repositories/mock"
	"github.com/footycards/card-market/cardmarket/economy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func TestMarketStats_GetMany(t *testing.T) {
	ctx := context.Background()
	trades := mock.NewMockTradeRepository(gomock.NewController(t))
	ms := NewMarketStats(trades, economy.FixedClock{T: testNow})

	trades.EXPECT().
		GetStats(gomock.Any(), []int64{1, 2}, testNow.Add(-24*time.Hour)).
		Return([]*repositories.SaleStats{{CardID: 1, Sales: 3, MinPrice: 10, MaxPrice: 30, AvgPrice: 20}}, nil).
		Times(1)

	got, err := ms.GetMany(ctx, []int64{1, 2, 1})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 3, got[1].Sales)
	assert.Equal(t, 20.0, got[1].AvgPrice)
	assert.Zero(t, got[2].Sales)

	// second call is served from cache
	again, err := ms.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(30), again.MaxPrice)
}

func TestMarketStats_Invalidate(t *testing.T) {
	ctx := context.Background()
	trades := mock.NewMockTradeRepository(gomock.NewController(t))
	ms := NewMarketStats(trades, economy.FixedClock{T: testNow})

	trades.EXPECT().GetStats(gomock.Any(), []int64{5}, gomock.Any()).Return(nil, nil).Times(2)

	_, err := ms.Get(ctx, 5)
	require.NoError(t, err)
	ms.Invalidate(5)
	_, err = ms.Get(ctx, 5)
	require.NoError(t, err)
}

func TestMarketStats_Batches(t *testing.T) {
	ctx := context.Background()
	trades := mock.NewMockTradeRepository(gomock.NewController(t))
	ms := NewMarketStats(trades, economy.FixedClock{T: testNow})

	ids := make([]int64, 120)
	for i := range ids {
		ids[i] = int64(i + 1)
	}
	trades.EXPECT().GetStats(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).Times(3)

	got, err := ms.GetMany(ctx, ids)
	require.NoError(t, err)
	assert.Len(t, got, 120)
}
