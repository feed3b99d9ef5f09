package market

import (
	"context"
	"testing"
	"time"

	"github.com/footycards/card-market/cardmarket/database/models"
	"github.com/footycards/card-market/cardmarket/database/repositories"
	"github.com/footycards/card-market/cardmarket/database/repositories/mock"
	"github.com/footycards/card-market/cardmarket/economy"
	"github.com/footycards/card-market/cardmarket/economy/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"go.uber.org/mock/gomock"
)

type recordingTx struct {
	opts []*utils.TransactionOptions
}

func (r *recordingTx) WithTransaction(ctx context.Context, opts *utils.TransactionOptions, fn func(context.Context, bun.Tx) error) error {
	r.opts = append(r.opts, opts)
	return fn(ctx, bun.Tx{})
}

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newService(t *testing.T) (*Service, *mock.MockListingRepository, *mock.MockTradeRepository, *recordingTx) {
	ctrl := gomock.NewController(t)
	listings := mock.NewMockListingRepository(ctrl)
	trades := mock.NewMockTradeRepository(ctrl)
	tx := &recordingTx{}
	return NewService(tx, listings, trades, economy.FixedClock{T: testNow}, 1000), listings, trades, tx
}

func TestService_CreateListing(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		price   int64
		repoErr error
		wantErr error
		callDB  bool
	}{
		{name: "ok", price: 50, callDB: true},
		{name: "zero price", price: 0, wantErr: economy.ErrInvalidPrice},
		{name: "negative price", price: -5, wantErr: economy.ErrInvalidPrice},
		{name: "above max", price: 1001, wantErr: economy.ErrInvalidPrice},
		{name: "max is allowed", price: 1000, callDB: true},
		{
			name:    "already listed",
			price:   50,
			callDB:  true,
			repoErr: &repositories.ConflictError{Entity: "listing", Field: "user_card_id", Value: 3, Err: economy.ErrDuplicateListing},
			wantErr: economy.ErrDuplicateListing,
		},
		{name: "not owner", price: 50, callDB: true, repoErr: economy.ErrNotOwner, wantErr: economy.ErrNotOwner},
		{name: "locked copy", price: 50, callDB: true, repoErr: economy.ErrCardLocked, wantErr: economy.ErrCardLocked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, listings, _, _ := newService(t)
			if tt.callDB {
				var listing *models.MarketListing
				if tt.repoErr == nil {
					listing = &models.MarketListing{ID: 11, SellerID: 1, UserCardID: 3, Price: tt.price}
				}
				listings.EXPECT().Create(ctx, int64(1), int64(3), tt.price, testNow).Return(listing, tt.repoErr)
			}

			id, err := svc.CreateListing(ctx, 1, 3, tt.price)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(11), id)
		})
	}
}

func TestService_UpdateAndRemove(t *testing.T) {
	ctx := context.Background()

	t.Run("update price", func(t *testing.T) {
		svc, listings, _, _ := newService(t)
		listings.EXPECT().UpdatePrice(ctx, int64(5), int64(1), int64(80), testNow).Return(nil)
		assert.NoError(t, svc.UpdateListingPrice(ctx, 5, 1, 80))
	})

	t.Run("update rejects invalid price before touching storage", func(t *testing.T) {
		svc, _, _, _ := newService(t)
		assert.ErrorIs(t, svc.UpdateListingPrice(ctx, 5, 1, 0), economy.ErrInvalidPrice)
	})

	t.Run("update someone else's listing", func(t *testing.T) {
		svc, listings, _, _ := newService(t)
		listings.EXPECT().UpdatePrice(ctx, int64(5), int64(2), int64(80), testNow).Return(economy.ErrNotOwner)
		assert.ErrorIs(t, svc.UpdateListingPrice(ctx, 5, 2, 80), economy.ErrNotOwner)
	})

	t.Run("remove missing listing", func(t *testing.T) {
		svc, listings, _, _ := newService(t)
		listings.EXPECT().Remove(ctx, int64(5), int64(1), testNow).
			Return(&repositories.NotFoundError{Entity: "listing", ID: 5})
		assert.ErrorIs(t, svc.RemoveListing(ctx, 5, 1), economy.ErrNotFound)
	})
}

func TestService_BuyListing(t *testing.T) {
	ctx := context.Background()

	t.Run("serializable purchase", func(t *testing.T) {
		svc, _, trades, tx := newService(t)
		record := &models.TradeRecord{TradeID: uuid.New(), ListingID: 5, SellerID: 1, BuyerID: 2, Price: 50}
		trades.EXPECT().ExecuteBuy(gomock.Any(), gomock.Any(), int64(5), int64(2), testNow).Return(record, nil)

		got, err := svc.BuyListing(ctx, 5, 2)
		require.NoError(t, err)
		assert.Equal(t, record, got)

		require.Len(t, tx.opts, 1)
		assert.True(t, tx.opts[0].Retry)
		assert.Equal(t, utils.SerializableTransactionOptions().IsolationLevel, tx.opts[0].IsolationLevel)
	})

	for _, want := range []error{economy.ErrAlreadySold, economy.ErrInsufficientFunds, economy.ErrSelfPurchase} {
		t.Run(want.Error(), func(t *testing.T) {
			svc, _, trades, _ := newService(t)
			trades.EXPECT().ExecuteBuy(gomock.Any(), gomock.Any(), int64(5), int64(2), testNow).Return(nil, want)

			got, err := svc.BuyListing(ctx, 5, 2)
			assert.ErrorIs(t, err, want)
			assert.Nil(t, got)
		})
	}
}

func TestService_UserHistory(t *testing.T) {
	ctx := context.Background()
	svc, _, trades, _ := newService(t)

	sales := []*models.TradeRecord{{ID: 1, SellerID: 7}}
	purchases := []*models.TradeRecord{{ID: 2, BuyerID: 7}, {ID: 3, BuyerID: 7}}
	trades.EXPECT().GetSales(ctx, int64(7), gomock.Any()).Return(sales, nil)
	trades.EXPECT().GetPurchases(ctx, int64(7), gomock.Any()).Return(purchases, nil)

	got, err := svc.UserHistory(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, sales, got.Sales)
	assert.Equal(t, purchases, got.Purchases)
}
