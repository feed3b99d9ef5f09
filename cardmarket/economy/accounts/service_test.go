package accounts

import (
	"context"
	"testing"
	"time"

	"github.com/footycards/card-market/cardmarket/database/models"
	"github.com/footycards/card-market/cardmarket/database/repositories"
	"github.com/footycards/card-market/cardmarket/database/repositories/mock"
	"github.com/footycards/card-market/cardmarket/economy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func TestService_CreateAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("starting balance", func(t *testing.T) {
		users := mock.NewMockUserRepository(gomock.NewController(t))
		users.EXPECT().Create(ctx, gomock.Any(), testNow).DoAndReturn(func(_ context.Context, u *models.User, _ time.Time) error {
			assert.Equal(t, int64(100), u.Balance)
			assert.Equal(t, "striker", u.Username)
			return nil
		})

		got, err := NewService(users, economy.FixedClock{T: testNow}, 100).CreateAccount(ctx, 5, "  striker ")
		require.NoError(t, err)
		assert.Equal(t, int64(5), got.UserID)
	})

	t.Run("existing account", func(t *testing.T) {
		users := mock.NewMockUserRepository(gomock.NewController(t))
		users.EXPECT().Create(ctx, gomock.Any(), testNow).
			Return(&repositories.ConflictError{Entity: "user", Field: "user_id", Value: 5, Err: economy.ErrAccountExists})

		_, err := NewService(users, economy.FixedClock{T: testNow}, 100).CreateAccount(ctx, 5, "striker")
		assert.ErrorIs(t, err, economy.ErrAccountExists)
	})

	t.Run("invalid id", func(t *testing.T) {
		users := mock.NewMockUserRepository(gomock.NewController(t))
		_, err := NewService(users, economy.FixedClock{T: testNow}, 100).CreateAccount(ctx, 0, "striker")
		assert.Error(t, err)
	})
}
