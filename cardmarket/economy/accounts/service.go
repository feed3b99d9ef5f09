package accounts

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/footycards/card-market/cardmarket/database/models"
	"github.com/footycards/card-market/cardmarket/database/repositories"
	"github.com/footycards/card-market/cardmarket/economy"
)

const maxUsernameLength = 64

type Service struct {
	users           repositories.UserRepository
	clock           economy.Clock
	startingBalance int64
}

func NewService(users repositories.UserRepository, clock economy.Clock, startingBalance int64) *Service {
	return &Service{users: users, clock: clock, startingBalance: startingBalance}
}

// CreateAccount opens an account with the starting balance.
func (s *Service) CreateAccount(ctx context.Context, userID int64, username string) (*models.User, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("invalid user id %d", userID)
	}
	username = strings.TrimSpace(username)
	if len(username) > maxUsernameLength {
		username = username[:maxUsernameLength]
	}

	user := &models.User{
		UserID:   userID,
		Username: username,
		Balance:  s.startingBalance,
	}
	if err := s.users.Create(ctx, user, s.clock.Now()); err != nil {
		return nil, err
	}

	slog.Info("Account created",
		slog.String("type", "economy"),
		slog.Int64("user_id", userID),
		slog.Int64("balance", user.Balance))
	return user, nil
}

func (s *Service) GetAccount(ctx context.Context, userID int64) (*models.User, error) {
	return s.users.GetByID(ctx, userID)
}

func (s *Service) Leaderboard(ctx context.Context, limit int) ([]*models.User, error) {
	return s.users.GetTopByScore(ctx, limit)
}
