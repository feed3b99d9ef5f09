package inventory

import (
	"context"
	"time"

	"github.com/footycards/card-market/cardmarket/database/models"
	"github.com/footycards/card-market/cardmarket/database/repositories"
	"github.com/footycards/card-market/cardmarket/economy/rarity"
)

//domains should have their own model, the repository still speaks database models

type Repository interface {
	GetStacks(ctx context.Context, userID int64, tier *rarity.Rarity) ([]*repositories.CardStack, error)
	GetCopies(ctx context.Context, userID, cardID int64) ([]*models.UserCard, error)
	GetCard(ctx context.Context, cardID int64) (*models.Card, error)
	CountOwned(ctx context.Context, userID int64) (map[rarity.Rarity]int, error)
	CountCatalog(ctx context.Context) (map[rarity.Rarity]int, error)
	SetLocked(ctx context.Context, userCardID, userID int64, locked bool, now time.Time) error
	SetFavorite(ctx context.Context, userCardID, userID int64, favorite bool, now time.Time) error
	SearchCards(ctx context.Context, query string, limit int) ([]*models.Card, error)
}

type repository struct {
	cards     repositories.CardRepository
	userCards repositories.UserCardRepository
}

func NewRepository(cards repositories.CardRepository, userCards repositories.UserCardRepository) Repository {
	return &repository{cards: cards, userCards: userCards}
}

func (r *repository) GetStacks(ctx context.Context, userID int64, tier *rarity.Rarity) ([]*repositories.CardStack, error) {
	return r.userCards.GetStacks(ctx, userID, tier)
}

func (r *repository) GetCopies(ctx context.Context, userID, cardID int64) ([]*models.UserCard, error) {
	return r.userCards.GetCopies(ctx, userID, cardID)
}

func (r *repository) GetCard(ctx context.Context, cardID int64) (*models.Card, error) {
	return r.cards.GetByID(ctx, cardID)
}

func (r *repository) CountOwned(ctx context.Context, userID int64) (map[rarity.Rarity]int, error) {
	return r.userCards.CountByRarity(ctx, userID)
}

func (r *repository) CountCatalog(ctx context.Context) (map[rarity.Rarity]int, error) {
	return r.cards.CountByRarity(ctx)
}

func (r *repository) SetLocked(ctx context.Context, userCardID, userID int64, locked bool, now time.Time) error {
	return r.userCards.SetLocked(ctx, userCardID, userID, locked, now)
}

func (r *repository) SetFavorite(ctx context.Context, userCardID, userID int64, favorite bool, now time.Time) error {
	return r.userCards.SetFavorite(ctx, userCardID, userID, favorite, now)
}

func (r *repository) SearchCards(ctx context.Context, query string, limit int) ([]*models.Card, error) {
	return r.cards.SearchByName(ctx, query, limit)
}
