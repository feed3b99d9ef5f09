package inventory

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/footycards/card-market/cardmarket/config"
	"github.com/footycards/card-market/cardmarket/economy"
	"github.com/footycards/card-market/cardmarket/economy/rarity"
)

type Service interface {
	GetInventory(ctx context.Context, userID int64, filter Filter) (*Inventory, error)
	GetCardDetail(ctx context.Context, userID, cardID int64) (*CardDetail, error)
	SetLocked(ctx context.Context, userID, userCardID int64, locked bool) error
	SetFavorite(ctx context.Context, userID, userCardID int64, favorite bool) error
	Search(ctx context.Context, query string) ([]Stack, error)
}

type service struct {
	repository Repository
	clock      economy.Clock
}

func NewService(repository Repository, clock economy.Clock) *service {
	return &service{
		repository: repository,
		clock:      clock,
	}
}

// GetInventory groups a user's cards by rarity, rarest first.
func (s *service) GetInventory(ctx context.Context, userID int64, filter Filter) (*Inventory, error) {
	stacks, err := s.repository.GetStacks(ctx, userID, filter.Rarity)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cards: %w", err)
	}

	inv := &Inventory{UserID: userID}
	byRarity := make(map[rarity.Rarity]*Group, len(rarity.Order))
	name := strings.ToLower(strings.TrimSpace(filter.Name))
	distinct := 0

	for _, st := range stacks {
		if name != "" && !strings.Contains(strings.ToLower(st.PlayerName), name) {
			continue
		}

		g, ok := byRarity[st.Rarity]
		if !ok {
			g = &Group{Rarity: st.Rarity}
			byRarity[st.Rarity] = g
		}
		g.Copies += st.Copies
		g.Stacks = append(g.Stacks, Stack{
			CardID:     st.CardID,
			PlayerName: st.PlayerName,
			Rarity:     st.Rarity,
			UniqName:   st.UniqName,
			Copies:     st.Copies,
			BestSerial: st.BestSerial,
			ObtainedAt: st.FirstObtain,
		})
		inv.Total += st.Copies
		distinct++
	}

	for i := len(rarity.Order) - 1; i >= 0; i-- {
		if g, ok := byRarity[rarity.Order[i]]; ok {
			inv.Groups = append(inv.Groups, *g)
		}
	}
	inv.Pages = int(math.Ceil(float64(distinct) / float64(config.DefaultPageSize)))

	if inv.Completion, err = s.completion(ctx, userID); err != nil {
		return nil, err
	}
	return inv, nil
}

// completion reports owned copies against catalog size per rarity, rarest first.
func (s *service) completion(ctx context.Context, userID int64) ([]Completion, error) {
	owned, err := s.repository.CountOwned(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count cards: %w", err)
	}
	catalog, err := s.repository.CountCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count catalog: %w", err)
	}

	out := make([]Completion, 0, len(rarity.Order))
	for i := len(rarity.Order) - 1; i >= 0; i-- {
		tier := rarity.Order[i]
		out = append(out, Completion{Rarity: tier, Owned: owned[tier], Catalog: catalog[tier]})
	}
	return out, nil
}

func (s *service) GetCardDetail(ctx context.Context, userID, cardID int64) (*CardDetail, error) {
	card, err := s.repository.GetCard(ctx, cardID)
	if err != nil {
		return nil, err
	}

	copies, err := s.repository.GetCopies(ctx, userID, cardID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch copies: %w", err)
	}
	if len(copies) == 0 {
		return nil, fmt.Errorf("no copies of card %d: %w", cardID, economy.ErrNotFound)
	}

	detail := &CardDetail{
		CardID:     card.ID,
		PlayerName: card.PlayerName,
		Rarity:     card.Rarity,
		UniqName:   card.UniqName,
		Copies:     make([]Copy, 0, len(copies)),
	}
	for _, c := range copies {
		detail.Copies = append(detail.Copies, Copy{
			UserCardID:   c.ID,
			SerialNumber: c.SerialNumber,
			IsLocked:     c.IsLocked,
			IsFavorite:   c.IsFavorite,
			ObtainedAt:   c.ObtainedAt,
		})
	}
	return detail, nil
}

func (s *service) SetLocked(ctx context.Context, userID, userCardID int64, locked bool) error {
	return s.repository.SetLocked(ctx, userCardID, userID, locked, s.clock.Now())
}

func (s *service) SetFavorite(ctx context.Context, userID, userCardID int64, favorite bool) error {
	return s.repository.SetFavorite(ctx, userCardID, userID, favorite, s.clock.Now())
}

// Search looks up catalog cards by player name.
func (s *service) Search(ctx context.Context, query string) ([]Stack, error) {
	cards, err := s.repository.SearchCards(ctx, query, config.SearchLimit)
	if err != nil {
		return nil, err
	}

	results := make([]Stack, 0, len(cards))
	for _, c := range cards {
		results = append(results, Stack{
			CardID:     c.ID,
			PlayerName: c.PlayerName,
			Rarity:     c.Rarity,
			UniqName:   c.UniqName,
		})
	}
	return results, nil
}
