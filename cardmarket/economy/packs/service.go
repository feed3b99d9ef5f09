package packs

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/footycards/card-market/cardmarket"
	"github.com/footycards/card-market/cardmarket/database/models"
	"github.com/footycards/card-market/cardmarket/database/repositories"
	"github.com/footycards/card-market/cardmarket/economy"
	"github.com/footycards/card-market/cardmarket/economy/rarity"
	"github.com/footycards/card-market/cardmarket/economy/utils"
	"github.com/uptrace/bun"
	"golang.org/x/sync/errgroup"
)

// OpenedCard is one card issued by a pack open.
type OpenedCard struct {
	UserCardID   int64         `json:"user_card_id"`
	CardID       int64         `json:"card_id"`
	PlayerName   string        `json:"player_name"`
	Rarity       rarity.Rarity `json:"rarity"`
	UniqName     string        `json:"uniq_name"`
	SerialNumber int64         `json:"serial_number"`
	Score        int64         `json:"score"`
}

type OpenResult struct {
	OpeningID  int64        `json:"opening_id"`
	PackID     string       `json:"pack_id"`
	CostPaid   int64        `json:"cost_paid"`
	Cards      []OpenedCard `json:"cards"`
	TotalScore int64        `json:"total_score"`
	Requested  int          `json:"requested"`
	Degraded   bool         `json:"degraded"`
}

// FreePackStatus describes when the next free pack can be opened.
type FreePackStatus struct {
	Available bool          `json:"available"`
	Remaining time.Duration `json:"remaining"`
	NextAt    time.Time     `json:"next_at"`
}

type Service struct {
	tx          utils.Transactor
	packs       repositories.PackRepository
	cards       repositories.CardRepository
	userCards   repositories.UserCardRepository
	collections repositories.CollectionRepository
	users       repositories.UserRepository
	generator   *Generator
	src         rarity.Source
	clock       economy.Clock
	cfg         cardmarket.EconomyConfig
	loc         *time.Location
}

func NewService(
	tx utils.Transactor,
	packs repositories.PackRepository,
	cards repositories.CardRepository,
	userCards repositories.UserCardRepository,
	collections repositories.CollectionRepository,
	users repositories.UserRepository,
	src rarity.Source,
	clock economy.Clock,
	cfg cardmarket.EconomyConfig,
) *Service {
	return &Service{
		tx:          tx,
		packs:       packs,
		cards:       cards,
		userCards:   userCards,
		collections: collections,
		users:       users,
		generator:   NewGenerator(src),
		src:         src,
		clock:       clock,
		cfg:         cfg,
		loc:         cfg.Location(),
	}
}

// CollectionPackID is the synthesized pack id for a collection.
func CollectionPackID(collectionID int64) string {
	return utils.CollectionPackPrefix + strconv.FormatInt(collectionID, 10)
}

func parseCollectionPackID(packID string) (int64, bool) {
	raw, ok := strings.CutPrefix(packID, utils.CollectionPackPrefix)
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// CollectionPack builds the pack sold for an open collection.
func CollectionPack(col *models.Collection, cfg cardmarket.CollectionPackConfig) *models.Pack {
	id := col.ID
	pack := &models.Pack{
		ID:                CollectionPackID(col.ID),
		Name:              col.Name,
		Description:       col.Description,
		PackType:          models.PackCollection,
		Cost:              cfg.Cost,
		CardsAmount:       cfg.CardsAmount,
		IsAlwaysAvailable: false,
		CollectionID:      &id,
	}
	pack.SetTable(cfg.Table)
	return pack
}

// GetPack resolves a base pack or a synthesized collection pack.
func (s *Service) GetPack(ctx context.Context, packID string) (*models.Pack, error) {
	if colID, ok := parseCollectionPackID(packID); ok {
		col, err := s.collections.GetByID(ctx, colID)
		if err != nil {
			if errors.Is(err, economy.ErrNotFound) {
				return nil, economy.ErrPackNotFound
			}
			return nil, err
		}
		if !col.Open(s.clock.Now()) {
			return nil, economy.ErrPackNotFound
		}
		return CollectionPack(col, s.cfg.CollectionPack), nil
	}

	pack, err := s.packs.GetByID(ctx, packID)
	if err != nil {
		if errors.Is(err, economy.ErrNotFound) {
			return nil, economy.ErrPackNotFound
		}
		return nil, err
	}
	return pack, nil
}

// ListAvailablePacks returns base packs followed by packs for open collections.
func (s *Service) ListAvailablePacks(ctx context.Context) ([]*models.Pack, error) {
	var (
		base []*models.Pack
		cols []*models.Collection
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		base, err = s.packs.GetAlwaysAvailable(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		cols, err = s.collections.GetOpen(gctx, s.clock.Now())
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to list packs: %w", err)
	}

	packs := make([]*models.Pack, 0, len(base)+len(cols))
	packs = append(packs, base...)
	for _, col := range cols {
		packs = append(packs, CollectionPack(col, s.cfg.CollectionPack))
	}
	return packs, nil
}

func (s *Service) FreePackStatus(ctx context.Context, userID int64) (*FreePackStatus, error) {
	now := s.clock.Now()
	ok, remaining, err := s.users.CheckFreePackEligible(ctx, userID, now, s.cfg.FreePackCooldown.Duration, s.loc)
	if err != nil {
		return nil, err
	}
	return &FreePackStatus{
		Available: ok,
		Remaining: remaining,
		NextAt:    now.Add(remaining).In(s.loc),
	}, nil
}

// OpenPack charges the user, draws cards, issues serials and advances
// collection progress in one transaction. Any failure rolls all of it back.
func (s *Service) OpenPack(ctx context.Context, packID string, userID int64) (*OpenResult, error) {
	pack, err := s.GetPack(ctx, packID)
	if err != nil {
		return nil, err
	}

	var result *OpenResult
	err = s.tx.WithTransaction(ctx, utils.PackOpenTransactionOptions(), func(ctx context.Context, tx bun.Tx) error {
		now := s.clock.Now()
		result = &OpenResult{PackID: pack.ID, Requested: pack.CardsAmount}

		if pack.IsFree() {
			if err := s.users.ClaimFreePack(ctx, tx, userID, now, s.cfg.FreePackCooldown.Duration); err != nil {
				return err
			}
		} else {
			if err := s.users.Debit(ctx, tx, userID, pack.Cost, now); err != nil {
				return err
			}
			result.CostPaid = pack.Cost
		}

		if pack.CollectionID != nil {
			col, err := s.collections.GetForUpdate(ctx, tx, *pack.CollectionID)
			if err != nil {
				return err
			}
			if col.Exhausted() {
				return economy.ErrCardPoolExhausted
			}
		}

		tiers := s.generator.Roll(pack)
		pool, err := s.cards.Pools(ctx, tx, distinct(tiers), pack.CollectionID)
		if err != nil {
			return err
		}

		drawn := s.generator.Fill(pack, tiers, pool)
		if len(drawn.Draws) == 0 {
			return economy.ErrCardPoolExhausted
		}
		result.Degraded = drawn.Degraded()

		advance := make(map[int64]int)
		for _, d := range drawn.Draws {
			if d.Card.CollectionID != nil {
				advance[*d.Card.CollectionID]++
			}
		}

		// advance in id order so concurrent opens lock collections consistently
		colIDs := make([]int64, 0, len(advance))
		for id := range advance {
			colIDs = append(colIDs, id)
		}
		slices.Sort(colIDs)
		for _, id := range colIDs {
			if _, _, err := s.collections.Advance(ctx, tx, id, advance[id]); err != nil {
				return err
			}
		}

		// serial counters are locked in card id order for the same reason
		order := make([]int, len(drawn.Draws))
		for i := range order {
			order[i] = i
		}
		slices.SortStableFunc(order, func(a, b int) int {
			return cmp.Compare(drawn.Draws[a].Card.ID, drawn.Draws[b].Card.ID)
		})

		copies := make([]*models.UserCard, len(drawn.Draws))
		for _, i := range order {
			owned, err := s.userCards.IssueCopy(ctx, tx, drawn.Draws[i].Card.ID, userID, now)
			if err != nil {
				return err
			}
			copies[i] = owned
		}

		cardIDs := make([]int64, 0, len(drawn.Draws))
		for i, d := range drawn.Draws {
			score := s.score(d.Card.Rarity)
			result.TotalScore += score
			result.Cards = append(result.Cards, OpenedCard{
				UserCardID:   copies[i].ID,
				CardID:       d.Card.ID,
				PlayerName:   d.Card.PlayerName,
				Rarity:       d.Card.Rarity,
				UniqName:     d.Card.UniqName,
				SerialNumber: copies[i].SerialNumber,
				Score:        score,
			})
			cardIDs = append(cardIDs, d.Card.ID)
		}

		if err := s.users.AddScore(ctx, tx, userID, result.TotalScore); err != nil {
			return err
		}

		opening := &models.PackOpening{
			UserID:         userID,
			PackID:         pack.ID,
			CostPaid:       result.CostPaid,
			CardIDs:        cardIDs,
			CardsRequested: drawn.Requested,
			ScoreGained:    result.TotalScore,
			OpenedAt:       now,
		}
		if err := s.packs.LogOpening(ctx, tx, opening); err != nil {
			return err
		}
		result.OpeningID = opening.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Degraded {
		slog.Warn("Pack opened short",
			slog.String("type", "economy"),
			slog.String("pack_id", pack.ID),
			slog.Int64("user_id", userID),
			slog.Int("requested", result.Requested),
			slog.Int("issued", len(result.Cards)))
	}
	slog.Info("Pack opened",
		slog.String("type", "economy"),
		slog.String("pack_id", pack.ID),
		slog.Int64("user_id", userID),
		slog.Int64("cost", result.CostPaid),
		slog.Int("cards", len(result.Cards)),
		slog.Int64("score", result.TotalScore))

	return result, nil
}

func (s *Service) score(r rarity.Rarity) int64 {
	rng := s.cfg.Scores.For(r)
	if rng.Max <= rng.Min {
		return int64(rng.Min)
	}
	return int64(rng.Min + s.src.IntN(rng.Max-rng.Min+1))
}

// Openings returns the most recent opens of a user.
func (s *Service) Openings(ctx context.Context, userID int64, limit int) ([]*models.PackOpening, error) {
	return s.packs.GetOpenings(ctx, userID, limit)
}
