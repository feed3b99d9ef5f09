package repositories

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/footycards/card-market/cardmarket/config"
	"github.com/footycards/card-market/cardmarket/database/models"
	"github.com/footycards/card-market/cardmarket/economy"
	"github.com/footycards/card-market/cardmarket/economy/rarity"
	lru "github.com/hashicorp/golang-lru"
	"github.com/sahilm/fuzzy"
	"github.com/uptrace/bun"
)

// CardRepository is the catalog store. Catalog rows are immutable once seeded.
type CardRepository interface {
	Create(ctx context.Context, card *models.Card) error
	BulkCreate(ctx context.Context, cards []*models.Card) (int, error)
	GetByID(ctx context.Context, id int64) (*models.Card, error)
	GetByIDs(ctx context.Context, ids []int64) ([]*models.Card, error)
	GetByUniqName(ctx context.Context, uniqName string) (*models.Card, error)
	Count(ctx context.Context) (int, error)
	CountByRarity(ctx context.Context) (map[rarity.Rarity]int, error)
	SearchByName(ctx context.Context, query string, limit int) ([]*models.Card, error)
	// Sample picks one card of the tier uniformly, skipping exhausted collections.
	Sample(ctx context.Context, idb bun.IDB, tier rarity.Rarity, collectionID *int64, src rarity.Source) (*models.Card, error)
	// Pools loads every candidate of the given tiers with its collection attached.
	Pools(ctx context.Context, idb bun.IDB, tiers []rarity.Rarity, collectionID *int64) ([]*models.Card, error)
}

type cardRepository struct {
	*BaseRepository
	cache *lru.Cache
}

func NewCardRepository(db *bun.DB) CardRepository {
	cache, err := lru.New(config.CardCacheSize)
	if err != nil {
		// only fails for a non-positive size
		panic(fmt.Sprintf("failed to create card cache: %v", err))
	}
	return &cardRepository{
		BaseRepository: NewBaseRepository(db),
		cache:          cache,
	}
}

func (r *cardRepository) Create(ctx context.Context, card *models.Card) error {
	if !card.Rarity.Valid() {
		return fmt.Errorf("failed to create card: unknown rarity %q", card.Rarity)
	}
	_, err := r.db.NewInsert().Model(card).Exec(ctx)
	if err != nil {
		return r.HandleError("create", "card", err)
	}
	return nil
}

func (r *cardRepository) BulkCreate(ctx context.Context, cards []*models.Card) (int, error) {
	if len(cards) == 0 {
		return 0, nil
	}
	for _, c := range cards {
		if !c.Rarity.Valid() {
			return 0, fmt.Errorf("failed to create card %s: unknown rarity %q", c.UniqName, c.Rarity)
		}
	}

	timeoutCtx, cancel := r.WithCustomTimeout(ctx, config.BatchQueryTimeout)
	defer cancel()

	res, err := r.db.NewInsert().
		Model(&cards).
		On("CONFLICT (uniq_name) DO NOTHING").
		Exec(timeoutCtx)
	if err != nil {
		return 0, r.HandleError("bulk_create", "card", err)
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}

func (r *cardRepository) GetByID(ctx context.Context, id int64) (*models.Card, error) {
	if cached, ok := r.cache.Get(id); ok {
		return cached.(*models.Card), nil
	}

	card := new(models.Card)
	err := r.db.NewSelect().Model(card).Where("id = ?", id).Scan(ctx)
	if err != nil {
		return nil, r.HandleErrorWithID("get", "card", id, err)
	}

	r.cache.Add(id, card)
	return card, nil
}

func (r *cardRepository) GetByIDs(ctx context.Context, ids []int64) ([]*models.Card, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	result := make([]*models.Card, 0, len(ids))
	missing := make([]int64, 0, len(ids))
	for _, id := range ids {
		if cached, ok := r.cache.Get(id); ok {
			result = append(result, cached.(*models.Card))
			continue
		}
		missing = append(missing, id)
	}

	if len(missing) > 0 {
		var cards []*models.Card
		err := r.db.NewSelect().
			Model(&cards).
			Where("id IN (?)", bun.In(missing)).
			Scan(ctx)
		if err != nil {
			return nil, r.HandleError("get_by_ids", "card", err)
		}
		for _, c := range cards {
			r.cache.Add(c.ID, c)
		}
		result = append(result, cards...)
	}
	return result, nil
}

func (r *cardRepository) GetByUniqName(ctx context.Context, uniqName string) (*models.Card, error) {
	card := new(models.Card)
	err := r.db.NewSelect().Model(card).Where("uniq_name = ?", uniqName).Scan(ctx)
	if err != nil {
		return nil, r.HandleErrorWithID("get_by_uniq_name", "card", uniqName, err)
	}
	return card, nil
}

func (r *cardRepository) Count(ctx context.Context) (int, error) {
	n, err := r.db.NewSelect().Model((*models.Card)(nil)).Count(ctx)
	if err != nil {
		return 0, r.HandleError("count", "card", err)
	}
	return n, nil
}

func (r *cardRepository) CountByRarity(ctx context.Context) (map[rarity.Rarity]int, error) {
	var rows []struct {
		Rarity rarity.Rarity `bun:"rarity"`
		Count  int           `bun:"count"`
	}
	err := r.db.NewSelect().
		Model((*models.Card)(nil)).
		Column("rarity").
		ColumnExpr("COUNT(*) AS count").
		Group("rarity").
		Scan(ctx, &rows)
	if err != nil {
		return nil, r.HandleError("count_by_rarity", "card", err)
	}

	counts := make(map[rarity.Rarity]int, len(rarity.Order))
	for _, tier := range rarity.Order {
		counts[tier] = 0
	}
	for _, row := range rows {
		counts[row.Rarity] = row.Count
	}
	return counts, nil
}

// cardSearchItems implements fuzzy.Source
type cardSearchItems []*models.Card

func (items cardSearchItems) Len() int            { return len(items) }
func (items cardSearchItems) String(i int) string { return strings.ToLower(items[i].PlayerName) }

func (r *cardRepository) SearchByName(ctx context.Context, query string, limit int) ([]*models.Card, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil, nil
	}
	if limit <= 0 || limit > config.SearchLimit {
		limit = config.SearchLimit
	}

	timeoutCtx, cancel := r.WithCustomTimeout(ctx, config.SearchTimeout)
	defer cancel()

	var cards []*models.Card
	if err := r.db.NewSelect().Model(&cards).Order("id ASC").Scan(timeoutCtx); err != nil {
		return nil, r.HandleError("search", "card", err)
	}

	matches := fuzzy.FindFrom(query, cardSearchItems(cards))
	slog.Debug("Card search",
		slog.String("type", "db"),
		slog.String("query", query),
		slog.Int("catalog", len(cards)),
		slog.Int("matches", len(matches)))

	if len(matches) > limit {
		matches = matches[:limit]
	}
	results := make([]*models.Card, len(matches))
	for i, m := range matches {
		results[i] = cards[m.Index]
	}
	return results, nil
}

func (r *cardRepository) candidates(idb bun.IDB, tiers []rarity.Rarity, collectionID *int64) *bun.SelectQuery {
	q := r.idbOr(idb).NewSelect().
		Model((*models.Card)(nil)).
		Join("LEFT JOIN collections AS col ON col.id = c.collection_id").
		Where("c.rarity IN (?)", bun.In(tiers))

	if collectionID != nil {
		q = q.Where("c.collection_id = ?", *collectionID).
			Where("col.cards_opened < col.total_cards")
	} else {
		q = q.Where("(col.id IS NULL OR col.cards_opened < col.total_cards)")
	}
	return q
}

func (r *cardRepository) Sample(ctx context.Context, idb bun.IDB, tier rarity.Rarity, collectionID *int64, src rarity.Source) (*models.Card, error) {
	n, err := r.candidates(idb, []rarity.Rarity{tier}, collectionID).Count(ctx)
	if err != nil {
		return nil, r.HandleError("sample_count", "card", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("no %s cards available: %w", tier, economy.ErrNotFound)
	}

	card := new(models.Card)
	err = r.candidates(idb, []rarity.Rarity{tier}, collectionID).
		Model(card).
		Order("c.id ASC").
		Offset(src.IntN(n)).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleErrorWithID("sample", "card", tier, err)
	}
	return card, nil
}

func (r *cardRepository) Pools(ctx context.Context, idb bun.IDB, tiers []rarity.Rarity, collectionID *int64) ([]*models.Card, error) {
	if len(tiers) == 0 {
		return nil, nil
	}

	var cards []*models.Card
	err := r.candidates(idb, tiers, collectionID).
		Model(&cards).
		Order("c.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("pools", "card", err)
	}

	// attach collections so the generator can track capacity per open
	ids := make([]int64, 0)
	seen := make(map[int64]bool)
	for _, c := range cards {
		if c.CollectionID != nil && !seen[*c.CollectionID] {
			seen[*c.CollectionID] = true
			ids = append(ids, *c.CollectionID)
		}
	}
	if len(ids) == 0 {
		return cards, nil
	}

	var cols []*models.Collection
	err = r.idbOr(idb).NewSelect().
		Model(&cols).
		Where("id IN (?)", bun.In(ids)).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("pools_collections", "collection", err)
	}
	byID := make(map[int64]*models.Collection, len(cols))
	for _, col := range cols {
		byID[col.ID] = col
	}
	for _, c := range cards {
		if c.CollectionID != nil {
			c.Collection = byID[*c.CollectionID]
		}
	}
	return cards, nil
}
