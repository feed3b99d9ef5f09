package repositories

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/footycards/card-market/cardmarket/database/models"
	"github.com/uptrace/bun"
)

type PackRepository interface {
	// Upsert validates the rarity table and inserts or replaces the definition.
	Upsert(ctx context.Context, pack *models.Pack) error
	GetByID(ctx context.Context, id string) (*models.Pack, error)
	GetAlwaysAvailable(ctx context.Context) ([]*models.Pack, error)
	LogOpening(ctx context.Context, idb bun.IDB, opening *models.PackOpening) error
	GetOpenings(ctx context.Context, userID int64, limit int) ([]*models.PackOpening, error)
}

// openingSeq fills the low 22 bits of opening ids; the random start keeps
// separate processes from issuing the same sequence.
var openingSeq atomic.Uint32

func init() {
	openingSeq.Store(rand.Uint32())
}

// NewOpeningID returns a snowflake whose timestamp is t.
func NewOpeningID(t time.Time) int64 {
	return int64(snowflake.New(t)) | int64(openingSeq.Add(1)&0x3FFFFF)
}

type packRepository struct {
	*BaseRepository
}

func NewPackRepository(db *bun.DB) PackRepository {
	return &packRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *packRepository) Upsert(ctx context.Context, pack *models.Pack) error {
	if err := pack.Validate(); err != nil {
		return err
	}

	_, err := r.db.NewInsert().
		Model(pack).
		On("CONFLICT (id) DO UPDATE").
		Set("name = EXCLUDED.name").
		Set("description = EXCLUDED.description").
		Set("pack_type = EXCLUDED.pack_type").
		Set("cost = EXCLUDED.cost").
		Set("cards_amount = EXCLUDED.cards_amount").
		Set("common_chance = EXCLUDED.common_chance").
		Set("rare_chance = EXCLUDED.rare_chance").
		Set("epic_chance = EXCLUDED.epic_chance").
		Set("legendary_chance = EXCLUDED.legendary_chance").
		Set("guaranteed_rarity = EXCLUDED.guaranteed_rarity").
		Set("unique_items = EXCLUDED.unique_items").
		Set("is_always_available = EXCLUDED.is_always_available").
		Set("collection_id = EXCLUDED.collection_id").
		Exec(ctx)
	return r.HandleErrorWithID("upsert", "pack", pack.ID, err)
}

func (r *packRepository) GetByID(ctx context.Context, id string) (*models.Pack, error) {
	pack := new(models.Pack)
	if err := r.db.NewSelect().Model(pack).Where("id = ?", id).Scan(ctx); err != nil {
		return nil, r.HandleErrorWithID("get", "pack", id, err)
	}
	return pack, nil
}

func (r *packRepository) GetAlwaysAvailable(ctx context.Context) ([]*models.Pack, error) {
	var packs []*models.Pack
	err := r.db.NewSelect().
		Model(&packs).
		Where("is_always_available = TRUE").
		Order("cost ASC", "id ASC").
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("get_always_available", "pack", err)
	}
	return packs, nil
}

func (r *packRepository) LogOpening(ctx context.Context, idb bun.IDB, opening *models.PackOpening) error {
	if opening.ID == 0 {
		opening.ID = NewOpeningID(opening.OpenedAt)
	}
	_, err := r.idbOr(idb).NewInsert().Model(opening).Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to log pack opening: %w", err)
	}
	return nil
}

func (r *packRepository) GetOpenings(ctx context.Context, userID int64, limit int) ([]*models.PackOpening, error) {
	var openings []*models.PackOpening
	err := r.db.NewSelect().
		Model(&openings).
		Where("user_id = ?", userID).
		Order("opened_at DESC", "id DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("get_openings", "pack_opening", err)
	}
	return openings, nil
}
