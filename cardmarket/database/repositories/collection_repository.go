package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/footycards/card-market/cardmarket/database/models"
	"github.com/uptrace/bun"
)

type CollectionRepository interface {
	Create(ctx context.Context, collection *models.Collection) error
	GetByID(ctx context.Context, id int64) (*models.Collection, error)
	GetForUpdate(ctx context.Context, tx bun.Tx, id int64) (*models.Collection, error)
	GetAll(ctx context.Context) ([]*models.Collection, error)
	// GetOpen returns active, unexpired, non-exhausted collections that have cards.
	GetOpen(ctx context.Context, now time.Time) ([]*models.Collection, error)
	// Advance adds delta to cards_opened, clamped to total_cards, and returns the new counts.
	Advance(ctx context.Context, idb bun.IDB, id int64, delta int) (opened, total int, err error)
}

type collectionRepository struct {
	*BaseRepository
}

func NewCollectionRepository(db *bun.DB) CollectionRepository {
	return &collectionRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *collectionRepository) Create(ctx context.Context, collection *models.Collection) error {
	if collection.TotalCards < 0 {
		return fmt.Errorf("failed to create collection: total_cards must not be negative")
	}
	_, err := r.db.NewInsert().Model(collection).Returning("*").Exec(ctx)
	return r.HandleError("create", "collection", err)
}

func (r *collectionRepository) GetByID(ctx context.Context, id int64) (*models.Collection, error) {
	col := new(models.Collection)
	if err := r.db.NewSelect().Model(col).Where("id = ?", id).Scan(ctx); err != nil {
		return nil, r.HandleErrorWithID("get", "collection", id, err)
	}
	return col, nil
}

func (r *collectionRepository) GetForUpdate(ctx context.Context, tx bun.Tx, id int64) (*models.Collection, error) {
	col := new(models.Collection)
	err := tx.NewSelect().
		Model(col).
		Where("id = ?", id).
		For("UPDATE").
		Scan(ctx)
	if err != nil {
		return nil, r.HandleErrorWithID("get_for_update", "collection", id, err)
	}
	return col, nil
}

func (r *collectionRepository) GetAll(ctx context.Context) ([]*models.Collection, error) {
	var cols []*models.Collection
	if err := r.db.NewSelect().Model(&cols).Order("id ASC").Scan(ctx); err != nil {
		return nil, r.HandleError("get_all", "collection", err)
	}
	return cols, nil
}

func (r *collectionRepository) GetOpen(ctx context.Context, now time.Time) ([]*models.Collection, error) {
	var cols []*models.Collection
	err := r.db.NewSelect().
		Model(&cols).
		Where("col.is_active = TRUE").
		Where("(col.end_date IS NULL OR col.end_date > ?)", now).
		Where("col.cards_opened < col.total_cards").
		Where("EXISTS (SELECT 1 FROM cards AS c WHERE c.collection_id = col.id)").
		Order("col.start_date DESC", "col.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("get_open", "collection", err)
	}
	return cols, nil
}

func (r *collectionRepository) Advance(ctx context.Context, idb bun.IDB, id int64, delta int) (int, int, error) {
	if delta < 0 {
		return 0, 0, fmt.Errorf("failed to advance collection %d: negative delta %d", id, delta)
	}

	col := new(models.Collection)
	err := r.idbOr(idb).NewUpdate().
		Model(col).
		Set("cards_opened = LEAST(cards_opened + ?, total_cards)", delta).
		Where("id = ?", id).
		Returning("cards_opened, total_cards").
		Scan(ctx)
	if err != nil {
		return 0, 0, r.HandleErrorWithID("advance", "collection", id, err)
	}
	return col.CardsOpened, col.TotalCards, nil
}
