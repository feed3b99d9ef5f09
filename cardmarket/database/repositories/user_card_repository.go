package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/footycards/card-market/cardmarket/database/models"
	"github.com/footycards/card-market/cardmarket/economy"
	"github.com/footycards/card-market/cardmarket/economy/rarity"
	"github.com/uptrace/bun"
)

// CardStack is one catalog card in a user's inventory with copy statistics.
type CardStack struct {
	CardID       int64         `bun:"card_id" json:"card_id"`
	PlayerName   string        `bun:"player_name" json:"player_name"`
	Rarity       rarity.Rarity `bun:"rarity" json:"rarity"`
	UniqName     string        `bun:"uniq_name" json:"uniq_name"`
	CollectionID *int64        `bun:"collection_id" json:"collection_id,omitempty"`
	Copies       int           `bun:"copies" json:"copies"`
	BestSerial   int64         `bun:"best_serial" json:"best_serial"`
	FirstObtain  time.Time     `bun:"first_obtained" json:"first_obtained"`
}

type UserCardRepository interface {
	// IssueCopy assigns the next serial for cardID and records the copy for ownerID.
	// Without idb both statements run in a transaction of their own.
	IssueCopy(ctx context.Context, idb bun.IDB, cardID, ownerID int64, obtainedAt time.Time) (*models.UserCard, error)
	GetByID(ctx context.Context, id int64) (*models.UserCard, error)
	GetForUpdate(ctx context.Context, tx bun.Tx, id int64) (*models.UserCard, error)
	GetAllByUserID(ctx context.Context, userID int64) ([]*models.UserCard, error)
	GetCopies(ctx context.Context, userID, cardID int64) ([]*models.UserCard, error)
	GetStacks(ctx context.Context, userID int64, tier *rarity.Rarity) ([]*CardStack, error)
	CountByRarity(ctx context.Context, userID int64) (map[rarity.Rarity]int, error)
	Serials(ctx context.Context, cardID int64) ([]int64, error)
	SetLocked(ctx context.Context, id, userID int64, locked bool, now time.Time) error
	SetFavorite(ctx context.Context, id, userID int64, favorite bool, now time.Time) error
	// TransferOwner moves the copy to toUserID. It fails with economy.ErrNotOwner when fromUserID no longer holds it.
	TransferOwner(ctx context.Context, tx bun.Tx, id, fromUserID, toUserID int64, now time.Time) (*models.UserCard, error)
}

type userCardRepository struct {
	*BaseRepository
}

func NewUserCardRepository(db *bun.DB) UserCardRepository {
	return &userCardRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *userCardRepository) IssueCopy(ctx context.Context, idb bun.IDB, cardID, ownerID int64, obtainedAt time.Time) (*models.UserCard, error) {
	if idb != nil {
		return r.issueCopy(ctx, idb, cardID, ownerID, obtainedAt)
	}

	var owned *models.UserCard
	err := r.Transaction(ctx, func(ctx context.Context, tx bun.Tx) error {
		var err error
		owned, err = r.issueCopy(ctx, tx, cardID, ownerID, obtainedAt)
		return err
	})
	if err != nil {
		return nil, err
	}
	return owned, nil
}

func (r *userCardRepository) issueCopy(ctx context.Context, idb bun.IDB, cardID, ownerID int64, obtainedAt time.Time) (*models.UserCard, error) {
	// the counter row lock serializes concurrent issuers of the same card
	counter := &models.CardSerialCounter{CardID: cardID, Issued: 1}
	err := idb.NewInsert().
		Model(counter).
		On("CONFLICT (card_id) DO UPDATE").
		Set("issued = ?TableAlias.issued + 1").
		Returning("issued").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to assign serial for card %d: %w", cardID, err)
	}

	owned := &models.UserCard{
		UserID:       ownerID,
		CardID:       cardID,
		SerialNumber: counter.Issued,
		ObtainedAt:   obtainedAt,
		UpdatedAt:    obtainedAt,
	}
	if _, err := idb.NewInsert().Model(owned).Returning("id").Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to insert copy of card %d: %w", cardID, err)
	}
	return owned, nil
}

func (r *userCardRepository) GetByID(ctx context.Context, id int64) (*models.UserCard, error) {
	uc := new(models.UserCard)
	err := r.db.NewSelect().
		Model(uc).
		Relation("Card").
		Where("uc.id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleErrorWithID("get", "user_card", id, err)
	}
	return uc, nil
}

func (r *userCardRepository) GetForUpdate(ctx context.Context, tx bun.Tx, id int64) (*models.UserCard, error) {
	uc := new(models.UserCard)
	err := tx.NewSelect().
		Model(uc).
		Where("id = ?", id).
		For("UPDATE").
		Scan(ctx)
	if err != nil {
		return nil, r.HandleErrorWithID("get_for_update", "user_card", id, err)
	}
	return uc, nil
}

func (r *userCardRepository) GetAllByUserID(ctx context.Context, userID int64) ([]*models.UserCard, error) {
	var cards []*models.UserCard
	err := r.db.NewSelect().
		Model(&cards).
		Where("user_id = ?", userID).
		Order("obtained_at DESC", "id DESC").
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("get_all_by_user", "user_card", err)
	}
	return cards, nil
}

func (r *userCardRepository) GetCopies(ctx context.Context, userID, cardID int64) ([]*models.UserCard, error) {
	var cards []*models.UserCard
	err := r.db.NewSelect().
		Model(&cards).
		Where("user_id = ? AND card_id = ?", userID, cardID).
		Order("serial_number ASC").
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("get_copies", "user_card", err)
	}
	return cards, nil
}

func (r *userCardRepository) GetStacks(ctx context.Context, userID int64, tier *rarity.Rarity) ([]*CardStack, error) {
	var stacks []*CardStack
	q := r.db.NewSelect().
		TableExpr("user_cards AS uc").
		Join("JOIN cards AS c ON c.id = uc.card_id").
		ColumnExpr("c.id AS card_id, c.player_name, c.rarity, c.uniq_name, c.collection_id").
		ColumnExpr("COUNT(uc.id) AS copies").
		ColumnExpr("MIN(uc.serial_number) AS best_serial").
		ColumnExpr("MIN(uc.obtained_at) AS first_obtained").
		Where("uc.user_id = ?", userID).
		GroupExpr("c.id, c.player_name, c.rarity, c.uniq_name, c.collection_id").
		OrderExpr("CASE c.rarity WHEN 'legendary' THEN 1 WHEN 'epic' THEN 2 WHEN 'rare' THEN 3 ELSE 4 END").
		OrderExpr("c.player_name ASC")

	if tier != nil {
		q = q.Where("c.rarity = ?", *tier)
	}

	if err := q.Scan(ctx, &stacks); err != nil {
		return nil, r.HandleError("get_stacks", "user_card", err)
	}
	return stacks, nil
}

func (r *userCardRepository) CountByRarity(ctx context.Context, userID int64) (map[rarity.Rarity]int, error) {
	var rows []struct {
		Rarity rarity.Rarity `bun:"rarity"`
		Count  int           `bun:"count"`
	}
	err := r.db.NewSelect().
		TableExpr("user_cards AS uc").
		Join("JOIN cards AS c ON c.id = uc.card_id").
		ColumnExpr("c.rarity AS rarity, COUNT(uc.id) AS count").
		Where("uc.user_id = ?", userID).
		GroupExpr("c.rarity").
		Scan(ctx, &rows)
	if err != nil {
		return nil, r.HandleError("count_by_rarity", "user_card", err)
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

func (r *userCardRepository) Serials(ctx context.Context, cardID int64) ([]int64, error) {
	var serials []int64
	err := r.db.NewSelect().
		Model((*models.UserCard)(nil)).
		Column("serial_number").
		Where("card_id = ?", cardID).
		Order("serial_number ASC").
		Scan(ctx, &serials)
	if err != nil {
		return nil, r.HandleError("serials", "user_card", err)
	}
	return serials, nil
}

func (r *userCardRepository) SetLocked(ctx context.Context, id, userID int64, locked bool, now time.Time) error {
	return r.Transaction(ctx, func(ctx context.Context, tx bun.Tx) error {
		uc, err := r.GetForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		if uc.UserID != userID {
			return economy.ErrNotOwner
		}

		if locked {
			listed, err := tx.NewSelect().
				Model((*models.MarketListing)(nil)).
				Where("user_card_id = ? AND status = ?", id, models.ListingActive).
				Exists(ctx)
			if err != nil {
				return r.HandleError("set_locked", "user_card", err)
			}
			if listed {
				return economy.ErrCardListed
			}
		}

		_, err = tx.NewUpdate().
			Model((*models.UserCard)(nil)).
			Set("is_locked = ?", locked).
			Set("updated_at = ?", now).
			Where("id = ?", id).
			Exec(ctx)
		return r.HandleError("set_locked", "user_card", err)
	})
}

func (r *userCardRepository) SetFavorite(ctx context.Context, id, userID int64, favorite bool, now time.Time) error {
	res, err := r.db.NewUpdate().
		Model((*models.UserCard)(nil)).
		Set("is_favorite = ?", favorite).
		Set("updated_at = ?", now).
		Where("id = ? AND user_id = ?", id, userID).
		Exec(ctx)
	if err != nil {
		return r.HandleError("set_favorite", "user_card", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return r.ownershipError(ctx, id)
	}
	return nil
}

func (r *userCardRepository) TransferOwner(ctx context.Context, tx bun.Tx, id, fromUserID, toUserID int64, now time.Time) (*models.UserCard, error) {
	uc := new(models.UserCard)
	res, err := tx.NewUpdate().
		Model(uc).
		Set("user_id = ?", toUserID).
		Set("updated_at = ?", now).
		Where("id = ? AND user_id = ?", id, fromUserID).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to transfer card: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, economy.ErrNotOwner
	}
	return uc, nil
}

// ownershipError tells a missing copy apart from one owned by someone else.
func (r *userCardRepository) ownershipError(ctx context.Context, id int64) error {
	exists, err := r.db.NewSelect().Model((*models.UserCard)(nil)).Where("id = ?", id).Exists(ctx)
	if err != nil {
		return r.HandleError("exists", "user_card", err)
	}
	if !exists {
		return &NotFoundError{Entity: "user_card", ID: id}
	}
	return economy.ErrNotOwner
}
