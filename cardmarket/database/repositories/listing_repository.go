package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/footycards/card-market/cardmarket/database"
	"github.com/footycards/card-market/cardmarket/database/models"
	"github.com/footycards/card-market/cardmarket/economy"
	"github.com/footycards/card-market/cardmarket/economy/rarity"
	"github.com/uptrace/bun"
)

// ListingFilter narrows the active market browse.
type ListingFilter struct {
	Page          int
	Limit         int
	Rarity        *rarity.Rarity
	CardID        *int64
	ExcludeSeller *int64
}

type ListingRepository interface {
	// Create lists an owned, unlocked copy. A concurrent duplicate fails with economy.ErrDuplicateListing.
	Create(ctx context.Context, sellerID, userCardID, price int64, now time.Time) (*models.MarketListing, error)
	GetByID(ctx context.Context, id int64) (*models.MarketListing, error)
	GetView(ctx context.Context, id int64) (*models.ListingView, error)
	UpdatePrice(ctx context.Context, id, sellerID, price int64, now time.Time) error
	Remove(ctx context.Context, id, sellerID int64, now time.Time) error
	ListActive(ctx context.Context, filter ListingFilter) ([]*models.ListingView, int, error)
	ListBySeller(ctx context.Context, sellerID int64, status models.ListingStatus) ([]*models.ListingView, error)
}

type listingRepository struct {
	*BaseRepository
}

func NewListingRepository(db *bun.DB) ListingRepository {
	return &listingRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *listingRepository) Create(ctx context.Context, sellerID, userCardID, price int64, now time.Time) (*models.MarketListing, error) {
	listing := &models.MarketListing{
		SellerID:   sellerID,
		UserCardID: userCardID,
		Price:      price,
		Status:     models.ListingActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err := r.Transaction(ctx, func(ctx context.Context, tx bun.Tx) error {
		uc := new(models.UserCard)
		err := tx.NewSelect().
			Model(uc).
			Where("id = ?", userCardID).
			For("UPDATE").
			Scan(ctx)
		if err != nil {
			return r.HandleErrorWithID("create", "user_card", userCardID, err)
		}
		if uc.UserID != sellerID {
			return economy.ErrNotOwner
		}
		if uc.IsLocked {
			return economy.ErrCardLocked
		}

		_, err = tx.NewInsert().Model(listing).Returning("id").Exec(ctx)
		return err
	})
	if err != nil {
		return nil, listingInsertError(userCardID, err)
	}
	return listing, nil
}

// listingInsertError maps constraint violations of the listings table to domain errors.
func listingInsertError(userCardID int64, err error) error {
	switch {
	case database.IsUniqueViolation(err) && database.ConstraintName(err) == database.ActiveListingIndex:
		return &ConflictError{Entity: "listing", Field: "user_card_id", Value: userCardID, Err: economy.ErrDuplicateListing}
	case database.IsCheckViolation(err) && database.ConstraintName(err) == database.ListingPriceCheck:
		return fmt.Errorf("failed to list copy %d: %w", userCardID, economy.ErrInvalidPrice)
	}
	return err
}

func (r *listingRepository) GetByID(ctx context.Context, id int64) (*models.MarketListing, error) {
	listing := new(models.MarketListing)
	if err := r.db.NewSelect().Model(listing).Where("id = ?", id).Scan(ctx); err != nil {
		return nil, r.HandleErrorWithID("get", "listing", id, err)
	}
	return listing, nil
}

func (r *listingRepository) views() *bun.SelectQuery {
	return r.db.NewSelect().
		TableExpr("market_listings AS ml").
		Join("JOIN user_cards AS uc ON uc.id = ml.user_card_id").
		Join("JOIN cards AS c ON c.id = uc.card_id").
		ColumnExpr("ml.id AS listing_id, ml.seller_id, ml.user_card_id, ml.price, ml.created_at").
		ColumnExpr("uc.card_id, uc.serial_number").
		ColumnExpr("c.player_name, c.rarity, c.uniq_name")
}

func (r *listingRepository) GetView(ctx context.Context, id int64) (*models.ListingView, error) {
	view := new(models.ListingView)
	err := r.views().
		Where("ml.id = ?", id).
		Where("ml.status = ?", models.ListingActive).
		Scan(ctx, view)
	if err != nil {
		return nil, r.HandleErrorWithID("get_view", "listing", id, err)
	}
	return view, nil
}

func (r *listingRepository) UpdatePrice(ctx context.Context, id, sellerID, price int64, now time.Time) error {
	res, err := r.db.NewUpdate().
		Model((*models.MarketListing)(nil)).
		Set("price = ?", price).
		Set("updated_at = ?", now).
		Where("id = ? AND seller_id = ? AND status = ?", id, sellerID, models.ListingActive).
		Exec(ctx)
	if err != nil {
		return r.HandleErrorWithID("update_price", "listing", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return r.classifyMiss(ctx, id, sellerID)
	}
	return nil
}

func (r *listingRepository) Remove(ctx context.Context, id, sellerID int64, now time.Time) error {
	res, err := r.db.NewUpdate().
		Model((*models.MarketListing)(nil)).
		Set("status = ?", models.ListingRemoved).
		Set("removed_at = ?", now).
		Set("updated_at = ?", now).
		Where("id = ? AND seller_id = ? AND status = ?", id, sellerID, models.ListingActive).
		Exec(ctx)
	if err != nil {
		return r.HandleErrorWithID("remove", "listing", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return r.classifyMiss(ctx, id, sellerID)
	}
	return nil
}

// classifyMiss explains why a seller-scoped update touched no rows.
func (r *listingRepository) classifyMiss(ctx context.Context, id, sellerID int64) error {
	listing, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if listing.SellerID != sellerID {
		return economy.ErrNotOwner
	}
	return &NotFoundError{Entity: "active listing", ID: id}
}

func (r *listingRepository) ListActive(ctx context.Context, filter ListingFilter) ([]*models.ListingView, int, error) {
	offset, limit := Page(filter.Page, filter.Limit)

	apply := func(q *bun.SelectQuery) *bun.SelectQuery {
		q = q.Where("ml.status = ?", models.ListingActive)
		if filter.Rarity != nil {
			q = q.Where("c.rarity = ?", *filter.Rarity)
		}
		if filter.CardID != nil {
			q = q.Where("c.id = ?", *filter.CardID)
		}
		if filter.ExcludeSeller != nil {
			q = q.Where("ml.seller_id <> ?", *filter.ExcludeSeller)
		}
		return q
	}

	total, err := apply(r.views()).Count(ctx)
	if err != nil {
		return nil, 0, r.HandleError("count_active", "listing", err)
	}

	var views []*models.ListingView
	err = apply(r.views()).
		OrderExpr("ml.created_at DESC, ml.id DESC").
		Offset(offset).
		Limit(limit).
		Scan(ctx, &views)
	if err != nil {
		return nil, 0, r.HandleError("list_active", "listing", err)
	}
	return views, total, nil
}

func (r *listingRepository) ListBySeller(ctx context.Context, sellerID int64, status models.ListingStatus) ([]*models.ListingView, error) {
	var views []*models.ListingView
	err := r.views().
		Where("ml.seller_id = ?", sellerID).
		Where("ml.status = ?", status).
		OrderExpr("ml.created_at DESC, ml.id DESC").
		Scan(ctx, &views)
	if err != nil {
		return nil, r.HandleError("list_by_seller", "listing", err)
	}
	return views, nil
}
