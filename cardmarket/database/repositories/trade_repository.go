package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/footycards/card-market/cardmarket/database/models"
	"github.com/footycards/card-market/cardmarket/economy"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// SaleStats summarizes recent sales of one catalog card.
type SaleStats struct {
	CardID   int64   `bun:"card_id" json:"card_id"`
	Sales    int     `bun:"sales" json:"sales"`
	MinPrice int64   `bun:"min_price" json:"min_price"`
	MaxPrice int64   `bun:"max_price" json:"max_price"`
	AvgPrice float64 `bun:"avg_price" json:"avg_price"`
}

type TradeRepository interface {
	// ExecuteBuy moves a listed copy and its price between accounts inside tx.
	// The caller owns tx and its isolation level.
	ExecuteBuy(ctx context.Context, tx bun.Tx, listingID, buyerID int64, now time.Time) (*models.TradeRecord, error)
	GetByUserCard(ctx context.Context, userCardID int64, limit int) ([]*models.TradeRecord, error)
	GetSales(ctx context.Context, sellerID int64, limit int) ([]*models.TradeRecord, error)
	GetPurchases(ctx context.Context, buyerID int64, limit int) ([]*models.TradeRecord, error)
	GetStats(ctx context.Context, cardIDs []int64, since time.Time) ([]*SaleStats, error)
}

type tradeRepository struct {
	*BaseRepository
	users     UserRepository
	userCards UserCardRepository
}

func NewTradeRepository(db *bun.DB, users UserRepository, userCards UserCardRepository) TradeRepository {
	return &tradeRepository{
		BaseRepository: NewBaseRepository(db),
		users:          users,
		userCards:      userCards,
	}
}

func (r *tradeRepository) ExecuteBuy(ctx context.Context, tx bun.Tx, listingID, buyerID int64, now time.Time) (*models.TradeRecord, error) {
	// Lock the listing first so concurrent buyers queue here
	listing := new(models.MarketListing)
	err := tx.NewSelect().
		Model(listing).
		Where("id = ?", listingID).
		For("UPDATE").
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &NotFoundError{Entity: "listing", ID: listingID}
		}
		return nil, fmt.Errorf("failed to lock listing: %w", err)
	}

	switch listing.Status {
	case models.ListingSold:
		return nil, economy.ErrAlreadySold
	case models.ListingRemoved:
		return nil, &NotFoundError{Entity: "active listing", ID: listingID}
	}
	if listing.SellerID == buyerID {
		return nil, economy.ErrSelfPurchase
	}

	buyer, _, err := r.users.LockPair(ctx, tx, buyerID, listing.SellerID)
	if err != nil {
		return nil, err
	}
	if buyer.Balance < listing.Price {
		return nil, economy.ErrInsufficientFunds
	}

	if err := r.users.Debit(ctx, tx, buyerID, listing.Price, now); err != nil {
		return nil, err
	}
	if err := r.users.Credit(ctx, tx, listing.SellerID, listing.Price, now); err != nil {
		return nil, err
	}

	uc, err := r.userCards.TransferOwner(ctx, tx, listing.UserCardID, listing.SellerID, buyerID, now)
	if err != nil {
		return nil, err
	}

	// Carry the owner trail forward from the last sale of this copy
	var trail []int64
	last := new(models.TradeRecord)
	err = tx.NewSelect().
		Model(last).
		Column("previous_owners").
		Where("user_card_id = ?", listing.UserCardID).
		Order("sold_at DESC", "id DESC").
		Limit(1).
		Scan(ctx)
	switch {
	case err == nil:
		trail = last.PreviousOwners
	case errors.Is(err, sql.ErrNoRows):
	default:
		return nil, fmt.Errorf("failed to read sale history: %w", err)
	}

	record := &models.TradeRecord{
		TradeID:        uuid.New(),
		ListingID:      listing.ID,
		UserCardID:     listing.UserCardID,
		CardID:         uc.CardID,
		SellerID:       listing.SellerID,
		BuyerID:        buyerID,
		Price:          listing.Price,
		PreviousOwners: models.AppendOwner(trail, listing.SellerID),
		SoldAt:         now,
	}
	if _, err = tx.NewInsert().Model(record).Returning("id").Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to record sale: %w", err)
	}

	_, err = tx.NewUpdate().
		Model((*models.MarketListing)(nil)).
		Set("status = ?", models.ListingSold).
		Set("buyer_id = ?", buyerID).
		Set("sold_at = ?", now).
		Set("updated_at = ?", now).
		Where("id = ?", listing.ID).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to close listing: %w", err)
	}

	slog.Debug("Sale staged",
		slog.String("type", "db"),
		slog.Int64("listing_id", listing.ID),
		slog.Int64("seller_id", listing.SellerID),
		slog.Int64("buyer_id", buyerID),
		slog.Int64("price", listing.Price))

	return record, nil
}

func (r *tradeRepository) history(ctx context.Context, op, column string, id int64, limit int) ([]*models.TradeRecord, error) {
	var records []*models.TradeRecord
	err := r.db.NewSelect().
		Model(&records).
		Where("? = ?", bun.Ident(column), id).
		Order("sold_at DESC", "id DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError(op, "trade", err)
	}
	return records, nil
}

func (r *tradeRepository) GetByUserCard(ctx context.Context, userCardID int64, limit int) ([]*models.TradeRecord, error) {
	return r.history(ctx, "get_by_user_card", "user_card_id", userCardID, limit)
}

func (r *tradeRepository) GetSales(ctx context.Context, sellerID int64, limit int) ([]*models.TradeRecord, error) {
	return r.history(ctx, "get_sales", "seller_id", sellerID, limit)
}

func (r *tradeRepository) GetPurchases(ctx context.Context, buyerID int64, limit int) ([]*models.TradeRecord, error) {
	return r.history(ctx, "get_purchases", "buyer_id", buyerID, limit)
}

func (r *tradeRepository) GetStats(ctx context.Context, cardIDs []int64, since time.Time) ([]*SaleStats, error) {
	if len(cardIDs) == 0 {
		return nil, nil
	}

	var stats []*SaleStats
	err := r.db.NewSelect().
		Model((*models.TradeRecord)(nil)).
		ColumnExpr("card_id").
		ColumnExpr("COUNT(*) AS sales").
		ColumnExpr("MIN(price) AS min_price").
		ColumnExpr("MAX(price) AS max_price").
		ColumnExpr("AVG(price)::float8 AS avg_price").
		Where("card_id IN (?)", bun.In(cardIDs)).
		Where("sold_at >= ?", since).
		Group("card_id").
		Scan(ctx, &stats)
	if err != nil {
		return nil, r.HandleError("get_stats", "trade", err)
	}
	return stats, nil
}
