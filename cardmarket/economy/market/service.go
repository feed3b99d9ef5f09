package market

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/footycards/card-market/cardmarket/config"
	"github.com/footycards/card-market/cardmarket/database/models"
	"github.com/footycards/card-market/cardmarket/database/repositories"
	"github.com/footycards/card-market/cardmarket/economy"
	"github.com/footycards/card-market/cardmarket/economy/utils"
	"github.com/uptrace/bun"
)

// History is a user's side of past trades.
type History struct {
	Sales     []*models.TradeRecord `json:"sales"`
	Purchases []*models.TradeRecord `json:"purchases"`
}

// Service is the marketplace surface: listing lifecycle, purchases and the read side.
type Service struct {
	tx       utils.Transactor
	listings repositories.ListingRepository
	trades   repositories.TradeRepository
	clock    economy.Clock
	maxPrice int64
}

func NewService(tx utils.Transactor, listings repositories.ListingRepository, trades repositories.TradeRepository, clock economy.Clock, maxPrice int64) *Service {
	if maxPrice <= 0 {
		maxPrice = utils.DefaultMaxPrice
	}
	return &Service{
		tx:       tx,
		listings: listings,
		trades:   trades,
		clock:    clock,
		maxPrice: maxPrice,
	}
}

func (s *Service) validatePrice(price int64) error {
	if price < utils.MinPrice || price > s.maxPrice {
		return fmt.Errorf("%w: %d must be between %d and %d", economy.ErrInvalidPrice, price, utils.MinPrice, s.maxPrice)
	}
	return nil
}

func (s *Service) CreateListing(ctx context.Context, sellerID, userCardID, price int64) (int64, error) {
	if err := s.validatePrice(price); err != nil {
		return 0, err
	}

	listing, err := s.listings.Create(ctx, sellerID, userCardID, price, s.clock.Now())
	if err != nil {
		return 0, err
	}

	slog.Info("Listing created",
		slog.String("type", "economy"),
		slog.Int64("listing_id", listing.ID),
		slog.Int64("seller_id", sellerID),
		slog.Int64("user_card_id", userCardID),
		slog.Int64("price", price))
	return listing.ID, nil
}

func (s *Service) RemoveListing(ctx context.Context, listingID, sellerID int64) error {
	if err := s.listings.Remove(ctx, listingID, sellerID, s.clock.Now()); err != nil {
		return err
	}
	slog.Info("Listing removed",
		slog.String("type", "economy"),
		slog.Int64("listing_id", listingID),
		slog.Int64("seller_id", sellerID))
	return nil
}

func (s *Service) UpdateListingPrice(ctx context.Context, listingID, sellerID, price int64) error {
	if err := s.validatePrice(price); err != nil {
		return err
	}
	return s.listings.UpdatePrice(ctx, listingID, sellerID, price, s.clock.Now())
}

// BuyListing runs the purchase in a serializable transaction and retries it
// on serialization failures.
func (s *Service) BuyListing(ctx context.Context, listingID, buyerID int64) (*models.TradeRecord, error) {
	var record *models.TradeRecord
	err := s.tx.WithTransaction(ctx, utils.SerializableTransactionOptions(), func(ctx context.Context, tx bun.Tx) error {
		var err error
		record, err = s.trades.ExecuteBuy(ctx, tx, listingID, buyerID, s.clock.Now())
		return err
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Listing sold",
		slog.String("type", "economy"),
		slog.String("trade_id", record.TradeID.String()),
		slog.Int64("listing_id", listingID),
		slog.Int64("seller_id", record.SellerID),
		slog.Int64("buyer_id", buyerID),
		slog.Int64("price", record.Price))
	return record, nil
}

// Browse lists active listings, newest first.
func (s *Service) Browse(ctx context.Context, filter repositories.ListingFilter) ([]*models.ListingView, int, error) {
	ctx, cancel := context.WithTimeout(ctx, config.MarketQueryTimeout)
	defer cancel()
	return s.listings.ListActive(ctx, filter)
}

func (s *Service) GetListing(ctx context.Context, listingID int64) (*models.ListingView, error) {
	return s.listings.GetView(ctx, listingID)
}

func (s *Service) MyListings(ctx context.Context, sellerID int64) ([]*models.ListingView, error) {
	return s.listings.ListBySeller(ctx, sellerID, models.ListingActive)
}

// CopyHistory returns the sales of one owned copy, newest first.
func (s *Service) CopyHistory(ctx context.Context, userCardID int64) ([]*models.TradeRecord, error) {
	return s.trades.GetByUserCard(ctx, userCardID, config.HistoryLimit)
}

func (s *Service) UserHistory(ctx context.Context, userID int64) (*History, error) {
	sales, err := s.trades.GetSales(ctx, userID, config.HistoryLimit)
	if err != nil {
		return nil, err
	}
	purchases, err := s.trades.GetPurchases(ctx, userID, config.HistoryLimit)
	if err != nil {
		return nil, err
	}
	return &History{Sales: sales, Purchases: purchases}, nil
}
