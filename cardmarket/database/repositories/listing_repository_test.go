package repositories

import (
	"errors"
	"testing"

	"github.com/footycards/card-market/cardmarket/database"
	"github.com/footycards/card-market/cardmarket/economy"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestListingInsertError(t *testing.T) {
	t.Run("active listing index", func(t *testing.T) {
		err := listingInsertError(7, &pgconn.PgError{Code: database.CodeUniqueViolation, ConstraintName: database.ActiveListingIndex})
		assert.ErrorIs(t, err, economy.ErrDuplicateListing)
		var conflict *ConflictError
		if assert.ErrorAs(t, err, &conflict) {
			assert.Equal(t, int64(7), conflict.Value)
		}
	})

	t.Run("price check", func(t *testing.T) {
		err := listingInsertError(7, &pgconn.PgError{Code: database.CodeCheckViolation, ConstraintName: database.ListingPriceCheck})
		assert.ErrorIs(t, err, economy.ErrInvalidPrice)
	})

	t.Run("other constraints pass through", func(t *testing.T) {
		other := &pgconn.PgError{Code: database.CodeUniqueViolation, ConstraintName: "market_listings_pkey"}
		err := listingInsertError(7, other)
		assert.Same(t, other, err)
		assert.False(t, errors.Is(err, economy.ErrDuplicateListing))
	})
}
