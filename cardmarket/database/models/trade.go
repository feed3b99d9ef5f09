package models

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// TradeRecord is an append-only sale history entry.
type TradeRecord struct {
	bun.BaseModel `bun:"table:market_sales_history,alias:msh"`

	ID             int64     `bun:"id,pk,autoincrement" json:"id"`
	TradeID        uuid.UUID `bun:"trade_id,type:uuid,notnull,unique" json:"trade_id"`
	ListingID      int64     `bun:"listing_id,notnull" json:"listing_id"`
	UserCardID     int64     `bun:"user_card_id,notnull" json:"user_card_id"`
	CardID         int64     `bun:"card_id,notnull" json:"card_id"`
	SellerID       int64     `bun:"seller_id,notnull" json:"seller_id"`
	BuyerID        int64     `bun:"buyer_id,notnull" json:"buyer_id"`
	Price          int64     `bun:"price,notnull" json:"price"`
	PreviousOwners []int64   `bun:"previous_owners,type:jsonb,notnull" json:"previous_owners"`
	SoldAt         time.Time `bun:"sold_at,notnull,default:current_timestamp" json:"sold_at"`
}

// AppendOwner returns the owner trail with owner added once at the end.
func AppendOwner(trail []int64, owner int64) []int64 {
	out := make([]int64, 0, len(trail)+1)
	out = append(out, trail...)
	if !slices.Contains(out, owner) {
		out = append(out, owner)
	}
	return out
}
