package models

import (
	"time"

	"github.com/uptrace/bun"
)

type ListingStatus string

const (
	ListingActive  ListingStatus = "active"
	ListingSold    ListingStatus = "sold"
	ListingRemoved ListingStatus = "removed"
)

type MarketListing struct {
	bun.BaseModel `bun:"table:market_listings,alias:ml"`

	ID         int64         `bun:"id,pk,autoincrement" json:"id"`
	SellerID   int64         `bun:"seller_id,notnull" json:"seller_id"`
	UserCardID int64         `bun:"user_card_id,notnull" json:"user_card_id"`
	Price      int64         `bun:"price,notnull" json:"price"`
	Status     ListingStatus `bun:"status,notnull,default:'active'" json:"status"`
	BuyerID    *int64        `bun:"buyer_id" json:"buyer_id,omitempty"`
	CreatedAt  time.Time     `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt  time.Time     `bun:"updated_at,notnull,default:current_timestamp" json:"updated_at"`
	SoldAt     *time.Time    `bun:"sold_at" json:"sold_at,omitempty"`
	RemovedAt  *time.Time    `bun:"removed_at" json:"removed_at,omitempty"`

	UserCard *UserCard `bun:"rel:belongs-to,join:user_card_id=id" json:"user_card,omitempty"`
}

// ListingView is a listing joined with the catalog card it sells.
type ListingView struct {
	ListingID    int64     `bun:"listing_id" json:"listing_id"`
	SellerID     int64     `bun:"seller_id" json:"seller_id"`
	UserCardID   int64     `bun:"user_card_id" json:"user_card_id"`
	Price        int64     `bun:"price" json:"price"`
	CreatedAt    time.Time `bun:"created_at" json:"created_at"`
	CardID       int64     `bun:"card_id" json:"card_id"`
	SerialNumber int64     `bun:"serial_number" json:"serial_number"`
	PlayerName   string    `bun:"player_name" json:"player_name"`
	Rarity       string    `bun:"rarity" json:"rarity"`
	UniqName     string    `bun:"uniq_name" json:"uniq_name"`
}
