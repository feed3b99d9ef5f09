package models

import (
	"time"

	"github.com/footycards/card-market/cardmarket/economy/rarity"
	"github.com/uptrace/bun"
)

// Card is a catalog item. Rows are seed data and never change at runtime.
type Card struct {
	bun.BaseModel `bun:"table:cards,alias:c"`

	ID           int64         `bun:"id,pk,autoincrement" json:"id"`
	PlayerName   string        `bun:"player_name,notnull" json:"player_name"`
	Rarity       rarity.Rarity `bun:"rarity,notnull" json:"rarity"`
	Weight       float64       `bun:"weight,notnull,default:1" json:"weight"`
	CollectionID *int64        `bun:"collection_id" json:"collection_id,omitempty"`
	UniqName     string        `bun:"uniq_name,notnull,unique" json:"uniq_name"`
	CreatedAt    time.Time     `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`

	Collection *Collection `bun:"rel:belongs-to,join:collection_id=id" json:"-"`
}

// String lets cards act as a fuzzy search source.
func (c *Card) String() string {
	return c.PlayerName
}
