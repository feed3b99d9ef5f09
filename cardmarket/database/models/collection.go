package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Collection struct {
	bun.BaseModel `bun:"table:collections,alias:col"`

	ID          int64      `bun:"id,pk,autoincrement" json:"id"`
	Name        string     `bun:"name,notnull" json:"name"`
	Description string     `bun:"description,type:text,default:''" json:"description"`
	TotalCards  int        `bun:"total_cards,notnull" json:"total_cards"`
	CardsOpened int        `bun:"cards_opened,notnull,default:0" json:"cards_opened"`
	IsActive    bool       `bun:"is_active,notnull,default:true" json:"is_active"`
	StartDate   time.Time  `bun:"start_date,notnull,default:current_timestamp" json:"start_date"`
	EndDate     *time.Time `bun:"end_date" json:"end_date,omitempty"`
	CreatedAt   time.Time  `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`

	Cards []*Card `bun:"rel:has-many,join:id=collection_id" json:"-"`
}

func (c *Collection) Remaining() int {
	if r := c.TotalCards - c.CardsOpened; r > 0 {
		return r
	}
	return 0
}

func (c *Collection) Exhausted() bool {
	return c.CardsOpened >= c.TotalCards
}

// Open reports whether packs may still be sold for this collection at now.
func (c *Collection) Open(now time.Time) bool {
	if !c.IsActive || c.Exhausted() {
		return false
	}
	return c.EndDate == nil || c.EndDate.After(now)
}
