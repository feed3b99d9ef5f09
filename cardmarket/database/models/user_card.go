// models/user_card.go
package models

import (
	"time"

	"github.com/uptrace/bun"
)

// UserCard is one owned copy of a catalog card. Serial numbers are unique per card.
type UserCard struct {
	bun.BaseModel `bun:"table:user_cards,alias:uc"`

	ID           int64     `bun:"id,pk,autoincrement" json:"id"`
	UserID       int64     `bun:"user_id,notnull" json:"user_id"`
	CardID       int64     `bun:"card_id,notnull" json:"card_id"`
	SerialNumber int64     `bun:"serial_number,notnull" json:"serial_number"`
	IsLocked     bool      `bun:"is_locked,notnull,default:false" json:"is_locked"`
	IsFavorite   bool      `bun:"is_favorite,notnull,default:false" json:"is_favorite"`
	ObtainedAt   time.Time `bun:"obtained_at,notnull,default:current_timestamp" json:"obtained_at"`
	UpdatedAt    time.Time `bun:"updated_at,notnull,default:current_timestamp" json:"updated_at"`

	Card *Card `bun:"rel:belongs-to,join:card_id=id" json:"card,omitempty"`
}

// CardSerialCounter tracks the last serial issued for a card.
type CardSerialCounter struct {
	bun.BaseModel `bun:"table:card_serial_counters,alias:csc"`

	CardID int64 `bun:"card_id,pk"`
	Issued int64 `bun:"issued,notnull,default:0"`
}
