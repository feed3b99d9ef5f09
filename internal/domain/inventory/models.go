package inventory

import (
	"time"

	"github.com/footycards/card-market/cardmarket/economy/rarity"
)

// Stack is one catalog card in a user's inventory.
type Stack struct {
	CardID     int64         `json:"card_id"`
	PlayerName string        `json:"player_name"`
	Rarity     rarity.Rarity `json:"rarity"`
	UniqName   string        `json:"uniq_name"`
	Copies     int           `json:"copies"`
	BestSerial int64         `json:"best_serial"`
	ObtainedAt time.Time     `json:"obtained_at"`
}

// Group is every stack of one rarity.
type Group struct {
	Rarity rarity.Rarity `json:"rarity"`
	Copies int           `json:"copies"`
	Stacks []Stack       `json:"stacks"`
}

// Completion compares the copies a user holds of one rarity with the catalog size.
type Completion struct {
	Rarity  rarity.Rarity `json:"rarity"`
	Owned   int           `json:"owned"`
	Catalog int           `json:"catalog"`
}

type Inventory struct {
	UserID     int64        `json:"user_id"`
	Total      int          `json:"total"`
	Groups     []Group      `json:"groups"`
	Completion []Completion `json:"completion"`
	Pages      int          `json:"pages"`
}

// Copy is a single owned serial of a card.
type Copy struct {
	UserCardID   int64     `json:"user_card_id"`
	SerialNumber int64     `json:"serial_number"`
	IsLocked     bool      `json:"is_locked"`
	IsFavorite   bool      `json:"is_favorite"`
	ObtainedAt   time.Time `json:"obtained_at"`
}

type CardDetail struct {
	CardID     int64         `json:"card_id"`
	PlayerName string        `json:"player_name"`
	Rarity     rarity.Rarity `json:"rarity"`
	UniqName   string        `json:"uniq_name"`
	Copies     []Copy        `json:"copies"`
}

// Filter narrows an inventory listing.
type Filter struct {
	Name   string
	Rarity *rarity.Rarity
}
