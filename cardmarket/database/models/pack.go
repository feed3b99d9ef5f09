package models

import (
	"fmt"
	"time"

	"github.com/footycards/card-market/cardmarket/economy/rarity"
	"github.com/uptrace/bun"
)

type PackType string

const (
	PackFree       PackType = "free"
	PackPremium    PackType = "premium"
	PackCollection PackType = "collection"
	PackEvent      PackType = "event"
)

type Pack struct {
	bun.BaseModel `bun:"table:packs,alias:p"`

	ID                string         `bun:"id,pk" json:"id"`
	Name              string         `bun:"name,notnull" json:"name"`
	Description       string         `bun:"description,type:text,default:''" json:"description"`
	PackType          PackType       `bun:"pack_type,notnull" json:"pack_type"`
	Cost              int64          `bun:"cost,notnull,default:0" json:"cost"`
	CardsAmount       int            `bun:"cards_amount,notnull" json:"cards_amount"`
	CommonChance      float64        `bun:"common_chance,notnull" json:"common_chance"`
	RareChance        float64        `bun:"rare_chance,notnull" json:"rare_chance"`
	EpicChance        float64        `bun:"epic_chance,notnull" json:"epic_chance"`
	LegendaryChance   float64        `bun:"legendary_chance,notnull" json:"legendary_chance"`
	GuaranteedRarity  *rarity.Rarity `bun:"guaranteed_rarity" json:"guaranteed_rarity,omitempty"`
	UniqueItems       bool           `bun:"unique_items,notnull,default:false" json:"unique_items"`
	IsAlwaysAvailable bool           `bun:"is_always_available,notnull,default:true" json:"is_always_available"`
	CollectionID      *int64         `bun:"collection_id" json:"collection_id,omitempty"`
	CreatedAt         time.Time      `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
}

func (p *Pack) Table() rarity.Table {
	return rarity.Table{
		Common:    p.CommonChance,
		Rare:      p.RareChance,
		Epic:      p.EpicChance,
		Legendary: p.LegendaryChance,
	}
}

func (p *Pack) SetTable(t rarity.Table) {
	p.CommonChance = t.Common
	p.RareChance = t.Rare
	p.EpicChance = t.Epic
	p.LegendaryChance = t.Legendary
}

func (p *Pack) IsFree() bool {
	return p.PackType == PackFree
}

func (t PackType) Valid() bool {
	switch t {
	case PackFree, PackPremium, PackCollection, PackEvent:
		return true
	}
	return false
}

// Validate checks a definition before it is stored. A free pack must cost 0.
func (p *Pack) Validate() error {
	if err := p.Table().Validate(); err != nil {
		return fmt.Errorf("pack %s: %w", p.ID, err)
	}
	if !p.PackType.Valid() {
		return fmt.Errorf("pack %s: unknown type %q", p.ID, p.PackType)
	}
	if p.CardsAmount <= 0 {
		return fmt.Errorf("pack %s: cards_amount must be positive", p.ID)
	}
	if p.Cost < 0 {
		return fmt.Errorf("pack %s: cost must not be negative", p.ID)
	}
	if p.IsFree() && p.Cost != 0 {
		return fmt.Errorf("pack %s: free packs must cost 0, got %d", p.ID, p.Cost)
	}
	if p.GuaranteedRarity != nil && !p.GuaranteedRarity.Valid() {
		return fmt.Errorf("pack %s: unknown guaranteed rarity %q", p.ID, *p.GuaranteedRarity)
	}
	return nil
}

// PackOpening is the audit record of one successful open.
type PackOpening struct {
	bun.BaseModel `bun:"table:pack_openings,alias:po"`

	ID             int64     `bun:"id,pk" json:"id"`
	UserID         int64     `bun:"user_id,notnull" json:"user_id"`
	PackID         string    `bun:"pack_id,notnull" json:"pack_id"`
	CostPaid       int64     `bun:"cost_paid,notnull" json:"cost_paid"`
	CardIDs        []int64   `bun:"card_ids,type:jsonb" json:"card_ids"`
	CardsRequested int       `bun:"cards_requested,notnull" json:"cards_requested"`
	ScoreGained    int64     `bun:"score_gained,notnull,default:0" json:"score_gained"`
	OpenedAt       time.Time `bun:"opened_at,notnull,default:current_timestamp" json:"opened_at"`
}
