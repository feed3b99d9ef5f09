package models

import (
	"testing"
	"time"

	"github.com/footycards/card-market/cardmarket/economy/rarity"
	"github.com/stretchr/testify/assert"
)

func TestAppendOwner(t *testing.T) {
	tests := []struct {
		name  string
		trail []int64
		owner int64
		want  []int64
	}{
		{"empty", nil, 7, []int64{7}},
		{"new owner", []int64{1, 2}, 3, []int64{1, 2, 3}},
		{"already present", []int64{1, 2}, 1, []int64{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := append([]int64(nil), tt.trail...)
			assert.Equal(t, tt.want, AppendOwner(tt.trail, tt.owner))
			assert.Equal(t, original, tt.trail)
		})
	}
}

func TestCollection_Open(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name string
		col  Collection
		want bool
	}{
		{"open no end", Collection{IsActive: true, TotalCards: 10, CardsOpened: 3}, true},
		{"open future end", Collection{IsActive: true, TotalCards: 10, EndDate: &future}, true},
		{"expired", Collection{IsActive: true, TotalCards: 10, EndDate: &past}, false},
		{"inactive", Collection{IsActive: false, TotalCards: 10}, false},
		{"exhausted", Collection{IsActive: true, TotalCards: 10, CardsOpened: 10}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.col.Open(now))
		})
	}

	assert.Equal(t, 0, (&Collection{TotalCards: 5, CardsOpened: 7}).Remaining())
}

func TestPack_Table(t *testing.T) {
	var p Pack
	p.SetTable(rarity.PremiumTable)
	assert.Equal(t, rarity.PremiumTable, p.Table())
}

func TestPack_Validate(t *testing.T) {
	epic := rarity.Epic
	bogus := rarity.Rarity("mythic")

	valid := func() *Pack {
		p := &Pack{ID: "p", PackType: PackPremium, Cost: 100, CardsAmount: 3}
		p.SetTable(rarity.PremiumTable)
		return p
	}

	tests := []struct {
		name    string
		mutate  func(p *Pack)
		wantErr bool
	}{
		{"premium", func(p *Pack) {}, false},
		{"guaranteed epic", func(p *Pack) { p.GuaranteedRarity = &epic }, false},
		{"free at zero cost", func(p *Pack) { p.PackType = PackFree; p.Cost = 0 }, false},
		{"free with a price", func(p *Pack) { p.PackType = PackFree; p.Cost = 50 }, true},
		{"unknown type", func(p *Pack) { p.PackType = "bonus" }, true},
		{"no cards", func(p *Pack) { p.CardsAmount = 0 }, true},
		{"negative cost", func(p *Pack) { p.Cost = -1 }, true},
		{"table off by one", func(p *Pack) { p.CommonChance-- }, true},
		{"unknown guaranteed rarity", func(p *Pack) { p.GuaranteedRarity = &bogus }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid()
			tt.mutate(p)
			err := p.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
