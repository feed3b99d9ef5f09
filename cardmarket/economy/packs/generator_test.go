package packs

import (
	"testing"

	"github.com/footycards/card-market/cardmarket/database/models"
	"github.com/footycards/card-market/cardmarket/economy/rarity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSource replays rolls in [0, 100) and always picks the first candidate.
type stubSource struct {
	rolls []float64
	next  int
}

func (s *stubSource) Float64() float64 {
	if len(s.rolls) == 0 {
		return 0
	}
	r := s.rolls[s.next%len(s.rolls)]
	s.next++
	return r / 100
}

func (s *stubSource) IntN(int) int { return 0 }

var commonOnly = rarity.Table{Common: 100}

func newPack(size int, table rarity.Table) *models.Pack {
	p := &models.Pack{ID: "test", PackType: models.PackPremium, Cost: 10, CardsAmount: size}
	p.SetTable(table)
	return p
}

func card(id int64, r rarity.Rarity, col *models.Collection) *models.Card {
	c := &models.Card{ID: id, PlayerName: "Player", Rarity: r, UniqName: "p" + string(rune('a'+id))}
	if col != nil {
		c.CollectionID = &col.ID
		c.Collection = col
	}
	return c
}

func TestGenerator_CollectionCapacityShortensPack(t *testing.T) {
	col := &models.Collection{ID: 7, TotalCards: 50, CardsOpened: 48, IsActive: true}
	pool := []*models.Card{card(1, rarity.Common, col), card(2, rarity.Common, col)}

	g := NewGenerator(&stubSource{})
	got := g.Open(newPack(5, commonOnly), pool)

	assert.Equal(t, 5, got.Requested)
	assert.Len(t, got.Draws, 2)
	assert.Equal(t, 3, got.Missing)
	assert.True(t, got.Degraded())
}

func TestGenerator_Roll(t *testing.T) {
	tests := []struct {
		name       string
		rolls      []float64
		guaranteed *rarity.Rarity
		want       []rarity.Rarity
	}{
		{
			name:  "plain rolls",
			rolls: []float64{10, 60, 95},
			want:  []rarity.Rarity{rarity.Common, rarity.Rare, rarity.Epic},
		},
		{
			name:       "guarantee upgrades first slot",
			rolls:      []float64{10, 10, 10},
			guaranteed: ptr(rarity.Epic),
			want:       []rarity.Rarity{rarity.Epic, rarity.Common, rarity.Common},
		},
		{
			name:       "guarantee never downgrades",
			rolls:      []float64{99, 10, 10},
			guaranteed: ptr(rarity.Rare),
			want:       []rarity.Rarity{rarity.Legendary, rarity.Common, rarity.Common},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pack := newPack(len(tt.want), rarity.PremiumTable)
			pack.GuaranteedRarity = tt.guaranteed

			g := NewGenerator(&stubSource{rolls: tt.rolls})
			assert.Equal(t, tt.want, g.Roll(pack))
		})
	}
}

func TestGenerator_Fill(t *testing.T) {
	pool := []*models.Card{
		card(1, rarity.Common, nil),
		card(2, rarity.Common, nil),
		card(3, rarity.Rare, nil),
	}

	t.Run("duplicates allowed by default", func(t *testing.T) {
		g := NewGenerator(&stubSource{})
		got := g.Fill(newPack(3, commonOnly), []rarity.Rarity{rarity.Common, rarity.Common, rarity.Common}, pool)

		require.Len(t, got.Draws, 3)
		for _, d := range got.Draws {
			assert.Equal(t, int64(1), d.Card.ID)
		}
	})

	t.Run("unique items skip drawn rows", func(t *testing.T) {
		pack := newPack(3, commonOnly)
		pack.UniqueItems = true

		g := NewGenerator(&stubSource{})
		got := g.Fill(pack, []rarity.Rarity{rarity.Common, rarity.Common, rarity.Common}, pool)

		require.Len(t, got.Draws, 2)
		assert.Equal(t, int64(1), got.Draws[0].Card.ID)
		assert.Equal(t, int64(2), got.Draws[1].Card.ID)
		assert.Equal(t, 1, got.Missing)
	})

	t.Run("empty tier counts as missing", func(t *testing.T) {
		g := NewGenerator(&stubSource{})
		got := g.Fill(newPack(2, commonOnly), []rarity.Rarity{rarity.Legendary, rarity.Rare}, pool)

		require.Len(t, got.Draws, 1)
		assert.Equal(t, 1, got.Draws[0].Slot)
		assert.Equal(t, rarity.Rare, got.Draws[0].Rarity)
		assert.Equal(t, 1, got.Missing)
	})

	t.Run("exhausted collection yields nothing", func(t *testing.T) {
		col := &models.Collection{ID: 3, TotalCards: 10, CardsOpened: 10}
		g := NewGenerator(&stubSource{})
		got := g.Fill(newPack(2, commonOnly), []rarity.Rarity{rarity.Common, rarity.Common},
			[]*models.Card{card(9, rarity.Common, col)})

		assert.Empty(t, got.Draws)
		assert.Equal(t, 2, got.Missing)
	})
}

func TestDistinct(t *testing.T) {
	got := distinct([]rarity.Rarity{rarity.Epic, rarity.Common, rarity.Epic, rarity.Common})
	assert.Equal(t, []rarity.Rarity{rarity.Common, rarity.Epic}, got)
}

func ptr[T any](v T) *T {
	return &v
}
