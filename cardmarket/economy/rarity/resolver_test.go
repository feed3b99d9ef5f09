package rarity

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedSource replays fixed rolls expressed in [0, 100).
type scriptedSource struct {
	rolls []float64
	next  int
}

func (s *scriptedSource) Float64() float64 {
	r := s.rolls[s.next%len(s.rolls)]
	s.next++
	return r / 100
}

func (s *scriptedSource) IntN(int) int { return 0 }

func TestResolver_ScriptedRolls(t *testing.T) {
	src := &scriptedSource{rolls: []float64{10, 50, 75, 96, 99}}
	r := NewResolver(src)

	got := make([]Rarity, 0, 5)
	for range 5 {
		got = append(got, r.Resolve(PremiumTable))
	}

	assert.Equal(t, []Rarity{Common, Common, Rare, Epic, Legendary}, got)
}

func TestResolveRoll(t *testing.T) {
	tests := []struct {
		name  string
		table Table
		roll  float64
		want  Rarity
	}{
		{"zero roll", PremiumTable, 0, Common},
		{"common upper edge", PremiumTable, 54.999, Common},
		{"rare lower edge", PremiumTable, 55, Rare},
		{"epic", PremiumTable, 90, Epic},
		{"legendary", PremiumTable, 98, Legendary},
		{"skips zero tiers", Table{Common: 0, Rare: 0, Epic: 0, Legendary: 100}, 0, Legendary},
		{"short table falls back", Table{Common: 10, Rare: 10}, 50, Common},
		{"empty table falls back", Table{}, 0, Common},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveRoll(tt.table, tt.roll))
		})
	}
}

func TestResolver_Convergence(t *testing.T) {
	const draws = 100_000
	// chi-squared critical value, 3 degrees of freedom, p = 0.0005
	const critical = 17.73

	tables := map[string]Table{
		"free":       FreeTable,
		"premium":    PremiumTable,
		"collection": CollectionTable,
		"event":      EventTable,
	}

	for name, table := range tables {
		t.Run(name, func(t *testing.T) {
			r := NewResolver(rand.New(rand.NewPCG(42, 1024)))

			counts := map[Rarity]int{}
			for range draws {
				counts[r.Resolve(table)]++
			}

			chi := 0.0
			for _, tier := range Order {
				expected := float64(draws) * table.Chance(tier) / 100
				diff := float64(counts[tier]) - expected
				chi += diff * diff / expected
			}
			assert.Less(t, chi, critical, "counts %v", counts)
		})
	}
}

func TestTable_Validate(t *testing.T) {
	tests := []struct {
		name    string
		table   Table
		wantErr bool
	}{
		{"free", FreeTable, false},
		{"premium", PremiumTable, false},
		{"collection", CollectionTable, false},
		{"event", EventTable, false},
		{"within tolerance", Table{Common: 33.3333, Rare: 33.3333, Epic: 33.3334}, false},
		{"short", Table{Common: 50, Rare: 40}, true},
		{"over", Table{Common: 60, Rare: 50}, true},
		{"negative", Table{Common: 110, Rare: -10}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.table.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTable)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestRarityHelpers(t *testing.T) {
	assert.Equal(t, Epic, Max(Rare, Epic))
	assert.Equal(t, Epic, Max(Epic, Common))
	assert.Equal(t, 3, Legendary.Rank())
	assert.False(t, Rarity("mythic").Valid())

	r, err := Parse(" Legendary ")
	require.NoError(t, err)
	assert.Equal(t, Legendary, r)

	_, err = Parse("mythic")
	assert.Error(t, err)
}
