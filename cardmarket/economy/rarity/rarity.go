package rarity

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

type Rarity string

const (
	Common    Rarity = "common"
	Rare      Rarity = "rare"
	Epic      Rarity = "epic"
	Legendary Rarity = "legendary"
)

// Order is the fixed resolution order. Cumulative sums are taken in this order.
var Order = []Rarity{Common, Rare, Epic, Legendary}

// tableTolerance is how far a table total may drift from 100.
const tableTolerance = 0.001

var ErrInvalidTable = errors.New("invalid rarity table")

func Parse(s string) (Rarity, error) {
	switch r := Rarity(strings.ToLower(strings.TrimSpace(s))); r {
	case Common, Rare, Epic, Legendary:
		return r, nil
	}
	return "", fmt.Errorf("unknown rarity %q", s)
}

func (r Rarity) Valid() bool {
	return r.Rank() >= 0
}

// Rank orders tiers from 0 (common) to 3 (legendary), -1 for unknown values.
func (r Rarity) Rank() int {
	for i, o := range Order {
		if o == r {
			return i
		}
	}
	return -1
}

func (r Rarity) String() string {
	return string(r)
}

// Max returns the higher of two tiers.
func Max(a, b Rarity) Rarity {
	if b.Rank() > a.Rank() {
		return b
	}
	return a
}

// Table holds tier percentages, expected to total 100.
type Table struct {
	Common    float64 `toml:"common" json:"common"`
	Rare      float64 `toml:"rare" json:"rare"`
	Epic      float64 `toml:"epic" json:"epic"`
	Legendary float64 `toml:"legendary" json:"legendary"`
}

func (t Table) Chance(r Rarity) float64 {
	switch r {
	case Common:
		return t.Common
	case Rare:
		return t.Rare
	case Epic:
		return t.Epic
	case Legendary:
		return t.Legendary
	}
	return 0
}

func (t Table) Sum() float64 {
	return t.Common + t.Rare + t.Epic + t.Legendary
}

func (t Table) Validate() error {
	for _, r := range Order {
		if c := t.Chance(r); c < 0 || math.IsNaN(c) {
			return fmt.Errorf("%w: %s chance %v is negative", ErrInvalidTable, r, c)
		}
	}
	if sum := t.Sum(); math.Abs(sum-100) > tableTolerance {
		return fmt.Errorf("%w: chances total %v, want 100", ErrInvalidTable, sum)
	}
	return nil
}

// Default tables per pack type.
var (
	FreeTable       = Table{Common: 75, Rare: 22, Epic: 2.5, Legendary: 0.5}
	PremiumTable    = Table{Common: 55, Rare: 35, Epic: 8, Legendary: 2}
	CollectionTable = Table{Common: 40, Rare: 40, Epic: 15, Legendary: 5}
	EventTable      = Table{Common: 30, Rare: 40, Epic: 20, Legendary: 10}
)
