package packs

import (
	"github.com/footycards/card-market/cardmarket/database/models"
	"github.com/footycards/card-market/cardmarket/economy/rarity"
)

// Draw is one filled slot of an opened pack.
type Draw struct {
	Slot   int
	Rarity rarity.Rarity
	Card   *models.Card
}

// Result is the outcome of filling a pack from a card pool.
type Result struct {
	Draws     []Draw
	Requested int
	// Missing counts slots whose tier had no card left.
	Missing int
}

// Degraded reports a short pack.
func (r Result) Degraded() bool {
	return r.Missing > 0
}

// Generator turns a pack definition into card draws. It holds no state
// between opens and performs no I/O.
type Generator struct {
	resolver *rarity.Resolver
	src      rarity.Source
}

func NewGenerator(src rarity.Source) *Generator {
	return &Generator{
		resolver: rarity.NewResolver(src),
		src:      src,
	}
}

// Roll resolves a tier for every slot of the pack.
func (g *Generator) Roll(pack *models.Pack) []rarity.Rarity {
	table := pack.Table()
	tiers := make([]rarity.Rarity, pack.CardsAmount)
	for i := range tiers {
		tiers[i] = g.resolver.Resolve(table)
	}
	if len(tiers) > 0 && pack.GuaranteedRarity != nil {
		tiers[0] = rarity.Max(tiers[0], *pack.GuaranteedRarity)
	}
	return tiers
}

// Fill picks a card for each rolled tier, uniformly among pool cards of that
// tier whose collection still has room in this open.
func (g *Generator) Fill(pack *models.Pack, tiers []rarity.Rarity, pool []*models.Card) Result {
	result := Result{
		Draws:     make([]Draw, 0, len(tiers)),
		Requested: len(tiers),
	}

	capacity := make(map[int64]int)
	for _, card := range pool {
		if card.Collection != nil {
			capacity[card.Collection.ID] = card.Collection.Remaining()
		}
	}
	used := make(map[int64]bool)

	candidates := make([]*models.Card, 0, len(pool))
	for slot, tier := range tiers {
		candidates = candidates[:0]
		for _, card := range pool {
			if card.Rarity != tier {
				continue
			}
			if pack.UniqueItems && used[card.ID] {
				continue
			}
			if card.CollectionID != nil {
				if left, ok := capacity[*card.CollectionID]; ok && left <= 0 {
					continue
				}
			}
			candidates = append(candidates, card)
		}

		if len(candidates) == 0 {
			result.Missing++
			continue
		}

		card := candidates[g.src.IntN(len(candidates))]
		if card.CollectionID != nil {
			if _, ok := capacity[*card.CollectionID]; ok {
				capacity[*card.CollectionID]--
			}
		}
		used[card.ID] = true
		result.Draws = append(result.Draws, Draw{Slot: slot, Rarity: tier, Card: card})
	}
	return result
}

// Open rolls and fills in one step.
func (g *Generator) Open(pack *models.Pack, pool []*models.Card) Result {
	return g.Fill(pack, g.Roll(pack), pool)
}

// distinct returns tiers without repeats in rarity order.
func distinct(tiers []rarity.Rarity) []rarity.Rarity {
	seen := make(map[rarity.Rarity]bool, len(rarity.Order))
	for _, t := range tiers {
		seen[t] = true
	}
	out := make([]rarity.Rarity, 0, len(seen))
	for _, t := range rarity.Order {
		if seen[t] {
			out = append(out, t)
		}
	}
	return out
}
