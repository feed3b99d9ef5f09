package rarity

// Source is the randomness consumed by draws. Implementations must be safe for
// the way they are shared; the resolver itself keeps no state between calls.
type Source interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// IntN returns a value in [0, n). n > 0.
	IntN(n int) int
}

type Resolver struct {
	src Source
}

func NewResolver(src Source) *Resolver {
	return &Resolver{src: src}
}

// Resolve draws a roll in [0, 100) and maps it onto the table.
func (r *Resolver) Resolve(t Table) Rarity {
	return ResolveRoll(t, 100*r.src.Float64())
}

// ResolveRoll returns the first tier whose cumulative chance exceeds roll.
// Tables that do not reach the roll fall back to common.
func ResolveRoll(t Table, roll float64) Rarity {
	cumulative := 0.0
	for _, tier := range Order {
		cumulative += t.Chance(tier)
		if roll < cumulative {
			return tier
		}
	}
	return Common
}
