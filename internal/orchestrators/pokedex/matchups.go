package pokedex

import (
	"fmt"
	"math"
	"sort"

	dexrepo "github.com/Leo-Expose/PokeBase/internal/repositories/dex"
)

// Classification band for the combined multiplier. Factors are products of
// integer percentages over 100, so zero is exact, but values near 1.0 pick up
// float rounding and need the tolerance band.
const (
	weakThreshold   = 1.01
	resistThreshold = 0.99
)

// computeMatchups folds the damage-factor table over the defending types and
// classifies every attacking type. Attacking types with a neutral combined
// factor are omitted entirely.
func computeMatchups(attackTypes []dexrepo.TypeRow, efficacy []dexrepo.EfficacyRow, defendingCount int) TypeMatchups {
	m := TypeMatchups{
		Weak:   []MatchupEntry{},
		Resist: []MatchupEntry{},
		Immune: []MatchupEntry{},
	}
	if defendingCount == 0 {
		return m
	}

	factors := make(map[int64]float64, len(attackTypes))
	for _, t := range attackTypes {
		factors[t.ID] = 1.0
	}
	for _, row := range efficacy {
		factors[row.DamageTypeID] *= float64(row.DamageFactor) / 100.0
	}

	// attackTypes arrive in id order, which keeps the immune list and
	// equal-multiplier ties deterministic.
	for _, t := range attackTypes {
		mult := math.Round(factors[t.ID]*100) / 100
		entry := MatchupEntry{
			Identifier: t.Identifier,
			Name:       t.Name,
			Multiplier: mult,
			Label:      fmt.Sprintf("×%g", mult),
		}
		switch {
		case mult == 0:
			m.Immune = append(m.Immune, entry)
		case mult > weakThreshold:
			m.Weak = append(m.Weak, entry)
		case mult < resistThreshold:
			m.Resist = append(m.Resist, entry)
		}
	}

	sort.SliceStable(m.Weak, func(i, j int) bool {
		return m.Weak[i].Multiplier > m.Weak[j].Multiplier
	})
	sort.SliceStable(m.Resist, func(i, j int) bool {
		return m.Resist[i].Multiplier < m.Resist[j].Multiplier
	})

	return m
}
