package pokedex

import (
	"math"

	dexrepo "github.com/Leo-Expose/PokeBase/internal/repositories/dex"
)

// Bounds used for tooltips when the dex-wide aggregate is missing a stat
// category.
const (
	defaultStatMin = 0
	defaultStatMax = 255
)

// Floor for the visual bar so near-zero stats stay visible as a sliver. It
// says nothing about magnitude; Value is the real number.
const minStatPercent = 5

// normalizeStats converts raw stat rows into display stats and the unscaled
// total. The percent is value/scale clamped to [minStatPercent, 100].
func normalizeStats(rows []dexrepo.StatRow, bounds map[int64]dexrepo.StatBounds, scale int) ([]Stat, int) {
	stats := make([]Stat, 0, len(rows))
	total := 0

	for _, row := range rows {
		b, ok := bounds[row.StatID]
		if !ok {
			b = dexrepo.StatBounds{Min: defaultStatMin, Max: defaultStatMax}
		}

		pct := 0
		if scale > 0 {
			pct = int(math.Round(float64(row.BaseStat) / float64(scale) * 100))
		}
		if pct < minStatPercent {
			pct = minStatPercent
		}
		if pct > 100 {
			pct = 100
		}

		stats = append(stats, Stat{
			ID:         row.StatID,
			Identifier: row.Identifier,
			Name:       row.Name,
			Value:      row.BaseStat,
			Min:        b.Min,
			Max:        b.Max,
			Percent:    pct,
		})
		total += row.BaseStat
	}

	return stats, total
}
