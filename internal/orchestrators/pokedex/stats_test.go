package pokedex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dexrepo "github.com/Leo-Expose/PokeBase/internal/repositories/dex"
)

func TestNormalizeStats(t *testing.T) {
	rows := []dexrepo.StatRow{
		{StatID: 1, Identifier: "hp", Name: "HP", BaseStat: 35},
		{StatID: 2, Identifier: "attack", Name: "Attack", BaseStat: 55},
		{StatID: 6, Identifier: "speed", Name: "Speed", BaseStat: 90},
	}
	bounds := map[int64]dexrepo.StatBounds{
		1: {Min: 1, Max: 255},
		2: {Min: 5, Max: 190},
	}

	stats, total := normalizeStats(rows, bounds, 180)

	require.Len(t, stats, 3)
	assert.Equal(t, 180, total)

	assert.Equal(t, 35, stats[0].Value)
	assert.Equal(t, 1, stats[0].Min)
	assert.Equal(t, 255, stats[0].Max)
	assert.Equal(t, 19, stats[0].Percent) // round(35/180*100)

	// missing bounds fall back to the dex-wide defaults
	assert.Equal(t, 0, stats[2].Min)
	assert.Equal(t, 255, stats[2].Max)
	assert.Equal(t, 50, stats[2].Percent)
}

func TestNormalizeStats_PercentClamped(t *testing.T) {
	tests := []struct {
		name  string
		value int
		want  int
	}{
		{"zero stays visible", 0, 5},
		{"tiny stays visible", 1, 5},
		{"just under floor", 8, 5}, // round(8/180*100) = 4
		{"above scale clamps to 100", 255, 100},
		{"at scale", 180, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats, _ := normalizeStats(
				[]dexrepo.StatRow{{StatID: 1, Identifier: "hp", BaseStat: tt.value}},
				nil, 180)
			require.Len(t, stats, 1)
			assert.Equal(t, tt.want, stats[0].Percent)
			assert.GreaterOrEqual(t, stats[0].Percent, 5)
			assert.LessOrEqual(t, stats[0].Percent, 100)
		})
	}
}

func TestNormalizeStats_TotalIgnoresVisualScale(t *testing.T) {
	rows := []dexrepo.StatRow{
		{StatID: 1, BaseStat: 1},
		{StatID: 2, BaseStat: 1},
	}

	_, total := normalizeStats(rows, nil, 180)

	// both percents clamp to 5, but the total is the raw sum
	assert.Equal(t, 2, total)
}
