package pokedex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dexrepo "github.com/Leo-Expose/PokeBase/internal/repositories/dex"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestDescribeCondition(t *testing.T) {
	tests := []struct {
		name string
		row  dexrepo.EvolutionRow
		want string
	}{
		{
			name: "level only",
			row:  dexrepo.EvolutionRow{TriggerIdentifier: "level-up", MinimumLevel: intPtr(16)},
			want: "Level 16",
		},
		{
			name: "item use",
			row:  dexrepo.EvolutionRow{TriggerIdentifier: "use-item", ItemName: strPtr("Thunder Stone")},
			want: "Use Thunder Stone",
		},
		{
			name: "held item on trade",
			row:  dexrepo.EvolutionRow{TriggerIdentifier: "trade", HeldItemName: strPtr("Metal Coat")},
			want: "Holding Metal Coat",
		},
		{
			name: "level and happiness keep fixed clause order",
			row: dexrepo.EvolutionRow{
				TriggerIdentifier: "level-up",
				MinimumLevel:      intPtr(20),
				MinimumHappiness:  intPtr(220),
			},
			want: "Level 20, High friendship",
		},
		{
			name: "happiness with time of day",
			row: dexrepo.EvolutionRow{
				TriggerIdentifier: "level-up",
				MinimumHappiness:  intPtr(220),
				TimeOfDay:         "night",
			},
			want: "High friendship, Night",
		},
		{
			name: "known move",
			row: dexrepo.EvolutionRow{
				TriggerIdentifier: "level-up",
				KnownMoveName:     strPtr("Mimic"),
			},
			want: "Knows Mimic",
		},
		{
			name: "no fields falls back to trigger identifier",
			row:  dexrepo.EvolutionRow{TriggerIdentifier: "shed"},
			want: "Shed",
		},
		{
			name: "hyphenated trigger is title cased",
			row:  dexrepo.EvolutionRow{TriggerIdentifier: "three-critical-hits"},
			want: "Three Critical Hits",
		},
		{
			name: "nothing at all is empty",
			row:  dexrepo.EvolutionRow{},
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, describeCondition(tt.row))
		})
	}
}

func TestAssembleEvolutions_ChainIsTree(t *testing.T) {
	rows := []dexrepo.EvolutionRow{
		{
			// chain root: bulbasaur has no predecessor
			To:                dexrepo.SpeciesRef{ID: 1, Identifier: "bulbasaur", Name: "Bulbasaur"},
			TriggerIdentifier: "level-up",
		},
		{
			From:              &dexrepo.SpeciesRef{ID: 1, Identifier: "bulbasaur", Name: "Bulbasaur"},
			To:                dexrepo.SpeciesRef{ID: 2, Identifier: "ivysaur", Name: "Ivysaur"},
			TriggerIdentifier: "level-up",
			MinimumLevel:      intPtr(16),
		},
		{
			From:              &dexrepo.SpeciesRef{ID: 2, Identifier: "ivysaur", Name: "Ivysaur"},
			To:                dexrepo.SpeciesRef{ID: 3, Identifier: "venusaur", Name: "Venusaur"},
			TriggerIdentifier: "level-up",
			MinimumLevel:      intPtr(32),
		},
	}

	edges := assembleEvolutions(rows)
	require.Len(t, edges, 3)

	roots := 0
	seen := map[int64]bool{}
	for _, e := range edges {
		if e.From == nil {
			roots++
		} else {
			// no cycles: every predecessor was already emitted
			assert.True(t, seen[e.From.SpeciesID], "edge to %s references unseen predecessor", e.To.Identifier)
		}
		seen[e.To.SpeciesID] = true
	}
	assert.Equal(t, 1, roots)

	assert.Equal(t, "Level 16", edges[1].Condition)
	assert.Equal(t, "Ivysaur", edges[1].To.Name)
}

func TestAssembleEvolutions_MissingNameFallsBackToIdentifier(t *testing.T) {
	rows := []dexrepo.EvolutionRow{
		{To: dexrepo.SpeciesRef{ID: 900, Identifier: "kleavor"}},
	}

	edges := assembleEvolutions(rows)
	require.Len(t, edges, 1)
	assert.Equal(t, "Kleavor", edges[0].To.Name)
}
