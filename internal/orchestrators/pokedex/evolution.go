package pokedex

import (
	"fmt"
	"strings"

	dexrepo "github.com/Leo-Expose/PokeBase/internal/repositories/dex"
)

// assembleEvolutions annotates a chain's raw edges with derived condition
// text. Edges arrive ordered by evolved species id, which keeps the chain's
// tree shape readable top to bottom.
func assembleEvolutions(rows []dexrepo.EvolutionRow) []EvolutionEdge {
	edges := make([]EvolutionEdge, 0, len(rows))
	for _, row := range rows {
		edge := EvolutionEdge{
			To: SpeciesRef{
				SpeciesID:  row.To.ID,
				Identifier: row.To.Identifier,
				Name:       displayName("", row.To.Name, row.To.Identifier),
			},
			Condition: describeCondition(row),
		}
		if row.From != nil {
			edge.From = &SpeciesRef{
				SpeciesID:  row.From.ID,
				Identifier: row.From.Identifier,
				Name:       displayName("", row.From.Name, row.From.Identifier),
			}
		}
		edges = append(edges, edge)
	}
	return edges
}

// describeCondition renders the trigger fields as comma-separated clauses in
// a fixed order: level, item use, held item, happiness, known move, time of
// day. The clauses are additive — every present field contributes. When no
// field is present the trigger identifier itself becomes the text, and when
// that is also absent the condition is empty.
func describeCondition(row dexrepo.EvolutionRow) string {
	var parts []string

	if row.MinimumLevel != nil && *row.MinimumLevel > 0 {
		parts = append(parts, fmt.Sprintf("Level %d", *row.MinimumLevel))
	}
	if row.ItemName != nil && *row.ItemName != "" {
		parts = append(parts, "Use "+*row.ItemName)
	}
	if row.HeldItemName != nil && *row.HeldItemName != "" {
		parts = append(parts, "Holding "+*row.HeldItemName)
	}
	if row.MinimumHappiness != nil && *row.MinimumHappiness > 0 {
		// fixed phrase; the numeric threshold is not user-facing
		parts = append(parts, "High friendship")
	}
	if row.KnownMoveName != nil && *row.KnownMoveName != "" {
		parts = append(parts, "Knows "+*row.KnownMoveName)
	}
	if row.TimeOfDay != "" {
		parts = append(parts, titleCaser.String(row.TimeOfDay))
	}

	if len(parts) == 0 && row.TriggerIdentifier != "" {
		parts = append(parts, titleIdentifier(row.TriggerIdentifier))
	}

	return strings.Join(parts, ", ")
}
