package pokedex

import (
	dexrepo "github.com/Leo-Expose/PokeBase/internal/repositories/dex"
)

// formatMoves turns raw move rows into display moves. Filtering to the fixed
// (version group, learn method) pair happens in the query; rows arrive
// ordered by level, then move identifier.
func formatMoves(rows []dexrepo.MoveRow) []Move {
	moves := make([]Move, 0, len(rows))
	for _, row := range rows {
		moves = append(moves, Move{
			Name:           titleIdentifier(row.Name),
			Level:          row.Level,
			TypeIdentifier: row.TypeIdentifier,
			TypeName:       row.TypeName,
			Category:       row.DamageClassName,
			Power:          row.Power,
			Accuracy:       row.Accuracy,
			PP:             row.PP,
			Effect:         cleanProse(row.ShortEffect),
		})
	}
	return moves
}
