package pokedex

import (
	"sort"

	dexrepo "github.com/Leo-Expose/PokeBase/internal/repositories/dex"
)

// Per-version cap on listed locations.
const maxLocationsPerVersion = 5

// aggregateEncounters groups raw (version, location) rows by version with
// distinct, alphabetically sorted locations capped per version, and versions
// sorted by name. The input is already truncated to the raw row budget, so a
// widely distributed pokemon can under-report versions or locations here;
// that truncation is a deliberate policy, not something to compensate for.
func aggregateEncounters(rows []dexrepo.EncounterRow) []Encounter {
	byVersion := make(map[string]map[string]struct{})
	for _, row := range rows {
		locs, ok := byVersion[row.Version]
		if !ok {
			locs = make(map[string]struct{})
			byVersion[row.Version] = locs
		}
		locs[row.Location] = struct{}{}
	}

	encounters := make([]Encounter, 0, len(byVersion))
	for version, locSet := range byVersion {
		locs := make([]string, 0, len(locSet))
		for loc := range locSet {
			locs = append(locs, loc)
		}
		sort.Strings(locs)
		if len(locs) > maxLocationsPerVersion {
			locs = locs[:maxLocationsPerVersion]
		}
		encounters = append(encounters, Encounter{Version: version, Locations: locs})
	}

	sort.Slice(encounters, func(i, j int) bool {
		return encounters[i].Version < encounters[j].Version
	})

	return encounters
}
