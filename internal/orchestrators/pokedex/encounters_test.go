package pokedex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dexrepo "github.com/Leo-Expose/PokeBase/internal/repositories/dex"
)

func TestAggregateEncounters(t *testing.T) {
	rows := []dexrepo.EncounterRow{
		{Version: "White", Location: "Route 3"},
		{Version: "Black", Location: "Route 3"},
		{Version: "Black", Location: "Route 3"}, // duplicate collapses
		{Version: "Black", Location: "Dreamyard"},
	}

	encounters := aggregateEncounters(rows)
	require.Len(t, encounters, 2)

	// versions alphabetical
	assert.Equal(t, "Black", encounters[0].Version)
	assert.Equal(t, "White", encounters[1].Version)

	// locations distinct and alphabetical
	assert.Equal(t, []string{"Dreamyard", "Route 3"}, encounters[0].Locations)
	assert.Equal(t, []string{"Route 3"}, encounters[1].Locations)
}

func TestAggregateEncounters_CapsLocationsPerVersion(t *testing.T) {
	rows := []dexrepo.EncounterRow{
		{Version: "Black", Location: "Route 7"},
		{Version: "Black", Location: "Route 1"},
		{Version: "Black", Location: "Route 5"},
		{Version: "Black", Location: "Route 2"},
		{Version: "Black", Location: "Route 6"},
		{Version: "Black", Location: "Route 4"},
		{Version: "Black", Location: "Route 3"},
	}

	encounters := aggregateEncounters(rows)
	require.Len(t, encounters, 1)
	assert.Len(t, encounters[0].Locations, 5)
	// the cap keeps the alphabetically first five
	assert.Equal(t, []string{"Route 1", "Route 2", "Route 3", "Route 4", "Route 5"},
		encounters[0].Locations)
}

func TestAggregateEncounters_Empty(t *testing.T) {
	encounters := aggregateEncounters(nil)
	assert.NotNil(t, encounters)
	assert.Empty(t, encounters)
}
