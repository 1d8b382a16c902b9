package pokedex

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Leo-Expose/PokeBase/internal/errors"
	dexrepo "github.com/Leo-Expose/PokeBase/internal/repositories/dex"
	dexmock "github.com/Leo-Expose/PokeBase/internal/repositories/dex/mock"
)

func newTestOrchestrator(t *testing.T) (Service, *dexmock.MockRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockRepo := dexmock.NewMockRepository(ctrl)

	o, err := NewOrchestrator(&Config{Repo: mockRepo})
	require.NoError(t, err)

	return o, mockRepo
}

func TestNewOrchestrator_RequiresRepo(t *testing.T) {
	_, err := NewOrchestrator(&Config{})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func expectPikachuFetches(mockRepo *dexmock.MockRepository) {
	ctx := gomock.Any()

	mockRepo.EXPECT().
		GetForm(ctx, dexrepo.GetFormInput{Identifier: "pikachu", LanguageID: DefaultLanguageID}).
		Return(&dexrepo.GetFormOutput{Form: &dexrepo.Form{
			ID: 25, Identifier: "pikachu", SpeciesID: 25,
			SpeciesName: "Pikachu", IsDefault: true,
		}}, nil)

	mockRepo.EXPECT().
		ListStats(ctx, dexrepo.ListStatsInput{FormID: 25, LanguageID: DefaultLanguageID}).
		Return(&dexrepo.ListStatsOutput{Stats: []dexrepo.StatRow{
			{StatID: 1, Identifier: "hp", Name: "HP", BaseStat: 35},
			{StatID: 2, Identifier: "attack", Name: "Attack", BaseStat: 55},
			{StatID: 3, Identifier: "defense", Name: "Defense", BaseStat: 40},
			{StatID: 4, Identifier: "special-attack", Name: "Special Attack", BaseStat: 50},
			{StatID: 5, Identifier: "special-defense", Name: "Special Defense", BaseStat: 50},
			{StatID: 6, Identifier: "speed", Name: "Speed", BaseStat: 90},
		}}, nil)

	mockRepo.EXPECT().
		GetStatBounds(ctx, gomock.Any()).
		Return(&dexrepo.GetStatBoundsOutput{Bounds: map[int64]dexrepo.StatBounds{
			1: {Min: 1, Max: 255},
		}}, nil)

	mockRepo.EXPECT().
		ListTypes(ctx, dexrepo.ListTypesInput{FormID: 25, LanguageID: DefaultLanguageID}).
		Return(&dexrepo.ListTypesOutput{Types: []dexrepo.TypeRow{
			{ID: 13, Identifier: "electric", Name: "Electric"},
		}}, nil)

	mockRepo.EXPECT().
		ListAbilities(ctx, gomock.Any()).
		Return(&dexrepo.ListAbilitiesOutput{Abilities: []dexrepo.AbilityRow{
			{Identifier: "static", Name: "Static", FlavorText: "Contact may cause\nparalysis."},
			{Identifier: "lightning-rod", Name: "Lightning Rod", IsHidden: true},
		}}, nil)

	chainID := int64(10)
	growth := "Medium Fast"
	capture := 190
	happiness := 50
	gen := "Generation I"
	region := "Kanto"
	mockRepo.EXPECT().
		GetSpecies(ctx, dexrepo.GetSpeciesInput{SpeciesID: 25, LanguageID: DefaultLanguageID}).
		Return(&dexrepo.GetSpeciesOutput{Species: &dexrepo.SpeciesRow{
			ID: 25, Identifier: "pikachu",
			EvolutionChainID: &chainID,
			GrowthRate:       &growth,
			CaptureRate:      &capture,
			BaseHappiness:    &happiness,
			Generation:       &gen,
			Region:           &region,
		}}, nil)

	item := "Thunder Stone"
	mockRepo.EXPECT().
		ListEvolutions(ctx, dexrepo.ListEvolutionsInput{ChainID: 10, LanguageID: DefaultLanguageID}).
		Return(&dexrepo.ListEvolutionsOutput{Edges: []dexrepo.EvolutionRow{
			{
				To:                dexrepo.SpeciesRef{ID: 172, Identifier: "pichu", Name: "Pichu"},
				TriggerIdentifier: "level-up",
			},
			{
				From:              &dexrepo.SpeciesRef{ID: 172, Identifier: "pichu", Name: "Pichu"},
				To:                dexrepo.SpeciesRef{ID: 25, Identifier: "pikachu", Name: "Pikachu"},
				TriggerIdentifier: "level-up",
				MinimumHappiness:  intPtr(220),
			},
			{
				From:              &dexrepo.SpeciesRef{ID: 25, Identifier: "pikachu", Name: "Pikachu"},
				To:                dexrepo.SpeciesRef{ID: 26, Identifier: "raichu", Name: "Raichu"},
				TriggerIdentifier: "use-item",
				ItemName:          &item,
			},
		}}, nil)

	mockRepo.EXPECT().
		ListEggGroups(ctx, gomock.Any()).
		Return(&dexrepo.ListEggGroupsOutput{Names: []string{"Field", "Fairy"}}, nil)

	mockRepo.EXPECT().
		GetFlavorText(ctx, gomock.Any()).
		Return(&dexrepo.GetFlavorTextOutput{Text: "It raises its tail\nto check its surroundings."}, nil)

	mockRepo.EXPECT().
		ListForms(ctx, dexrepo.ListFormsInput{SpeciesID: 25, LanguageID: DefaultLanguageID}).
		Return(&dexrepo.ListFormsOutput{Forms: []dexrepo.Form{
			{ID: 25, Identifier: "pikachu", SpeciesID: 25, SpeciesName: "Pikachu", IsDefault: true},
		}}, nil)

	mockRepo.EXPECT().
		ListMoves(ctx, dexrepo.ListMovesInput{
			FormID:         25,
			VersionGroupID: DefaultVersionGroupID,
			MethodID:       DefaultMoveMethodID,
			LanguageID:     DefaultLanguageID,
		}).
		Return(&dexrepo.ListMovesOutput{Moves: []dexrepo.MoveRow{
			{Level: 1, Identifier: "thunder-shock", Name: "Thunder Shock", Power: intPtr(40)},
		}}, nil)

	mockRepo.EXPECT().
		ListAllTypes(ctx, gomock.Any()).
		Return(&dexrepo.ListAllTypesOutput{Types: []dexrepo.TypeRow{
			{ID: 5, Identifier: "ground", Name: "Ground"},
			{ID: 13, Identifier: "electric", Name: "Electric"},
		}}, nil)

	mockRepo.EXPECT().
		ListEfficacy(ctx, dexrepo.ListEfficacyInput{TargetTypeIDs: []int64{13}}).
		Return(&dexrepo.ListEfficacyOutput{Rows: []dexrepo.EfficacyRow{
			{DamageTypeID: 5, TargetTypeID: 13, DamageFactor: 200},
			{DamageTypeID: 13, TargetTypeID: 13, DamageFactor: 50},
		}}, nil)

	mockRepo.EXPECT().
		ListEncounters(ctx, dexrepo.ListEncountersInput{
			FormID: 25, LanguageID: DefaultLanguageID, Limit: DefaultEncounterRowLimit,
		}).
		Return(&dexrepo.ListEncountersOutput{Rows: []dexrepo.EncounterRow{
			{Version: "White", Location: "Unity Pier"},
			{Version: "Black", Location: "Unity Pier"},
		}}, nil)

	mockRepo.EXPECT().
		GetAdjacentSpecies(ctx, dexrepo.GetAdjacentSpeciesInput{SpeciesID: 25, LanguageID: DefaultLanguageID}).
		Return(&dexrepo.GetAdjacentSpeciesOutput{
			Prev: &dexrepo.SpeciesRef{ID: 24, Identifier: "arbok", Name: "Arbok"},
			Next: &dexrepo.SpeciesRef{ID: 26, Identifier: "raichu", Name: "Raichu"},
		}, nil)
}

func TestGetEntry_ComposesFullView(t *testing.T) {
	o, mockRepo := newTestOrchestrator(t)
	expectPikachuFetches(mockRepo)

	out, err := o.GetEntry(context.Background(), &GetEntryInput{Identifier: "pikachu"})
	require.NoError(t, err)
	require.NotNil(t, out.Entry)
	entry := out.Entry

	assert.Equal(t, "pikachu", entry.Identifier)
	assert.Equal(t, "Pikachu", entry.DisplayName)
	assert.Equal(t, int64(25), entry.Dex)

	require.Len(t, entry.Stats, 6)
	assert.Equal(t, 320, entry.Total)

	require.Len(t, entry.Types, 1)
	assert.Equal(t, "electric", entry.Types[0].Identifier)

	require.Len(t, entry.Abilities, 2)
	assert.Equal(t, "Contact may cause paralysis.", entry.Abilities[0].FlavorText)
	assert.True(t, entry.Abilities[1].IsHidden)

	assert.Equal(t, "/sprites/25.png", entry.SpriteURL)
	assert.Equal(t, "It raises its tail to check its surroundings.", entry.FlavorText)

	require.NotNil(t, entry.GrowthRate)
	assert.Equal(t, "Medium Fast", *entry.GrowthRate)
	require.NotNil(t, entry.Generation)
	assert.Equal(t, "Generation I", *entry.Generation)
	require.NotNil(t, entry.Region)
	assert.Equal(t, "Kanto", *entry.Region)

	require.Len(t, entry.Evolutions, 3)
	assert.Nil(t, entry.Evolutions[0].From)
	assert.Equal(t, "High friendship", entry.Evolutions[1].Condition)
	assert.Equal(t, "Use Thunder Stone", entry.Evolutions[2].Condition)

	assert.Equal(t, []string{"Field", "Fairy"}, entry.EggGroups)

	// single form species gets no switcher
	assert.Empty(t, entry.Forms)

	require.Len(t, entry.TypeMatchups.Weak, 1)
	assert.Equal(t, "ground", entry.TypeMatchups.Weak[0].Identifier)
	require.Len(t, entry.TypeMatchups.Resist, 1)
	assert.Equal(t, "electric", entry.TypeMatchups.Resist[0].Identifier)
	assert.Empty(t, entry.TypeMatchups.Immune)

	require.Len(t, entry.Encounters, 2)
	assert.Equal(t, "Black", entry.Encounters[0].Version)

	require.NotNil(t, entry.NavPrev)
	assert.Equal(t, int64(24), entry.NavPrev.Dex)
	require.NotNil(t, entry.NavNext)
	assert.Equal(t, "Raichu", entry.NavNext.Name)

	require.Len(t, entry.Moves, 1)
	assert.Equal(t, "Thunder Shock", entry.Moves[0].Name)
}

func TestGetEntry_IdentifierIsCaseInsensitive(t *testing.T) {
	o, mockRepo := newTestOrchestrator(t)
	expectPikachuFetches(mockRepo)

	out, err := o.GetEntry(context.Background(), &GetEntryInput{Identifier: "  PIKACHU "})
	require.NoError(t, err)
	require.NotNil(t, out.Entry)
	assert.Equal(t, "pikachu", out.Entry.Identifier)
}

func TestGetEntry_UnknownIdentifierIsAbsentNotError(t *testing.T) {
	o, mockRepo := newTestOrchestrator(t)

	mockRepo.EXPECT().
		GetForm(gomock.Any(), dexrepo.GetFormInput{Identifier: "qwertyzzz", LanguageID: DefaultLanguageID}).
		Return(nil, errors.NotFound("pokemon \"qwertyzzz\" not found"))

	out, err := o.GetEntry(context.Background(), &GetEntryInput{Identifier: "qwertyzzz"})
	require.NoError(t, err)
	assert.Nil(t, out.Entry)
}

func TestGetEntry_EmptyIdentifierIsAbsent(t *testing.T) {
	o, _ := newTestOrchestrator(t)

	out, err := o.GetEntry(context.Background(), &GetEntryInput{Identifier: "   "})
	require.NoError(t, err)
	assert.Nil(t, out.Entry)
}

func TestGetEntry_FormWithoutStatsIsAbsent(t *testing.T) {
	o, mockRepo := newTestOrchestrator(t)

	mockRepo.EXPECT().
		GetForm(gomock.Any(), gomock.Any()).
		Return(&dexrepo.GetFormOutput{Form: &dexrepo.Form{
			ID: 10264, Identifier: "pikachu-starter", SpeciesID: 25,
		}}, nil)
	mockRepo.EXPECT().
		ListStats(gomock.Any(), gomock.Any()).
		Return(&dexrepo.ListStatsOutput{}, nil)

	out, err := o.GetEntry(context.Background(), &GetEntryInput{Identifier: "pikachu-starter"})
	require.NoError(t, err)
	assert.Nil(t, out.Entry)
}

func TestGetEntry_StoreFailurePropagates(t *testing.T) {
	o, mockRepo := newTestOrchestrator(t)

	mockRepo.EXPECT().
		GetForm(gomock.Any(), gomock.Any()).
		Return(nil, errors.Unavailable("database is locked"))

	out, err := o.GetEntry(context.Background(), &GetEntryInput{Identifier: "pikachu"})
	require.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.IsUnavailable(err))
}

func TestSuggest(t *testing.T) {
	o, mockRepo := newTestOrchestrator(t)

	mockRepo.EXPECT().
		Suggest(gomock.Any(), dexrepo.SuggestInput{
			Prefix: "pika", LanguageID: DefaultLanguageID, Limit: DefaultSuggestLimit,
		}).
		Return(&dexrepo.SuggestOutput{Rows: []dexrepo.SuggestionRow{
			{Identifier: "pikachu", SpeciesName: "Pikachu"},
		}}, nil)

	out, err := o.Suggest(context.Background(), &SuggestInput{Query: "pika"})
	require.NoError(t, err)
	require.Len(t, out.Results, 1)
	assert.Equal(t, "pikachu", out.Results[0].Identifier)
	assert.Equal(t, "Pikachu", out.Results[0].DisplayName)
}

func TestSuggest_EmptyQuerySkipsStore(t *testing.T) {
	o, _ := newTestOrchestrator(t)

	out, err := o.Suggest(context.Background(), &SuggestInput{Query: "  "})
	require.NoError(t, err)
	assert.Empty(t, out.Results)
	assert.NotNil(t, out.Results)
}

func TestRandomIdentifier(t *testing.T) {
	o, mockRepo := newTestOrchestrator(t)

	mockRepo.EXPECT().
		GetRandomDefaultForm(gomock.Any(), gomock.Any()).
		Return(&dexrepo.GetRandomDefaultFormOutput{Identifier: "snorlax"}, nil)

	out, err := o.RandomIdentifier(context.Background(), &RandomIdentifierInput{})
	require.NoError(t, err)
	assert.Equal(t, "snorlax", out.Identifier)
}

func TestRandomIdentifier_FallsBackWhenDatasetYieldsNothing(t *testing.T) {
	o, mockRepo := newTestOrchestrator(t)

	mockRepo.EXPECT().
		GetRandomDefaultForm(gomock.Any(), gomock.Any()).
		Return(&dexrepo.GetRandomDefaultFormOutput{}, nil)

	out, err := o.RandomIdentifier(context.Background(), &RandomIdentifierInput{})
	require.NoError(t, err)
	assert.Equal(t, DefaultRandomFallback, out.Identifier)
}

func TestNavigation_PrevNextRoundTrip(t *testing.T) {
	// following nav_prev and then nav_next lands back on the original id
	o, mockRepo := newTestOrchestrator(t)
	expectPikachuFetches(mockRepo)

	out, err := o.GetEntry(context.Background(), &GetEntryInput{Identifier: "pikachu"})
	require.NoError(t, err)
	require.NotNil(t, out.Entry.NavPrev)

	mockRepo.EXPECT().
		GetAdjacentSpecies(gomock.Any(), dexrepo.GetAdjacentSpeciesInput{
			SpeciesID: out.Entry.NavPrev.Dex, LanguageID: DefaultLanguageID,
		}).
		Return(&dexrepo.GetAdjacentSpeciesOutput{
			Next: &dexrepo.SpeciesRef{ID: 25, Identifier: "pikachu", Name: "Pikachu"},
		}, nil)

	nav, err := mockRepo.GetAdjacentSpecies(context.Background(), dexrepo.GetAdjacentSpeciesInput{
		SpeciesID: out.Entry.NavPrev.Dex, LanguageID: DefaultLanguageID,
	})
	require.NoError(t, err)
	require.NotNil(t, nav.Next)
	assert.Equal(t, out.Entry.Dex, nav.Next.ID)
}
