// Package pokedex implements the view composition engine: it resolves one
// creature identifier against the reference dataset and assembles the
// complete, localized entry view.
package pokedex

//go:generate mockgen -destination=mock/mock_service.go -package=pokedexmock github.com/Leo-Expose/PokeBase/internal/orchestrators/pokedex Service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Leo-Expose/PokeBase/internal/errors"
	dexrepo "github.com/Leo-Expose/PokeBase/internal/repositories/dex"
)

// Dataset constants mirrored from the reference database. All of them are
// overridable through Config so the engine is reusable across locales and
// version contexts.
const (
	// DefaultLanguageID is English
	DefaultLanguageID = 9

	// DefaultVersionGroupID is Black & White
	DefaultVersionGroupID = 11

	// DefaultMoveMethodID is level-up
	DefaultMoveMethodID = 1

	// DefaultStatScale is the fixed visual denominator for stat bars
	DefaultStatScale = 180

	// DefaultEncounterRowLimit caps raw encounter rows before grouping
	DefaultEncounterRowLimit = 40

	// DefaultSuggestLimit caps autocomplete results
	DefaultSuggestLimit = 8

	// DefaultRandomFallback is returned when the random pick finds no
	// default form. Kept from the original behavior; a species without a
	// default form is more likely a data-integrity problem than a case
	// this fallback should paper over, so hitting it is logged.
	DefaultRandomFallback = "pikachu"
)

// Service defines the interface for pokedex view composition
type Service interface {
	// GetEntry composes the full entry for one identifier, or an absent
	// result when the identifier matches nothing
	GetEntry(ctx context.Context, input *GetEntryInput) (*GetEntryOutput, error)

	// Suggest returns autocomplete candidates for a free-text prefix
	Suggest(ctx context.Context, input *SuggestInput) (*SuggestOutput, error)

	// RandomIdentifier picks a random default form's identifier
	RandomIdentifier(ctx context.Context, input *RandomIdentifierInput) (*RandomIdentifierOutput, error)
}

// Config holds the dependencies and fixed query context for the composer
type Config struct {
	Repo dexrepo.Repository

	// Zero values fall back to the dataset defaults above.
	LanguageID        int64
	VersionGroupID    int64
	MoveMethodID      int64
	StatScale         int
	EncounterRowLimit int
	SuggestLimit      int
	RandomFallback    string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Repo == nil {
		vb.RequiredField("Repo")
	}

	return vb.Build()
}

func (c *Config) applyDefaults() {
	if c.LanguageID == 0 {
		c.LanguageID = DefaultLanguageID
	}
	if c.VersionGroupID == 0 {
		c.VersionGroupID = DefaultVersionGroupID
	}
	if c.MoveMethodID == 0 {
		c.MoveMethodID = DefaultMoveMethodID
	}
	if c.StatScale == 0 {
		c.StatScale = DefaultStatScale
	}
	if c.EncounterRowLimit == 0 {
		c.EncounterRowLimit = DefaultEncounterRowLimit
	}
	if c.SuggestLimit == 0 {
		c.SuggestLimit = DefaultSuggestLimit
	}
	if c.RandomFallback == "" {
		c.RandomFallback = DefaultRandomFallback
	}
}

type orchestrator struct {
	repo dexrepo.Repository
	cfg  Config
}

// NewOrchestrator creates a new pokedex composer with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	resolved := *cfg
	resolved.applyDefaults()

	return &orchestrator{
		repo: resolved.Repo,
		cfg:  resolved,
	}, nil
}

// GetEntry composes the full entry for one identifier. Every fetch is an
// independent read; a store failure anywhere aborts this request only.
func (o *orchestrator) GetEntry(ctx context.Context, input *GetEntryInput) (*GetEntryOutput, error) {
	identifier := strings.ToLower(strings.TrimSpace(input.Identifier))
	if identifier == "" {
		return &GetEntryOutput{}, nil
	}

	formOut, err := o.repo.GetForm(ctx, dexrepo.GetFormInput{
		Identifier: identifier,
		LanguageID: o.cfg.LanguageID,
	})
	if errors.IsNotFound(err) {
		return &GetEntryOutput{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve form")
	}
	form := formOut.Form

	statsOut, err := o.repo.ListStats(ctx, dexrepo.ListStatsInput{
		FormID:     form.ID,
		LanguageID: o.cfg.LanguageID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch stats")
	}
	if len(statsOut.Stats) == 0 {
		// a form without stat rows does not exist for presentation purposes
		return &GetEntryOutput{}, nil
	}

	boundsOut, err := o.repo.GetStatBounds(ctx, dexrepo.GetStatBoundsInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch stat bounds")
	}
	stats, total := normalizeStats(statsOut.Stats, boundsOut.Bounds, o.cfg.StatScale)

	typesOut, err := o.repo.ListTypes(ctx, dexrepo.ListTypesInput{
		FormID:     form.ID,
		LanguageID: o.cfg.LanguageID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch types")
	}
	types := make([]TypeBadge, 0, len(typesOut.Types))
	for _, t := range typesOut.Types {
		types = append(types, TypeBadge{Identifier: t.Identifier, Name: t.Name})
	}

	abilitiesOut, err := o.repo.ListAbilities(ctx, dexrepo.ListAbilitiesInput{
		FormID:     form.ID,
		LanguageID: o.cfg.LanguageID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch abilities")
	}
	abilities := make([]Ability, 0, len(abilitiesOut.Abilities))
	for _, a := range abilitiesOut.Abilities {
		abilities = append(abilities, Ability{
			Identifier: a.Identifier,
			Name:       a.Name,
			IsHidden:   a.IsHidden,
			FlavorText: cleanProse(a.FlavorText),
		})
	}

	entry := &Entry{
		Identifier:  form.Identifier,
		DisplayName: displayName(form.FormName, form.SpeciesName, form.Identifier),
		Dex:         form.SpeciesID,
		Stats:       stats,
		Total:       total,
		Types:       types,
		Abilities:   abilities,
		SpriteURL:   fmt.Sprintf("/sprites/%d.png", form.ID),
		EggGroups:   []string{},
		Evolutions:  []EvolutionEdge{},
		Forms:       []FormRef{},
	}

	if err := o.composeSpeciesView(ctx, form, entry); err != nil {
		return nil, err
	}

	movesOut, err := o.repo.ListMoves(ctx, dexrepo.ListMovesInput{
		FormID:         form.ID,
		VersionGroupID: o.cfg.VersionGroupID,
		MethodID:       o.cfg.MoveMethodID,
		LanguageID:     o.cfg.LanguageID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch moves")
	}
	entry.Moves = formatMoves(movesOut.Moves)

	entry.TypeMatchups, err = o.composeMatchups(ctx, typesOut.Types)
	if err != nil {
		return nil, err
	}

	encountersOut, err := o.repo.ListEncounters(ctx, dexrepo.ListEncountersInput{
		FormID:     form.ID,
		LanguageID: o.cfg.LanguageID,
		Limit:      o.cfg.EncounterRowLimit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch encounters")
	}
	entry.Encounters = aggregateEncounters(encountersOut.Rows)

	navOut, err := o.repo.GetAdjacentSpecies(ctx, dexrepo.GetAdjacentSpeciesInput{
		SpeciesID:  form.SpeciesID,
		LanguageID: o.cfg.LanguageID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch navigation")
	}
	if navOut.Prev != nil {
		entry.NavPrev = navEntry(*navOut.Prev)
	}
	if navOut.Next != nil {
		entry.NavNext = navEntry(*navOut.Next)
	}

	return &GetEntryOutput{Entry: entry}, nil
}

// composeSpeciesView fills the species-level portions of the entry: profile
// scalars, evolution edges, egg groups, flavor text, and sibling forms.
// Every field here is optional and independently absent-safe.
func (o *orchestrator) composeSpeciesView(ctx context.Context, form *dexrepo.Form, entry *Entry) error {
	speciesOut, err := o.repo.GetSpecies(ctx, dexrepo.GetSpeciesInput{
		SpeciesID:  form.SpeciesID,
		LanguageID: o.cfg.LanguageID,
	})
	if err != nil {
		return errors.Wrap(err, "failed to fetch species")
	}

	if species := speciesOut.Species; species != nil {
		entry.GrowthRate = species.GrowthRate
		entry.CaptureRate = species.CaptureRate
		entry.BaseHappiness = species.BaseHappiness
		entry.Generation = species.Generation
		entry.Region = species.Region

		if species.EvolutionChainID != nil {
			evoOut, err := o.repo.ListEvolutions(ctx, dexrepo.ListEvolutionsInput{
				ChainID:    *species.EvolutionChainID,
				LanguageID: o.cfg.LanguageID,
			})
			if err != nil {
				return errors.Wrap(err, "failed to fetch evolutions")
			}
			entry.Evolutions = assembleEvolutions(evoOut.Edges)
		}
	}

	eggOut, err := o.repo.ListEggGroups(ctx, dexrepo.ListEggGroupsInput{
		SpeciesID:  form.SpeciesID,
		LanguageID: o.cfg.LanguageID,
	})
	if err != nil {
		return errors.Wrap(err, "failed to fetch egg groups")
	}
	if len(eggOut.Names) > 0 {
		entry.EggGroups = eggOut.Names
	}

	flavorOut, err := o.repo.GetFlavorText(ctx, dexrepo.GetFlavorTextInput{
		SpeciesID:  form.SpeciesID,
		LanguageID: o.cfg.LanguageID,
	})
	if err != nil {
		return errors.Wrap(err, "failed to fetch flavor text")
	}
	entry.FlavorText = cleanProse(flavorOut.Text)

	formsOut, err := o.repo.ListForms(ctx, dexrepo.ListFormsInput{
		SpeciesID:  form.SpeciesID,
		LanguageID: o.cfg.LanguageID,
	})
	if err != nil {
		return errors.Wrap(err, "failed to fetch forms")
	}
	// a single-entry form switcher is pointless, so suppress it entirely
	if len(formsOut.Forms) > 1 {
		for _, f := range formsOut.Forms {
			entry.Forms = append(entry.Forms, FormRef{
				Identifier: f.Identifier,
				Name:       displayName(f.FormName, f.SpeciesName, f.Identifier),
				IsDefault:  f.IsDefault,
			})
		}
	}

	return nil
}

// composeMatchups fetches the full attacking-type list and the damage-factor
// rows targeting the defending types, then classifies.
func (o *orchestrator) composeMatchups(ctx context.Context, defending []dexrepo.TypeRow) (TypeMatchups, error) {
	if len(defending) == 0 {
		return computeMatchups(nil, nil, 0), nil
	}

	allOut, err := o.repo.ListAllTypes(ctx, dexrepo.ListAllTypesInput{
		LanguageID: o.cfg.LanguageID,
	})
	if err != nil {
		return TypeMatchups{}, errors.Wrap(err, "failed to fetch attack types")
	}

	ids := make([]int64, 0, len(defending))
	for _, t := range defending {
		ids = append(ids, t.ID)
	}
	efficacyOut, err := o.repo.ListEfficacy(ctx, dexrepo.ListEfficacyInput{
		TargetTypeIDs: ids,
	})
	if err != nil {
		return TypeMatchups{}, errors.Wrap(err, "failed to fetch type efficacy")
	}

	return computeMatchups(allOut.Types, efficacyOut.Rows, len(defending)), nil
}

// Suggest returns autocomplete candidates for a free-text prefix
func (o *orchestrator) Suggest(ctx context.Context, input *SuggestInput) (*SuggestOutput, error) {
	query := strings.TrimSpace(input.Query)
	out := &SuggestOutput{Results: []Suggestion{}}
	if query == "" {
		return out, nil
	}

	rowsOut, err := o.repo.Suggest(ctx, dexrepo.SuggestInput{
		Prefix:     query,
		LanguageID: o.cfg.LanguageID,
		Limit:      o.cfg.SuggestLimit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch suggestions")
	}

	for _, row := range rowsOut.Rows {
		out.Results = append(out.Results, Suggestion{
			Identifier:  row.Identifier,
			DisplayName: displayName(row.FormName, row.SpeciesName, row.Identifier),
		})
	}

	return out, nil
}

// RandomIdentifier picks a random default form's identifier
func (o *orchestrator) RandomIdentifier(ctx context.Context, _ *RandomIdentifierInput) (*RandomIdentifierOutput, error) {
	out, err := o.repo.GetRandomDefaultForm(ctx, dexrepo.GetRandomDefaultFormInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to pick random form")
	}

	identifier := out.Identifier
	if identifier == "" {
		// either an empty dataset or a species without a default form —
		// the latter deserves a data-integrity check, not silence
		slog.Warn("random pick found no default form, using fallback",
			"fallback", o.cfg.RandomFallback)
		identifier = o.cfg.RandomFallback
	}

	return &RandomIdentifierOutput{Identifier: identifier}, nil
}

func navEntry(ref dexrepo.SpeciesRef) *NavEntry {
	return &NavEntry{
		Dex:        ref.ID,
		Identifier: ref.Identifier,
		Name:       displayName("", ref.Name, ref.Identifier),
	}
}
