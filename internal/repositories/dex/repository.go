// Package dex provides the read-only repository interface and row types for
// the pokedex reference dataset.
package dex

import (
	"context"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=dexmock github.com/Leo-Expose/PokeBase/internal/repositories/dex Repository

// Form is the base row for a queryable pokemon variant. FormName and
// SpeciesName are the localized name sources; either may be empty when the
// dataset has no translation, and display-name resolution happens in the
// composer.
type Form struct {
	ID          int64
	Identifier  string
	SpeciesID   int64
	FormName    string
	SpeciesName string
	IsDefault   bool
}

// StatRow is one base stat for a form, with its localized stat name.
type StatRow struct {
	StatID     int64
	Identifier string
	Name       string
	BaseStat   int
}

// StatBounds holds the dataset-wide minimum and maximum base value for one
// stat category, computed across every form in the dex.
type StatBounds struct {
	Min int
	Max int
}

// TypeRow is a damage type with its localized name.
type TypeRow struct {
	ID         int64
	Identifier string
	Name       string
}

// EfficacyRow is one entry of the damage-factor table. DamageFactor is an
// integer percentage where 100 is neutral.
type EfficacyRow struct {
	DamageTypeID int64
	TargetTypeID int64
	DamageFactor int
}

// AbilityRow is an ability slot of a form. FlavorText is already reduced to
// the most recent version group's text and may be empty.
type AbilityRow struct {
	Identifier string
	Name       string
	IsHidden   bool
	FlavorText string
}

// SpeciesRow carries the species-level profile. Pointer fields are absent
// when the dataset lacks the row or translation.
type SpeciesRow struct {
	ID               int64
	Identifier       string
	EvolutionChainID *int64
	GrowthRate       *string
	CaptureRate      *int
	BaseHappiness    *int
	Generation       *string
	Region           *string
}

// SpeciesRef identifies a species for navigation and evolution edges.
type SpeciesRef struct {
	ID         int64
	Identifier string
	Name       string
}

// EvolutionRow is one raw evolution edge within a chain. From is nil at a
// chain root. Trigger fields are optional and feed condition derivation.
type EvolutionRow struct {
	From              *SpeciesRef
	To                SpeciesRef
	TriggerIdentifier string
	MinimumLevel      *int
	MinimumHappiness  *int
	TimeOfDay         string
	ItemName          *string
	HeldItemName      *string
	KnownMoveName     *string
}

// MoveRow is one level-up move as stored, before display formatting.
// Power, Accuracy and PP may legitimately be absent (status moves etc.).
type MoveRow struct {
	Level           int
	Identifier      string
	Name            string
	TypeIdentifier  *string
	TypeName        *string
	DamageClassName *string
	Power           *int
	Accuracy        *int
	PP              *int
	ShortEffect     string
}

// EncounterRow is one raw (version, location) pair for a form.
type EncounterRow struct {
	Version  string
	Location string
}

// SuggestionRow is one autocomplete candidate (default forms only).
type SuggestionRow struct {
	Identifier  string
	FormName    string
	SpeciesName string
}

// GetFormInput contains parameters for resolving a form by identifier.
type GetFormInput struct {
	// Identifier is the canonical lowercase slug; matching is exact.
	Identifier string
	LanguageID int64
}

// GetFormOutput contains the resolved form row.
type GetFormOutput struct {
	Form *Form
}

// ListStatsInput contains parameters for fetching a form's base stats.
type ListStatsInput struct {
	FormID     int64
	LanguageID int64
}

// ListStatsOutput contains the stat rows in stat id order.
type ListStatsOutput struct {
	Stats []StatRow
}

// GetStatBoundsInput contains parameters for the dex-wide stat bounds fetch.
type GetStatBoundsInput struct{}

// GetStatBoundsOutput maps stat id to the dataset-wide min/max.
type GetStatBoundsOutput struct {
	Bounds map[int64]StatBounds
}

// ListTypesInput contains parameters for fetching a form's types.
type ListTypesInput struct {
	FormID     int64
	LanguageID int64
}

// ListTypesOutput contains the form's types in slot order.
type ListTypesOutput struct {
	Types []TypeRow
}

// ListAllTypesInput contains parameters for listing every damage type.
type ListAllTypesInput struct {
	LanguageID int64
}

// ListAllTypesOutput contains all damage types ordered by id.
type ListAllTypesOutput struct {
	Types []TypeRow
}

// ListEfficacyInput contains parameters for the damage-factor fetch.
type ListEfficacyInput struct {
	// TargetTypeIDs are the defending types whose incoming factors are wanted.
	TargetTypeIDs []int64
}

// ListEfficacyOutput contains the matching damage-factor rows.
type ListEfficacyOutput struct {
	Rows []EfficacyRow
}

// ListAbilitiesInput contains parameters for fetching a form's abilities.
type ListAbilitiesInput struct {
	FormID     int64
	LanguageID int64
}

// ListAbilitiesOutput contains the abilities in slot order.
type ListAbilitiesOutput struct {
	Abilities []AbilityRow
}

// GetSpeciesInput contains parameters for the species profile fetch.
type GetSpeciesInput struct {
	SpeciesID  int64
	LanguageID int64
}

// GetSpeciesOutput contains the species profile.
type GetSpeciesOutput struct {
	Species *SpeciesRow
}

// ListEvolutionsInput contains parameters for fetching a chain's edges.
type ListEvolutionsInput struct {
	ChainID    int64
	LanguageID int64
}

// ListEvolutionsOutput contains the chain's edges ordered by the evolved
// species id.
type ListEvolutionsOutput struct {
	Edges []EvolutionRow
}

// ListEggGroupsInput contains parameters for fetching a species' egg groups.
type ListEggGroupsInput struct {
	SpeciesID  int64
	LanguageID int64
}

// ListEggGroupsOutput contains the localized egg group names in group order.
type ListEggGroupsOutput struct {
	Names []string
}

// GetFlavorTextInput contains parameters for the species flavor text fetch.
type GetFlavorTextInput struct {
	SpeciesID  int64
	LanguageID int64
}

// GetFlavorTextOutput contains the latest-version flavor text, or empty.
type GetFlavorTextOutput struct {
	Text string
}

// ListMovesInput contains parameters for the level-up move fetch.
type ListMovesInput struct {
	FormID         int64
	VersionGroupID int64
	MethodID       int64
	LanguageID     int64
}

// ListMovesOutput contains moves ordered by (level, move identifier).
type ListMovesOutput struct {
	Moves []MoveRow
}

// ListFormsInput contains parameters for listing a species' sibling forms.
type ListFormsInput struct {
	SpeciesID  int64
	LanguageID int64
}

// ListFormsOutput contains every form of the species in form id order.
type ListFormsOutput struct {
	Forms []Form
}

// ListEncountersInput contains parameters for the raw encounter fetch.
type ListEncountersInput struct {
	FormID     int64
	LanguageID int64
	// Limit caps the raw rows before grouping. The cap can under-represent
	// widely distributed pokemon; see the encounter aggregator.
	Limit int
}

// ListEncountersOutput contains raw (version, location) pairs.
type ListEncountersOutput struct {
	Rows []EncounterRow
}

// GetAdjacentSpeciesInput contains parameters for prev/next navigation.
type GetAdjacentSpeciesInput struct {
	SpeciesID  int64
	LanguageID int64
}

// GetAdjacentSpeciesOutput contains the nearest species with a strictly
// smaller and strictly larger id. Either side is nil at a dataset boundary.
type GetAdjacentSpeciesOutput struct {
	Prev *SpeciesRef
	Next *SpeciesRef
}

// SuggestInput contains parameters for prefix autocomplete.
type SuggestInput struct {
	// Prefix is matched case-insensitively against form identifiers and
	// localized species names.
	Prefix     string
	LanguageID int64
	Limit      int
}

// SuggestOutput contains the matching default forms ordered by species name.
type SuggestOutput struct {
	Rows []SuggestionRow
}

// GetRandomDefaultFormInput contains parameters for the random pick.
type GetRandomDefaultFormInput struct{}

// GetRandomDefaultFormOutput contains the identifier of a randomly chosen
// species' default form. Identifier is empty when the dataset yields none.
type GetRandomDefaultFormOutput struct {
	Identifier string
}

// Repository defines the read-only data access port over the reference
// dataset. Implementations perform no derivation beyond localized-name joins;
// every fetch is a pure indexed lookup.
type Repository interface {
	// GetForm resolves a form by exact identifier match
	GetForm(ctx context.Context, input GetFormInput) (*GetFormOutput, error)

	// ListStats fetches a form's base stats in stat id order
	ListStats(ctx context.Context, input ListStatsInput) (*ListStatsOutput, error)

	// GetStatBounds fetches the dex-wide min/max per stat category
	GetStatBounds(ctx context.Context, input GetStatBoundsInput) (*GetStatBoundsOutput, error)

	// ListTypes fetches a form's types in slot order
	ListTypes(ctx context.Context, input ListTypesInput) (*ListTypesOutput, error)

	// ListAllTypes fetches every damage type ordered by id
	ListAllTypes(ctx context.Context, input ListAllTypesInput) (*ListAllTypesOutput, error)

	// ListEfficacy fetches damage factors targeting the given types
	ListEfficacy(ctx context.Context, input ListEfficacyInput) (*ListEfficacyOutput, error)

	// ListAbilities fetches a form's abilities in slot order
	ListAbilities(ctx context.Context, input ListAbilitiesInput) (*ListAbilitiesOutput, error)

	// GetSpecies fetches the species-level profile
	GetSpecies(ctx context.Context, input GetSpeciesInput) (*GetSpeciesOutput, error)

	// ListEvolutions fetches a chain's raw evolution edges
	ListEvolutions(ctx context.Context, input ListEvolutionsInput) (*ListEvolutionsOutput, error)

	// ListEggGroups fetches a species' localized egg group names
	ListEggGroups(ctx context.Context, input ListEggGroupsInput) (*ListEggGroupsOutput, error)

	// GetFlavorText fetches the latest flavor text for a species
	GetFlavorText(ctx context.Context, input GetFlavorTextInput) (*GetFlavorTextOutput, error)

	// ListMoves fetches a form's moves for one (version group, method) pair
	ListMoves(ctx context.Context, input ListMovesInput) (*ListMovesOutput, error)

	// ListForms fetches every sibling form of a species
	ListForms(ctx context.Context, input ListFormsInput) (*ListFormsOutput, error)

	// ListEncounters fetches raw encounter rows up to the configured cap
	ListEncounters(ctx context.Context, input ListEncountersInput) (*ListEncountersOutput, error)

	// GetAdjacentSpecies fetches prev/next species by ordinal id
	GetAdjacentSpecies(ctx context.Context, input GetAdjacentSpeciesInput) (*GetAdjacentSpeciesOutput, error)

	// Suggest fetches autocomplete candidates for a prefix
	Suggest(ctx context.Context, input SuggestInput) (*SuggestOutput, error)

	// GetRandomDefaultForm picks a random species' default form identifier
	GetRandomDefaultForm(ctx context.Context, input GetRandomDefaultFormInput) (*GetRandomDefaultFormOutput, error)
}
