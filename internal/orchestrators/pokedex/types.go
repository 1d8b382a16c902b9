package pokedex

// Stat is one normalized base stat. Percent is the visual bar width and is
// presentation-only; Value is the raw base stat and the only field other
// derivations may use.
type Stat struct {
	ID         int64  `json:"id"`
	Identifier string `json:"identifier"`
	Name       string `json:"name"`
	Value      int    `json:"value"`
	Min        int    `json:"min"`
	Max        int    `json:"max"`
	Percent    int    `json:"percent"`
}

// TypeBadge is a damage type reference for display.
type TypeBadge struct {
	Identifier string `json:"identifier"`
	Name       string `json:"name"`
}

// Ability is one ability slot of the composed entry.
type Ability struct {
	Identifier string `json:"identifier"`
	Name       string `json:"name"`
	IsHidden   bool   `json:"is_hidden"`
	FlavorText string `json:"flavor_text"`
}

// Move is one formatted level-up move. Power, Accuracy and PP are nil when
// the dataset has no value, never zero.
type Move struct {
	Name           string  `json:"name"`
	Level          int     `json:"level"`
	TypeIdentifier *string `json:"type_identifier"`
	TypeName       *string `json:"type_name"`
	Category       *string `json:"category"`
	Power          *int    `json:"power"`
	Accuracy       *int    `json:"accuracy"`
	PP             *int    `json:"pp"`
	Effect         string  `json:"effect"`
}

// SpeciesRef identifies a species inside an evolution edge.
type SpeciesRef struct {
	SpeciesID  int64  `json:"species_id"`
	Identifier string `json:"identifier"`
	Name       string `json:"name"`
}

// EvolutionEdge is one edge of the evolution tree with its derived condition
// text. From is nil at a chain root.
type EvolutionEdge struct {
	From      *SpeciesRef `json:"from"`
	To        SpeciesRef  `json:"to"`
	Condition string      `json:"condition"`
}

// MatchupEntry is one attacking type with its combined damage multiplier.
type MatchupEntry struct {
	Identifier string  `json:"identifier"`
	Name       string  `json:"name"`
	Multiplier float64 `json:"multiplier"`
	Label      string  `json:"label"`
}

// TypeMatchups groups attacking types by how they fare against the entry's
// defending types. Neutral types appear in none of the lists.
type TypeMatchups struct {
	Weak   []MatchupEntry `json:"weak"`
	Resist []MatchupEntry `json:"resist"`
	Immune []MatchupEntry `json:"immune"`
}

// FormRef is one sibling form of the same species.
type FormRef struct {
	Identifier string `json:"identifier"`
	Name       string `json:"name"`
	IsDefault  bool   `json:"is_default"`
}

// NavEntry is a previous/next navigation target.
type NavEntry struct {
	Dex        int64  `json:"dex"`
	Identifier string `json:"identifier"`
	Name       string `json:"name"`
}

// Encounter groups the locations a form appears in for one game version.
type Encounter struct {
	Version   string   `json:"version"`
	Locations []string `json:"locations"`
}

// Entry is the composed, presentation-ready view of one pokemon form. It is
// assembled fresh per request and never mutated afterwards.
type Entry struct {
	Identifier    string          `json:"identifier"`
	DisplayName   string          `json:"display_name"`
	Dex           int64           `json:"dex"`
	Stats         []Stat          `json:"stats"`
	Total         int             `json:"total"`
	Types         []TypeBadge     `json:"types"`
	Abilities     []Ability       `json:"abilities"`
	SpriteURL     string          `json:"sprite_url"`
	Moves         []Move          `json:"moves"`
	Evolutions    []EvolutionEdge `json:"evolutions"`
	EggGroups     []string        `json:"egg_groups"`
	GrowthRate    *string         `json:"growth_rate"`
	CaptureRate   *int            `json:"capture_rate"`
	BaseHappiness *int            `json:"base_happiness"`
	FlavorText    string          `json:"flavor_text"`
	Generation    *string         `json:"generation"`
	Region        *string         `json:"region"`
	TypeMatchups  TypeMatchups    `json:"type_matchups"`
	Forms         []FormRef       `json:"forms"`
	NavPrev       *NavEntry       `json:"nav_prev"`
	NavNext       *NavEntry       `json:"nav_next"`
	Encounters    []Encounter     `json:"encounters"`
}

// GetEntryInput defines the request for composing one pokedex entry
type GetEntryInput struct {
	// Identifier is matched case-insensitively against form slugs only.
	Identifier string
}

// GetEntryOutput defines the response for composing one pokedex entry.
// Entry is nil when the identifier matched nothing — that is the not-found
// signal, not an error.
type GetEntryOutput struct {
	Entry *Entry
}

// Suggestion is one autocomplete result.
type Suggestion struct {
	Identifier  string `json:"id"`
	DisplayName string `json:"name"`
}

// SuggestInput defines the request for prefix autocomplete
type SuggestInput struct {
	Query string
}

// SuggestOutput defines the response for prefix autocomplete
type SuggestOutput struct {
	Results []Suggestion
}

// RandomIdentifierInput defines the request for a random pick
type RandomIdentifierInput struct{}

// RandomIdentifierOutput defines the response for a random pick
type RandomIdentifierOutput struct {
	Identifier string
}
