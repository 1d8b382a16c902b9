package pokedex

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// displayName resolves the most specific non-empty localized name: form name
// over species name over the identifier-derived fallback. Missing
// translations are never an error.
func displayName(formName, speciesName, identifier string) string {
	if formName != "" {
		return formName
	}
	if speciesName != "" {
		return speciesName
	}
	return titleIdentifier(identifier)
}

// titleIdentifier formats a hyphenated slug into title-cased words, e.g.
// "mega-punch" -> "Mega Punch".
func titleIdentifier(identifier string) string {
	return titleCaser.String(strings.ReplaceAll(identifier, "-", " "))
}

// cleanProse flattens the dataset's embedded line and page breaks into
// spaces.
func cleanProse(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\f", " ")
}
