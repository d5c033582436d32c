// Package recipetext turns a raw bilingual recipe blob into structured
// data. The input is a single markdown-flavored document produced by an
// LLM, with the English variant first and the Hindi variant after a
// "**Hindi Translation**" marker. Everything in this package is a pure
// function of the text: malformed input degrades to empty results,
// never to an error.
package recipetext

import (
	"regexp"

	"github.com/hammamikhairi/rasoi/internal/domain"
)

// hindiMarker locates the boundary between the two language variants.
// The colon is optional and may be the full-width form the LLM
// sometimes emits.
var hindiMarker = regexp.MustCompile(`(?i)\*\*hindi translation[:：]?\*\*`)

// Split separates a raw document into its English and Hindi variants.
// When the marker is absent the whole document is English and the
// Hindi variant is empty.
func Split(raw string) (en, hi string) {
	loc := hindiMarker.FindStringIndex(raw)
	if loc == nil {
		return raw, ""
	}
	return raw[:loc[0]], raw[loc[1]:]
}

// Variant returns the part of the raw document for one language.
func Variant(raw string, lang domain.Language) string {
	en, hi := Split(raw)
	if lang == domain.LangHindi {
		return hi
	}
	return en
}
