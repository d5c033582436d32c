package recipetext

import (
	"regexp"
	"strings"

	"github.com/hammamikhairi/rasoi/internal/domain"
)

// The extractor is table-driven: each section is described by a rule
// pairing an opening heading with the heading that ends its block, plus
// a per-line filter and transform. The rules encode the one document
// shape we accept, so adjusting to a prompt change is a one-line edit.
type sectionRule struct {
	heading *regexp.Regexp // opens the block
	stop    *regexp.Regexp // next recognized heading, ends the block
	keep    *regexp.Regexp // lines to retain within the block
	strip   *regexp.Regexp // prefix removed from retained lines
}

var (
	ingredientsRule = sectionRule{
		heading: regexp.MustCompile(`(?i)\*\*(?:Ingredients|सामग्री):\*\*`),
		stop:    regexp.MustCompile(`(?i)\*\*(?:Instructions|निर्देश):\*\*|\*\*Approximate`),
		keep:    regexp.MustCompile(`^\*`),
		strip:   regexp.MustCompile(`^\*\s*`),
	}

	instructionsRule = sectionRule{
		heading: regexp.MustCompile(`(?i)\*\*(?:Instructions|निर्देश):\*\*`),
		stop:    regexp.MustCompile(`(?i)\*\*Approximate`),
		keep:    regexp.MustCompile(`^\d+\.`),
		strip:   regexp.MustCompile(`^\d+\.\s*`),
	}

	nutritionRule = sectionRule{
		heading: regexp.MustCompile(`(?i)\*\*Approximate Nutritional Value\*\*`),
		stop:    regexp.MustCompile(`\*\*[^*]+\*\*`),
		keep:    regexp.MustCompile(`^\*`),
		strip:   regexp.MustCompile(`^\*\s*`),
	}

	titleEN = regexp.MustCompile(`^\*\*Name:\*\*\s*(.+)$`)
	titleHI = regexp.MustCompile(`^\*\*नाम:\*\*\s*(.+)$`)
)

// FallbackTitle is returned when a variant has no recognizable name line.
const FallbackTitle = "Untitled Recipe"

// apply slices the rule's block out of the variant and returns the
// retained lines, stripped and trimmed. A missing heading yields nil.
func (r sectionRule) apply(variant string) []string {
	loc := r.heading.FindStringIndex(variant)
	if loc == nil {
		return nil
	}
	block := variant[loc[1]:]
	if stop := r.stop.FindStringIndex(block); stop != nil {
		block = block[:stop[0]]
	}

	var out []string
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if !r.keep.MatchString(line) {
			continue
		}
		line = strings.TrimSpace(r.strip.ReplaceAllString(line, ""))
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// ExtractTitle scans a language variant for its name line. Lines that
// mention "translation" are skipped so the marker itself can never be
// mistaken for a title. Returns FallbackTitle when nothing matches.
func ExtractTitle(variant string, lang domain.Language) string {
	pattern := titleEN
	if lang == domain.LangHindi {
		pattern = titleHI
	}

	for _, line := range strings.Split(variant, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.Contains(strings.ToLower(line), "translation") {
			continue
		}
		if m := pattern.FindStringSubmatch(line); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return FallbackTitle
}

// ExtractIngredients returns the bullet lines of the ingredients block,
// stripped of their leading asterisk. Stray prose inside the block is
// dropped.
func ExtractIngredients(variant string) []string {
	return ingredientsRule.apply(variant)
}

// ExtractInstructionLines returns the numbered lines of the
// instructions block with their numeric prefix removed. The step
// builder turns these into Steps.
func ExtractInstructionLines(variant string) []string {
	return instructionsRule.apply(variant)
}

// ExtractNutrition returns the label/value pairs of the nutrition
// block. Bullet lines without a colon, or with an empty label or
// value, are dropped.
func ExtractNutrition(variant string) []domain.NutritionFact {
	var facts []domain.NutritionFact
	for _, line := range nutritionRule.apply(variant) {
		label, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		label = strings.TrimSpace(label)
		value = strings.TrimSpace(value)
		if label == "" || value == "" {
			continue
		}
		facts = append(facts, domain.NutritionFact{Label: label, Value: value})
	}
	return facts
}
