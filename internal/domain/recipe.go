// Package domain defines the core types and interfaces for the cooking guide.
// All other packages depend on domain; domain depends on nothing.
package domain

// Language identifies one of the two variants inside a recipe document.
type Language string

const (
	// LangEnglish selects the English half of a recipe document.
	LangEnglish Language = "en"
	// LangHindi selects the Hindi half of a recipe document.
	LangHindi Language = "hi"
)

// Valid reports whether the language code is one the parser understands.
func (l Language) Valid() bool {
	return l == LangEnglish || l == LangHindi
}

// Toggle returns the other language.
func (l Language) Toggle() Language {
	if l == LangHindi {
		return LangEnglish
	}
	return LangHindi
}

// RecipeDocument is a single raw recipe text as produced by an LLM:
// a markdown-flavored blob carrying both the English and Hindi variants.
// Content is the source of truth; every structured view is derived from it.
type RecipeDocument struct {
	ID      string
	Title   string
	Content string
}

// ParsedRecipe is the structured view of one language variant of a
// document. It is recomputed from (Content, Language) on demand and
// never stored.
type ParsedRecipe struct {
	Title       string
	Ingredients []string
	Steps       []Step
	Nutrition   []NutritionFact
}

// LastStepIndex returns the index of the final step, or -1 when the
// variant has no instructions at all.
func (p *ParsedRecipe) LastStepIndex() int {
	return len(p.Steps) - 1
}

// Step is one ordered instruction unit within a language variant.
type Step struct {
	Index           int
	Text            string
	DurationMinutes int // 0 when the step mentions no timed phase
}

// NutritionFact is one label/value pair from the nutrition block,
// e.g. {"Calories", "320 kcal"}.
type NutritionFact struct {
	Label string
	Value string
}
