package recipetext

import (
	"github.com/hammamikhairi/rasoi/internal/domain"
)

// Parse is the single entry point for turning a raw document into the
// structured view of one language variant. It is pure and idempotent;
// malformed or missing sections come back empty rather than as errors.
// An unknown language code is a caller bug and fails loudly.
func Parse(raw string, lang domain.Language) (*domain.ParsedRecipe, error) {
	if !lang.Valid() {
		return nil, domain.ErrUnknownLanguage
	}

	variant := Variant(raw, lang)
	return &domain.ParsedRecipe{
		Title:       ExtractTitle(variant, lang),
		Ingredients: ExtractIngredients(variant),
		Steps:       BuildSteps(ExtractInstructionLines(variant)),
		Nutrition:   ExtractNutrition(variant),
	}, nil
}
