package recipetext

import (
	"errors"
	"reflect"
	"testing"

	"github.com/hammamikhairi/rasoi/internal/domain"
)

const sampleDoc = sampleEN + "\n**Hindi Translation:**\n\n" + sampleHI

func TestParseEnglish(t *testing.T) {
	parsed, err := Parse(sampleDoc, domain.LangEnglish)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed.Title != "Tomato Soup" {
		t.Errorf("title = %q", parsed.Title)
	}
	if len(parsed.Ingredients) != 3 {
		t.Errorf("ingredients = %v", parsed.Ingredients)
	}
	if len(parsed.Steps) != 2 {
		t.Fatalf("steps = %v", parsed.Steps)
	}
	if parsed.Steps[0].Text != "Boil for 5 minutes" || parsed.Steps[0].DurationMinutes != 5 {
		t.Errorf("step 0 = %+v", parsed.Steps[0])
	}
	if parsed.Steps[1].Text != "Serve hot" || parsed.Steps[1].DurationMinutes != 0 {
		t.Errorf("step 1 = %+v", parsed.Steps[1])
	}
	if len(parsed.Nutrition) != 2 {
		t.Errorf("nutrition = %v", parsed.Nutrition)
	}
	if parsed.LastStepIndex() != 1 {
		t.Errorf("last step index = %d", parsed.LastStepIndex())
	}
}

func TestParseHindi(t *testing.T) {
	parsed, err := Parse(sampleDoc, domain.LangHindi)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed.Title != "टमाटर का सूप" {
		t.Errorf("title = %q", parsed.Title)
	}
	if len(parsed.Steps) != 2 {
		t.Fatalf("steps = %v", parsed.Steps)
	}
	if parsed.Steps[0].DurationMinutes != 5 {
		t.Errorf("step 0 duration = %d", parsed.Steps[0].DurationMinutes)
	}
}

// A document without the marker must yield an empty-but-usable Hindi view.
func TestParseMissingHindiVariant(t *testing.T) {
	parsed, err := Parse(sampleEN, domain.LangHindi)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed.Title != FallbackTitle {
		t.Errorf("title = %q, want %q", parsed.Title, FallbackTitle)
	}
	if len(parsed.Ingredients) != 0 || len(parsed.Steps) != 0 || len(parsed.Nutrition) != 0 {
		t.Errorf("expected empty sections, got %+v", parsed)
	}
	if parsed.LastStepIndex() != -1 {
		t.Errorf("last step index = %d, want -1", parsed.LastStepIndex())
	}
}

func TestParseIdempotent(t *testing.T) {
	a, err := Parse(sampleDoc, domain.LangEnglish)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	b, err := Parse(sampleDoc, domain.LangEnglish)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("two parses of identical input differ")
	}
}

func TestParseUnknownLanguage(t *testing.T) {
	_, err := Parse(sampleDoc, domain.Language("fr"))
	if !errors.Is(err, domain.ErrUnknownLanguage) {
		t.Fatalf("expected ErrUnknownLanguage, got %v", err)
	}
}

// Garbage in, empty sections out — never a panic or an error.
func TestParseNeverFails(t *testing.T) {
	inputs := []string{
		"",
		"completely unstructured text",
		"**Ingredients:**",
		"**Instructions:**\nno numbered lines",
		"1. numbered line with no heading",
		"**Name:**",
		"* bullet soup * everywhere *",
	}
	for _, in := range inputs {
		for _, lang := range []domain.Language{domain.LangEnglish, domain.LangHindi} {
			if _, err := Parse(in, lang); err != nil {
				t.Errorf("Parse(%q, %s) = %v", in, lang, err)
			}
		}
	}
}

// The end-to-end shape from the product: minimal generated document.
func TestParseMinimalDocument(t *testing.T) {
	raw := "**Name:** Tomato Soup\n**Ingredients:**\n* Tomato\n* Salt\n**Instructions:**\n1. Boil for 5 minutes\n2. Serve hot"
	parsed, err := Parse(raw, domain.LangEnglish)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := &domain.ParsedRecipe{
		Title:       "Tomato Soup",
		Ingredients: []string{"Tomato", "Salt"},
		Steps: []domain.Step{
			{Index: 0, Text: "Boil for 5 minutes", DurationMinutes: 5},
			{Index: 1, Text: "Serve hot", DurationMinutes: 0},
		},
	}
	if !reflect.DeepEqual(parsed, want) {
		t.Errorf("parsed = %+v, want %+v", parsed, want)
	}
}
