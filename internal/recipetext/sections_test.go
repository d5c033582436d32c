package recipetext

import (
	"testing"

	"github.com/hammamikhairi/rasoi/internal/domain"
)

const sampleEN = `**Name:** Tomato Soup

**Ingredients:**
* Tomato
* Salt
stray prose that is not a bullet
* Water

**Instructions:**
1. Boil for 5 minutes
2. Serve hot

**Approximate Nutritional Value**
* Calories: 90 kcal
* Protein: 2g
* : missing label
* Missing value:
not a bullet line
`

const sampleHI = `**नाम:** टमाटर का सूप

**सामग्री:**
* टमाटर
* नमक

**निर्देश:**
1. 5 मिनट तक उबालें
2. गरम परोसें
`

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		name    string
		variant string
		lang    domain.Language
		want    string
	}{
		{"english title", sampleEN, domain.LangEnglish, "Tomato Soup"},
		{"hindi title", sampleHI, domain.LangHindi, "टमाटर का सूप"},
		{"empty variant", "", domain.LangHindi, FallbackTitle},
		{"no name line", "just some text\nanother line", domain.LangEnglish, FallbackTitle},
		{"translation line skipped", "**Hindi Translation**\n**Name:** Dal", domain.LangEnglish, "Dal"},
		{"wrong language label", sampleEN, domain.LangHindi, FallbackTitle},
		{"value trimmed", "**Name:**   Spiced Rice  ", domain.LangEnglish, "Spiced Rice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractTitle(tt.variant, tt.lang); got != tt.want {
				t.Errorf("ExtractTitle = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractIngredients(t *testing.T) {
	got := ExtractIngredients(sampleEN)
	want := []string{"Tomato", "Salt", "Water"}
	if len(got) != len(want) {
		t.Fatalf("got %d ingredients %v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ingredient[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestExtractIngredientsHindi(t *testing.T) {
	got := ExtractIngredients(sampleHI)
	if len(got) != 2 || got[0] != "टमाटर" || got[1] != "नमक" {
		t.Fatalf("got %v", got)
	}
}

func TestExtractIngredientsMissingSection(t *testing.T) {
	if got := ExtractIngredients("no headings here"); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestExtractInstructionLines(t *testing.T) {
	got := ExtractInstructionLines(sampleEN)
	want := []string{"Boil for 5 minutes", "Serve hot"}
	if len(got) != len(want) {
		t.Fatalf("got %d lines %v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestExtractInstructionLinesIgnoresUnnumbered(t *testing.T) {
	variant := "**Instructions:**\n1. First\nnote without number\n2. Second\n* a bullet\n"
	got := ExtractInstructionLines(variant)
	if len(got) != 2 || got[0] != "First" || got[1] != "Second" {
		t.Fatalf("got %v", got)
	}
}

func TestExtractNutrition(t *testing.T) {
	got := ExtractNutrition(sampleEN)
	want := []domain.NutritionFact{
		{Label: "Calories", Value: "90 kcal"},
		{Label: "Protein", Value: "2g"},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d facts %v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("fact[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestExtractNutritionMissingSection(t *testing.T) {
	if got := ExtractNutrition(sampleHI); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}
