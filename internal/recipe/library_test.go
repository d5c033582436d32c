package recipe

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hammamikhairi/rasoi/internal/domain"
	"github.com/hammamikhairi/rasoi/internal/logger"
	"github.com/hammamikhairi/rasoi/internal/recipetext"
)

func TestMemoryLibrarySeeded(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	lib := NewMemoryLibrary(log)
	ctx := context.Background()

	docs, err := lib.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(docs) == 0 {
		t.Fatal("library has no built-in documents")
	}
	for _, d := range docs {
		if d.Title == "" || d.Title == recipetext.FallbackTitle {
			t.Errorf("document %s has no parsed title", d.ID)
		}
	}
}

// Every built-in document must parse to a full bilingual recipe:
// title, ingredients, and at least one timed step in each language.
func TestBuiltinDocsParse(t *testing.T) {
	for id, content := range builtinDocs {
		for _, lang := range []domain.Language{domain.LangEnglish, domain.LangHindi} {
			parsed, err := recipetext.Parse(content, lang)
			if err != nil {
				t.Fatalf("%s (%s): %v", id, lang, err)
			}
			if parsed.Title == recipetext.FallbackTitle {
				t.Errorf("%s (%s): missing title", id, lang)
			}
			if len(parsed.Ingredients) == 0 {
				t.Errorf("%s (%s): no ingredients", id, lang)
			}
			if len(parsed.Steps) == 0 {
				t.Errorf("%s (%s): no steps", id, lang)
			}
			timed := false
			for _, s := range parsed.Steps {
				if s.DurationMinutes > 0 {
					timed = true
					break
				}
			}
			if !timed {
				t.Errorf("%s (%s): no timed step", id, lang)
			}
		}
	}
}

func TestGetAndAdd(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	lib := NewMemoryLibrary(log)
	ctx := context.Background()

	if _, err := lib.Get(ctx, "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	lib.Add(&domain.RecipeDocument{ID: "custom", Title: "Custom", Content: "**Name:** Custom"})
	got, err := lib.Get(ctx, "custom")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "Custom" {
		t.Fatalf("title = %q", got.Title)
	}
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dal.md")
	content := "**Name:** Yellow Dal\n**Instructions:**\n1. Cook for 20 minutes\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	doc, err := FromFile(path)
	if err != nil {
		t.Fatalf("from file: %v", err)
	}
	if doc.Title != "Yellow Dal" {
		t.Errorf("title = %q", doc.Title)
	}
	if doc.ID != "dal" {
		t.Errorf("id = %q", doc.ID)
	}
}

func TestFromFileMissing(t *testing.T) {
	if _, err := FromFile(filepath.Join(t.TempDir(), "nope.md")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
