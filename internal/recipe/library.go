// Package recipe provides recipe document sources. A document is the
// raw bilingual text blob as generated; parsing it into sections is
// the recipetext package's job.
package recipe

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/hammamikhairi/rasoi/internal/domain"
	"github.com/hammamikhairi/rasoi/internal/logger"
	"github.com/hammamikhairi/rasoi/internal/recipetext"
)

// Compile-time interface check.
var _ domain.RecipeSource = (*MemoryLibrary)(nil)

// MemoryLibrary holds documents in memory, preloaded with built-in
// samples. Safe for concurrent use.
type MemoryLibrary struct {
	mu   sync.RWMutex
	docs map[string]*domain.RecipeDocument
	log  *logger.Logger
}

// NewMemoryLibrary creates a library seeded with the built-in
// bilingual sample documents.
func NewMemoryLibrary(log *logger.Logger) *MemoryLibrary {
	lib := &MemoryLibrary{
		docs: make(map[string]*domain.RecipeDocument),
		log:  log,
	}
	lib.seed()
	return lib
}

// List returns all documents sorted by title.
func (l *MemoryLibrary) List(ctx context.Context) ([]domain.RecipeDocument, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]domain.RecipeDocument, 0, len(l.docs))
	for _, d := range l.docs {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

// Get returns a document by ID.
func (l *MemoryLibrary) Get(ctx context.Context, id string) (*domain.RecipeDocument, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	d, ok := l.docs[id]
	if !ok {
		l.log.Debug("document not found: %s", id)
		return nil, domain.ErrNotFound
	}
	copied := *d
	return &copied, nil
}

// Add stores a document, overwriting any document with the same ID.
func (l *MemoryLibrary) Add(doc *domain.RecipeDocument) {
	l.mu.Lock()
	defer l.mu.Unlock()

	copied := *doc
	l.docs[doc.ID] = &copied
	l.log.Info("added document %q (%s)", doc.Title, doc.ID)
}

// FromFile loads a recipe document from a text/markdown file. The
// title comes from the document's own name line; a file with no name
// line still loads, under the parser's fallback title.
func FromFile(path string) (*domain.RecipeDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading recipe file: %w", err)
	}

	content := string(data)
	title := recipetext.ExtractTitle(recipetext.Variant(content, domain.LangEnglish), domain.LangEnglish)

	id := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return &domain.RecipeDocument{
		ID:      id,
		Title:   title,
		Content: content,
	}, nil
}

// seed loads the built-in sample documents. Titles are derived the
// same way FromFile derives them, so the seeds go through the real
// parsing path.
func (l *MemoryLibrary) seed() {
	for id, content := range builtinDocs {
		title := recipetext.ExtractTitle(recipetext.Variant(content, domain.LangEnglish), domain.LangEnglish)
		l.docs[id] = &domain.RecipeDocument{
			ID:      id,
			Title:   title,
			Content: content,
		}
	}
	l.log.Debug("seeded %d built-in documents", len(l.docs))
}
