// Package session implements the resumable cooking state machine.
// A tracker keeps exactly one live session at a time and archives a
// copy per recipe key on every transition, so the user can resume the
// most recent recipe instantly or any earlier one from history.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/hammamikhairi/rasoi/internal/domain"
	"github.com/hammamikhairi/rasoi/internal/logger"
	"github.com/hammamikhairi/rasoi/internal/recipetext"
)

// Persistence slots. The current-session slot is a singleton holding
// the most recently active recipe; the archive slot is keyed per
// recipe. Both are rewritten together on every mutating transition.
const (
	currentSlot   = "cookingProgress"
	archivePrefix = "cookingProgress_"
	languageSlot  = "cookingLang"
)

// Option configures the tracker.
type Option func(*Tracker)

// WithClock overrides the time source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		t.now = now
	}
}

// WithCompletionListener registers a listener for completion events.
func WithCompletionListener(l domain.CompletionListener) Option {
	return func(t *Tracker) {
		t.listeners = append(t.listeners, l)
	}
}

// Tracker manages cooking progress over an injected ProgressStore. It
// depends only on interfaces and is fully testable with the in-memory
// store. All transitions run under one mutex: there is a single
// logical writer, and the two slots must never be observed disagreeing.
type Tracker struct {
	store     domain.ProgressStore
	log       *logger.Logger
	now       func() time.Time
	listeners []domain.CompletionListener

	mu sync.Mutex
}

// New creates a tracker with the given dependencies and options.
func New(store domain.ProgressStore, log *logger.Logger, opts ...Option) *Tracker {
	t := &Tracker{
		store: store,
		log:   log,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Start begins a fresh session for the document at step zero,
// replacing whatever session was live before.
func (t *Tracker) Start(ctx context.Context, doc *domain.RecipeDocument, lang domain.Language) (*domain.CookingProgress, error) {
	if !lang.Valid() {
		return nil, domain.ErrUnknownLanguage
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	title := doc.Title
	if title == "" {
		title = recipetext.ExtractTitle(recipetext.Variant(doc.Content, domain.LangEnglish), domain.LangEnglish)
	}

	progress := &domain.CookingProgress{
		RecipeKey:        domain.RecipeKey(title),
		RecipeID:         doc.ID,
		Title:            title,
		Content:          doc.Content,
		CurrentStepIndex: 0,
		Language:         lang,
		LastActiveAt:     t.now(),
		Completed:        false,
	}

	if err := t.persist(ctx, progress); err != nil {
		return nil, err
	}
	t.saveLanguage(ctx, lang)

	t.log.Info("started session %q (lang=%s, key=%s)", title, lang, progress.RecipeKey)
	return progress, nil
}

// Resume re-enters the archived session for the document, at its saved
// step and language. A missing or corrupt archive behaves as Start.
func (t *Tracker) Resume(ctx context.Context, doc *domain.RecipeDocument, lang domain.Language) (*domain.CookingProgress, error) {
	t.mu.Lock()

	title := doc.Title
	key := domain.RecipeKey(title)
	progress, ok := t.read(ctx, archivePrefix+key)
	if !ok {
		t.mu.Unlock()
		t.log.Debug("no archive for %q, starting fresh", key)
		return t.Start(ctx, doc, lang)
	}
	defer t.mu.Unlock()

	progress.LastActiveAt = t.now()
	if err := t.persist(ctx, progress); err != nil {
		return nil, err
	}

	t.log.Info("resumed session %q at step %d (lang=%s, completed=%v)",
		progress.Title, progress.CurrentStepIndex, progress.Language, progress.Completed)
	return progress, nil
}

// Current returns the live session, or ErrNoActiveSession.
func (t *Tracker) Current(ctx context.Context) (*domain.CookingProgress, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	progress, ok := t.read(ctx, currentSlot)
	if !ok {
		return nil, domain.ErrNoActiveSession
	}
	return progress, nil
}

// Advance moves the live session one step forward, clamped to the last
// step. Reaching the last step marks the session completed and emits
// the completion event exactly once; advancing at the boundary is a
// no-op.
func (t *Tracker) Advance(ctx context.Context) (*domain.CookingProgress, error) {
	return t.transition(ctx, func(p *domain.CookingProgress, lastIndex int) {
		if p.CurrentStepIndex < lastIndex {
			p.CurrentStepIndex++
		}
	})
}

// Retreat moves the live session one step back, clamped to step zero.
// The completion flag is not cleared by going back; only Restart does
// that.
func (t *Tracker) Retreat(ctx context.Context) (*domain.CookingProgress, error) {
	return t.transition(ctx, func(p *domain.CookingProgress, lastIndex int) {
		if p.CurrentStepIndex > 0 {
			p.CurrentStepIndex--
		}
	})
}

// Restart rewinds the live session to step zero and clears the
// completion flag ("cook again").
func (t *Tracker) Restart(ctx context.Context) (*domain.CookingProgress, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	progress, ok := t.read(ctx, currentSlot)
	if !ok {
		return nil, domain.ErrNoActiveSession
	}

	progress.CurrentStepIndex = 0
	progress.Completed = false
	progress.LastActiveAt = t.now()

	if err := t.persist(ctx, progress); err != nil {
		return nil, err
	}
	t.log.Info("restarted session %q", progress.Title)
	return progress, nil
}

// MarkComplete flags the live session as completed regardless of its
// step position ("mark complete"). Idempotent.
func (t *Tracker) MarkComplete(ctx context.Context) (*domain.CookingProgress, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	progress, ok := t.read(ctx, currentSlot)
	if !ok {
		return nil, domain.ErrNoActiveSession
	}
	if progress.Completed {
		return progress, nil
	}

	progress.Completed = true
	progress.LastActiveAt = t.now()
	if err := t.persist(ctx, progress); err != nil {
		return nil, err
	}
	t.emitCompleted(ctx, progress)
	return progress, nil
}

// SetLanguage switches the live session to the other variant. The step
// lists of the two languages are independent, so the saved index is
// clamped into the new variant's range rather than assumed to line up.
func (t *Tracker) SetLanguage(ctx context.Context, lang domain.Language) (*domain.CookingProgress, error) {
	if !lang.Valid() {
		return nil, domain.ErrUnknownLanguage
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	progress, ok := t.read(ctx, currentSlot)
	if !ok {
		return nil, domain.ErrNoActiveSession
	}

	progress.Language = lang
	if last := t.lastIndex(progress); last >= 0 && progress.CurrentStepIndex > last {
		progress.CurrentStepIndex = last
	}
	progress.LastActiveAt = t.now()

	if err := t.persist(ctx, progress); err != nil {
		return nil, err
	}
	t.saveLanguage(ctx, lang)

	t.log.Info("session %q switched to %s (step %d)", progress.Title, lang, progress.CurrentStepIndex)
	return progress, nil
}

// Status classifies a recipe's archived progress for history display.
// The classification is derived, never stored: completed flag first,
// then position against the recorded language's step count.
func (t *Tracker) Status(ctx context.Context, title string) domain.CookStatus {
	t.mu.Lock()
	defer t.mu.Unlock()

	progress, ok := t.read(ctx, archivePrefix+domain.RecipeKey(title))
	if !ok {
		return domain.StatusNotStarted
	}
	if progress.Completed {
		return domain.StatusCompleted
	}
	if last := t.lastIndex(progress); last >= 0 && progress.CurrentStepIndex >= last {
		return domain.StatusCompleted
	}
	return domain.StatusInProgress
}

// Archived returns the archived progress record for a recipe title, or
// ErrNotFound. Used by the history view for "left off at" details.
func (t *Tracker) Archived(ctx context.Context, title string) (*domain.CookingProgress, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	progress, ok := t.read(ctx, archivePrefix+domain.RecipeKey(title))
	if !ok {
		return nil, domain.ErrNotFound
	}
	return progress, nil
}

// LanguagePreference returns the user's saved language choice,
// defaulting to English.
func (t *Tracker) LanguagePreference(ctx context.Context) domain.Language {
	data, err := t.store.Get(ctx, languageSlot)
	if err != nil {
		return domain.LangEnglish
	}
	if lang := domain.Language(data); lang.Valid() {
		return lang
	}
	return domain.LangEnglish
}

// transition loads the live session, applies a mutation with the
// current language's last step index, re-derives completion, and
// persists both slots.
func (t *Tracker) transition(ctx context.Context, mutate func(*domain.CookingProgress, int)) (*domain.CookingProgress, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	progress, ok := t.read(ctx, currentSlot)
	if !ok {
		return nil, domain.ErrNoActiveSession
	}

	lastIndex := t.lastIndex(progress)
	mutate(progress, lastIndex)
	progress.LastActiveAt = t.now()

	completedNow := !progress.Completed && lastIndex >= 0 && progress.CurrentStepIndex >= lastIndex
	if completedNow {
		progress.Completed = true
	}

	if err := t.persist(ctx, progress); err != nil {
		return nil, err
	}
	if completedNow {
		t.log.Info("session %q completed at step %d", progress.Title, progress.CurrentStepIndex)
		t.emitCompleted(ctx, progress)
	}

	t.log.Debug("session %q now at step %d/%d", progress.Title, progress.CurrentStepIndex, lastIndex)
	return progress, nil
}

// lastIndex re-derives the step count for the record's own language.
// The raw content travels with the record precisely so this never
// needs the original document.
func (t *Tracker) lastIndex(p *domain.CookingProgress) int {
	parsed, err := recipetext.Parse(p.Content, p.Language)
	if err != nil {
		// Only reachable with a corrupt language field; treat as stepless.
		return -1
	}
	return parsed.LastStepIndex()
}

// persist writes the record to the archive slot and the current slot.
// Callers hold the mutex, so the two writes are atomic as far as any
// other tracker call can observe.
func (t *Tracker) persist(ctx context.Context, p *domain.CookingProgress) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding progress: %w", err)
	}
	if err := t.store.Set(ctx, archivePrefix+p.RecipeKey, data); err != nil {
		return fmt.Errorf("saving archive slot: %w", err)
	}
	if err := t.store.Set(ctx, currentSlot, data); err != nil {
		return fmt.Errorf("saving current slot: %w", err)
	}
	return nil
}

// read loads and decodes a progress record. Absent or corrupt records
// both come back as "not there" — a damaged archive must act like no
// prior session, never like an error.
func (t *Tracker) read(ctx context.Context, key string) (*domain.CookingProgress, bool) {
	data, err := t.store.Get(ctx, key)
	if err != nil {
		return nil, false
	}
	var progress domain.CookingProgress
	if err := json.Unmarshal(data, &progress); err != nil {
		t.log.Warn("corrupt progress record at %q, ignoring: %v", key, err)
		return nil, false
	}
	if !progress.Language.Valid() {
		progress.Language = domain.LangEnglish
	}
	return &progress, true
}

func (t *Tracker) saveLanguage(ctx context.Context, lang domain.Language) {
	if err := t.store.Set(ctx, languageSlot, []byte(lang)); err != nil {
		t.log.Warn("saving language preference: %v", err)
	}
}

func (t *Tracker) emitCompleted(ctx context.Context, p *domain.CookingProgress) {
	event := domain.CompletionEvent{
		RecipeID:         p.RecipeID,
		RecipeKey:        p.RecipeKey,
		CurrentStepIndex: p.CurrentStepIndex,
		Completed:        true,
	}
	for _, l := range t.listeners {
		if err := l.RecipeCompleted(ctx, event); err != nil {
			t.log.Error("completion listener: %v", err)
		}
	}
}
