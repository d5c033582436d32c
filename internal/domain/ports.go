package domain

import "context"

// ProgressStore is the keyed persistence collaborator for progress
// records. Values are opaque bytes (the session layer owns the
// encoding) so implementations can be in-memory, a JSON file, or any
// remote key-value backend.
type ProgressStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// RecipeSource provides recipe documents. Implementations can be
// in-memory (built-in samples), file-based, or API-backed.
type RecipeSource interface {
	List(ctx context.Context) ([]RecipeDocument, error)
	Get(ctx context.Context, id string) (*RecipeDocument, error)
}

// CompletionListener receives the event fired when a session reaches
// its last step. Implementations forward it to a history backend, log
// it, or ignore it.
type CompletionListener interface {
	RecipeCompleted(ctx context.Context, event CompletionEvent) error
}

// CompletionListenerFunc adapts a plain function to CompletionListener.
type CompletionListenerFunc func(ctx context.Context, event CompletionEvent) error

// RecipeCompleted calls f.
func (f CompletionListenerFunc) RecipeCompleted(ctx context.Context, event CompletionEvent) error {
	return f(ctx, event)
}

// Notifier delivers messages to the user. Implementations can write to
// stdout, the terminal UI, or push notifications.
type Notifier interface {
	Notify(ctx context.Context, message string) error
	NotifyUrgent(ctx context.Context, message string) error
}
