package domain

import (
	"strings"
	"time"
)

// CookingProgress is the resumable record of a user's position inside a
// recipe. It carries the full document content so a resumed session can
// re-derive its step list without the original document being around.
type CookingProgress struct {
	RecipeKey        string    `json:"recipeKey"`
	RecipeID         string    `json:"recipeId,omitempty"`
	Title            string    `json:"title"`
	Content          string    `json:"content"`
	CurrentStepIndex int       `json:"currentStep"`
	Language         Language  `json:"lang"`
	LastActiveAt     time.Time `json:"lastActiveAt"`
	Completed        bool      `json:"completed"`
}

// RecipeKey derives the persistence key for a recipe from its title:
// runs of whitespace collapse to a single underscore. Two recipes that
// share a title share a key; that collision is accepted, matching how
// the progress history is presented to the user.
func RecipeKey(title string) string {
	return strings.Join(strings.Fields(title), "_")
}

// CookStatus classifies a recipe's progress for history display. It is
// always derived from the archived record, never stored on its own.
type CookStatus int

const (
	StatusNotStarted CookStatus = iota
	StatusInProgress
	StatusCompleted
)

// String returns a human-readable cook status.
func (s CookStatus) String() string {
	switch s {
	case StatusNotStarted:
		return "not started"
	case StatusInProgress:
		return "in progress"
	case StatusCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// CompletionEvent is emitted exactly once when a session reaches its
// last step. The surrounding application forwards it to whatever keeps
// long-term cooking history; the core never makes that call itself.
type CompletionEvent struct {
	RecipeID         string
	RecipeKey        string
	CurrentStepIndex int
	Completed        bool
}
