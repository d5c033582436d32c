package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrNotFound        = errors.New("not found")
	ErrNoActiveSession = errors.New("no active cooking session")
	ErrUnknownLanguage = errors.New("unknown language code")
)
