package common

import "errors"

// Command-boundary error taxonomy. All three are recoverable: callers
// log them and surface a no-op instead of taking the feed down.
var (
	ErrNotFound          = errors.New("notification not found")
	ErrUnknownAction     = errors.New("unknown action")
	ErrInvalidPreference = errors.New("invalid preference patch")
)
