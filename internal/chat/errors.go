package chat

import "errors"

var (
	ErrEmptySession = errors.New("session id is required")
	// ErrTurnFailed hides resolver failures from the caller; the session
	// stays usable.
	ErrTurnFailed = errors.New("chat turn failed")
)
