package arena

import "errors"

var (
	// ErrExhausted signals that an arena has reached its limit of live slots.
	ErrExhausted = errors.New("arena: capacity exhausted")
	// ErrInvalidLimit signals a limit which cannot be honoured.
	ErrInvalidLimit = errors.New("arena: invalid limit")
)
