package signals

import "errors"

var (
	// ErrInvalidListener indicates a nil listener handle was passed to an
	// attach or detach operation.
	ErrInvalidListener = errors.New("signals: invalid listener")
	// ErrConflictingOnceState indicates the listener is already bound with a
	// different once flag; an identity cannot be both repeating and one-shot.
	ErrConflictingOnceState = errors.New("signals: listener bound with conflicting once state")
	// ErrDisposed indicates the signal was used after Dispose.
	ErrDisposed = errors.New("signals: signal disposed")
)
