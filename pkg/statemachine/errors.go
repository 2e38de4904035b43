package statemachine

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTransition = errors.New("statemachine: transition fields cannot be nil")
	ErrInvalidEvent      = errors.New("statemachine: nil event")
	ErrInvalidState      = errors.New("statemachine: nil state")

	// ErrNoTransition is wrapped by Next when neither the state nor Any
	// has a transition for the event.
	ErrNoTransition = errors.New("statemachine: no transition")
	// ErrDuplicateTransition is wrapped by New when a state and event pair
	// is registered twice.
	ErrDuplicateTransition = errors.New("statemachine: transition already defined")
)

// TransitionError names the state and event of a failed lookup or registration.
type TransitionError struct {
	State string
	Event string
	err   error
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%v from %q on %q", e.err, e.State, e.Event)
}

func (e *TransitionError) Unwrap() error { return e.err }
