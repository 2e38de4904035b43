// Package statemachine provides an immutable, pure transition table for
// finite-state-machine style reducers.
//
// The package revolves around two minimal interfaces – State and Event – that
// give you full freedom to model domain specific states and events while the
// table handles:
//  1. Transition registration with duplicate detection
//  2. Lookup of the target state for a (state, event) pair
//  3. Wildcard source states via Any
//
// A Table holds no current state. Callers keep their own state value and ask
// the table where an event leads, which makes the table suitable for pure
// reducer functions that must be deterministic and replayable.
//
// # Usage
//
//	type event string
//
//	func (e event) Name() string { return string(e) }
//
//	const (
//	    Idle  = statemachine.StringState("idle")
//	    Busy  = statemachine.StringState("busy")
//	    Start = event("start")
//	    Reset = event("reset")
//	)
//
//	table := statemachine.MustNew(
//	    statemachine.WithTransition(Idle, Busy, Start),
//	    statemachine.WithTransition(statemachine.Any, Idle, Reset),
//	)
//
//	next, err := table.Next(Idle, Start) // Busy, nil
//
// # Error Handling
//
//	if errors.Is(err, statemachine.ErrNoTransition) { /* keep current state */ }
//
// New wraps ErrDuplicateTransition when a pair is registered twice.
//
// # Concurrency
//
// Tables are read-only after New returns and are safe for concurrent use
// without locking.
package statemachine
