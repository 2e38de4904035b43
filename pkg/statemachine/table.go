package statemachine

// Table is an immutable transition table.
// It holds no current state: Next is a pure lookup, so a Table can be shared
// between goroutines and used inside reducers without locking.
// Lookups use a nested map structure: [fromState][event]toState.
type Table struct {
	transitions map[string]map[string]State
}

// Next returns the target state for the given source state and event.
// Exact source matches win over transitions registered with Any.
func (t *Table) Next(from State, event Event) (State, error) {
	if from == nil {
		return nil, ErrInvalidState
	}
	if event == nil {
		return nil, ErrInvalidEvent
	}

	if to, ok := t.lookup(from.Name(), event.Name()); ok {
		return to, nil
	}
	if to, ok := t.lookup(Any.Name(), event.Name()); ok {
		return to, nil
	}

	return nil, &TransitionError{State: from.Name(), Event: event.Name(), err: ErrNoTransition}
}

func (t *Table) lookup(from, event string) (State, bool) {
	byEvent, ok := t.transitions[from]
	if !ok {
		return nil, false
	}
	to, ok := byEvent[event]
	return to, ok
}

func (t *Table) add(from, to State, event Event) error {
	if from == nil || to == nil || event == nil {
		return ErrInvalidTransition
	}

	fromName := from.Name()
	eventName := event.Name()

	if _, ok := t.transitions[fromName]; !ok {
		t.transitions[fromName] = make(map[string]State)
	}
	if _, exists := t.transitions[fromName][eventName]; exists {
		return &TransitionError{State: fromName, Event: eventName, err: ErrDuplicateTransition}
	}

	t.transitions[fromName][eventName] = to
	return nil
}
