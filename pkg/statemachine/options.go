package statemachine

import (
	"fmt"
)

// Option configures a transition table during construction.
type Option func(*Table) error

// New builds a transition table from the given options.
func New(opts ...Option) (*Table, error) {
	t := &Table{transitions: make(map[string]map[string]State)}

	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// MustNew builds a transition table and panics if any option fails to apply.
// Tables are normally package-level values, so a broken table should stop startup.
func MustNew(opts ...Option) *Table {
	t, err := New(opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to create transition table: %v", err))
	}
	return t
}

// WithTransition adds a single transition to the table.
func WithTransition(from, to State, event Event) Option {
	return func(t *Table) error {
		return t.add(from, to, event)
	}
}

// WithEvents adds one transition per event, all from the same source to the same target.
func WithEvents(from, to State, events ...Event) Option {
	return func(t *Table) error {
		for _, evt := range events {
			if err := t.add(from, to, evt); err != nil {
				return err
			}
		}
		return nil
	}
}
