package statemachine

// State represents a state in the transition table.
type State interface {
	Name() string
}

// Event represents an event that can trigger a state transition.
type Event interface {
	Name() string
}

// Any matches every source state. Exact transitions take precedence over Any.
const Any = StringState("*")

// StringState is a State named by its value.
type StringState string

func (s StringState) Name() string {
	return string(s)
}
