package session

import (
	"github.com/dmitrymomot/eapd/pkg/statemachine"
)

// transitions maps state kinds to their successors. Payloads are attached
// by Reduce; the table only decides which kind comes next.
var transitions = statemachine.MustNew(
	statemachine.WithEvents(statemachine.Any, Authenticating{},
		LoginRequest{}, AuthCheckRequest{}),
	statemachine.WithTransition(statemachine.Any, Unauthenticated{}, LogoutSuccess{}),
	statemachine.WithEvents(Authenticating{}, Authenticated{},
		LoginSuccess{}, AuthCheckSuccess{}),
	statemachine.WithTransition(Authenticating{}, Failed{}, LoginFailure{}),
	statemachine.WithTransition(Authenticating{}, Unauthenticated{}, AuthCheckFailure{}),
)

// Reduce returns the session state that follows current after evt.
// Events without a transition out of current leave it unchanged.
// A nil current is treated as the initial state.
func Reduce(current State, evt Event) State {
	if current == nil {
		current = Initial()
	}
	if evt == nil {
		return current
	}

	next, err := transitions.Next(current, evt)
	if err != nil {
		return current
	}

	switch next.(type) {
	case Authenticated:
		return Authenticated{Profile: profileOf(evt).Clone()}
	case Failed:
		return Failed{Reason: reasonOf(evt)}
	default:
		return next.(State)
	}
}

// ReduceAll folds events over current.
func ReduceAll(current State, events ...Event) State {
	for _, evt := range events {
		current = Reduce(current, evt)
	}
	return current
}

// Allowed returns the action identifiers that have a transition out of s.
func Allowed(s State) []string {
	return transitions.Events(s)
}

func profileOf(evt Event) Profile {
	switch e := evt.(type) {
	case LoginSuccess:
		return e.Profile
	case AuthCheckSuccess:
		return e.Profile
	case ProfileEditSuccess:
		return e.Profile
	}
	return Profile{}
}

func reasonOf(evt Event) string {
	switch e := evt.(type) {
	case LoginFailure:
		return e.Reason
	case ProfileEditError:
		return e.Reason
	}
	return ""
}
