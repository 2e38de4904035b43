package session

import "github.com/dmitrymomot/eapd/pkg/apiclient"

// Profile is the authenticated user's profile.
type Profile = apiclient.Profile

// ProfileState is the user profile slice of client state.
type ProfileState struct {
	Data     Profile
	Fetching bool
	Loaded   bool
	Error    bool
}

// InitialProfile returns an empty, unloaded profile.
func InitialProfile() ProfileState {
	return ProfileState{}
}

// ReduceProfile returns the profile state that follows current after evt.
func ReduceProfile(current ProfileState, evt Event) ProfileState {
	switch evt.(type) {
	case AuthCheckSuccess, LoginSuccess, ProfileEditSuccess:
		return ProfileState{Data: profileOf(evt).Clone(), Loaded: true}
	case ProfileEditRequest:
		current.Fetching = true
		current.Error = false
		return current
	case ProfileEditError:
		current.Fetching = false
		current.Error = true
		return current
	case LogoutSuccess:
		return InitialProfile()
	}
	return current
}

// SelectState returns the state or agency the user acts for.
func SelectState(p ProfileState) string {
	return p.Data.State
}
