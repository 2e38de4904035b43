package session

// State is the session status. Exactly one of Unauthenticated,
// Authenticating, Authenticated or Failed is active at a time.
type State interface {
	Name() string
	isState()
}

// State kind names.
const (
	KindUnauthenticated = "unauthenticated"
	KindAuthenticating  = "authenticating"
	KindAuthenticated   = "authenticated"
	KindFailed          = "failed"
)

// Unauthenticated is the initial state and the state after logout.
type Unauthenticated struct{}

// Authenticating means a login or session check is in flight.
type Authenticating struct{}

// Authenticated holds the profile of the signed-in user.
type Authenticated struct {
	Profile Profile
}

// Failed holds the reason the last login attempt was rejected.
type Failed struct {
	Reason string
}

func (Unauthenticated) Name() string { return KindUnauthenticated }
func (Authenticating) Name() string  { return KindAuthenticating }
func (Authenticated) Name() string   { return KindAuthenticated }
func (Failed) Name() string          { return KindFailed }

func (Unauthenticated) isState() {}
func (Authenticating) isState()  {}
func (Authenticated) isState()   {}
func (Failed) isState()          {}

// Initial returns the state a new session starts in.
func Initial() State {
	return Unauthenticated{}
}

// IsAuthenticated reports whether s is Authenticated.
func IsAuthenticated(s State) bool {
	_, ok := s.(Authenticated)
	return ok
}
