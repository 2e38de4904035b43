package session

// Event is something that happened during a session flow.
// The set of events is closed; Name returns the action identifier.
type Event interface {
	Name() string
	isEvent()
}

// Action identifiers.
const (
	ActionLoginRequest       = "LOGIN_REQUEST"
	ActionLoginSuccess       = "LOGIN_SUCCESS"
	ActionLoginFailure       = "LOGIN_FAILURE"
	ActionLogoutSuccess      = "LOGOUT_SUCCESS"
	ActionAuthCheckRequest   = "AUTH_CHECK_REQUEST"
	ActionAuthCheckSuccess   = "AUTH_CHECK_SUCCESS"
	ActionAuthCheckFailure   = "AUTH_CHECK_FAILURE"
	ActionProfileEditRequest = "PROFILE_EDIT_REQUEST"
	ActionProfileEditSuccess = "PROFILE_EDIT_SUCCESS"
	ActionProfileEditError   = "PROFILE_EDIT_ERROR"
)

type (
	// LoginRequest is emitted before any I/O of a login attempt.
	LoginRequest struct{}

	// LoginSuccess carries the profile returned by a successful login.
	LoginSuccess struct{ Profile Profile }

	// LoginFailure carries the raw rejection body or transport error text.
	LoginFailure struct{ Reason string }

	// LogoutSuccess is emitted after every logout, whatever the server said.
	LogoutSuccess struct{}

	// AuthCheckRequest is emitted before a session check.
	AuthCheckRequest struct{}

	// AuthCheckSuccess carries the profile the stored token belongs to.
	AuthCheckSuccess struct{ Profile Profile }

	// AuthCheckFailure reports a failed session check. It has no reason.
	AuthCheckFailure struct{}

	// ProfileEditRequest is emitted before a profile update.
	ProfileEditRequest struct{}

	// ProfileEditSuccess carries the profile stored by the server.
	ProfileEditSuccess struct{ Profile Profile }

	// ProfileEditError reports a rejected profile update.
	ProfileEditError struct{ Reason string }
)

func (LoginRequest) Name() string       { return ActionLoginRequest }
func (LoginSuccess) Name() string       { return ActionLoginSuccess }
func (LoginFailure) Name() string       { return ActionLoginFailure }
func (LogoutSuccess) Name() string      { return ActionLogoutSuccess }
func (AuthCheckRequest) Name() string   { return ActionAuthCheckRequest }
func (AuthCheckSuccess) Name() string   { return ActionAuthCheckSuccess }
func (AuthCheckFailure) Name() string   { return ActionAuthCheckFailure }
func (ProfileEditRequest) Name() string { return ActionProfileEditRequest }
func (ProfileEditSuccess) Name() string { return ActionProfileEditSuccess }
func (ProfileEditError) Name() string   { return ActionProfileEditError }

func (LoginRequest) isEvent()       {}
func (LoginSuccess) isEvent()       {}
func (LoginFailure) isEvent()       {}
func (LogoutSuccess) isEvent()      {}
func (AuthCheckRequest) isEvent()   {}
func (AuthCheckSuccess) isEvent()   {}
func (AuthCheckFailure) isEvent()   {}
func (ProfileEditRequest) isEvent() {}
func (ProfileEditSuccess) isEvent() {}
func (ProfileEditError) isEvent()   {}
