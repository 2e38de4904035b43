package session

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dmitrymomot/eapd/pkg/apiclient"
	"github.com/dmitrymomot/eapd/pkg/logger"
	"github.com/dmitrymomot/eapd/pkg/tokenstore"
)

// APIClient is the subset of the eAPD API the controller drives.
// *apiclient.Client satisfies it.
type APIClient interface {
	LoginNonce(ctx context.Context, username string) (string, error)
	Login(ctx context.Context, nonce, password string) (apiclient.LoginResult, error)
	Logout(ctx context.Context, token string) error
	CheckAuth(ctx context.Context, token string) (Profile, error)
	UpdateProfile(ctx context.Context, token string, p Profile) (Profile, error)
}

// Dispatcher receives the events a flow emits, in order.
// Store.Dispatch satisfies it.
type Dispatcher func(ctx context.Context, evt Event)

// Controller runs the login, logout, check and profile edit flows.
// Outcomes are reported only through dispatched events.
type Controller struct {
	api             APIClient
	tokens          tokenstore.Store
	dispatch        Dispatcher
	onAuthenticated func(context.Context, Profile)
	logger          *slog.Logger
}

// NewController creates a controller. api must not be nil. A nil token store
// keeps the token in memory only; a nil dispatcher discards events.
func NewController(api APIClient, tokens tokenstore.Store, dispatch Dispatcher, opts ...ControllerOption) *Controller {
	if tokens == nil {
		tokens = tokenstore.NewMemoryStore()
	}
	if dispatch == nil {
		dispatch = func(context.Context, Event) {}
	}

	c := &Controller{
		api:      api,
		tokens:   tokens,
		dispatch: dispatch,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Login authenticates with a two-step nonce exchange.
// Emits LoginRequest, then LoginSuccess or LoginFailure.
func (c *Controller) Login(ctx context.Context, username, password string) {
	c.emit(ctx, LoginRequest{})

	nonce, err := c.api.LoginNonce(ctx, username)
	if err != nil {
		c.emit(ctx, LoginFailure{Reason: apiclient.Reason(err)})
		return
	}

	res, err := c.api.Login(ctx, nonce, password)
	if err != nil {
		c.emit(ctx, LoginFailure{Reason: apiclient.Reason(err)})
		return
	}

	if err := c.tokens.Set(ctx, tokenstore.TokenKey, res.Token); err != nil {
		c.logger.ErrorContext(ctx, "failed to persist credential token", logger.Error(err))
	}

	c.emit(ctx, LoginSuccess{Profile: res.Profile})
	c.authenticated(ctx, res.Profile)
}

// Logout ends the session. The stored token is always removed and
// LogoutSuccess always emitted, whatever the server answers.
func (c *Controller) Logout(ctx context.Context) {
	token := c.token(ctx)

	if err := c.api.Logout(ctx, token); err != nil {
		c.logger.DebugContext(ctx, "logout request failed", logger.Error(err))
	}

	if err := c.tokens.Remove(ctx, tokenstore.TokenKey); err != nil {
		c.logger.ErrorContext(ctx, "failed to remove credential token", logger.Error(err))
	}

	c.emit(ctx, LogoutSuccess{})
}

// CheckAuth verifies the stored token with the server.
// Emits AuthCheckRequest, then AuthCheckSuccess or AuthCheckFailure.
// Without a stored token the check is still sent, without credentials.
func (c *Controller) CheckAuth(ctx context.Context) {
	c.emit(ctx, AuthCheckRequest{})

	profile, err := c.api.CheckAuth(ctx, c.token(ctx))
	if err != nil {
		c.logger.DebugContext(ctx, "session check failed", logger.Error(err))
		c.emit(ctx, AuthCheckFailure{})
		return
	}

	c.emit(ctx, AuthCheckSuccess{Profile: profile})
	c.authenticated(ctx, profile)
}

// EditProfile stores p as the user's profile.
// Emits ProfileEditRequest, then ProfileEditSuccess or ProfileEditError.
func (c *Controller) EditProfile(ctx context.Context, p Profile) {
	c.emit(ctx, ProfileEditRequest{})

	updated, err := c.api.UpdateProfile(ctx, c.token(ctx), p)
	if err != nil {
		c.emit(ctx, ProfileEditError{Reason: apiclient.Reason(err)})
		return
	}

	c.emit(ctx, ProfileEditSuccess{Profile: updated})
}

func (c *Controller) emit(ctx context.Context, evt Event) {
	c.logger.DebugContext(ctx, "session event", logger.Event(evt.Name()))
	c.dispatch(ctx, evt)
}

func (c *Controller) authenticated(ctx context.Context, p Profile) {
	if c.onAuthenticated != nil {
		c.onAuthenticated(ctx, p)
	}
}

// token returns the stored credential token or "" when there is none.
func (c *Controller) token(ctx context.Context) string {
	token, err := c.tokens.Get(ctx, tokenstore.TokenKey)
	if err != nil {
		if !errors.Is(err, tokenstore.ErrNotFound) {
			c.logger.ErrorContext(ctx, "failed to read credential token", logger.Error(err))
		}
		return ""
	}
	return token
}
