package apiclient

import (
	"context"
	"net/http"
)

// API paths.
const (
	PathLoginNonce = "/auth/login/nonce"
	PathLogin      = "/auth/login"
	PathLogout     = "/auth/logout"
	PathCheck      = "/auth/check"
	PathMe         = "/me"
)

// LoginResult is the payload of a successful credential exchange.
type LoginResult struct {
	Profile Profile `json:"user"`
	Token   string  `json:"token"`
}

type nonceRequest struct {
	Username string `json:"username"`
}

type nonceResponse struct {
	Nonce string `json:"nonce"`
}

type loginRequest struct {
	Username string `json:"username"` // carries the nonce, not the user name
	Password string `json:"password"`
}

type loginResponse struct {
	User  *Profile `json:"user"`
	Token string   `json:"token"`
}

// LoginNonce exchanges a username for a one-time login nonce.
func (c *Client) LoginNonce(ctx context.Context, username string) (string, error) {
	var out nonceResponse
	if err := c.call(ctx, http.MethodPost, PathLoginNonce, "", nonceRequest{Username: username}, &out); err != nil {
		return "", err
	}
	if out.Nonce == "" {
		return "", malformed(http.MethodPost+" "+PathLoginNonce, http.StatusOK, "missing nonce")
	}
	return out.Nonce, nil
}

// Login exchanges a nonce and password for the user's profile and a credential token.
func (c *Client) Login(ctx context.Context, nonce, password string) (LoginResult, error) {
	var out loginResponse
	if err := c.call(ctx, http.MethodPost, PathLogin, "", loginRequest{Username: nonce, Password: password}, &out); err != nil {
		return LoginResult{}, err
	}
	op := http.MethodPost + " " + PathLogin
	if out.Token == "" {
		return LoginResult{}, malformed(op, http.StatusOK, "missing token")
	}
	if out.User == nil {
		return LoginResult{}, malformed(op, http.StatusOK, "missing user")
	}
	return LoginResult{Profile: *out.User, Token: out.Token}, nil
}

// Logout ends the session on the server. Any response status is accepted;
// only transport failures are reported.
func (c *Client) Logout(ctx context.Context, token string) error {
	_, err := c.do(ctx, http.MethodGet, PathLogout, token, nil)
	return err
}

// CheckAuth verifies token and returns the profile it belongs to.
func (c *Client) CheckAuth(ctx context.Context, token string) (Profile, error) {
	var out Profile
	if err := c.call(ctx, http.MethodGet, PathCheck, token, nil, &out); err != nil {
		return Profile{}, err
	}
	return out, nil
}

// UpdateProfile replaces the authenticated user's editable profile fields
// and returns the stored profile.
func (c *Client) UpdateProfile(ctx context.Context, token string, p Profile) (Profile, error) {
	var out Profile
	if err := c.call(ctx, http.MethodPut, PathMe, token, p, &out); err != nil {
		return Profile{}, err
	}
	return out, nil
}
