package apiclient

import (
	"log/slog"
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient uses the provided http.Client. Nil is ignored.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		if c != nil {
			cl.http = c
		}
	}
}

// WithTimeout bounds every request. Zero leaves requests unbounded.
func WithTimeout(d time.Duration) Option {
	return func(cl *Client) { cl.timeout = d }
}

// WithAuthHeader sets the header name and value prefix used to carry the
// credential token. Defaults to "Authorization" and "Bearer ".
func WithAuthHeader(name, prefix string) Option {
	return func(cl *Client) {
		if name != "" {
			cl.authHeader = name
		}
		cl.authPrefix = prefix
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(cl *Client) { cl.userAgent = ua }
}

// WithLogger supplies a logger for request tracing at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(cl *Client) {
		if l != nil {
			cl.logger = l
		}
	}
}
