package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// maxBodySize caps how much of a response body is read.
const maxBodySize = 1 << 20

// Client talks to the eAPD HTTP API and normalizes every outcome into either
// a decoded payload or an *Error.
type Client struct {
	baseURL    string
	http       *http.Client
	timeout    time.Duration
	authHeader string
	authPrefix string
	userAgent  string
	logger     *slog.Logger
}

// New creates a client for the API rooted at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		return nil, ErrEmptyBaseURL
	}

	c := &Client{
		baseURL:    baseURL,
		http:       http.DefaultClient,
		authHeader: "Authorization",
		authPrefix: "Bearer ",
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

type response struct {
	status int
	body   []byte
}

func (r response) ok() bool {
	return r.status >= 200 && r.status < 300
}

// do performs one request. Only transport failures are returned as errors;
// non-2xx statuses are left to the caller.
func (c *Client) do(ctx context.Context, method, path, token string, payload any) (response, error) {
	op := method + " " + path

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return response{}, &Error{Op: op, Kind: KindTransport, Err: fmt.Errorf("encode request: %w", err)}
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return response{}, &Error{Op: op, Kind: KindTransport, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if token != "" {
		req.Header.Set(c.authHeader, c.authPrefix+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.DebugContext(ctx, "api request failed",
			slog.String("op", op),
			slog.String("error", err.Error()),
		)
		return response{}, &Error{Op: op, Kind: KindTransport, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return response{}, &Error{Op: op, Kind: KindTransport, Status: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}

	c.logger.DebugContext(ctx, "api request",
		slog.String("op", op),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	return response{status: resp.StatusCode, body: data}, nil
}

// call performs a request and decodes a 2xx JSON body into out.
// Non-2xx responses become KindRejected errors, undecodable bodies KindMalformed.
func (c *Client) call(ctx context.Context, method, path, token string, payload, out any) error {
	op := method + " " + path

	resp, err := c.do(ctx, method, path, token, payload)
	if err != nil {
		return err
	}
	if !resp.ok() {
		return &Error{Op: op, Kind: KindRejected, Status: resp.status, Body: string(resp.body)}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.body, out); err != nil {
		return &Error{Op: op, Kind: KindMalformed, Status: resp.status, Body: string(resp.body), Err: err}
	}
	return nil
}

func malformed(op string, status int, reason string) *Error {
	return &Error{Op: op, Kind: KindMalformed, Status: status, Err: fmt.Errorf("%s", reason)}
}
