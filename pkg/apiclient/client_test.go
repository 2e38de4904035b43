package apiclient_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/eapd/pkg/apiclient"
)

type recorded struct {
	method string
	path   string
	auth   string
	body   map[string]any
}

type recorder struct {
	mu    sync.Mutex
	calls []recorded
}

func (r *recorder) add(rec recorded) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, rec)
}

func (r *recorder) all() []recorded {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]recorded(nil), r.calls...)
}

func newServer(t *testing.T, handler func(w http.ResponseWriter, r *http.Request)) (*apiclient.Client, *recorder) {
	t.Helper()
	calls := &recorder{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := recorded{method: r.Method, path: r.URL.Path, auth: r.Header.Get("Authorization")}
		if data, _ := io.ReadAll(r.Body); len(data) > 0 {
			_ = json.Unmarshal(data, &rec.body)
		}
		calls.add(rec)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	client, err := apiclient.New(srv.URL + "/")
	require.NoError(t, err)
	return client, calls
}

func reply(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestNew(t *testing.T) {
	t.Parallel()

	_, err := apiclient.New("")
	assert.ErrorIs(t, err, apiclient.ErrEmptyBaseURL)

	c, err := apiclient.New("http://api.local///")
	require.NoError(t, err)
	assert.Equal(t, "http://api.local", c.BaseURL())
}

func TestLoginNonce(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		client, calls := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			reply(w, http.StatusOK, `{"nonce":"123abc"}`)
		})

		nonce, err := client.LoginNonce(context.Background(), "jane")
		require.NoError(t, err)
		assert.Equal(t, "123abc", nonce)

		require.Len(t, calls.all(), 1)
		assert.Equal(t, http.MethodPost, calls.all()[0].method)
		assert.Equal(t, apiclient.PathLoginNonce, calls.all()[0].path)
		assert.Equal(t, "jane", calls.all()[0].body["username"])
		assert.Empty(t, calls.all()[0].auth)
	})

	t.Run("rejected keeps body as reason", func(t *testing.T) {
		t.Parallel()
		client, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			reply(w, http.StatusUnauthorized, "foo")
		})

		_, err := client.LoginNonce(context.Background(), "jane")
		require.Error(t, err)
		assert.ErrorIs(t, err, apiclient.ErrAuthRejected)
		assert.Equal(t, "foo", apiclient.Reason(err))
		assert.Equal(t, http.StatusUnauthorized, apiclient.StatusCode(err))
	})

	t.Run("missing nonce is malformed", func(t *testing.T) {
		t.Parallel()
		client, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			reply(w, http.StatusOK, `{}`)
		})

		_, err := client.LoginNonce(context.Background(), "jane")
		assert.ErrorIs(t, err, apiclient.ErrMalformedResponse)
	})

	t.Run("invalid json is malformed", func(t *testing.T) {
		t.Parallel()
		client, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			reply(w, http.StatusOK, `not json`)
		})

		_, err := client.LoginNonce(context.Background(), "jane")
		assert.ErrorIs(t, err, apiclient.ErrMalformedResponse)
		assert.NotErrorIs(t, err, apiclient.ErrAuthRejected)
	})
}

func TestLogin(t *testing.T) {
	t.Parallel()

	t.Run("sends nonce as username", func(t *testing.T) {
		t.Parallel()
		client, calls := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			reply(w, http.StatusOK, `{"user":{"name":"moop"},"token":"xxx.yyy.zzz"}`)
		})

		res, err := client.Login(context.Background(), "123abc", "secret")
		require.NoError(t, err)
		assert.Equal(t, "xxx.yyy.zzz", res.Token)
		assert.Equal(t, "moop", res.Profile.Name)

		require.Len(t, calls.all(), 1)
		assert.Equal(t, apiclient.PathLogin, calls.all()[0].path)
		assert.Equal(t, "123abc", calls.all()[0].body["username"])
		assert.Equal(t, "secret", calls.all()[0].body["password"])
	})

	t.Run("rejected", func(t *testing.T) {
		t.Parallel()
		client, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			reply(w, http.StatusUnauthorized, "foo")
		})

		_, err := client.Login(context.Background(), "123abc", "bad")
		assert.ErrorIs(t, err, apiclient.ErrAuthRejected)
		assert.Equal(t, "foo", apiclient.Reason(err))
	})

	t.Run("missing token is malformed", func(t *testing.T) {
		t.Parallel()
		client, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			reply(w, http.StatusOK, `{"user":{"name":"moop"}}`)
		})

		_, err := client.Login(context.Background(), "123abc", "secret")
		assert.ErrorIs(t, err, apiclient.ErrMalformedResponse)
	})

	t.Run("missing user is malformed", func(t *testing.T) {
		t.Parallel()
		client, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			reply(w, http.StatusOK, `{"token":"xxx.yyy.zzz"}`)
		})

		_, err := client.Login(context.Background(), "123abc", "secret")
		assert.ErrorIs(t, err, apiclient.ErrMalformedResponse)
	})
}

func TestCheckAuth(t *testing.T) {
	t.Parallel()

	t.Run("attaches bearer token", func(t *testing.T) {
		t.Parallel()
		client, calls := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			reply(w, http.StatusOK, `{"name":"bloop","activities":[]}`)
		})

		p, err := client.CheckAuth(context.Background(), "xxx.yyy.zzz")
		require.NoError(t, err)
		assert.Equal(t, "bloop", p.Name)
		assert.Contains(t, p.Extra, "activities")

		require.Len(t, calls.all(), 1)
		assert.Equal(t, http.MethodGet, calls.all()[0].method)
		assert.Equal(t, "Bearer xxx.yyy.zzz", calls.all()[0].auth)
	})

	t.Run("no token sends no header", func(t *testing.T) {
		t.Parallel()
		client, calls := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			reply(w, http.StatusUnauthorized, "")
		})

		_, err := client.CheckAuth(context.Background(), "")
		assert.ErrorIs(t, err, apiclient.ErrAuthRejected)
		require.Len(t, calls.all(), 1)
		assert.Empty(t, calls.all()[0].auth)
	})

	t.Run("forbidden", func(t *testing.T) {
		t.Parallel()
		client, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			reply(w, http.StatusForbidden, "")
		})

		_, err := client.CheckAuth(context.Background(), "xxx.yyy.zzz")
		assert.ErrorIs(t, err, apiclient.ErrAuthRejected)
		assert.Equal(t, http.StatusForbidden, apiclient.StatusCode(err))
	})
}

func TestLogout(t *testing.T) {
	t.Parallel()

	t.Run("any status is accepted", func(t *testing.T) {
		t.Parallel()
		client, calls := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			reply(w, http.StatusInternalServerError, "boom")
		})

		assert.NoError(t, client.Logout(context.Background(), "xxx.yyy.zzz"))
		require.Len(t, calls.all(), 1)
		assert.Equal(t, apiclient.PathLogout, calls.all()[0].path)
		assert.Equal(t, "Bearer xxx.yyy.zzz", calls.all()[0].auth)
	})

	t.Run("transport failure", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		client, err := apiclient.New(url)
		require.NoError(t, err)

		err = client.Logout(context.Background(), "t")
		assert.ErrorIs(t, err, apiclient.ErrTransportFailure)
		assert.Zero(t, apiclient.StatusCode(err))
	})
}

func TestUpdateProfile(t *testing.T) {
	t.Parallel()

	client, calls := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		data, _ := json.Marshal(map[string]any{"name": "new name", "email": "jane@example.com"})
		reply(w, http.StatusOK, string(data))
	})

	p, err := client.UpdateProfile(context.Background(), "tok", apiclient.Profile{Name: "new name"})
	require.NoError(t, err)
	assert.Equal(t, "new name", p.Name)
	assert.Equal(t, "jane@example.com", p.Email)

	require.Len(t, calls.all(), 1)
	assert.Equal(t, http.MethodPut, calls.all()[0].method)
	assert.Equal(t, apiclient.PathMe, calls.all()[0].path)
	assert.Equal(t, "new name", calls.all()[0].body["name"])
}

func TestOptions(t *testing.T) {
	t.Parallel()

	t.Run("custom auth header and user agent", func(t *testing.T) {
		t.Parallel()
		headers := make(chan http.Header, 1)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			headers <- r.Header.Clone()
			reply(w, http.StatusOK, `{}`)
		}))
		t.Cleanup(srv.Close)

		client, err := apiclient.New(srv.URL,
			apiclient.WithAuthHeader("X-Session", ""),
			apiclient.WithUserAgent("eapd-test"),
		)
		require.NoError(t, err)

		_, err = client.CheckAuth(context.Background(), "abc")
		require.NoError(t, err)
		got := <-headers
		assert.Equal(t, "abc", got.Get("X-Session"))
		assert.Equal(t, "eapd-test", got.Get("User-Agent"))
	})

	t.Run("timeout surfaces as transport failure", func(t *testing.T) {
		t.Parallel()
		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}))
		t.Cleanup(func() {
			close(release)
			srv.Close()
		})

		client, err := apiclient.NewFromConfig(apiclient.Config{BaseURL: srv.URL, Timeout: 50 * time.Millisecond})
		require.NoError(t, err)

		_, err = client.CheckAuth(context.Background(), "abc")
		assert.ErrorIs(t, err, apiclient.ErrTransportFailure)
		assert.True(t, errors.Is(err, context.DeadlineExceeded))
	})
}
