package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/eapd/modules/auth"
	"github.com/dmitrymomot/eapd/pkg/apiclient"
	"github.com/dmitrymomot/eapd/pkg/ratelimiter"
	"github.com/dmitrymomot/eapd/pkg/session"
	"github.com/dmitrymomot/eapd/pkg/tokenstore"
)

func newServer(t *testing.T) (*apiclient.Client, *auth.Service) {
	t.Helper()
	svc, _ := newService(t, newClock())
	seedUser(t, svc)

	h := auth.NewHandler(svc, nil)
	r := chi.NewRouter()
	h.AuthRoutes(r)
	h.MeRoutes(r)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	client, err := apiclient.New(srv.URL)
	require.NoError(t, err)
	return client, svc
}

func TestHandler_LoginFlow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	client, _ := newServer(t)

	nonce, err := client.LoginNonce(ctx, "em@il.com")
	require.NoError(t, err)

	res, err := client.Login(ctx, nonce, "password")
	require.NoError(t, err)
	assert.Equal(t, "moop", res.Profile.Name)
	assert.Equal(t, "em@il.com", res.Profile.Email)
	assert.Len(t, strings.Split(res.Token, "."), 3)

	profile, err := client.CheckAuth(ctx, res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.Profile.ID, profile.ID)

	t.Run("replayed nonce", func(t *testing.T) {
		_, err := client.Login(ctx, nonce, "password")
		require.ErrorIs(t, err, apiclient.ErrAuthRejected)
		assert.Equal(t, http.StatusUnauthorized, apiclient.StatusCode(err))
		assert.Equal(t, auth.ErrNonceUsed.Error(), apiclient.Reason(err))
	})

	t.Run("logout revokes the token", func(t *testing.T) {
		require.NoError(t, client.Logout(ctx, res.Token))

		_, err := client.CheckAuth(ctx, res.Token)
		require.ErrorIs(t, err, apiclient.ErrAuthRejected)
		assert.Equal(t, http.StatusUnauthorized, apiclient.StatusCode(err))
	})
}

func TestHandler_Rejections(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	client, _ := newServer(t)

	t.Run("wrong password reason is the body verbatim", func(t *testing.T) {
		nonce, err := client.LoginNonce(ctx, "em@il.com")
		require.NoError(t, err)

		_, err = client.Login(ctx, nonce, "wrong")
		require.ErrorIs(t, err, apiclient.ErrAuthRejected)
		assert.Equal(t, auth.ErrInvalidCredentials.Error(), apiclient.Reason(err))
	})

	t.Run("empty username", func(t *testing.T) {
		_, err := client.LoginNonce(ctx, "")
		require.ErrorIs(t, err, apiclient.ErrAuthRejected)
		assert.Equal(t, http.StatusBadRequest, apiclient.StatusCode(err))
	})

	t.Run("check without token", func(t *testing.T) {
		_, err := client.CheckAuth(ctx, "")
		require.ErrorIs(t, err, apiclient.ErrAuthRejected)
		assert.Equal(t, http.StatusUnauthorized, apiclient.StatusCode(err))
	})

	t.Run("logout without token still succeeds", func(t *testing.T) {
		assert.NoError(t, client.Logout(ctx, ""))
	})
}

func TestHandler_InvalidBody(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t, newClock())
	r := chi.NewRouter()
	auth.NewHandler(svc, nil).AuthRoutes(r)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), auth.ErrInvalidRequest.Error()))
}

func TestHandler_UpdateProfile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	client, _ := newServer(t)

	nonce, err := client.LoginNonce(ctx, "em@il.com")
	require.NoError(t, err)
	res, err := client.Login(ctx, nonce, "password")
	require.NoError(t, err)

	edit := res.Profile
	edit.Name = "bloop"
	edit.Position = "Director"

	updated, err := client.UpdateProfile(ctx, res.Token, edit)
	require.NoError(t, err)
	assert.Equal(t, "bloop", updated.Name)
	assert.Equal(t, "Director", updated.Position)

	again, err := client.CheckAuth(ctx, res.Token)
	require.NoError(t, err)
	assert.Equal(t, "bloop", again.Name)

	_, err = client.UpdateProfile(ctx, "", edit)
	assert.ErrorIs(t, err, apiclient.ErrAuthRejected)
}

// TestSessionControllerAgainstServer drives the client state machine through
// a full lifecycle against the real handlers.
func TestSessionControllerAgainstServer(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	client, _ := newServer(t)

	tokens := tokenstore.NewMemoryStore()
	store := session.NewStore()
	defer store.Close()
	ctrl := session.NewController(client, tokens, store.Dispatch)

	ctrl.Login(ctx, "em@il.com", "wrong")
	assert.Equal(t, session.Failed{Reason: auth.ErrInvalidCredentials.Error()}, store.State().Session)
	assert.Empty(t, tokens.Snapshot())

	ctrl.Login(ctx, "em@il.com", "password")
	state := store.State()
	require.True(t, session.IsAuthenticated(state.Session))
	assert.Equal(t, "moop", state.Session.(session.Authenticated).Profile.Name)
	tok, err := tokens.Get(ctx, tokenstore.TokenKey)
	require.NoError(t, err)

	ctrl.CheckAuth(ctx)
	assert.True(t, session.IsAuthenticated(store.State().Session))
	assert.True(t, store.State().Profile.Loaded)

	edit := store.State().Profile.Data
	edit.Phone = "555-0100"
	ctrl.EditProfile(ctx, edit)
	assert.Equal(t, session.ActionProfileEditSuccess, store.State().Event)
	assert.Equal(t, "555-0100", store.State().Profile.Data.Phone)

	ctrl.Logout(ctx)
	assert.Equal(t, session.Unauthenticated{}, store.State().Session)
	assert.Empty(t, tokens.Snapshot())

	_, err = client.CheckAuth(ctx, tok)
	assert.ErrorIs(t, err, apiclient.ErrAuthRejected)

	ctrl.CheckAuth(ctx)
	assert.Equal(t, session.Unauthenticated{}, store.State().Session)
}

func TestHandler_ThrottledLogin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newService(t, newClock())
	seedUser(t, svc)

	store := ratelimiter.NewMemoryStore(ratelimiter.WithSweepInterval(0))
	t.Cleanup(store.Close)
	limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{Capacity: 2, RefillRate: 1, RefillInterval: time.Hour})
	require.NoError(t, err)

	h := auth.NewHandler(svc, nil, auth.WithThrottle(ratelimiter.Middleware(limiter, ratelimiter.ByClientIP, nil)))
	r := chi.NewRouter()
	h.AuthRoutes(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	client, err := apiclient.New(srv.URL)
	require.NoError(t, err)

	nonce, err := client.LoginNonce(ctx, "em@il.com")
	require.NoError(t, err)
	_, err = client.Login(ctx, nonce, "wrong")
	require.ErrorIs(t, err, apiclient.ErrAuthRejected)
	assert.Equal(t, http.StatusUnauthorized, apiclient.StatusCode(err))

	_, err = client.LoginNonce(ctx, "em@il.com")
	require.ErrorIs(t, err, apiclient.ErrAuthRejected)
	assert.Equal(t, http.StatusTooManyRequests, apiclient.StatusCode(err))
	assert.Contains(t, apiclient.Reason(err), "too many attempts")

	_, err = client.CheckAuth(ctx, "")
	assert.Equal(t, http.StatusUnauthorized, apiclient.StatusCode(err), "check is not throttled")
}
