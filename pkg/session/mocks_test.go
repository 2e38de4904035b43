package session_test

import (
	"context"
	"errors"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/dmitrymomot/eapd/pkg/apiclient"
	"github.com/dmitrymomot/eapd/pkg/session"
	"github.com/dmitrymomot/eapd/pkg/tokenstore"
)

// MockAPIClient is a mock implementation of session.APIClient.
type MockAPIClient struct {
	mock.Mock
}

func (m *MockAPIClient) LoginNonce(ctx context.Context, username string) (string, error) {
	args := m.Called(ctx, username)
	return args.String(0), args.Error(1)
}

func (m *MockAPIClient) Login(ctx context.Context, nonce, password string) (apiclient.LoginResult, error) {
	args := m.Called(ctx, nonce, password)
	return args.Get(0).(apiclient.LoginResult), args.Error(1)
}

func (m *MockAPIClient) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockAPIClient) CheckAuth(ctx context.Context, token string) (session.Profile, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(session.Profile), args.Error(1)
}

func (m *MockAPIClient) UpdateProfile(ctx context.Context, token string, p session.Profile) (session.Profile, error) {
	args := m.Called(ctx, token, p)
	return args.Get(0).(session.Profile), args.Error(1)
}

// MockTokenStore is a mock implementation of tokenstore.Store.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockTokenStore) Set(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockTokenStore) Remove(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// recorder collects dispatched events.
type recorder struct {
	mu     sync.Mutex
	events []session.Event
}

func (r *recorder) Dispatch(_ context.Context, evt session.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, evt)
}

func (r *recorder) Events() []session.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]session.Event(nil), r.events...)
}

func rejected(status int, body string) error {
	return &apiclient.Error{Op: "test", Kind: apiclient.KindRejected, Status: status, Body: body}
}

func transportErr() error {
	return &apiclient.Error{Op: "test", Kind: apiclient.KindTransport, Err: errors.New("connection refused")}
}

var _ tokenstore.Store = (*MockTokenStore)(nil)
