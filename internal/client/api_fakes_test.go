package client_test

import (
	"context"
	"sync"

	"github.com/dmitrymomot/eapd/internal/client"
	"github.com/dmitrymomot/eapd/pkg/apd"
	"github.com/dmitrymomot/eapd/pkg/apiclient"
)

// recordingAPI counts document loads and can fail every check with checkErr.
type recordingAPI struct {
	client.API
	checkErr error

	mu    sync.Mutex
	lists int
}

func (a *recordingAPI) CheckAuth(ctx context.Context, token string) (apiclient.Profile, error) {
	if a.checkErr != nil {
		return apiclient.Profile{}, a.checkErr
	}
	return a.API.CheckAuth(ctx, token)
}

func (a *recordingAPI) ListAPDs(ctx context.Context, token string) ([]apd.Summary, error) {
	a.mu.Lock()
	a.lists++
	a.mu.Unlock()
	return a.API.ListAPDs(ctx, token)
}

func (a *recordingAPI) listCalls() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lists
}

// slowAPI blocks every check until release is closed.
type slowAPI struct {
	release chan struct{}
}

func (s *slowAPI) LoginNonce(context.Context, string) (string, error) { return "", nil }

func (s *slowAPI) Login(context.Context, string, string) (apiclient.LoginResult, error) {
	return apiclient.LoginResult{}, nil
}

func (s *slowAPI) Logout(context.Context, string) error { return nil }

func (s *slowAPI) CheckAuth(ctx context.Context, _ string) (apiclient.Profile, error) {
	<-s.release
	return apiclient.Profile{Name: "late"}, nil
}

func (s *slowAPI) UpdateProfile(_ context.Context, _ string, p apiclient.Profile) (apiclient.Profile, error) {
	return p, nil
}

func (s *slowAPI) ListAPDs(context.Context, string) ([]apd.Summary, error) { return nil, nil }
