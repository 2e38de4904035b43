package auth_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/eapd/modules/auth"
	"github.com/dmitrymomot/eapd/pkg/apiclient"
)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func newClock() *clock { return &clock{now: time.Now()} }

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func testConfig() auth.Config {
	return auth.Config{
		SigningKey: "test-signing-key",
		Issuer:     "eapd-test",
		TokenTTL:   time.Hour,
		NonceTTL:   time.Minute,
		CacheSize:  128,
		BcryptCost: 4,
	}
}

func newService(t *testing.T, clk *clock) (*auth.Service, *auth.MemoryStorage) {
	t.Helper()
	storage := auth.NewMemoryStorage()
	svc, err := auth.NewService(testConfig(), storage, auth.WithClock(clk.Now))
	require.NoError(t, err)
	return svc, storage
}

func seedUser(t *testing.T, svc *auth.Service) *auth.User {
	t.Helper()
	user, err := svc.Register(context.Background(), "em@il.com", "password", apiclient.Profile{
		Name:  "moop",
		State: "ak",
	})
	require.NoError(t, err)
	return user
}
