package apiclient

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/eapd/pkg/apd"
)

// PathAPDs lists the documents of the signed-in user's state.
const PathAPDs = "/apds"

// ListAPDs returns the dashboard documents visible to token.
func (c *Client) ListAPDs(ctx context.Context, token string) ([]apd.Summary, error) {
	var out []apd.Summary
	if err := c.call(ctx, http.MethodGet, PathAPDs, token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
