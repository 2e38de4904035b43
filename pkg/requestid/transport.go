package requestid

import (
	"net/http"

	"github.com/google/uuid"
)

// Transport sets X-Request-ID on outgoing requests that lack one.
type Transport struct {
	base http.RoundTripper
}

// NewTransport wraps base, or http.DefaultTransport when base is nil.
func NewTransport(base http.RoundTripper) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Transport{base: base}
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get(Header) != "" {
		return t.base.RoundTrip(req)
	}

	id := FromContext(req.Context())
	if !Valid(id) {
		id = uuid.NewString()
	}
	req = req.Clone(req.Context())
	req.Header.Set(Header, id)
	return t.base.RoundTrip(req)
}
