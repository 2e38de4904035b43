package clientip

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// Forwarding headers in priority order. X-Forwarded-For may list a chain;
// its first valid entry is the original client.
var proxyHeaders = []string{"CF-Connecting-IP", "X-Forwarded-For", "X-Real-IP"}

// FromRequest returns the normalized client address of r, or "" when none
// parses. With trustProxy set the forwarding headers take precedence over
// the connection's remote address.
func FromRequest(r *http.Request, trustProxy bool) string {
	if trustProxy {
		for _, h := range proxyHeaders {
			v := r.Header.Get(h)
			if v == "" {
				continue
			}
			for part := range strings.SplitSeq(v, ",") {
				if ip := parse(part); ip != "" {
					return ip
				}
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parse(r.RemoteAddr)
	}
	return parse(host)
}

func parse(s string) string {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return ""
	}
	// Zones are attacker controlled and make the same host look distinct.
	return addr.WithZone("").Unmap().String()
}
