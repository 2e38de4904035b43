// Package clientip resolves the address of the client behind an HTTP request.
//
// Forwarding headers are honoured only when the server sits behind a proxy
// that sets them; otherwise any client could pick its own address:
//
//	r.Use(clientip.Middleware(cfg.TrustProxy))
//	...
//	ip := clientip.FromContext(r.Context())
package clientip
