// Package jwt issues and verifies HS256 JSON Web Tokens used as session
// credentials by the reference auth server, and provides a bearer-token
// middleware that puts verified claims into the request context.
//
//	svc, _ := jwt.New(signingKey, jwt.WithTTL(12*time.Hour))
//	tok, claims, _ := svc.Issue(userID)
//
//	r.With(jwt.Middleware(svc, revoked.Contains)).Get("/auth/check", check)
package jwt
