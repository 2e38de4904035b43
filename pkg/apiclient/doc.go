// Package apiclient is the HTTP client for the eAPD API's session endpoints.
//
// Every call returns either its decoded payload or an *Error whose Kind tells
// transport failures, rejections (non-2xx) and malformed 2xx responses apart:
//
//	nonce, err := client.LoginNonce(ctx, "jane")
//	switch {
//	case errors.Is(err, apiclient.ErrAuthRejected):
//	    fmt.Println(apiclient.Reason(err)) // response body verbatim
//	case errors.Is(err, apiclient.ErrTransportFailure):
//	    // server unreachable
//	}
//
// The credential token is passed explicitly to calls that need it and sent as
// "Authorization: Bearer <token>" (configurable with WithAuthHeader).
//
// Endpoints:
//
//	POST /auth/login/nonce  {username}                 -> {nonce}
//	POST /auth/login        {username: nonce, password} -> {user, token}
//	GET  /auth/logout                                   -> ignored
//	GET  /auth/check                                    -> profile
//	PUT  /me                profile                     -> profile
package apiclient
