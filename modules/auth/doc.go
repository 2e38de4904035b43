// Package auth is the reference implementation of the remote authentication
// API consumed by pkg/apiclient.
//
// Login is a two step exchange. The client first asks for a nonce bound to a
// username:
//
//	POST /auth/login/nonce {"username": "..."}  -> 200 {"nonce": "..."}
//
// and then trades the nonce plus the password for a session token:
//
//	POST /auth/login {"username": "<nonce>", "password": "..."} -> 200 {"user": {...}, "token": "..."}
//
// Nonces are signed with pkg/token, expire after Config.NonceTTL and are
// accepted once. Session tokens are pkg/jwt tokens; GET /auth/logout revokes
// the presented token until it would have expired anyway.
//
// Every non-200 response carries a plain-text body that clients show to the
// user as the failure reason.
//
// Users live behind the Storage interface. MemoryStorage serves tests and
// local runs; PGStorage persists to PostgreSQL using the embedded Migrations.
package auth
