// Package token signs small JSON payloads into URL-safe, tamper-evident
// strings. The reference auth server uses it for login nonces: the nonce
// carries the username and its deadline, so the server keeps no state
// between the two login steps beyond a replay guard.
//
//	signer, _ := token.NewSigner(secret)
//	nonce, _ := token.Sign(signer, loginNonce{Username: "jane", Expires: deadline})
//	payload, err := token.Open[loginNonce](signer, nonce)
package token
