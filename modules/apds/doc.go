// Package apds serves the APD documents of the signed-in user's state
// together with their dashboard progress track.
package apds
